package neighbourhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/matrix"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/neighbourhood"
)

// fourClientProblem places one depot and four clients on a line at
// x = 0, 1, 2, 3, 10 with a matching distance matrix, so proximity order
// is easy to reason about by hand.
func fourClientProblem(t *testing.T) *model.ProblemData {
	t.Helper()
	coords := []float64{0, 1, 2, 3, 10} // depot, c0..c3
	n := len(coords)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			d := coords[i] - coords[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = d
		}
	}
	dist, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)
	dur, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)

	clients := make([]model.Client, 4)
	for i := range clients {
		clients[i] = model.Client{TWEarly: 0, TWLate: model.MaxValue}
	}
	return &model.ProblemData{
		Depots:       []model.Depot{{}},
		Clients:      clients,
		VehicleTypes: []model.VehicleType{{Capacity: 10, TWLate: model.MaxValue}},
		Distances:    []matrix.DistanceMatrix{matrix.NewDistanceMatrix(dist)},
		Durations:    []matrix.DurationMatrix{matrix.NewDurationMatrix(dur)},
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	pd := fourClientProblem(t)
	opts := neighbourhood.DefaultOptions()
	opts.NBGranular = 0
	_, err := neighbourhood.New(pd, opts)
	require.ErrorIs(t, err, neighbourhood.ErrInvalidGranularity)
}

func TestNew_ListSizeBoundedByGranularityAndClientCount(t *testing.T) {
	pd := fourClientProblem(t)
	opts := neighbourhood.DefaultOptions()
	opts.NBGranular = 2
	tbl, err := neighbourhood.New(pd, opts)
	require.NoError(t, err)

	for c := 0; c < pd.NumClients(); c++ {
		require.Len(t, tbl.Neighbours(0, c), 2)
	}
}

func TestNew_ListSizeClampedToAvailableClients(t *testing.T) {
	pd := fourClientProblem(t)
	opts := neighbourhood.DefaultOptions()
	opts.NBGranular = 100 // more than NumClients-1
	tbl, err := neighbourhood.New(pd, opts)
	require.NoError(t, err)

	require.Len(t, tbl.Neighbours(0, 0), pd.NumClients()-1)
}

func TestNew_OrdersByProximityClosestFirst(t *testing.T) {
	pd := fourClientProblem(t)
	opts := neighbourhood.DefaultOptions()
	opts.NBGranular = 3
	tbl, err := neighbourhood.New(pd, opts)
	require.NoError(t, err)

	// c0 is at x=1; closest others are c1(x=2, d=1), c2(x=3, d=2), c3(x=10, d=9).
	require.Equal(t, []int{1, 2, 3}, tbl.Neighbours(0, 0))
}

func TestNew_TieBreaksByClientIndex(t *testing.T) {
	// c1 and c2 are symmetric around c0 (x=0 and x=2 around x=1): equal distance.
	coords := []float64{100, 1, 0, 2}
	n := len(coords)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			d := coords[i] - coords[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = d
		}
	}
	dist, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)
	dur, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)
	pd := &model.ProblemData{
		Depots: []model.Depot{{}},
		Clients: []model.Client{
			{TWEarly: 0, TWLate: model.MaxValue},
			{TWEarly: 0, TWLate: model.MaxValue},
			{TWEarly: 0, TWLate: model.MaxValue},
		},
		VehicleTypes: []model.VehicleType{{Capacity: 10, TWLate: model.MaxValue}},
		Distances:    []matrix.DistanceMatrix{matrix.NewDistanceMatrix(dist)},
		Durations:    []matrix.DurationMatrix{matrix.NewDurationMatrix(dur)},
	}

	opts := neighbourhood.DefaultOptions()
	opts.NBGranular = 1
	tbl, err := neighbourhood.New(pd, opts)
	require.NoError(t, err)

	// client-local 1 (x=0) and client-local 2 (x=2) are equidistant (d=1) from
	// client-local 0 (x=1); the lower index must win the single slot.
	require.Equal(t, []int{1}, tbl.Neighbours(0, 0))
}

func TestNew_PenalizesTimeIncompatibleNeighbours(t *testing.T) {
	pd := fourClientProblem(t)
	// c1 is closest to c0 geographically (d=1 vs d=2 for c2), but c1's
	// window opens long after the latest possible arrival from c0, forcing
	// a large time-warp/wait penalty that should push it behind c2 in the
	// ranking despite c2 being geographically farther.
	pd.Clients[0].TWEarly, pd.Clients[0].TWLate = 0, 0
	pd.Clients[1].TWEarly, pd.Clients[1].TWLate = 10000, model.MaxValue
	pd.Clients[2].TWEarly, pd.Clients[2].TWLate = 0, model.MaxValue

	opts := neighbourhood.DefaultOptions()
	opts.NBGranular = 1
	opts.WeightTimeWindow = 1000
	tbl, err := neighbourhood.New(pd, opts)
	require.NoError(t, err)

	require.Equal(t, []int{2}, tbl.Neighbours(0, 0))
}
