package destroy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/destroy"
	"github.com/routeforge/vrpgo/matrix"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/neighbourhood"
	"github.com/routeforge/vrpgo/rng"
)

// linePD places a depot at x=0 and n clients at x=1..n, one unit of demand
// each, a single vehicle type with ample capacity.
func linePD(t *testing.T, n int) *model.ProblemData {
	t.Helper()
	size := n + 1
	rows := make([][]float64, size)
	for i := range rows {
		rows[i] = make([]float64, size)
		for j := range rows[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			rows[i][j] = float64(d)
		}
	}
	dist, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)
	dur, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)

	clients := make([]model.Client, n)
	for i := range clients {
		clients[i] = model.Client{
			X: float64(i + 1), Y: 0,
			DeliveryDemand: 1, TWEarly: 0, TWLate: model.MaxValue, Required: true,
		}
	}
	return &model.ProblemData{
		Depots:       []model.Depot{{}},
		Clients:      clients,
		VehicleTypes: []model.VehicleType{{Capacity: int64(n), NumAvailable: n, TWLate: model.MaxValue}},
		Distances:    []matrix.DistanceMatrix{matrix.NewDistanceMatrix(dist)},
		Durations:    []matrix.DurationMatrix{matrix.NewDurationMatrix(dur)},
	}
}

// oneRouteSolution packs every client of pd into a single route in index
// order.
func oneRouteSolution(t *testing.T, pd *model.ProblemData) *model.Solution {
	t.Helper()
	s := model.NewSolution(pd)
	r := model.NewRoute(pd, 0, pd.NumClients())
	for i := 0; i < pd.NumClients(); i++ {
		require.NoError(t, r.InsertAt(i, i))
	}
	s.Routes = []*model.Route{r}
	s.Unassigned = nil
	s.Recompute()
	return s
}

func twoRouteSolution(t *testing.T, pd *model.ProblemData, split int) *model.Solution {
	t.Helper()
	s := model.NewSolution(pd)
	r1 := model.NewRoute(pd, 0, split)
	for i := 0; i < split; i++ {
		require.NoError(t, r1.InsertAt(i, i))
	}
	r2 := model.NewRoute(pd, 0, pd.NumClients()-split)
	for i := split; i < pd.NumClients(); i++ {
		require.NoError(t, r2.InsertAt(i-split, i))
	}
	s.Routes = []*model.Route{r1, r2}
	s.Unassigned = nil
	s.Recompute()
	return s
}

func visitedSet(s *model.Solution) map[int]bool {
	out := map[int]bool{}
	for _, r := range s.Routes {
		for _, c := range r.Clients() {
			out[c] = true
		}
	}
	return out
}

func TestRun_RejectsNilSolution(t *testing.T) {
	err := destroy.Run(nil, nil, rng.New(1), destroy.DefaultOptions())
	require.ErrorIs(t, err, destroy.ErrNilSolution)
}

func TestRun_RejectsInvalidOptions(t *testing.T) {
	pd := linePD(t, 4)
	s := oneRouteSolution(t, pd)
	bad := destroy.Options{Variant: destroy.Variant(99), Strength: 1}
	err := destroy.Run(s, nil, rng.New(1), bad)
	require.ErrorIs(t, err, destroy.ErrUnknownVariant)
}

func TestRun_ConcentricRequiresNeighbourhoodTable(t *testing.T) {
	pd := linePD(t, 4)
	s := oneRouteSolution(t, pd)
	opts := destroy.Options{Variant: destroy.ConcentricRemoval, Strength: 2, MaxStringSize: 1, KeepProbability: 0.5}
	err := destroy.Run(s, nil, rng.New(1), opts)
	require.ErrorIs(t, err, destroy.ErrNoNeighbourhood)
}

func TestRandomRemoval_ConservesClientsAndRespectsStrength(t *testing.T) {
	pd := linePD(t, 8)
	s := oneRouteSolution(t, pd)

	opts := destroy.DefaultOptions()
	opts.Strength = 3
	err := destroy.Run(s, nil, rng.New(7), opts)
	require.NoError(t, err)

	require.NotEmpty(t, s.Unassigned)
	require.LessOrEqual(t, len(s.Unassigned), 3)

	visited := visitedSet(s)
	require.Len(t, visited, 8-len(s.Unassigned))
	for _, u := range s.Unassigned {
		require.False(t, visited[u])
	}
}

func TestRandomRemoval_NoopOnEmptySolution(t *testing.T) {
	pd := linePD(t, 4)
	s := model.NewSolution(pd)
	s.Routes = nil
	s.Unassigned = nil
	s.Recompute()

	err := destroy.Run(s, nil, rng.New(1), destroy.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, s.Unassigned)
	require.Empty(t, s.Routes)
}

func TestConcentricRemoval_RemovesBoundedConnectedSet(t *testing.T) {
	pd := linePD(t, 8)
	s := oneRouteSolution(t, pd)
	tbl, err := neighbourhood.New(pd, neighbourhood.DefaultOptions())
	require.NoError(t, err)

	opts := destroy.Options{Variant: destroy.ConcentricRemoval, Strength: 4, MaxStringSize: 1, KeepProbability: 0.5}
	err = destroy.Run(s, tbl, rng.New(9), opts)
	require.NoError(t, err)

	require.NotEmpty(t, s.Unassigned)
	require.LessOrEqual(t, len(s.Unassigned), 4)

	visited := visitedSet(s)
	require.Len(t, visited, 8-len(s.Unassigned))
}

func TestStringRemoval_KeepProbabilityZeroAlwaysRemoves(t *testing.T) {
	pd := linePD(t, 10)
	s := twoRouteSolution(t, pd, 5)

	opts := destroy.Options{Variant: destroy.StringRemoval, Strength: 4, MaxStringSize: 3, KeepProbability: 0}
	err := destroy.Run(s, nil, rng.New(3), opts)
	require.NoError(t, err)

	require.NotEmpty(t, s.Unassigned)
	require.LessOrEqual(t, len(s.Unassigned), 4)
	visited := visitedSet(s)
	require.Len(t, visited, 10-len(s.Unassigned))
	for _, u := range s.Unassigned {
		require.False(t, visited[u])
	}
}

func TestStringRemoval_KeepProbabilityOneNeverRemoves(t *testing.T) {
	pd := linePD(t, 10)
	s := twoRouteSolution(t, pd, 5)

	opts := destroy.Options{Variant: destroy.StringRemoval, Strength: 4, MaxStringSize: 3, KeepProbability: 1}
	err := destroy.Run(s, nil, rng.New(3), opts)
	require.NoError(t, err)

	require.Empty(t, s.Unassigned)
	visited := visitedSet(s)
	require.Len(t, visited, 10)
}

func TestRun_Deterministic(t *testing.T) {
	pd := linePD(t, 8)
	a := oneRouteSolution(t, pd)
	b := oneRouteSolution(t, pd)

	opts := destroy.DefaultOptions()
	opts.Strength = 5
	require.NoError(t, destroy.Run(a, nil, rng.New(42), opts))
	require.NoError(t, destroy.Run(b, nil, rng.New(42), opts))
	require.True(t, a.Equal(b))
}
