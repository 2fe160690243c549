package population_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/diversity"
	"github.com/routeforge/vrpgo/matrix"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/population"
	"github.com/routeforge/vrpgo/rng"
)

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

func solutionOf(t *testing.T, pd *model.ProblemData, order []int) *model.Solution {
	t.Helper()
	s := model.NewSolution(pd)
	r := model.NewRoute(pd, 0, len(order))
	for i, c := range order {
		require.NoError(t, r.InsertAt(i, c))
	}
	s.Routes = []*model.Route{r}
	s.Unassigned = nil
	s.Recompute()
	return s
}

func smallOpts() population.Options {
	return population.Options{MinSize: 2, GenerationSize: 2, LbDiversity: 0.0, UbDiversity: 1.0}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	_, err := population.New(population.Options{MinSize: -1}, diversity.DefaultOptions())
	require.ErrorIs(t, err, population.ErrInvalidOptions)

	_, err = population.New(population.Options{LbDiversity: 0.5, UbDiversity: 0.2}, diversity.DefaultOptions())
	require.ErrorIs(t, err, population.ErrInvalidDiversityBounds)
}

func TestInsert_RejectsNilSolution(t *testing.T) {
	pop, err := population.New(smallOpts(), diversity.DefaultOptions())
	require.NoError(t, err)
	_, _, err = pop.Insert(nil, penalty.Multipliers{}, costeval.ZeroFixedCost)
	require.ErrorIs(t, err, population.ErrNilSolution)
}

func TestInsert_RoutesToFeasibleOrInfeasiblePool(t *testing.T) {
	pd := linePD(t, 3)
	pop, err := population.New(smallOpts(), diversity.Options{NbClose: 1, NbElite: 0})
	require.NoError(t, err)

	feasible := solutionOf(t, pd, []int{0, 1, 2})
	_, inserted, err := pop.Insert(feasible, penalty.Multipliers{}, costeval.ZeroFixedCost)
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, 1, pop.NumFeasible())
	require.Equal(t, 0, pop.NumInfeasible())
	require.NotNil(t, pop.BestFeasible())
}

func TestInsert_PurgesDuplicateSolutions(t *testing.T) {
	pd := linePD(t, 3)
	pop, err := population.New(smallOpts(), diversity.Options{NbClose: 1, NbElite: 0})
	require.NoError(t, err)

	s1 := solutionOf(t, pd, []int{0, 1, 2})
	s2 := solutionOf(t, pd, []int{0, 1, 2})

	_, inserted, err := pop.Insert(s1, penalty.Multipliers{}, costeval.ZeroFixedCost)
	require.NoError(t, err)
	require.True(t, inserted)

	_, inserted, err = pop.Insert(s2, penalty.Multipliers{}, costeval.ZeroFixedCost)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 1, pop.NumFeasible())
}

func TestInsert_PurgesWorstEntryWhenOverGeneration(t *testing.T) {
	// MinSize=1, GenerationSize=1: the pool may grow up to MinSize+GenerationSize
	// (2) before purging kicks in, but once it kicks in it must crash all the
	// way back down to MinSize (1), not merely back under the ceiling (§4.9).
	pd := linePD(t, 4)
	opts := population.Options{MinSize: 1, GenerationSize: 1, LbDiversity: 0, UbDiversity: 1}
	pop, err := population.New(opts, diversity.Options{NbClose: 1, NbElite: 0})
	require.NoError(t, err)

	orders := [][]int{
		{0, 1, 2, 3},
		{1, 0, 2, 3},
		{2, 1, 0, 3},
	}
	expectedSize := []int{1, 2, 1}
	for i, o := range orders {
		_, _, err := pop.Insert(solutionOf(t, pd, o), penalty.Multipliers{}, costeval.ZeroFixedCost)
		require.NoError(t, err)
		require.Equal(t, expectedSize[i], pop.NumFeasible())
	}
}

func TestBestFeasible_SurvivesPurge(t *testing.T) {
	pd := linePD(t, 4)
	opts := population.Options{MinSize: 1, GenerationSize: 0, LbDiversity: 0, UbDiversity: 1}
	pop, err := population.New(opts, diversity.Options{NbClose: 1, NbElite: 0})
	require.NoError(t, err)

	best := solutionOf(t, pd, []int{0, 1, 2, 3}) // forward traversal: cheapest on a line
	_, _, err = pop.Insert(best, penalty.Multipliers{}, costeval.ZeroFixedCost)
	require.NoError(t, err)
	require.NotNil(t, pop.BestFeasible())
	bestCost := costeval.Evaluate(pop.BestFeasible(), penalty.Multipliers{}, costeval.ZeroFixedCost)

	for _, o := range [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}} {
		_, _, err := pop.Insert(solutionOf(t, pd, o), penalty.Multipliers{}, costeval.ZeroFixedCost)
		require.NoError(t, err)
	}

	require.NotNil(t, pop.BestFeasible())
	require.LessOrEqual(t, costeval.Evaluate(pop.BestFeasible(), penalty.Multipliers{}, costeval.ZeroFixedCost), bestCost)
}

func TestSelectParents_RejectsTooSmallPopulation(t *testing.T) {
	pd := linePD(t, 3)
	pop, err := population.New(smallOpts(), diversity.Options{NbClose: 1, NbElite: 0})
	require.NoError(t, err)
	_, _, err = pop.Insert(solutionOf(t, pd, []int{0, 1, 2}), penalty.Multipliers{}, costeval.ZeroFixedCost)
	require.NoError(t, err)

	_, _, err = pop.SelectParents(rng.New(1))
	require.ErrorIs(t, err, population.ErrPopulationTooSmall)
}

func TestSelectParents_ReturnsTwoEntriesFromPopulation(t *testing.T) {
	pd := linePD(t, 4)
	opts := population.Options{MinSize: 10, GenerationSize: 10, LbDiversity: 0, UbDiversity: 1}
	pop, err := population.New(opts, diversity.Options{NbClose: 2, NbElite: 0})
	require.NoError(t, err)

	for _, o := range [][]int{{0, 1, 2, 3}, {1, 0, 2, 3}, {2, 1, 0, 3}, {3, 2, 1, 0}} {
		_, _, err := pop.Insert(solutionOf(t, pd, o), penalty.Multipliers{}, costeval.ZeroFixedCost)
		require.NoError(t, err)
	}

	p1, p2, err := pop.SelectParents(rng.New(7))
	require.NoError(t, err)
	require.NotNil(t, p1)
	require.NotNil(t, p2)
}
