package crossover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/crossover"
	"github.com/routeforge/vrpgo/matrix"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/rng"
)

// linePD places a depot at x=0 and n clients at x=1..n, one unit of demand
// each. vehicleTypes lets callers build heterogeneous fleets.
func linePD(t *testing.T, n int, vehicleTypes []model.VehicleType) *model.ProblemData {
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
		VehicleTypes: vehicleTypes,
		Distances:    []matrix.DistanceMatrix{matrix.NewDistanceMatrix(dist)},
		Durations:    []matrix.DurationMatrix{matrix.NewDurationMatrix(dur)},
	}
}

func oneVT(n int) []model.VehicleType {
	return []model.VehicleType{{Capacity: int64(n), NumAvailable: n, TWLate: model.MaxValue}}
}

// routesOf packs clients into separate single-route-per-group routes, all
// of vehicle type 0.
func routesOf(t *testing.T, pd *model.ProblemData, groups [][]int) *model.Solution {
	t.Helper()
	s := model.NewSolution(pd)
	routes := make([]*model.Route, 0, len(groups))
	for _, g := range groups {
		r := model.NewRoute(pd, 0, len(g))
		for i, c := range g {
			require.NoError(t, r.InsertAt(i, c))
		}
		routes = append(routes, r)
	}
	s.Routes = routes
	s.Unassigned = nil
	s.Recompute()
	return s
}

func TestRun_RejectsNilParents(t *testing.T) {
	pd := linePD(t, 2, oneVT(2))
	s := routesOf(t, pd, [][]int{{0, 1}})

	_, err := crossover.Run(nil, s, rng.New(1), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.ErrorIs(t, err, crossover.ErrNilParent)

	_, err = crossover.Run(s, nil, rng.New(1), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.ErrorIs(t, err, crossover.ErrNilParent)
}

func TestRun_RejectsUnknownVariant(t *testing.T) {
	pd := linePD(t, 2, oneVT(2))
	s1 := routesOf(t, pd, [][]int{{0, 1}})
	s2 := routesOf(t, pd, [][]int{{1, 0}})

	bad := crossover.Options{Variant: crossover.Variant(99)}
	_, err := crossover.Run(s1, s2, rng.New(1), penalty.Multipliers{}, costeval.ZeroFixedCost, bad)
	require.ErrorIs(t, err, crossover.ErrUnknownVariant)
}

func TestRun_ReturnsOtherParentWhenOneIsEmpty(t *testing.T) {
	pd := linePD(t, 3, oneVT(3))
	empty := model.NewSolution(pd)
	empty.Unassigned = []int{0, 1, 2}
	empty.Recompute()
	full := routesOf(t, pd, [][]int{{0, 1, 2}})

	offspring, err := crossover.Run(empty, full, rng.New(1), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, offspring.Routes[0].Clients())

	offspring, err = crossover.Run(full, empty, rng.New(1), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, offspring.Routes[0].Clients())
}

func TestRun_HomogeneousProducesFeasibleCoverage(t *testing.T) {
	pd := linePD(t, 8, oneVT(8))
	p1 := routesOf(t, pd, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}})
	p2 := routesOf(t, pd, [][]int{{1, 0, 2, 3}, {5, 4, 7, 6}})

	offspring, err := crossover.Run(p1, p2, rng.New(7), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, offspring.Unassigned)

	visited := map[int]bool{}
	for _, r := range offspring.Routes {
		for _, c := range r.Clients() {
			require.False(t, visited[c], "client %d visited twice", c)
			visited[c] = true
		}
	}
	require.Len(t, visited, 8)
}

func TestRun_HomogeneousDeterministic(t *testing.T) {
	pd := linePD(t, 8, oneVT(8))
	p1 := routesOf(t, pd, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}})
	p2 := routesOf(t, pd, [][]int{{1, 0, 2, 3}, {5, 4, 7, 6}})

	a, err := crossover.Run(p1, p2, rng.New(42), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.NoError(t, err)
	b, err := crossover.Run(p1, p2, rng.New(42), penalty.Multipliers{}, costeval.ZeroFixedCost, crossover.DefaultOptions())
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func twoVT(capacity int64, countA, countB int) []model.VehicleType {
	return []model.VehicleType{
		{Capacity: capacity, NumAvailable: countA, TWLate: model.MaxValue},
		{Capacity: capacity, NumAvailable: countB, TWLate: model.MaxValue},
	}
}

func routesOfTyped(t *testing.T, pd *model.ProblemData, groups [][]int, vehicleType []int) *model.Solution {
	t.Helper()
	s := model.NewSolution(pd)
	routes := make([]*model.Route, 0, len(groups))
	for i, g := range groups {
		r := model.NewRoute(pd, vehicleType[i], len(g))
		for j, c := range g {
			require.NoError(t, r.InsertAt(j, c))
		}
		routes = append(routes, r)
	}
	s.Routes = routes
	s.Unassigned = nil
	s.Recompute()
	return s
}

func TestRun_HeterogeneousProducesFeasibleCoverage(t *testing.T) {
	pd := linePD(t, 8, twoVT(8, 2, 2))
	p1 := routesOfTyped(t, pd, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}, []int{0, 0, 1, 1})
	p2 := routesOfTyped(t, pd, [][]int{{1, 0}, {3, 2}, {5, 4}, {7, 6}}, []int{0, 0, 1, 1})

	opts := crossover.Options{Variant: crossover.Heterogeneous}
	offspring, err := crossover.Run(p1, p2, rng.New(9), penalty.Multipliers{}, costeval.ZeroFixedCost, opts)
	require.NoError(t, err)
	require.Empty(t, offspring.Unassigned)

	visited := map[int]bool{}
	for _, r := range offspring.Routes {
		require.True(t, r.VehicleType == 0 || r.VehicleType == 1)
		for _, c := range r.Clients() {
			require.False(t, visited[c])
			visited[c] = true
		}
	}
	require.Len(t, visited, 8)

	counts := map[int]int{}
	for _, r := range offspring.Routes {
		counts[r.VehicleType]++
	}
	require.LessOrEqual(t, counts[0], 2)
	require.LessOrEqual(t, counts[1], 2)
}

func TestRun_HeterogeneousDeterministic(t *testing.T) {
	pd := linePD(t, 8, twoVT(8, 2, 2))
	p1 := routesOfTyped(t, pd, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}, []int{0, 0, 1, 1})
	p2 := routesOfTyped(t, pd, [][]int{{1, 0}, {3, 2}, {5, 4}, {7, 6}}, []int{0, 0, 1, 1})
	opts := crossover.Options{Variant: crossover.Heterogeneous}

	a, err := crossover.Run(p1, p2, rng.New(13), penalty.Multipliers{}, costeval.ZeroFixedCost, opts)
	require.NoError(t, err)
	b, err := crossover.Run(p1, p2, rng.New(13), penalty.Multipliers{}, costeval.ZeroFixedCost, opts)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}
