package construct_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/construct"
	"github.com/routeforge/vrpgo/matrix"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/rng"
)

// ringProblem places a depot at the origin and n required clients evenly
// spaced on a unit circle, each fitting one-per-vehicle.
func ringProblem(t *testing.T, n int, capacityPerClient int64, numVehicles int) *model.ProblemData {
	t.Helper()
	size := n + 1
	coords := make([][2]float64, size)
	for i := 1; i <= n; i++ {
		theta := 2 * math.Pi * float64(i-1) / float64(n)
		coords[i] = [2]float64{10 * math.Cos(theta), 10 * math.Sin(theta)}
	}
	rows := make([][]float64, size)
	for i := range rows {
		rows[i] = make([]float64, size)
		for j := range rows[i] {
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			rows[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	dist, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)
	dur, err := matrix.NewFromFloats(rows, matrix.RoundNone)
	require.NoError(t, err)

	clients := make([]model.Client, n)
	for i := range clients {
		clients[i] = model.Client{
			X: coords[i+1][0], Y: coords[i+1][1],
			DeliveryDemand: 1, TWEarly: 0, TWLate: model.MaxValue, Required: true,
		}
	}
	return &model.ProblemData{
		Depots:  []model.Depot{{X: 0, Y: 0}},
		Clients: clients,
		VehicleTypes: []model.VehicleType{
			{Capacity: capacityPerClient, NumAvailable: numVehicles, TWLate: model.MaxValue},
		},
		Distances: []matrix.DistanceMatrix{matrix.NewDistanceMatrix(dist)},
		Durations: []matrix.DurationMatrix{matrix.NewDurationMatrix(dur)},
	}
}

func TestBuild_RejectsNilProblem(t *testing.T) {
	_, err := construct.Build(nil, rng.New(1), construct.DefaultOptions())
	require.ErrorIs(t, err, construct.ErrNilProblem)
}

func TestBuild_RejectsUnknownVariant(t *testing.T) {
	pd := ringProblem(t, 3, 10, 3)
	_, err := construct.Build(pd, rng.New(1), construct.Options{Variant: construct.Variant(99)})
	require.ErrorIs(t, err, construct.ErrUnknownVariant)
}

func TestSweep_RoutesEveryRequiredClientWhenCapacityAllows(t *testing.T) {
	pd := ringProblem(t, 6, 10, 6)
	sol, err := construct.Build(pd, rng.New(3), construct.Options{Variant: construct.RandomisedSweep})
	require.NoError(t, err)
	require.Empty(t, sol.Unassigned)

	visited := map[int]bool{}
	for _, r := range sol.Routes {
		for _, c := range r.Clients() {
			visited[c] = true
		}
	}
	require.Len(t, visited, 6)
}

func TestSweep_LeavesClientsUnassignedWhenFleetExhausted(t *testing.T) {
	pd := ringProblem(t, 6, 1, 2) // only 2 vehicles, capacity 1 each: 4 must stay unassigned
	sol, err := construct.Build(pd, rng.New(9), construct.Options{Variant: construct.RandomisedSweep})
	require.NoError(t, err)
	require.Len(t, sol.Unassigned, 4)
	require.Len(t, sol.Routes, 2)
}

func TestNearestNeighbour_RoutesEveryRequiredClientWhenCapacityAllows(t *testing.T) {
	pd := ringProblem(t, 5, 10, 5)
	sol, err := construct.Build(pd, rng.New(1), construct.Options{Variant: construct.NearestNeighbour})
	require.NoError(t, err)
	require.Empty(t, sol.Unassigned)

	visited := map[int]bool{}
	for _, r := range sol.Routes {
		for _, c := range r.Clients() {
			visited[c] = true
		}
	}
	require.Len(t, visited, 5)
}

func TestNearestNeighbour_Deterministic(t *testing.T) {
	pd := ringProblem(t, 5, 10, 5)
	a, err := construct.Build(pd, rng.New(1), construct.Options{Variant: construct.NearestNeighbour})
	require.NoError(t, err)
	b, err := construct.Build(pd, rng.New(1), construct.Options{Variant: construct.NearestNeighbour})
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}
