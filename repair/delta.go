package repair

import (
	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
)

// routeContribution returns the slice of penalised cost attributable to a
// single route in isolation — the same decomposition localsearch/delta.go
// relies on, so pricing an insertion needs only the touched route's
// before/after contribution, never a whole-solution re-evaluation.
func routeContribution(r *model.Route, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost) float64 {
	cost := float64(r.TotalDistance())
	cost += m.Load * float64(r.ExcessLoad())
	cost += m.TimeWarp * float64(r.TimeWarp())
	cost += m.Distance * float64(r.ExcessDistance())
	cost += m.Duration * float64(r.ExcessDuration())
	if !r.Empty() {
		cost += float64(fixedCost(r.VehicleType))
	}
	return cost
}

// insertAt returns a copy of clients with client spliced in at pos.
func insertAt(clients []int, pos, client int) []int {
	out := make([]int, 0, len(clients)+1)
	out = append(out, clients[:pos]...)
	out = append(out, client)
	out = append(out, clients[pos:]...)
	return out
}

// rebuildRoute reconstructs a route of the given vehicle type from a plain
// ordered client slice, the same materialize-once discipline
// localsearch/delta.go uses for candidate orderings.
func rebuildRoute(pd *model.ProblemData, vehicleType int, capacity int, clients []int) (*model.Route, error) {
	r := model.NewRoute(pd, vehicleType, capacity)
	for i, c := range clients {
		if err := r.InsertAt(i, c); err != nil {
			return nil, err
		}
	}
	return r, nil
}
