package localsearch

import (
	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
)

// evalCtx bundles the penalty state every operator needs to price a move.
type evalCtx struct {
	multipliers penalty.Multipliers
	fixedCost   costeval.FixedVehicleCost
	eps         float64
}

// routeContribution returns the slice of penalised cost attributable to a
// single route in isolation: its own distance/excess terms plus the fixed
// activation cost if it is non-empty. Summing this over every route in a
// solution (plus the unassigned-required penalty, which no route-local
// move changes) reproduces costeval.Evaluate, so pricing a move that only
// touches one or two routes needs only their own before/after contribution,
// never a whole-solution re-evaluation — the scan loop in scan.go never
// calls costeval.Evaluate on the full solution while searching, only this.
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

// startDepotMarker and endDepotMarker stand in for "the route's own start or
// end depot" wherever a node operator's second endpoint V may be a depot
// rather than a client, per §4.5 ("V in U's granular neighbourhood plus
// both route depots"). Real client indices are always >= 0.
const (
	startDepotMarker = -1
	endDepotMarker   = -2
)

// indexOfClient returns the position of client in clients, or -1.
func indexOfClient(clients []int, client int) int {
	for i, c := range clients {
		if c == client {
			return i
		}
	}
	return -1
}

// removeAt returns a copy of clients with the element at pos removed.
func removeAt(clients []int, pos int) []int {
	out := make([]int, 0, len(clients)-1)
	out = append(out, clients[:pos]...)
	out = append(out, clients[pos+1:]...)
	return out
}

// insertAt returns a copy of clients with client spliced in at pos.
func insertAt(clients []int, pos, client int) []int {
	out := make([]int, 0, len(clients)+1)
	out = append(out, clients[:pos]...)
	out = append(out, client)
	out = append(out, clients[pos:]...)
	return out
}

// anchorPosition resolves V (a client index or a depot marker) to the
// 0-based client position immediately after which U should land, against
// the given (already-mutated) candidate client slice.
func anchorPosition(clients []int, v int) (int, bool) {
	switch v {
	case startDepotMarker:
		return 0, true
	case endDepotMarker:
		return len(clients), true
	default:
		pos := indexOfClient(clients, v)
		if pos < 0 {
			return 0, false
		}
		return pos + 1, true
	}
}

// rebuildRoute reconstructs a route of the given vehicle type from a plain
// ordered client slice. Node operators compute their candidate arrangement
// as plain []int (so move bookkeeping cannot be corrupted by shifting
// linked-list positions) and materialize it back into a model.Route only
// once the final order is known, via the same InsertAt/refresh-summary path
// every other part of the engine uses.
func rebuildRoute(pd *model.ProblemData, vehicleType int, capacity int, clients []int) (*model.Route, error) {
	r := model.NewRoute(pd, vehicleType, capacity)
	for i, c := range clients {
		if err := r.InsertAt(i, c); err != nil {
			return nil, err
		}
	}
	return r, nil
}
