package repair

import (
	"sort"

	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/rng"
)

// Run re-inserts every client in s.Unassigned, one at a time, in an order
// drawn from src, per §4.7. Clients that no route (existing or freshly
// opened) can accept are left in s.Unassigned. s is mutated in place and
// Recompute is called once after every pending client has been tried.
func Run(s *model.Solution, src *rng.Source, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost, opts Options) error {
	if s == nil {
		return ErrNilSolution
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	pending := append([]int(nil), s.Unassigned...)
	order := src.PermRange(len(pending))
	still := make([]int, 0, len(pending))

	for _, i := range order {
		client := pending[i]
		if !insertOne(s, client, m, fixedCost, opts) {
			still = append(still, client)
		}
	}

	s.Unassigned = still
	s.Recompute()
	return nil
}

// insertOne finds and applies the cheapest placement for client by
// penalised cost (feasibility is not required),
// comparing the best existing-route insertion against the best
// open-a-new-vehicle option, and reports whether a placement was applied.
func insertOne(s *model.Solution, client int, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost, opts Options) bool {
	pd := s.Problem

	var routeIdxs []int
	if opts.Variant == NearestRouteInsertion {
		routeIdxs = nearestRoutes(s, client, opts.CandidateRoutes)
	} else {
		routeIdxs = make([]int, len(s.Routes))
		for i := range s.Routes {
			routeIdxs[i] = i
		}
	}

	existing, existingOK := bestExistingPlacement(s, client, routeIdxs, m, fixedCost)
	fresh, freshOK := bestNewRoutePlacement(pd, s, client, m, fixedCost)

	switch {
	case existingOK && freshOK:
		if fresh.delta < existing.delta {
			s.Routes = append(s.Routes, fresh.route)
		} else {
			s.Routes[existing.routeIdx] = existing.newRoute
		}
		return true
	case existingOK:
		s.Routes[existing.routeIdx] = existing.newRoute
		return true
	case freshOK:
		s.Routes = append(s.Routes, fresh.route)
		return true
	default:
		return false
	}
}

// nearestRoutes returns up to k route indices, sorted by ascending squared
// Euclidean distance from client to each route's centroid, ties broken by
// index for determinism.
func nearestRoutes(s *model.Solution, client int, k int) []int {
	pd := s.Problem
	c := pd.Clients[client]

	type cand struct {
		idx int
		d   float64
	}
	cands := make([]cand, len(s.Routes))
	for i, r := range s.Routes {
		cx, cy := r.Centroid()
		dx, dy := cx-c.X, cy-c.Y
		cands[i] = cand{idx: i, d: dx*dx + dy*dy}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].d != cands[j].d {
			return cands[i].d < cands[j].d
		}
		return cands[i].idx < cands[j].idx
	})

	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	return out
}

// existingPlacement is the cheapest way to insert a client into one of an
// already-open set of routes.
type existingPlacement struct {
	routeIdx int
	newRoute *model.Route
	delta    float64
}

// bestExistingPlacement scans every position of every route named by
// routeIdxs and returns the one with the lowest penalised-cost delta.
func bestExistingPlacement(s *model.Solution, client int, routeIdxs []int, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost) (existingPlacement, bool) {
	pd := s.Problem
	var best existingPlacement
	found := false

	for _, idx := range routeIdxs {
		r := s.Routes[idx]
		vt := pd.VehicleTypes[r.VehicleType]
		if !vt.Permits(client) {
			continue
		}
		before := routeContribution(r, m, fixedCost)
		current := r.Clients()
		for pos := 0; pos <= len(current); pos++ {
			candidate := insertAt(current, pos, client)
			nr, err := rebuildRoute(pd, r.VehicleType, len(candidate), candidate)
			if err != nil {
				continue
			}
			delta := routeContribution(nr, m, fixedCost) - before
			if !found || delta < best.delta {
				best = existingPlacement{routeIdx: idx, newRoute: nr, delta: delta}
				found = true
			}
		}
	}
	return best, found
}

// newRoutePlacement is the cheapest way to insert a client by opening a
// fresh single-client route of some compatible, not-yet-exhausted vehicle
// type.
type newRoutePlacement struct {
	route *model.Route
	delta float64
}

// bestNewRoutePlacement considers every vehicle type with remaining
// NumAvailable capacity and permission to serve client, returning the
// cheapest resulting single-client route.
func bestNewRoutePlacement(pd *model.ProblemData, s *model.Solution, client int, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost) (newRoutePlacement, bool) {
	used := make(map[int]int, len(pd.VehicleTypes))
	for _, r := range s.Routes {
		used[r.VehicleType]++
	}

	var best newRoutePlacement
	found := false
	for vtIdx, vt := range pd.VehicleTypes {
		if !vt.Permits(client) || used[vtIdx] >= vt.NumAvailable {
			continue
		}
		nr, err := rebuildRoute(pd, vtIdx, 1, []int{client})
		if err != nil {
			continue
		}
		delta := routeContribution(nr, m, fixedCost)
		if !found || delta < best.delta {
			best = newRoutePlacement{route: nr, delta: delta}
			found = true
		}
	}
	return best, found
}
