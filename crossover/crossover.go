package crossover

import (
	"sort"

	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/repair"
	"github.com/routeforge/vrpgo/rng"
)

// Run produces one offspring solution from two parents via SREX (§4.6).
func Run(p1, p2 *model.Solution, src *rng.Source, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost, opts Options) (*model.Solution, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilParent
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(visitedClients(p1)) == 0 {
		return p2.Clone(), nil
	}
	if len(visitedClients(p2)) == 0 {
		return p1.Clone(), nil
	}

	switch opts.Variant {
	case Heterogeneous:
		return heterogeneousSREX(p1, p2, src, m, fixedCost)
	default:
		return homogeneousSREX(p1, p2, src, m, fixedCost)
	}
}

// window is a cyclic run of k routes from one parent, plus the union of
// the clients those routes visit.
type window struct {
	start   int
	k       int
	routes  []*model.Route
	clients map[int]bool
}

func buildWindow(routes []*model.Route, start, k int) window {
	n := len(routes)
	w := window{start: start, k: k, routes: make([]*model.Route, k), clients: make(map[int]bool)}
	for j := 0; j < k; j++ {
		r := routes[(start+j)%n]
		w.routes[j] = r
		for _, c := range r.Clients() {
			w.clients[c] = true
		}
	}
	return w
}

func overlap(a, b map[int]bool) int {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	count := 0
	for c := range small {
		if big[c] {
			count++
		}
	}
	return count
}

// hillClimb implements §4.6 step 4: shift w1's or w2's start by ±1,
// committing to whichever of the four neighbouring states strictly
// increases the client overlap, until none does.
func hillClimb(routes1, routes2 []*model.Route, i1, i2, k int) (window, window) {
	n1, n2 := len(routes1), len(routes2)
	w1 := buildWindow(routes1, i1, k)
	w2 := buildWindow(routes2, i2, k)
	best := overlap(w1.clients, w2.clients)

	mod := func(x, n int) int { return ((x % n) + n) % n }

	for {
		type neighbour struct {
			w1, w2 window
			score  int
		}
		candidates := [4]neighbour{}
		cw := buildWindow(routes1, mod(i1-1, n1), k)
		candidates[0] = neighbour{cw, w2, overlap(cw.clients, w2.clients)}
		cw = buildWindow(routes1, mod(i1+1, n1), k)
		candidates[1] = neighbour{cw, w2, overlap(cw.clients, w2.clients)}
		cw = buildWindow(routes2, mod(i2-1, n2), k)
		candidates[2] = neighbour{w1, cw, overlap(w1.clients, cw.clients)}
		cw = buildWindow(routes2, mod(i2+1, n2), k)
		candidates[3] = neighbour{w1, cw, overlap(w1.clients, cw.clients)}

		bestIdx := -1
		for idx, c := range candidates {
			if c.score > best {
				best = c.score
				bestIdx = idx
			}
		}
		if bestIdx < 0 {
			return w1, w2
		}
		w1, w2 = candidates[bestIdx].w1, candidates[bestIdx].w2
		i1, i2 = w1.start, w2.start
	}
}

// buildOffspringRoutes replaces baseWindow's routes within base with
// donor's client content (keeping base's own vehicle type per window
// slot), and drops any client donor now owns from base's unchanged
// routes to avoid duplication.
func buildOffspringRoutes(pd *model.ProblemData, base []*model.Route, baseWindow, donor window) ([]*model.Route, error) {
	inWindow := make(map[*model.Route]int, len(baseWindow.routes))
	for j, r := range baseWindow.routes {
		inWindow[r] = j
	}

	newRoutes := make([]*model.Route, 0, len(base))
	for _, r := range base {
		if j, ok := inWindow[r]; ok {
			clients := donor.routes[j].Clients()
			if len(clients) == 0 {
				continue
			}
			nr, err := rebuildRoute(pd, r.VehicleType, len(clients), clients)
			if err != nil {
				return nil, err
			}
			newRoutes = append(newRoutes, nr)
			continue
		}

		kept := make([]int, 0, r.Len())
		touched := false
		for _, c := range r.Clients() {
			if donor.clients[c] {
				touched = true
				continue
			}
			kept = append(kept, c)
		}
		switch {
		case len(kept) == 0:
		case !touched:
			newRoutes = append(newRoutes, r)
		default:
			nr, err := rebuildRoute(pd, r.VehicleType, len(kept), kept)
			if err != nil {
				return nil, err
			}
			newRoutes = append(newRoutes, nr)
		}
	}
	return newRoutes, nil
}

func homogeneousSREX(p1, p2 *model.Solution, src *rng.Source, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost) (*model.Solution, error) {
	pd := p1.Problem
	routes1, routes2 := p1.Routes, p2.Routes
	n1, n2 := len(routes1), len(routes2)

	i1 := src.Intn(n1)
	i2 := src.Intn(n2)
	maxK := n1
	if n2 < maxK {
		maxK = n2
	}
	k := src.Intn(maxK) + 1

	w1, w2 := hillClimb(routes1, routes2, i1, i2, k)

	routesA, err := buildOffspringRoutes(pd, routes1, w1, w2)
	if err != nil {
		return nil, err
	}
	routesB, err := buildOffspringRoutes(pd, routes2, w2, w1)
	if err != nil {
		return nil, err
	}

	offspringA := assembleSolution(pd, routesA)
	offspringB := assembleSolution(pd, routesB)

	if err := repair.Run(offspringA, src, m, fixedCost, repair.DefaultOptions()); err != nil {
		return nil, err
	}
	if err := repair.Run(offspringB, src, m, fixedCost, repair.DefaultOptions()); err != nil {
		return nil, err
	}

	if costeval.Evaluate(offspringB, m, fixedCost) < costeval.Evaluate(offspringA, m, fixedCost) {
		return offspringB, nil
	}
	return offspringA, nil
}

func groupByVehicleType(routes []*model.Route) map[int][]*model.Route {
	m := make(map[int][]*model.Route)
	for _, r := range routes {
		m[r.VehicleType] = append(m[r.VehicleType], r)
	}
	return m
}

func unionVehicleTypes(a, b map[int][]*model.Route) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for vt := range a {
		seen[vt] = true
		out = append(out, vt)
	}
	for vt := range b {
		if !seen[vt] {
			out = append(out, vt)
		}
	}
	sort.Ints(out)
	return out
}

func heterogeneousSREX(p1, p2 *model.Solution, src *rng.Source, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost) (*model.Solution, error) {
	pd := p1.Problem
	byType1 := groupByVehicleType(p1.Routes)
	byType2 := groupByVehicleType(p2.Routes)

	var routesA, routesB []*model.Route
	for _, vt := range unionVehicleTypes(byType1, byType2) {
		r1, r2 := byType1[vt], byType2[vt]
		n1, n2 := len(r1), len(r2)
		maxK := n1
		if n2 < maxK {
			maxK = n2
		}
		if maxK == 0 {
			routesA = append(routesA, r1...)
			routesB = append(routesB, r2...)
			continue
		}
		k := src.Intn(maxK + 1) // may legitimately draw 0: skip exchange for this type
		if k == 0 {
			routesA = append(routesA, r1...)
			routesB = append(routesB, r2...)
			continue
		}

		i1 := src.Intn(n1)
		i2 := src.Intn(n2)
		w1, w2 := hillClimb(r1, r2, i1, i2, k)

		subA, err := buildOffspringRoutes(pd, r1, w1, w2)
		if err != nil {
			return nil, err
		}
		subB, err := buildOffspringRoutes(pd, r2, w2, w1)
		if err != nil {
			return nil, err
		}
		routesA = append(routesA, subA...)
		routesB = append(routesB, subB...)
	}

	offspringA := assembleSolution(pd, routesA)
	offspringB := assembleSolution(pd, routesB)

	resolveOversubscription(pd, offspringA)
	resolveOversubscription(pd, offspringB)

	if err := repair.Run(offspringA, src, m, fixedCost, repair.DefaultOptions()); err != nil {
		return nil, err
	}
	if err := repair.Run(offspringB, src, m, fixedCost, repair.DefaultOptions()); err != nil {
		return nil, err
	}

	if costeval.Evaluate(offspringB, m, fixedCost) < costeval.Evaluate(offspringA, m, fixedCost) {
		return offspringB, nil
	}
	return offspringA, nil
}

// resolveOversubscription greedily reassigns a vehicle type's excess
// routes (beyond its NumAvailable) to the first other vehicle type with
// remaining capacity whose AllowedClients permits every client the route
// carries, per §4.6's heterogeneous variant.
func resolveOversubscription(pd *model.ProblemData, s *model.Solution) {
	counts := make(map[int]int, len(pd.VehicleTypes))
	for _, r := range s.Routes {
		counts[r.VehicleType]++
	}

	newRoutes := make([]*model.Route, 0, len(s.Routes))
	for _, r := range s.Routes {
		vt := pd.VehicleTypes[r.VehicleType]
		if counts[r.VehicleType] <= vt.NumAvailable {
			newRoutes = append(newRoutes, r)
			continue
		}

		reassigned := false
		for altIdx, alt := range pd.VehicleTypes {
			if altIdx == r.VehicleType || counts[altIdx] >= alt.NumAvailable {
				continue
			}
			if !permitsAll(alt, r.Clients()) {
				continue
			}
			nr, err := rebuildRoute(pd, altIdx, r.Len(), r.Clients())
			if err != nil {
				continue
			}
			counts[r.VehicleType]--
			counts[altIdx]++
			newRoutes = append(newRoutes, nr)
			reassigned = true
			break
		}
		if !reassigned {
			newRoutes = append(newRoutes, r)
		}
	}
	s.Routes = newRoutes
	s.Recompute()
}

func permitsAll(vt model.VehicleType, clients []int) bool {
	for _, c := range clients {
		if !vt.Permits(c) {
			return false
		}
	}
	return true
}
