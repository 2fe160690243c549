package destroy

import (
	"math"

	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/neighbourhood"
	"github.com/routeforge/vrpgo/rng"
)

// Run applies the selected destroy operator to s in place: some visited
// clients move from s.Routes into s.Unassigned, and any route left empty
// is dropped. tbl is only consulted by ConcentricRemoval and may be nil
// otherwise.
func Run(s *model.Solution, tbl *neighbourhood.Table, src *rng.Source, opts Options) error {
	if s == nil {
		return ErrNilSolution
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	switch opts.Variant {
	case RandomRemoval:
		return randomRemoval(s, src, opts)
	case ConcentricRemoval:
		if tbl == nil {
			return ErrNoNeighbourhood
		}
		return concentricRemoval(s, tbl, src, opts)
	case StringRemoval:
		return stringRemoval(s, src, opts)
	default:
		return ErrUnknownVariant
	}
}

// visitedClients lists every client index currently served by some route,
// in route-visit order (mirrors the source "clients = [idx for route ...
// for idx in route.visits()]" construction).
func visitedClients(s *model.Solution) []int {
	out := make([]int, 0, s.Problem.NumClients())
	for _, r := range s.Routes {
		out = append(out, r.Clients()...)
	}
	return out
}

// applyRemoval rebuilds every route without the clients in removed,
// dropping routes left empty, and appends the removed clients to
// s.Unassigned.
func applyRemoval(s *model.Solution, removed map[int]bool) {
	if len(removed) == 0 {
		return
	}
	pd := s.Problem
	newRoutes := make([]*model.Route, 0, len(s.Routes))
	for _, r := range s.Routes {
		kept := make([]int, 0, r.Len())
		touched := false
		for _, c := range r.Clients() {
			if removed[c] {
				touched = true
				continue
			}
			kept = append(kept, c)
		}
		switch {
		case len(kept) == 0:
			// route fully emptied; drop it
		case !touched:
			newRoutes = append(newRoutes, r)
		default:
			nr, err := rebuildRoute(pd, r.VehicleType, len(kept), kept)
			if err != nil {
				newRoutes = append(newRoutes, r)
				continue
			}
			newRoutes = append(newRoutes, nr)
		}
	}
	s.Routes = newRoutes
	for c := range removed {
		s.Unassigned = append(s.Unassigned, c)
	}
	s.Recompute()
}

// randomRemoval implements §4.7's *Random* operator.
func randomRemoval(s *model.Solution, src *rng.Source, opts Options) error {
	visited := visitedClients(s)
	if len(visited) == 0 {
		return nil
	}
	limit := opts.Strength
	if limit > len(visited) {
		limit = len(visited)
	}
	k := src.Intn(limit) + 1

	perm := src.PermRange(len(visited))
	removed := make(map[int]bool, k)
	for i := 0; i < k; i++ {
		removed[visited[perm[i]]] = true
	}
	applyRemoval(s, removed)
	return nil
}

// clientProfiles maps every visited client to the distance profile of the
// route currently serving it.
func clientProfiles(s *model.Solution) map[int]int {
	pd := s.Problem
	m := make(map[int]int, pd.NumClients())
	for _, r := range s.Routes {
		p := pd.VehicleTypes[r.VehicleType].Profile
		for _, c := range r.Clients() {
			m[c] = p
		}
	}
	return m
}

// concentricRemoval implements §4.7's *Concentric* operator.
func concentricRemoval(s *model.Solution, tbl *neighbourhood.Table, src *rng.Source, opts Options) error {
	visited := visitedClients(s)
	if len(visited) == 0 {
		return nil
	}
	limit := opts.Strength
	if limit > len(visited) {
		limit = len(visited)
	}
	k := src.Intn(limit) + 1

	profiles := clientProfiles(s)
	perm := src.PermRange(len(visited))
	current := visited[perm[0]]
	removed := map[int]bool{current: true}

	for len(removed) < k {
		cands := tbl.Neighbours(profiles[current], current)
		fresh := make([]int, 0, len(cands))
		for _, c := range cands {
			if !removed[c] {
				fresh = append(fresh, c)
			}
		}
		if len(fresh) == 0 {
			break // walk is stuck (exhausted this client's candidate list); stop early
		}
		next := fresh[src.Intn(len(fresh))]
		removed[next] = true
		current = next
	}
	applyRemoval(s, removed)
	return nil
}

// stringRemoval implements §4.7's *String (sequential)* operator,
// including the keep-with-probability branch of §9 Open Question #3.
func stringRemoval(s *model.Solution, src *rng.Source, opts Options) error {
	pd := s.Problem
	n := len(s.Routes)
	if n == 0 {
		return nil
	}

	type state struct {
		vehicleType int
		clients     []int
	}
	states := make([]state, n)
	totalVisited := 0
	for i, r := range s.Routes {
		states[i] = state{vehicleType: r.VehicleType, clients: append([]int(nil), r.Clients()...)}
		totalVisited += len(states[i].clients)
	}
	if totalVisited == 0 {
		return nil
	}

	limit := opts.Strength
	if limit > totalVisited {
		limit = totalVisited
	}
	k := src.Intn(limit) + 1

	start := src.Intn(n)
	pool := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != start {
			pool = append(pool, i)
		}
	}
	current := start
	removed := make(map[int]bool, k)

	for len(removed) < k {
		clients := states[current].clients
		budget := k - len(removed)
		maxSize := opts.MaxStringSize
		if budget < maxSize {
			maxSize = budget
		}
		if len(clients) < maxSize {
			maxSize = len(clients)
		}

		if maxSize >= 1 && src.Float64() >= opts.KeepProbability {
			size := src.Intn(maxSize) + 1
			from := src.Intn(len(clients))
			skip := make(map[int]bool, size)
			for o := 0; o < size; o++ {
				skip[(from+o)%len(clients)] = true
			}
			next := make([]int, 0, len(clients)-size)
			for idx, c := range clients {
				if skip[idx] {
					removed[c] = true
					continue
				}
				next = append(next, c)
			}
			states[current].clients = next
		}

		if len(removed) >= k || len(pool) == 0 {
			break
		}

		cx, cy := centroidOf(pd, states[current].clients)
		bestPos, bestDist := 0, math.MaxFloat64
		for pos, idx := range pool {
			rx, ry := centroidOf(pd, states[idx].clients)
			dx, dy := cx-rx, cy-ry
			d := dx*dx + dy*dy
			if d < bestDist {
				bestDist, bestPos = d, pos
			}
		}
		current = pool[bestPos]
		pool = append(pool[:bestPos], pool[bestPos+1:]...)
	}

	newRoutes := make([]*model.Route, 0, n)
	for _, st := range states {
		if len(st.clients) == 0 {
			continue
		}
		nr, err := rebuildRoute(pd, st.vehicleType, len(st.clients), st.clients)
		if err != nil {
			continue
		}
		newRoutes = append(newRoutes, nr)
	}
	s.Routes = newRoutes
	for c := range removed {
		s.Unassigned = append(s.Unassigned, c)
	}
	s.Recompute()
	return nil
}
