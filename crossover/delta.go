package crossover

import "github.com/routeforge/vrpgo/model"

// rebuildRoute reconstructs a route of the given vehicle type from a plain
// ordered client slice, the same discipline localsearch/delta.go,
// repair/delta.go and destroy/delta.go use for candidate orderings.
func rebuildRoute(pd *model.ProblemData, vehicleType int, capacity int, clients []int) (*model.Route, error) {
	r := model.NewRoute(pd, vehicleType, capacity)
	for i, c := range clients {
		if err := r.InsertAt(i, c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// unassignedOf returns every required-or-not client index not visited by
// any route in routes, ascending — the same helper construct/construct.go
// uses instead of model.NewSolution's default all-unassigned list.
func unassignedOf(pd *model.ProblemData, routes []*model.Route) []int {
	visited := make(map[int]bool, pd.NumClients())
	for _, r := range routes {
		for _, c := range r.Clients() {
			visited[c] = true
		}
	}
	out := make([]int, 0, pd.NumClients())
	for i := range pd.Clients {
		if !visited[i] {
			out = append(out, i)
		}
	}
	return out
}

// visitedClients lists every client index currently served by some route,
// in route-visit order.
func visitedClients(s *model.Solution) []int {
	out := make([]int, 0, s.Problem.NumClients())
	for _, r := range s.Routes {
		out = append(out, r.Clients()...)
	}
	return out
}

// assembleSolution builds a fresh Solution from routes, with Unassigned
// recomputed from scratch.
func assembleSolution(pd *model.ProblemData, routes []*model.Route) *model.Solution {
	s := model.NewSolution(pd)
	s.Routes = routes
	s.Unassigned = unassignedOf(pd, routes)
	s.Recompute()
	return s
}
