package construct

import (
	"math"
	"sort"

	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/rng"
)

// Build runs the selected construction heuristic against pd and returns an
// initial, as-feasible-as-possible solution; any required client the
// heuristic cannot place (capacity or vehicle-type exhausted) is returned
// in Solution.Unassigned rather than forcing an infeasible placement.
func Build(pd *model.ProblemData, src *rng.Source, opts Options) (*model.Solution, error) {
	if pd == nil {
		return nil, ErrNilProblem
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Variant {
	case RandomisedSweep:
		return sweepConstruct(pd, src)
	case NearestNeighbour:
		return nearestNeighbourConstruct(pd, src)
	default:
		return nil, ErrUnknownVariant
	}
}

// sweepConstruct implements the polar-sweep heuristic described in doc.go.
func sweepConstruct(pd *model.ProblemData, src *rng.Source) (*model.Solution, error) {
	required := pd.RequiredClients()
	depot := pd.Depots[0]

	type polar struct {
		client int
		angle  float64
	}
	offset := 2 * math.Pi * src.Float64()
	order := make([]polar, len(required))
	for i, c := range required {
		client := pd.Clients[c]
		a := math.Atan2(client.Y-depot.Y, client.X-depot.X) - offset
		for a < 0 {
			a += 2 * math.Pi
		}
		order[i] = polar{client: c, angle: a}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].angle != order[j].angle {
			return order[i].angle < order[j].angle
		}
		return order[i].client < order[j].client
	})

	sequence := make([]int, len(order))
	for i, p := range order {
		sequence[i] = p.client
	}
	return packInOrder(pd, sequence)
}

// packInOrder greedily opens vehicles in fleet order and fills each with
// as large a prefix of the remaining sequence as fits, leaving whatever
// cannot be placed by any vehicle in Solution.Unassigned.
func packInOrder(pd *model.ProblemData, sequence []int) (*model.Solution, error) {
	s := model.NewSolution(pd)
	remaining := sequence
	var routes []*model.Route

	for vt := 0; vt < len(pd.VehicleTypes) && len(remaining) > 0; vt++ {
		vehicleType := pd.VehicleTypes[vt]
		for used := 0; used < vehicleType.NumAvailable && len(remaining) > 0; used++ {
			r := model.NewRoute(pd, vt, len(remaining))
			leftover := make([]int, 0, len(remaining))
			for _, c := range remaining {
				if !vehicleType.Permits(c) {
					leftover = append(leftover, c)
					continue
				}
				pos := r.Len()
				if err := r.InsertAt(pos, c); err != nil {
					leftover = append(leftover, c)
					continue
				}
				if r.ExcessLoad() > 0 {
					_ = r.RemoveAt(pos)
					leftover = append(leftover, c)
				}
			}
			if r.Len() > 0 {
				routes = append(routes, r)
			}
			remaining = leftover
		}
	}

	s.Routes = routes
	s.Unassigned = unassignedOf(pd, routes)
	s.Recompute()
	return s, nil
}

// unassignedOf returns every client index not visited by any route in
// routes, ascending — used instead of model.NewSolution's default
// all-unassigned list, which construction has since partially filled.
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

// nearestNeighbourConstruct implements the closest-remaining-client
// heuristic described in doc.go.
func nearestNeighbourConstruct(pd *model.ProblemData, _ *rng.Source) (*model.Solution, error) {
	remaining := make(map[int]bool)
	for _, c := range pd.RequiredClients() {
		remaining[c] = true
	}

	s := model.NewSolution(pd)
	var routes []*model.Route

	for vt := 0; vt < len(pd.VehicleTypes) && len(remaining) > 0; vt++ {
		vehicleType := pd.VehicleTypes[vt]
		for used := 0; used < vehicleType.NumAvailable && len(remaining) > 0; used++ {
			r := model.NewRoute(pd, vt, len(remaining))
			current := vehicleType.StartDepot
			for {
				next, found := nearestRemaining(pd, vehicleType, current, remaining)
				if !found {
					break
				}
				pos := r.Len()
				if err := r.InsertAt(pos, next); err != nil {
					break
				}
				if r.ExcessLoad() > 0 {
					_ = r.RemoveAt(pos)
					break
				}
				delete(remaining, next)
				current = pd.ClientIndex(next)
			}
			if r.Len() > 0 {
				routes = append(routes, r)
			}
		}
	}

	s.Routes = routes
	s.Unassigned = unassignedOf(pd, routes)
	s.Recompute()
	return s, nil
}

// nearestRemaining returns the permitted client in remaining closest to
// combined index current, breaking ties by client index for determinism
// (map iteration order is not itself relied upon).
func nearestRemaining(pd *model.ProblemData, vt model.VehicleType, current int, remaining map[int]bool) (int, bool) {
	best, found := -1, false
	var bestDist int64
	profile := vt.Profile
	for c := range remaining {
		if !vt.Permits(c) {
			continue
		}
		d := pd.Dist(profile, current, pd.ClientIndex(c))
		if !found || d < bestDist || (d == bestDist && c < best) {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
