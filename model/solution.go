package model

import "sort"

// Solution is a multiset of routes plus the clients no route visits, per
// §3. Derived aggregates are cached and refreshed by Recompute, which
// callers invoke after changing Routes or Unassigned.
type Solution struct {
	Problem    *ProblemData
	Routes     []*Route
	Unassigned []int // local client indices visited by no route

	cachedDistance      int64
	cachedExcessLoad    int64
	cachedTimeWarp      int64
	cachedExcessDist    int64
	cachedExcessDur     int64
	cachedMissing       int
	cachedFixedVehicles int64
	dirty               bool
}

// NewSolution builds an empty solution with every client (required or
// optional) unassigned; nothing is marked infeasible by construction, per §8 scenario
// 1 ("empty instance ... cost 0").
func NewSolution(pd *ProblemData) *Solution {
	s := &Solution{Problem: pd}
	for i := range pd.Clients {
		s.Unassigned = append(s.Unassigned, i)
	}
	s.Recompute()
	return s
}

// Recompute refreshes every cached aggregate from the current routes and
// unassigned list. O(total route length). Call after any batch of direct
// Routes/Unassigned mutation.
func (s *Solution) Recompute() {
	s.cachedDistance = 0
	s.cachedExcessLoad = 0
	s.cachedTimeWarp = 0
	s.cachedExcessDist = 0
	s.cachedExcessDur = 0
	s.cachedFixedVehicles = 0
	for _, r := range s.Routes {
		if r.Empty() {
			continue
		}
		s.cachedDistance += r.TotalDistance()
		s.cachedExcessLoad += r.ExcessLoad()
		s.cachedTimeWarp += r.TimeWarp()
		s.cachedExcessDist += r.ExcessDistance()
		s.cachedExcessDur += r.ExcessDuration()
		s.cachedFixedVehicles++
	}
	missing := 0
	visited := s.visitedSet()
	for i, c := range s.Problem.Clients {
		if c.Required && !visited[i] {
			missing++
		}
	}
	s.cachedMissing = missing
	s.dirty = false
}

func (s *Solution) visitedSet() map[int]bool {
	visited := make(map[int]bool, s.Problem.NumClients())
	for _, r := range s.Routes {
		for _, c := range r.Clients() {
			visited[c] = true
		}
	}
	return visited
}

// TotalDistance is the sum of every route's travel distance.
func (s *Solution) TotalDistance() int64 { return s.cachedDistance }

// ExcessLoad is the sum of every route's excess load.
func (s *Solution) ExcessLoad() int64 { return s.cachedExcessLoad }

// TotalTimeWarp is the sum of every route's time warp.
func (s *Solution) TotalTimeWarp() int64 { return s.cachedTimeWarp }

// ExcessDistance is the sum of every route's excess distance.
func (s *Solution) ExcessDistance() int64 { return s.cachedExcessDist }

// ExcessDuration is the sum of every route's excess duration.
func (s *Solution) ExcessDuration() int64 { return s.cachedExcessDur }

// NumMissingRequired is the count of required clients visited by no route.
func (s *Solution) NumMissingRequired() int { return s.cachedMissing }

// NumRoutes returns the count of non-empty routes (fixed-vehicle-cost count).
func (s *Solution) NumRoutes() int64 { return s.cachedFixedVehicles }

// Feasible reports whether every excess is zero and no required client is missing.
func (s *Solution) Feasible() bool {
	return s.cachedExcessLoad == 0 && s.cachedTimeWarp == 0 &&
		s.cachedExcessDist == 0 && s.cachedExcessDur == 0 && s.cachedMissing == 0
}

// Clone deep-copies every route and the unassigned list; the two solutions
// share the same *ProblemData (immutable, outlives both, §3).
func (s *Solution) Clone() *Solution {
	out := &Solution{Problem: s.Problem}
	out.Routes = make([]*Route, len(s.Routes))
	for i, r := range s.Routes {
		out.Routes[i] = r.Clone()
	}
	out.Unassigned = append([]int(nil), s.Unassigned...)
	out.Recompute()
	return out
}

// Validate checks every §8 structural invariant: no client visited twice,
// every route internally valid, every group exclusivity respected.
func (s *Solution) Validate() error {
	seen := make(map[int]int, s.Problem.NumClients())
	for ri, r := range s.Routes {
		if err := r.Validate(); err != nil {
			return err
		}
		for _, c := range r.Clients() {
			if other, ok := seen[c]; ok && other != ri {
				return ErrClientDuplicated
			}
			seen[c] = ri
		}
	}
	for _, g := range s.Problem.Groups {
		count := 0
		for _, m := range g.Members {
			if _, ok := seen[m]; ok {
				count++
			}
		}
		if count > 1 {
			return ErrGroupViolation
		}
	}
	return nil
}

// routeKey canonicalizes a route's client sequence for equality comparison:
// §3 requires "same clients in the same cyclic order" (rotation-invariant)
// but treats reversal as a different route, and route *order* within the
// solution does not matter while the route *multiset* does.
func routeKey(r *Route) string {
	clients := r.Clients()
	n := len(clients)
	if n == 0 {
		return "-"
	}
	// Rotate to start at the minimum client index, the cheapest canonical
	// form to compare (cyclic equality without an O(n^2) rotation search).
	minIdx := 0
	for i, c := range clients {
		if c < clients[minIdx] {
			minIdx = i
		}
	}
	rotated := make([]int, n)
	for i := 0; i < n; i++ {
		rotated[i] = clients[(minIdx+i)%n]
	}
	buf := make([]byte, 0, n*6)
	for _, c := range rotated {
		buf = appendInt(buf, c)
		buf = append(buf, ',')
	}
	buf = appendInt(buf, r.VehicleType)
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Equal implements §3's solution equality: same multiset of routes (by
// rotation-invariant key, ignoring route order) and the same vehicle-type
// assignment.
func (s *Solution) Equal(other *Solution) bool {
	if other == nil {
		return false
	}
	a := make([]string, 0, len(s.Routes))
	b := make([]string, 0, len(other.Routes))
	for _, r := range s.Routes {
		if !r.Empty() {
			a = append(a, routeKey(r))
		}
	}
	for _, r := range other.Routes {
		if !r.Empty() {
			b = append(b, routeKey(r))
		}
	}
	sort.Strings(a)
	sort.Strings(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
