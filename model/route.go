package model

// Segment is an O(1)-composable aggregate of a contiguous run of route
// nodes, following the concatenation scheme of Vidal et al. (2013),
// "A hybrid genetic algorithm for multidepot and periodic vehicle routing
// problems" — the same scheme PyVRP's Route/segment machinery implements.
// Two Segments concatenate via Concat in O(1); Route uses it to refresh
// its cached summaries outward from each InsertAt/RemoveAt (§4.5).
type Segment struct {
	Distance int64 // sum of travel distances of the segment's internal arcs
	Duration int64 // sum of travel + service time, excluding any waiting
	Load     int64 // sum of DeliveryDemand over the segment
	Pickup   int64 // sum of PickupDemand over the segment
	TimeWarp int64 // time warp already locked in by the segment's own structure

	// Early is the earliest a vehicle may begin service at the segment's
	// first node, considering only that node's own time window.
	Early int64

	// Late is the latest start-of-service time at the segment's first node
	// that does not add *additional* time warp beyond TimeWarp.
	Late int64
}

// emptySegment is the identity element for Concat (an empty segment
// contributes nothing and accepts any start time).
func emptySegment() Segment {
	return Segment{Early: 0, Late: MaxValue}
}

// clientSegment builds the one-node segment for a single client.
func clientSegment(c Client) Segment {
	return Segment{
		Distance: 0,
		Duration: c.ServiceDuration,
		Load:     c.DeliveryDemand,
		Pickup:   c.PickupDemand,
		TimeWarp: 0,
		Early:    max64(c.TWEarly, c.ReleaseTime),
		Late:     c.TWLate,
	}
}

// depotSegment builds the zero-node segment representing a depot sentinel
// under the given vehicle type's operating window.
func depotSegment(vt VehicleType) Segment {
	return Segment{Early: vt.TWEarly, Late: vt.TWLate}
}

// Concat combines segment a (first) followed by b (second), where arcDist
// and arcDur are the travel distance/duration from a's last node to b's
// first node. Concat is pure and O(1).
func Concat(a, b Segment, arcDist, arcDur int64) Segment {
	// Time we would arrive at b's first node if a started at a.Early with no
	// more waiting than structurally required.
	arrival := a.Early + a.Duration + arcDur

	wait := int64(0)
	if b.Early > arrival {
		wait = b.Early - arrival
	}
	extraWarp := int64(0)
	if arrival > b.Late {
		extraWarp = arrival - b.Late
	}

	late := b.Late - arcDur - a.Duration
	if late > a.Late {
		late = a.Late
	}

	return Segment{
		Distance: a.Distance + arcDist + b.Distance,
		Duration: a.Duration + arcDur + wait + b.Duration,
		Load:     a.Load + b.Load,
		Pickup:   a.Pickup + b.Pickup,
		TimeWarp: a.TimeWarp + b.TimeWarp + extraWarp,
		Early:    a.Early,
		Late:     late,
	}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// node is one element of a route's doubly-linked chain. Depot sentinels use
// client == depotSentinel. Nodes are owned by a per-route arena (Route.arena)
// preallocated from NewRoute's capacity argument (§5: no allocation in the
// hot loop while that capacity suffices).
type node struct {
	client     int // local client index, or depotSentinel
	prev, next *node

	route *Route // owning route, for O(1) "which route is this node in"
	pos   int    // 0-based position from the start depot sentinel

	fwd Segment // summary of [startDepot .. this node], inclusive
	rev Segment // summary of [this node .. endDepot], inclusive
}

const depotSentinel = -1

// Route is a vehicle-type index plus an ordered chain of client nodes,
// bracketed by depot sentinels that are never themselves "in" the route
// body (§3's "no depot appears internally").
type Route struct {
	VehicleType int

	problem *ProblemData
	arena   []node // pre-allocated; arena[0] and arena[len-1] are the depot sentinels
	head    *node  // start depot sentinel
	tail    *node  // end depot sentinel
	size    int    // number of client nodes (excludes sentinels)
}

// NewRoute allocates an empty route for the given vehicle type. capacity
// presizes the arena for that many clients; inserting more grows it.
func NewRoute(pd *ProblemData, vehicleType int, capacity int) *Route {
	r := &Route{
		VehicleType: vehicleType,
		problem:     pd,
		arena:       make([]node, 2, capacity+2),
	}
	vt := pd.VehicleTypes[vehicleType]
	head := &r.arena[0]
	tail := &r.arena[1]
	*head = node{client: depotSentinel, route: r, pos: 0}
	*tail = node{client: depotSentinel, route: r, pos: 1}
	head.next = tail
	tail.prev = head
	r.head, r.tail = head, tail
	head.fwd = depotSegment(vt)
	tail.rev = depotSegment(vt)
	head.rev, tail.fwd = head.fwd, tail.rev // sentinels summarize themselves only
	return r
}

// Problem returns the ProblemData this route was built against.
func (r *Route) Problem() *ProblemData { return r.problem }

// Empty reports whether the route visits no clients.
func (r *Route) Empty() bool { return r.size == 0 }

// Len returns the number of clients visited (excludes depot sentinels).
func (r *Route) Len() int { return r.size }

// Clients returns the visited client indices in route order. O(len(route)).
func (r *Route) Clients() []int {
	out := make([]int, 0, r.size)
	for n := r.head.next; n != r.tail; n = n.next {
		out = append(out, n.client)
	}
	return out
}

// vehicleType returns the owning ProblemData's VehicleType for this route.
func (r *Route) vehicleType() VehicleType { return r.problem.VehicleTypes[r.VehicleType] }

// profile returns the distance/duration matrix profile for this route.
func (r *Route) profile() int { return r.vehicleType().Profile }

func (r *Route) matIndex(localClient int) int { return r.problem.ClientIndex(localClient) }

func (r *Route) combinedIndex(n *node) int {
	if n.client == depotSentinel {
		if n == r.head {
			return r.vehicleType().StartDepot
		}
		return r.vehicleType().EndDepot
	}
	return r.matIndex(n.client)
}

func (r *Route) arc(a, b *node) (dist, dur int64) {
	p := r.profile()
	i, j := r.combinedIndex(a), r.combinedIndex(b)
	return r.problem.Dist(p, i, j), r.problem.Dur(p, i, j)
}

// allocNode appends a fresh node to the arena and returns it. When the
// arena is full, append moves it to a larger backing array; nodes
// allocated earlier keep their addresses and stay reachable through their
// prev/next links, so the chain remains intact.
func (r *Route) allocNode(client int) *node {
	r.arena = append(r.arena, node{client: client, route: r})
	return &r.arena[len(r.arena)-1]
}

// InsertAt splices client into the route immediately after position idx
// (0 means "right after the start depot", r.size means "right before the
// end depot"). Refreshes summaries from the mutation point outward, per
// §4.5's "refresh forward summaries from the mutation point to the
// end-depot and reverse summaries from the mutation point to the
// start-depot".
func (r *Route) InsertAt(idx int, client int) error {
	if idx < 0 || idx > r.size {
		return ErrClientOutOfRange
	}
	if !r.vehicleType().Permits(client) {
		return ErrClientForbidden
	}
	prev := r.nodeAt(idx) // the node currently at position idx (sentinel-inclusive)
	next := prev.next
	n := r.allocNode(client)
	n.prev, n.next = prev, next
	prev.next = n
	next.prev = n
	r.size++
	r.renumberFrom(n)
	r.refreshForwardFrom(n)
	r.refreshReverseFrom(n)
	return nil
}

// RemoveAt deletes the client node at 0-based position idx (within
// [0, size)) and refreshes summaries from the splice point outward.
func (r *Route) RemoveAt(idx int) error {
	if idx < 0 || idx >= r.size {
		return ErrClientOutOfRange
	}
	n := r.nodeAt(idx + 1) // nodeAt(0) is head; clients start at nodeAt(1)
	prev, next := n.prev, n.next
	prev.next = next
	next.prev = prev
	r.size--
	r.renumberFrom(next)
	r.refreshForwardFrom(prev)
	r.refreshReverseFrom(next)
	return nil
}

// nodeAt returns the node at 0-based position idx where position 0 is the
// start depot sentinel, matching InsertAt's "after position idx" contract.
func (r *Route) nodeAt(idx int) *node {
	n := r.head
	for i := 0; i < idx; i++ {
		n = n.next
	}
	return n
}

func (r *Route) renumberFrom(n *node) {
	for p := n; p != nil; p = p.next {
		if p.prev != nil {
			p.pos = p.prev.pos + 1
		}
	}
}

// refreshForwardFrom recomputes fwd summaries from n to the end depot.
func (r *Route) refreshForwardFrom(n *node) {
	for p := n; p != nil; p = p.next {
		if p.prev == nil {
			// start depot sentinel: fwd is its own depot segment, set at construction.
			continue
		}
		dist, dur := r.arc(p.prev, p)
		var self Segment
		if p.client == depotSentinel {
			self = depotSegment(r.vehicleType())
		} else {
			self = clientSegment(r.problem.ClientAt(r.matIndex(p.client)))
		}
		p.fwd = Concat(p.prev.fwd, self, dist, dur)
	}
}

// refreshReverseFrom recomputes rev summaries from n back to the start depot.
func (r *Route) refreshReverseFrom(n *node) {
	for p := n; p != nil; p = p.prev {
		if p.next == nil {
			continue
		}
		dist, dur := r.arc(p, p.next)
		var self Segment
		if p.client == depotSentinel {
			self = depotSegment(r.vehicleType())
		} else {
			self = clientSegment(r.problem.ClientAt(r.matIndex(p.client)))
		}
		p.rev = Concat(self, p.next.rev, dist, dur)
	}
}

// TotalDistance returns the route's total travel distance (O(1)).
func (r *Route) TotalDistance() int64 { return r.tail.fwd.Distance }

// TotalDuration returns the route's total duration including wait (O(1)).
func (r *Route) TotalDuration() int64 { return r.tail.fwd.Duration }

// TimeWarp returns the route's accumulated time warp (O(1)).
func (r *Route) TimeWarp() int64 { return r.tail.fwd.TimeWarp }

// Load returns total delivery demand carried (O(1)).
func (r *Route) Load() int64 { return r.tail.fwd.Load }

// PickupLoad returns total pickup demand carried (O(1)).
func (r *Route) PickupLoad() int64 { return r.tail.fwd.Pickup }

// ExcessLoad returns max(0, max(Load, PickupLoad) - Capacity).
func (r *Route) ExcessLoad() int64 {
	cap := r.vehicleType().Capacity
	carried := r.Load()
	if r.PickupLoad() > carried {
		carried = r.PickupLoad()
	}
	if carried > cap {
		return carried - cap
	}
	return 0
}

// ExcessDistance returns max(0, TotalDistance - MaxDistance); zero MaxDistance means unbounded.
func (r *Route) ExcessDistance() int64 {
	vt := r.vehicleType()
	if vt.MaxDistance == 0 {
		return 0
	}
	if d := r.TotalDistance() - vt.MaxDistance; d > 0 {
		return d
	}
	return 0
}

// ExcessDuration returns max(0, TotalDuration - MaxDuration); zero MaxDuration means unbounded.
func (r *Route) ExcessDuration() int64 {
	vt := r.vehicleType()
	if vt.MaxDuration == 0 {
		return 0
	}
	if d := r.TotalDuration() - vt.MaxDuration; d > 0 {
		return d
	}
	return 0
}

// Centroid returns the unweighted average (x, y) of visited clients; used
// only for proximity heuristics (nearest-route insertion, string-removal
// route hops), never for cost.
func (r *Route) Centroid() (x, y float64) {
	if r.size == 0 {
		return 0, 0
	}
	for n := r.head.next; n != r.tail; n = n.next {
		c := r.problem.ClientAt(r.matIndex(n.client))
		x += c.X
		y += c.Y
	}
	return x / float64(r.size), y / float64(r.size)
}

// Validate rebuilds the route from scratch and compares the end depot's
// forward summary (the whole-route totals) against the cached one, per §8
// invariant 3; it also checks §3's "no depot
// internally" and "vehicle type permits every client" invariants.
func (r *Route) Validate() error {
	fresh := NewRoute(r.problem, r.VehicleType, r.size)
	for i, c := range r.Clients() {
		if r.problem.IsDepot(r.matIndex(c)) {
			return ErrDepotInRoute
		}
		if !r.vehicleType().Permits(c) {
			return ErrClientForbidden
		}
		if err := fresh.InsertAt(i, c); err != nil {
			return err
		}
	}
	if fresh.tail.fwd != r.tail.fwd {
		return ErrSummaryDesync
	}
	return nil
}

// Clone deep-copies the route into a fresh arena, mirroring core's
// methods_clone.go split between shallow and deep clone (Route only ever
// needs the deep form, since nodes are not shared across routes).
func (r *Route) Clone() *Route {
	out := NewRoute(r.problem, r.VehicleType, cap(r.arena)-2)
	for i, c := range r.Clients() {
		_ = out.InsertAt(i, c)
	}
	return out
}
