package model

import (
	"errors"
	"math"

	"github.com/routeforge/vrpgo/matrix"
)

// Sentinel errors for the model package. As in the teacher's core/types.go,
// these are never wrapped with fmt.Errorf where a sentinel alone suffices.
var (
	// ErrNilProblemData indicates a nil *ProblemData was passed where one is required.
	ErrNilProblemData = errors.New("model: problem data is nil")

	// ErrClientOutOfRange indicates a client index outside [0, NumClients).
	ErrClientOutOfRange = errors.New("model: client index out of range")

	// ErrVehicleTypeOutOfRange indicates a vehicle-type index outside the fleet.
	ErrVehicleTypeOutOfRange = errors.New("model: vehicle type index out of range")

	// ErrDepotInRoute indicates a depot index appeared as an internal route node.
	ErrDepotInRoute = errors.New("model: depot index inside route body")

	// ErrClientForbidden indicates a client is not permitted by a route's vehicle type.
	ErrClientForbidden = errors.New("model: client forbidden for this vehicle type")

	// ErrClientDuplicated indicates a client is visited by more than one route in a solution.
	ErrClientDuplicated = errors.New("model: client visited by more than one route")

	// ErrGroupViolation indicates two mutually-exclusive group members both appear.
	ErrGroupViolation = errors.New("model: mutually-exclusive group violated")

	// ErrSummaryDesync indicates a route's cached segment summaries disagree with
	// a fresh recomputation; this is the "invariant violation" class of §7.
	ErrSummaryDesync = errors.New("model: segment summary desynchronized")
)

// MaxValue bounds saturating running sums (§7: numeric overflow handling).
// Chosen well below math.MaxInt64/4 so that a handful of saturated sums can
// still be added together without wrapping.
const MaxValue = math.MaxInt64 / 8

// Client is a location requiring service: a delivery, a pickup, or both.
// Clients are indexed [0, D) is reserved for depots; clients occupy [D, D+N).
type Client struct {
	// X, Y are planar coordinates, used only for centroid/proximity math;
	// travel cost itself always comes from the distance/duration matrices.
	X, Y float64

	// DeliveryDemand is load carried from the depot to this client.
	DeliveryDemand int64

	// PickupDemand is load carried from this client back to the depot
	// (backhaul, §1).
	PickupDemand int64

	// ServiceDuration is the time spent serving this client.
	ServiceDuration int64

	// TWEarly, TWLate bound feasible service start time.
	TWEarly, TWLate int64

	// ReleaseTime is the earliest a vehicle may depart carrying this client's
	// delivery (e.g. goods not ready before this time).
	ReleaseTime int64

	// Prize is the reward for visiting an optional (non-Required) client;
	// it is subtracted from cost when visited and added as a penalty when not.
	Prize int64

	// Required marks a client that must be visited by some route.
	Required bool

	// GroupID records the client's group index as given by the input.
	// Nothing in the engine reads it: mutual exclusivity is checked
	// against ProblemData.Groups' member lists (Solution.Validate).
	GroupID int
}

// Depot is a route start/end location; it carries no demand or service time.
type Depot struct {
	X, Y float64
}

// Group is a mutually-exclusive set of client indices: at most one member
// may appear across the whole solution.
type Group struct {
	Members []int
}

// VehicleType describes one class of vehicle in the fleet.
type VehicleType struct {
	// Name is a display label only; never used for equality or lookups.
	Name string

	// NumAvailable bounds how many routes of this type may appear in a solution.
	NumAvailable int

	// Capacity bounds the load a route carries: Route.ExcessLoad compares
	// it with the larger of the route's total delivery and total pickup.
	Capacity int64

	// StartDepot, EndDepot are indices into ProblemData's depot range [0, D).
	StartDepot, EndDepot int

	// TWEarly, TWLate bound the vehicle's own operating window.
	TWEarly, TWLate int64

	// MaxDuration bounds total route duration (service + travel + wait); 0 = unbounded.
	MaxDuration int64

	// MaxDistance bounds total route distance; 0 = unbounded.
	MaxDistance int64

	// Profile indexes the distance/duration matrix pair this vehicle type uses.
	Profile int

	// AllowedClients, when non-nil, restricts this vehicle type to a subset of
	// client indices (nil means "any client is permitted").
	AllowedClients map[int]bool
}

// Permits reports whether this vehicle type may serve client index c.
func (vt VehicleType) Permits(c int) bool {
	if vt.AllowedClients == nil {
		return true
	}
	return vt.AllowedClients[c]
}

// ProblemData is the immutable instance the engine searches over. Clients
// are indexed [0, N) after depots [0, D); see §3. It outlives every Route
// and Solution built against it and is never mutated after construction.
type ProblemData struct {
	Depots       []Depot
	Clients      []Client
	VehicleTypes []VehicleType
	Groups       []Group

	// Distances[profile] and Durations[profile] are dense n x n matrices
	// over the combined [depots..clients) index space, one pair per
	// distinct VehicleType.Profile value. Populated by the matrix package.
	Distances []matrix.DistanceMatrix
	Durations []matrix.DurationMatrix
}

// NumDepots returns the number of depot locations (index range [0, D)).
func (pd *ProblemData) NumDepots() int { return len(pd.Depots) }

// NumClients returns the number of client locations (index range [D, D+N)).
func (pd *ProblemData) NumClients() int { return len(pd.Clients) }

// Size returns NumDepots()+NumClients(), the dimension of every matrix.
func (pd *ProblemData) Size() int { return pd.NumDepots() + pd.NumClients() }

// IsDepot reports whether a combined index refers to a depot.
func (pd *ProblemData) IsDepot(idx int) bool { return idx >= 0 && idx < pd.NumDepots() }

// ClientAt returns the Client for a combined index (must satisfy !IsDepot).
func (pd *ProblemData) ClientAt(idx int) Client {
	return pd.Clients[idx-pd.NumDepots()]
}

// ClientIndex converts a client-local index (as stored in Route.clients) into
// the combined matrix index space.
func (pd *ProblemData) ClientIndex(localIdx int) int { return localIdx + pd.NumDepots() }

// Dist returns the travel distance from combined index i to j under profile p.
func (pd *ProblemData) Dist(p, i, j int) int64 { return pd.Distances[p].At(i, j) }

// Dur returns the travel duration from combined index i to j under profile p.
func (pd *ProblemData) Dur(p, i, j int) int64 { return pd.Durations[p].At(i, j) }

// RequiredClients returns the local indices of every client with Required == true.
func (pd *ProblemData) RequiredClients() []int {
	out := make([]int, 0, len(pd.Clients))
	for i, c := range pd.Clients {
		if c.Required {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks structural invariants that must hold before any solver
// component touches this instance. Surfaced at construction per §7: no
// partial engine is ever returned.
func (pd *ProblemData) Validate() error {
	if pd == nil {
		return ErrNilProblemData
	}
	n := pd.Size()
	for _, vt := range pd.VehicleTypes {
		if vt.StartDepot < 0 || vt.StartDepot >= pd.NumDepots() {
			return ErrClientOutOfRange
		}
		if vt.EndDepot < 0 || vt.EndDepot >= pd.NumDepots() {
			return ErrClientOutOfRange
		}
		if vt.Profile < 0 || vt.Profile >= len(pd.Distances) || vt.Profile >= len(pd.Durations) {
			return ErrVehicleTypeOutOfRange
		}
	}
	for _, dm := range pd.Distances {
		if dm.Dim() != n {
			return ErrClientOutOfRange
		}
	}
	for _, g := range pd.Groups {
		for _, m := range g.Members {
			if m < 0 || m >= pd.NumClients() {
				return ErrClientOutOfRange
			}
		}
	}
	return nil
}
