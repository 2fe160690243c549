package construct

import "errors"

// Sentinel errors for the construct package.
var (
	// ErrUnknownVariant indicates an Options.Variant value this package
	// does not implement.
	ErrUnknownVariant = errors.New("construct: unrecognised construction variant")

	// ErrNilProblem indicates Build was called with a nil ProblemData.
	ErrNilProblem = errors.New("construct: problem data is nil")
)

// Variant selects which construction heuristic Build runs.
type Variant int

const (
	// RandomisedSweep sorts required clients by polar angle around the
	// first depot and packs them into routes in that order.
	RandomisedSweep Variant = iota

	// NearestNeighbour greedily extends each route with the closest
	// remaining required client.
	NearestNeighbour
)

func (v Variant) String() string {
	switch v {
	case RandomisedSweep:
		return "randomised-sweep"
	case NearestNeighbour:
		return "nearest-neighbour"
	default:
		return "unknown"
	}
}

// Options configures Build.
type Options struct {
	Variant Variant
}

// DefaultOptions selects the sweep heuristic, matching the teacher's habit
// of defaulting to the simplest well-understood variant (e.g. builder's
// Cycle/Path constructors ahead of its randomized ones).
func DefaultOptions() Options {
	return Options{Variant: RandomisedSweep}
}

// Validate checks §7's construction-time parameter rules.
func (o Options) Validate() error {
	if o.Variant != RandomisedSweep && o.Variant != NearestNeighbour {
		return ErrUnknownVariant
	}
	return nil
}
