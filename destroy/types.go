package destroy

import "errors"

// Sentinel errors for the destroy package.
var (
	// ErrNilSolution indicates Run was called with a nil Solution.
	ErrNilSolution = errors.New("destroy: solution is nil")

	// ErrUnknownVariant indicates an Options.Variant value this package
	// does not implement.
	ErrUnknownVariant = errors.New("destroy: unrecognised destroy variant")

	// ErrNoNeighbourhood indicates ConcentricRemoval was requested without
	// a neighbourhood.Table.
	ErrNoNeighbourhood = errors.New("destroy: concentric removal requires a neighbourhood table")

	// ErrInvalidStrength indicates Options.Strength is not positive.
	ErrInvalidStrength = errors.New("destroy: strength must be positive")

	// ErrInvalidStringSize indicates Options.MaxStringSize is not
	// positive while Variant is StringRemoval.
	ErrInvalidStringSize = errors.New("destroy: max string size must be positive")

	// ErrInvalidKeepProbability indicates Options.KeepProbability is
	// outside [0, 1].
	ErrInvalidKeepProbability = errors.New("destroy: keep probability must be in [0, 1]")
)

// Variant selects which destroy operator Run applies.
type Variant int

const (
	// RandomRemoval removes k uniformly chosen visited clients.
	RandomRemoval Variant = iota

	// ConcentricRemoval grows a removed-client frontier by random walk
	// over the granular neighbourhood graph.
	ConcentricRemoval

	// StringRemoval removes contiguous arcs from a chain of
	// centroid-nearest routes.
	StringRemoval
)

func (v Variant) String() string {
	switch v {
	case RandomRemoval:
		return "random-removal"
	case ConcentricRemoval:
		return "concentric-removal"
	case StringRemoval:
		return "string-removal"
	default:
		return "unknown"
	}
}

// Options configures Run.
type Options struct {
	// Variant selects the destroy operator.
	Variant Variant

	// Strength upper-bounds how many clients RandomRemoval/
	// ConcentricRemoval/StringRemoval target for removal; the actual
	// count k is drawn uniformly from [1, min(Strength, visited count)].
	Strength int

	// MaxStringSize upper-bounds a single StringRemoval arc.
	MaxStringSize int

	// KeepProbability is the chance, per StringRemoval step, that a
	// computed arc is left in place rather than removed (§9 Open
	// Question #3).
	KeepProbability float64
}

// DefaultOptions mirrors the source implementation's random-removal
// defaults (perturbation_strength up to 30) and a 0.5 keep probability.
func DefaultOptions() Options {
	return Options{
		Variant:         RandomRemoval,
		Strength:        30,
		MaxStringSize:   10,
		KeepProbability: 0.5,
	}
}

// Validate checks §4.7's destroy parameter rules.
func (o Options) Validate() error {
	switch o.Variant {
	case RandomRemoval, ConcentricRemoval, StringRemoval:
	default:
		return ErrUnknownVariant
	}
	if o.Strength < 1 {
		return ErrInvalidStrength
	}
	if o.Variant == StringRemoval && o.MaxStringSize < 1 {
		return ErrInvalidStringSize
	}
	if o.KeepProbability < 0 || o.KeepProbability > 1 {
		return ErrInvalidKeepProbability
	}
	return nil
}
