package diversity

import "errors"

// Sentinel errors for the diversity package.
var (
	// ErrMismatchedSize indicates a diversity matrix whose dimensions
	// disagree with the cost slice it is ranked against.
	ErrMismatchedSize = errors.New("diversity: cost slice and diversity matrix size disagree")

	// ErrInvalidOptions indicates an Options value outside its documented
	// domain.
	ErrInvalidOptions = errors.New("diversity: nb_close and nb_elite must be non-negative and nb_elite <= population size")
)

// Options configures BiasedFitness.
type Options struct {
	// NbClose bounds how many of an entry's closest neighbours contribute
	// to its mean-diversity term.
	NbClose int

	// NbElite is the number of top-cost entries exempted from the
	// diversity penalty.
	NbElite int
}

// DefaultOptions mirrors HGS-style defaults: a handful of close
// neighbours, a small elite guard.
func DefaultOptions() Options {
	return Options{NbClose: 5, NbElite: 4}
}

// Validate checks §7's "nb_elite, nb_close ... >= 0" rule against a
// concrete population size n.
func (o Options) Validate(n int) error {
	if o.NbClose < 0 || o.NbElite < 0 || o.NbElite > n {
		return ErrInvalidOptions
	}
	return nil
}
