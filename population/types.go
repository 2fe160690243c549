package population

import (
	"errors"

	"github.com/google/uuid"

	"github.com/routeforge/vrpgo/model"
)

// Sentinel errors for the population package.
var (
	// ErrNilSolution indicates Insert was called with a nil solution.
	ErrNilSolution = errors.New("population: solution is nil")

	// ErrInvalidOptions indicates an Options value outside its documented
	// domain (§7: "min_size, generation_size >= 0").
	ErrInvalidOptions = errors.New("population: min_size and generation_size must be non-negative")

	// ErrInvalidDiversityBounds indicates lb_diversity/ub_diversity outside
	// [0,1] or lb_diversity >= ub_diversity (§7).
	ErrInvalidDiversityBounds = errors.New("population: lb_diversity must be < ub_diversity, both in [0, 1]")

	// ErrPopulationTooSmall indicates SelectParents was called with fewer
	// than two entries across both sub-populations.
	ErrPopulationTooSmall = errors.New("population: fewer than two entries available for selection")
)

// Options configures a Population (§4.9, §7).
type Options struct {
	// MinSize is the floor each sub-population is purged back down to.
	MinSize int

	// GenerationSize is how far above MinSize a sub-population may grow
	// before purging kicks in.
	GenerationSize int

	// LbDiversity, UbDiversity bound the accepted parent-pair diversity in
	// SelectParents.
	LbDiversity, UbDiversity float64
}

// DefaultOptions mirrors HGS-style defaults.
func DefaultOptions() Options {
	return Options{MinSize: 25, GenerationSize: 25, LbDiversity: 0.1, UbDiversity: 0.5}
}

// Validate checks §7's construction-time parameter rules.
func (o Options) Validate() error {
	if o.MinSize < 0 || o.GenerationSize < 0 {
		return ErrInvalidOptions
	}
	if o.LbDiversity < 0 || o.UbDiversity > 1 || o.LbDiversity >= o.UbDiversity {
		return ErrInvalidDiversityBounds
	}
	return nil
}

// Entry is one population member: a solution plus its cached cost,
// feasibility, and most-recently-computed biased fitness.
type Entry struct {
	ID       uuid.UUID
	Solution *model.Solution
	Cost     float64
	Feasible bool
	Fitness  float64
}
