package driver

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/routeforge/vrpgo/construct"
	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/crossover"
	"github.com/routeforge/vrpgo/destroy"
	"github.com/routeforge/vrpgo/diversity"
	"github.com/routeforge/vrpgo/localsearch"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/neighbourhood"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/population"
	"github.com/routeforge/vrpgo/repair"
)

// Sentinel errors for the driver package.
var (
	// ErrNilProblem indicates New was called with a nil ProblemData.
	ErrNilProblem = errors.New("driver: problem data is nil")

	// ErrUnknownStrategyKind indicates an Options.Strategy this package
	// does not implement.
	ErrUnknownStrategyKind = errors.New("driver: unrecognised strategy kind")

	// ErrInvalidRepairProbability indicates RepairProbability outside [0,1].
	ErrInvalidRepairProbability = errors.New("driver: repair_probability must be in [0, 1]")

	// ErrNilAcceptance indicates a nil Options.Acceptance.
	ErrNilAcceptance = errors.New("driver: acceptance criterion is nil")
)

// StrategyKind selects the top-level search strategy (§4.10).
type StrategyKind int

const (
	// IteratedLocalSearch perturbs the current solution via destroy+repair.
	IteratedLocalSearch StrategyKind = iota

	// Genetic perturbs by crossing over two tournament-selected parents.
	Genetic
)

func (k StrategyKind) String() string {
	switch k {
	case IteratedLocalSearch:
		return "iterated-local-search"
	case Genetic:
		return "genetic"
	default:
		return "unknown"
	}
}

// Acceptance decides whether a candidate that failed to beat the
// incumbent should still replace the current solution. progress is the
// caller's fraction of permitted runtime/iterations elapsed, in [0, 1]
// (§4.10's "threshold interpolates ... over the permitted runtime").
type Acceptance func(bestCost, currentCost, candidateCost, progress float64) bool

// RecordToRecordTravel is §4.10's default acceptance criterion: accept iff
// candidateCost - bestCost <= threshold * bestCost, threshold
// interpolating linearly from StartPct to EndPct over progress.
func RecordToRecordTravel(startPct, endPct float64) Acceptance {
	return func(bestCost, _, candidateCost, progress float64) bool {
		threshold := startPct + (endPct-startPct)*progress
		return candidateCost-bestCost <= threshold*bestCost
	}
}

// GreedyAccept accepts only a strict improvement over the current
// solution (SPEC_FULL §12's additive second criterion).
func GreedyAccept() Acceptance {
	return func(_, currentCost, candidateCost, _ float64) bool {
		return candidateCost < currentCost
	}
}

// Stop is a stopping predicate, polled once per iteration at loop
// boundaries only (§5: "stopping criterion is polled at loop boundaries
// only").
type Stop func(e *Engine) bool

// MaxIterations stops once Engine.Iteration() reaches n.
func MaxIterations(n int) Stop {
	return func(e *Engine) bool { return e.iteration >= n }
}

// MaxRuntime stops once d has elapsed since Engine.Run started.
func MaxRuntime(d time.Duration) Stop {
	return func(e *Engine) bool { return time.Since(e.startedAt) >= d }
}

// Any stops as soon as any of stops fires.
func Any(stops ...Stop) Stop {
	return func(e *Engine) bool {
		for _, s := range stops {
			if s(e) {
				return true
			}
		}
		return false
	}
}

// Options configures an Engine (§4.10, §6's [ils]/[genetic]/[penalty]/
// [neighbourhood]/[population] config sections).
type Options struct {
	Strategy StrategyKind
	Seed     int64

	// RepairProbability gates the boosted-penalty repair pass on an
	// infeasible candidate, per §4.10's pseudocode.
	RepairProbability float64

	// MaxRuntime, MaxIterations bound Engine.progress()'s interpolation
	// denominator; 0 means that bound does not apply. Callers still supply
	// their own Stop to Run — these are for progress math only, so pass
	// matching bounds to both.
	MaxRuntime    time.Duration
	MaxIterations int

	// Acceptance is consulted when a candidate beats neither the
	// incumbent nor (after a boosted repair attempt) the incumbent again.
	Acceptance Acceptance

	Construct     construct.Options
	Neighbourhood neighbourhood.Options
	LocalSearch   localsearch.Options
	Destroy       destroy.Options
	Repair        repair.Options
	Crossover     crossover.Options
	Penalty       penalty.Options
	Population    population.Options
	Diversity     diversity.Options

	// FixedCost is charged once per non-empty route; nil means zero.
	FixedCost costeval.FixedVehicleCost
}

// DefaultOptions mirrors PyVRP-style defaults throughout.
func DefaultOptions() Options {
	return Options{
		Strategy:          IteratedLocalSearch,
		RepairProbability: 0.1,
		Acceptance:        RecordToRecordTravel(0.05, 0.0),
		Construct:         construct.DefaultOptions(),
		Neighbourhood:     neighbourhood.DefaultOptions(),
		LocalSearch:       localsearch.DefaultOptions(),
		Destroy:           destroy.DefaultOptions(),
		Repair:            repair.DefaultOptions(),
		Crossover:         crossover.DefaultOptions(),
		Penalty:           penalty.DefaultOptions(),
		Population:        population.DefaultOptions(),
		Diversity:         diversity.DefaultOptions(),
		FixedCost:         costeval.ZeroFixedCost,
	}
}

// Validate checks §7's construction-time parameter rules across every
// embedded sub-package's Options.
func (o Options) Validate() error {
	if o.Strategy != IteratedLocalSearch && o.Strategy != Genetic {
		return ErrUnknownStrategyKind
	}
	if o.RepairProbability < 0 || o.RepairProbability > 1 {
		return ErrInvalidRepairProbability
	}
	if o.Acceptance == nil {
		return ErrNilAcceptance
	}
	if err := o.Construct.Validate(); err != nil {
		return err
	}
	if err := o.Neighbourhood.Validate(); err != nil {
		return err
	}
	if err := o.LocalSearch.Validate(); err != nil {
		return err
	}
	if err := o.Destroy.Validate(); err != nil {
		return err
	}
	if err := o.Repair.Validate(); err != nil {
		return err
	}
	if err := o.Crossover.Validate(); err != nil {
		return err
	}
	if err := o.Penalty.Validate(); err != nil {
		return err
	}
	if err := o.Population.Validate(); err != nil {
		return err
	}
	// Diversity.Validate needs a pool size; only its sign rule applies here.
	if o.Diversity.NbClose < 0 || o.Diversity.NbElite < 0 {
		return diversity.ErrInvalidOptions
	}
	return nil
}

// IterationStat is one row of the optional per-iteration statistics
// stream (§6 Output; SPEC_FULL §12's supplemented statistics-stream
// feature).
type IterationStat struct {
	Iteration         int
	CurrentCost       float64
	BestCost          float64
	FeasiblePopSize   int
	InfeasiblePopSize int
	LoadMultiplier    float64
	TimeWarpMultiplier float64
	DistanceMultiplier float64
	DurationMultiplier float64
	LoadFeasibleFraction     float64
	TimeWarpFeasibleFraction float64
	DistanceFeasibleFraction float64
	DurationFeasibleFraction float64
}

// Result is the engine's output (§6 Output).
type Result struct {
	RunID      uuid.UUID
	Best       *model.Solution
	Feasible   bool
	Elapsed    time.Duration
	Iterations int
	Stats      []IterationStat
}
