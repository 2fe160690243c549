package penalty

import "errors"

// Sentinel errors for the penalty package.
var (
	// ErrInvalidWindowSize indicates a non-positive WindowSize.
	ErrInvalidWindowSize = errors.New("penalty: window size must be positive")

	// ErrInvalidBounds indicates Min > Max for some dimension.
	ErrInvalidBounds = errors.New("penalty: min exceeds max")

	// ErrInvalidFactor indicates a decrease/increase factor outside (0, +inf)
	// or a decrease factor >= 1 / increase factor <= 1.
	ErrInvalidFactor = errors.New("penalty: invalid adaptation factor")
)

// Dimension names one of the four penalised constraint classes, §3.
type Dimension int

const (
	Load Dimension = iota
	TimeWarp
	Distance
	Duration

	numDimensions
)

func (d Dimension) String() string {
	switch d {
	case Load:
		return "load"
	case TimeWarp:
		return "time_warp"
	case Distance:
		return "distance"
	case Duration:
		return "duration"
	default:
		return "unknown"
	}
}

// Options configures the penalty manager. Zero value is not meaningful;
// use DefaultOptions() and override, the same idiom lvlath's tsp.Options
// follows.
type Options struct {
	// WindowSize is the number of most-recent registered solutions each
	// dimension's feasibility fraction is computed over (§4.3's "last K").
	WindowSize int

	// UpdateInterval is how many Register calls occur between multiplier
	// updates; 1 means "every registered solution" (§4.3's default).
	UpdateInterval int

	// TargetFeasible is the feasible-fraction threshold p; at or above it
	// the multiplier decreases, below it the multiplier increases.
	TargetFeasible float64

	// DecreaseFactor multiplies a multiplier when p >= TargetFeasible;
	// must be in (0, 1).
	DecreaseFactor float64

	// IncreaseFactor multiplies a multiplier when p < TargetFeasible;
	// must be > 1.
	IncreaseFactor float64

	// Min, Max clamp every multiplier, indexed by Dimension.
	Min, Max [int(numDimensions)]float64

	// Initial is the starting value for every multiplier, indexed by Dimension.
	Initial [int(numDimensions)]float64

	// BoostFactor scales every multiplier for the "boosted" evaluator used
	// on repair attempts over infeasible candidates (§4.3).
	BoostFactor float64
}

// DefaultOptions mirrors PyVRP-style defaults: window of 100, update every
// solution, target 50% feasible, multipliers bounded in [0.1, 100000],
// starting at 1, boosted 10x.
func DefaultOptions() Options {
	var o Options
	o.WindowSize = 100
	o.UpdateInterval = 1
	o.TargetFeasible = 0.5
	o.DecreaseFactor = 0.85
	o.IncreaseFactor = 1.2
	o.BoostFactor = 10
	for d := 0; d < int(numDimensions); d++ {
		o.Min[d] = 0.1
		o.Max[d] = 100_000
		o.Initial[d] = 1
	}
	return o
}

// Validate checks §7's parameter-validation rules for the penalty manager.
func (o Options) Validate() error {
	if o.WindowSize <= 0 {
		return ErrInvalidWindowSize
	}
	if o.DecreaseFactor <= 0 || o.DecreaseFactor >= 1 {
		return ErrInvalidFactor
	}
	if o.IncreaseFactor <= 1 {
		return ErrInvalidFactor
	}
	for d := 0; d < int(numDimensions); d++ {
		if o.Min[d] <= 0 || o.Max[d] <= 0 || o.Min[d] > o.Max[d] {
			return ErrInvalidBounds
		}
	}
	return nil
}

// Multipliers is the current (or boosted) value of the four penalty weights.
type Multipliers struct {
	Load, TimeWarp, Distance, Duration float64
}

// Scale returns a copy with every field multiplied by factor.
func (m Multipliers) Scale(factor float64) Multipliers {
	return Multipliers{
		Load:     m.Load * factor,
		TimeWarp: m.TimeWarp * factor,
		Distance: m.Distance * factor,
		Duration: m.Duration * factor,
	}
}

func (m Multipliers) at(d Dimension) float64 {
	switch d {
	case Load:
		return m.Load
	case TimeWarp:
		return m.TimeWarp
	case Distance:
		return m.Distance
	default:
		return m.Duration
	}
}

func (m *Multipliers) set(d Dimension, v float64) {
	switch d {
	case Load:
		m.Load = v
	case TimeWarp:
		m.TimeWarp = v
	case Distance:
		m.Distance = v
	default:
		m.Duration = v
	}
}
