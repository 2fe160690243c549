package driver

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/routeforge/vrpgo/construct"
	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/crossover"
	"github.com/routeforge/vrpgo/destroy"
	"github.com/routeforge/vrpgo/localsearch"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/neighbourhood"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/population"
	"github.com/routeforge/vrpgo/repair"
	"github.com/routeforge/vrpgo/rng"
)

// strategy is the closed set of top-level search strategies (§4.10). Each
// implementation produces the "perturbed" pre-local-search candidate for
// one iteration; Engine.step runs the rest of the loop identically for
// both.
type strategy interface {
	init(e *Engine) error
	propose(e *Engine) (*model.Solution, error)
}

// Engine runs one strategy to completion against a Stop predicate,
// single-threaded and deterministic given its seed (§5).
type Engine struct {
	problem    *model.ProblemData
	opts       Options
	src        *rng.Source
	tbl        *neighbourhood.Table
	penaltyMgr *penalty.Manager
	logger     *zap.SugaredLogger

	strategy strategy
	pop      *population.Population // non-nil only for Genetic

	current      *model.Solution
	incumbent    *model.Solution // best-including-infeasible (Open Question #1)
	bestFeasible *model.Solution // best-feasible-only (Open Question #1)

	iteration int
	startedAt time.Time
	stats     []IterationStat
}

// New constructs an Engine. Logging defaults to a no-op logger (§10's
// ambient-stack choice: zap stays silent unless a caller opts in).
func New(pd *model.ProblemData, opts Options, logger *zap.SugaredLogger) (*Engine, error) {
	if pd == nil {
		return nil, ErrNilProblem
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	tbl, err := neighbourhood.New(pd, opts.Neighbourhood)
	if err != nil {
		return nil, err
	}
	mgr, err := penalty.New(opts.Penalty)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		problem:    pd,
		opts:       opts,
		src:        rng.New(opts.Seed),
		tbl:        tbl,
		penaltyMgr: mgr,
		logger:     logger,
	}

	switch opts.Strategy {
	case Genetic:
		e.strategy = &geneticStrategy{}
		pop, err := population.New(opts.Population, opts.Diversity)
		if err != nil {
			return nil, err
		}
		e.pop = pop
	default:
		e.strategy = &ilsStrategy{}
	}
	return e, nil
}

// Incumbent returns the best solution seen regardless of feasibility
// (Open Question #1's "best-including-infeasible" value).
func (e *Engine) Incumbent() *model.Solution { return e.incumbent }

// BestFeasible returns the best feasible solution ever seen, or nil if
// none has been found (Open Question #1's primary answer, §4.9
// "Best-so-far").
func (e *Engine) BestFeasible() *model.Solution { return e.bestFeasible }

// Iteration returns the number of completed iterations.
func (e *Engine) Iteration() int { return e.iteration }

func (e *Engine) cost(s *model.Solution, m penalty.Multipliers) float64 {
	return costeval.Evaluate(s, m, e.opts.FixedCost)
}

func observationOf(s *model.Solution) penalty.Observation {
	return penalty.Observation{
		LoadFeasible:     s.ExcessLoad() == 0,
		TimeWarpFeasible: s.TotalTimeWarp() == 0,
		DistFeasible:     s.ExcessDistance() == 0,
		DurFeasible:      s.ExcessDuration() == 0,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// progress is how far through the permitted runtime/iteration budget the
// engine is, in [0, 1], for Acceptance's time-decaying threshold.
func (e *Engine) progress() float64 {
	switch {
	case e.opts.MaxRuntime > 0:
		return clamp01(float64(time.Since(e.startedAt)) / float64(e.opts.MaxRuntime))
	case e.opts.MaxIterations > 0:
		return clamp01(float64(e.iteration) / float64(e.opts.MaxIterations))
	default:
		return 0
	}
}

// Run builds an initial solution, then steps until stop fires.
func (e *Engine) Run(stop Stop) (Result, error) {
	e.startedAt = time.Now()
	if err := e.strategy.init(e); err != nil {
		return Result{}, err
	}
	for !stop(e) {
		if err := e.step(); err != nil {
			return Result{}, err
		}
	}
	return e.result(), nil
}

// step runs one iteration of §4.10's shared loop body.
func (e *Engine) step() error {
	candidate, err := e.strategy.propose(e)
	if err != nil {
		return err
	}
	m := e.penaltyMgr.Multipliers()
	if err := localsearch.Run(candidate, e.tbl, e.src, m, e.opts.FixedCost, e.opts.LocalSearch); err != nil {
		return err
	}
	e.penaltyMgr.Register(observationOf(candidate))
	m = e.penaltyMgr.Multipliers()

	bestCost := e.cost(e.incumbent, m)
	currentCost := e.cost(e.current, m)
	candidateCost := e.cost(candidate, m)

	accepted := false
	if candidateCost < bestCost {
		e.incumbent = candidate
		e.current = candidate
		accepted = true
	} else if !candidate.Feasible() && e.src.Float64() < e.opts.RepairProbability {
		boosted := candidate.Clone()
		if err := localsearch.Run(boosted, e.tbl, e.src, e.penaltyMgr.Boosted(), e.opts.FixedCost, e.opts.LocalSearch); err != nil {
			return err
		}
		// Open Question #2: acceptance runs on the cost produced *after*
		// the boosted local-search pass, evaluated at the normal
		// (non-boosted) multipliers — literal per spec's flagged
		// interpretation; see DESIGN.md.
		boostedCost := e.cost(boosted, m)
		candidate = boosted
		candidateCost = boostedCost
		if boostedCost < bestCost {
			e.incumbent = boosted
			e.current = boosted
			accepted = true
		}
	}

	if !accepted && e.opts.Acceptance(bestCost, currentCost, candidateCost, e.progress()) {
		e.current = candidate
	}

	if candidate.Feasible() {
		fc := e.cost(candidate, m)
		if e.bestFeasible == nil || fc < e.cost(e.bestFeasible, m) {
			e.bestFeasible = candidate
		}
	}

	if e.pop != nil {
		if _, _, err := e.pop.Insert(candidate, m, e.opts.FixedCost); err != nil {
			return err
		}
	}

	e.recordStat(m, candidateCost)
	e.iteration++
	return nil
}

func (e *Engine) recordStat(m penalty.Multipliers, candidateCost float64) {
	stat := IterationStat{
		Iteration:          e.iteration,
		CurrentCost:        candidateCost,
		BestCost:           e.cost(e.incumbent, m),
		LoadMultiplier:     m.Load,
		TimeWarpMultiplier: m.TimeWarp,
		DistanceMultiplier: m.Distance,
		DurationMultiplier: m.Duration,
	}
	if e.pop != nil {
		stat.FeasiblePopSize = e.pop.NumFeasible()
		stat.InfeasiblePopSize = e.pop.NumInfeasible()
	}
	if p, ok := e.penaltyMgr.FeasibleFraction(penalty.Load); ok {
		stat.LoadFeasibleFraction = p
	}
	if p, ok := e.penaltyMgr.FeasibleFraction(penalty.TimeWarp); ok {
		stat.TimeWarpFeasibleFraction = p
	}
	if p, ok := e.penaltyMgr.FeasibleFraction(penalty.Distance); ok {
		stat.DistanceFeasibleFraction = p
	}
	if p, ok := e.penaltyMgr.FeasibleFraction(penalty.Duration); ok {
		stat.DurationFeasibleFraction = p
	}
	e.stats = append(e.stats, stat)
}

func (e *Engine) result() Result {
	best := e.bestFeasible
	feasible := true
	if best == nil {
		// §7: "no feasible solution found within the stopping budget: not
		// an error; the best infeasible solution is returned."
		best = e.incumbent
		feasible = false
	}
	return Result{
		RunID:      uuid.New(),
		Best:       best,
		Feasible:   feasible,
		Elapsed:    time.Since(e.startedAt),
		Iterations: e.iteration,
		Stats:      e.stats,
	}
}

// ilsStrategy perturbs via destroy+repair of the current solution.
type ilsStrategy struct{}

func (s *ilsStrategy) init(e *Engine) error {
	initial, err := construct.Build(e.problem, e.src, e.opts.Construct)
	if err != nil {
		return err
	}
	if err := localsearch.Run(initial, e.tbl, e.src, e.penaltyMgr.Multipliers(), e.opts.FixedCost, e.opts.LocalSearch); err != nil {
		return err
	}
	e.current = initial
	e.incumbent = initial
	if initial.Feasible() {
		e.bestFeasible = initial
	}
	return nil
}

func (s *ilsStrategy) propose(e *Engine) (*model.Solution, error) {
	perturbed := e.current.Clone()
	if err := destroy.Run(perturbed, e.tbl, e.src, e.opts.Destroy); err != nil {
		return nil, err
	}
	if err := repair.Run(perturbed, e.src, e.penaltyMgr.Multipliers(), e.opts.FixedCost, e.opts.Repair); err != nil {
		return nil, err
	}
	return perturbed, nil
}

// geneticStrategy perturbs via SREX crossover of two tournament-selected
// parents (§4.10's "same loop shape ... perturbed ← crossover(parent1,
// parent2)").
type geneticStrategy struct{}

// seedPopulationSize is how many independently constructed initial
// solutions geneticStrategy.init seeds the population with: MinSize,
// raised to at least 2 so SelectParents always has at least two entries
// to draw from.
func seedPopulationSize(opts Options) int {
	n := opts.Population.MinSize
	if n < 2 {
		n = 2
	}
	return n
}

func (s *geneticStrategy) init(e *Engine) error {
	n := seedPopulationSize(e.opts)
	for i := 0; i < n; i++ {
		seed := e.src.Split(uint64(i) + 1)
		sol, err := construct.Build(e.problem, seed, e.opts.Construct)
		if err != nil {
			return err
		}
		if err := localsearch.Run(sol, e.tbl, seed, e.penaltyMgr.Multipliers(), e.opts.FixedCost, e.opts.LocalSearch); err != nil {
			return err
		}
		if _, _, err := e.pop.Insert(sol, e.penaltyMgr.Multipliers(), e.opts.FixedCost); err != nil {
			return err
		}
		if e.incumbent == nil || e.cost(sol, e.penaltyMgr.Multipliers()) < e.cost(e.incumbent, e.penaltyMgr.Multipliers()) {
			e.incumbent = sol
			e.current = sol
		}
		if sol.Feasible() && (e.bestFeasible == nil || e.cost(sol, e.penaltyMgr.Multipliers()) < e.cost(e.bestFeasible, e.penaltyMgr.Multipliers())) {
			e.bestFeasible = sol
		}
	}
	return nil
}

func (s *geneticStrategy) propose(e *Engine) (*model.Solution, error) {
	p1, p2, err := e.pop.SelectParents(e.src)
	if err != nil {
		return nil, err
	}
	return crossover.Run(p1.Solution, p2.Solution, e.src, e.penaltyMgr.Multipliers(), e.opts.FixedCost, e.opts.Crossover)
}
