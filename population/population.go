package population

import (
	"github.com/google/uuid"

	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/diversity"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/rng"
)

// Population holds two sub-populations (feasible, infeasible) and a
// best-so-far feasible entry, per §4.9.
type Population struct {
	opts    Options
	divOpts diversity.Options

	feasible     []*Entry
	infeasible   []*Entry
	bestFeasible *Entry
}

// New builds an empty population.
func New(opts Options, divOpts diversity.Options) (*Population, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Population{opts: opts, divOpts: divOpts}, nil
}

// NumFeasible, NumInfeasible report current sub-population sizes.
func (p *Population) NumFeasible() int   { return len(p.feasible) }
func (p *Population) NumInfeasible() int { return len(p.infeasible) }

// BestFeasible returns the best feasible solution ever inserted, or nil if
// none has been.
func (p *Population) BestFeasible() *model.Solution {
	if p.bestFeasible == nil {
		return nil
	}
	return p.bestFeasible.Solution
}

func (p *Population) poolFor(feasible bool) *[]*Entry {
	if feasible {
		return &p.feasible
	}
	return &p.infeasible
}

// Insert evaluates s, routes it to the matching sub-population, and
// purges it if a duplicate is already present. Returns the inserted
// entry, or the pre-existing duplicate entry with inserted=false.
func (p *Population) Insert(s *model.Solution, m penalty.Multipliers, fixedCost costeval.FixedVehicleCost) (entry *Entry, inserted bool, err error) {
	if s == nil {
		return nil, false, ErrNilSolution
	}

	cost := costeval.Evaluate(s, m, fixedCost)
	feasible := s.Feasible()
	pool := p.poolFor(feasible)

	for _, existing := range *pool {
		if existing.Solution.Equal(s) {
			return existing, false, nil
		}
	}

	e := &Entry{ID: uuid.New(), Solution: s, Cost: cost, Feasible: feasible}
	*pool = append(*pool, e)

	if feasible && (p.bestFeasible == nil || cost < p.bestFeasible.Cost) {
		p.bestFeasible = e
	}

	if err := p.recomputeFitness(pool); err != nil {
		return nil, false, err
	}

	// §4.9: once a sub-population exceeds min+generation, purge the worst
	// entry repeatedly until it crashes back down to min, not merely back
	// under the min+generation ceiling.
	if len(*pool) > p.opts.MinSize+p.opts.GenerationSize {
		for len(*pool) > p.opts.MinSize {
			worst := 0
			for i, cand := range *pool {
				if cand.Fitness > (*pool)[worst].Fitness {
					worst = i
				}
			}
			*pool = append((*pool)[:worst], (*pool)[worst+1:]...)
			if err := p.recomputeFitness(pool); err != nil {
				return nil, false, err
			}
		}
	}

	return e, true, nil
}

// recomputeFitness rebuilds the pairwise diversity matrix for pool and
// assigns each entry's Fitness, per §4.8 ("recomputed after every
// insertion").
func (p *Population) recomputeFitness(pool *[]*Entry) error {
	n := len(*pool)
	if n == 0 {
		return nil
	}

	costs := make([]float64, n)
	mat := make([][]float64, n)
	for i, e := range *pool {
		costs[i] = e.Cost
		mat[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := diversity.BrokenPairsDistance((*pool)[i].Solution, (*pool)[j].Solution)
			mat[i][j] = d
			mat[j][i] = d
		}
	}

	divOpts := p.divOpts
	if divOpts.NbElite > n {
		divOpts.NbElite = n
	}
	if divOpts.NbClose > n-1 {
		divOpts.NbClose = n - 1
	}
	fitness, err := diversity.BiasedFitness(costs, mat, divOpts)
	if err != nil {
		return err
	}
	for i, e := range *pool {
		e.Fitness = fitness[i]
	}
	return nil
}

func (p *Population) union() []*Entry {
	all := make([]*Entry, 0, len(p.feasible)+len(p.infeasible))
	all = append(all, p.feasible...)
	all = append(all, p.infeasible...)
	return all
}

func tournament(src *rng.Source, pool []*Entry) *Entry {
	i := src.Intn(len(pool))
	j := src.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	if pool[i].Fitness <= pool[j].Fitness {
		return pool[i]
	}
	return pool[j]
}

// SelectParents runs a binary tournament over the union of both
// sub-populations twice, retrying the second draw up to 10 times until
// the pair's diversity lies in [LbDiversity, UbDiversity] (§4.9).
func (p *Population) SelectParents(src *rng.Source) (*Entry, *Entry, error) {
	pool := p.union()
	if len(pool) < 2 {
		return nil, nil, ErrPopulationTooSmall
	}

	p1 := tournament(src, pool)
	var p2 *Entry
	for attempt := 0; attempt < 10; attempt++ {
		candidate := tournament(src, pool)
		if candidate.ID == p1.ID {
			continue
		}
		div := diversity.BrokenPairsDistance(p1.Solution, candidate.Solution)
		p2 = candidate
		if div >= p.opts.LbDiversity && div <= p.opts.UbDiversity {
			break
		}
	}
	if p2 == nil {
		// every draw collided with p1 itself; the pool has exactly one
		// distinct solution, so pair it with itself.
		p2 = p1
	}
	return p1, p2, nil
}
