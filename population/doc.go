// Package population implements C11: two bounded sub-populations
// (feasible, infeasible), biased-fitness-driven survivor purging, binary
// tournament selection, and best-so-far tracking (§4.9).
//
// # Algorithm
//
// Insert evaluates a candidate solution's penalised cost and feasibility,
// routes it to the matching sub-population, and skips it outright if an
// equal solution (model.Solution.Equal) is already present — "duplicates
// are purged first". Each sub-population's biased fitness is then
// recomputed (diversity.BiasedFitness over every pairwise
// diversity.BrokenPairsDistance) and, while the sub-population exceeds
// min_size+generation_size, its highest-fitness ("worst") entry is
// removed and fitness recomputed again, until size returns to min_size.
//
// SelectParents runs a binary tournament (draw two distinct entries from
// the union of both sub-populations, keep the lower-fitness one) twice,
// retrying the second draw up to 10 times until the pair's diversity
// falls in [lb_diversity, ub_diversity].
//
// BestFeasible is tracked outside both pools: an Entry pointer survives
// purging by construction (a pool only ever drops references from its
// own slice; nothing mutates or frees the Entry itself), matching §9's
// "best-so-far tracking is decoupled from population lifecycle".
//
// # Grounding
//
// The Options+DefaultOptions()+bounded-collection shape follows
// builder/config.go's pattern; stable per-entry handles use
// github.com/google/uuid instead of builder's string vertex IDs, since a
// population entry has no natural external name to reuse as a handle.
package population
