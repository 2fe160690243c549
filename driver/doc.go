// Package driver implements C12: the top-level search engine. Two
// interchangeable strategies (iterated local search, genetic) share one
// loop shape (§4.10); a pluggable Acceptance criterion and a Stop
// predicate round out the public surface.
//
// # Algorithm
//
// Engine.Run constructs an initial solution (construct.Build, then
// localsearch.Run), then repeats Engine.step until the caller's Stop
// predicate fires:
//
//  1. strategy.propose produces a "perturbed" candidate: destroy+repair
//     of the current solution for IteratedLocalSearch, or SREX crossover
//     of two tournament-selected parents for Genetic (§4.10's "same loop
//     shape, perturbed ← crossover(parent1, parent2)").
//  2. localsearch.Run improves the candidate; penaltyMgr.Register records
//     its per-dimension feasibility (§4.3's adaptive multiplier update).
//  3. If the candidate's cost beats the incumbent, it becomes both the
//     new incumbent and the new current solution.
//  4. Otherwise, if the candidate is infeasible and a coin flip against
//     RepairProbability succeeds, a second local-search pass runs under
//     boosted penalties; if *that* beats the incumbent, it is adopted
//     (Open Question #2: the comparison cost is evaluated after the
//     boosted pass, at the normal multipliers — literal per spec, see
//     DESIGN.md).
//  5. Otherwise the configured Acceptance criterion decides whether the
//     candidate replaces current (but never incumbent).
//  6. The best-feasible-so-far tracker is updated independently of
//     incumbent (Open Question #1: driver tracks best-feasible and
//     best-including-infeasible as two separate values — see
//     Engine.BestFeasible / Engine.Incumbent).
//
// # Grounding
//
// The Strategy-behind-one-interface shape generalizes tsp/solve.go's
// `switch opts.Algo` dispatcher so that adding a strategy never grows a
// switch statement, matching §9's "polymorphic operators ... realised as
// closed tagged variants with a uniform evaluate/apply contract". Stop
// and Acceptance follow the same closed-variant shape: both are plain
// function types so MaxIterations/MaxRuntime/Any and
// RecordToRecordTravel/GreedyAccept compose without an interface
// allocation per call.
package driver
