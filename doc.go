// Package vrpgo is a metaheuristic Vehicle Routing Problem solver: an
// iterated-local-search / genetic engine over a granular neighbourhood,
// with adaptive penalty multipliers standing in for hard capacity and
// time-window constraints.
//
// Packages, by concern:
//
//	model/         — ProblemData, Client, Depot, VehicleType, Route, Solution
//	matrix/        — distance/duration matrices, rounding policies
//	rng/           — splittable deterministic random source
//	penalty/       — adaptive per-dimension penalty multipliers
//	neighbourhood/ — bounded top-k proximity lists (granular neighbourhoods)
//	costeval/      — solution cost evaluation (distance, time warp, excess load, fixed cost)
//	construct/      — initial-solution construction heuristics
//	localsearch/   — node/route operator local search
//	destroy/       — perturbation operators (random/concentric/string removal)
//	repair/        — reinsertion heuristics
//	crossover/     — selective route exchange (SREX)
//	diversity/     — broken-pairs distance, biased fitness
//	population/    — feasible/infeasible sub-populations, parent selection
//	driver/        — the top-level engine: ILS and genetic strategies share one loop
//	ioadapters/    — TOML config <-> Options, Result <-> stats CSV
//
// cmd/vrpgo is the CLI entrypoint (`vrpgo solve <instance.json>`).
//
// See SPEC_FULL.md for the full specification and DESIGN.md for the
// per-package grounding ledger.
package vrpgo
