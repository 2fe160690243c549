// Package construct builds an initial model.Solution for a ProblemData
// instance, dispatched by Options.Variant the way the teacher's builder
// package dispatches one of its impl_*.go topology constructors from a
// BuilderOption-resolved config: a single public entry point (Build)
// resolves options once and delegates to one variant implementation.
//
// # Algorithms & Complexity
//
//   - RandomisedSweep orders required clients by polar angle around the
//     first depot, starting from a random offset drawn from the caller's
//     rng.Source, then greedily packs them into routes in that order,
//     opening vehicles in fleet order and skipping clients that do not fit
//     a given vehicle (by capacity or vehicle-type permission) to a
//     leftover list retried against the next vehicle. O(n log n) for the
//     sort, O(V*n) for the packing pass across V opened vehicles.
//   - NearestNeighbour repeatedly extends the current route with the
//     closest remaining required client it is permitted to serve, and
//     closes the route and opens the next vehicle as soon as that closest
//     client does not fit the remaining capacity (farther clients that
//     would fit are not tried). O(V*n) distance comparisons.
//
// Only required clients are routed by construction; optional
// (non-Required) clients are left unassigned for the local search and
// repair stages to pick up opportunistically if their Prize makes it
// worthwhile — initial construction's only job is a feasible-as-possible
// seed, not a finished solution.
//
// # Determinism & Stability
//
// RandomisedSweep consumes exactly one rng.Source draw (the sweep's start
// angle); NearestNeighbour consumes none. Both are otherwise pure
// functions of (ProblemData, fleet order), so the same inputs always
// produce the same initial solution.
package construct
