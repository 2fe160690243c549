// Package repair re-inserts clients a destroy operator (or construction)
// left in Solution.Unassigned, the way the teacher's Christofides pipeline
// (tsp/approx.go) repeatedly extends a partial tour by the cheapest
// available edge: both are greedy, both commit to the locally-best choice
// immediately rather than backtracking, and both fall back to a
// deterministic default (greedy matching there, "open a new vehicle" here)
// when the preferred move is unavailable.
//
// # Algorithms & Complexity
//
//   - GreedyInsertion considers every (route, position) pair for a client
//     and commits to the one with the lowest penalised-cost delta,
//     opening a new vehicle of a compatible type when no existing route
//     is better than starting fresh, and leaving the client in
//     Solution.Unassigned only when no vehicle type anywhere is
//     compatible with it or the fleet is fully committed. O(n * R * L)
//     per repair pass, where R is route count and L the average route
//     length.
//   - NearestRouteInsertion restricts the candidate route set to the
//     Options.CandidateRoutes routes whose centroid (model.Route.Centroid)
//     is closest to the client's own (X, Y), falling back to the same
//     open-a-new-vehicle logic when none of those routes improve on it.
//     O(n * (R + CandidateRoutes * L)): the centroid ranking pass is
//     linear in R, the position search is then bounded by the restricted
//     route set.
//
// Run processes Solution.Unassigned in an order drawn once from the
// caller's rng.Source (never iteration order over a map, never the
// package-global math/rand), so two runs with the same seed produce the
// same repaired solution.
//
// Clients are priced exactly as costeval.Evaluate would price the whole
// solution, but only the one or two routes a candidate insertion touches
// are ever rebuilt and diffed — the same routeContribution discipline
// localsearch's delta.go uses, duplicated here rather than imported so
// this package stays usable standalone (destroy+repair is its own
// perturbation step, not only a local-search helper).
package repair
