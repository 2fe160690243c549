// Package destroy implements C9's destroy half: operators that take a
// feasible-or-not Solution and remove some of its visited clients,
// returning the clients removed only as Solution.Unassigned entries — the
// routes themselves are rebuilt without them. repair then re-inserts what
// destroy took out, and the combined destroy+repair cycle is the ILS
// driver's perturbation step (§4.10).
//
// # Algorithms & Complexity
//
//   - RandomRemoval draws k ∈ [1, min(Options.Strength, visited count)]
//     clients uniformly from every currently-visited client and removes
//     them. O(n) to rebuild affected routes.
//   - ConcentricRemoval picks one random visited client as a seed, then
//     repeatedly steps to a uniformly random not-yet-removed neighbour
//     (from the caller's neighbourhood.Table) of the most recently added
//     client, stopping once k distinct clients are marked — a bounded
//     random walk over the granular neighbourhood graph, the same
//     frontier-growth shape prim_kruskal/prim.go uses to grow a spanning
//     tree, with "nearest unvisited neighbour" relaxed to "any unvisited
//     neighbour" since this operator wants a perturbation, not an
//     optimum. O(k) walk steps, each O(1) amortized against the
//     precomputed candidate list.
//   - StringRemoval repeatedly removes a contiguous, cyclically-wrapped
//     arc of up to Options.MaxStringSize clients from the current route,
//     then hops to the remaining route whose centroid (model.Route's
//     unweighted client-coordinate average) is closest to the
//     just-modified route's centroid, until the budget k is spent or no
//     route remains to hop to. Each removal step is kept instead of
//     applied with probability Options.KeepProbability, a genuine
//     variant per the spec's Open Question #3 rather than a debugging
//     artefact to special-case away. O(budget * R) for the R-route
//     nearest-hop scan.
//
// Determinism: every draw — which clients, which walk step, which string
// size/offset, which keep/remove coin flip — comes from the caller's
// rng.Source, never a package-level or time-seeded generator, so the same
// (Solution, Options, seed) always produces the same destroyed Solution.
package destroy
