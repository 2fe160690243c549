// Package localsearch implements C7: the node- and route-operator local
// search described in §4.5, run to a local optimum under a fixed set of
// penalty multipliers.
//
// # Algorithms & Complexity
//
// The teacher's tsp.TwoOpt evaluates a candidate move's cost delta directly
// from a prefetched dense weight buffer (Δ = new arcs − old arcs) and
// applies it in place only when the delta improves, restarting the scan
// after every accepted move (first-improvement). vrpgo generalizes that
// same shape to a heterogeneous fleet with time windows, capacities and
// multiple route operators: each candidate move is priced by cloning only
// the one or two routes it touches, applying the candidate mutation to the
// clone, and diffing the clone's penalised cost against the original — the
// clone reuses model.Route's existing segment-summary refresh rather than
// re-deriving Concat algebra per operator, so pricing a move stays
// proportional to the size of the touched routes, never to the whole
// solution. Moves are applied to the real solution only when they accepted;
// otherwise the clone is discarded.
//
// The main loop follows §4.5: a random permutation of clients is
// scanned; for each client U, every V in U's granular neighbourhood
// (plus both depots of U's own route) is tried against every node
// operator; the first (or best, depending on Options.Policy) improving
// move is applied and scanning restarts with a fresh random permutation.
// Once a full scan finds no node improvement, route operators run over
// every pair of routes.
// Passes alternate until neither finds an improvement, which is guaranteed
// to terminate because every applied move strictly decreases penalised
// cost under the fixed multipliers and cost is bounded below (§4.5).
//
// # Determinism & Stability
//
// The only randomness is the scan permutations, drawn from the
// rng.Source passed in by the caller; operator evaluation and the
// improvement policy are otherwise deterministic given the same solution,
// neighbourhood table and penalty multipliers.
package localsearch
