// Package crossover implements C8: Selective Route Exchange (SREX,
// Nagata & Kobayashi 2010) between two parent solutions, producing one
// offspring solution.
//
// # Algorithm
//
// Homogeneous SREX (§4.6):
//  1. If either parent visits no clients, return the other parent.
//  2. Draw start indices (i1, i2) and a window size k ∈ [1, min(|P1|,
//     |P2|)] routes.
//  3. Window S1 is parent 1's routes [i1, i1+k) cyclically; S2 is
//     parent 2's symmetrically.
//  4. hillClimb repeatedly shifts S1 or S2's start by ±1 — four
//     neighbouring states per step — committing to whichever strictly
//     increases |clients(S1) ∩ clients(S2)|, the same bounded
//     ascending-neighbour-order discipline tsp/bb.go's branch-and-bound
//     uses to pick a deterministic next move, until no neighbour
//     improves (a local maximum).
//  5. Two offspring are built: (A) parent 1 with S1 replaced by S2's
//     client content (window routes keep parent 1's own vehicle type;
//     any client S2 now owns is dropped from parent 1's unchanged
//     routes to avoid duplication); (B) the symmetric construction.
//     Each is repaired by repair.Run (greedy insertion) for clients left
//     unassigned by the window swap, then priced by costeval.Evaluate;
//     the cheaper of the two (ties favour A) is returned.
//
// Heterogeneous variant partitions both parents' routes by vehicle type
// (groupByVehicleType) and runs steps 2-4 independently per type —
// a type absent from one parent, or drawn a zero-length window, simply
// keeps that type's routes unchanged in both offspring. The per-type
// window replacements are merged into two whole-fleet offspring, each
// passed once through resolveOversubscription (reassigning any
// vehicle-type's excess routes to the first other type with remaining
// NumAvailable capacity whose AllowedClients permits every client the
// route carries) and then a single greedy-repair sweep, before the same
// cost comparison as the homogeneous path.
//
// # Complexity
//
// hillClimb re-derives each candidate window's client set from scratch
// (O(k) per candidate, 4 candidates per step, bounded by route count
// steps before a local maximum is reached) rather than maintaining an
// incremental diff — correctness over micro-optimisation, matching
// every other clone-and-diff pricing path in this module (see
// localsearch/delta.go, repair/delta.go).
//
// Determinism: every draw (start indices, window size, per-type window
// size) comes from the caller's rng.Source.
package crossover
