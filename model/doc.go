// Package model defines the value types the vrpgo solver engine consumes
// and produces: the immutable problem instance (ProblemData, Client, Depot,
// VehicleType, Group) and the mutable solution representation (Route,
// Solution) the engine searches over.
//
// # What & Why
//
// ProblemData is built once by an external reader (VRPLIB/Solomon, out of
// scope here) and never mutated again; every Route and Solution borrows a
// *ProblemData by reference and never copies the matrices it holds.
//
// A Route is a vehicle-type index plus an ordered sequence of client
// indices, stored as a doubly-linked chain of nodes with depot sentinels at
// both ends (mirroring an adjacency-list's "head/tail sentinel" discipline).
// Every node carries cached forward and reverse segment summaries, so a
// route's totals (distance, duration, load, time warp) are read in O(1).
// Local search prices a candidate move by rebuilding the touched routes
// through InsertAt, which costs O(len(route)).
//
// # Determinism & Stability
//
//   - No package-level randomness; model never consults math/rand.
//   - Segment summaries are recomputed from the mutation point outward on
//     every structural change (InsertAt, RemoveAt) — never lazily,
//     so a concurrent reader would see a route that is always internally
//     consistent (though model itself assumes single-threaded callers; see
//     DESIGN.md's note on the deliberate absence of locking here).
//
// # Invariants (checked by Route.Validate / Solution.Validate)
//
//   - No depot appears as an internal route node.
//   - Every client is visited by at most one route across a Solution.
//   - Every client in a route is permitted by that route's vehicle type.
package model
