// Package matrix provides the dense integer distance/duration matrices the
// solver engine reads, plus the rounding policies applied when an external
// reader builds one from floating-point coordinates (§6).
//
// # What & Why
//
// The core stores distances and times as 64-bit integers once a rounding
// policy has been applied: round (nearest integer), trunc (toward zero),
// dimacs (x10 then truncate), exact (x1000 then round nearest), or none
// (values are assumed already integral). Applying the policy is this
// package's job; parsing VRPLIB/Solomon files is not (that reader is an
// external collaborator, §1) — it only ever calls NewFromFloats.
//
// # Determinism & Stability
//
// A RoundingPolicy is a pure function: given the same float64 input it
// always yields the same int64 output on every platform, the same
// cross-platform-stability goal lvlath's tsp package pursues with
// round1e9 for its float costs.
package matrix
