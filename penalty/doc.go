// Package penalty implements C5, the adaptive penalty manager: four
// multipliers (load, time warp, distance, duration), each clamped to a
// configurable [min, max], adapted from a sliding window of per-dimension
// feasibility observations (§4.3).
//
// # Algorithms & Complexity
//
// Register is O(1) (a ring buffer per dimension) apart from the update it
// triggers every UpdateInterval registrations (every registration under
// DefaultOptions). The update scans the window once per dimension — O(K)
// where K is the window size.
//
// # Determinism & Stability
//
// Update consults no randomness; two managers fed the same registration
// sequence and the same parameters always reach the same multipliers.
package penalty
