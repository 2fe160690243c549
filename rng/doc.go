// Package rng is the engine's single source of pseudo-randomness (C1).
// Every stochastic decision in vrpgo — scan permutations, destroy operator
// choice, SREX window starts — routes through a Source built here; no
// package anywhere else in the module consults math/rand's top-level
// (global) functions, so a fixed seed reproduces a run byte-for-byte (§5).
package rng
