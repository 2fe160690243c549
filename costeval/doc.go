// Package costeval implements C4: the penalised-cost function shared by
// every operator that needs to price a solution under the current penalty
// state. Evaluate is pure and thread-safe by construction (no shared
// mutable state, no hidden I/O) — the same contract lvlath's tsp cost
// functions hold (tsp/cost.go's TourCost).
package costeval
