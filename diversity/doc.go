// Package diversity implements C10: pairwise broken-pairs distance between
// two solutions, and biased-fitness ranking over a population (§4.8).
//
// # Algorithm
//
// BrokenPairsDistance walks each route's successor arcs (client→client,
// and client→depot/depot→client at route ends) and counts how many of
// parent a's arcs are absent from parent b's arc set, plus vice versa,
// normalised by 2×numClients — the same "compare two sequences, produce
// one scalar" shape dtw/dtw.go uses for its rolling cumulative cost, here
// with a 0/1 local cost (arc present/absent) instead of a numeric
// distance.
//
// BiasedFitness ranks n entries twice — ascending by raw cost, descending
// by mean diversity to each entry's nb_close closest neighbours — and
// combines the two ranks per §4.8's formula. The nb_close-closest mean is
// reduced with gonum/stat.Mean rather than a hand-rolled running sum,
// matching SPEC_FULL's ambient-stack choice to prefer gonum over
// hand-written reduction loops for this kind of numeric aggregation.
// Entries within the top nb_elite by raw cost are excluded from the
// diversity term (the elites are "protected"), per §4.8.
//
// # Complexity
//
// BrokenPairsDistance is O(numClients). BiasedFitness is O(n² log n): an
// n×n diversity matrix is assumed precomputed by the caller (population
// owns that cache, refreshing it on each insertion per §4.8 "Recomputed
// after every insertion"); this package only ranks and combines.
package diversity
