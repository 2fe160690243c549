// Package neighbourhood implements C6: for each client and each distance
// profile, an ordered granular list of the nbGranular closest candidate
// neighbours under the proximity score of §4.4. The neighbourhood is built
// once per run and never rebuilt; every entry is read-only afterwards and
// may be shared by reference across the population (§5).
//
// # Algorithms & Complexity
//
// Building one client's list is a bounded top-k selection over the other
// n-1 locations. Rather than sort all n-1 candidates (O(n log n)) this
// package retains a size-capped max-heap of the k best seen so far and
// replaces its root when a better candidate arrives — container/heap in
// exactly the role lvlath's dijkstra package uses it for shortest-path
// relaxation, repurposed here from "smallest tentative distance first" to
// "k smallest proximity scores overall". Building all lists is
// O(n^2 log k).
package neighbourhood
