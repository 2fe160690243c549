package diversity

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/routeforge/vrpgo/model"
)

// arc is a directed successor pair; depotSentinel stands in for "the
// depot", since broken-pairs distance per §4.8 only distinguishes
// client-to-client and client-to-depot transitions, never which depot.
const depotSentinel = -1

type arc struct{ from, to int }

func arcSet(s *model.Solution) map[arc]bool {
	out := make(map[arc]bool)
	for _, r := range s.Routes {
		prev := depotSentinel
		for _, c := range r.Clients() {
			out[arc{prev, c}] = true
			prev = c
		}
		out[arc{prev, depotSentinel}] = true
	}
	return out
}

// BrokenPairsDistance is the fraction of successor arcs present in one
// solution but not the other, normalised by 2×numClients (§4.8, GLOSSARY
// "Broken-pairs distance"). Returns 0 for a client-less problem.
func BrokenPairsDistance(a, b *model.Solution) float64 {
	arcsA := arcSet(a)
	arcsB := arcSet(b)

	broken := 0
	for arc := range arcsA {
		if !arcsB[arc] {
			broken++
		}
	}
	for arc := range arcsB {
		if !arcsA[arc] {
			broken++
		}
	}

	n := a.Problem.NumClients()
	if n == 0 {
		return 0
	}
	return float64(broken) / float64(2*n)
}

// BiasedFitness ranks n entries by raw cost and by mean diversity to each
// entry's nb_close closest neighbours, combining both ranks per §4.8's
// formula. diversityMatrix[i][j] must hold the pairwise diversity between
// entries i and j (the diagonal is ignored). Entries among the nb_elite
// lowest-cost are exempt from the diversity term ("protected").
func BiasedFitness(costs []float64, diversityMatrix [][]float64, opts Options) ([]float64, error) {
	n := len(costs)
	if err := opts.Validate(n); err != nil {
		return nil, err
	}
	if len(diversityMatrix) != n {
		return nil, ErrMismatchedSize
	}
	for _, row := range diversityMatrix {
		if len(row) != n {
			return nil, ErrMismatchedSize
		}
	}
	if n == 0 {
		return nil, nil
	}

	costOrder := make([]int, n)
	for i := range costOrder {
		costOrder[i] = i
	}
	sort.SliceStable(costOrder, func(a, b int) bool { return costs[costOrder[a]] < costs[costOrder[b]] })
	rCost := make([]int, n)
	for rank, idx := range costOrder {
		rCost[idx] = rank
	}

	meanDiv := make([]float64, n)
	neighbours := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		neighbours = neighbours[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			neighbours = append(neighbours, diversityMatrix[i][j])
		}
		sort.Float64s(neighbours)
		k := opts.NbClose
		if k > len(neighbours) {
			k = len(neighbours)
		}
		if k == 0 {
			continue
		}
		meanDiv[i] = stat.Mean(neighbours[:k], nil)
	}

	divOrder := make([]int, n)
	for i := range divOrder {
		divOrder[i] = i
	}
	sort.SliceStable(divOrder, func(a, b int) bool { return meanDiv[divOrder[a]] > meanDiv[divOrder[b]] })
	rDiv := make([]int, n)
	for rank, idx := range divOrder {
		rDiv[idx] = rank
	}

	isElite := make([]bool, n)
	for _, idx := range costOrder[:opts.NbElite] {
		isElite[idx] = true
	}

	divWeight := 1 - float64(opts.NbElite)/float64(n)
	fitness := make([]float64, n)
	for i := 0; i < n; i++ {
		if isElite[i] {
			fitness[i] = float64(rCost[i]) / float64(n)
			continue
		}
		fitness[i] = (float64(rCost[i]) + divWeight*float64(rDiv[i])) / float64(n)
	}
	return fitness, nil
}
