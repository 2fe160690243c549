package neighbourhood

import (
	"container/heap"

	"github.com/routeforge/vrpgo/model"
)

// Table holds one granular candidate list per (distance profile, client)
// pair, built once and shared read-only across the population (§5).
type Table struct {
	opts  Options
	lists [][][]int // lists[profile][client] = ordered candidate client indices, closest first
}

// New builds a Table for every distance profile present in pd.
func New(pd *model.ProblemData, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	numProfiles := len(pd.Distances)
	if numProfiles == 0 {
		return nil, ErrNoProfiles
	}

	t := &Table{opts: opts, lists: make([][][]int, numProfiles)}
	n := pd.NumClients()
	for p := 0; p < numProfiles; p++ {
		t.lists[p] = make([][]int, n)
		for c := 0; c < n; c++ {
			t.lists[p][c] = t.buildOne(pd, p, c)
		}
	}
	return t, nil
}

// Neighbours returns client c's ordered granular candidate list under
// distance profile p, closest first. The returned slice must not be
// mutated; it is shared by every caller.
func (t *Table) Neighbours(profile, client int) []int {
	return t.lists[profile][client]
}

// candidate pairs a client-local index with its proximity score.
type candidate struct {
	client int
	score  float64
}

// maxHeap retains the opts.NBGranular smallest-score candidates seen so
// far by keeping the worst (largest score) at the root, so a better
// arrival can evict it in O(log k) — container/heap in the same role
// lvlath's dijkstra package uses it for shortest-path relaxation, just
// inverted from "smallest first out" to "largest first out".
type maxHeap []candidate

func (h maxHeap) Len() int { return len(h) }
func (h maxHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return h[i].client > h[j].client // tie-break: higher index sorts as "worse" so lower survives
}
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (t *Table) buildOne(pd *model.ProblemData, profile, client int) []int {
	n := pd.NumClients()
	k := t.opts.NBGranular
	if k > n-1 {
		k = n - 1
	}
	if k <= 0 {
		return nil
	}

	h := make(maxHeap, 0, k)
	for other := 0; other < n; other++ {
		if other == client {
			continue
		}
		score := t.proximity(pd, profile, client, other)
		cand := candidate{client: other, score: score}
		if h.Len() < k {
			heap.Push(&h, cand)
			continue
		}
		if cand.score < h[0].score || (cand.score == h[0].score && cand.client < h[0].client) {
			h[0] = cand
			heap.Fix(&h, 0)
		}
	}

	out := make([]int, h.Len())
	tmp := make(maxHeap, len(h))
	copy(tmp, h)
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&tmp).(candidate).client
	}
	return out
}

// proximity implements §4.4's candidate score: symmetric travel cost plus
// a time-window compatibility penalty in both directions plus an
// idle-wait penalty, so clients that are geographically close but
// temporally incompatible still rank behind ones that are slightly
// farther but reachable without forced waiting or time warp.
func (t *Table) proximity(pd *model.ProblemData, profile, localC, localD int) float64 {
	c := pd.ClientIndex(localC)
	d := pd.ClientIndex(localD)
	clientC := pd.ClientAt(c)
	clientD := pd.ClientAt(d)

	distCD := pd.Dist(profile, c, d)
	distDC := pd.Dist(profile, d, c)
	durCD := pd.Dur(profile, c, d)
	durDC := pd.Dur(profile, d, c)

	score := float64(distCD + distDC)

	warpAfterC := clientD.TWEarly - (clientC.TWLate + clientC.ServiceDuration + durCD)
	score += t.opts.WeightTimeWindow * max64f(0, float64(warpAfterC))

	warpAfterD := clientC.TWEarly - (clientD.TWLate + clientD.ServiceDuration + durDC)
	score += t.opts.WeightTimeWindow * max64f(0, float64(warpAfterD))

	wait := clientD.TWEarly - clientC.TWLate - clientC.ServiceDuration - durCD
	score += t.opts.WeightWait * max64f(0, float64(wait))

	return score
}

func max64f(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
