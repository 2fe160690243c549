package matrix

// Dense is a square n x n matrix of int64 entries stored row-major in a
// single flat slice, the same "linearize for cache-friendly reads" trick
// lvlath's tsp.TwoOpt prefetches a dense weight buffer with before its hot
// loop (tsp/two_opt.go). Distance and Duration are distinct named types
// over Dense so the two can never be swapped by mistake at a call site.
type Dense struct {
	n    int
	data []int64
}

// NewDense allocates an n x n matrix, zero-initialized.
func NewDense(n int) Dense {
	if n < 0 {
		n = 0
	}
	return Dense{n: n, data: make([]int64, n*n)}
}

// Dim returns the matrix dimension n.
func (m Dense) Dim() int { return m.n }

// At returns the entry at (i, j). Panics on out-of-range indices, matching
// the teacher's preference for hot-path accessors with zero error-handling
// overhead once validated once at construction (tsp/two_opt.go's at()).
func (m Dense) At(i, j int) int64 {
	return m.data[i*m.n+j]
}

// Set assigns the entry at (i, j).
func (m Dense) Set(i, j int, v int64) {
	m.data[i*m.n+j] = v
}

// NewFromFloats builds a Dense from a row-major float64 matrix under the
// given rounding policy, rejecting negative entries and entries that scale
// past MaxEntry per §6's scaling-warning requirement.
func NewFromFloats(rows [][]float64, policy RoundingPolicy) (Dense, error) {
	n := len(rows)
	m := NewDense(n)
	for i, row := range rows {
		if len(row) != n {
			return Dense{}, ErrDimensionMismatch
		}
		for j, v := range row {
			if v < 0 {
				return Dense{}, ErrNegativeEntry
			}
			scaled := policy.Apply(v)
			if scaled > MaxEntry {
				return Dense{}, ErrScalingOverflow
			}
			m.Set(i, j, scaled)
		}
	}
	return m, nil
}

// DistanceMatrix is a Dense matrix of travel distances.
type DistanceMatrix struct{ Dense }

// DurationMatrix is a Dense matrix of travel durations.
type DurationMatrix struct{ Dense }

// NewDistanceMatrix wraps a Dense as a DistanceMatrix.
func NewDistanceMatrix(d Dense) DistanceMatrix { return DistanceMatrix{d} }

// NewDurationMatrix wraps a Dense as a DurationMatrix.
func NewDurationMatrix(d Dense) DurationMatrix { return DurationMatrix{d} }
