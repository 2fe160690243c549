package matrix

import "errors"

// Sentinel errors for matrix package operations, mirroring the teacher's
// matrix/types.go convention of one var block of errors.New values.
var (
	// ErrDimensionMismatch indicates a non-square matrix or a row/column
	// length that disagrees with the declared dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeEntry indicates a negative distance or duration was supplied.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrIndexOutOfRange names an out-of-bounds index. Dense.At and
	// Dense.Set do not return it: they panic on an out-of-range index.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrScalingOverflow indicates a rounded value exceeds MaxEntry; raised as
	// a scaling warning by NewFromFloats rather than silently saturating,
	// since a silently-scaled instance would change which solutions are
	// feasible.
	ErrScalingOverflow = errors.New("matrix: scaled entry exceeds MaxEntry")
)

// MaxEntry bounds a single matrix entry. Values exceeding it trigger
// ErrScalingOverflow at construction time (§6: "a scaling warning is raised
// if any matrix entry exceeds MAX_VALUE").
const MaxEntry = 1 << 40

// RoundingPolicy converts a floating-point distance/time into the integer
// the engine stores and sums, per §6.
type RoundingPolicy int

const (
	// RoundNearest rounds to the nearest integer (round, ties away from zero).
	RoundNearest RoundingPolicy = iota

	// RoundTrunc truncates toward zero.
	RoundTrunc

	// RoundDimacs multiplies by 10 then truncates, the DIMACS challenge convention.
	RoundDimacs

	// RoundExact multiplies by 1000 then rounds to the nearest integer.
	RoundExact

	// RoundNone assumes the input is already integral; it rounds to nearest
	// only to land on an int64 (no scaling is applied).
	RoundNone
)

// Apply converts v according to the policy. Pure and side-effect free.
func (p RoundingPolicy) Apply(v float64) int64 {
	switch p {
	case RoundTrunc:
		return int64(v)
	case RoundDimacs:
		return int64(v * 10)
	case RoundExact:
		return int64(roundHalfAwayFromZero(v * 1000))
	case RoundNone:
		return int64(roundHalfAwayFromZero(v))
	default: // RoundNearest
		return int64(roundHalfAwayFromZero(v))
	}
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
