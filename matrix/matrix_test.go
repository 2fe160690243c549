package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/matrix"
)

func TestDense_SetAndAt(t *testing.T) {
	m := matrix.NewDense(3)
	m.Set(0, 1, 7)
	m.Set(2, 2, 42)
	require.Equal(t, int64(7), m.At(0, 1))
	require.Equal(t, int64(42), m.At(2, 2))
	require.Equal(t, int64(0), m.At(1, 0))
	require.Equal(t, 3, m.Dim())
}

func TestNewDense_NegativeSizeClampsToZero(t *testing.T) {
	m := matrix.NewDense(-5)
	require.Equal(t, 0, m.Dim())
}

func TestNewFromFloats_RejectsDimensionMismatch(t *testing.T) {
	rows := [][]float64{{0, 1}, {1, 0, 2}}
	_, err := matrix.NewFromFloats(rows, matrix.RoundNearest)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewFromFloats_RejectsNegativeEntry(t *testing.T) {
	rows := [][]float64{{0, -1}, {1, 0}}
	_, err := matrix.NewFromFloats(rows, matrix.RoundNearest)
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)
}

func TestNewFromFloats_RejectsScalingOverflow(t *testing.T) {
	big := float64(matrix.MaxEntry) + 1
	rows := [][]float64{{0, big}, {big, 0}}
	_, err := matrix.NewFromFloats(rows, matrix.RoundNearest)
	require.ErrorIs(t, err, matrix.ErrScalingOverflow)
}

func TestRoundingPolicy_Apply(t *testing.T) {
	require.Equal(t, int64(3), matrix.RoundNearest.Apply(2.5))
	require.Equal(t, int64(-3), matrix.RoundNearest.Apply(-2.5))
	require.Equal(t, int64(2), matrix.RoundTrunc.Apply(2.9))
	require.Equal(t, int64(29), matrix.RoundDimacs.Apply(2.9))
	require.Equal(t, int64(2901), matrix.RoundExact.Apply(2.9005))
	require.Equal(t, int64(3), matrix.RoundNone.Apply(2.9))
}

func TestNewFromFloats_AppliesRoundingPerEntry(t *testing.T) {
	rows := [][]float64{{0, 2.6}, {2.6, 0}}
	d, err := matrix.NewFromFloats(rows, matrix.RoundNearest)
	require.NoError(t, err)
	require.Equal(t, int64(3), d.At(0, 1))
	require.Equal(t, int64(3), d.At(1, 0))
	require.Equal(t, int64(0), d.At(0, 0))
}

func TestDistanceAndDurationMatrix_WrapDense(t *testing.T) {
	d, err := matrix.NewFromFloats([][]float64{{0, 5}, {5, 0}}, matrix.RoundNone)
	require.NoError(t, err)

	dist := matrix.NewDistanceMatrix(d)
	dur := matrix.NewDurationMatrix(d)
	require.Equal(t, int64(5), dist.At(0, 1))
	require.Equal(t, int64(5), dur.At(0, 1))
}
