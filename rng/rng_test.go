package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/rng"
)

func TestSource_DeterministicGivenSameSeed(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSource_ZeroSeedIsStable(t *testing.T) {
	a := rng.New(0)
	b := rng.New(0)
	require.Equal(t, a.Float64(), b.Float64())
}

func TestSource_SplitIsDeterministicPerStream(t *testing.T) {
	parent1 := rng.New(7)
	parent2 := rng.New(7)
	c1 := parent1.Split(3)
	c2 := parent2.Split(3)
	require.Equal(t, c1.Intn(1_000_000), c2.Intn(1_000_000))
}

func TestSource_PermRangeIsPermutation(t *testing.T) {
	s := rng.New(5)
	p := s.PermRange(20)
	seen := make(map[int]bool, 20)
	for _, v := range p {
		require.False(t, seen[v])
		seen[v] = true
	}
	require.Len(t, seen, 20)
}
