package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/penalty"
)

func TestManager_RejectsBadOptions(t *testing.T) {
	opts := penalty.DefaultOptions()
	opts.WindowSize = 0
	_, err := penalty.New(opts)
	require.ErrorIs(t, err, penalty.ErrInvalidWindowSize)
}

func TestManager_LoadPenaltyIncreasesUnderPersistentInfeasibility(t *testing.T) {
	opts := penalty.DefaultOptions()
	opts.WindowSize = 50
	opts.UpdateInterval = 1
	m, err := penalty.New(opts)
	require.NoError(t, err)

	initial := m.Multipliers().Load
	for i := 0; i < 200; i++ {
		m.Register(penalty.Observation{
			LoadFeasible:     false,
			TimeWarpFeasible: true,
			DistFeasible:     true,
			DurFeasible:      true,
		})
	}
	require.Greater(t, m.Multipliers().Load, initial)
}

func TestManager_PenaltyDecreasesUnderPersistentFeasibility(t *testing.T) {
	opts := penalty.DefaultOptions()
	opts.Initial[penalty.Load] = 50
	m, err := penalty.New(opts)
	require.NoError(t, err)

	for i := 0; i < opts.WindowSize*2; i++ {
		m.Register(penalty.Observation{LoadFeasible: true, TimeWarpFeasible: true, DistFeasible: true, DurFeasible: true})
	}
	require.Less(t, m.Multipliers().Load, 50.0)
}

func TestManager_ClampsWithinBounds(t *testing.T) {
	opts := penalty.DefaultOptions()
	opts.Min[penalty.Load] = 1
	opts.Max[penalty.Load] = 2
	opts.Initial[penalty.Load] = 2
	m, err := penalty.New(opts)
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		m.Register(penalty.Observation{LoadFeasible: false, TimeWarpFeasible: true, DistFeasible: true, DurFeasible: true})
	}
	require.LessOrEqual(t, m.Multipliers().Load, 2.0)
	require.GreaterOrEqual(t, m.Multipliers().Load, 1.0)
}

func TestManager_BoostedScalesMultipliers(t *testing.T) {
	opts := penalty.DefaultOptions()
	opts.BoostFactor = 10
	m, err := penalty.New(opts)
	require.NoError(t, err)
	boosted := m.Boosted()
	require.Equal(t, m.Multipliers().Load*10, boosted.Load)
}
