package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpgo/model"
)

func TestSolution_EmptyInstanceIsFeasibleZeroCost(t *testing.T) {
	pd := smallProblem(t)
	pd.Clients = nil // empty instance: only the depot
	s := model.NewSolution(pd)
	require.True(t, s.Feasible())
	require.Equal(t, int64(0), s.TotalDistance())
	require.Equal(t, 0, s.NumMissingRequired())
}

func TestSolution_MissingRequiredClientDetected(t *testing.T) {
	pd := smallProblem(t)
	s := model.NewSolution(pd)
	r := model.NewRoute(pd, 0, 3)
	require.NoError(t, r.InsertAt(0, 0))
	s.Routes = []*model.Route{r}
	s.Unassigned = []int{1, 2}
	s.Recompute()

	require.False(t, s.Feasible())
	require.Equal(t, 2, s.NumMissingRequired())
}

func TestSolution_EqualIgnoresRouteOrderAndRotation(t *testing.T) {
	pd := smallProblem(t)

	build := func(seqs [][]int) *model.Solution {
		s := model.NewSolution(pd)
		for _, seq := range seqs {
			r := model.NewRoute(pd, 0, len(seq))
			for i, c := range seq {
				require.NoError(t, r.InsertAt(i, c))
			}
			s.Routes = append(s.Routes, r)
		}
		s.Recompute()
		return s
	}

	a := build([][]int{{0, 1}, {2}})
	// same routes, different order, first route cyclically rotated
	b := build([][]int{{2}, {1, 0}})

	require.True(t, a.Equal(b))
}

func TestSolution_EqualDetectsDifferentAssignment(t *testing.T) {
	pd := smallProblem(t)
	build := func(seqs [][]int) *model.Solution {
		s := model.NewSolution(pd)
		for _, seq := range seqs {
			r := model.NewRoute(pd, 0, len(seq))
			for i, c := range seq {
				require.NoError(t, r.InsertAt(i, c))
			}
			s.Routes = append(s.Routes, r)
		}
		s.Recompute()
		return s
	}
	a := build([][]int{{0, 1, 2}})
	b := build([][]int{{0, 1}, {2}})
	require.False(t, a.Equal(b))
}

func TestSolution_CloneIsIndependent(t *testing.T) {
	pd := smallProblem(t)
	s := model.NewSolution(pd)
	r := model.NewRoute(pd, 0, 3)
	require.NoError(t, r.InsertAt(0, 0))
	s.Routes = []*model.Route{r}
	s.Recompute()

	clone := s.Clone()
	require.NoError(t, clone.Routes[0].InsertAt(1, 1))
	require.Equal(t, 1, s.Routes[0].Len())
	require.Equal(t, 2, clone.Routes[0].Len())
}
