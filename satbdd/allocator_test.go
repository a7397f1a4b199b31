// SPDX-License-Identifier: MIT
package satbdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/satbdd/robdd"
	"github.com/opentimely/esta/transition"
)

func TestUniformTransitionsArePairwiseDisjointAndExhaustive(t *testing.T) {
	mgr := robdd.NewManager()
	alloc, err := NewAllocator(mgr, CondFuncConfig{Scheme: Uniform})
	require.NoError(t, err)

	input := graph.NodeID(0)
	alloc.Allocate(input)

	rise := alloc.TransitionRef(input, transition.Rise)
	fall := alloc.TransitionRef(input, transition.Fall)
	high := alloc.TransitionRef(input, transition.High)
	low := alloc.TransitionRef(input, transition.Low)

	for _, pair := range [][2]robdd.Ref{{rise, fall}, {rise, high}, {rise, low}, {fall, high}, {fall, low}, {high, low}} {
		assert.Equal(t, mgr.Zero(), mgr.And(pair[0], pair[1]))
	}

	union := mgr.Or(mgr.Or(rise, fall), mgr.Or(high, low))
	assert.Equal(t, mgr.One(), union)

	for _, r := range []robdd.Ref{rise, fall, high, low} {
		assert.InDelta(t, 0.25, mgr.CountMintermFraction(r), 1e-12)
	}
}

func TestGroupedRoundRobinPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	mgr := robdd.NewManager()
	cfg := CondFuncConfig{
		Scheme:      Grouped,
		GroupScheme: RoundRobin,
		K:           3, // 8 minterms
		Counts:      Counts{Rise: 2, Fall: 2, High: 2, Low: 2},
	}
	alloc, err := NewAllocator(mgr, cfg)
	require.NoError(t, err)

	input := graph.NodeID(0)
	alloc.Allocate(input)

	refs := []robdd.Ref{
		alloc.TransitionRef(input, transition.Rise),
		alloc.TransitionRef(input, transition.Fall),
		alloc.TransitionRef(input, transition.High),
		alloc.TransitionRef(input, transition.Low),
	}

	union := mgr.Zero()
	for i := range refs {
		for j := i + 1; j < len(refs); j++ {
			assert.Equal(t, mgr.Zero(), mgr.And(refs[i], refs[j]))
		}
		union = mgr.Or(union, refs[i])
	}
	assert.Equal(t, mgr.One(), union)

	for _, r := range refs {
		assert.InDelta(t, 0.25, mgr.CountMintermFraction(r), 1e-12)
	}
}

func TestGroupedBinaryAndGraySchemesArePartitionsToo(t *testing.T) {
	for _, scheme := range []GroupScheme{Binary, Gray} {
		mgr := robdd.NewManager()
		cfg := CondFuncConfig{
			Scheme:      Grouped,
			GroupScheme: scheme,
			K:           2,
			Counts:      Counts{Rise: 1, Fall: 1, High: 1, Low: 1},
		}
		alloc, err := NewAllocator(mgr, cfg)
		require.NoError(t, err)

		input := graph.NodeID(0)
		alloc.Allocate(input)

		union := mgr.Zero()
		refs := []robdd.Ref{
			alloc.TransitionRef(input, transition.Rise),
			alloc.TransitionRef(input, transition.Fall),
			alloc.TransitionRef(input, transition.High),
			alloc.TransitionRef(input, transition.Low),
		}
		for i := range refs {
			for j := i + 1; j < len(refs); j++ {
				assert.Equal(t, mgr.Zero(), mgr.And(refs[i], refs[j]))
			}
			union = mgr.Or(union, refs[i])
		}
		assert.Equal(t, mgr.One(), union)
	}
}

func TestInvalidGroupedCountsRejected(t *testing.T) {
	mgr := robdd.NewManager()
	_, err := NewAllocator(mgr, CondFuncConfig{
		Scheme: Grouped,
		K:      2,
		Counts: Counts{Rise: 1, Fall: 1, High: 1, Low: 0}, // sums to 3, not 4
	})
	require.Error(t, err)
}
