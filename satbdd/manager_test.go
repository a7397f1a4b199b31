// SPDX-License-Identifier: MIT
package satbdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/tag"
	"github.com/opentimely/esta/transition"
)

func newTestGraphWithTwoInputs() (*graph.Graph, graph.NodeID, graph.NodeID, graph.NodeID) {
	g := graph.New()
	a := g.AddNode(graph.InpadSource, graph.InvalidDomain, false)
	b := g.AddNode(graph.InpadSource, graph.InvalidDomain, false)
	y := g.AddNode(graph.PrimitiveOpin, graph.InvalidDomain, false)
	return g, a, b, y
}

func TestXfuncSourceTagMatchesCondFunc(t *testing.T) {
	g, a, _, _ := newTestGraphWithTwoInputs()
	store := tag.NewStore(g.NumNodes(), tag.NoBinning{})
	mgr, err := NewManager(g, store, CondFuncConfig{Scheme: Uniform}, 0)
	require.NoError(t, err)

	mgr.Allocator().Allocate(a)

	h := store.MergeData(a, tag.Tag{Domain: 0, Launch: a, Transition: transition.Rise, Arrival: 0})

	got := mgr.Xfunc(h).Ref()
	want := mgr.Allocator().TransitionRef(a, transition.Rise)
	assert.Equal(t, want, got)
}

func TestXfuncCompositeTagIsOrOfScenarioConjunctions(t *testing.T) {
	g, a, b, y := newTestGraphWithTwoInputs()
	store := tag.NewStore(g.NumNodes(), tag.NoBinning{})
	mgr, err := NewManager(g, store, CondFuncConfig{Scheme: Uniform}, 0)
	require.NoError(t, err)

	mgr.Allocator().Allocate(a)
	mgr.Allocator().Allocate(b)

	aRise := store.MergeData(a, tag.Tag{Domain: 0, Launch: a, Transition: transition.Rise, Arrival: 0})
	bRise := store.MergeData(b, tag.Tag{Domain: 0, Launch: b, Transition: transition.Rise, Arrival: 0})
	bFall := store.MergeData(b, tag.Tag{Domain: 0, Launch: b, Transition: transition.Fall, Arrival: 0})

	// composite = (a:Rise & b:Rise) | (a:Rise & b:Fall)
	composite := tag.Tag{
		Domain:     0,
		Transition: transition.Rise,
		Arrival:    1,
		Scenarios: []tag.Scenario{
			{aRise, bRise},
			{aRise, bFall},
		},
	}
	h := store.MergeData(y, composite)

	got := mgr.Xfunc(h).Ref()

	expectedAnd1 := mgr.BDD().And(
		mgr.Allocator().TransitionRef(a, transition.Rise),
		mgr.Allocator().TransitionRef(b, transition.Rise),
	)
	expectedAnd2 := mgr.BDD().And(
		mgr.Allocator().TransitionRef(a, transition.Rise),
		mgr.Allocator().TransitionRef(b, transition.Fall),
	)
	want := mgr.BDD().Or(expectedAnd1, expectedAnd2)

	assert.Equal(t, want, got)
	// composite = a:Rise & (b:Rise | b:Fall); Pr(a:Rise)=1/4, Pr(b:Rise|b:Fall)=1/2.
	assert.InDelta(t, 0.125, mgr.Probability(h), 1e-12)
}

func TestXfuncIsMemoized(t *testing.T) {
	g, a, _, _ := newTestGraphWithTwoInputs()
	store := tag.NewStore(g.NumNodes(), tag.NoBinning{})
	mgr, err := NewManager(g, store, CondFuncConfig{Scheme: Uniform}, 1) // capacity 1 exercises the LRU path
	require.NoError(t, err)
	mgr.Allocator().Allocate(a)

	h := store.MergeData(a, tag.Tag{Domain: 0, Launch: a, Transition: transition.Rise, Arrival: 0})

	first := mgr.Xfunc(h).Ref()
	second := mgr.Xfunc(h).Ref()
	assert.Equal(t, first, second)
}

func TestConstantGenSourceWitnessIsConstantOne(t *testing.T) {
	g := graph.New()
	c := g.AddNode(graph.ConstantGenSource, graph.InvalidDomain, false)
	store := tag.NewStore(g.NumNodes(), tag.NoBinning{})
	mgr, err := NewManager(g, store, CondFuncConfig{Scheme: Uniform}, 0)
	require.NoError(t, err)

	h := store.MergeData(c, tag.Tag{Domain: 0, Launch: c, Transition: transition.High, Arrival: 0})

	assert.True(t, mgr.Xfunc(h).IsOne())
	assert.InDelta(t, 1.0, mgr.Probability(h), 1e-12)
}
