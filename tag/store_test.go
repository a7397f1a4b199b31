// SPDX-License-Identifier: MIT
package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentimely/esta/delay"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/transition"
)

func TestMergeIdempotenceOnExactRepeat(t *testing.T) {
	store := NewStore(1, NoBinning{})
	candidate := Tag{Domain: 0, Launch: 5, Transition: transition.Rise, Arrival: 2.0}

	h1 := store.MergeData(0, candidate)
	require.Equal(t, 1, store.data[0].Len())

	h2 := store.MergeData(0, candidate)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, store.data[0].Len(), "cardinality must not change on a repeated merge")
}

func TestMergeTakesMaxArrivalAndConcatenatesScenarios(t *testing.T) {
	// Width 4 puts arrivals 1.0 and 3.0 in the same bin so they merge.
	store := NewStore(1, FixedWidth{Width: 4.0})

	// Seed two inner tags to cite as scenarios.
	inner1 := store.MergeData(0, Tag{Domain: 0, Transition: transition.High, Arrival: 0})
	inner2 := store.MergeData(0, Tag{Domain: 0, Transition: transition.Low, Arrival: 0})

	low := Tag{Domain: 0, Transition: transition.Rise, Arrival: 1.0, Scenarios: []Scenario{{inner1}}}
	high := Tag{Domain: 0, Transition: transition.Rise, Arrival: 3.0, Scenarios: []Scenario{{inner2}}}

	h := store.MergeData(0, low)
	h2 := store.MergeData(0, high)
	require.Equal(t, h, h2)

	merged := store.Tag(h)
	assert.Equal(t, delay.Delay(3.0), merged.Arrival)
	assert.Len(t, merged.Scenarios, 2)
}

func TestMergeUpdatesLaunchOnlyOnStrictIncrease(t *testing.T) {
	// Width 10 puts arrivals 2.0 and 5.0 in the same bin so they merge.
	store := NewStore(1, FixedWidth{Width: 10.0})

	first := Tag{Domain: 0, Launch: graph.NodeID(1), Transition: transition.Rise, Arrival: 2.0}
	h := store.MergeData(0, first)

	equalArrivalOtherLaunchCandidate := Tag{Domain: 0, Launch: graph.NodeID(9), Transition: transition.Rise, Arrival: 2.0}
	store.MergeData(0, equalArrivalOtherLaunchCandidate)
	assert.Equal(t, graph.NodeID(1), store.Tag(h).Launch, "equal arrival must not update launch node")

	higher := Tag{Domain: 0, Launch: graph.NodeID(42), Transition: transition.Rise, Arrival: 5.0}
	store.MergeData(0, higher)
	assert.Equal(t, graph.NodeID(42), store.Tag(h).Launch, "strictly higher arrival must update launch node")
}

func TestDistinctTransitionsDoNotMerge(t *testing.T) {
	store := NewStore(1, NoBinning{})
	store.MergeData(0, Tag{Domain: 0, Transition: transition.Rise, Arrival: 1.0})
	store.MergeData(0, Tag{Domain: 0, Transition: transition.Fall, Arrival: 1.0})

	assert.Equal(t, 2, store.data[0].Len())
}

func TestFixedWidthBinningCollapsesNearbyArrivals(t *testing.T) {
	store := NewStore(1, FixedWidth{Width: 1.0})

	store.MergeData(0, Tag{Domain: 0, Transition: transition.Rise, Arrival: 0.1})
	store.MergeData(0, Tag{Domain: 0, Transition: transition.Rise, Arrival: 0.9})

	assert.Equal(t, 1, store.data[0].Len())
}

func TestInsertionOrderPreserved(t *testing.T) {
	store := NewStore(1, NoBinning{})

	store.MergeData(0, Tag{Domain: 0, Transition: transition.Rise, Arrival: 1.0})
	store.MergeData(0, Tag{Domain: 0, Transition: transition.Fall, Arrival: 2.0})
	store.MergeData(0, Tag{Domain: 0, Transition: transition.High, Arrival: 3.0})

	handles := store.DataTags(0)
	require.Len(t, handles, 3)
	assert.Equal(t, transition.Rise, store.Tag(handles[0]).Transition)
	assert.Equal(t, transition.Fall, store.Tag(handles[1]).Transition)
	assert.Equal(t, transition.High, store.Tag(handles[2]).Transition)
}

func TestMaxSetSortsByDescendingArrival(t *testing.T) {
	m := NewMaxSet(NewArena(), NoBinning{})
	m.Merge(Tag{Domain: 0, Transition: transition.Max, Arrival: 1.0})
	m.Merge(Tag{Domain: 1, Transition: transition.Max, Arrival: 5.0})
	m.Merge(Tag{Domain: 2, Transition: transition.Max, Arrival: 3.0})

	sorted := m.SortByDescendingArrival()
	require.Len(t, sorted, 3)
	assert.Equal(t, delay.Delay(5.0), m.Tag(sorted[0]).Arrival)
	assert.Equal(t, delay.Delay(3.0), m.Tag(sorted[1]).Arrival)
	assert.Equal(t, delay.Delay(1.0), m.Tag(sorted[2]).Arrival)
}
