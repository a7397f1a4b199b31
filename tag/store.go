// SPDX-License-Identifier: MIT
// Package: esta/tag
//
// store.go — per-node clock-tag/data-tag Sets and the merge discipline
// from spec §4.3: on merge, arrival takes the max of the two, scenario
// lists concatenate, and the launching node updates only when the
// arrival strictly increases.
package tag

import (
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/transition"
)

// setKey is the (domain, transition, bin) merge-match key. A tag whose
// Transition is Max matches other Max-transition tags of the same
// domain/bin directly through this key, since the forward-sweep/
// aggregation code retags to Max before merging (spec §4.4.4) rather
// than relying on cross-transition matching.
type setKey struct {
	domain graph.DomainID
	trans  transition.Type
	bin    float64
}

// Set is one of a node's two tag collections (clock or data): an
// insertion-ordered list of Handles plus an index for O(1) merge
// lookup.
type Set struct {
	index map[setKey]Handle
	order []Handle
}

func newSet() Set {
	return Set{index: make(map[setKey]Handle)}
}

// Handles returns the set's tags in insertion order.
func (s *Set) Handles() []Handle { return s.order }

// Len returns the number of distinct tags currently in the set.
func (s *Set) Len() int { return len(s.order) }

// Store holds, per node, the clock-tag and data-tag Sets (spec §3, §4.3)
// backed by a shared Arena.
type Store struct {
	arena  *Arena
	clock  []Set
	data   []Set
	policy BinPolicy
}

// NewStore returns a Store with numNodes empty clock/data Sets, using
// policy as the delay-binning discipline for the merge match predicate.
func NewStore(numNodes int, policy BinPolicy) *Store {
	s := &Store{
		arena:  NewArena(),
		clock:  make([]Set, numNodes),
		data:   make([]Set, numNodes),
		policy: policy,
	}
	for i := range s.clock {
		s.clock[i] = newSet()
		s.data[i] = newSet()
	}
	return s
}

// Arena returns the Store's backing Arena, for callers (e.g. satbdd)
// that need to resolve a Handle to its Tag.
func (s *Store) Arena() *Arena { return s.arena }

// Policy returns the Store's delay-binning discipline, for callers
// (e.g. propagate's circuit-max aggregation) that build a separate
// MaxSet meant to bin consistently with the Store it was aggregated
// from.
func (s *Store) Policy() BinPolicy { return s.policy }

// ClockTags returns node n's clock tags in insertion order.
func (s *Store) ClockTags(n graph.NodeID) []Handle { return s.clock[n].Handles() }

// DataTags returns node n's data tags in insertion order.
func (s *Store) DataTags(n graph.NodeID) []Handle { return s.data[n].Handles() }

// Tag resolves a Handle to its Tag.
func (s *Store) Tag(h Handle) *Tag { return s.arena.Get(h) }

// MergeData merges candidate into node n's data-tag set, returning the
// Handle of the (possibly pre-existing) resulting tag.
func (s *Store) MergeData(n graph.NodeID, candidate Tag) Handle {
	return s.merge(&s.data[n], candidate)
}

// MergeClock merges candidate into node n's clock-tag set, returning the
// Handle of the (possibly pre-existing) resulting tag.
func (s *Store) MergeClock(n graph.NodeID, candidate Tag) Handle {
	return s.merge(&s.clock[n], candidate)
}

func (s *Store) merge(set *Set, candidate Tag) Handle {
	bin := s.policy.Bin(candidate.Arrival)
	k := setKey{domain: candidate.Domain, trans: candidate.Transition, bin: bin}

	if h, ok := set.index[k]; ok {
		existing := s.arena.Get(h)
		if candidate.Arrival > existing.Arrival {
			existing.Arrival = candidate.Arrival
			existing.Launch = candidate.Launch
		}
		existing.Scenarios = append(existing.Scenarios, candidate.Scenarios...)
		return h
	}

	h := s.arena.alloc(candidate)
	set.index[k] = h
	set.order = append(set.order, h)
	return h
}
