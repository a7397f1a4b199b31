// SPDX-License-Identifier: MIT
// Package: esta/tag
//
// maxset.go — the single global tag set used by max-arrival aggregation
// (spec §4.4.4): every primary output's data tags are copied in with
// their transition retagged to Max and merged here, so circuit-max
// tags from different primary outputs collapse together exactly as a
// node's own data tags would. A MaxSet is backed by the same Arena as
// the Store it was built from, since its tags' Scenarios cite that
// Store's Handles.
package tag

// MaxSet is a single-node-equivalent Set for the circuit-max aggregation
// pass: it shares the same merge discipline as a node's data-tag Set but
// is not attached to any particular node in the graph.
type MaxSet struct {
	arena  *Arena
	set    Set
	policy BinPolicy
}

// NewMaxSet returns an empty MaxSet backed by arena, which must be the
// same Arena as the forward-sweep Store's: a max tag's Scenarios cite
// Handles from that Store, and satbdd.Manager.Xfunc resolves a Handle
// through a single Arena, so a max tag and the tags it cites must
// coexist in it.
func NewMaxSet(arena *Arena, policy BinPolicy) *MaxSet {
	return &MaxSet{arena: arena, set: newSet(), policy: policy}
}

// Merge merges candidate (expected to already carry Transition == Max)
// into the set, returning the Handle of the (possibly pre-existing)
// resulting tag.
func (m *MaxSet) Merge(candidate Tag) Handle {
	bin := m.policy.Bin(candidate.Arrival)
	k := setKey{domain: candidate.Domain, trans: candidate.Transition, bin: bin}

	if h, ok := m.set.index[k]; ok {
		existing := m.arena.Get(h)
		if candidate.Arrival > existing.Arrival {
			existing.Arrival = candidate.Arrival
			existing.Launch = candidate.Launch
		}
		existing.Scenarios = append(existing.Scenarios, candidate.Scenarios...)
		return h
	}

	h := m.arena.alloc(candidate)
	m.set.index[k] = h
	m.set.order = append(m.set.order, h)
	return h
}

// Handles returns the set's tags in insertion order.
func (m *MaxSet) Handles() []Handle { return m.set.Handles() }

// Tag resolves a Handle to its Tag.
func (m *MaxSet) Tag(h Handle) *Tag { return m.arena.Get(h) }

// SortByDescendingArrival returns the set's handles ordered by
// descending arrival time, as required before subtracting
// already-covered terms in max-arrival aggregation (spec §4.4.4).
func (m *MaxSet) SortByDescendingArrival() []Handle {
	handles := append([]Handle(nil), m.set.order...)
	for i := 1; i < len(handles); i++ {
		for j := i; j > 0 && m.arena.Get(handles[j]).Arrival > m.arena.Get(handles[j-1]).Arrival; j-- {
			handles[j], handles[j-1] = handles[j-1], handles[j]
		}
	}
	return handles
}
