// SPDX-License-Identifier: MIT
// Package: esta/tag
//
// tag.go — the extended timing tag record and its arena (spec §3, §4.3).
package tag

import (
	"github.com/opentimely/esta/delay"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/transition"
)

// Handle is a stable reference to a Tag allocated from an Arena. Handles
// remain valid for the lifetime of the Arena that issued them; a
// scenario cites inner tags by Handle rather than by copy.
type Handle int

// Scenario is an ordered list of input-tag handles — one per non-clock
// incoming edge of the node that justified a tag — ANDed together to
// form one disjunct of the tag's Boolean witness (spec §3).
type Scenario []Handle

// Tag is the central ESTA datum: a launching clock domain, a launching
// node, an output transition, an arrival time, and the ordered list of
// scenarios (ORed together) that justify it. A tag with no scenarios is
// a source tag; its witness is the launch node's own condition function.
type Tag struct {
	Domain     graph.DomainID
	Launch     graph.NodeID
	Transition transition.Type
	Arrival    delay.Delay
	Scenarios  []Scenario
}

// IsSourceTag reports whether t has an empty scenario list, i.e. it was
// seeded directly at a source node rather than built from predecessors.
func (t *Tag) IsSourceTag() bool { return len(t.Scenarios) == 0 }

// Arena allocates Tags with stable Handles. Once a Tag is allocated,
// only its Arrival/Launch (on a strict-increase merge) and Scenarios
// fields are ever mutated in place; the Arena never moves or reuses a
// live Handle's slot.
type Arena struct {
	tags []Tag
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// alloc appends t and returns its new stable Handle.
func (a *Arena) alloc(t Tag) Handle {
	h := Handle(len(a.tags))
	a.tags = append(a.tags, t)
	return h
}

// Get returns a pointer to the Tag identified by h, usable for both
// reads and the in-place merge mutations performed by Store. The
// pointer is only valid until the next call that allocates a new Tag in
// this Arena (e.g. via Store.MergeData/MergeClock creating a fresh
// entry); callers that need to hold a Tag across further allocations
// should re-fetch it by Handle.
func (a *Arena) Get(h Handle) *Tag {
	return &a.tags[h]
}

// Len returns the number of tags allocated so far.
func (a *Arena) Len() int { return len(a.tags) }
