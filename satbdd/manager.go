// SPDX-License-Identifier: MIT
// Package: esta/satbdd
//
// manager.go — the BDD manager wrapper (one Manager, owning one
// robdd.Manager, per analysis run; NewManager creates a fresh one on
// every call) plus Xfunc, the tag
// Boolean-witness builder from spec §4.5.2, memoized with an LRU cache
// keyed on tag identity.
package satbdd

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/satbdd/robdd"
	"github.com/opentimely/esta/tag"
	"github.com/opentimely/esta/transition"
)

// Manager owns the run's robdd.Manager, the primary-input variable
// Allocator, and the memoized tag -> xfunc cache. propagate builds every
// tag witness and probability through it.
type Manager struct {
	bdd   *robdd.Manager
	alloc *Allocator
	g     *graph.Graph
	store *tag.Store

	cache     *lru.Cache[tag.Handle, robdd.Ref]
	unbounded map[tag.Handle]robdd.Ref
}

// NewManager returns a Manager for graph g and tag store store, using
// cfg for primary-input variable allocation and cacheCapacity for the
// Xfunc memo cache (0 meaning unbounded, per spec §6's
// xfunc_cache_capacity knob).
func NewManager(g *graph.Graph, store *tag.Store, cfg CondFuncConfig, cacheCapacity int) (*Manager, error) {
	bdd := robdd.NewManager()
	alloc, err := NewAllocator(bdd, cfg)
	if err != nil {
		return nil, err
	}

	m := &Manager{bdd: bdd, alloc: alloc, g: g, store: store}
	if cacheCapacity > 0 {
		c, err := lru.New[tag.Handle, robdd.Ref](cacheCapacity)
		if err != nil {
			return nil, err
		}
		m.cache = c
	} else {
		m.unbounded = make(map[tag.Handle]robdd.Ref)
	}
	return m, nil
}

// BDD returns the underlying ROBDD manager, for callers (e.g. report)
// that need raw Ref-level operations.
func (m *Manager) BDD() *robdd.Manager { return m.bdd }

// Allocator returns the primary-input variable allocator.
func (m *Manager) Allocator() *Allocator { return m.alloc }

// NumVars returns the total BDD-variable count N used in spec §4.5.3's
// probability = CountMinterm(xfunc) / 2^N.
func (m *Manager) NumVars() int { return m.alloc.NumVars() }

func (m *Manager) cacheGet(h tag.Handle) (robdd.Ref, bool) {
	if m.cache != nil {
		return m.cache.Get(h)
	}
	ref, ok := m.unbounded[h]
	return ref, ok
}

func (m *Manager) cachePut(h tag.Handle, ref robdd.Ref) {
	if m.cache != nil {
		m.cache.Add(h, ref)
		return
	}
	m.unbounded[h] = ref
}

// Xfunc builds (or returns the memoized) Boolean witness of the tag
// identified by h (spec §4.5.2): a source tag's witness is
// cond_func(launch_node, transition); otherwise it is the OR over
// scenarios of the AND over each scenario's cited tags' own witnesses.
func (m *Manager) Xfunc(h tag.Handle) robdd.Func {
	if ref, ok := m.cacheGet(h); ok {
		return robdd.Wrap(m.bdd, ref)
	}

	t := m.store.Tag(h)

	var ref robdd.Ref
	if t.IsSourceTag() {
		ref = m.condFunc(t.Launch, t.Transition)
	} else {
		ref = m.bdd.Zero()
		for _, scenario := range t.Scenarios {
			conj := m.bdd.One()
			for _, inner := range scenario {
				conj = m.bdd.And(conj, m.Xfunc(inner).Ref())
			}
			ref = m.bdd.Or(ref, conj)
		}
	}

	m.cachePut(h, ref)
	return robdd.Wrap(m.bdd, ref)
}

// condFunc implements cond_func(launch_node, transition): a
// ConstantGenSource always witnesses true (spec §4.4.1: "emits tags
// whose Boolean witness is the constant 1"), and so does the Clock
// transition itself — the clock network is deterministic in this model,
// never a random primary input, so it carries probability 1 rather than
// the 0 a literal lookup into the Rise/Fall/High/Low-only transition
// encoding would otherwise return. Any other source node defers to the
// allocator's transition encoding.
func (m *Manager) condFunc(launch graph.NodeID, tr transition.Type) robdd.Ref {
	if tr == transition.Clock || m.g.NodeType(launch) == graph.ConstantGenSource {
		return m.bdd.One()
	}
	return m.alloc.TransitionRef(launch, tr)
}

// Probability returns the tag's probability mass: CountMintermFraction
// of its witness, under a uniform prior over all allocated variables
// (spec §4.5.3).
func (m *Manager) Probability(h tag.Handle) float64 {
	return m.Xfunc(h).CountMintermFraction()
}
