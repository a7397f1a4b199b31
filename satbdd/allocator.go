// SPDX-License-Identifier: MIT
// Package: esta/satbdd
//
// allocator.go — primary-input variable allocation and the
// cond_func(launch_node, transition) builder (spec §4.5.1). Two schemes
// are supported, chosen once per run:
//
//   - Uniform: two variables per input (current, next), transitions
//     encoded exactly as in spec §4.5.1's two-variable minterm table.
//   - Grouped: k variables per input (2^k minterms), the minterm space
//     partitioned across the four transitions by a configurable count
//     vector and one of three index-assignment schemes.
package satbdd

import (
	"github.com/opentimely/esta/estaerr"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/satbdd/robdd"
	"github.com/opentimely/esta/transition"
)

// Scheme selects the primary-input variable-allocation discipline.
type Scheme int

const (
	// Uniform allocates exactly two variables per input.
	Uniform Scheme = iota
	// Grouped allocates K variables per input, partitioned per GroupScheme.
	Grouped
)

// GroupScheme selects how a Grouped allocation's 2^K minterms are
// partitioned across the four transitions.
type GroupScheme int

const (
	// RoundRobin distributes minterms across transitions cyclically.
	RoundRobin GroupScheme = iota
	// Binary packs each transition's share into a contiguous plain-binary-indexed block.
	Binary
	// Gray packs each transition's share into a contiguous Gray-order-indexed block.
	Gray
)

// Counts is the (n_R, n_F, n_H, n_L) minterm-count vector for a Grouped
// allocation; the four counts must sum to 2^K.
type Counts struct {
	Rise int
	Fall int
	High int
	Low  int
}

func (c Counts) total() int { return c.Rise + c.Fall + c.High + c.Low }

// CondFuncConfig is the cond_func configuration knob (spec §6): Uniform
// ignores K/Counts; Grouped requires both.
type CondFuncConfig struct {
	Scheme      Scheme
	GroupScheme GroupScheme
	K           int
	Counts      Counts
}

// inputVars is the set of BDD variables allocated to one primary input.
type inputVars struct {
	vars []int // length 2 for Uniform, K for Grouped
}

// Allocator assigns and remembers BDD variables per primary input and
// builds cond_func(launch_node, transition) on demand.
type Allocator struct {
	mgr    *robdd.Manager
	cfg    CondFuncConfig
	inputs map[graph.NodeID]*inputVars
}

// NewAllocator returns an Allocator backed by mgr using cfg's scheme. It
// validates a Grouped config's count vector against 2^K up front.
func NewAllocator(mgr *robdd.Manager, cfg CondFuncConfig) (*Allocator, error) {
	if cfg.Scheme == Grouped {
		want := 1 << uint(cfg.K)
		if cfg.Counts.total() != want {
			return nil, estaerr.With(estaerr.ErrInternalInvariant,
				"grouped cond_func counts must sum to 2^K")
		}
	}
	return &Allocator{mgr: mgr, cfg: cfg, inputs: make(map[graph.NodeID]*inputVars)}, nil
}

// Allocate assigns fresh BDD variables to a primary input node if it has
// none yet, and is a no-op otherwise. Allocation order is caller-driven
// (typically pre-traversal order) so it is reproducible run to run.
func (a *Allocator) Allocate(input graph.NodeID) {
	if _, ok := a.inputs[input]; ok {
		return
	}
	n := 2
	if a.cfg.Scheme == Grouped {
		n = a.cfg.K
	}
	vars := make([]int, n)
	for i := range vars {
		vars[i] = a.mgr.AllocVar()
	}
	a.inputs[input] = &inputVars{vars: vars}
}

// NumVars returns the total number of BDD variables allocated so far
// across all inputs, i.e. the N in spec §4.5.3's probability = Count/2^N.
func (a *Allocator) NumVars() int { return a.mgr.NumVars() }

// TransitionRef returns the BDD reference realizing transition tr on
// input's allocated variables. input must already have been passed to
// Allocate.
func (a *Allocator) TransitionRef(input graph.NodeID, tr transition.Type) robdd.Ref {
	iv := a.inputs[input]
	if a.cfg.Scheme == Uniform {
		return a.uniformRef(iv, tr)
	}
	return a.groupedRef(iv, tr)
}

// uniformRef implements spec §4.5.1's exact table: Rise = ¬c∧n,
// Fall = c∧¬n, High = c∧n, Low = ¬c∧¬n, where c=vars[0] (current) and
// n=vars[1] (next).
func (a *Allocator) uniformRef(iv *inputVars, tr transition.Type) robdd.Ref {
	c := a.mgr.Var(iv.vars[0])
	n := a.mgr.Var(iv.vars[1])
	notC := a.mgr.Not(c)
	notN := a.mgr.Not(n)
	switch tr {
	case transition.Rise:
		return a.mgr.And(notC, n)
	case transition.Fall:
		return a.mgr.And(c, notN)
	case transition.High:
		return a.mgr.And(c, n)
	case transition.Low:
		return a.mgr.And(notC, notN)
	default:
		return a.mgr.Zero()
	}
}

// groupedRef builds the OR-of-minterm-cubes cover for tr's assigned
// share of the 2^K minterm space under the configured GroupScheme.
func (a *Allocator) groupedRef(iv *inputVars, tr transition.Type) robdd.Ref {
	assignment := a.assignment(len(iv.vars))
	acc := a.mgr.Zero()
	for idx, t := range assignment {
		if t != tr {
			continue
		}
		acc = a.mgr.Or(acc, a.mintermCube(iv.vars, idx))
	}
	return acc
}

// assignment returns, for each minterm index in [0, 2^k), the transition
// it was partitioned into, per the configured GroupScheme.
func (a *Allocator) assignment(k int) []transition.Type {
	total := 1 << uint(k)
	order := []transition.Type{transition.Rise, transition.Fall, transition.High, transition.Low}
	counts := [4]int{a.cfg.Counts.Rise, a.cfg.Counts.Fall, a.cfg.Counts.High, a.cfg.Counts.Low}

	assignment := make([]transition.Type, total)

	switch a.cfg.GroupScheme {
	case Binary:
		// Contiguous, plain-binary-indexed blocks in fixed transition order.
		offset := 0
		for i, t := range order {
			for j := 0; j < counts[i]; j++ {
				assignment[offset+j] = t
			}
			offset += counts[i]
		}
	case Gray:
		// Same contiguous blocks, but walked in Gray-code position order
		// so adjacent positions (and thus adjacent assigned minterms)
		// differ in exactly one bit.
		pos := 0
		for i, t := range order {
			for j := 0; j < counts[i]; j++ {
				g := pos ^ (pos >> 1)
				assignment[g] = t
				pos++
			}
		}
	default: // RoundRobin
		remaining := counts
		t := 0
		for i := 0; i < total; i++ {
			for remaining[t] == 0 {
				t = (t + 1) % 4
			}
			assignment[i] = order[t]
			remaining[t]--
			t = (t + 1) % 4
		}
	}
	return assignment
}

// mintermCube returns the conjunction of literals for minterm index idx
// over vars, bit b of idx selecting vars[b] positive (1) or negated (0).
func (a *Allocator) mintermCube(vars []int, idx int) robdd.Ref {
	cube := a.mgr.One()
	for b := 0; b < len(vars); b++ {
		bit := (idx >> uint(b)) & 1
		var lit robdd.Ref
		if bit == 1 {
			lit = a.mgr.Var(vars[b])
		} else {
			lit = a.mgr.NotVar(vars[b])
		}
		cube = a.mgr.And(cube, lit)
	}
	return cube
}
