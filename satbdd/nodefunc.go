// SPDX-License-Identifier: MIT
// Package: esta/satbdd
//
// nodefunc.go — NodeFuncBuilder, a private per-node ROBDD manager for
// building a PrimitiveOpin/ConstantGenSource node's switching function
// (spec §3), numbered independently of the process-wide Manager's
// primary-input variable allocation (see robdd.Manager.AllocVar's doc
// comment on why node functions need their own manager instance).
package satbdd

import "github.com/opentimely/esta/satbdd/robdd"

// NodeFuncBuilder builds one node's switching function over its own
// local variables 0..k-1, matching the positional per-node convention
// (variable i is the node's i-th data incoming edge) that propagate's
// transition evaluator relies on.
type NodeFuncBuilder struct {
	mgr *robdd.Manager
}

// NewNodeFuncBuilder returns a builder backed by a fresh, private
// manager.
func NewNodeFuncBuilder() *NodeFuncBuilder {
	return &NodeFuncBuilder{mgr: robdd.NewManager()}
}

// Var returns the function for local variable i, allocating manager
// variables up to i on demand so callers can reference variables out of
// order.
func (b *NodeFuncBuilder) Var(i int) robdd.Func {
	for b.mgr.NumVars() <= i {
		b.mgr.AllocVar()
	}
	return robdd.Wrap(b.mgr, b.mgr.Var(i))
}

// One returns the constant-1 function on this builder's manager.
func (b *NodeFuncBuilder) One() robdd.Func { return robdd.Wrap(b.mgr, b.mgr.One()) }

// Zero returns the constant-0 function on this builder's manager.
func (b *NodeFuncBuilder) Zero() robdd.Func { return robdd.Wrap(b.mgr, b.mgr.Zero()) }
