// SPDX-License-Identifier: MIT
// Package: esta/boolfunc
//
// trivial.go — manager-free Func implementations: the two constants and
// the single-variable identity function used as the default switching
// function for every node type except PrimitiveOpin/ConstantGenSource
// (spec §3).
package boolfunc

// identity-kind and constant-kind share one concrete type so ID() can
// assign disjoint, stable ranges without a shared manager.
type trivial struct {
	kind byte // 'z' = zero, 'o' = one, 'i' = identity(variable)
	v    int  // variable index, only meaningful for kind == 'i'
}

// id layout: trivial IDs start at 1<<62. A manager-issued ROBDD id is a
// 32-bit node index shifted left once plus a complement bit, so it stays
// below 1<<33 and can never reach the trivial range.
const trivialIDBase uint64 = 1 << 62

func (t trivial) IsZero() bool { return t.kind == 'z' }
func (t trivial) IsOne() bool  { return t.kind == 'o' }

func (t trivial) ID() uint64 {
	switch t.kind {
	case 'z':
		return trivialIDBase
	case 'o':
		return trivialIDBase + 1
	default:
		return trivialIDBase + 2 + uint64(t.v)
	}
}

func (t trivial) Support() []int {
	if t.kind == 'i' {
		return []int{t.v}
	}
	return nil
}

func (t trivial) Restrict(v int, value bool) Func {
	if t.kind != 'i' || v != t.v {
		return t
	}
	if value {
		return One()
	}
	return Zero()
}

// Zero returns the constant-0 Boolean function.
func Zero() Func { return trivial{kind: 'z'} }

// One returns the constant-1 Boolean function.
func One() Func { return trivial{kind: 'o'} }

// Identity returns the function f(x) = x_v: true exactly when variable
// v is 1. Restricting any other variable is a no-op.
func Identity(v int) Func { return trivial{kind: 'i', v: v} }
