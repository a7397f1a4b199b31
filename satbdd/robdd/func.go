// SPDX-License-Identifier: MIT
// Package: esta/satbdd/robdd

package robdd

import "github.com/opentimely/esta/boolfunc"

// Func adapts a (Manager, Ref) pair to the boolfunc.Func contract so
// node switching functions built from BDDs can be used interchangeably
// with boolfunc's trivial identity/constant implementations wherever
// spec §4.4.3's transition evaluator walks "the function's support".
type Func struct {
	mgr *Manager
	ref Ref
}

// Wrap returns a boolfunc.Func view of ref, owned by mgr.
func Wrap(mgr *Manager, ref Ref) Func { return Func{mgr: mgr, ref: ref} }

var _ boolfunc.Func = Func{}

// Ref exposes the underlying manager reference, e.g. for And/Or/ITE
// composition that boolfunc.Func does not expose.
func (f Func) Ref() Ref { return f.ref }

// Manager exposes the owning manager.
func (f Func) Manager() *Manager { return f.mgr }

// IsZero reports whether f is the constant-0 function.
func (f Func) IsZero() bool { return f.ref == f.mgr.Zero() }

// IsOne reports whether f is the constant-1 function.
func (f Func) IsOne() bool { return f.ref == f.mgr.One() }

// ID returns a canonical identity, unique within f's manager.
func (f Func) ID() uint64 {
	id := uint64(f.ref.idx) << 1
	if f.ref.comp {
		id |= 1
	}
	return id
}

// Support returns f's ascending, deduplicated variable support.
func (f Func) Support() []int { return f.mgr.Support(f.ref) }

// Restrict returns the cofactor of f with variable v fixed to value.
func (f Func) Restrict(v int, value bool) boolfunc.Func {
	return Func{mgr: f.mgr, ref: f.mgr.Restrict(f.ref, v, value)}
}

// And returns f AND g (g must share f's manager).
func (f Func) And(g Func) Func { return Func{mgr: f.mgr, ref: f.mgr.And(f.ref, g.ref)} }

// Or returns f OR g (g must share f's manager).
func (f Func) Or(g Func) Func { return Func{mgr: f.mgr, ref: f.mgr.Or(f.ref, g.ref)} }

// Not returns NOT f.
func (f Func) Not() Func { return Func{mgr: f.mgr, ref: f.mgr.Not(f.ref)} }

// CountMintermFraction returns CountMinterm(f) / 2^N for f's manager's
// full variable count (spec §4.5.3's #SAT identity).
func (f Func) CountMintermFraction() float64 { return f.mgr.CountMintermFraction(f.ref) }
