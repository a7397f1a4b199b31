// SPDX-License-Identifier: MIT
package robdd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarLiteralsAreComplementary(t *testing.T) {
	m := NewManager()
	v := m.AllocVar()

	pos := m.Var(v)
	neg := m.NotVar(v)

	assert.Equal(t, pos, m.Not(neg))
	assert.Equal(t, m.Zero(), m.And(pos, neg))
	assert.Equal(t, m.One(), m.Or(pos, neg))
}

func TestAndOrDeMorgan(t *testing.T) {
	m := NewManager()
	a := m.Var(m.AllocVar())
	b := m.Var(m.AllocVar())

	lhs := m.Not(m.And(a, b))
	rhs := m.Or(m.Not(a), m.Not(b))

	assert.Equal(t, lhs, rhs, "De Morgan's law must hold structurally (canonical ROBDD)")
}

func TestRestrictEliminatesVariable(t *testing.T) {
	m := NewManager()
	a := m.AllocVar()
	b := m.AllocVar()
	f := m.And(m.Var(a), m.Var(b)) // f = a & b

	restricted := m.Restrict(f, a, true) // f|a=1 = b
	assert.Equal(t, m.Var(b), restricted)

	restricted0 := m.Restrict(f, a, false) // f|a=0 = 0
	assert.Equal(t, m.Zero(), restricted0)
}

func TestRestrictNoOpOutsideSupport(t *testing.T) {
	m := NewManager()
	a := m.AllocVar()
	b := m.AllocVar()
	f := m.Var(a)

	require.NotContains(t, m.Support(f), b)
	assert.Equal(t, f, m.Restrict(f, b, true))
}

func TestSupportSortedAndDeduplicated(t *testing.T) {
	m := NewManager()
	a, b, c := m.AllocVar(), m.AllocVar(), m.AllocVar()
	// f = (a & b) | (a & c): a appears on both branches.
	f := m.Or(m.And(m.Var(a), m.Var(b)), m.And(m.Var(a), m.Var(c)))

	assert.Equal(t, []int{a, b, c}, m.Support(f))
}

// TestSATConsistency verifies spec property 7: for any BDD f over N
// variables, minterm_fraction(f) * 2^N == CountMinterm(f), checked here
// via exhaustive enumeration against the fractional identity.
func TestSATConsistency(t *testing.T) {
	m := NewManager()
	a, b, c := m.AllocVar(), m.AllocVar(), m.AllocVar()
	// f = a & (b | ~c): count minterms by brute force over 3 vars.
	f := m.And(m.Var(a), m.Or(m.Var(b), m.NotVar(c)))

	want := 0
	for bits := 0; bits < 8; bits++ {
		av := bits&1 != 0
		bv := bits&2 != 0
		cv := bits&4 != 0
		if av && (bv || !cv) {
			want++
		}
	}

	frac := m.CountMintermFraction(f)
	got := frac * 8
	assert.InDelta(t, float64(want), got, 1e-9)
}

func TestMintermFractionConstants(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 1.0, m.CountMintermFraction(m.One()))
	assert.Equal(t, 0.0, m.CountMintermFraction(m.Zero()))
}

func TestMintermFractionComplementInverts(t *testing.T) {
	m := NewManager()
	a := m.AllocVar()
	f := m.Var(a)

	assert.True(t, math.Abs(m.CountMintermFraction(f)-0.5) < 1e-12)
	assert.True(t, math.Abs(m.CountMintermFraction(m.Not(f))-0.5) < 1e-12)
}
