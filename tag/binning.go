// SPDX-License-Identifier: MIT
// Package: esta/tag
//
// binning.go — the delay-binning policies that parameterize the merge
// match predicate's "equal delay bin" clause (spec §4.3).
package tag

import (
	"math"

	"github.com/opentimely/esta/delay"
)

// BinPolicy maps an arrival time to a bin value used as part of the
// merge-match key. Two arrivals merge only if they map to the same bin
// (and agree on domain and transition).
type BinPolicy interface {
	Bin(arrival delay.Delay) float64
}

// NoBinning is the no-op policy: the bin is the exact arrival time, so
// two arrivals match only if they are equal.
type NoBinning struct{}

// Bin implements BinPolicy.
func (NoBinning) Bin(arrival delay.Delay) float64 { return float64(arrival) }

// FixedWidth bins arrivals into floor(arrival/Width)-indexed buckets. A
// non-positive Width falls back to no-op binning (spec §4.3: "w = 0
// falls back to no-op").
type FixedWidth struct {
	Width delay.Delay
}

// Bin implements BinPolicy.
func (f FixedWidth) Bin(arrival delay.Delay) float64 {
	if f.Width <= 0 {
		return float64(arrival)
	}
	return math.Floor(float64(arrival) / float64(f.Width))
}

// StaSlackGuided layers coarse/fine bin widths around a precomputed STA
// critical-path delay: arrivals below Fraction*CriticalPath use
// WidthCoarse, arrivals at or above it use WidthFine (spec §4.3: "this
// focuses resolution where it matters"). Callers are expected to supply
// WidthFine <= WidthCoarse, though this type does not enforce it.
type StaSlackGuided struct {
	CriticalPath delay.Delay
	Fraction     float64
	WidthCoarse  delay.Delay
	WidthFine    delay.Delay
}

// Bin implements BinPolicy. The fine region's bin indices are offset
// past the coarse region's maximum index so an arrival just below
// threshold and one just above it never collide on the same numeric
// bin value despite using different widths.
func (s StaSlackGuided) Bin(arrival delay.Delay) float64 {
	threshold := delay.Delay(s.Fraction) * s.CriticalPath

	if arrival < threshold {
		if s.WidthCoarse <= 0 {
			return float64(arrival)
		}
		return math.Floor(float64(arrival) / float64(s.WidthCoarse))
	}

	if s.WidthFine <= 0 {
		return float64(arrival)
	}
	coarseBins := 0.0
	if s.WidthCoarse > 0 {
		coarseBins = math.Floor(float64(threshold)/float64(s.WidthCoarse)) + 1
	}
	return coarseBins + math.Floor(float64(arrival)/float64(s.WidthFine))
}
