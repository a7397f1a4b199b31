// SPDX-License-Identifier: MIT

// Package tag implements the tag store (component C3): per-node
// collections of extended timing tags and the merge/binning discipline
// that keeps those collections bounded (spec §4.3).
//
// A Tag records a launching clock domain, a launching node, an output
// transition, an arrival time, and an ordered list of scenarios — each
// scenario an ordered list of input-tag handles that together justify
// the tag. Tags are allocated from an Arena with stable Handles so a
// scenario can cite an inner tag by reference without copying it; once
// allocated, only a tag's scenario list and (monotonically) its arrival
// grow. A Store holds, per node, a clock-tag Set and a data-tag Set,
// each with an O(1) (domain, transition, delay-bin) merge lookup while
// remaining iterable in insertion order.
//
// Grounded on ExtTimingTag.hpp/ExtSetupTimingAnalyzer.hpp in
// original_source/src/libesta.
package tag
