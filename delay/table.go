// SPDX-License-Identifier: MIT
// Package: esta/delay
//
// table.go — the (edge, output_transition) -> Delay map and its
// Set/EdgeDelay/Stats contract (spec §4.2), grounded on
// PreCalcTransDelayCalculator in
// original_source/src/libesta/PreCalcTransDelayCalc.hpp.
package delay

import (
	"sync"

	"github.com/opentimely/esta/estaerr"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/transition"
)

// Delay is a scalar edge delay in the netlist's native time unit.
type Delay float64

type key struct {
	edge graph.EdgeID
	out  transition.Type
}

// Table is the builder-populated, core-read-only (edge, output_transition)
// -> Delay mapping. The zero value is an empty table ready for Set calls.
//
// A Table is safe for concurrent readers once construction (via Set) has
// finished; Set itself takes a write lock so a builder may populate it
// from a single goroutine without any special ceremony.
type Table struct {
	mu      sync.RWMutex
	entries map[key]Delay
	min     Delay
	max     Delay
	haveAny bool
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{entries: make(map[key]Delay)}
}

// Set records the delay for (edge, outputTransition). Later calls for the
// same (edge, outputTransition) pair overwrite the previous value.
func (t *Table) Set(edge graph.EdgeID, outputTransition transition.Type, d Delay) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.entries == nil {
		t.entries = make(map[key]Delay)
	}
	k := key{edge, outputTransition}
	_, overwrite := t.entries[k]
	t.entries[k] = d

	if overwrite {
		// The replaced value may have been an extremum: rescan.
		t.haveAny = false
		for _, v := range t.entries {
			if !t.haveAny || v < t.min {
				t.min = v
			}
			if !t.haveAny || v > t.max {
				t.max = v
			}
			t.haveAny = true
		}
		return
	}

	if !t.haveAny || d < t.min {
		t.min = d
	}
	if !t.haveAny || d > t.max {
		t.max = d
	}
	t.haveAny = true
}

// EdgeDelay implements the C2 contract: edge_delay(edge, input_transition,
// output_transition) -> delay. Returns 0 whenever either transition is
// Clock (spec §4.2 clock-neutrality), and estaerr.ErrUnmodeledDelay when
// no entry has been recorded for (edge, outputTransition).
func (t *Table) EdgeDelay(edge graph.EdgeID, inputTransition, outputTransition transition.Type) (Delay, error) {
	if inputTransition == transition.Clock || outputTransition == transition.Clock {
		return 0, nil
	}

	t.mu.RLock()
	d, ok := t.entries[key{edge, outputTransition}]
	t.mu.RUnlock()
	if !ok {
		return 0, unmodeledDelayErr(edge, outputTransition)
	}
	return d, nil
}

// Stats summarizes the table's contents for report emission (spec §4.2):
// the number of modeled (edge, output_transition) pairs and the min/max
// delay across them.
type Stats struct {
	Count int
	Min   Delay
	Max   Delay
}

// Stats returns the current table statistics.
func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Stats{
		Count: len(t.entries),
		Min:   t.min,
		Max:   t.max,
	}
}

func unmodeledDelayErr(edge graph.EdgeID, outTrans transition.Type) error {
	return estaerr.WithEdge(estaerr.ErrUnmodeledDelay, int(edge),
		"no delay entry for output transition "+outTrans.String())
}
