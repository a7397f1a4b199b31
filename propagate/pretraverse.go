// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// pretraverse.go — pre-traversal seeding of source-node tags (spec
// §4.4.1).
package propagate

import (
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/tag"
	"github.com/opentimely/esta/transition"
)

func (e *Engine) preTraverse() {
	for i := 0; i < e.g.NumNodes(); i++ {
		n := graph.NodeID(i)
		t := e.g.NodeType(n)
		if !t.IsSource() {
			continue
		}

		switch t {
		case graph.ClockSource:
			e.store.MergeClock(n, tag.Tag{
				Domain:     e.g.Domain(n),
				Launch:     n,
				Transition: transition.Clock,
				Arrival:    0,
			})
		case graph.ConstantGenSource:
			tr := transition.Low
			if e.g.Func(n).IsOne() {
				tr = transition.High
			}
			e.store.MergeData(n, tag.Tag{
				Domain:     e.g.Domain(n),
				Launch:     n,
				Transition: tr,
				Arrival:    0,
			})
		default: // InpadSource, FfSource: a free primary input.
			e.bdd.Allocator().Allocate(n)
			for _, tr := range transition.Events {
				e.store.MergeData(n, tag.Tag{
					Domain:     e.g.Domain(n),
					Launch:     n,
					Transition: tr,
					Arrival:    0,
				})
			}
		}
	}
}
