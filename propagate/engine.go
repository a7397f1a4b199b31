// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// engine.go — the Engine type and its Run entry point, wiring the
// pre-traversal (pretraverse.go), forward sweep (sweep.go), and
// circuit-max aggregation (maxagg.go) stages together.
package propagate

import (
	"github.com/opentimely/esta/delay"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/satbdd"
	"github.com/opentimely/esta/tag"
)

// Engine runs the extended tag propagation algorithm over an already
// levelized Graph.
type Engine struct {
	g      *graph.Graph
	delays *delay.Table
	store  *tag.Store
	bdd    *satbdd.Manager
	cfg    Config
}

// NewEngine returns an Engine over g (must already be levelized), using
// delays for edge delay lookups, store for tag storage, and bdd for
// primary-input variable allocation during pre-traversal.
func NewEngine(g *graph.Graph, delays *delay.Table, store *tag.Store, bdd *satbdd.Manager, cfg Config) *Engine {
	return &Engine{g: g, delays: delays, store: store, bdd: bdd, cfg: cfg}
}

// Result is the outcome of a completed Run: the populated Store, the
// circuit-max aggregation's tag set (spec §4.4.4), and each max tag's
// covered-term-subtracted probability (spec §6's Core->Consumer
// contract: "for any tag, a BDD handle (xfunc) and a probability").
type Result struct {
	Store          *tag.Store
	Max            *tag.MaxSet
	MaxProbability map[tag.Handle]float64
}

// Run executes pre-traversal seeding, the level-ordered forward sweep,
// and circuit-max aggregation in sequence.
func (e *Engine) Run() (*Result, error) {
	if !e.g.Levelized() {
		return nil, graphNotLevelizedErr()
	}

	e.preTraverse()

	for l := 0; l < e.g.NumLevels(); l++ {
		for _, n := range e.g.NodesAtLevel(graph.LevelID(l)) {
			if e.g.NodeType(n).IsSource() {
				continue // seeded by preTraverse
			}
			if err := e.processNode(n); err != nil {
				return nil, err
			}
		}
	}

	max, probs, err := e.aggregateMax()
	if err != nil {
		return nil, err
	}

	return &Result{Store: e.store, Max: max, MaxProbability: probs}, nil
}
