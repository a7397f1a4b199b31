// SPDX-License-Identifier: MIT
// Package: esta/graph
//
// levelize.go — Kahn-style levelization (spec §4.1), grounded directly
// on TimingGraph::levelize() in original_source/libs/tatum: seed level 0
// with in-degree-0 nodes, decrement a per-node remaining-fanin counter
// as each level's fanout is walked, and place a node as soon as its
// counter reaches zero. Primary outputs (sinks) are collected during the
// same sweep; they are not confined to one level.
package graph

// Levelize assigns every node to a level such that no edge crosses from
// a higher level to a lower one, with source nodes in level 0. It is
// idempotent: calling it again after AddNode/AddEdge recomputes from
// scratch and overwrites any previous levelization.
//
// Complexity: O(V + E).
func (g *Graph) Levelize() error {
	if err := g.Validate(); err != nil {
		return err
	}

	n := len(g.nodeType)
	remaining := make([]int, n)
	for i := 0; i < n; i++ {
		remaining[i] = len(g.nodeIn[i])
	}

	g.levels = g.levels[:0]
	g.primaryOutputs = g.primaryOutputs[:0]
	g.nodeLevel = make([]LevelID, n)
	for i := range g.nodeLevel {
		g.nodeLevel[i] = -1
	}

	level0 := make([]NodeID, 0)
	for i := 0; i < n; i++ {
		if remaining[i] == 0 {
			level0 = append(level0, NodeID(i))
			g.nodeLevel[i] = 0
		}
	}
	g.levels = append(g.levels, level0)

	levelIdx := 0
	for {
		current := g.levels[levelIdx]
		if len(current) == 0 {
			break
		}

		var next []NodeID
		for _, id := range current {
			if len(g.nodeOut[id]) == 0 && g.nodeType[id].IsSink() {
				g.primaryOutputs = append(g.primaryOutputs, id)
			}

			for _, e := range g.nodeOut[id] {
				sink := g.edgeSink[e]
				remaining[sink]--
				if remaining[sink] == 0 {
					next = append(next, sink)
					g.nodeLevel[sink] = LevelID(levelIdx + 1)
				}
			}
		}

		if len(next) == 0 {
			break
		}
		g.levels = append(g.levels, next)
		levelIdx++
	}

	if err := g.checkNoLevelCrossing(); err != nil {
		return err
	}

	g.levelized = true

	return nil
}

// checkNoLevelCrossing re-verifies, for every edge, that level(src) <
// level(sink) (spec §3 invariant; spec §8 testable property 2). A
// violation after a correct Kahn sweep would indicate a cycle or an
// internal bug, since a true DAG cannot produce one.
func (g *Graph) checkNoLevelCrossing() error {
	for e := 0; e < len(g.edgeSrc); e++ {
		src, sink := g.edgeSrc[e], g.edgeSink[e]
		if g.nodeLevel[src] < 0 || g.nodeLevel[sink] < 0 {
			return levelCrossingErr(EdgeID(e), src, sink, g.nodeLevel[src], g.nodeLevel[sink])
		}
		if g.nodeLevel[src] >= g.nodeLevel[sink] {
			return levelCrossingErr(EdgeID(e), src, sink, g.nodeLevel[src], g.nodeLevel[sink])
		}
	}
	return nil
}

// Levelized reports whether Levelize has run since the last topology
// mutation (AddNode/AddEdge reset this to false).
func (g *Graph) Levelized() bool { return g.levelized }
