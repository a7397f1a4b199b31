// SPDX-License-Identifier: MIT
// Package: esta/graph
//
// layout.go — post-levelization memory layout optimization: permute
// nodes and edges so every level is contiguous, returning the old->new
// id remapping so external tables (delay.Table, tag.Arena) can follow
// suit. Grounded on TimingGraph::optimize_node_layout()/
// optimize_edge_layout() in original_source/libs/tatum.
package graph

import (
	"errors"

	"github.com/opentimely/esta/boolfunc"
)

// ErrNotLevelized is returned by OptimizeNodeLayout/OptimizeEdgeLayout
// when Levelize has not yet run (or has been invalidated by a topology
// mutation since).
var ErrNotLevelized = errors.New("graph: not levelized")

// OptimizeEdgeLayout permutes edges so that every level's out-edges
// (i.e. edges driven by that level's nodes) are contiguous in the
// backing arrays, matching the order the forward sweep will walk them.
// Returns the old EdgeID -> new EdgeID remapping.
//
// Complexity: O(V + E).
func (g *Graph) OptimizeEdgeLayout() ([]EdgeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}

	order := make([]EdgeID, 0, len(g.edgeSrc))
	for _, level := range g.levels {
		for _, id := range level {
			order = append(order, g.nodeOut[id]...)
		}
	}

	oldToNew := make([]EdgeID, len(g.edgeSrc))
	newSrc := make([]NodeID, len(order))
	newSink := make([]NodeID, len(order))
	newKind := make([]EdgeKind, len(order))
	for newID, oldID := range order {
		oldToNew[oldID] = EdgeID(newID)
		newSrc[newID] = g.edgeSrc[oldID]
		newSink[newID] = g.edgeSink[oldID]
		newKind[newID] = g.edgeKind[oldID]
	}
	g.edgeSrc, g.edgeSink, g.edgeKind = newSrc, newSink, newKind

	for i := range g.nodeOut {
		remapEdgeSlice(g.nodeOut[i], oldToNew)
		remapEdgeSlice(g.nodeIn[i], oldToNew)
	}

	return oldToNew, nil
}

func remapEdgeSlice(ids []EdgeID, oldToNew []EdgeID) {
	for i, id := range ids {
		ids[i] = oldToNew[id]
	}
}

// OptimizeNodeLayout permutes nodes so that every level is contiguous in
// the backing arrays, in level order. Returns the old NodeID -> new
// NodeID remapping.
//
// Complexity: O(V + E).
func (g *Graph) OptimizeNodeLayout() ([]NodeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}

	n := len(g.nodeType)
	order := make([]NodeID, 0, n)
	for _, level := range g.levels {
		order = append(order, level...)
	}

	oldToNew := make([]NodeID, n)
	for newID, oldID := range order {
		oldToNew[oldID] = NodeID(newID)
	}

	newType := make([]NodeType, n)
	newDomain := make([]DomainID, n)
	newIsClkSrc := make([]bool, n)
	newFunc := make([]boolfunc.Func, n)
	newOut := make([][]EdgeID, n)
	newIn := make([][]EdgeID, n)
	newLevel := make([]LevelID, n)

	for newID, oldID := range order {
		newType[newID] = g.nodeType[oldID]
		newDomain[newID] = g.nodeDomain[oldID]
		newIsClkSrc[newID] = g.nodeIsClkSrc[oldID]
		newFunc[newID] = g.nodeFunc[oldID]
		newOut[newID] = g.nodeOut[oldID]
		newIn[newID] = g.nodeIn[oldID]
		newLevel[newID] = g.nodeLevel[oldID]
	}

	g.nodeType, g.nodeDomain, g.nodeIsClkSrc = newType, newDomain, newIsClkSrc
	g.nodeFunc, g.nodeOut, g.nodeIn, g.nodeLevel = newFunc, newOut, newIn, newLevel

	for i := range g.edgeSrc {
		g.edgeSrc[i] = oldToNew[g.edgeSrc[i]]
		g.edgeSink[i] = oldToNew[g.edgeSink[i]]
	}

	for l, level := range g.levels {
		remapped := make([]NodeID, len(level))
		for i, id := range level {
			remapped[i] = oldToNew[id]
		}
		g.levels[l] = remapped
	}
	for i, id := range g.primaryOutputs {
		g.primaryOutputs[i] = oldToNew[id]
	}

	return oldToNew, nil
}
