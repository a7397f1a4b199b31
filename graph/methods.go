// SPDX-License-Identifier: MIT
// Package: esta/graph
//
// methods.go — mutation and accessor methods: AddNode, AddEdge,
// SetNodeFunc, and the per-node/per-edge read-only queries the rest of
// the core relies on (spec §4.1, §6 "Builder -> Core").
package graph

import "github.com/opentimely/esta/boolfunc"

// AddNode appends a new node of the given type/domain/clock-source flag
// and returns its id. Its switching function defaults to the identity on
// variable 0 (spec §3: "elsewhere the identity on the first variable");
// call SetNodeFunc to override it for PrimitiveOpin/ConstantGenSource
// nodes.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(t NodeType, domain DomainID, isClockSource bool) NodeID {
	id := NodeID(len(g.nodeType))

	g.nodeType = append(g.nodeType, t)
	g.nodeDomain = append(g.nodeDomain, domain)
	g.nodeIsClkSrc = append(g.nodeIsClkSrc, isClockSource)
	g.nodeFunc = append(g.nodeFunc, boolfunc.Identity(0))
	g.nodeOut = append(g.nodeOut, nil)
	g.nodeIn = append(g.nodeIn, nil)
	g.nodeLevel = append(g.nodeLevel, -1)

	g.levelized = false

	return id
}

// AddEdge appends a new edge from src to sink, classifying it into one
// of the closed edge kinds from the pair of endpoint node types. Fails
// with ErrMalformedGraph if either endpoint is unknown or the endpoint
// type pair does not correspond to any closed edge kind.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, sink NodeID) (EdgeID, error) {
	if !g.validNode(src) {
		return -1, unknownNodeErr(src)
	}
	if !g.validNode(sink) {
		return -1, unknownNodeErr(sink)
	}

	srcType := g.nodeType[src]
	sinkType := g.nodeType[sink]

	kind, ok := classifyEdge(srcType, sinkType)
	if !ok {
		return -1, badEdgeKindErr(src, sink, srcType, sinkType)
	}

	id := EdgeID(len(g.edgeSrc))
	g.edgeSrc = append(g.edgeSrc, src)
	g.edgeSink = append(g.edgeSink, sink)
	g.edgeKind = append(g.edgeKind, kind)

	g.nodeOut[src] = append(g.nodeOut[src], id)
	g.nodeIn[sink] = append(g.nodeIn[sink], id)

	g.levelized = false

	return id, nil
}

// classifyEdge implements the closed endpoint-type-pair -> edge-kind
// mapping from spec §3.
func classifyEdge(src, sink NodeType) (EdgeKind, bool) {
	switch {
	case src.IsOpin() && sink.IsIpin():
		return Net, true
	case src.IsOpin() && sink == FfClock:
		// Clock distribution net: a clock source's opin (directly or
		// through buffering) reaching a flip-flop's clock pin. FfClock
		// is not itself an Ipin (it never sinks a data path) but still
		// needs exactly this kind of fan-in edge to receive the clock
		// network's arrival time.
		return Net, true
	case src == PrimitiveIpin && sink == PrimitiveOpin:
		return PrimitiveInternal, true
	case src == FfIpin && sink == FfSink:
		return FfDPath, true
	case src == FfSource && sink == FfOpin:
		return FfQPath, true
	case src == FfClock && sink == FfSink:
		return FfClockToSink, true
	case src == FfClock && sink == FfSource:
		return FfClockToSource, true
	case src == InpadSource && sink == InpadOpin:
		return PadInternal, true
	case src == OutpadIpin && sink == OutpadSink:
		return PadInternal, true
	case src == ClockSource && sink == ClockOpin:
		return ClockSourceInternal, true
	case src == ConstantGenSource:
		return Constant, true
	default:
		return EdgeKindUnknown, false
	}
}

// SetNodeFunc sets node id's switching function. Normally set only at
// PrimitiveOpin and ConstantGenSource nodes (spec §3); propagate
// evaluates whatever function a data node carries, so a function set on
// any other node type takes effect as well.
func (g *Graph) SetNodeFunc(id NodeID, f boolfunc.Func) error {
	if !g.validNode(id) {
		return unknownNodeErr(id)
	}
	g.nodeFunc[id] = f
	return nil
}

func (g *Graph) validNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodeType)
}

// NodeType returns the type of node id.
func (g *Graph) NodeType(id NodeID) NodeType { return g.nodeType[id] }

// Domain returns the clock domain of node id.
func (g *Graph) Domain(id NodeID) DomainID { return g.nodeDomain[id] }

// IsClockSource reports whether node id was constructed with the
// is-clock-source flag set.
func (g *Graph) IsClockSource(id NodeID) bool { return g.nodeIsClkSrc[id] }

// Func returns node id's switching function.
func (g *Graph) Func(id NodeID) boolfunc.Func { return g.nodeFunc[id] }

// OutEdges returns the outgoing edge ids of node id, in insertion order.
func (g *Graph) OutEdges(id NodeID) []EdgeID { return g.nodeOut[id] }

// InEdges returns the incoming edge ids of node id, in insertion order.
func (g *Graph) InEdges(id NodeID) []EdgeID { return g.nodeIn[id] }

// EdgeEndpoints returns the (src, sink) node ids of edge id.
func (g *Graph) EdgeEndpoints(id EdgeID) (src, sink NodeID) {
	return g.edgeSrc[id], g.edgeSink[id]
}

// EdgeKindOf returns the classified kind of edge id.
func (g *Graph) EdgeKindOf(id EdgeID) EdgeKind { return g.edgeKind[id] }

// Level returns the level assigned to node id by the last Levelize call,
// or -1 if Levelize has not yet run.
func (g *Graph) Level(id NodeID) LevelID { return g.nodeLevel[id] }

// NumLevels returns the number of levels produced by the last Levelize
// call, or 0 if it has not yet run.
func (g *Graph) NumLevels() int { return len(g.levels) }

// NodesAtLevel returns the node ids at the given level, in the order
// Levelize discovered them.
func (g *Graph) NodesAtLevel(l LevelID) []NodeID { return g.levels[l] }

// PrimaryOutputs returns every OutpadSink/FfSink node discovered during
// the last Levelize call, in discovery order. Primary outputs may appear
// at any level (spec §4.1).
func (g *Graph) PrimaryOutputs() []NodeID { return g.primaryOutputs }

// Validate checks the structural invariants from spec §3 that do not
// require levelization: every FfSink/OutpadSink is a leaf, every source
// node is a root, and every non-source node has >= 1 incoming edge.
// Edge endpoint types are checked by AddEdge only; Validate does not
// re-check them.
func (g *Graph) Validate() error {
	for i := 0; i < len(g.nodeType); i++ {
		id := NodeID(i)
		t := g.nodeType[i]

		if t.IsSink() && len(g.nodeOut[i]) > 0 {
			return sinkHasOutgoingErr(id, t)
		}
		if t.IsSource() && len(g.nodeIn[i]) > 0 {
			return sourceHasIncomingErr(id, t)
		}
		if !t.IsSource() && len(g.nodeIn[i]) == 0 {
			return noFaninErr(id, t)
		}
	}
	return nil
}
