// SPDX-License-Identifier: MIT
// Package: esta/graph
//
// types.go — the closed node/edge-kind enumerations, id types, and the
// column-oriented (struct-of-arrays) Graph type itself (spec §3, §4.1).
//
// The SoA layout is required, not a style preference: the forward sweep
// (propagate) is bandwidth-bound walking these arrays in level order, and
// optimize_node_layout/optimize_edge_layout (layout.go) exist specifically
// to make each level contiguous in memory once Levelize has run.
package graph

import "github.com/opentimely/esta/boolfunc"

// NodeID indexes into a Graph's per-node parallel arrays.
type NodeID int

// EdgeID indexes into a Graph's per-edge parallel arrays.
type EdgeID int

// LevelID indexes a contiguous topological level produced by Levelize.
type LevelID int

// DomainID identifies a clock domain. InvalidDomain is the sentinel used
// by nodes and tags that are not associated with any clock domain.
type DomainID int

// InvalidDomain is the sentinel clock-domain id (spec §3).
const InvalidDomain DomainID = -1

// NodeType is the closed enumeration of timing-graph node kinds.
type NodeType uint8

const (
	NodeTypeUnknown NodeType = iota

	// Source types: no incoming edges.
	InpadSource
	FfSource
	ClockSource
	ConstantGenSource

	// Pin types.
	InpadOpin
	OutpadIpin
	PrimitiveIpin
	PrimitiveOpin
	FfIpin
	FfOpin
	FfClock
	ClockOpin

	// Sink types: no outgoing edges.
	OutpadSink
	FfSink
)

func (t NodeType) String() string {
	switch t {
	case InpadSource:
		return "InpadSource"
	case FfSource:
		return "FfSource"
	case ClockSource:
		return "ClockSource"
	case ConstantGenSource:
		return "ConstantGenSource"
	case InpadOpin:
		return "InpadOpin"
	case OutpadIpin:
		return "OutpadIpin"
	case PrimitiveIpin:
		return "PrimitiveIpin"
	case PrimitiveOpin:
		return "PrimitiveOpin"
	case FfIpin:
		return "FfIpin"
	case FfOpin:
		return "FfOpin"
	case FfClock:
		return "FfClock"
	case ClockOpin:
		return "ClockOpin"
	case OutpadSink:
		return "OutpadSink"
	case FfSink:
		return "FfSink"
	default:
		return "Unknown"
	}
}

// IsSource reports whether t is one of the four root node types (spec
// §3: "no incoming edges").
func (t NodeType) IsSource() bool {
	switch t {
	case InpadSource, FfSource, ClockSource, ConstantGenSource:
		return true
	default:
		return false
	}
}

// IsSink reports whether t is one of the two leaf node types (spec §3:
// "no outgoing edges").
func (t NodeType) IsSink() bool {
	return t == OutpadSink || t == FfSink
}

// IsOpin reports whether t is an output-pin type, i.e. the legal source
// endpoint of a net edge.
func (t NodeType) IsOpin() bool {
	switch t {
	case InpadOpin, PrimitiveOpin, FfOpin, ClockOpin:
		return true
	default:
		return false
	}
}

// IsIpin reports whether t is an input-pin type, i.e. the legal sink
// endpoint of a net edge.
func (t NodeType) IsIpin() bool {
	switch t {
	case OutpadIpin, PrimitiveIpin, FfIpin:
		return true
	default:
		return false
	}
}

// EdgeKind is the closed enumeration of edge kinds derived from the pair
// of endpoint node types (spec §3). It determines the delay-table lookup
// discipline, never the propagation algorithm.
type EdgeKind uint8

const (
	EdgeKindUnknown EdgeKind = iota
	Net                      // *_Opin -> *_Ipin
	PrimitiveInternal        // PrimitiveIpin -> PrimitiveOpin
	FfDPath                  // FfIpin -> FfSink
	FfQPath                  // FfSource -> FfOpin
	FfClockToSink            // FfClock -> FfSink
	FfClockToSource          // FfClock -> FfSource
	PadInternal              // InpadSource->InpadOpin, OutpadIpin->OutpadSink
	ClockSourceInternal      // ClockSource -> ClockOpin
	Constant                 // ConstantGenSource -> *
)

func (k EdgeKind) String() string {
	switch k {
	case Net:
		return "Net"
	case PrimitiveInternal:
		return "PrimitiveInternal"
	case FfDPath:
		return "FfDPath"
	case FfQPath:
		return "FfQPath"
	case FfClockToSink:
		return "FfClockToSink"
	case FfClockToSource:
		return "FfClockToSource"
	case PadInternal:
		return "PadInternal"
	case ClockSourceInternal:
		return "ClockSourceInternal"
	case Constant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// IsClockFanout reports whether edges of this kind carry clock tags
// rather than data tags (spec §4.4.1: "Clock-fanout edges carry clock
// tags; all other non-clock edges carry data tags").
func (k EdgeKind) IsClockFanout() bool {
	return k == FfClockToSink || k == FfClockToSource
}

// NameResolver maps a node id to a human-readable name. The core treats
// it opaquely (spec §6) and only report/cmd code ever calls it.
type NameResolver func(NodeID) string

// Graph is the column-oriented (struct-of-arrays) timing graph: parallel
// arrays over node indices and parallel arrays over edge indices.
//
// Graph stores only static connectivity and per-node/per-edge
// classification — arrival times and tags live in tag.Store, delays live
// in delay.Table, consistent with the original design's separation of
// concerns (graph/TimingGraph.hpp in original_source).
type Graph struct {
	nodeType    []NodeType
	nodeDomain  []DomainID
	nodeIsClkSrc []bool
	nodeFunc    []boolfunc.Func
	nodeOut     [][]EdgeID
	nodeIn      [][]EdgeID
	nodeLevel   []LevelID

	edgeSrc  []NodeID
	edgeSink []NodeID
	edgeKind []EdgeKind

	levels         [][]NodeID
	primaryOutputs []NodeID
	levelized      bool
}

// New returns an empty Graph ready to accept AddNode/AddEdge calls.
func New() *Graph {
	return &Graph{}
}

// NumNodes returns the number of nodes added so far.
func (g *Graph) NumNodes() int { return len(g.nodeType) }

// NumEdges returns the number of edges added so far.
func (g *Graph) NumEdges() int { return len(g.edgeSrc) }
