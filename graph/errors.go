// SPDX-License-Identifier: MIT
// Package: esta/graph
//
// errors.go — graph-local error wrapping on top of estaerr's sentinels.
package graph

import (
	"strconv"

	"github.com/opentimely/esta/estaerr"
)

// unknownNodeErr wraps ErrMalformedGraph with the offending id.
func unknownNodeErr(n NodeID) error {
	return estaerr.WithNode(estaerr.ErrMalformedGraph, int(n), "unknown node")
}

// badEdgeKindErr wraps ErrMalformedGraph when a (src,sink) node-type pair
// does not match any closed edge kind (spec §3).
func badEdgeKindErr(src, sink NodeID, srcType, sinkType NodeType) error {
	return estaerr.With(estaerr.ErrMalformedGraph,
		"no edge kind for "+srcType.String()+" -> "+sinkType.String()+
			" ("+strconv.Itoa(int(src))+" -> "+strconv.Itoa(int(sink))+")")
}

// sinkHasOutgoingErr wraps ErrMalformedGraph when a sink-typed node is
// given an outgoing edge (spec §3 invariant: sinks are leaves).
func sinkHasOutgoingErr(n NodeID, t NodeType) error {
	return estaerr.WithNode(estaerr.ErrMalformedGraph, int(n), t.String()+" is a sink type but has outgoing edges")
}

// sourceHasIncomingErr wraps ErrMalformedGraph when a source-typed node
// is given an incoming edge (spec §3 invariant: sources are roots).
func sourceHasIncomingErr(n NodeID, t NodeType) error {
	return estaerr.WithNode(estaerr.ErrMalformedGraph, int(n), t.String()+" is a source type but has incoming edges")
}

// noFaninErr wraps ErrMalformedGraph when a non-source node has zero
// incoming edges (spec §3 invariant: "every non-source node has >= 1
// incoming edge").
func noFaninErr(n NodeID, t NodeType) error {
	return estaerr.WithNode(estaerr.ErrMalformedGraph, int(n), t.String()+" has no incoming edges")
}

// levelCrossingErr wraps ErrInternalInvariant when an edge is found to
// cross from a higher level to a lower (or equal) one after Levelize.
func levelCrossingErr(e EdgeID, src, sink NodeID, srcLevel, sinkLevel LevelID) error {
	return estaerr.WithEdge(estaerr.ErrInternalInvariant, int(e),
		"level("+strconv.Itoa(int(src))+")="+strconv.Itoa(int(srcLevel))+
			" >= level("+strconv.Itoa(int(sink))+")="+strconv.Itoa(int(sinkLevel)))
}
