// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// clocknode.go — the clock-network node classification used both to
// decide which of a predecessor's two tag sets an edge draws from and
// which of a node's own two tag sets its results are written into.
// ClockSource, ClockOpin, and FfClock form the clock distribution tree;
// every other node type carries data.
package propagate

import "github.com/opentimely/esta/graph"

func isClockNode(t graph.NodeType) bool {
	switch t {
	case graph.ClockSource, graph.ClockOpin, graph.FfClock:
		return true
	default:
		return false
	}
}
