// SPDX-License-Identifier: MIT

// Package propagate implements the propagation engine (component C4):
// pre-traversal seeding of source-node tags (spec §4.4.1), a
// level-ordered forward sweep that enumerates input-tag permutations
// and merges candidate tags at every node (spec §4.4.2), the
// support/cofactor transition evaluator (spec §4.4.3), and the
// circuit-max aggregation pass (spec §4.4.4).
//
// A node's switching function (graph.Graph.Func) is evaluated through
// the boolfunc.Func interface using a positional convention: variable i
// corresponds to the i-th non-clock incoming edge of that node, in
// array order. This mirrors the original analyzer's habit of reusing a
// single canonical BDD variable for every pass-through pin's identity
// function — per-node functions are never ANDed or ORed against one
// another, only restricted in isolation, so their variable numbering
// only needs to be self-consistent within one node.
package propagate
