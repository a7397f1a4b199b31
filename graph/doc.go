// SPDX-License-Identifier: MIT

// Package graph implements the timing graph (component C1): a
// column-oriented DAG of pins/nets/primitives/flip-flops, levelized by
// Kahn's algorithm and laid out contiguously per level for the
// bandwidth-bound forward sweep in propagate.
//
// Layout:
//   - types.go     node/edge id types, closed NodeType/EdgeKind enums, Graph
//   - methods.go   AddNode/AddEdge/SetNodeFunc, accessors, Validate
//   - levelize.go  Levelize (Kahn's algorithm), checkNoLevelCrossing
//   - layout.go    OptimizeNodeLayout/OptimizeEdgeLayout
//   - errors.go    ErrMalformedGraph/ErrInternalInvariant wrapping
//
// A Graph stores only static connectivity and per-node classification.
// Arrival times and tags live in package tag; delays live in package
// delay. Per-node switching functions are stored behind the boolfunc.Func
// interface so this package never depends on the concrete BDD
// implementation in satbdd/robdd.
package graph
