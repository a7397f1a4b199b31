// Package esta (opentimely/esta) is an Extended Static Timing Analysis
// engine for synchronous combinational-plus-sequential digital netlists.
//
// 🚀 What is esta?
//
//	A single-threaded analysis core that, for every observable pin in a
//	levelized timing graph, computes a *distribution* of delays together
//	with the switching conditions (input transition patterns) that give
//	rise to each delay — rather than the single worst-case arrival time
//	classical STA reports.
//
// ✨ Pipeline
//
//	graph/       — C1: typed, levelized, struct-of-arrays timing graph
//	delay/       — C2: read-only (edge, output transition) → delay table
//	tag/         — C3: per-node extended timing tag store, merge/bin policy
//	propagate/   — C4: level-ordered forward sweep producing tags
//	satbdd/      — C5: per-tag BDD witness construction and #SAT counting
//	config/      — run configuration loaded through viper
//	obs/         — zap-backed observer and run statistics
//
// The module contains no netlist parser, report writer or command-line
// binary: a caller fills the graph and delay table itself through
// graph.Graph's AddNode/AddEdge/SetNodeFunc and delay.Table's Set.
//
// Tag witnesses and probabilities are built in a single owned BDD manager
// (satbdd.Manager) over a single owned tag arena (tag.Arena); the forward
// sweep itself is strictly serial.
//
//	go get github.com/opentimely/esta
package esta
