// SPDX-License-Identifier: MIT
// Package: esta/obs
//
// obs.go — the observer/statistics interface spec §9 calls for ("a
// global action timer, global statistics... collect them through a
// passed-in observer object"), backed by go.uber.org/zap for structured
// output. The core never imports obs, and propagate.Config has no
// observer field: a caller constructs an Observer and calls its methods
// itself around a run.
package obs

import (
	"time"

	"go.uber.org/zap"
)

// Observer receives propagation-run events. A nil *Observer is not
// valid; use NoOp for a caller that does not want any observability.
type Observer struct {
	log   *zap.Logger
	stats Stats
}

// Stats accumulates the run-wide counters a CLI summary or Prometheus
// exporter would want.
type Stats struct {
	NodesProcessed  int
	Permutations    int
	BDDNodesCreated int
	Elapsed         time.Duration
}

// New returns an Observer logging through log.
func New(log *zap.Logger) *Observer {
	return &Observer{log: log}
}

// NoOp returns an Observer that discards every event.
func NoOp() *Observer {
	return &Observer{log: zap.NewNop()}
}

// NodeProcessed records one node's forward-sweep step.
func (o *Observer) NodeProcessed(nodeID int, permutations int) {
	o.stats.NodesProcessed++
	o.stats.Permutations += permutations
	o.log.Debug("node processed",
		zap.Int("node_id", nodeID),
		zap.Int("permutations", permutations),
	)
}

// RunStarted logs the beginning of a propagation run.
func (o *Observer) RunStarted(numNodes, numEdges int) {
	o.log.Info("propagation run started",
		zap.Int("num_nodes", numNodes),
		zap.Int("num_edges", numEdges),
	)
}

// RunFinished logs run completion and records elapsed wall time.
func (o *Observer) RunFinished(elapsed time.Duration) {
	o.stats.Elapsed = elapsed
	o.log.Info("propagation run finished",
		zap.Duration("elapsed", elapsed),
		zap.Int("nodes_processed", o.stats.NodesProcessed),
		zap.Int("permutations", o.stats.Permutations),
	)
}

// BDDNodeCreated records growth of the shared BDD manager's unique
// table, useful for spotting blowup before it exhausts memory.
func (o *Observer) BDDNodeCreated(total int) {
	o.stats.BDDNodesCreated = total
}

// Stats returns a snapshot of the accumulated counters.
func (o *Observer) Stats() Stats { return o.stats }
