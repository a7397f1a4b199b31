// SPDX-License-Identifier: MIT
// Package: esta/estaerr
//
// errors.go — sentinel errors for every fatal error kind the core can
// raise (spec §7).
//
// Error policy (explicit and strict, mirrors the teacher's builder
// package):
//   - Only sentinel variables (package-level) are exposed for kind
//     checks; callers MUST use errors.Is(err, ErrX) to branch on
//     semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition
//     site; context is attached with %w at the call site via the With*
//     constructors below.
//   - All kinds are fatal to the current analysis run: there is no
//     partial-result recovery inside the core, callers retry with a
//     different configuration.
package estaerr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind in spec §7.
var (
	// ErrMalformedGraph indicates an edge references an unknown node, a
	// node has the wrong endpoint type for its edge kind, or a sink has
	// outgoing edges.
	ErrMalformedGraph = errors.New("esta: malformed graph")

	// ErrUnresolvedInstance indicates the builder could not resolve a
	// subcircuit reference.
	ErrUnresolvedInstance = errors.New("esta: unresolved instance")

	// ErrUnmodeledDelay indicates the delay table has no entry for an
	// (edge, output transition) pair required during propagation.
	ErrUnmodeledDelay = errors.New("esta: unmodeled delay")

	// ErrPermutationBudgetExceeded indicates a node's input-tag
	// permutation count exceeds the configured max_permutations.
	ErrPermutationBudgetExceeded = errors.New("esta: permutation budget exceeded")

	// ErrProbabilityMassViolation indicates a post-sweep check found
	// |sum(prob) - 1| > epsilon at some node.
	ErrProbabilityMassViolation = errors.New("esta: probability mass violation")

	// ErrInternalInvariant indicates a violation of a documented
	// invariant (e.g. an edge crosses levels after levelization).
	ErrInternalInvariant = errors.New("esta: internal invariant violated")
)

// WithNode wraps a sentinel with the offending node id for diagnostics.
// Use errors.Is(result, ErrX) to test kind; the node id is informational.
func WithNode(sentinel error, nodeID int, detail string) error {
	if detail == "" {
		return fmt.Errorf("%w: node %d", sentinel, nodeID)
	}
	return fmt.Errorf("%w: node %d: %s", sentinel, nodeID, detail)
}

// WithEdge wraps a sentinel with the offending edge id for diagnostics.
func WithEdge(sentinel error, edgeID int, detail string) error {
	if detail == "" {
		return fmt.Errorf("%w: edge %d", sentinel, edgeID)
	}
	return fmt.Errorf("%w: edge %d: %s", sentinel, edgeID, detail)
}

// With wraps a sentinel with a free-form detail string.
func With(sentinel error, detail string) error {
	return fmt.Errorf("%w: %s", sentinel, detail)
}
