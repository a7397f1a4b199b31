// SPDX-License-Identifier: MIT
// Package: esta/propagate
package propagate

import (
	"strconv"

	"github.com/opentimely/esta/estaerr"
	"github.com/opentimely/esta/graph"
)

// graphNotLevelizedErr wraps ErrMalformedGraph when Run is called before
// the graph has been levelized.
func graphNotLevelizedErr() error {
	return estaerr.With(estaerr.ErrMalformedGraph, "graph must be levelized before propagation")
}

// permutationBudgetErr wraps ErrPermutationBudgetExceeded when a node's
// Cartesian-product permutation count exceeds Config.MaxPermutations
// (spec §4.4.2, §7).
func permutationBudgetErr(n graph.NodeID, count, max int) error {
	return estaerr.WithNode(estaerr.ErrPermutationBudgetExceeded, int(n),
		"permutation count "+strconv.Itoa(count)+" exceeds max_permutations "+strconv.Itoa(max))
}

// probabilityMassErr wraps ErrProbabilityMassViolation when a node's
// tag probabilities fail to sum to 1 within tolerance (spec §4.5.4, §7).
func probabilityMassErr(n graph.NodeID, sum float64) error {
	return estaerr.WithNode(estaerr.ErrProbabilityMassViolation, int(n),
		"tag probabilities sum to "+strconv.FormatFloat(sum, 'g', -1, 64)+", want 1.0")
}
