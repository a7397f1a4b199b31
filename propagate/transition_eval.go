// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// transition_eval.go — the §4.4.3 output-transition evaluator: two
// constant-point evaluations of a node's switching function, one at the
// initial value and one at the final value of each data input's
// transition, combined via transition.FromValues.
package propagate

import "github.com/opentimely/esta/boolfunc"

// evalConst restricts f to a full assignment over variables
// [0, len(values)) — the positional per-node convention where variable i
// is the node's i-th data incoming edge — and reports the resulting
// constant's value.
func evalConst(f boolfunc.Func, values []bool) bool {
	for v, val := range values {
		f = f.Restrict(v, val)
	}
	return f.IsOne()
}
