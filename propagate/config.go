// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// config.go — the run-time knobs the forward sweep consults (subset of
// spec §6's enumerated configuration relevant to C4; bin_policy and
// cond_func live with tag/satbdd respectively since they parameterize
// those components directly).
package propagate

// Config holds the propagation engine's run parameters.
type Config struct {
	// MaxPermutations caps the Cartesian-product permutation count at a
	// node; 0 means unbounded (spec §6).
	MaxPermutations int
	// EnableTransitionFilter turns on the next-state transition filter
	// (spec §4.4.2 step 4): redundant input citations are dropped from a
	// candidate's scenario rather than always citing every data input.
	EnableTransitionFilter bool
	// InferLastMaxProbability, when true, lets max-arrival aggregation
	// infer the smallest-arrival max tag's probability as 1 minus the
	// sum of the others instead of building its BDD (spec §4.4.4). Must
	// default to false: the optimization precludes validating the
	// probability sum.
	InferLastMaxProbability bool
}
