// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// maxagg.go — circuit-level max-arrival aggregation (spec §4.4.4) and
// the post-sweep probability-mass verification (spec §4.5.4, testable
// property 1).
package propagate

import (
	"math"

	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/tag"
	"github.com/opentimely/esta/transition"
)

// probabilityMassEpsilon bounds the tolerated drift of a node's tag
// probabilities away from 1 before it is reported as a violation.
const probabilityMassEpsilon = 1e-6

// aggregateMax verifies the probability-mass invariant (spec §8 testable
// property 1) at every node's data- and clock-tag set, then copies every
// primary output's data tags into a single MaxSet, retagging each to
// transition.Max so they collapse together across different outputs
// exactly as a node's own data tags would. It finishes spec §4.4.4's
// second half: sorted by descending arrival, each max tag's probability
// is the fraction of its witness not already covered by a
// larger-arrival tag's witness, so the set's probabilities sum to 1
// without double-counting inputs that satisfy more than one tag.
func (e *Engine) aggregateMax() (*tag.MaxSet, map[tag.Handle]float64, error) {
	for i := 0; i < e.g.NumNodes(); i++ {
		n := graph.NodeID(i)
		if err := e.verifyProbabilityMass(n, e.store.DataTags(n)); err != nil {
			return nil, nil, err
		}
		if err := e.verifyProbabilityMass(n, e.store.ClockTags(n)); err != nil {
			return nil, nil, err
		}
	}

	max := tag.NewMaxSet(e.store.Arena(), e.store.Policy())
	for _, n := range e.g.PrimaryOutputs() {
		for _, h := range e.store.DataTags(n) {
			t := e.store.Tag(h)
			max.Merge(tag.Tag{
				Domain:     t.Domain,
				Launch:     t.Launch,
				Transition: transition.Max,
				Arrival:    t.Arrival,
				// Cite h itself rather than copying t.Scenarios: h
				// already resolves to t's own witness through Xfunc
				// regardless of whether t is a source tag or was built
				// from predecessors, so this stays correct even when t
				// carries no Scenarios of its own.
				Scenarios: []tag.Scenario{{h}},
			})
		}
	}

	probs := e.maxProbabilities(max)
	return max, probs, nil
}

// maxProbabilities implements spec §4.4.4's subtract-already-covered-terms
// walk: sorted by descending arrival, each tag's probability is the
// fraction of its witness not already satisfied by a larger-arrival
// tag's witness, and "covered" accumulates the OR of every witness seen
// so far. When cfg.InferLastMaxProbability is set, the smallest-arrival
// tag's BDD is never built; its probability is inferred as 1 minus the
// sum of the others, trading the probability-sum invariant's direct
// verification for speed (spec §4.4.4: "must be a flag, not the
// default").
func (e *Engine) maxProbabilities(max *tag.MaxSet) map[tag.Handle]float64 {
	sorted := max.SortByDescendingArrival()
	probs := make(map[tag.Handle]float64, len(sorted))

	bdd := e.bdd.BDD()
	covered := bdd.Zero()
	sum := 0.0

	for i, h := range sorted {
		if e.cfg.InferLastMaxProbability && i == len(sorted)-1 {
			probs[h] = 1 - sum
			break
		}

		witness := e.bdd.Xfunc(h).Ref()
		uncovered := bdd.And(witness, bdd.Not(covered))
		p := bdd.CountMintermFraction(uncovered)

		probs[h] = p
		sum += p
		covered = bdd.Or(covered, witness)
	}

	return probs
}

// verifyProbabilityMass checks that handles' probabilities sum to 1,
// a no-op for an empty set (a node that carries only the other of its
// two tag kinds).
func (e *Engine) verifyProbabilityMass(n graph.NodeID, handles []tag.Handle) error {
	if len(handles) == 0 {
		return nil
	}
	sum := 0.0
	for _, h := range handles {
		sum += e.bdd.Probability(h)
	}
	if math.Abs(sum-1) > probabilityMassEpsilon {
		return probabilityMassErr(n, sum)
	}
	return nil
}
