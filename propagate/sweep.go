// SPDX-License-Identifier: MIT
// Package: esta/propagate
//
// sweep.go — the level-ordered forward sweep's per-node step (spec
// §4.4.2): gather each incoming edge's predecessor tags, split into data
// and clock lists by clocknode.go's classification, enumerate the data
// lists' Cartesian product (clock edges contribute only to arrival — a
// Scenario cites one handle per data incoming edge, never a clock one),
// and merge the resulting candidate tag into the node's own clock- or
// data-tag set.
package propagate

import (
	"sort"

	"github.com/opentimely/esta/boolfunc"
	"github.com/opentimely/esta/delay"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/tag"
	"github.com/opentimely/esta/transition"
)

type predEdge struct {
	edge graph.EdgeID
	tags []tag.Handle
}

func (e *Engine) processNode(n graph.NodeID) error {
	nClock := isClockNode(e.g.NodeType(n))

	var dataEdges, clockEdges []predEdge
	for _, eid := range e.g.InEdges(n) {
		pred, _ := e.g.EdgeEndpoints(eid)
		if isClockNode(e.g.NodeType(pred)) {
			clockEdges = append(clockEdges, predEdge{eid, e.store.ClockTags(pred)})
		} else {
			dataEdges = append(dataEdges, predEdge{eid, e.store.DataTags(pred)})
		}
	}

	// Clock edges carry zero modeled delay (delay.Table's clock-neutrality
	// rule) and are never cited in a Scenario, so their contribution to
	// arrival is independent of whichever data permutation is being
	// considered: fold it in once, up front.
	var clockArrival delay.Delay
	var clockDomain graph.DomainID = graph.InvalidDomain
	var clockLaunch graph.NodeID
	haveClock := false
	for _, ce := range clockEdges {
		for _, h := range ce.tags {
			pt := e.store.Tag(h)
			if !haveClock || pt.Arrival > clockArrival {
				clockArrival, clockDomain, clockLaunch = pt.Arrival, pt.Domain, pt.Launch
				haveClock = true
			}
		}
	}

	if nClock {
		candidate := tag.Tag{
			Domain:     clockDomain,
			Launch:     clockLaunch,
			Transition: transition.Clock,
			Arrival:    clockArrival,
		}
		e.store.MergeClock(n, candidate)
		return nil
	}

	if len(dataEdges) == 0 {
		// A combinational node reachable only through clock edges (no
		// real data input, e.g. a malformed or degenerate netlist):
		// fall back to the node's own constant value, same derivation
		// as a ConstantGenSource.
		tr := transition.Low
		if e.g.Func(n).IsOne() {
			tr = transition.High
		}
		e.store.MergeData(n, tag.Tag{
			Domain:     clockDomain,
			Launch:     clockLaunch,
			Transition: tr,
			Arrival:    clockArrival,
		})
		return nil
	}

	count := 1
	for _, de := range dataEdges {
		if len(de.tags) == 0 {
			return nil // predecessor not yet seeded; nothing to propagate this pass
		}
		count *= len(de.tags)
	}
	if e.cfg.MaxPermutations > 0 && count > e.cfg.MaxPermutations {
		return permutationBudgetErr(n, count, e.cfg.MaxPermutations)
	}

	f := e.g.Func(n)
	idx := make([]int, len(dataEdges))
	initial := make([]bool, len(dataEdges))
	final := make([]bool, len(dataEdges))

	for {
		scenario := make(tag.Scenario, len(dataEdges))
		for i, de := range dataEdges {
			h := de.tags[idx[i]]
			pt := e.store.Tag(h)
			initial[i] = transition.InitialValue(pt.Transition)
			final[i] = transition.FinalValue(pt.Transition)
			scenario[i] = h
		}

		initOut := evalConst(f, initial)
		finalOut := evalConst(f, final)
		outTrans := transition.FromValues(initOut, finalOut)

		arrival := clockArrival
		domain := clockDomain
		launch := clockLaunch
		haveArrival := haveClock

		for i, de := range dataEdges {
			pt := e.store.Tag(de.tags[idx[i]])
			d, err := e.delays.EdgeDelay(de.edge, pt.Transition, outTrans)
			if err != nil {
				return err
			}
			a := pt.Arrival + d
			if !haveArrival || a > arrival {
				arrival, domain, launch, haveArrival = a, pt.Domain, pt.Launch, true
			}
		}

		if e.cfg.EnableTransitionFilter {
			scenario = e.filterScenario(f, scenario, final)
		}
		candidate := tag.Tag{
			Domain:     domain,
			Launch:     launch,
			Transition: outTrans,
			Arrival:    arrival,
			Scenarios:  []tag.Scenario{scenario},
		}
		e.store.MergeData(n, candidate)

		i := 0
		for ; i < len(idx); i++ {
			idx[i]++
			if idx[i] < len(dataEdges[i].tags) {
				break
			}
			idx[i] = 0
		}
		if i == len(idx) {
			break
		}
	}

	return nil
}

// filterScenario implements the next-state transition filter (spec
// §4.4.2 step 4): walking s's inputs in ascending arrival order,
// restrict f by the already-arrived inputs' settled (final) literals,
// then test whether f's positive and negative cofactors with respect
// to the next input are equal. Equal cofactors mean that input cannot
// change the output given what has already arrived, so its handle
// contributes nothing to the scenario's AND and is dropped.
func (e *Engine) filterScenario(f boolfunc.Func, s tag.Scenario, final []bool) tag.Scenario {
	order := make([]int, len(s))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return e.store.Tag(s[order[a]]).Arrival < e.store.Tag(s[order[b]]).Arrival
	})

	keep := make([]bool, len(s))
	restricted := f
	for _, i := range order {
		pos := restricted.Restrict(i, true)
		neg := restricted.Restrict(i, false)
		if !boolfunc.Equal(pos, neg) {
			keep[i] = true
		}
		restricted = restricted.Restrict(i, final[i])
	}

	filtered := make(tag.Scenario, 0, len(s))
	for i, h := range s {
		if keep[i] {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return s[:1]
	}
	return filtered
}
