// SPDX-License-Identifier: MIT

// Package delay implements the delay table (component C2): a read-only
// (edge, output_transition) -> delay mapping consulted by propagate
// during the forward sweep. Grounded on PreCalcTransDelayCalculator in
// original_source/src/libesta/PreCalcTransDelayCalc.hpp, which indexes a
// precomputed per-edge delay vector by output transition only (the
// supplied data has pair-equal rise/fall delays, so no input-transition
// axis is modeled) and short-circuits to zero whenever either side of the
// transition pair is Clock.
//
// Missing entries are a modeling error, not a zero delay: EdgeDelay
// returns estaerr.ErrUnmodeledDelay rather than guessing.
package delay
