// SPDX-License-Identifier: MIT
package delay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentimely/esta/estaerr"
	"github.com/opentimely/esta/graph"
	"github.com/opentimely/esta/transition"
)

func TestEdgeDelayLooksUpByOutputTransition(t *testing.T) {
	tbl := NewTable()
	tbl.Set(0, transition.Rise, 1.5)
	tbl.Set(0, transition.Fall, 2.0)

	d, err := tbl.EdgeDelay(0, transition.Low, transition.Rise)
	require.NoError(t, err)
	assert.Equal(t, Delay(1.5), d)

	d, err = tbl.EdgeDelay(0, transition.High, transition.Fall)
	require.NoError(t, err)
	assert.Equal(t, Delay(2.0), d)
}

func TestEdgeDelayClockNeutrality(t *testing.T) {
	tbl := NewTable() // deliberately empty: clock neutrality must not consult entries

	d, err := tbl.EdgeDelay(0, transition.Clock, transition.Rise)
	require.NoError(t, err)
	assert.Equal(t, Delay(0), d)

	d, err = tbl.EdgeDelay(0, transition.Rise, transition.Clock)
	require.NoError(t, err)
	assert.Equal(t, Delay(0), d)
}

func TestEdgeDelayUnmodeledIsFatal(t *testing.T) {
	tbl := NewTable()

	_, err := tbl.EdgeDelay(graph.EdgeID(7), transition.Rise, transition.Fall)
	require.Error(t, err)
	assert.True(t, errors.Is(err, estaerr.ErrUnmodeledDelay))
}

func TestStatsTracksCountAndExtrema(t *testing.T) {
	tbl := NewTable()
	tbl.Set(0, transition.Rise, 3.0)
	tbl.Set(0, transition.Fall, 1.0)
	tbl.Set(1, transition.Rise, 5.0)

	s := tbl.Stats()
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, Delay(1.0), s.Min)
	assert.Equal(t, Delay(5.0), s.Max)
}

func TestSetOverwritesPreviousEntry(t *testing.T) {
	tbl := NewTable()
	tbl.Set(0, transition.Rise, 1.0)
	tbl.Set(0, transition.Rise, 9.0)

	d, err := tbl.EdgeDelay(0, transition.Low, transition.Rise)
	require.NoError(t, err)
	assert.Equal(t, Delay(9.0), d)
	assert.Equal(t, 1, tbl.Stats().Count)
}
