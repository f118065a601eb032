package lineup

import (
	"encoding/json"
	"testing"

	"github.com/stitts-dev/courtside-intel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() State {
	return NewState(&models.MatchupAnalysis{
		HomeRoster:     fifteenManRoster(),
		OpponentRoster: opponentRoster(),
		LineupPresets:  opponentPresets(),
	})
}

func mustApply(t *testing.T, s State, e Event) State {
	t.Helper()
	next, changed := Apply(s, e)
	require.True(t, changed, "event %+v should change state", e)
	return next
}

func TestNewState(t *testing.T) {
	s := newTestState()

	assert.Nil(t, s.Selected)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(s.Home.Lineup.Active))
	assert.Len(t, s.Home.Lineup.Bench, 10)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(s.Opponent.Lineup.Active))
	assert.Len(t, s.Opponent.Lineup.Bench, 11)
	assert.Empty(t, s.Home.Presets)
	assert.Len(t, s.Opponent.Presets, 3)

	assert.Equal(t, State{}, NewState(nil))
}

func TestSelectSlotTransitions(t *testing.T) {
	s := newTestState()

	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 2})
	assert.Equal(t, &Slot{Team: models.TeamHome, Index: 2}, s.Selected)

	// different card on the same team re-targets without swapping
	before := s.Home.Lineup
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 4})
	assert.Equal(t, &Slot{Team: models.TeamHome, Index: 4}, s.Selected)
	assert.Equal(t, before, s.Home.Lineup)

	// same card again toggles off
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 4})
	assert.Nil(t, s.Selected)

	// a court card on the other team becomes the new target
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 0})
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamOpponent, Index: 3})
	assert.Equal(t, &Slot{Team: models.TeamOpponent, Index: 3}, s.Selected)
}

func TestSelectSlot_RejectsUnselectableSlots(t *testing.T) {
	s := newTestState()

	for _, e := range []Event{
		{Type: EventSelectSlot, Team: models.TeamHome, Index: 5},
		{Type: EventSelectSlot, Team: models.TeamHome, Index: -1},
		{Type: EventSelectSlot, Team: "referees", Index: 0},
	} {
		next, changed := Apply(s, e)
		assert.False(t, changed)
		assert.Equal(t, s, next)
	}

	short := NewState(&models.MatchupAnalysis{HomeRoster: makeRoster("PG", "C", "SF")})
	_, changed := Apply(short, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 3})
	assert.False(t, changed, "indices beyond a short lineup are not selectable")
	_, changed = Apply(short, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 2})
	assert.True(t, changed)
}

func TestClickBench_SwapsIntoSelectedSlot(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 2})

	s = mustApply(t, s, Event{Type: EventClickBench, Team: models.TeamHome, PlayerID: "p9"})

	assert.Equal(t, "p9", s.Home.Lineup.Active[2].ID)
	assert.NotContains(t, ids(s.Home.Lineup.Bench), "p9")
	assert.Equal(t, "p3", s.Home.Lineup.Bench[len(s.Home.Lineup.Bench)-1].ID, "displaced starter goes to the end of the bench")
	assert.Nil(t, s.Selected)
	require.NoError(t, s.Home.Lineup.Validate(s.Home.Roster))
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(s.Opponent.Lineup.Active), "other side untouched")
}

func TestClickBench_OtherTeamIsNoOp(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 2})

	next, changed := Apply(s, Event{Type: EventClickBench, Team: models.TeamOpponent, PlayerID: "p7"})

	assert.False(t, changed)
	assert.Equal(t, s, next)
	assert.Equal(t, &Slot{Team: models.TeamHome, Index: 2}, next.Selected, "selection is preserved")
}

func TestClickBench_WhileIdleIsNoOp(t *testing.T) {
	s := newTestState()

	next, changed := Apply(s, Event{Type: EventClickBench, Team: models.TeamHome, PlayerID: "p9"})

	assert.False(t, changed)
	assert.Equal(t, s, next)
}

func TestClickBench_UnknownPlayerKeepsSelection(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamOpponent, Index: 0})

	next, changed := Apply(s, Event{Type: EventClickBench, Team: models.TeamOpponent, PlayerID: "p2"})

	assert.False(t, changed, "a court player is not on the bench")
	assert.Equal(t, s.Selected, next.Selected)
}

func TestSwapBackRestoresLineup(t *testing.T) {
	original := newTestState()
	s := mustApply(t, original, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 1})
	s = mustApply(t, s, Event{Type: EventClickBench, Team: models.TeamHome, PlayerID: "p15"})
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 1})
	s = mustApply(t, s, Event{Type: EventClickBench, Team: models.TeamHome, PlayerID: "p2"})

	assert.Equal(t, original.Home.Lineup, s.Home.Lineup)
	assert.Nil(t, s.Selected)
}

func TestApplyPreset_ClearsSelectionAndResetsLineup(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 0})
	s = mustApply(t, s, Event{Type: EventClickBench, Team: models.TeamHome, PlayerID: "p12"})
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 3})

	s = mustApply(t, s, Event{Type: EventApplyPreset, Team: models.TeamHome, Preset: "starters"})

	assert.Nil(t, s.Selected)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(s.Home.Lineup.Active))
	assert.Equal(t, ids(s.Home.Roster[5:]), ids(s.Home.Lineup.Bench))
}

func TestApplyPreset_OpponentUsesDefinitions(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 0})

	s = mustApply(t, s, Event{Type: EventApplyPreset, Team: models.TeamOpponent, Preset: "speed"})

	assert.Nil(t, s.Selected, "a preset on either side clears the pending slot")
	assert.Equal(t, []string{"p1", "p5", "p7", "p8", "p9"}, ids(s.Opponent.Lineup.Active))
	require.NoError(t, s.Opponent.Lineup.Validate(s.Opponent.Roster))
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(s.Home.Lineup.Active))
}

func TestApply_IsPure(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 2})
	snapshot, err := json.Marshal(s)
	require.NoError(t, err)

	_ = mustApply(t, s, Event{Type: EventClickBench, Team: models.TeamHome, PlayerID: "p9"})
	_ = mustApply(t, s, Event{Type: EventApplyPreset, Team: models.TeamHome, Preset: "big"})

	after, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, string(snapshot), string(after))
}

func TestApply_UnknownEventAndClearSelection(t *testing.T) {
	s := newTestState()

	_, changed := Apply(s, Event{Type: "dance"})
	assert.False(t, changed)

	_, changed = Apply(s, Event{Type: EventClearSelection})
	assert.False(t, changed)

	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamOpponent, Index: 1})
	s = mustApply(t, s, Event{Type: EventClearSelection})
	assert.Nil(t, s.Selected)
}

func TestTakeSnapshot(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamHome, Index: 2})

	snap := TakeSnapshot(s)

	assert.Equal(t, s.Selected, snap.Selected)
	assert.Equal(t, CalculateAggregates(s.Home.Lineup.Active), snap.Home.Aggregates)
	assert.Equal(t, CalculateAggregates(s.Opponent.Lineup.Active), snap.Opponent.Aggregates)
	assert.Equal(t, CalculateTotals(s.Home.Lineup.Active), snap.Home.Totals)
	assert.InDelta(t, snap.Home.Aggregates.Net-snap.Opponent.Aggregates.Net, snap.Comparison.NetEdge, 1e-9)
	assert.Len(t, snap.Home.Bench, 10)
}

func TestState_RoundTripsThroughJSON(t *testing.T) {
	s := newTestState()
	s = mustApply(t, s, Event{Type: EventSelectSlot, Team: models.TeamOpponent, Index: 4})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}
