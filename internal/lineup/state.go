package lineup

import (
	"github.com/stitts-dev/courtside-intel/internal/models"
)

// Slot is one court position pending a swap
type Slot struct {
	Team  models.Team `json:"team"`
	Index int         `json:"index"`
}

// Side is everything the engine tracks for one team
type Side struct {
	Roster  []models.Player       `json:"roster"`
	Presets []models.LineupPreset `json:"presets,omitempty"`
	Lineup  Partition             `json:"lineup"`
}

// State is the serialisable lineup simulator state owned by a dashboard view. Transitions never
// mutate a State in place; Apply returns a new value.
type State struct {
	Home     Side  `json:"home"`
	Opponent Side  `json:"opponent"`
	Selected *Slot `json:"selected,omitempty"`
}

type EventType string

const (
	EventSelectSlot     EventType = "select_slot"
	EventClickBench     EventType = "click_bench"
	EventApplyPreset    EventType = "apply_preset"
	EventClearSelection EventType = "clear_selection"
)

// Event is a user interaction with the lineup simulator
type Event struct {
	Type     EventType   `json:"type" binding:"required"`
	Team     models.Team `json:"team,omitempty"`
	Index    int         `json:"index,omitempty"`
	PlayerID string      `json:"playerId,omitempty"`
	Preset   string      `json:"preset,omitempty"`
}

// NewState starts both sides from their starters with nothing selected
func NewState(analysis *models.MatchupAnalysis) State {
	if analysis == nil {
		return State{}
	}
	return State{
		Home: Side{
			Roster: clonePlayers(analysis.HomeRoster),
			Lineup: InitPartition(analysis.HomeRoster),
		},
		Opponent: Side{
			Roster:  clonePlayers(analysis.OpponentRoster),
			Presets: analysis.LineupPresets,
			Lineup:  InitPartition(analysis.OpponentRoster),
		},
	}
}

// Side returns the side for a team
func (s State) Side(team models.Team) Side {
	if team == models.TeamOpponent {
		return s.Opponent
	}
	return s.Home
}

func (s State) withSide(team models.Team, side Side) State {
	if team == models.TeamOpponent {
		s.Opponent = side
	} else {
		s.Home = side
	}
	return s
}

// Apply runs one event through the state machine and reports whether anything changed. Invalid
// or mismatched events are ignored rather than reported as errors.
func Apply(s State, e Event) (State, bool) {
	switch e.Type {
	case EventSelectSlot:
		return selectSlot(s, e.Team, e.Index)
	case EventClickBench:
		return clickBench(s, e.Team, e.PlayerID)
	case EventApplyPreset:
		return applyPreset(s, e.Team, e.Preset)
	case EventClearSelection:
		if s.Selected == nil {
			return s, false
		}
		s.Selected = nil
		return s, true
	}
	return s, false
}

// selectSlot toggles a court card: the same card deselects, any other card becomes the target.
func selectSlot(s State, team models.Team, index int) (State, bool) {
	if !team.Valid() || index < 0 || index >= len(s.Side(team).Lineup.Active) {
		return s, false
	}
	if s.Selected != nil && s.Selected.Team == team && s.Selected.Index == index {
		s.Selected = nil
		return s, true
	}
	s.Selected = &Slot{Team: team, Index: index}
	return s, true
}

// clickBench swaps the bench player into the selected slot when both belong to the same team.
func clickBench(s State, team models.Team, playerID string) (State, bool) {
	if s.Selected == nil || s.Selected.Team != team {
		return s, false
	}
	side := s.Side(team)
	lineup, ok := side.Lineup.Swap(s.Selected.Index, playerID)
	if !ok {
		return s, false
	}
	side.Lineup = lineup
	s = s.withSide(team, side)
	s.Selected = nil
	return s, true
}

func applyPreset(s State, team models.Team, preset string) (State, bool) {
	if !team.Valid() {
		return s, false
	}
	side := s.Side(team)
	active := ResolvePreset(side.Roster, side.Presets, preset, team)
	side.Lineup = PartitionFrom(side.Roster, active)
	s = s.withSide(team, side)
	s.Selected = nil
	return s, true
}

// SideSnapshot is what the dashboard renders for one team
type SideSnapshot struct {
	Active     []models.Player `json:"active"`
	Bench      []models.Player `json:"bench"`
	Aggregates Aggregates      `json:"aggregates"`
	Totals     Totals          `json:"totals"`
}

// Snapshot is the rendered view of a State with all derived numbers recomputed
type Snapshot struct {
	Home       SideSnapshot `json:"home"`
	Opponent   SideSnapshot `json:"opponent"`
	Selected   *Slot        `json:"selected,omitempty"`
	Comparison Comparison   `json:"comparison"`
}

// TakeSnapshot recomputes aggregates for both active lineups
func TakeSnapshot(s State) Snapshot {
	return Snapshot{
		Home:       sideSnapshot(s.Home.Lineup),
		Opponent:   sideSnapshot(s.Opponent.Lineup),
		Selected:   s.Selected,
		Comparison: Compare(s.Home.Lineup.Active, s.Opponent.Lineup.Active),
	}
}

func sideSnapshot(p Partition) SideSnapshot {
	return SideSnapshot{
		Active:     p.Active,
		Bench:      p.Bench,
		Aggregates: CalculateAggregates(p.Active),
		Totals:     CalculateTotals(p.Active),
	}
}
