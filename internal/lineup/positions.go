package lineup

import (
	"strings"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// PositionFilter is an explicit allow-list of position tokens. A player qualifies when any
// token of their position (split on "-" or "/") is in the list.
type PositionFilter struct {
	Name             string
	AllowedPositions []string
}

var (
	homeSpeedFilter = PositionFilter{Name: "speed", AllowedPositions: []string{"PG", "SG", "G", "SF"}}
	homeBigFilter   = PositionFilter{Name: "big", AllowedPositions: []string{"C", "PF", "F"}}

	// Opponent datasets mostly use the coarse G/F/C tokens, so the generic forward counts as speed.
	opponentSpeedFilter = PositionFilter{Name: "speed", AllowedPositions: []string{"PG", "SG", "G", "SF", "F"}}
	opponentBigFilter   = PositionFilter{Name: "big", AllowedPositions: []string{"C", "PF", "F"}}
)

// FilterFor returns the allow-list a structural preset uses for the given side
func FilterFor(team models.Team, keyword string) (PositionFilter, bool) {
	switch keyword {
	case PresetSpeed:
		if team == models.TeamOpponent {
			return opponentSpeedFilter, true
		}
		return homeSpeedFilter, true
	case PresetBig:
		if team == models.TeamOpponent {
			return opponentBigFilter, true
		}
		return homeBigFilter, true
	}
	return PositionFilter{}, false
}

// PositionTokens splits a free-form position such as "C-F" or "g/f" into upper-case tokens
func PositionTokens(position string) []string {
	fields := strings.FieldsFunc(strings.ToUpper(position), func(r rune) bool {
		return r == '-' || r == '/' || r == ',' || r == ' '
	})
	return fields
}

// Allows reports whether the player's position passes the filter
func (f PositionFilter) Allows(player models.Player) bool {
	for _, token := range PositionTokens(player.Position) {
		for _, allowed := range f.AllowedPositions {
			if token == allowed {
				return true
			}
		}
	}
	return false
}

// Apply keeps qualifying players in roster order
func (f PositionFilter) Apply(roster []models.Player) []models.Player {
	out := make([]models.Player, 0, len(roster))
	for _, p := range roster {
		if f.Allows(p) {
			out = append(out, p)
		}
	}
	return out
}
