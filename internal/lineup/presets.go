package lineup

import (
	"strings"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// Preset keywords understood by the structural rules
const (
	PresetStarters = "starters"
	PresetSecond   = "second"
	PresetBench    = "bench"
	PresetSpeed    = "speed"
	PresetBig      = "big"
)

// HomePresets are the buttons offered for the home side, which has no explicit definitions
var HomePresets = []string{PresetStarters, PresetSecond, PresetSpeed, PresetBig}

// ResolvePreset derives an active lineup of at most five players from a roster.
//
// Explicit definitions are only consulted for the opponent. When they do not produce a full five
// the keyword's structural rule takes over; whatever is still missing is topped up from unused
// roster players in roster order. An unknown keyword with nothing else to go on falls back to the
// first five.
func ResolvePreset(roster []models.Player, definitions []models.LineupPreset, presetName string, team models.Team) []models.Player {
	keyword := strings.ToLower(strings.TrimSpace(presetName))

	var candidates []models.Player
	if team == models.TeamOpponent {
		candidates = explicitMembers(roster, definitions, keyword)
	}

	if len(candidates) < ActiveSize {
		if structural, ok := structuralRule(roster, keyword, team); ok {
			candidates = structural
		} else if len(candidates) == 0 {
			candidates = firstN(roster, ActiveSize)
		}
	}

	candidates = topUp(roster, candidates)
	if len(candidates) > ActiveSize {
		candidates = candidates[:ActiveSize]
	}
	return candidates
}

// FindDefinition returns the first definition whose name contains the keyword or is contained by
// it, ignoring case. Definitions without members never match.
func FindDefinition(definitions []models.LineupPreset, keyword string) (models.LineupPreset, bool) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return models.LineupPreset{}, false
	}
	for _, def := range definitions {
		name := strings.ToLower(strings.TrimSpace(def.Name))
		if name == "" || len(def.PlayerIDs) == 0 {
			continue
		}
		if strings.Contains(name, keyword) || strings.Contains(keyword, name) {
			return def, true
		}
	}
	return models.LineupPreset{}, false
}

func explicitMembers(roster []models.Player, definitions []models.LineupPreset, keyword string) []models.Player {
	def, ok := FindDefinition(definitions, keyword)
	if !ok {
		return nil
	}
	members := make(map[string]bool, len(def.PlayerIDs))
	for _, id := range def.PlayerIDs {
		members[id] = true
	}
	out := make([]models.Player, 0, ActiveSize)
	for _, p := range roster {
		if members[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func structuralRule(roster []models.Player, keyword string, team models.Team) ([]models.Player, bool) {
	switch keyword {
	case PresetStarters:
		return firstN(roster, ActiveSize), true
	case PresetSecond, PresetBench:
		return window(roster, ActiveSize, 2*ActiveSize), true
	case PresetSpeed, PresetBig:
		filter, _ := FilterFor(team, keyword)
		return firstN(filter.Apply(roster), ActiveSize), true
	}
	return nil, false
}

// topUp appends unused roster players in roster order until the lineup is full or the roster runs out
func topUp(roster []models.Player, candidates []models.Player) []models.Player {
	if len(candidates) >= ActiveSize {
		return candidates
	}
	out := clonePlayers(candidates)
	used := idSet(out)
	for _, p := range roster {
		if len(out) >= ActiveSize {
			break
		}
		if used[p.ID] {
			continue
		}
		out = append(out, p)
		used[p.ID] = true
	}
	return out
}

func firstN(players []models.Player, n int) []models.Player {
	if len(players) < n {
		n = len(players)
	}
	return clonePlayers(players[:n])
}

func window(players []models.Player, from, to int) []models.Player {
	if from >= len(players) {
		return nil
	}
	if to > len(players) {
		to = len(players)
	}
	return clonePlayers(players[from:to])
}
