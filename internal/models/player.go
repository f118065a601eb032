package models

// StatSet holds per-game averages. Percentages are on a 0-100 scale.
type StatSet struct {
	PPG        float64 `json:"ppg"`
	RPG        float64 `json:"rpg"`
	APG        float64 `json:"apg"`
	SPG        float64 `json:"spg"`
	BPG        float64 `json:"bpg"`
	OReb       float64 `json:"oreb"`
	DReb       float64 `json:"dreb"`
	FGPct      float64 `json:"fgPct"`
	ThreePtPct float64 `json:"threePtPct"`
	FTPct      float64 `json:"ftPct"`
	PlusMinus  float64 `json:"plusMinus"`
	Turnovers  float64 `json:"turnovers"`
}

// AdvancedStats are the efficiency numbers the lineup aggregates are built from
type AdvancedStats struct {
	PER  float64 `json:"per"`
	TS   float64 `json:"ts"`
	USG  float64 `json:"usg"`
	ORtg float64 `json:"ortg"`
	DRtg float64 `json:"drtg"`
}

// Player is immutable once a matchup has been built; lineups only reorder and partition players.
type Player struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Position        string        `json:"position"`
	Number          string        `json:"number"`
	ImageURL        string        `json:"imageUrl,omitempty"`
	SeasonStats     StatSet       `json:"seasonStats"`
	VsOpponentStats StatSet       `json:"vsOpponentStats"`
	Advanced        AdvancedStats `json:"advanced"`
	Analysis        string        `json:"analysis,omitempty"`
}

// Team identifies one side of a matchup
type Team string

const (
	TeamHome     Team = "home"
	TeamOpponent Team = "opponent"
)

func (t Team) Valid() bool {
	return t == TeamHome || t == TeamOpponent
}
