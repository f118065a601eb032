package lineup

import (
	"math"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// Aggregates is the mean advanced-stat summary of a lineup
type Aggregates struct {
	ORtg float64 `json:"ortg"`
	DRtg float64 `json:"drtg"`
	PER  float64 `json:"per"`
	Net  float64 `json:"net"`
}

// Totals are summed box-score averages for a lineup
type Totals struct {
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
}

// CalculateAggregates averages ORtg, DRtg and PER across the players. An empty lineup yields the
// zero aggregate. Net is always ORtg - DRtg.
func CalculateAggregates(players []models.Player) Aggregates {
	if len(players) == 0 {
		return Aggregates{}
	}

	var ortg, drtg, per float64
	for _, p := range players {
		ortg += finite(p.Advanced.ORtg)
		drtg += finite(p.Advanced.DRtg)
		per += finite(p.Advanced.PER)
	}

	n := float64(len(players))
	agg := Aggregates{
		ORtg: ortg / n,
		DRtg: drtg / n,
		PER:  per / n,
	}
	agg.Net = agg.ORtg - agg.DRtg
	return agg
}

// CalculateTotals sums season points, rebounds and assists across the players
func CalculateTotals(players []models.Player) Totals {
	var t Totals
	for _, p := range players {
		t.Points += finite(p.SeasonStats.PPG)
		t.Rebounds += finite(p.SeasonStats.RPG)
		t.Assists += finite(p.SeasonStats.APG)
	}
	return t
}

// finite maps NaN and infinities to zero so a malformed stat never poisons a lineup mean
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
