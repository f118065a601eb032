package lineup

import (
	"math"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

type Edge string

const (
	EdgeHome     Edge = "home"
	EdgeOpponent Edge = "opponent"
	EdgeEven     Edge = "even"
)

// ComparisonRow is one head-to-head line of the matchup table
type ComparisonRow struct {
	Label          string  `json:"label"`
	Home           float64 `json:"home"`
	Opponent       float64 `json:"opponent"`
	HigherIsBetter bool    `json:"higherIsBetter"`
	Edge           Edge    `json:"edge"`
}

// Comparison pits the two active lineups against each other
type Comparison struct {
	Home     Aggregates      `json:"home"`
	Opponent Aggregates      `json:"opponent"`
	NetEdge  float64         `json:"netEdge"`
	Rows     []ComparisonRow `json:"rows"`
}

const edgeEpsilon = 1e-9

// Compare builds the comparison rows shown under the lineup simulator
func Compare(home, opponent []models.Player) Comparison {
	homeAgg := CalculateAggregates(home)
	oppAgg := CalculateAggregates(opponent)
	homeTotals := CalculateTotals(home)
	oppTotals := CalculateTotals(opponent)

	return Comparison{
		Home:     homeAgg,
		Opponent: oppAgg,
		NetEdge:  homeAgg.Net - oppAgg.Net,
		Rows: []ComparisonRow{
			newRow("ORTG", homeAgg.ORtg, oppAgg.ORtg, true),
			newRow("DRTG", homeAgg.DRtg, oppAgg.DRtg, false),
			newRow("NET", homeAgg.Net, oppAgg.Net, true),
			newRow("PER", homeAgg.PER, oppAgg.PER, true),
			newRow("PTS", homeTotals.Points, oppTotals.Points, true),
			newRow("REB", homeTotals.Rebounds, oppTotals.Rebounds, true),
			newRow("AST", homeTotals.Assists, oppTotals.Assists, true),
		},
	}
}

func newRow(label string, home, opponent float64, higherIsBetter bool) ComparisonRow {
	row := ComparisonRow{
		Label:          label,
		Home:           home,
		Opponent:       opponent,
		HigherIsBetter: higherIsBetter,
		Edge:           EdgeEven,
	}

	diff := home - opponent
	if !higherIsBetter {
		diff = -diff
	}
	switch {
	case math.Abs(diff) < edgeEpsilon:
	case diff > 0:
		row.Edge = EdgeHome
	default:
		row.Edge = EdgeOpponent
	}
	return row
}
