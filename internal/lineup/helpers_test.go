package lineup

import (
	"fmt"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// makeRoster builds players p1..pN with the given positions and ratings that identify them
func makeRoster(positions ...string) []models.Player {
	roster := make([]models.Player, 0, len(positions))
	for i, pos := range positions {
		n := float64(i + 1)
		roster = append(roster, models.Player{
			ID:       fmt.Sprintf("p%d", i+1),
			Name:     fmt.Sprintf("Player %d", i+1),
			Position: pos,
			Number:   fmt.Sprintf("%d", i+1),
			SeasonStats: models.StatSet{
				PPG: 10 + n,
				RPG: 2 + n/2,
				APG: 1 + n/4,
			},
			Advanced: models.AdvancedStats{
				PER:  10 + n,
				ORtg: 100 + n,
				DRtg: 120 - n,
			},
		})
	}
	return roster
}

// fifteenManRoster mirrors the home roster shape used by the dashboard
func fifteenManRoster() []models.Player {
	return makeRoster(
		"PF", "SF", "PG", "SF", "C",
		"C", "PG", "PF", "SG", "SG",
		"C", "PF", "SF", "SG", "SG",
	)
}

func ids(players []models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
