package providers

import (
	"context"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// seasonSchedule is the stretch of the season the dashboard covers, in date order
var seasonSchedule = []models.Game{
	{ID: "g43", Date: "Jan 20", Opponent: "Warriors", OpponentID: "1610612744", IsHome: false, Time: "10:00 PM", Venue: "Chase Center", Status: models.GameStatusCompleted, Result: "W 145-127"},
	{ID: "g44", Date: "Jan 21", Opponent: "Kings", OpponentID: "1610612758", IsHome: false, Time: "10:00 PM", Venue: "Golden 1 Center", Status: models.GameStatusCompleted, Result: "W 122-109"},
	{ID: "g45", Date: "Jan 23", Opponent: "Trail Blazers", OpponentID: "1610612757", IsHome: false, Time: "10:00 PM", Venue: "Moda Center", Status: models.GameStatusCompleted, Result: "W 110-98"},
	{ID: "g46", Date: "Jan 25", Opponent: "Thunder", OpponentID: "1610612760", IsHome: false, Time: "8:00 PM", Venue: "Paycom Center", Status: models.GameStatusCompleted, Result: "W 103-101"},
	{ID: "g47", Date: "Jan 28", Opponent: "Knicks", OpponentID: "1610612752", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusCompleted, Result: "L 92-119"},
	{ID: "g48", Date: "Jan 30", Opponent: "Magic", OpponentID: "1610612753", IsHome: false, Time: "7:00 PM", Venue: "Kia Center", Status: models.GameStatusCompleted, Result: "L 120-130"},
	{ID: "g49", Date: "Feb 1", Opponent: "Jazz", OpponentID: "1610612762", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusCompleted, Result: "W 107-100"},
	{ID: "g50", Date: "Feb 4", Opponent: "Timberwolves", OpponentID: "1610612750", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusCompleted, Result: "L 126-128"},
	{ID: "g51", Date: "Feb 5", Opponent: "Bulls", OpponentID: "1610612741", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusUpcoming},
	{ID: "g52", Date: "Feb 8", Opponent: "Pacers", OpponentID: "1610612754", IsHome: true, Time: "3:00 PM", Venue: "Scotiabank Arena", Status: models.GameStatusUpcoming},
	{ID: "g53", Date: "Feb 11", Opponent: "Pistons", OpponentID: "1610612765", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusUpcoming},
	{ID: "g54", Date: "Feb 19", Opponent: "Bulls", OpponentID: "1610612741", IsHome: false, Time: "8:00 PM", Venue: "United Center", Status: models.GameStatusUpcoming},
	{ID: "g55", Date: "Feb 22", Opponent: "Bucks", OpponentID: "1610612749", IsHome: false, Time: "3:30 PM", Venue: "Fiserv Forum", Status: models.GameStatusUpcoming},
	{ID: "g56", Date: "Feb 24", Opponent: "Thunder", OpponentID: "1610612760", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusUpcoming},
	{ID: "g57", Date: "Feb 25", Opponent: "Spurs", OpponentID: "1610612759", IsHome: true, Time: "7:30 PM", Venue: "Scotiabank Arena", Status: models.GameStatusUpcoming},
	{ID: "g58", Date: "Feb 28", Opponent: "Wizards", OpponentID: "1610612764", IsHome: false, Time: "7:00 PM", Venue: "Capital One Arena", Status: models.GameStatusUpcoming},
}

// GetSchedule returns a copy of the season schedule
func (p *MatchupProvider) GetSchedule(ctx context.Context) ([]models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	games := make([]models.Game, len(seasonSchedule))
	copy(games, seasonSchedule)
	return games, nil
}

// NextGame picks the game the dashboard opens on: the first upcoming game, otherwise the first
// game listed. It reports false for an empty schedule.
func NextGame(games []models.Game) (models.Game, bool) {
	if len(games) == 0 {
		return models.Game{}, false
	}
	for _, g := range games {
		if g.Status == models.GameStatusUpcoming {
			return g, true
		}
	}
	return games[0], true
}

// FindGame looks a game up by id
func FindGame(games []models.Game, id string) (models.Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}
