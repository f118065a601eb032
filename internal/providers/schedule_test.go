package providers

import (
	"context"
	"testing"

	"github.com/stitts-dev/courtside-intel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchedule(t *testing.T) {
	p := newTestProvider(0)

	games, err := p.GetSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 16)
	assert.Equal(t, "g43", games[0].ID)
	assert.Equal(t, "W 145-127", games[0].Result)

	games[0].Opponent = "changed"
	again, err := p.GetSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Warriors", again[0].Opponent)
}

func TestGetSchedule_CancelledContext(t *testing.T) {
	p := newTestProvider(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetSchedule(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNextGame(t *testing.T) {
	tests := []struct {
		name     string
		games    []models.Game
		expected string
		found    bool
	}{
		{name: "empty schedule", games: nil, found: false},
		{
			name: "first upcoming game",
			games: []models.Game{
				{ID: "a", Status: models.GameStatusCompleted},
				{ID: "b", Status: models.GameStatusUpcoming},
				{ID: "c", Status: models.GameStatusUpcoming},
			},
			expected: "b",
			found:    true,
		},
		{
			name: "all completed falls back to first",
			games: []models.Game{
				{ID: "a", Status: models.GameStatusCompleted},
				{ID: "b", Status: models.GameStatusLive},
			},
			expected: "a",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, ok := NextGame(tt.games)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, game.ID)
		})
	}
}

func TestNextGame_SeasonSchedule(t *testing.T) {
	game, ok := NextGame(seasonSchedule)
	require.True(t, ok)
	assert.Equal(t, "g51", game.ID)
	assert.Equal(t, "Bulls", game.Opponent)
	assert.Equal(t, "https://cdn.nba.com/logos/nba/1610612741/primary/L/logo.svg", game.LogoURL())
}

func TestFindGame(t *testing.T) {
	game, ok := FindGame(seasonSchedule, "g50")
	require.True(t, ok)
	assert.Equal(t, "Timberwolves", game.Opponent)

	_, ok = FindGame(seasonSchedule, "g99")
	assert.False(t, ok)
}
