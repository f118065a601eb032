package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/models"
)

var ErrOpponentRequired = errors.New("opponent is required")

const opponentAnalysis = "Key rotation player. Watch for aggressive drives."

// MatchupProvider serves the schedule and builds a fresh MatchupAnalysis per request from the
// static scouting data
type MatchupProvider struct {
	homeTeam string
	stats    StatsGenerator
	latency  time.Duration
	logger   *logrus.Logger
}

// NewMatchupProvider creates a provider. latency simulates a slow upstream and may be zero.
func NewMatchupProvider(homeTeam string, stats StatsGenerator, latency time.Duration, logger *logrus.Logger) *MatchupProvider {
	if homeTeam == "" {
		homeTeam = "Raptors"
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &MatchupProvider{
		homeTeam: homeTeam,
		stats:    stats,
		latency:  latency,
		logger:   logger,
	}
}

// HomeTeam returns the name the analysis is written from
func (p *MatchupProvider) HomeTeam() string {
	return p.homeTeam
}

// GetMatchupAnalysis scouts an opponent by name. Unknown opponents get a generic roster and
// playbook rather than an error.
func (p *MatchupProvider) GetMatchupAnalysis(ctx context.Context, opponent string) (*models.MatchupAnalysis, error) {
	opponent = strings.TrimSpace(opponent)
	if opponent == "" {
		return nil, ErrOpponentRequired
	}

	if err := p.wait(ctx); err != nil {
		return nil, fmt.Errorf("matchup analysis for %s: %w", opponent, err)
	}

	profile, scouted := lookupOpponent(opponent)
	roster := p.enrichRoster(profile.Roster)

	analysis := &models.MatchupAnalysis{
		Opponent:       opponent,
		Summary:        p.summary(opponent, roster, profile.Tendencies),
		WinProbability: clampPercent(p.stats.WinProbability()),
		HomeRoster:     HomeRoster(),
		OpponentRoster: roster,
		LineupPresets:  presetDefinitions(roster),
		Playbook:       clonePlays(profile.Playbook),
		ScoutingReport: scoutingReport(roster, profile.Tendencies),
		Intel:          p.intel(opponent),
	}

	p.logger.WithFields(logrus.Fields{
		"opponent":      opponent,
		"profile":       profile.Name,
		"scouted":       scouted,
		"roster_size":   len(roster),
		"playbook_size": len(analysis.Playbook),
	}).Debug("Built matchup analysis")

	return analysis, nil
}

// wait applies the configured latency, returning early if the caller gives up
func (p *MatchupProvider) wait(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// lookupOpponent tries an exact name, then a partial match in either direction, ignoring case
func lookupOpponent(name string) (opponentProfile, bool) {
	needle := strings.ToLower(name)
	for _, profile := range scoutedOpponents {
		if strings.ToLower(profile.Name) == needle {
			return profile, true
		}
	}
	for _, profile := range scoutedOpponents {
		key := strings.ToLower(profile.Name)
		if strings.Contains(key, needle) || strings.Contains(needle, key) {
			return profile, true
		}
	}
	return genericProfile(name), false
}

// HomeRoster returns a copy of the home roster with headshots filled in
func HomeRoster() []models.Player {
	roster := make([]models.Player, len(homeRoster))
	for i, player := range homeRoster {
		player.ImageURL = headshotURL(player.ID)
		roster[i] = player
	}
	return roster
}

func (p *MatchupProvider) enrichRoster(entries []rosterEntry) []models.Player {
	roster := make([]models.Player, 0, len(entries))
	for _, entry := range entries {
		season := p.stats.SeasonStats(1)
		if entry.Season != nil {
			season = overlayStats(season, *entry.Season)
		}
		roster = append(roster, models.Player{
			ID:              entry.ID,
			Name:            entry.Name,
			Position:        entry.Position,
			Number:          entry.Number,
			ImageURL:        headshotURL(entry.ID),
			SeasonStats:     season,
			VsOpponentStats: p.stats.SeasonStats(1.1),
			Advanced:        p.stats.Advanced(),
			Analysis:        opponentAnalysis,
		})
	}
	return roster
}

// overlayStats keeps every scouted number and generates the rest. Scoring, rebounding and
// playmaking always come from the scouting line, with floors when it left them blank.
func overlayStats(generated, scouted models.StatSet) models.StatSet {
	out := generated
	out.PPG = round1(orDefault(scouted.PPG, 10))
	out.RPG = round1(orDefault(scouted.RPG, 3))
	out.APG = round1(orDefault(scouted.APG, 2))

	overlay := []struct {
		dst *float64
		src float64
	}{
		{&out.SPG, scouted.SPG},
		{&out.BPG, scouted.BPG},
		{&out.OReb, scouted.OReb},
		{&out.DReb, scouted.DReb},
		{&out.FGPct, scouted.FGPct},
		{&out.ThreePtPct, scouted.ThreePtPct},
		{&out.FTPct, scouted.FTPct},
		{&out.PlusMinus, scouted.PlusMinus},
		{&out.Turnovers, scouted.Turnovers},
	}
	for _, field := range overlay {
		if field.src != 0 {
			*field.dst = field.src
		}
	}
	return out
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// presetDefinitions builds the opponent's named rotations from roster order
func presetDefinitions(roster []models.Player) []models.LineupPreset {
	return []models.LineupPreset{
		{
			Name:        "Starters",
			Description: "Main rotation",
			PlayerIDs:   idsAt(roster, 0, 1, 2, 3, 4),
			NetRating:   4.5, ORtg: 115.2, DRtg: 110.7,
		},
		{
			Name:        "Second Unit",
			Description: "Bench mob",
			PlayerIDs:   idsAt(roster, 5, 6, 7, 8, 9),
			NetRating:   -1.2, ORtg: 105.0, DRtg: 106.2,
		},
		{
			Name:        "Speed Unit",
			Description: "Small ball lineup",
			PlayerIDs:   idsAt(roster, 0, 4, 6, 7, 8),
			NetRating:   2.1, ORtg: 118.0, DRtg: 115.9,
		},
	}
}

// idsAt returns the ids at the given roster indices, skipping any the roster is too short for
func idsAt(roster []models.Player, indices ...int) []string {
	ids := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < len(roster) {
			ids = append(ids, roster[i].ID)
		}
	}
	return ids
}

func (p *MatchupProvider) summary(opponent string, roster []models.Player, tendencies []string) string {
	star := "their primary scorer"
	if len(roster) > 0 {
		star = roster[0].Name
	}
	tendency := "balanced attack"
	if len(tendencies) > 0 {
		tendency = strings.ToLower(tendencies[0])
	}
	return fmt.Sprintf(
		"The %s face the %s in a crucial February matchup. With the trade deadline looming, distractions are high, "+
			"but the %s must focus on containing %s. The %s have been relying on their %s, requiring disciplined "+
			"rotation from the %s' defense.",
		p.homeTeam, opponent, p.homeTeam, star, opponent, tendency, p.homeTeam,
	)
}

func scoutingReport(roster []models.Player, tendencies []string) models.ScoutingReport {
	name := func(i int) string {
		if i < len(roster) {
			return roster[i].Name
		}
		if len(roster) > 0 {
			return roster[0].Name
		}
		return "their best player"
	}

	return models.ScoutingReport{
		OffensiveTendencies: append([]string(nil), tendencies...),
		DefensiveSchemes:    []string{"Drop Coverage", "Switch 1-4", "Zone on BLOBs"},
		XFactor:             name(2),
		KeysToVictory: []string{
			fmt.Sprintf("Limit %s in transition", name(0)),
			"Win the rebounding battle",
			"Generate 15+ deflections",
			fmt.Sprintf("Force %s to drive left", name(1)),
		},
	}
}

func (p *MatchupProvider) intel(opponent string) models.Intel {
	return models.Intel{
		Injuries: []models.Injury{
			{Player: "Jakob Poeltl", Status: models.InjuryOut, Details: "Back injury, no return timeline", Team: models.TeamHome},
			{Player: "RJ Barrett", Status: models.InjuryQuestionable, Details: "Left ankle sprain, day-to-day", Team: models.TeamHome},
			{Player: "Scottie Barnes", Status: models.InjuryActive, Details: "Available", Team: models.TeamHome},
			{Player: "Chris Paul", Status: models.InjuryActive, Details: "Acquired via trade, available", Team: models.TeamHome},
			{Player: "Trayce Jackson-Davis", Status: models.InjuryActive, Details: "Acquired via trade, available", Team: models.TeamHome},
		},
		SocialChatter: []models.NewsItem{
			{Headline: "Raptors acquire Chris Paul in blockbuster 3-team deadline deal", Source: "Woj (ESPN)", Sentiment: models.SentimentPositive},
			{Headline: "Trayce Jackson-Davis traded from Warriors to Raptors for 2nd-round pick", Source: "Shams (Athletic)", Sentiment: models.SentimentNeutral},
			{Headline: "Ochai Agbaji headed to Nets as part of CP3 deal", Source: "Woj (ESPN)", Sentiment: models.SentimentNeutral},
			{Headline: "Jakob Poeltl's back injury lingers as Raptors add depth at center", Source: "Raptors Republic", Sentiment: models.SentimentNeutral},
			{
				Headline:  fmt.Sprintf("%s heading to Scotiabank Arena as %s adjust post-deadline roster", opponent, p.homeTeam),
				Source:    "Team Reddit",
				Sentiment: models.SentimentPositive,
			},
		},
	}
}

func clonePlays(plays []models.Play) []models.Play {
	out := make([]models.Play, len(plays))
	for i, play := range plays {
		play.Execution = append([]string(nil), play.Execution...)
		out[i] = play
	}
	return out
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// headshotURL returns the league CDN headshot for numeric player ids
func headshotURL(id string) string {
	if id == "" || strings.IndexFunc(id, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return ""
	}
	return "https://cdn.nba.com/headshots/nba/latest/1040x760/" + id + ".png"
}
