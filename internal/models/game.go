package models

type GameStatus string

const (
	GameStatusUpcoming  GameStatus = "upcoming"
	GameStatusCompleted GameStatus = "completed"
	GameStatusLive      GameStatus = "live"
)

type Game struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Opponent   string     `json:"opponent"`
	OpponentID string     `json:"opponentId,omitempty"` // league team id, used for logo imagery
	IsHome     bool       `json:"isHome"`
	Time       string     `json:"time"`
	Venue      string     `json:"venue"`
	Status     GameStatus `json:"status"`
	Result     string     `json:"result,omitempty"`
}

// LogoURL returns the CDN logo for the opponent, or "" when the opponent id is unknown
func (g Game) LogoURL() string {
	if g.OpponentID == "" || g.OpponentID == "0" {
		return ""
	}
	return "https://cdn.nba.com/logos/nba/" + g.OpponentID + "/primary/L/logo.svg"
}
