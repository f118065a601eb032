package models

type PlayType string

const (
	PlayTypeOffense PlayType = "offense"
	PlayTypeDefense PlayType = "defense"
)

// DiagramType tells the play renderer which court template to draw
type DiagramType string

const (
	DiagramPickAndRoll DiagramType = "pnr"
	DiagramIso         DiagramType = "iso"
	DiagramPost        DiagramType = "post"
	DiagramHorns       DiagramType = "horns"
	DiagramZone        DiagramType = "zone"
	DiagramTransition  DiagramType = "transition"
)

type Play struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        PlayType    `json:"type"`
	Description string      `json:"description"`
	Execution   []string    `json:"execution"`
	Counter     string      `json:"counter"`
	DiagramType DiagramType `json:"diagramType"`
}

// LineupPreset is a named opponent rotation with explicit membership
type LineupPreset struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PlayerIDs   []string `json:"playerIds"`
	NetRating   float64  `json:"netRating"`
	ORtg        float64  `json:"ortg"`
	DRtg        float64  `json:"drtg"`
}

type InjuryStatus string

const (
	InjuryOut          InjuryStatus = "Out"
	InjuryQuestionable InjuryStatus = "Questionable"
	InjuryDoubtful     InjuryStatus = "Doubtful"
	InjuryProbable     InjuryStatus = "Probable"
	InjuryActive       InjuryStatus = "Active"
)

type Injury struct {
	Player  string       `json:"player"`
	Status  InjuryStatus `json:"status"`
	Details string       `json:"details"`
	Team    Team         `json:"team"`
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type NewsItem struct {
	Headline  string    `json:"headline"`
	Source    string    `json:"source"`
	Sentiment Sentiment `json:"sentiment"`
}

type ScoutingReport struct {
	OffensiveTendencies []string `json:"offensiveTendencies"`
	DefensiveSchemes    []string `json:"defensiveSchemes"`
	XFactor             string   `json:"xFactor"`
	KeysToVictory       []string `json:"keysToVictory"`
}

type Intel struct {
	Injuries      []Injury   `json:"injuries"`
	SocialChatter []NewsItem `json:"socialChatter"`
}

// MatchupAnalysis is built fresh for every game selection and never cached across games
type MatchupAnalysis struct {
	Opponent       string         `json:"opponent"`
	Summary        string         `json:"summary"`
	WinProbability int            `json:"winProbability"`
	HomeRoster     []Player       `json:"homeRoster"`
	OpponentRoster []Player       `json:"opponentRoster"`
	LineupPresets  []LineupPreset `json:"lineupPresets"`
	Playbook       []Play         `json:"playbook"`
	ScoutingReport ScoutingReport `json:"scoutingReport"`
	Intel          Intel          `json:"intel"`
}

// Roster returns the full roster for one side of the matchup
func (m *MatchupAnalysis) Roster(team Team) []Player {
	if m == nil {
		return nil
	}
	if team == TeamOpponent {
		return m.OpponentRoster
	}
	return m.HomeRoster
}
