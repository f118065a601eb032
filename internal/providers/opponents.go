package providers

import "github.com/stitts-dev/courtside-intel/internal/models"

// rosterEntry is an opponent player as scouted. Season is nil when no numbers were collected;
// zero fields inside a partial Season are generated.
type rosterEntry struct {
	ID       string
	Name     string
	Position string
	Number   string
	Season   *models.StatSet
}

type opponentProfile struct {
	Name       string
	TeamID     string
	Roster     []rosterEntry
	Tendencies []string
	Playbook   []models.Play
}

// scoutedOpponents are looked up in order, so partial-name matches are deterministic
var scoutedOpponents = []opponentProfile{
	{
		Name:   "Timberwolves",
		TeamID: "1610612750",
		Roster: []rosterEntry{
			{ID: "1630162", Name: "Anthony Edwards", Position: "G", Number: "5", Season: &models.StatSet{PPG: 28.1, RPG: 5.8, APG: 5.2}},
			{ID: "203944", Name: "Julius Randle", Position: "F", Number: "30", Season: &models.StatSet{PPG: 21.6, RPG: 9.4, APG: 4.8}},
			{ID: "203497", Name: "Rudy Gobert", Position: "C", Number: "27", Season: &models.StatSet{PPG: 10.9, RPG: 12.5, APG: 1.2, BPG: 2.1}},
			{ID: "1630183", Name: "Jaden McDaniels", Position: "F", Number: "3", Season: &models.StatSet{PPG: 10.2, RPG: 3.5, APG: 1.4}},
			{ID: "201144", Name: "Mike Conley", Position: "G", Number: "10", Season: &models.StatSet{PPG: 8.5, RPG: 2.8, APG: 6.2}},
			{ID: "1629675", Name: "Naz Reid", Position: "C-F", Number: "11", Season: &models.StatSet{PPG: 13.8, RPG: 5.5, APG: 1.5}},
			{ID: "1628978", Name: "Donte DiVincenzo", Position: "G", Number: "0", Season: &models.StatSet{PPG: 9.8, RPG: 3.4, APG: 3.1}},
			{ID: "1629638", Name: "Nickeil Alexander-Walker", Position: "G", Number: "9", Season: &models.StatSet{PPG: 9.2, RPG: 2.2, APG: 2.5}},
			{ID: "1642265", Name: "Rob Dillingham", Position: "G", Number: "4", Season: &models.StatSet{PPG: 6.2, RPG: 1.2, APG: 2.8}},
			{ID: "1630593", Name: "Joe Ingles", Position: "F", Number: "7", Season: &models.StatSet{PPG: 3.2, RPG: 1.5, APG: 2.1}},
			{ID: "1631168", Name: "Josh Minott", Position: "F", Number: "8", Season: &models.StatSet{PPG: 4.5, RPG: 2.1, APG: 0.8}},
			{ID: "1630233", Name: "Luka Garza", Position: "C", Number: "55", Season: &models.StatSet{PPG: 3.8, RPG: 2.0, APG: 0.2}},
			{ID: "1641738", Name: "Terrence Shannon Jr.", Position: "G", Number: "00", Season: &models.StatSet{PPG: 5.1, RPG: 1.8, APG: 0.9}},
			{ID: "1631169", Name: "Leonard Miller", Position: "F", Number: "33", Season: &models.StatSet{PPG: 3.5, RPG: 2.5, APG: 0.5}},
			{ID: "1628416", Name: "PJ Dozier", Position: "G-F", Number: "35", Season: &models.StatSet{PPG: 4.0, RPG: 2.0, APG: 1.0}},
			{ID: "1628966", Name: "Keita Bates-Diop", Position: "F", Number: "31", Season: &models.StatSet{PPG: 2.5, RPG: 1.5, APG: 0.5}},
		},
		Tendencies: []string{"Elite Rim Protection", "Explosive Scoring", "Physical Defense"},
		Playbook: []models.Play{
			{
				ID: "p1", Name: "Ant Iso", Type: models.PlayTypeOffense, DiagramType: models.DiagramIso,
				Description: "Edwards isolation from top.",
				Execution:   []string{"Clear out side", "Edwards attacks downhill", "Kick out if help comes"},
				Counter:     "Gap help, wall up at rim.",
			},
			{
				ID: "p2", Name: "Double Drag", Type: models.PlayTypeOffense, DiagramType: models.DiagramPickAndRoll,
				Description: "Gobert/Randle screen for Ant.",
				Execution:   []string{"Conley/Ant ball handler", "Two bigs set high screens", "One rolls, one pops"},
				Counter:     "Navigate screens, drop big.",
			},
			{
				ID: "p3", Name: "Horns Twist", Type: models.PlayTypeOffense, DiagramType: models.DiagramHorns,
				Description: "Complex screen action for shooters.",
				Execution:   []string{"Bigs at elbows", "First screen for ball", "Second screen for first big"},
				Counter:     "Switch the twist action.",
			},
			{
				ID: "p4", Name: "Spain PnR", Type: models.PlayTypeOffense, DiagramType: models.DiagramPickAndRoll,
				Description: "Stack pick and roll.",
				Execution:   []string{"High ball screen", "Shooter back screens the roller's man", "Shooter pops"},
				Counter:     "Communication is key, switch low.",
			},
			{
				ID: "p5", Name: "Exit Screen", Type: models.PlayTypeOffense, DiagramType: models.DiagramZone,
				Description: "Corner shooter action.",
				Execution:   []string{"Drive baseline", "Screen for corner man", "Drift to wing"},
				Counter:     "Stay attached to corner.",
			},
		},
	},
	{
		Name:   "Pelicans",
		TeamID: "1610612740",
		Roster: []rosterEntry{
			{ID: "1629627", Name: "Zion Williamson", Position: "F", Number: "1"},
			{ID: "1627742", Name: "Brandon Ingram", Position: "F", Number: "14"},
			{ID: "203468", Name: "CJ McCollum", Position: "G", Number: "3"},
			{ID: "1627749", Name: "Dejounte Murray", Position: "G", Number: "5"},
			{ID: "1630529", Name: "Herbert Jones", Position: "F", Number: "5"},
			{ID: "1630530", Name: "Trey Murphy III", Position: "F", Number: "25"},
			{ID: "1630221", Name: "Jose Alvarado", Position: "G", Number: "15"},
			{ID: "1631103", Name: "Yves Missi", Position: "C", Number: "21"},
		},
		Tendencies: []string{"Paint Dominance", "Length on Defense", "Mid-Range Scoring"},
		Playbook: []models.Play{
			{
				ID: "p1", Name: "Zion Point", Type: models.PlayTypeOffense, DiagramType: models.DiagramIso,
				Description: "Zion initiates from top of key.",
				Execution:   []string{"Zion brings ball up", "Shooters space corners", "Zion attacks downhill"},
				Counter:     "Build a wall, force kickouts.",
			},
			{
				ID: "p2", Name: "Elbow Split", Type: models.PlayTypeOffense, DiagramType: models.DiagramHorns,
				Description: "Ingram post action.",
				Execution:   []string{"Entry to elbow", "Guard cuts off", "Hand off option"},
				Counter:     "Deny the entry pass.",
			},
		},
	},
	{
		Name:   "Celtics",
		TeamID: "1610612738",
		Roster: []rosterEntry{
			{ID: "1628369", Name: "Jayson Tatum", Position: "F", Number: "0"},
			{ID: "1627759", Name: "Jaylen Brown", Position: "G-F", Number: "7"},
			{ID: "204001", Name: "Kristaps Porzingis", Position: "C-F", Number: "8"},
			{ID: "1628401", Name: "Derrick White", Position: "G", Number: "9"},
			{ID: "201950", Name: "Jrue Holiday", Position: "G", Number: "4"},
			{ID: "201143", Name: "Al Horford", Position: "C-F", Number: "42"},
			{ID: "1630174", Name: "Payton Pritchard", Position: "G", Number: "11"},
			{ID: "1628382", Name: "Sam Hauser", Position: "F", Number: "30"},
			{ID: "player1", Name: "Star Point Guard", Position: "G", Number: "1"},
			{ID: "player2", Name: "Shooting Guard", Position: "G", Number: "2"},
			{ID: "player3", Name: "Small Forward", Position: "F", Number: "3"},
			{ID: "player4", Name: "Power Forward", Position: "F", Number: "4"},
			{ID: "player5", Name: "Center", Position: "C", Number: "5"},
			{ID: "player6", Name: "Sixth Man", Position: "G", Number: "6"},
			{ID: "player7", Name: "Wing Defender", Position: "F", Number: "7"},
			{ID: "player8", Name: "Backup Big", Position: "C", Number: "8"},
		},
		Tendencies: []string{"High Volume 3PT", "Switch Everything Defense", "Iso-Heavy Stars"},
		Playbook: []models.Play{
			{
				ID: "p1", Name: "5-Out Spacing", Type: models.PlayTypeOffense, DiagramType: models.DiagramIso,
				Description: "All 5 players on perimeter.",
				Execution:   []string{"Tatum isolation top of key", "Porzingis lifts to corner", "Corners stay wide"},
				Counter:     "Stay home on shooters, force tough 2s.",
			},
			{
				ID: "p2", Name: "Double Drag Screen", Type: models.PlayTypeOffense, DiagramType: models.DiagramPickAndRoll,
				Description: "Two high screens for ball handler.",
				Execution:   []string{"Holiday brings ball up", "Horford and Tatum set screens", "First screener rolls, second pops"},
				Counter:     "Ice the first screen, switch the second.",
			},
			{
				ID: "p3", Name: "Ghost Screen", Type: models.PlayTypeOffense, DiagramType: models.DiagramPickAndRoll,
				Description: "Fake screen to pop.",
				Execution:   []string{"Guard sprints to set screen", "Slips before contact", "Flares to 3pt line"},
				Counter:     "Switch communication.",
			},
		},
	},
}

var genericRoster = []rosterEntry{
	{ID: "player1", Name: "Star Point Guard", Position: "G", Number: "1"},
	{ID: "player2", Name: "Shooting Guard", Position: "G", Number: "2"},
	{ID: "player3", Name: "Small Forward", Position: "F", Number: "3"},
	{ID: "player4", Name: "Power Forward", Position: "F", Number: "4"},
	{ID: "player5", Name: "Center", Position: "C", Number: "5"},
	{ID: "player6", Name: "Sixth Man", Position: "G", Number: "6"},
	{ID: "player7", Name: "Wing Defender", Position: "F", Number: "7"},
	{ID: "player8", Name: "Backup Big", Position: "C", Number: "8"},
}

var genericTendencies = []string{"Balanced Attack", "Man-to-Man", "Pace and Space"}

var genericPlaybook = []models.Play{
	{
		ID: "gen1", Name: "High PnR", Type: models.PlayTypeOffense, DiagramType: models.DiagramPickAndRoll,
		Description: "Standard pick and roll action.",
		Execution:   []string{"Guard calls for screen", "Big sets solid pick", "Read the defense"},
		Counter:     "Standard drop coverage.",
	},
	{
		ID: "gen2", Name: "Horns", Type: models.PlayTypeOffense, DiagramType: models.DiagramHorns,
		Description: "Two bigs at the elbows.",
		Execution:   []string{"Entry pass to elbow", "Corner cut", "High low action"},
		Counter:     "Crowd the elbows.",
	},
	{
		ID: "gen3", Name: "Iso", Type: models.PlayTypeOffense, DiagramType: models.DiagramIso,
		Description: "Clear out for best player.",
		Execution:   []string{"1-4 flat", "Isolation at top", "Drive and kick"},
		Counter:     "Help early.",
	},
	{
		ID: "gen4", Name: "Spain PnR", Type: models.PlayTypeOffense, DiagramType: models.DiagramPickAndRoll,
		Description: "Stack pick and roll.",
		Execution:   []string{"High ball screen", "Back screen for roller", "Pop"},
		Counter:     "Switch everything.",
	},
}

// genericProfile is used for any opponent that has not been scouted
func genericProfile(name string) opponentProfile {
	return opponentProfile{
		Name:       name,
		TeamID:     "0",
		Roster:     genericRoster,
		Tendencies: genericTendencies,
		Playbook:   genericPlaybook,
	}
}
