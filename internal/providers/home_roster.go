package providers

import "github.com/stitts-dev/courtside-intel/internal/models"

// homeRoster is the home team's full roster, starters first. Season numbers are per game.
var homeRoster = []models.Player{
	{
		ID: "1630567", Name: "Scottie Barnes", Position: "PF", Number: "4",
		SeasonStats:     statLine(19.4, 8.4, 5.6, 1.3, 1.6, 2.4, 6.0, 50.3, 30.6, 81.3, 3.2, 2.7),
		VsOpponentStats: statLine(21.5, 9.0, 6.2, 1.5, 1.8, 2.6, 6.4, 51.0, 33.0, 83.0, 4.0, 2.5),
		Advanced:        advancedLine(21.8, 57.2, 26.5, 116.0, 108.5),
		Analysis:        "The franchise cornerstone. Elite two-way force with All-NBA upside. Anchors the defense and drives the offense as a point-forward.",
	},
	{
		ID: "1629628", Name: "RJ Barrett", Position: "SF", Number: "9",
		SeasonStats:     statLine(18.6, 5.2, 3.5, 0.8, 0.2, 1.0, 4.2, 47.9, 33.8, 70.1, 1.5, 1.6),
		VsOpponentStats: statLine(20.5, 5.8, 4.0, 1.0, 0.3, 1.1, 4.7, 50.0, 36.0, 73.0, 2.5, 1.4),
		Advanced:        advancedLine(17.5, 54.8, 24.0, 113.0, 112.5),
		Analysis:        "Aggressive downhill scorer with improved playmaking. Second scoring option who thrives in transition.",
	},
	{
		ID: "1630193", Name: "Immanuel Quickley", Position: "PG", Number: "5",
		SeasonStats:     statLine(16.9, 4.5, 6.1, 1.3, 0.1, 0.6, 3.9, 44.3, 37.9, 80.1, 2.0, 1.7),
		VsOpponentStats: statLine(18.0, 5.0, 7.0, 1.5, 0.2, 0.7, 4.3, 45.0, 39.0, 82.0, 3.0, 1.5),
		Advanced:        advancedLine(18.2, 57.5, 24.5, 115.5, 111.0),
		Analysis:        "Primary playmaker and floor general. Lethal three-point shooting off the dribble. Pushes pace relentlessly.",
	},
	{
		ID: "1627742", Name: "Brandon Ingram", Position: "SF", Number: "3",
		SeasonStats:     statLine(21.9, 5.9, 3.7, 0.8, 0.8, 0.6, 5.3, 47.0, 35.8, 83.6, 2.8, 2.6),
		VsOpponentStats: statLine(23.5, 6.2, 4.0, 0.9, 0.9, 0.7, 5.5, 48.5, 37.0, 85.0, 3.5, 2.3),
		Advanced:        advancedLine(19.5, 57.0, 27.0, 115.0, 112.0),
		Analysis:        "Leading scorer and midrange assassin. Silky smooth isolation scorer who creates his own shot at will.",
	},
	{
		ID: "1627751", Name: "Jakob Poeltl", Position: "C", Number: "19",
		SeasonStats:     statLine(9.7, 7.7, 2.1, 0.8, 0.5, 2.8, 4.9, 69.3, 0.0, 59.6, 3.5, 1.6),
		VsOpponentStats: statLine(10.5, 8.5, 2.5, 0.9, 0.8, 3.2, 5.3, 71.0, 0.0, 62.0, 4.0, 1.4),
		Advanced:        advancedLine(20.5, 65.0, 14.5, 125.0, 107.0),
		Analysis:        "Elite rim protector and screen setter. Hyper-efficient finisher at the rim with great passing vision for a center.",
	},
	{
		ID: "1630572", Name: "Sandro Mamukelashvili", Position: "C", Number: "54",
		SeasonStats:     statLine(11.3, 5.1, 2.0, 0.7, 0.6, 1.5, 3.6, 52.6, 37.4, 75.5, 1.8, 0.9),
		VsOpponentStats: statLine(12.0, 5.5, 2.2, 0.8, 0.7, 1.6, 3.9, 54.0, 39.0, 77.0, 2.5, 0.8),
		Advanced:        advancedLine(17.0, 60.5, 17.5, 118.0, 111.0),
		Analysis:        "Breakout stretch-five off the bench. Can shoot the three and create from the high post.",
	},
	{
		ID: "1642347", Name: "Jamal Shead", Position: "PG", Number: "23",
		SeasonStats:     statLine(7.0, 1.9, 5.5, 1.0, 0.1, 0.3, 1.6, 37.0, 33.0, 76.7, 0.5, 1.3),
		VsOpponentStats: statLine(7.5, 2.2, 6.0, 1.2, 0.2, 0.4, 1.8, 38.5, 34.0, 78.0, 1.0, 1.1),
		Advanced:        advancedLine(12.5, 50.0, 16.0, 107.0, 108.5),
		Analysis:        "Tenacious defensive guard. Elite perimeter defender who disrupts opposing point guards.",
	},
	{
		ID: "1642867", Name: "Collin Murray-Boyles", Position: "PF", Number: "12",
		SeasonStats:     statLine(7.7, 5.1, 2.1, 0.9, 0.8, 1.8, 3.3, 53.4, 34.1, 64.4, 0.8, 1.2),
		VsOpponentStats: statLine(8.5, 5.5, 2.3, 1.0, 0.9, 2.0, 3.5, 55.0, 36.0, 66.0, 1.5, 1.0),
		Advanced:        advancedLine(15.0, 56.5, 14.0, 114.0, 109.0),
		Analysis:        "2025 lottery pick making an immediate impact. Physical, versatile forward with high motor.",
	},
	{
		ID: "1642266", Name: "Ja'Kobe Walter", Position: "SG", Number: "14",
		SeasonStats:     statLine(6.2, 2.1, 0.9, 0.9, 0.1, 0.3, 1.8, 42.6, 34.6, 80.0, -0.5, 0.5),
		VsOpponentStats: statLine(7.0, 2.5, 1.2, 1.0, 0.2, 0.4, 2.1, 44.0, 36.0, 82.0, 0.0, 0.4),
		Advanced:        advancedLine(10.5, 54.0, 13.5, 109.0, 112.0),
		Analysis:        "Developing two-way wing with shooting upside. Improved dramatically from rookie season.",
	},
	{
		ID: "1641711", Name: "Gradey Dick", Position: "SG", Number: "1",
		SeasonStats:     statLine(6.5, 2.2, 0.7, 0.6, 0.1, 0.3, 1.9, 42.0, 31.3, 86.2, -1.5, 0.5),
		VsOpponentStats: statLine(7.0, 2.5, 1.0, 0.7, 0.1, 0.3, 2.2, 44.0, 34.0, 88.0, -0.5, 0.4),
		Advanced:        advancedLine(9.5, 53.0, 12.0, 108.0, 114.0),
		Analysis:        "Sharpshooting wing with deep range. Movement shooter who spaces the floor.",
	},
	{
		ID: "1631218", Name: "Trayce Jackson-Davis", Position: "C", Number: "32",
		SeasonStats:     statLine(4.2, 3.1, 0.5, 0.3, 0.6, 1.2, 1.9, 58.8, 0.0, 60.0, -0.5, 0.6),
		VsOpponentStats: statLine(4.5, 3.5, 0.6, 0.3, 0.7, 1.3, 2.2, 60.0, 0.0, 62.0, 0.0, 0.5),
		Advanced:        advancedLine(12.0, 58.0, 10.0, 112.0, 110.0),
		Analysis:        "Acquired from Warriors at trade deadline. Athletic rim-running big with shot-blocking upside.",
	},
	{
		ID: "1642367", Name: "Jonathan Mogbo", Position: "PF", Number: "2",
		SeasonStats:     statLine(1.4, 1.8, 0.5, 0.1, 0.2, 0.6, 1.2, 50.0, 0.0, 40.0, -1.5, 0.3),
		VsOpponentStats: statLine(1.5, 2.0, 0.6, 0.2, 0.3, 0.7, 1.3, 52.0, 0.0, 45.0, -1.0, 0.3),
		Advanced:        advancedLine(7.0, 47.0, 8.0, 98.0, 110.0),
		Analysis:        "High-motor developmental forward. Energy and hustle contributor.",
	},
	{
		ID: "1642419", Name: "Jamison Battle", Position: "SF", Number: "77",
		SeasonStats:     statLine(3.3, 1.4, 0.4, 0.1, 0.1, 0.2, 1.2, 53.6, 44.9, 66.7, 0.5, 0.4),
		VsOpponentStats: statLine(3.5, 1.5, 0.5, 0.2, 0.1, 0.2, 1.3, 55.0, 46.0, 70.0, 1.0, 0.3),
		Advanced:        advancedLine(11.0, 62.0, 9.0, 120.0, 113.0),
		Analysis:        "Sharpshooter off the bench. Elite three-point efficiency in limited minutes.",
	},
	{
		ID: "202066", Name: "Garrett Temple", Position: "SG", Number: "17",
		SeasonStats:     statLine(0.3, 0.3, 0.3, 0.2, 0.1, 0.1, 0.2, 14.3, 20.0, 50.0, -0.5, 0.2),
		VsOpponentStats: statLine(0.5, 0.5, 0.3, 0.2, 0.1, 0.1, 0.4, 15.0, 20.0, 50.0, 0.0, 0.2),
		Advanced:        advancedLine(3.0, 30.0, 5.0, 90.0, 112.0),
		Analysis:        "Veteran mentor and locker room leader. Limited game minutes.",
	},
	{
		ID: "1630639", Name: "A.J. Lawson", Position: "SG", Number: "0",
		SeasonStats:     statLine(1.5, 0.8, 0.3, 0.2, 0.1, 0.1, 0.7, 40.0, 30.0, 75.0, -1.0, 0.3),
		VsOpponentStats: statLine(1.8, 1.0, 0.4, 0.3, 0.1, 0.2, 0.8, 42.0, 32.0, 77.0, -0.5, 0.3),
		Advanced:        advancedLine(5.0, 48.0, 8.0, 95.0, 113.0),
		Analysis:        "Athletic two-way guard on a two-way contract. Versatile defender with length.",
	},
	{
		ID: "1642918", Name: "Alijah Martin", Position: "SG", Number: "55",
		SeasonStats:     statLine(2.0, 1.0, 0.5, 0.3, 0.1, 0.2, 0.8, 38.0, 28.0, 70.0, -1.5, 0.4),
		VsOpponentStats: statLine(2.2, 1.2, 0.6, 0.4, 0.1, 0.3, 0.9, 40.0, 30.0, 72.0, -1.0, 0.4),
		Advanced:        advancedLine(6.0, 46.0, 9.0, 96.0, 114.0),
		Analysis:        "2025 second-round pick. Developing wing with defensive upside. Two-way contract.",
	},
	{
		ID: "1642935", Name: "Chucky Hepburn", Position: "PG", Number: "24",
		SeasonStats:     statLine(1.0, 0.5, 0.8, 0.2, 0.0, 0.1, 0.4, 35.0, 25.0, 72.0, -2.0, 0.5),
		VsOpponentStats: statLine(1.2, 0.6, 1.0, 0.3, 0.0, 0.1, 0.5, 37.0, 27.0, 74.0, -1.5, 0.5),
		Advanced:        advancedLine(4.0, 42.0, 7.0, 92.0, 115.0),
		Analysis:        "Backup point guard on a two-way contract. Solid ball handler with developing shot.",
	},
	{
		ID: "101108", Name: "Chris Paul", Position: "PG", Number: "3",
		SeasonStats:     statLine(2.9, 1.8, 3.3, 0.6, 0.0, 0.2, 1.6, 37.5, 30.0, 75.0, -1.5, 1.0),
		VsOpponentStats: statLine(3.2, 2.0, 3.5, 0.7, 0.0, 0.2, 1.8, 39.0, 32.0, 77.0, -1.0, 0.9),
		Advanced:        advancedLine(8.5, 45.0, 14.0, 100.0, 112.0),
		Analysis:        "Acquired from Clippers at trade deadline. Future Hall of Famer providing veteran leadership and playmaking off the bench.",
	},
}

// statLine builds a StatSet in box-score order
func statLine(ppg, rpg, apg, spg, bpg, oreb, dreb, fgPct, threePtPct, ftPct, plusMinus, turnovers float64) models.StatSet {
	return models.StatSet{
		PPG: ppg, RPG: rpg, APG: apg, SPG: spg, BPG: bpg,
		OReb: oreb, DReb: dreb,
		FGPct: fgPct, ThreePtPct: threePtPct, FTPct: ftPct,
		PlusMinus: plusMinus, Turnovers: turnovers,
	}
}

func advancedLine(per, ts, usg, ortg, drtg float64) models.AdvancedStats {
	return models.AdvancedStats{PER: per, TS: ts, USG: usg, ORtg: ortg, DRtg: drtg}
}
