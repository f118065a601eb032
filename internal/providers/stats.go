package providers

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// StatsGenerator fills in numbers the scouting data does not carry. Implementations must be safe
// for concurrent use.
type StatsGenerator interface {
	// SeasonStats returns a full per-game stat line; scoring, rebounding and playmaking are scaled
	// by multiplier.
	SeasonStats(multiplier float64) models.StatSet
	Advanced() models.AdvancedStats
	// WinProbability returns a percentage in [0, 100].
	WinProbability() int
}

// RandomStatsGenerator produces plausible stat lines from a seeded source
type RandomStatsGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomStatsGenerator creates a generator; a zero seed seeds from the clock
func NewRandomStatsGenerator(seed int64) *RandomStatsGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomStatsGenerator{rng: rand.New(rand.NewSource(seed))}
}

// between returns a value in [min, min+span) rounded to one decimal
func (g *RandomStatsGenerator) between(min, span float64) float64 {
	return round1(min + g.rng.Float64()*span)
}

func (g *RandomStatsGenerator) SeasonStats(multiplier float64) models.StatSet {
	g.mu.Lock()
	defer g.mu.Unlock()

	return models.StatSet{
		PPG:        round1((10 + g.rng.Float64()*15) * multiplier),
		RPG:        round1((2 + g.rng.Float64()*8) * multiplier),
		APG:        round1((1 + g.rng.Float64()*7) * multiplier),
		SPG:        g.between(0, 2),
		BPG:        g.between(0, 1.5),
		OReb:       1.2,
		DReb:       4.5,
		FGPct:      g.between(45, 10),
		ThreePtPct: g.between(32, 10),
		FTPct:      g.between(70, 20),
		PlusMinus:  g.between(-5, 10),
		Turnovers:  2.1,
	}
}

func (g *RandomStatsGenerator) Advanced() models.AdvancedStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return models.AdvancedStats{
		PER:  g.between(15, 10),
		TS:   g.between(55, 10),
		USG:  g.between(20, 10),
		ORtg: g.between(110, 10),
		DRtg: g.between(110, 10),
	}
}

func (g *RandomStatsGenerator) WinProbability() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return 40 + g.rng.Intn(20)
}

// FixedStatsGenerator hands out the same numbers every time
type FixedStatsGenerator struct {
	Season        models.StatSet
	AdvancedStats models.AdvancedStats
	Probability   int
}

func (g FixedStatsGenerator) SeasonStats(multiplier float64) models.StatSet {
	s := g.Season
	s.PPG = round1(s.PPG * multiplier)
	s.RPG = round1(s.RPG * multiplier)
	s.APG = round1(s.APG * multiplier)
	return s
}

func (g FixedStatsGenerator) Advanced() models.AdvancedStats {
	return g.AdvancedStats
}

func (g FixedStatsGenerator) WinProbability() int {
	return g.Probability
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
