package lineup

import (
	"fmt"

	"github.com/stitts-dev/courtside-intel/internal/models"
)

// ActiveSize is the number of players on court
const ActiveSize = 5

// Partition splits a roster into the players on court and the bench. Every roster player is in
// exactly one of the two sequences.
type Partition struct {
	Active []models.Player `json:"active"`
	Bench  []models.Player `json:"bench"`
}

// InitPartition puts the first five roster players on court in roster order and benches the rest.
// The roster is never re-sorted.
func InitPartition(roster []models.Player) Partition {
	n := ActiveSize
	if len(roster) < n {
		n = len(roster)
	}
	return Partition{
		Active: clonePlayers(roster[:n]),
		Bench:  clonePlayers(roster[n:]),
	}
}

// PartitionFrom builds a partition with the given active players; the bench is every other roster
// player in roster order.
func PartitionFrom(roster []models.Player, active []models.Player) Partition {
	onCourt := idSet(active)
	bench := make([]models.Player, 0, len(roster))
	for _, p := range roster {
		if !onCourt[p.ID] {
			bench = append(bench, p)
		}
	}
	return Partition{
		Active: clonePlayers(active),
		Bench:  bench,
	}
}

// Swap moves the bench player into active[index] and appends the displaced player to the end of
// the bench. It reports false and leaves the partition untouched when the index or player is not
// valid.
func (p Partition) Swap(index int, benchPlayerID string) (Partition, bool) {
	if index < 0 || index >= len(p.Active) {
		return p, false
	}

	benchIdx := -1
	for i, b := range p.Bench {
		if b.ID == benchPlayerID {
			benchIdx = i
			break
		}
	}
	if benchIdx < 0 {
		return p, false
	}

	incoming := p.Bench[benchIdx]
	outgoing := p.Active[index]

	active := clonePlayers(p.Active)
	active[index] = incoming

	bench := make([]models.Player, 0, len(p.Bench))
	bench = append(bench, p.Bench[:benchIdx]...)
	bench = append(bench, p.Bench[benchIdx+1:]...)
	bench = append(bench, outgoing)

	return Partition{Active: active, Bench: bench}, true
}

// Validate checks the partition against its roster: same members, no duplicates, and a full
// court whenever the roster allows one.
func (p Partition) Validate(roster []models.Player) error {
	want := ActiveSize
	if len(roster) < want {
		want = len(roster)
	}
	if len(p.Active) != want {
		return fmt.Errorf("active lineup has %d players, want %d", len(p.Active), want)
	}

	inRoster := idSet(roster)
	seen := make(map[string]bool, len(roster))
	for _, group := range [][]models.Player{p.Active, p.Bench} {
		for _, player := range group {
			if !inRoster[player.ID] {
				return fmt.Errorf("player %s is not on the roster", player.ID)
			}
			if seen[player.ID] {
				return fmt.Errorf("player %s appears twice", player.ID)
			}
			seen[player.ID] = true
		}
	}
	if len(seen) != len(inRoster) {
		return fmt.Errorf("partition covers %d of %d roster players", len(seen), len(inRoster))
	}
	return nil
}

func idSet(players []models.Player) map[string]bool {
	set := make(map[string]bool, len(players))
	for _, p := range players {
		set[p.ID] = true
	}
	return set
}

func clonePlayers(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)
	return out
}
