package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitPartition(t *testing.T) {
	tests := []struct {
		name        string
		rosterSize  int
		activeCount int
		benchCount  int
	}{
		{name: "full roster", rosterSize: 15, activeCount: 5, benchCount: 10},
		{name: "exactly five", rosterSize: 5, activeCount: 5, benchCount: 0},
		{name: "short roster", rosterSize: 3, activeCount: 3, benchCount: 0},
		{name: "empty roster", rosterSize: 0, activeCount: 0, benchCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := fifteenManRoster()[:tt.rosterSize]

			p := InitPartition(roster)

			assert.Len(t, p.Active, tt.activeCount)
			assert.Len(t, p.Bench, tt.benchCount)
			assert.Equal(t, ids(roster[:tt.activeCount]), ids(p.Active), "starters keep roster order")
			assert.Equal(t, ids(roster[tt.activeCount:]), ids(p.Bench), "bench keeps roster order")
			require.NoError(t, p.Validate(roster))
		})
	}
}

func TestInitPartition_DoesNotAliasRoster(t *testing.T) {
	roster := fifteenManRoster()
	p := InitPartition(roster)

	p.Active[0].Name = "changed"

	assert.Equal(t, "Player 1", roster[0].Name)
}

func TestPartitionSwap(t *testing.T) {
	roster := fifteenManRoster()
	p := InitPartition(roster)

	swapped, ok := p.Swap(2, "p8")
	require.True(t, ok)

	assert.Equal(t, []string{"p1", "p2", "p8", "p4", "p5"}, ids(swapped.Active))
	assert.Equal(t, []string{"p6", "p7", "p9", "p10", "p11", "p12", "p13", "p14", "p15", "p3"}, ids(swapped.Bench))
	require.NoError(t, swapped.Validate(roster))

	// original untouched
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(p.Active))
	assert.Len(t, p.Bench, 10)
}

func TestPartitionSwap_Invalid(t *testing.T) {
	p := InitPartition(fifteenManRoster())

	tests := []struct {
		name     string
		index    int
		playerID string
	}{
		{name: "negative index", index: -1, playerID: "p6"},
		{name: "index past the court", index: 5, playerID: "p6"},
		{name: "player already on court", index: 0, playerID: "p2"},
		{name: "unknown player", index: 0, playerID: "nobody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Swap(tt.index, tt.playerID)
			assert.False(t, ok)
			assert.Equal(t, p, got)
		})
	}
}

func TestPartitionSwap_SwapBackRestoresPartition(t *testing.T) {
	roster := fifteenManRoster()
	original := InitPartition(roster)

	// p15 is the last bench player, so appending the displaced starter restores the exact order
	first, ok := original.Swap(1, "p15")
	require.True(t, ok)
	back, ok := first.Swap(1, "p2")
	require.True(t, ok)

	assert.Equal(t, ids(original.Active), ids(back.Active))
	assert.Equal(t, ids(original.Bench), ids(back.Bench))

	// from the middle of the bench the same members come back, with the player re-queued last
	first, ok = original.Swap(1, "p8")
	require.True(t, ok)
	back, ok = first.Swap(1, "p2")
	require.True(t, ok)

	assert.Equal(t, ids(original.Active), ids(back.Active))
	assert.ElementsMatch(t, ids(original.Bench), ids(back.Bench))
	assert.Equal(t, "p8", back.Bench[len(back.Bench)-1].ID)
}

func TestPartitionFrom(t *testing.T) {
	roster := fifteenManRoster()
	active := []string{"p9", "p3", "p14", "p1", "p7"}
	lookup := map[string]int{}
	for i, p := range roster {
		lookup[p.ID] = i
	}
	players := roster[:0:0]
	for _, id := range active {
		players = append(players, roster[lookup[id]])
	}

	p := PartitionFrom(roster, players)

	assert.Equal(t, active, ids(p.Active))
	assert.Equal(t, []string{"p2", "p4", "p5", "p6", "p8", "p10", "p11", "p12", "p13", "p15"}, ids(p.Bench))
	require.NoError(t, p.Validate(roster))
}

func TestValidate_DetectsBrokenPartitions(t *testing.T) {
	roster := fifteenManRoster()
	good := InitPartition(roster)

	dup := Partition{Active: clonePlayers(good.Active), Bench: append(clonePlayers(good.Bench), good.Active[0])}
	assert.Error(t, dup.Validate(roster))

	short := Partition{Active: clonePlayers(good.Active[:4]), Bench: append(clonePlayers(good.Bench), good.Active[4])}
	assert.Error(t, short.Validate(roster))

	missing := Partition{Active: clonePlayers(good.Active), Bench: clonePlayers(good.Bench[1:])}
	assert.Error(t, missing.Validate(roster))

	stranger := Partition{Active: clonePlayers(good.Active), Bench: append(clonePlayers(good.Bench), makeRoster("C")[0])}
	stranger.Bench[len(stranger.Bench)-1].ID = "ghost"
	assert.Error(t, stranger.Validate(roster))
}
