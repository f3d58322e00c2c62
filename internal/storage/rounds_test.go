package storage

import (
	"testing"

	"github.com/vovakirdan/bubble-arcade/internal/core"
)

func roundOf(gameID, levelID string, won bool, score, shots int) core.RoundSummary {
	return core.RoundSummary{GameID: gameID, LevelID: levelID, Won: won, Score: score, ShotsUsed: shots}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	saved := []core.RoundSummary{
		roundOf("bubbles", "01_warmup", false, 4, 19),
		roundOf("bubbles", "01_warmup", true, 22, 12),
		roundOf("bubbles", "02_stripes", true, 30, 15),
		roundOf("bubbles_random", "03_diamond", true, 9, 3),
	}
	for _, r := range saved {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds("bubbles", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds with limit, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].LevelID != "02_stripes" || !rounds[0].Won || rounds[0].Score != 30 || rounds[0].ShotsUsed != 15 {
		t.Errorf("rounds[0] = %+v", rounds[0])
	}
	if rounds[1].LevelID != "01_warmup" || !rounds[1].Won {
		t.Errorf("rounds[1] = %+v", rounds[1])
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.RoundSummary{
		roundOf("bubbles", "02_stripes", false, 8, 20),
		roundOf("bubbles", "01_warmup", false, 4, 19),
		roundOf("bubbles", "01_warmup", true, 22, 14),
		roundOf("bubbles", "01_warmup", true, 18, 11),
		roundOf("bubbles_random", "01_warmup", true, 50, 2),
	} {
		store.SaveRound(r)
	}

	stats, err := store.LevelStats("bubbles")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}

	expected := []LevelStats{
		{LevelID: "01_warmup", Played: 3, Won: 2, BestScore: 22, FewestShots: 11},
		{LevelID: "02_stripes", Played: 1, Won: 0, BestScore: 8, FewestShots: 0},
	}
	if len(stats) != len(expected) {
		t.Fatalf("LevelStats() returned %d levels, expected %d", len(stats), len(expected))
	}
	for i, want := range expected {
		if stats[i] != want {
			t.Errorf("stats[%d] = %+v, expected %+v", i, stats[i], want)
		}
	}
}

func TestStoreLevelStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LevelStats("bubbles")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats, got %v", stats)
	}
}
