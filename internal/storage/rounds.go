package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/bubble-arcade/internal/core"
)

// RoundEntry is one finished round.
type RoundEntry struct {
	ID        int64
	GameID    string
	LevelID   string
	Won       bool
	Score     int
	ShotsUsed int
	CreatedAt time.Time
}

// LevelStats aggregates the rounds played on one level.
type LevelStats struct {
	LevelID   string
	Played    int
	Won       int
	BestScore int
	// FewestShots is the smallest shot count of a won round, 0 if none.
	FewestShots int
}

// SaveRound records a finished round and returns the new row ID.
func (s *Store) SaveRound(r core.RoundSummary) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}
	id, err := s.insert(
		"INSERT INTO rounds (game_id, level_id, won, score, shots_used) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.LevelID, won, r.Score, r.ShotsUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// RecentRounds returns up to limit rounds of gameID, newest first.
// A non-positive limit means 10.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, won, score, shots_used, created_at FROM rounds
		 WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (RoundEntry, error) {
		var e RoundEntry
		var at any
		err := r.Scan(&e.ID, &e.GameID, &e.LevelID, &e.Won, &e.Score, &e.ShotsUsed, &at)
		e.CreatedAt = parseTime(at)
		return e, err
	})
}

// LevelStats aggregates the rounds of gameID per level, ordered by level ID.
func (s *Store) LevelStats(gameID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(won), MAX(score),
		        COALESCE(MIN(CASE WHEN won = 1 THEN shots_used END), 0)
		 FROM rounds WHERE game_id = ?
		 GROUP BY level_id ORDER BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (LevelStats, error) {
		var ls LevelStats
		err := r.Scan(&ls.LevelID, &ls.Played, &ls.Won, &ls.BestScore, &ls.FewestShots)
		return ls, err
	})
}
