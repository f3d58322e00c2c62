package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one saved score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// ScoreSummary aggregates the saved scores of a game.
type ScoreSummary struct {
	GameID     string
	Count      int
	Best       int
	Average    float64
	Total      int64
	LastPlayed time.Time // zero when nothing is saved
}

// SaveScore records score for gameID and returns the new row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	id, err := s.insert("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores, best first. Ties keep save order.
// A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (ScoreEntry, error) {
		var e ScoreEntry
		var at any
		err := r.Scan(&e.ID, &e.GameID, &e.Score, &at)
		e.CreatedAt = parseTime(at)
		return e, err
	})
}

// HighScore returns the best score of gameID, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// Summary aggregates every saved score of gameID.
func (s *Store) Summary(gameID string) (ScoreSummary, error) {
	sum := ScoreSummary{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Count, &sum.Best, &sum.Average, &sum.Total, &last)
	if err != nil {
		return sum, fmt.Errorf("storage: cannot summarize scores: %w", err)
	}
	sum.LastPlayed = parseTime(last)
	return sum, nil
}

// ClearScores deletes the scores and rounds of gameID.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, q := range []string{
		"DELETE FROM scores WHERE game_id = ?",
		"DELETE FROM rounds WHERE game_id = ?",
	} {
		if _, err := tx.Exec(q, gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
		}
	}
	return tx.Commit()
}
