// Package storage provides SQLite-based persistence for game sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/askorohod/twenty48/internal/game"
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// GameEntry represents a single recorded game session.
type GameEntry struct {
	ID              int64
	Score           int
	MaxTile         int
	Moves           int
	DurationSeconds float64
	Difficulty      string
	Won             bool
	CreatedAt       time.Time
}

// HighScore holds the aggregated all-time statistics for one difficulty.
type HighScore struct {
	Difficulty           string
	GamesPlayed          int
	Wins                 int
	BestScore            int
	BestTile             int
	TotalScore           int64
	TotalMoves           int64
	TotalDurationSeconds float64
	UpdatedAt            time.Time
}

// AvgScore returns the mean score across all recorded games.
func (h HighScore) AvgScore() float64 {
	if h.GamesPlayed == 0 {
		return 0
	}
	return float64(h.TotalScore) / float64(h.GamesPlayed)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_seconds REAL NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_difficulty ON games(difficulty);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(difficulty, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			difficulty TEXT PRIMARY KEY,
			games_played INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			best_tile INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			total_moves INTEGER NOT NULL DEFAULT 0,
			total_duration_seconds REAL NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished session and folds it into the aggregate
// high score row for its difficulty. Both writes happen in one
// transaction so the tables cannot drift apart.
// Returns the ID of the inserted game row.
func (s *Store) SaveGame(rec game.Record) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO games (score, max_tile, moves, duration_seconds, difficulty, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Score, rec.MaxTile, rec.Moves, rec.DurationSeconds, rec.Difficulty, rec.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	won := 0
	if rec.Won {
		won = 1
	}
	_, err = tx.Exec(
		`INSERT INTO high_scores
		 (difficulty, games_played, wins, best_score, best_tile, total_score, total_moves, total_duration_seconds, updated_at)
		 VALUES (?, 1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(difficulty) DO UPDATE SET
			games_played = games_played + 1,
			wins = wins + excluded.wins,
			best_score = MAX(best_score, excluded.best_score),
			best_tile = MAX(best_tile, excluded.best_tile),
			total_score = total_score + excluded.total_score,
			total_moves = total_moves + excluded.total_moves,
			total_duration_seconds = total_duration_seconds + excluded.total_duration_seconds,
			updated_at = CURRENT_TIMESTAMP`,
		rec.Difficulty, won, rec.Score, rec.MaxTile, rec.Score, rec.Moves, rec.DurationSeconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update high scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}

	return id, nil
}

// SaveSession implements game.Recorder.
// This adapter lets the game end its sessions without a direct storage dependency.
func (s *Store) SaveSession(rec game.Record) error {
	_, err := s.SaveGame(rec)
	return err
}

// Ensure Store implements Recorder
var _ game.Recorder = (*Store)(nil)

// TopGames retrieves the top N sessions for the given difficulty,
// ordered by score descending.
func (s *Store) TopGames(difficulty string, limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_tile, moves, duration_seconds, difficulty, won, created_at
		 FROM games
		 WHERE difficulty = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// RecentGames retrieves the most recent sessions across all difficulties.
func (s *Store) RecentGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_tile, moves, duration_seconds, difficulty, won, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

func scanGames(rows *sql.Rows) ([]GameEntry, error) {
	var entries []GameEntry
	for rows.Next() {
		var e GameEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.MaxTile, &e.Moves, &e.DurationSeconds, &e.Difficulty, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score recorded for the given difficulty.
// Returns 0 if no games exist.
func (s *Store) BestScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT best_score FROM high_scores WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves the aggregate statistics for a specific difficulty.
// Returns nil if no games have been recorded for it.
func (s *Store) Stats(difficulty string) (*HighScore, error) {
	var hs HighScore
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT difficulty, games_played, wins, best_score, best_tile,
		        total_score, total_moves, total_duration_seconds, updated_at
		 FROM high_scores
		 WHERE difficulty = ?`,
		difficulty,
	).Scan(
		&hs.Difficulty,
		&hs.GamesPlayed,
		&hs.Wins,
		&hs.BestScore,
		&hs.BestTile,
		&hs.TotalScore,
		&hs.TotalMoves,
		&hs.TotalDurationSeconds,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	hs.UpdatedAt = parseTimestamp(updatedAt)
	return &hs, nil
}

// AllStats retrieves the aggregate statistics for every difficulty
// that has recorded games.
func (s *Store) AllStats() (map[string]*HighScore, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, games_played, wins, best_score, best_tile,
		        total_score, total_moves, total_duration_seconds, updated_at
		 FROM high_scores
		 ORDER BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*HighScore)
	for rows.Next() {
		var hs HighScore
		var updatedAt any
		if err := rows.Scan(
			&hs.Difficulty,
			&hs.GamesPlayed,
			&hs.Wins,
			&hs.BestScore,
			&hs.BestTile,
			&hs.TotalScore,
			&hs.TotalMoves,
			&hs.TotalDurationSeconds,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		hs.UpdatedAt = parseTimestamp(updatedAt)
		stats[hs.Difficulty] = &hs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearGames deletes all recorded sessions and resets the aggregates.
func (s *Store) ClearGames() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning DATETIME columns as
// either time.Time or strings.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
