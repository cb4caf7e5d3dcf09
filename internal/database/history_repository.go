package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabtrainer/pkg/models"
)

// HistoryRepository records completed drill sessions and their per-term
// outcomes for later analysis.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a repository and ensures the schema exists
func NewHistoryRepository(db *sqlx.DB) (*HistoryRepository, error) {
	r := &HistoryRepository{db: db}
	if err := r.initializeSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

// initializeSchema creates necessary tables if they don't exist
func (r *HistoryRepository) initializeSchema() error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.db.DriverName() == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS session_results (
			id ` + idColumn + `,
			total_questions INTEGER NOT NULL,
			answered INTEGER NOT NULL,
			perfect INTEGER NOT NULL,
			mistakes INTEGER NOT NULL,
			started_at TIMESTAMP NOT NULL,
			duration INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create session_results table: %v", err)
	}

	_, err = r.db.Exec(`
		CREATE TABLE IF NOT EXISTS term_results (
			id ` + idColumn + `,
			session_id INTEGER NOT NULL,
			term TEXT NOT NULL,
			mistakes INTEGER NOT NULL,
			answered BOOLEAN NOT NULL,
			FOREIGN KEY (session_id) REFERENCES session_results(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create term_results table: %v", err)
	}
	return nil
}

// RecordSession inserts a session result and its term results atomically
func (r *HistoryRepository) RecordSession(result *models.SessionResult, terms []models.TermResult) error {
	if result.StartedAt.IsZero() {
		result.StartedAt = time.Now()
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO session_results (total_questions, answered, perfect, mistakes, started_at, duration)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if r.db.DriverName() == "postgres" {
		// No LastInsertId with lib/pq
		err = tx.QueryRow(r.db.Rebind(insert+"RETURNING id"),
			result.TotalQuestions, result.Answered, result.Perfect, result.Mistakes,
			result.StartedAt, result.Duration).Scan(&result.ID)
		if err != nil {
			return fmt.Errorf("failed to create session result: %v", err)
		}
	} else {
		res, err := tx.Exec(insert,
			result.TotalQuestions, result.Answered, result.Perfect, result.Mistakes,
			result.StartedAt, result.Duration)
		if err != nil {
			return fmt.Errorf("failed to create session result: %v", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		result.ID = id
	}

	for _, term := range terms {
		_, err := tx.Exec(r.db.Rebind(`
			INSERT INTO term_results (session_id, term, mistakes, answered)
			VALUES (?, ?, ?, ?)
		`), result.ID, term.Term, term.Mistakes, term.Answered)
		if err != nil {
			return fmt.Errorf("failed to create term result: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session result: %v", err)
	}
	return nil
}

// RecentSessions returns the most recent session results, newest first
func (r *HistoryRepository) RecentSessions(limit int) ([]models.SessionResult, error) {
	var results []models.SessionResult
	err := r.db.Select(&results, r.db.Rebind(`
		SELECT id, total_questions, answered, perfect, mistakes, started_at, duration, created_at
		FROM session_results ORDER BY started_at DESC LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get session results: %v", err)
	}
	return results, nil
}

// TermHistory returns all recorded outcomes for a term, newest first
func (r *HistoryRepository) TermHistory(term string) ([]models.TermResult, error) {
	var results []models.TermResult
	err := r.db.Select(&results, r.db.Rebind(`
		SELECT id, session_id, term, mistakes, answered
		FROM term_results WHERE term = ? ORDER BY id DESC
	`), term)
	if err != nil {
		return nil, fmt.Errorf("failed to get term results: %v", err)
	}
	return results, nil
}
