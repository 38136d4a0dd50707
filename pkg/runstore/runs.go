package runstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
)

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// ErrRunNotFound marks lookups for a run id (or prefix) that matches nothing.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded wordfreq invocation.
type Run struct {
	RunID         string
	CreatedAt     time.Time
	Source        string
	Language      string
	Workers       int
	TotalWords    int
	DistinctWords int
	Duration      time.Duration
	Status        string
	ErrorMessage  string
}

// RankedWord is one entry of a run's recorded top list.
type RankedWord struct {
	Rank  int
	Word  string
	Count int
}

// RecordRun inserts a run and its ranked words in a single transaction.
// Ranks are assigned from the order of top, starting at 1.
func (s *Store) RecordRun(run Run, top []wordcount.Entry) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, source, language, workers, total_words, distinct_words, duration_ms, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.Source, nullString(run.Language), run.Workers, run.TotalWords,
		run.DistinctWords, run.Duration.Milliseconds(), run.Status, nullString(run.ErrorMessage))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, entry := range top {
		_, err = tx.Exec(`
			INSERT INTO run_words (run_id, rank, word, count)
			VALUES (?, ?, ?, ?)
		`, run.RunID, i+1, entry.Word, entry.Count)
		if err != nil {
			return fmt.Errorf("failed to insert run word %q: %w", entry.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// ListRuns retrieves runs ordered by most recent first. limit <= 0 lists all.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, source, language, workers, total_words,
		       distinct_words, duration_ms, status, error_message
		FROM runs
		ORDER BY created_at DESC, run_id
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRun retrieves a run by its full id or a unique id prefix.
func (s *Store) GetRun(idOrPrefix string) (*Run, error) {
	rows, err := s.Query(`
		SELECT run_id, created_at, source, language, workers, total_words,
		       distinct_words, duration_ms, status, error_message
		FROM runs
		WHERE run_id = ? OR run_id LIKE ?
		ORDER BY created_at DESC
		LIMIT 2
	`, idOrPrefix, idOrPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to look up run: %w", err)
	}
	defer rows.Close()

	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("run %q: %w", idOrPrefix, ErrRunNotFound)
	case 1:
		return &matches[0], nil
	default:
		// An exact id also matches itself as a prefix; prefer it.
		if matches[0].RunID == idOrPrefix {
			return &matches[0], nil
		}
		if matches[1].RunID == idOrPrefix {
			return &matches[1], nil
		}
		return nil, fmt.Errorf("run id prefix %q is ambiguous", idOrPrefix)
	}
}

// GetRunWords retrieves the recorded top list of a run, ordered by rank.
// limit <= 0 returns the full recorded list.
func (s *Store) GetRunWords(runID string, limit int) ([]RankedWord, error) {
	query := `
		SELECT rank, word, count
		FROM run_words
		WHERE run_id = ?
		ORDER BY rank
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run words: %w", err)
	}
	defer rows.Close()

	var words []RankedWord
	for rows.Next() {
		var w RankedWord
		if err := rows.Scan(&w.Rank, &w.Word, &w.Count); err != nil {
			return nil, fmt.Errorf("failed to scan run word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var language, errorMessage sql.NullString
	var durationMS int64

	err := rows.Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.Source,
		&language,
		&run.Workers,
		&run.TotalWords,
		&run.DistinctWords,
		&durationMS,
		&run.Status,
		&errorMessage,
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}

	run.Language = language.String
	run.ErrorMessage = errorMessage.String
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return run, nil
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
