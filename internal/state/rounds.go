package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShayCichocki/hilo/pkg/models"
)

// RecordRound inserts a finished round into the history.
func (db *DB) RecordRound(r *models.RoundRecord) error {
	if !r.Outcome.Valid() {
		return fmt.Errorf("record round: invalid outcome %q", r.Outcome)
	}

	_, err := db.Exec(`
		INSERT INTO rounds (id, target, attempts, invalid_inputs, range_min, range_max,
			started_at, finished_at, duration_ms, outcome)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Target, r.Attempts, r.InvalidInputs, r.RangeMin, r.RangeMax,
		formatTime(r.StartedAt), formatTime(r.FinishedAt), r.Duration.Milliseconds(), string(r.Outcome))
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	return nil
}

// GetRound retrieves a round by ID. Returns nil if no round exists.
func (db *DB) GetRound(id string) (*models.RoundRecord, error) {
	row := db.QueryRow(`
		SELECT id, target, attempts, invalid_inputs, range_min, range_max,
			started_at, finished_at, duration_ms, outcome
		FROM rounds WHERE id = ?
	`, id)

	r, err := scanRound(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get round: %w", err)
	}
	return r, nil
}

// ListRounds lists the most recent rounds, newest first.
// A limit of 0 or less means no limit.
func (db *DB) ListRounds(limit int) ([]models.RoundRecord, error) {
	query := `
		SELECT id, target, attempts, invalid_inputs, range_min, range_max,
			started_at, finished_at, duration_ms, outcome
		FROM rounds ORDER BY started_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	var rounds []models.RoundRecord
	for rows.Next() {
		r, err := scanRound(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rounds = append(rounds, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}

	return rounds, nil
}

// Stats aggregates the recorded rounds.
type Stats struct {
	TotalRounds   int
	Wins          int
	Abandoned     int
	BestAttempts  int
	AvgAttempts   float64
	CurrentStreak int
}

// Stats computes aggregate statistics over all recorded rounds.
// BestAttempts and AvgAttempts cover won rounds only; CurrentStreak is
// the run of consecutive wins ending at the most recent round.
func (db *DB) Stats() (*Stats, error) {
	s := &Stats{}

	row := db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'abandoned' THEN 1 ELSE 0 END), 0),
			COALESCE(MIN(CASE WHEN outcome = 'won' THEN attempts END), 0),
			COALESCE(AVG(CASE WHEN outcome = 'won' THEN attempts END), 0)
		FROM rounds
	`)
	if err := row.Scan(&s.TotalRounds, &s.Wins, &s.Abandoned, &s.BestAttempts, &s.AvgAttempts); err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}

	// Walk recent rounds newest-first until the first non-win.
	rows, err := db.Query(`SELECT outcome FROM rounds ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("streak query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outcome string
		if err := rows.Scan(&outcome); err != nil {
			return nil, fmt.Errorf("scan streak: %w", err)
		}
		if models.Outcome(outcome) != models.OutcomeWon {
			break
		}
		s.CurrentStreak++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("streak query: %w", err)
	}

	return s, nil
}

// PurgeOldRounds deletes rounds that started before the cutoff.
// Returns the number of rounds deleted.
func (db *DB) PurgeOldRounds(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result, err := db.Exec(`DELETE FROM rounds WHERE started_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("purge old rounds: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}

	return count, nil
}

// CountOldRounds counts rounds that started before the cutoff without
// deleting them. Used by cleanup --dry-run.
func (db *DB) CountOldRounds(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	var count int64
	row := db.QueryRow(`SELECT COUNT(*) FROM rounds WHERE started_at < ?`, formatTime(cutoff))
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count old rounds: %w", err)
	}

	return count, nil
}

// scanRound reads one rounds row via the given scan function.
func scanRound(scan func(dest ...any) error) (*models.RoundRecord, error) {
	var r models.RoundRecord
	var startedAt, finishedAt, outcome string
	var durationMS int64

	err := scan(&r.ID, &r.Target, &r.Attempts, &r.InvalidInputs, &r.RangeMin, &r.RangeMax,
		&startedAt, &finishedAt, &durationMS, &outcome)
	if err != nil {
		return nil, err
	}

	r.StartedAt, _ = parseTime(startedAt)
	r.FinishedAt, _ = parseTime(finishedAt)
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.Outcome = models.Outcome(outcome)
	return &r, nil
}
