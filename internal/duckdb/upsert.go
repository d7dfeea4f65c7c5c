package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carquiz/internal/session"
)

// UpsertSession inserts a session row keyed by the fingerprint of its
// results payload. Re-ingesting the same results is a no-op. Returns the
// stored session id and the fingerprint key.
func UpsertSession(ctx context.Context, db *sql.DB, results session.Results) (string, string, error) {
	if ctx == nil {
		return "", "", errors.New("duckdb: context is nil")
	}
	if db == nil {
		return "", "", errors.New("duckdb: db is nil")
	}
	if results.SessionID == "" {
		return "", "", errors.New("duckdb: results session id is required")
	}
	key, err := FingerprintJSON(results)
	if err != nil {
		return "", "", err
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO sessions (
		   session_id, session_key, session_ref, seed, num_choices,
		   started_at, finished_at, rounds_total, correct_total, accuracy, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (session_key) DO NOTHING`,
		id,
		key,
		results.SessionID,
		results.Seed,
		results.NumChoices,
		results.StartedAt,
		results.FinishedAt,
		results.Summary.RoundsTotal,
		results.Summary.CorrectTotal,
		results.Summary.Accuracy,
		time.Now().UTC(),
	); err != nil {
		return "", "", fmt.Errorf("upsert session: %w", err)
	}
	outID, err := sessionIDForKey(ctx, db, key)
	if err != nil {
		return "", "", fmt.Errorf("lookup session id: %w", err)
	}
	return outID, key, nil
}

// sessionIDForKey returns the stored row id for a fingerprint key. After
// a conflicting insert this is the id of the earlier ingestion.
func sessionIDForKey(ctx context.Context, db *sql.DB, key string) (string, error) {
	var id string
	err := db.QueryRowContext(
		ctx,
		`SELECT CAST(session_id AS VARCHAR) FROM sessions WHERE session_key = ?`,
		key,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// InsertRounds stores the answered rounds for a session. Rounds already
// present for the same (session, round) pair are left untouched.
func InsertRounds(ctx context.Context, db *sql.DB, sessionID string, rounds []session.RoundResult) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if sessionID == "" {
		return errors.New("duckdb: session id is required")
	}
	for _, round := range rounds {
		if _, err := db.ExecContext(
			ctx,
			`INSERT INTO rounds (
			   round_id, session_id, round_num, question_id, image_path,
			   make, model, year, selected_label, correct_label, correct, answered_at
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (session_id, round_num) DO NOTHING`,
			uuid.NewString(),
			sessionID,
			round.Round,
			round.QuestionID,
			round.ImagePath,
			round.Make,
			round.Model,
			round.Year,
			round.SelectedLabel,
			round.CorrectLabel,
			round.Correct,
			round.AnsweredAt,
		); err != nil {
			return fmt.Errorf("insert round %d: %w", round.Round, err)
		}
	}
	return nil
}
