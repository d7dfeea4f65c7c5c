package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"carquiz/internal/session"
)

// IngestResults stores a batch of session results, returning how many
// were ingested. Previously seen sessions are skipped via their
// fingerprint keys, so repeated ingestion is idempotent.
func IngestResults(ctx context.Context, db *sql.DB, batch []session.Results) (int, error) {
	ingested := 0
	for _, results := range batch {
		sessionID, _, err := UpsertSession(ctx, db, results)
		if err != nil {
			return ingested, fmt.Errorf("ingest session %s: %w", results.SessionID, err)
		}
		if err := InsertRounds(ctx, db, sessionID, results.Rounds); err != nil {
			return ingested, fmt.Errorf("ingest session %s: %w", results.SessionID, err)
		}
		ingested++
	}
	return ingested, nil
}
