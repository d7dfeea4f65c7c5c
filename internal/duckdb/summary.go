package duckdb

import (
	"context"
	"database/sql"
	"fmt"
)

// Totals aggregates all ingested sessions.
type Totals struct {
	SessionsTotal int
	RoundsTotal   int
	CorrectTotal  int
	Accuracy      float64
}

// MakeAccuracyRow reports per-make answer accuracy.
type MakeAccuracyRow struct {
	Make         string
	RoundsTotal  int
	CorrectTotal int
	Accuracy     float64
}

// QueryTotals returns overall session and round counts.
func QueryTotals(ctx context.Context, db *sql.DB) (Totals, error) {
	var totals Totals
	err := db.QueryRowContext(
		ctx,
		`SELECT COUNT(*),
		        CAST(COALESCE(SUM(rounds_total), 0) AS BIGINT),
		        CAST(COALESCE(SUM(correct_total), 0) AS BIGINT)
		 FROM sessions`,
	).Scan(&totals.SessionsTotal, &totals.RoundsTotal, &totals.CorrectTotal)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	if totals.RoundsTotal > 0 {
		totals.Accuracy = float64(totals.CorrectTotal) / float64(totals.RoundsTotal)
	}
	return totals, nil
}

// QueryMakeAccuracy returns per-make accuracy rows, most-played first.
func QueryMakeAccuracy(ctx context.Context, db *sql.DB) ([]MakeAccuracyRow, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT make,
		        CAST(rounds_total AS BIGINT),
		        CAST(correct_total AS BIGINT),
		        accuracy
		 FROM v_make_accuracy
		 ORDER BY rounds_total DESC, make ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query make accuracy: %w", err)
	}
	defer rows.Close()

	var out []MakeAccuracyRow
	for rows.Next() {
		var row MakeAccuracyRow
		if err := rows.Scan(&row.Make, &row.RoundsTotal, &row.CorrectTotal, &row.Accuracy); err != nil {
			return nil, fmt.Errorf("scan make accuracy: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate make accuracy: %w", err)
	}
	return out, nil
}
