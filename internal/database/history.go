package database

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS word_analyses (
	id          BIGSERIAL PRIMARY KEY,
	event_id    TEXT        NOT NULL,
	word        TEXT        NOT NULL,
	length      INTEGER     NOT NULL,
	span_start  INTEGER     NOT NULL,
	span_end    INTEGER     NOT NULL,
	substring   TEXT        NOT NULL,
	cached      BOOLEAN     NOT NULL DEFAULT FALSE,
	duration_ns BIGINT      NOT NULL,
	analyzed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS word_analyses_analyzed_at_idx ON word_analyses (analyzed_at DESC);`

func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create word_analyses table: %w", err)
	}
	return nil
}

func (db *DB) Record(ctx context.Context, result models.AnalysisResult) error {
	query := `
	INSERT INTO word_analyses
	  (event_id, word, length, span_start, span_end, substring, cached, duration_ns, analyzed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := db.Pool.Exec(ctx, query,
		result.ID,
		result.Word,
		result.Length,
		result.Start,
		result.End,
		result.Substring,
		result.Cached,
		result.Duration.Nanoseconds(),
		result.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis of %q: %w", result.Word, err)
	}
	return nil
}

// Recent returns up to limit analyses, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]models.AnalysisResult, error) {
	query := `
	SELECT event_id, word, length, span_start, span_end, substring, cached, duration_ns, analyzed_at
	FROM word_analyses
	ORDER BY analyzed_at DESC, id DESC
	LIMIT $1`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to query history: %w", err)
	}
	defer rows.Close()

	var results []models.AnalysisResult
	for rows.Next() {
		var (
			result     models.AnalysisResult
			durationNs int64
		)
		if err := rows.Scan(
			&result.ID,
			&result.Word,
			&result.Length,
			&result.Start,
			&result.End,
			&result.Substring,
			&result.Cached,
			&durationNs,
			&result.AnalyzedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		result.Duration = time.Duration(durationNs)
		results = append(results, result)
	}

	return results, rows.Err()
}
