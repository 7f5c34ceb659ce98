package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-extractor/internal/types"
)

// ExtractionSummary is a lightweight view of a stored extraction for listing
type ExtractionSummary struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// SaveExtraction stores an extraction result, replacing any previous record
// with the same ID.
func (db *DB) SaveExtraction(ctx context.Context, record *types.ResumeRecord) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO extractions (id, source_path, name, email, record, extracted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		   source_path = $2, name = $3, email = $4, record = $5, extracted_at = $6`,
		record.ID, record.SourcePath, record.Name, record.Email, jsonBytes, record.ExtractedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save extraction: %w", err)
	}
	return nil
}

// GetExtraction retrieves a stored extraction by ID. Returns nil when no
// record exists.
func (db *DB) GetExtraction(ctx context.Context, id uuid.UUID) (*types.ResumeRecord, error) {
	var jsonBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT record FROM extractions WHERE id = $1`,
		id,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get extraction: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction %s: %w", id, err)
	}
	return &record, nil
}

// ExtractionFilters holds optional filters for listing extractions
type ExtractionFilters struct {
	Email string
	Name  string
	Limit int
}

// buildListQuery assembles the filtered listing query and its arguments.
func buildListQuery(filters ExtractionFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, source_path, name, email, extracted_at
		FROM extractions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Email != "" {
		query += fmt.Sprintf(" AND email = $%d", argNum)
		args = append(args, filters.Email)
		argNum++
	}
	if filters.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Name+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY extracted_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// ListExtractions retrieves stored extractions with optional filters
func (db *DB) ListExtractions(ctx context.Context, filters ExtractionFilters) ([]ExtractionSummary, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	var summaries []ExtractionSummary
	for rows.Next() {
		var s ExtractionSummary
		if err := rows.Scan(&s.ID, &s.SourcePath, &s.Name, &s.Email, &s.ExtractedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteExtraction removes a stored extraction
func (db *DB) DeleteExtraction(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM extractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extraction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("extraction not found: %s", id)
	}
	return nil
}
