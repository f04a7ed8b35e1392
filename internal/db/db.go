// Package db provides PostgreSQL persistence for analysis results.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/profile-analyzer/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the analyses table when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			profile_url TEXT NOT NULL DEFAULT '',
			profile JSONB NOT NULL,
			analysis JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SaveAnalysis persists one analysis with its normalized profile and returns
// the generated record ID.
func (db *DB) SaveAnalysis(ctx context.Context, profileURL string, profile *types.Profile, analysis *types.Analysis) (uuid.UUID, error) {
	if profile == nil || analysis == nil {
		return uuid.Nil, errors.New("db: profile and analysis are required")
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, profile_url, profile, analysis)
		 VALUES ($1, $2, $3, $4)`,
		id, profileURL, profileJSON, analysisJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves one stored analysis by ID. A missing record returns
// (nil, nil).
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.StoredAnalysis, error) {
	var (
		stored       types.StoredAnalysis
		profileJSON  []byte
		analysisJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile_url, profile, analysis, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.ProfileURL, &profileJSON, &analysisJSON, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := decodeStored(&stored, profileJSON, analysisJSON); err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListRecent retrieves the most recent stored analyses, newest first.
func (db *DB) ListRecent(ctx context.Context, limit int) ([]types.StoredAnalysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_url, profile, analysis, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []types.StoredAnalysis
	for rows.Next() {
		var (
			stored       types.StoredAnalysis
			profileJSON  []byte
			analysisJSON []byte
		)
		if err := rows.Scan(&stored.ID, &stored.ProfileURL, &profileJSON, &analysisJSON, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if err := decodeStored(&stored, profileJSON, analysisJSON); err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, rows.Err()
}

// DeleteAnalysis removes one record. Deleting a missing ID is not an error.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

func decodeStored(stored *types.StoredAnalysis, profileJSON, analysisJSON []byte) error {
	if err := json.Unmarshal(profileJSON, &stored.Profile); err != nil {
		return fmt.Errorf("failed to unmarshal stored profile: %w", err)
	}
	if err := json.Unmarshal(analysisJSON, &stored.Analysis); err != nil {
		return fmt.Errorf("failed to unmarshal stored analysis: %w", err)
	}
	return nil
}
