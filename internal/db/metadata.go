//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelgen/internal/logging"
	"github.com/hotelops/hotelgen/pkg/version"
)

const metadataTable = "hotelgen_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS hotelgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunInfo describes one generation run, recorded in the metadata table so
// downstream consumers can tell what a database contains.
type RunInfo struct {
	Seed          uint64
	PropertyCount int
	StartDate     string
	EndDate       string
}

// SaveMetadata records generation run metadata in the database.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, info RunInfo) error {
	if _, err := pool.Exec(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"seed":           fmt.Sprintf("%d", info.Seed),
		"property_count": fmt.Sprintf("%d", info.PropertyCount),
		"start_date":     info.StartDate,
		"end_date":       info.EndDate,
		"version":        version.Short(),
		"initialized_at": time.Now().UTC().Format(time.RFC3339),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO hotelgen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Uint64("seed", info.Seed).
		Int("property_count", info.PropertyCount).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM hotelgen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM hotelgen_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}
