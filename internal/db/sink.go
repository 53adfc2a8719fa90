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
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of *pgxpool.Pool used by BatchSink.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// BatchSink accumulates SQL value tuples for one table and flushes them as a
// multi-row INSERT once the batch size is reached. Close flushes whatever
// remains. All generator stages write through a sink so the working set
// stays bounded regardless of horizon length.
type BatchSink struct {
	db      Execer
	table   string
	columns string
	size    int
	values  []string
	written int64
}

// NewBatchSink creates a sink for the given table. columns is the
// parenthesized column list, e.g. "(id, name)".
func NewBatchSink(db Execer, table, columns string, size int) *BatchSink {
	if size < 1 {
		size = 1
	}
	return &BatchSink{
		db:      db,
		table:   table,
		columns: columns,
		size:    size,
		values:  make([]string, 0, size),
	}
}

// Append adds one value tuple, flushing if the batch is full.
func (s *BatchSink) Append(ctx context.Context, tuple string) error {
	s.values = append(s.values, tuple)
	if len(s.values) >= s.size {
		return s.Flush(ctx)
	}
	return nil
}

// Flush writes any buffered rows.
func (s *BatchSink) Flush(ctx context.Context) error {
	if len(s.values) == 0 {
		return nil
	}
	sql := fmt.Sprintf("INSERT INTO %s %s VALUES %s",
		s.table, s.columns, strings.Join(s.values, ", "))
	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("batch insert into %s failed: %w", s.table, err)
	}
	s.written += int64(len(s.values))
	s.values = s.values[:0]
	return nil
}

// Close flushes remaining rows.
func (s *BatchSink) Close(ctx context.Context) error {
	return s.Flush(ctx)
}

// Written returns the number of rows flushed so far.
func (s *BatchSink) Written() int64 {
	return s.written
}

// EscapeSingleQuote doubles single quotes for safe SQL string literals.
func EscapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
