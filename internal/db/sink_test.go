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
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

// fakeExecer records executed SQL instead of hitting a database.
type fakeExecer struct {
	statements []string
	failNext   bool
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.failNext {
		f.failNext = false
		return pgconn.CommandTag{}, fmt.Errorf("exec failed")
	}
	f.statements = append(f.statements, sql)
	return pgconn.CommandTag{}, nil
}

func TestBatchSinkFlushesAtSize(t *testing.T) {
	fake := &fakeExecer{}
	sink := NewBatchSink(fake, "widgets", "(id, name)", 3)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		if err := sink.Append(ctx, fmt.Sprintf("(%d, 'w%d')", i, i)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	// 7 rows at batch size 3: two full flushes, one row still buffered
	if len(fake.statements) != 2 {
		t.Fatalf("Expected 2 flushes, got %d", len(fake.statements))
	}
	if sink.Written() != 6 {
		t.Errorf("Expected 6 written, got %d", sink.Written())
	}

	if err := sink.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(fake.statements) != 3 {
		t.Fatalf("Expected 3 flushes after close, got %d", len(fake.statements))
	}
	if sink.Written() != 7 {
		t.Errorf("Expected 7 written after close, got %d", sink.Written())
	}
}

func TestBatchSinkStatementShape(t *testing.T) {
	fake := &fakeExecer{}
	sink := NewBatchSink(fake, "widgets", "(id, name)", 2)
	ctx := context.Background()

	sink.Append(ctx, "(1, 'a')")
	sink.Append(ctx, "(2, 'b')")

	if len(fake.statements) != 1 {
		t.Fatalf("Expected 1 statement, got %d", len(fake.statements))
	}
	want := "INSERT INTO widgets (id, name) VALUES (1, 'a'), (2, 'b')"
	if fake.statements[0] != want {
		t.Errorf("Unexpected statement:\n got: %s\nwant: %s", fake.statements[0], want)
	}
}

func TestBatchSinkEmptyClose(t *testing.T) {
	fake := &fakeExecer{}
	sink := NewBatchSink(fake, "widgets", "(id)", 10)

	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("Close of empty sink failed: %v", err)
	}
	if len(fake.statements) != 0 {
		t.Errorf("Empty sink should not execute anything, got %d statements", len(fake.statements))
	}
	if sink.Written() != 0 {
		t.Errorf("Expected 0 written, got %d", sink.Written())
	}
}

func TestBatchSinkExecError(t *testing.T) {
	fake := &fakeExecer{failNext: true}
	sink := NewBatchSink(fake, "widgets", "(id)", 1)

	err := sink.Append(context.Background(), "(1)")
	if err == nil {
		t.Fatal("Expected error from failed exec")
	}
	if !strings.Contains(err.Error(), "widgets") {
		t.Errorf("Error should name the table: %v", err)
	}
	if sink.Written() != 0 {
		t.Errorf("Failed flush should not count as written, got %d", sink.Written())
	}
}

func TestBatchSinkMinimumSize(t *testing.T) {
	fake := &fakeExecer{}
	sink := NewBatchSink(fake, "widgets", "(id)", 0)

	// Size below 1 is coerced to 1: every append flushes
	sink.Append(context.Background(), "(1)")
	if len(fake.statements) != 1 {
		t.Errorf("Expected immediate flush at size 1, got %d statements", len(fake.statements))
	}
}

func TestEscapeSingleQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"O'Hare", "O''Hare"},
		{"''", "''''"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeSingleQuote(tt.in); got != tt.want {
			t.Errorf("EscapeSingleQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
