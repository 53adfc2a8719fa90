//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package hospitality

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// revparTolerance is how far a stored revpar may drift from
// adr * occupancy_rate before it is considered inconsistent.
const revparTolerance = 0.01

// RepairRevPAR recomputes revpar for every daily_performance row that has
// drifted out of tolerance from adr * occupancy_rate, and returns how many
// rows were corrected. Rerunning it on a consistent table is a no-op, so
// it is safe to run at the end of every generation and again on demand.
func RepairRevPAR(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	tag, err := pool.Exec(ctx, fmt.Sprintf(`
		UPDATE daily_performance
		SET revpar = ROUND((adr * occupancy_rate)::numeric, 2)
		WHERE ABS(revpar - adr * occupancy_rate) > %v`, revparTolerance))
	if err != nil {
		return 0, fmt.Errorf("failed to repair revpar: %w", err)
	}
	return tag.RowsAffected(), nil
}
