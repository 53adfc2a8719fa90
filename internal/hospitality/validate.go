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

// CheckResult is the outcome of one validation check against an
// initialized database.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

// countCheck passes when the query returns zero offending rows.
type countCheck struct {
	name string
	sql  string
	what string
}

var countChecks = []countCheck{
	{
		name: "occupancy_bounds",
		sql: `SELECT COUNT(*) FROM daily_performance
		      WHERE occupancy_rate < 0.15 OR occupancy_rate > 0.95`,
		what: "rows with occupancy outside [0.15, 0.95]",
	},
	{
		name: "rooms_sold_bounds",
		sql: `SELECT COUNT(*) FROM daily_performance
		      WHERE rooms_sold < 0 OR rooms_sold > rooms_available`,
		what: "rows selling more rooms than available",
	},
	{
		name: "revpar_consistency",
		sql: `SELECT COUNT(*) FROM daily_performance
		      WHERE ABS(revpar - adr * occupancy_rate) > 0.01`,
		what: "rows where revpar drifts from adr * occupancy",
	},
	{
		name: "revenue_total",
		sql: `SELECT COUNT(*) FROM daily_performance
		      WHERE revenue_total < revenue_rooms - 0.01`,
		what: "rows with total revenue below room revenue",
	},
	{
		name: "property_date_uniqueness",
		sql: `SELECT COUNT(*) FROM (
		          SELECT property_id, business_date FROM daily_performance
		          GROUP BY property_id, business_date HAVING COUNT(*) > 1
		      ) dup`,
		what: "duplicated property-dates",
	},
	{
		name: "competitive_coverage",
		sql: `SELECT COUNT(*) FROM properties p
		      WHERE NOT EXISTS (
		          SELECT 1 FROM competitive_intelligence ci
		          WHERE ci.property_id = p.property_id
		      )`,
		what: "properties with no competitive intelligence rows",
	},
}

func queryInt(ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) (int64, error) {
	var n int64
	if err := pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("validation query failed: %w", err)
	}
	return n, nil
}

// checkRowCount verifies every property has a row for every business date
// in the stored horizon.
func checkRowCount(ctx context.Context, pool *pgxpool.Pool) (CheckResult, error) {
	props, err := queryInt(ctx, pool, "SELECT COUNT(*) FROM properties")
	if err != nil {
		return CheckResult{}, err
	}
	days, err := queryInt(ctx, pool, `
		SELECT MAX(business_date) - MIN(business_date) + 1 FROM daily_performance`)
	if err != nil {
		return CheckResult{}, err
	}
	rows, err := queryInt(ctx, pool, "SELECT COUNT(*) FROM daily_performance")
	if err != nil {
		return CheckResult{}, err
	}

	expected := props * days
	return CheckResult{
		Name:   "row_count",
		Passed: rows == expected,
		Detail: fmt.Sprintf("%d rows, expected %d (%d properties x %d days)",
			rows, expected, props, days),
	}, nil
}

// checkRoomRanges verifies every property's room count falls inside its
// brand's configured range.
func checkRoomRanges(ctx context.Context, pool *pgxpool.Pool) (CheckResult, error) {
	rows, err := pool.Query(ctx, "SELECT property_id, brand, room_count FROM properties")
	if err != nil {
		return CheckResult{}, fmt.Errorf("validation query failed: %w", err)
	}
	defer rows.Close()

	var violations int
	for rows.Next() {
		var id, brand string
		var rooms int
		if err := rows.Scan(&id, &brand, &rooms); err != nil {
			return CheckResult{}, fmt.Errorf("validation query failed: %w", err)
		}
		profile, ok := brandProfiles[brand]
		if !ok || rooms < profile.RoomMin || rooms > profile.RoomMax {
			violations++
		}
	}
	if err := rows.Err(); err != nil {
		return CheckResult{}, fmt.Errorf("validation query failed: %w", err)
	}

	return CheckResult{
		Name:   "room_count_ranges",
		Passed: violations == 0,
		Detail: fmt.Sprintf("%d properties outside their brand room range", violations),
	}, nil
}

// checkSeasonality verifies the seasonal signal survived the noise: summer
// average RevPAR must exceed winter.
func checkSeasonality(ctx context.Context, pool *pgxpool.Pool) (CheckResult, error) {
	var summer, winter float64
	err := pool.QueryRow(ctx, `
		SELECT
		    AVG(revpar) FILTER (WHERE EXTRACT(MONTH FROM business_date) IN (6, 7, 8)),
		    AVG(revpar) FILTER (WHERE EXTRACT(MONTH FROM business_date) IN (12, 1, 2))
		FROM daily_performance`).Scan(&summer, &winter)
	if err != nil {
		return CheckResult{}, fmt.Errorf("validation query failed: %w", err)
	}

	return CheckResult{
		Name:   "seasonality",
		Passed: summer > winter,
		Detail: fmt.Sprintf("summer avg revpar %.2f vs winter %.2f", summer, winter),
	}, nil
}

// checkIndexCentering verifies the competitive indices spread around 100
// rather than drifting systematically.
func checkIndexCentering(ctx context.Context, pool *pgxpool.Pool) (CheckResult, error) {
	var mean float64
	err := pool.QueryRow(ctx,
		"SELECT AVG(revpar_index) FROM competitive_intelligence").Scan(&mean)
	if err != nil {
		return CheckResult{}, fmt.Errorf("validation query failed: %w", err)
	}

	return CheckResult{
		Name:   "revpar_index_centering",
		Passed: mean > 75 && mean < 125,
		Detail: fmt.Sprintf("mean revpar_index %.2f, expected near 100", mean),
	}, nil
}

// Validate runs the consistency and shape checks against an initialized
// database and returns one result per check. A query failure aborts;
// a failed expectation does not.
func Validate(ctx context.Context, pool *pgxpool.Pool) ([]CheckResult, error) {
	var results []CheckResult

	for _, c := range countChecks {
		n, err := queryInt(ctx, pool, c.sql)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", c.name, err)
		}
		results = append(results, CheckResult{
			Name:   c.name,
			Passed: n == 0,
			Detail: fmt.Sprintf("%d %s", n, c.what),
		})
	}

	for _, fn := range []func(context.Context, *pgxpool.Pool) (CheckResult, error){
		checkRowCount,
		checkRoomRanges,
		checkSeasonality,
		checkIndexCentering,
	} {
		r, err := fn(ctx, pool)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}
