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

const createSchemaSQL = `
-- Properties: the subject portfolio
CREATE TABLE IF NOT EXISTS properties (
    property_id     VARCHAR(32) PRIMARY KEY,
    property_name   VARCHAR(120) NOT NULL,
    brand           VARCHAR(40) NOT NULL,
    region          VARCHAR(40) NOT NULL,
    market_tier     VARCHAR(16) NOT NULL,
    property_type   VARCHAR(24) NOT NULL,
    room_count      INTEGER NOT NULL,
    ownership_type  VARCHAR(32) NOT NULL,
    open_date       DATE NOT NULL,
    city            VARCHAR(60) NOT NULL,
    state_province  VARCHAR(8) NOT NULL,
    country         VARCHAR(16) NOT NULL,
    market_id       VARCHAR(64) NOT NULL,
    latitude        DOUBLE PRECISION NOT NULL,
    longitude       DOUBLE PRECISION NOT NULL
);

-- Market events: demand shocks per competitive market
CREATE TABLE IF NOT EXISTS market_events (
    event_id        VARCHAR(16) PRIMARY KEY,
    market_id       VARCHAR(64) NOT NULL,
    event_date      DATE NOT NULL,
    end_date        DATE,
    event_name      VARCHAR(120) NOT NULL,
    event_type      VARCHAR(24) NOT NULL,
    impact_rating   VARCHAR(16) NOT NULL,
    demand_lift_pct NUMERIC(6,2) NOT NULL,
    adr_lift_pct    NUMERIC(6,2) NOT NULL
);

-- Daily performance: one row per property-night
CREATE TABLE IF NOT EXISTS daily_performance (
    property_id         VARCHAR(32) NOT NULL REFERENCES properties(property_id),
    business_date       DATE NOT NULL,
    rooms_available     INTEGER NOT NULL,
    rooms_sold          INTEGER NOT NULL,
    occupancy_rate      NUMERIC(6,4) NOT NULL,
    adr                 NUMERIC(8,2) NOT NULL,
    revpar              NUMERIC(8,2) NOT NULL,
    revenue_rooms       NUMERIC(12,2) NOT NULL,
    revenue_fb          NUMERIC(12,2) NOT NULL,
    revenue_other       NUMERIC(12,2) NOT NULL,
    revenue_total       NUMERIC(12,2) NOT NULL,
    avg_length_of_stay  NUMERIC(4,1) NOT NULL,
    booking_channel_mix TEXT NOT NULL,
    market_segment_mix  TEXT NOT NULL,
    walk_in_rate        NUMERIC(6,4) NOT NULL,
    no_show_rate        NUMERIC(6,4) NOT NULL,
    cancellation_rate   NUMERIC(6,4) NOT NULL,
    PRIMARY KEY (property_id, business_date)
);

-- Competitive intelligence: market benchmark mirrored per subject property
CREATE TABLE IF NOT EXISTS competitive_intelligence (
    market_id         VARCHAR(64) NOT NULL,
    business_date     DATE NOT NULL,
    property_id       VARCHAR(32) NOT NULL REFERENCES properties(property_id),
    market_occupancy  NUMERIC(6,4) NOT NULL,
    market_adr        NUMERIC(8,2) NOT NULL,
    market_revpar     NUMERIC(8,2) NOT NULL,
    penetration_index NUMERIC(8,2) NOT NULL,
    adr_index         NUMERIC(8,2) NOT NULL,
    revpar_index      NUMERIC(8,2) NOT NULL,
    market_room_nights BIGINT NOT NULL,
    fair_share_rooms  BIGINT NOT NULL,
    PRIMARY KEY (market_id, business_date, property_id)
);

-- Guest transactions: individual bookings
CREATE TABLE IF NOT EXISTS guest_transactions (
    transaction_id       VARCHAR(16) PRIMARY KEY,
    property_id          VARCHAR(32) NOT NULL REFERENCES properties(property_id),
    guest_id             VARCHAR(16) NOT NULL,
    business_date        DATE NOT NULL,
    departure_date       DATE NOT NULL,
    length_of_stay       INTEGER NOT NULL,
    room_type            VARCHAR(32) NOT NULL,
    rate_code            VARCHAR(12) NOT NULL,
    room_revenue         NUMERIC(10,2) NOT NULL,
    total_revenue        NUMERIC(10,2) NOT NULL,
    booking_channel      VARCHAR(24) NOT NULL,
    market_segment       VARCHAR(24) NOT NULL,
    booking_date         DATE NOT NULL,
    advance_booking_days INTEGER NOT NULL,
    guest_type           VARCHAR(24) NOT NULL,
    cancellation_date    DATE,
    no_show              BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_daily_performance_date ON daily_performance(business_date);
CREATE INDEX IF NOT EXISTS idx_properties_market ON properties(market_id);
CREATE INDEX IF NOT EXISTS idx_competitive_market_date ON competitive_intelligence(market_id, business_date);
CREATE INDEX IF NOT EXISTS idx_transactions_property_date ON guest_transactions(property_id, business_date);
`

// Output tables in dependency order; drops run in reverse.
var tables = []string{
	"properties",
	"market_events",
	"daily_performance",
	"competitive_intelligence",
	"guest_transactions",
}

// CreateSchema creates the five output tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema drops the five output tables.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i := len(tables) - 1; i >= 0; i-- {
		sql := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", tables[i])
		if _, err := pool.Exec(ctx, sql); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i], err)
		}
	}
	return nil
}

// Tables returns the output table names in load order.
func Tables() []string {
	out := make([]string, len(tables))
	copy(out, tables)
	return out
}
