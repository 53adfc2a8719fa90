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
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelgen/internal/datagen"
	"github.com/hotelops/hotelgen/internal/db"
	"github.com/hotelops/hotelgen/internal/logging"
)

const competitiveColumns = "(market_id, business_date, property_id, " +
	"market_occupancy, market_adr, market_revpar, penetration_index, " +
	"adr_index, revpar_index, market_room_nights, fair_share_rooms)"

// marketsPerBatch bounds how much daily performance data is held in memory
// at once while computing benchmarks.
const marketsPerBatch = 5

// dailyFacts is the slice of a daily_performance row the benchmark needs.
type dailyFacts struct {
	PropertyID     string
	BusinessDate   time.Time
	RoomsAvailable int
	RoomsSold      int
	OccupancyRate  float64
	ADR            float64
	RevPAR         float64
}

// compSetMultiple scales a subject property's room base up to the size of
// its simulated competitive set; fairShareFraction is the subject's slice
// of that set.
const (
	compSetMultiple   = 4.0
	fairShareFraction = 0.25
)

// marketBenchmark derives the shared market-level benchmark for one market
// on one date. Subject occupancy, ADR, and RevPAR are room-count-weighted
// averages across the market's properties; the market aggregate is the
// subject aggregate divided by one random competitive factor per metric, so
// the synthetic market sometimes outperforms and sometimes trails the
// subject portfolio and the indices spread around 100. Every property in
// the market mirrors the same benchmark row.
func marketBenchmark(marketID string, day time.Time, rows []dailyFacts, f *datagen.Faker) []CompetitiveIntelligence {
	var totalRooms int
	var occSum, adrSum, revparSum float64
	for _, r := range rows {
		w := float64(r.RoomsAvailable)
		totalRooms += r.RoomsAvailable
		occSum += r.OccupancyRate * w
		adrSum += r.ADR * w
		revparSum += r.RevPAR * w
	}
	if totalRooms == 0 {
		return nil
	}

	subjectOcc := occSum / float64(totalRooms)
	subjectADR := adrSum / float64(totalRooms)
	subjectRevPAR := revparSum / float64(totalRooms)

	marketOcc := round4(subjectOcc / f.Float64(0.95, 1.05))
	marketADR := round2(subjectADR / f.Float64(0.90, 1.10))
	marketRevPAR := round2(subjectRevPAR / f.Float64(0.85, 1.15))

	// Fair share is a quarter of the simulated competitive set; penetration
	// above 100 means the subject portfolio is stealing share.
	marketRoomNights := int64(float64(totalRooms) * marketOcc * compSetMultiple)
	fairShareRooms := int64(float64(marketRoomNights) * fairShareFraction)

	penetrationIndex := 100.0
	if fairShareRooms > 0 {
		penetrationIndex = round2(float64(totalRooms) * subjectOcc / float64(fairShareRooms) * 100)
	}
	adrIndex := round2(subjectADR / marketADR * 100)
	revparIndex := round2(subjectRevPAR / marketRevPAR * 100)

	out := make([]CompetitiveIntelligence, 0, len(rows))
	for _, r := range rows {
		out = append(out, CompetitiveIntelligence{
			MarketID:         marketID,
			BusinessDate:     day,
			PropertyID:       r.PropertyID,
			MarketOccupancy:  marketOcc,
			MarketADR:        marketADR,
			MarketRevPAR:     marketRevPAR,
			PenetrationIndex: penetrationIndex,
			ADRIndex:         adrIndex,
			RevPARIndex:      revparIndex,
			MarketRoomNights: marketRoomNights,
			FairShareRooms:   fairShareRooms,
		})
	}
	return out
}

// competitiveGenerator builds the competitive_intelligence table from the
// already persisted daily_performance rows, one batch of markets at a time.
type competitiveGenerator struct {
	params Params
	faker  *datagen.Faker
}

func (g *competitiveGenerator) marketIDs(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx, "SELECT DISTINCT market_id FROM properties ORDER BY market_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list markets: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan market id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// loadFacts reads the daily performance rows for a batch of markets,
// grouped by market and date.
func (g *competitiveGenerator) loadFacts(ctx context.Context, pool *pgxpool.Pool, markets []string) (map[string]map[time.Time][]dailyFacts, error) {
	rows, err := pool.Query(ctx, `
		SELECT p.market_id, dp.business_date, dp.property_id,
		       dp.rooms_available, dp.rooms_sold, dp.occupancy_rate,
		       dp.adr, dp.revpar
		FROM daily_performance dp
		JOIN properties p ON p.property_id = dp.property_id
		WHERE p.market_id = ANY($1)
		ORDER BY p.market_id, dp.business_date, dp.property_id`, markets)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily performance: %w", err)
	}
	defer rows.Close()

	facts := make(map[string]map[time.Time][]dailyFacts)
	for rows.Next() {
		var marketID string
		var f dailyFacts
		if err := rows.Scan(&marketID, &f.BusinessDate, &f.PropertyID,
			&f.RoomsAvailable, &f.RoomsSold, &f.OccupancyRate, &f.ADR, &f.RevPAR); err != nil {
			return nil, fmt.Errorf("failed to scan daily performance: %w", err)
		}
		byDate := facts[marketID]
		if byDate == nil {
			byDate = make(map[time.Time][]dailyFacts)
			facts[marketID] = byDate
		}
		byDate[f.BusinessDate] = append(byDate[f.BusinessDate], f)
	}
	return facts, rows.Err()
}

func (g *competitiveGenerator) run(ctx context.Context, pool *pgxpool.Pool) error {
	markets, err := g.marketIDs(ctx, pool)
	if err != nil {
		return err
	}
	logging.Info().Int("markets", len(markets)).Msg("Generating competitive intelligence")

	if err := truncate(ctx, pool, "competitive_intelligence"); err != nil {
		return err
	}

	sink := db.NewBatchSink(pool, "competitive_intelligence", competitiveColumns, g.params.BatchSize)
	progress := datagen.NewProgressReporter("competitive_intelligence",
		int64(g.params.PropertyCount)*int64(g.params.HorizonDays()), 100000)

	for start := 0; start < len(markets); start += marketsPerBatch {
		end := start + marketsPerBatch
		if end > len(markets) {
			end = len(markets)
		}

		facts, err := g.loadFacts(ctx, pool, markets[start:end])
		if err != nil {
			return err
		}

		for _, marketID := range markets[start:end] {
			for day := g.params.StartDate; !day.After(g.params.EndDate); day = day.AddDate(0, 0, 1) {
				benchmarks := marketBenchmark(marketID, day, facts[marketID][day], g.faker)
				for _, b := range benchmarks {
					if err := sink.Append(ctx, b.sqlTuple()); err != nil {
						return err
					}
				}
				progress.Update(int64(len(benchmarks)))
			}
		}
	}

	if err := sink.Close(ctx); err != nil {
		return err
	}
	progress.Done()
	return nil
}
