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

const transactionColumns = "(transaction_id, property_id, guest_id, " +
	"business_date, departure_date, length_of_stay, room_type, rate_code, " +
	"room_revenue, total_revenue, booking_channel, market_segment, " +
	"booking_date, advance_booking_days, guest_type, cancellation_date, no_show)"

// avgPartySize is the assumed rooms-per-reservation ratio used to collapse
// rooms sold into a realistic booking count.
const avgPartySize = 1.8

var (
	stayLengths     = []int{1, 2, 3, 4, 5, 7, 14}
	stayWeights     = []float64{0.4, 0.25, 0.15, 0.1, 0.05, 0.04, 0.01}
	advanceDays     = []int{0, 1, 3, 7, 14, 21, 30, 60, 90}
	advanceWeights  = []float64{0.1, 0.1, 0.15, 0.2, 0.2, 0.15, 0.05, 0.03, 0.02}
	roomTypes       = []string{"Standard King", "Standard Queen", "Standard Two Queens", "Suite", "Accessible"}
	roomTypeWeights = []float64{0.35, 0.35, 0.2, 0.08, 0.02}

	rateMultipliers = map[string]float64{
		"BAR":     1.00,
		"AAA":     0.90,
		"AARP":    0.85,
		"CORP":    0.88,
		"GOVT":    0.82,
		"Walk-in": 0.95,
	}
)

// sampledNight is one daily_performance row drawn into the transaction
// sample, with the property attributes that condition booking behavior.
type sampledNight struct {
	PropertyID   string
	BusinessDate time.Time
	RoomsSold    int
	ADR          float64
	Brand        string
	PropertyType string
}

// transactionsPerNight collapses a night's rooms sold into a booking count.
// Multiple rooms ride on one reservation, so the count is far below rooms
// sold and bounded to stay realistic for small properties.
func transactionsPerNight(roomsSold int) int {
	min, max := 2, 8
	if roomsSold <= 20 {
		max = 5
	}
	n := int(float64(roomsSold) / avgPartySize)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// rateCodeFor samples a rate code conditioned on booking lead time and
// property type. Last-minute bookings skip the discount programs.
func rateCodeFor(f *datagen.Faker, advance int, propertyType string) string {
	if advance <= 1 {
		return datagen.ChooseWeighted(f, []string{"BAR", "Walk-in"}, []float64{0.7, 0.3})
	}
	if propertyType == "Urban" || propertyType == "Airport" {
		return datagen.ChooseWeighted(f,
			[]string{"BAR", "CORP", "GOVT", "AAA"},
			[]float64{0.5, 0.25, 0.15, 0.1})
	}
	return datagen.ChooseWeighted(f,
		[]string{"BAR", "AAA", "AARP", "CORP"},
		[]float64{0.6, 0.2, 0.1, 0.1})
}

func bookingChannelFor(f *datagen.Faker, brand string) string {
	switch brand {
	case "Wyndham", "Wingate":
		return datagen.ChooseWeighted(f,
			[]string{"Direct", "Corporate", "Expedia", "Booking.com"},
			[]float64{0.45, 0.15, 0.25, 0.15})
	case "Super 8", "Travelodge":
		return datagen.ChooseWeighted(f,
			[]string{"Expedia", "Booking.com", "Direct", "Walk-in"},
			[]float64{0.35, 0.35, 0.2, 0.1})
	default:
		return datagen.ChooseWeighted(f,
			[]string{"Direct", "Expedia", "Booking.com", "Walk-in"},
			[]float64{0.35, 0.3, 0.25, 0.1})
	}
}

func marketSegmentFor(f *datagen.Faker, rateCode string, lengthOfStay int, roomRevenue float64) string {
	switch {
	case rateCode == "CORP" || rateCode == "GOVT":
		return "Business"
	case lengthOfStay >= 7:
		return "Extended Stay"
	case roomRevenue >= 400:
		return "Leisure"
	default:
		return datagen.ChooseWeighted(f,
			[]string{"Leisure", "Business", "Group"},
			[]float64{0.55, 0.35, 0.1})
	}
}

func guestTypeFor(f *datagen.Faker, channel string) string {
	if channel == "Direct" || channel == "Corporate" {
		return datagen.ChooseWeighted(f,
			[]string{"Loyalty Member", "Repeat", "New"},
			[]float64{0.4, 0.35, 0.25})
	}
	return datagen.ChooseWeighted(f,
		[]string{"New", "Repeat", "Loyalty Member"},
		[]float64{0.65, 0.25, 0.1})
}

// nightTransactions emits the bookings for one sampled property-night.
// Revenue is anchored on the night's realized ADR, not the brand base
// rate, so transaction totals stay statistically consistent with the
// daily performance row they came from.
func nightTransactions(night sampledNight, txnSeq, guestSeq int, f *datagen.Faker) []GuestTransaction {
	count := transactionsPerNight(night.RoomsSold)
	out := make([]GuestTransaction, 0, count)

	for i := 0; i < count; i++ {
		stay := datagen.ChooseWeighted(f, stayLengths, stayWeights)
		advance := datagen.ChooseWeighted(f, advanceDays, advanceWeights)
		rateCode := rateCodeFor(f, advance, night.PropertyType)

		nightly := night.ADR * f.Float64(0.85, 1.15) * rateMultipliers[rateCode]
		roomRevenue := round2(nightly * float64(stay))

		ancillary := f.Float64(1.0, 1.15)
		if night.PropertyType == "Resort" || night.PropertyType == "Urban" {
			ancillary = f.Float64(1.0, 1.3)
		}
		totalRevenue := round2(roomRevenue * ancillary)

		channel := bookingChannelFor(f, night.Brand)

		out = append(out, GuestTransaction{
			TransactionID:      fmt.Sprintf("TXN_%010d", txnSeq+i),
			PropertyID:         night.PropertyID,
			GuestID:            fmt.Sprintf("GST_%08d", guestSeq+i),
			BusinessDate:       night.BusinessDate,
			DepartureDate:      night.BusinessDate.AddDate(0, 0, stay),
			LengthOfStay:       stay,
			RoomType:           datagen.ChooseWeighted(f, roomTypes, roomTypeWeights),
			RateCode:           rateCode,
			RoomRevenue:        roomRevenue,
			TotalRevenue:       totalRevenue,
			BookingChannel:     channel,
			MarketSegment:      marketSegmentFor(f, rateCode, stay, roomRevenue),
			BookingDate:        night.BusinessDate.AddDate(0, 0, -advance),
			AdvanceBookingDays: advance,
			GuestType:          guestTypeFor(f, channel),
			CancellationDate:   nil,
			NoShow:             false,
		})
	}
	return out
}

// transactionGenerator samples busy property-nights out of
// daily_performance and expands each into bookings.
type transactionGenerator struct {
	params Params
	faker  *datagen.Faker
}

// sampleNights draws up to the configured sample of property-nights with
// enough occupancy to plausibly host multiple bookings.
func (g *transactionGenerator) sampleNights(ctx context.Context, pool *pgxpool.Pool) ([]sampledNight, error) {
	rows, err := pool.Query(ctx, `
		SELECT dp.property_id, dp.business_date, dp.rooms_sold, dp.adr,
		       p.brand, p.property_type
		FROM daily_performance dp
		JOIN properties p ON p.property_id = dp.property_id
		WHERE dp.rooms_sold > 5
		ORDER BY random()
		LIMIT $1`, g.params.TransactionSample)
	if err != nil {
		return nil, fmt.Errorf("failed to sample property-nights: %w", err)
	}
	defer rows.Close()

	var nights []sampledNight
	for rows.Next() {
		var n sampledNight
		if err := rows.Scan(&n.PropertyID, &n.BusinessDate, &n.RoomsSold,
			&n.ADR, &n.Brand, &n.PropertyType); err != nil {
			return nil, fmt.Errorf("failed to scan property-night: %w", err)
		}
		nights = append(nights, n)
	}
	return nights, rows.Err()
}

func (g *transactionGenerator) run(ctx context.Context, pool *pgxpool.Pool) error {
	nights, err := g.sampleNights(ctx, pool)
	if err != nil {
		return err
	}
	logging.Info().Int("property_nights", len(nights)).Msg("Generating guest transactions")

	if err := truncate(ctx, pool, "guest_transactions"); err != nil {
		return err
	}

	sink := db.NewBatchSink(pool, "guest_transactions", transactionColumns, g.params.BatchSize)
	progress := datagen.NewProgressReporter("guest_transactions", int64(len(nights)), 5000)

	txnSeq, guestSeq := 1, 1
	for _, night := range nights {
		txns := nightTransactions(night, txnSeq, guestSeq, g.faker)
		for _, t := range txns {
			if err := sink.Append(ctx, t.sqlTuple()); err != nil {
				return err
			}
		}
		txnSeq += len(txns)
		guestSeq += len(txns)
		progress.Update(1)
	}

	if err := sink.Close(ctx); err != nil {
		return err
	}
	progress.Done()

	logging.Info().Int64("transactions", sink.Written()).Msg("Guest transactions complete")
	return nil
}
