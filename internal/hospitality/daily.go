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
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelgen/internal/datagen"
	"github.com/hotelops/hotelgen/internal/db"
	"github.com/hotelops/hotelgen/internal/logging"
)

const dailyColumns = "(property_id, business_date, rooms_available, rooms_sold, " +
	"occupancy_rate, adr, revpar, revenue_rooms, revenue_fb, revenue_other, " +
	"revenue_total, avg_length_of_stay, booking_channel_mix, market_segment_mix, " +
	"walk_in_rate, no_show_rate, cancellation_rate)"

// Industry-average starting occupancy before any adjustment.
const baseOccupancyLevel = 0.68

// dailyGenerator produces one row per (property, date) over the horizon.
type dailyGenerator struct {
	params Params
	faker  *datagen.Faker
	props  []Property
	events eventIndex
}

// baseline is the per-property starting point for every day: brand, region,
// market tier, and property type effects plus one persistent performance
// factor that makes some properties durably over- or under-perform.
type baseline struct {
	adr       float64
	occupancy float64
}

func (g *dailyGenerator) baseline(prop Property) baseline {
	brand := brandProfiles[prop.Brand]
	region := regionProfiles[prop.Region]

	adr := brand.ADRBase * region.ADRMultiplier
	occ := baseOccupancyLevel

	switch prop.MarketTier {
	case "Primary":
		adr *= 1.15
		occ += 0.05
	case "Tertiary":
		adr *= 0.90
		occ -= 0.05
	}

	switch prop.PropertyType {
	case "Airport":
		occ += 0.08
		adr *= 1.10
	case "Resort":
		adr *= 1.25
	case "Highway":
		occ += 0.02
		adr *= 0.95
	}

	factor := g.faker.NormalClamped(1.0, 0.15, 0.7, 1.4)
	adr *= factor

	// Occupancy gains from outperformance cap out before the ADR gains do.
	occFactor := factor
	if occFactor > 1.2 {
		occFactor = 1.2
	}
	occ *= occFactor

	return baseline{adr: adr, occupancy: occ}
}

// seasonalMultiplier returns the demand multiplier for a date: summer peak,
// winter trough, shoulder in between, with holiday overrides, dampened for
// regions with weaker seasonality.
func seasonalMultiplier(day time.Time, region string) float64 {
	var base float64
	switch day.Month() {
	case time.June, time.July, time.August:
		base = 1.3
	case time.December, time.January, time.February:
		base = 0.75
	default:
		base = 1.0
	}

	switch {
	case day.Month() == time.December && day.Day() >= 20:
		base = 1.4
	case day.Month() == time.January && day.Day() <= 7:
		base = 1.3
	case day.Month() == time.November && day.Day() >= 22 && day.Day() <= 28:
		base = 1.2
	case day.Month() == time.July && day.Day() == 4:
		base = 1.5
	}

	switch regionProfiles[region].Seasonality {
	case "high":
		return base
	case "moderate":
		return 1.0 + (base-1.0)*0.7
	default:
		return 1.0 + (base-1.0)*0.5
	}
}

// dayOfWeekMultiplier returns the demand multiplier for a weekday. Leisure
// locations fill on weekends, transient locations midweek.
func dayOfWeekMultiplier(day time.Time, propertyType string) float64 {
	wd := day.Weekday()
	if propertyType == "Resort" || propertyType == "Urban" {
		switch wd {
		case time.Friday, time.Saturday, time.Sunday:
			return 1.2
		case time.Monday, time.Thursday:
			return 0.9
		default: // Tue, Wed
			return 0.8
		}
	}
	switch wd {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return 1.1
	default: // Fri-Sun
		return 0.9
	}
}

// dayRow computes one property-night. RevPAR is derived only after every
// ADR adjustment (event lift, demand re-pricing, noise) so the stored row
// satisfies revpar = adr * occupancy_rate by construction.
func (g *dailyGenerator) dayRow(prop Property, b baseline, day time.Time) DailyPerformance {
	seasonal := seasonalMultiplier(day, prop.Region)
	dow := dayOfWeekMultiplier(day, prop.PropertyType)
	eventDemand, eventADR := g.events.lifts(prop.MarketID, day)

	occupancy := b.occupancy * seasonal * dow * (1 + eventDemand)
	occupancy *= g.faker.Normal(1.0, 0.08)

	// Hard floor and ceiling: the model never sells out or empties fully.
	if occupancy < 0.15 {
		occupancy = 0.15
	} else if occupancy > 0.95 {
		occupancy = 0.95
	}

	roomsSold := int(occupancy * float64(prop.RoomCount))
	actualOcc := float64(roomsSold) / float64(prop.RoomCount)

	adr := b.adr * seasonal * (1 + eventADR)
	// Demand-based re-pricing.
	if actualOcc > 0.85 {
		adr *= 1.1
	} else if actualOcc < 0.50 {
		adr *= 0.9
	}
	adr *= g.faker.Normal(1.0, 0.05)

	adr = round2(adr)
	actualOcc = round4(actualOcc)

	revenueRooms := round2(float64(roomsSold) * adr)
	revpar := round2(adr * actualOcc)

	var revenueFB, revenueOther float64
	if (prop.PropertyType == "Resort" || prop.PropertyType == "Urban") &&
		(prop.Brand == "Wyndham" || prop.Brand == "Ramada") {
		revenueFB = round2(revenueRooms * g.faker.Float64(0.15, 0.25))
	}
	if prop.PropertyType == "Airport" {
		revenueOther = round2(revenueRooms * g.faker.Float64(0.05, 0.12))
	}
	revenueTotal := round2(revenueRooms + revenueFB + revenueOther)

	var avgLOS float64
	if brandProfiles[prop.Brand].BusinessMix > 0.6 {
		avgLOS = g.faker.Float64(1.8, 3.2)
	} else {
		avgLOS = g.faker.Float64(2.1, 4.5)
	}

	walkIn := g.faker.Float64(0.02, 0.08)
	if prop.PropertyType == "Highway" {
		walkIn = g.faker.Float64(0.05, 0.15)
	}

	channelMix, segmentMix := mixFor(prop.Brand)

	return DailyPerformance{
		PropertyID:        prop.PropertyID,
		BusinessDate:      day,
		RoomsAvailable:    prop.RoomCount,
		RoomsSold:         roomsSold,
		OccupancyRate:     actualOcc,
		ADR:               adr,
		RevPAR:            revpar,
		RevenueRooms:      revenueRooms,
		RevenueFB:         revenueFB,
		RevenueOther:      revenueOther,
		RevenueTotal:      revenueTotal,
		AvgLengthOfStay:   avgLOS,
		BookingChannelMix: channelMix,
		MarketSegmentMix:  segmentMix,
		WalkInRate:        round4(walkIn),
		NoShowRate:        round4(g.faker.Float64(0.03, 0.12)),
		CancellationRate:  round4(g.faker.Float64(0.08, 0.18)),
	}
}

// mixFor returns the JSON channel and segment mixes for a brand tier.
func mixFor(brand string) (channelMix, segmentMix string) {
	var channels, segments map[string]float64
	switch brand {
	case "Wingate", "Wyndham":
		channels = map[string]float64{"direct": 0.55, "ota": 0.30, "gds": 0.15}
		segments = map[string]float64{"business": 0.65, "leisure": 0.25, "group": 0.10}
	case "Super 8", "Travelodge":
		channels = map[string]float64{"direct": 0.25, "ota": 0.65, "voice": 0.10}
		segments = map[string]float64{"leisure": 0.70, "business": 0.20, "extended_stay": 0.10}
	default:
		channels = map[string]float64{"direct": 0.40, "ota": 0.45, "gds": 0.10, "voice": 0.05}
		segments = map[string]float64{"business": 0.50, "leisure": 0.40, "group": 0.10}
	}
	c, _ := json.Marshal(channels)
	s, _ := json.Marshal(segments)
	return string(c), string(s)
}

func (g *dailyGenerator) run(ctx context.Context, pool *pgxpool.Pool) error {
	days := g.params.HorizonDays()
	total := int64(len(g.props)) * int64(days)
	logging.Info().Int64("rows", total).Msg("Generating daily performance")

	if err := truncate(ctx, pool, "daily_performance"); err != nil {
		return err
	}

	sink := db.NewBatchSink(pool, "daily_performance", dailyColumns, g.params.BatchSize)
	progress := datagen.NewProgressReporter("daily_performance", total, 100000)

	for _, prop := range g.props {
		b := g.baseline(prop)
		for day := g.params.StartDate; !day.After(g.params.EndDate); day = day.AddDate(0, 0, 1) {
			row := g.dayRow(prop, b, day)
			if err := sink.Append(ctx, row.sqlTuple()); err != nil {
				return err
			}
		}
		progress.Update(int64(days))
	}

	if err := sink.Close(ctx); err != nil {
		return err
	}
	progress.Done()
	return nil
}
