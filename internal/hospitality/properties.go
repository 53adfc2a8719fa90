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
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelgen/internal/datagen"
	"github.com/hotelops/hotelgen/internal/db"
	"github.com/hotelops/hotelgen/internal/logging"
)

const propertyColumns = "(property_id, property_name, brand, region, market_tier, " +
	"property_type, room_count, ownership_type, open_date, city, state_province, " +
	"country, market_id, latitude, longitude)"

var propertyDescriptors = []string{"Inn", "Hotel", "Suites", "Lodge", "Airport", "Downtown", "Express"}

var ownershipTypes = []string{"Franchise", "Management Contract", "Corporate"}
var ownershipWeights = []float64{0.75, 0.20, 0.05}

// regionTargets distributes the configured property count across regions in
// proportion to each region's portfolio share, using largest-remainder
// rounding so the per-region counts always sum to the total exactly.
func regionTargets(p Params) map[string]int {
	totalShare := 0
	for _, r := range p.Regions {
		totalShare += regionProfiles[r].Share
	}

	targets := make(map[string]int, len(p.Regions))
	type frac struct {
		region string
		rem    float64
	}
	fracs := make([]frac, 0, len(p.Regions))
	assigned := 0

	for _, r := range p.Regions {
		exact := float64(p.PropertyCount) * float64(regionProfiles[r].Share) / float64(totalShare)
		base := int(exact)
		targets[r] = base
		assigned += base
		fracs = append(fracs, frac{region: r, rem: exact - float64(base)})
	}

	sort.SliceStable(fracs, func(i, j int) bool { return fracs[i].rem > fracs[j].rem })
	for i := 0; assigned < p.PropertyCount; i++ {
		targets[fracs[i%len(fracs)].region]++
		assigned++
	}

	return targets
}

// generateProperties produces the full property population. Each region
// receives exactly its target count; (city, brand) pairs are sampled
// uniformly within the region.
func generateProperties(p Params, f *datagen.Faker) ([]Property, error) {
	targets := regionTargets(p)
	properties := make([]Property, 0, p.PropertyCount)
	sequence := 1

	for _, region := range p.Regions {
		cities := citiesByRegion[region]
		regionCode := regionProfiles[region].Code

		for created := 0; created < targets[region]; created++ {
			city := datagen.Choose(f, cities)
			brand := datagen.Choose(f, p.Brands)
			profile, ok := brandProfiles[brand]
			if !ok {
				return nil, fmt.Errorf("unknown brand: %s", brand)
			}

			prop := Property{
				PropertyID:    fmt.Sprintf("WYN_%s_%s_%03d", profile.Code, regionCode, sequence),
				PropertyName:  propertyName(f, brand, city),
				Brand:         brand,
				Region:        region,
				MarketTier:    city.MarketTier,
				PropertyType:  city.PropertyType,
				RoomCount:     roomCount(f, profile),
				OwnershipType: datagen.ChooseWeighted(f, ownershipTypes, ownershipWeights),
				OpenDate:      openDate(f, p.EndDate),
				City:          city.City,
				StateProvince: city.State,
				Country:       city.Country,
				MarketID:      marketID(city.City, city.MarketTier),
			}
			prop.Latitude, prop.Longitude = coordinates(f, city.City)

			properties = append(properties, prop)
			sequence++
		}
	}

	return properties, nil
}

// roomCount draws a bimodal room count: 60% of properties come from the
// smaller half of the brand's range, 40% from the larger half, so the
// distribution skews small like a real portfolio.
func roomCount(f *datagen.Faker, profile brandProfile) int {
	mid := profile.RoomMin + (profile.RoomMax-profile.RoomMin)/2
	if f.Float64(0, 1) < 0.6 {
		return f.Int(profile.RoomMin, mid)
	}
	return f.Int(mid, profile.RoomMax)
}

func propertyName(f *datagen.Faker, brand string, city cityInfo) string {
	switch city.PropertyType {
	case "Airport":
		return fmt.Sprintf("%s %s Airport", brand, city.City)
	case "Resort":
		return fmt.Sprintf("%s %s Resort", brand, city.City)
	default:
		return fmt.Sprintf("%s %s %s", brand, city.City, datagen.Choose(f, propertyDescriptors))
	}
}

// openDate draws an exponential property age (mean 8 years, capped at 50)
// back from the horizon end.
func openDate(f *datagen.Faker, horizonEnd time.Time) time.Time {
	years := f.Exponential(8)
	if years > 50 {
		years = 50
	}
	return horizonEnd.AddDate(0, 0, -int(years*365))
}

// marketID groups properties into a competitive set: all brands in the same
// city and tier compete in one market.
func marketID(city, tier string) string {
	return strings.ToUpper(strings.ReplaceAll(city, " ", "")) + "_" + tier
}

func coordinates(f *datagen.Faker, city string) (float64, float64) {
	if base, ok := cityCoords[city]; ok {
		// Jitter so multiple properties in one city spread out.
		return base[0] + f.Float64(-0.1, 0.1), base[1] + f.Float64(-0.1, 0.1)
	}
	return 40.0 + f.Float64(-10, 10), -100.0 + f.Float64(-40, 40)
}

func writeProperties(ctx context.Context, pool *pgxpool.Pool, props []Property, batchSize int) error {
	logging.Info().Int("count", len(props)).Msg("Writing properties")
	if err := truncate(ctx, pool, "properties"); err != nil {
		return err
	}

	sink := db.NewBatchSink(pool, "properties", propertyColumns, batchSize)
	for _, prop := range props {
		if err := sink.Append(ctx, prop.sqlTuple()); err != nil {
			return err
		}
	}
	return sink.Close(ctx)
}
