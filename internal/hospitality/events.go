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
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelgen/internal/datagen"
	"github.com/hotelops/hotelgen/internal/db"
	"github.com/hotelops/hotelgen/internal/logging"
)

const eventColumns = "(event_id, market_id, event_date, end_date, event_name, " +
	"event_type, impact_rating, demand_lift_pct, adr_lift_pct)"

// market is one competitive set derived from the property population.
type market struct {
	ID     string
	City   string
	Region string
	Tier   string
}

// marketsFrom extracts the unique markets, sorted by ID for deterministic
// event sequencing.
func marketsFrom(props []Property) []market {
	seen := make(map[string]market)
	for _, p := range props {
		if _, ok := seen[p.MarketID]; !ok {
			seen[p.MarketID] = market{
				ID:     p.MarketID,
				City:   p.City,
				Region: p.Region,
				Tier:   p.MarketTier,
			}
		}
	}

	out := make([]market, 0, len(seen))
	for _, m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// eventProbability is the weekly chance of an event by market tier. Primary
// markets host more conferences, games, and festivals.
func eventProbability(tier string) float64 {
	switch tier {
	case "Primary":
		return 0.15
	case "Secondary":
		return 0.10
	default:
		return 0.05
	}
}

func eventName(typ, city string) string {
	switch typ {
	case "Conference":
		return city + " Business Summit"
	case "Sports":
		return city + " Championship Game"
	case "Concert":
		return city + " Music Festival"
	case "Holiday":
		return "Holiday Weekend"
	case "Weather":
		return "Severe Weather Event"
	default:
		return "Economic Disruption"
	}
}

// generateEvents walks the horizon in weekly steps for every market and
// probabilistically emits demand-shock events.
func generateEvents(p Params, markets []market, f *datagen.Faker) []MarketEvent {
	var events []MarketEvent
	counter := 1

	for _, m := range markets {
		prob := eventProbability(m.Tier)
		for day := p.StartDate; !day.After(p.EndDate); day = day.AddDate(0, 0, 7) {
			if f.Float64(0, 1) >= prob {
				continue
			}

			typ := datagen.Choose(f, eventTypes)
			duration := f.Int(1, typ.MaxDuration)
			var endDate *time.Time
			if duration > 1 {
				e := day.AddDate(0, 0, duration-1)
				endDate = &e
			}

			// Noise around the type's base lift; ADR lift trails demand.
			demandLift := round2(typ.DemandLiftBase + f.Float64(-5, 5))
			adrLift := round2(demandLift * 0.8)

			events = append(events, MarketEvent{
				EventID:       fmt.Sprintf("EVT_%05d", counter),
				MarketID:      m.ID,
				EventDate:     day,
				EndDate:       endDate,
				EventName:     eventName(typ.Name, m.City),
				EventType:     typ.Name,
				ImpactRating:  typ.Impact,
				DemandLiftPct: demandLift,
				ADRLiftPct:    adrLift,
			})
			counter++
		}
	}

	return events
}

// eventIndex maps (market, date) to the events active that day.
type eventIndex map[string][]*MarketEvent

func eventKey(marketID string, day time.Time) string {
	return marketID + "|" + day.Format(time.DateOnly)
}

// buildEventIndex expands each event across its active day range so a
// multi-day conference lifts every night it spans, not just the first.
func buildEventIndex(events []MarketEvent) eventIndex {
	idx := make(eventIndex)
	for i := range events {
		e := &events[i]
		last := e.EventDate
		if e.EndDate != nil {
			last = *e.EndDate
		}
		for day := e.EventDate; !day.After(last); day = day.AddDate(0, 0, 1) {
			key := eventKey(e.MarketID, day)
			idx[key] = append(idx[key], e)
		}
	}
	return idx
}

// lifts sums the demand and ADR lifts of all events active for the market
// on the given date, as fractions.
func (idx eventIndex) lifts(marketID string, day time.Time) (demand, adr float64) {
	for _, e := range idx[eventKey(marketID, day)] {
		demand += e.DemandLiftPct / 100
		adr += e.ADRLiftPct / 100
	}
	return demand, adr
}

func writeEvents(ctx context.Context, pool *pgxpool.Pool, events []MarketEvent, batchSize int) error {
	logging.Info().Int("count", len(events)).Msg("Writing market events")
	if err := truncate(ctx, pool, "market_events"); err != nil {
		return err
	}

	sink := db.NewBatchSink(pool, "market_events", eventColumns, batchSize)
	for _, e := range events {
		if err := sink.Append(ctx, e.sqlTuple()); err != nil {
			return err
		}
	}
	return sink.Close(ctx)
}
