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
	"testing"
	"time"

	"github.com/hotelops/hotelgen/internal/datagen"
)

func TestEventProbabilityByTier(t *testing.T) {
	if eventProbability("Primary") <= eventProbability("Secondary") {
		t.Error("Primary markets should see more events than Secondary")
	}
	if eventProbability("Secondary") <= eventProbability("Tertiary") {
		t.Error("Secondary markets should see more events than Tertiary")
	}
}

func TestGenerateEvents(t *testing.T) {
	p := testParams()
	f := datagen.NewFakerWithSeed(42)
	markets := []market{
		{ID: "NEWYORK_Primary", City: "New York", Region: "Northeast", Tier: "Primary"},
		{ID: "WORCESTER_Tertiary", City: "Worcester", Region: "Northeast", Tier: "Tertiary"},
	}

	events := generateEvents(p, markets, f)
	if len(events) == 0 {
		t.Fatal("No events generated over a three-year horizon")
	}

	ids := make(map[string]bool)
	byMarket := make(map[string]int)
	for _, e := range events {
		if ids[e.EventID] {
			t.Errorf("Duplicate event ID %s", e.EventID)
		}
		ids[e.EventID] = true
		byMarket[e.MarketID]++

		if e.EventDate.Before(p.StartDate) || e.EventDate.After(p.EndDate) {
			t.Errorf("Event %s dated %v outside horizon", e.EventID, e.EventDate)
		}
		if e.EndDate != nil && e.EndDate.Before(e.EventDate) {
			t.Errorf("Event %s ends before it starts", e.EventID)
		}
		if e.EventName == "" {
			t.Errorf("Event %s has no name", e.EventID)
		}

		// ADR lift trails demand lift at a fixed ratio
		want := round2(e.DemandLiftPct * 0.8)
		if e.ADRLiftPct != want {
			t.Errorf("Event %s: adr lift %.2f, expected %.2f", e.EventID, e.ADRLiftPct, want)
		}
	}

	// Over ~156 weekly draws the tier probabilities should separate
	if byMarket["NEWYORK_Primary"] <= byMarket["WORCESTER_Tertiary"] {
		t.Errorf("Primary market should host more events: primary %d, tertiary %d",
			byMarket["NEWYORK_Primary"], byMarket["WORCESTER_Tertiary"])
	}
}

func TestBuildEventIndexExpandsRange(t *testing.T) {
	start, _ := time.Parse(time.DateOnly, "2022-03-07")
	end := start.AddDate(0, 0, 2)
	events := []MarketEvent{
		{
			EventID:       "EVT_00001",
			MarketID:      "BOSTON_Primary",
			EventDate:     start,
			EndDate:       &end,
			EventType:     "Conference",
			DemandLiftPct: 15,
			ADRLiftPct:    12,
		},
	}

	idx := buildEventIndex(events)

	// Active on all three days, inactive before and after
	for i := 0; i < 3; i++ {
		demand, adr := idx.lifts("BOSTON_Primary", start.AddDate(0, 0, i))
		if demand != 0.15 {
			t.Errorf("Day %d: demand lift %.4f, expected 0.15", i, demand)
		}
		if adr != 0.12 {
			t.Errorf("Day %d: adr lift %.4f, expected 0.12", i, adr)
		}
	}
	if d, _ := idx.lifts("BOSTON_Primary", start.AddDate(0, 0, -1)); d != 0 {
		t.Error("Event active before its start date")
	}
	if d, _ := idx.lifts("BOSTON_Primary", start.AddDate(0, 0, 3)); d != 0 {
		t.Error("Event active after its end date")
	}
	if d, _ := idx.lifts("CHICAGO_Primary", start); d != 0 {
		t.Error("Event leaked into another market")
	}
}

func TestBuildEventIndexSingleDay(t *testing.T) {
	day, _ := time.Parse(time.DateOnly, "2022-06-01")
	events := []MarketEvent{
		{EventID: "EVT_00001", MarketID: "MIAMI_Primary", EventDate: day, DemandLiftPct: 25, ADRLiftPct: 20},
	}

	idx := buildEventIndex(events)
	if d, _ := idx.lifts("MIAMI_Primary", day); d != 0.25 {
		t.Errorf("Expected demand lift 0.25, got %.4f", d)
	}
	if d, _ := idx.lifts("MIAMI_Primary", day.AddDate(0, 0, 1)); d != 0 {
		t.Error("One-day event active on following day")
	}
}

func TestEventLiftsSum(t *testing.T) {
	day, _ := time.Parse(time.DateOnly, "2022-06-01")
	events := []MarketEvent{
		{EventID: "EVT_00001", MarketID: "DENVER_Primary", EventDate: day, DemandLiftPct: 15, ADRLiftPct: 12},
		{EventID: "EVT_00002", MarketID: "DENVER_Primary", EventDate: day, DemandLiftPct: -10, ADRLiftPct: -8},
	}

	idx := buildEventIndex(events)
	demand, adr := idx.lifts("DENVER_Primary", day)
	if !almostEqual(demand, 0.05, 1e-9) {
		t.Errorf("Expected summed demand lift 0.05, got %.4f", demand)
	}
	if !almostEqual(adr, 0.04, 1e-9) {
		t.Errorf("Expected summed adr lift 0.04, got %.4f", adr)
	}
}

func almostEqual(a, b, tol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
