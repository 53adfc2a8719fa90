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

func TestTransactionsPerNight(t *testing.T) {
	tests := []struct {
		roomsSold int
		want      int
	}{
		{6, 3},    // 6/1.8 = 3.3
		{1, 2},    // below floor
		{3, 2},    // 3/1.8 = 1.6, floored
		{9, 5},    // 9/1.8 = 5 at the small-property cap
		{18, 5},   // 18/1.8 = 10, capped at 5 for <= 20 rooms
		{21, 8},   // above 20 rooms the cap rises to 8
		{300, 8},  // large nights still capped
		{14, 5},   // 14/1.8 = 7.7, capped at 5
	}
	for _, tt := range tests {
		if got := transactionsPerNight(tt.roomsSold); got != tt.want {
			t.Errorf("transactionsPerNight(%d) = %d, want %d", tt.roomsSold, got, tt.want)
		}
	}
}

func TestRateCodeConditioning(t *testing.T) {
	f := datagen.NewFakerWithSeed(42)

	// Last-minute bookings only see BAR or Walk-in
	for i := 0; i < 200; i++ {
		code := rateCodeFor(f, 0, "Suburban")
		if code != "BAR" && code != "Walk-in" {
			t.Fatalf("Last-minute rate code %q", code)
		}
	}

	// Urban advance bookings never walk in
	for i := 0; i < 200; i++ {
		code := rateCodeFor(f, 14, "Urban")
		if code == "Walk-in" || code == "AARP" {
			t.Fatalf("Unexpected urban advance rate code %q", code)
		}
	}

	// Every emitted code has a configured multiplier
	for i := 0; i < 200; i++ {
		code := rateCodeFor(f, datagen.Choose(f, advanceDays), datagen.Choose(f,
			[]string{"Urban", "Airport", "Suburban", "Resort", "Highway"}))
		if _, ok := rateMultipliers[code]; !ok {
			t.Fatalf("Rate code %q has no multiplier", code)
		}
	}
}

func TestNightTransactions(t *testing.T) {
	day, _ := time.Parse(time.DateOnly, "2022-08-15")
	night := sampledNight{
		PropertyID:   "WYN_RAMA_SE_042",
		BusinessDate: day,
		RoomsSold:    60,
		ADR:          135.50,
		Brand:        "Ramada",
		PropertyType: "Urban",
	}
	f := datagen.NewFakerWithSeed(42)

	txns := nightTransactions(night, 1, 1, f)
	if len(txns) < 2 || len(txns) > 8 {
		t.Fatalf("Expected 2-8 transactions, got %d", len(txns))
	}

	for i, txn := range txns {
		if txn.PropertyID != night.PropertyID {
			t.Errorf("Transaction %d: wrong property %s", i, txn.PropertyID)
		}
		if !txn.BusinessDate.Equal(day) {
			t.Errorf("Transaction %d: wrong arrival %v", i, txn.BusinessDate)
		}

		// Date arithmetic identities
		wantDeparture := day.AddDate(0, 0, txn.LengthOfStay)
		if !txn.DepartureDate.Equal(wantDeparture) {
			t.Errorf("Transaction %d: departure %v, want arrival + %d nights",
				i, txn.DepartureDate, txn.LengthOfStay)
		}
		wantBooking := day.AddDate(0, 0, -txn.AdvanceBookingDays)
		if !txn.BookingDate.Equal(wantBooking) {
			t.Errorf("Transaction %d: booking date %v, want arrival - %d days",
				i, txn.BookingDate, txn.AdvanceBookingDays)
		}
		if txn.BookingDate.After(txn.BusinessDate) {
			t.Errorf("Transaction %d: booked after arrival", i)
		}

		// Revenue anchored on the night's realized ADR
		mult := rateMultipliers[txn.RateCode]
		lo := night.ADR * 0.85 * mult * float64(txn.LengthOfStay)
		hi := night.ADR * 1.15 * mult * float64(txn.LengthOfStay)
		if txn.RoomRevenue < lo-0.01 || txn.RoomRevenue > hi+0.01 {
			t.Errorf("Transaction %d: room revenue %v outside [%v, %v] for %s x %d nights",
				i, txn.RoomRevenue, lo, hi, txn.RateCode, txn.LengthOfStay)
		}
		if txn.TotalRevenue < txn.RoomRevenue-0.01 {
			t.Errorf("Transaction %d: total revenue %v below room revenue %v",
				i, txn.TotalRevenue, txn.RoomRevenue)
		}

		// Live stays only
		if txn.CancellationDate != nil {
			t.Errorf("Transaction %d: unexpected cancellation date", i)
		}
		if txn.NoShow {
			t.Errorf("Transaction %d: unexpected no-show", i)
		}
	}

	// Sequential IDs from the provided counters
	if txns[0].TransactionID != "TXN_0000000001" {
		t.Errorf("First transaction ID %s", txns[0].TransactionID)
	}
	if txns[0].GuestID != "GST_00000001" {
		t.Errorf("First guest ID %s", txns[0].GuestID)
	}
	if txns[1].TransactionID != "TXN_0000000002" {
		t.Errorf("Second transaction ID %s", txns[1].TransactionID)
	}
}

func TestMarketSegmentConditioning(t *testing.T) {
	f := datagen.NewFakerWithSeed(42)

	if got := marketSegmentFor(f, "CORP", 2, 200); got != "Business" {
		t.Errorf("CORP rate should map to Business, got %s", got)
	}
	if got := marketSegmentFor(f, "GOVT", 1, 100); got != "Business" {
		t.Errorf("GOVT rate should map to Business, got %s", got)
	}
	if got := marketSegmentFor(f, "BAR", 7, 300); got != "Extended Stay" {
		t.Errorf("Week-long stay should map to Extended Stay, got %s", got)
	}
	if got := marketSegmentFor(f, "BAR", 2, 450); got != "Leisure" {
		t.Errorf("High-value short stay should map to Leisure, got %s", got)
	}

	// Residual bucket draws from the weighted catalog
	for i := 0; i < 100; i++ {
		got := marketSegmentFor(f, "BAR", 2, 150)
		if got != "Leisure" && got != "Business" && got != "Group" {
			t.Fatalf("Unexpected residual segment %q", got)
		}
	}
}

func TestGuestTypeConditioning(t *testing.T) {
	f := datagen.NewFakerWithSeed(42)

	counts := map[string]map[string]int{
		"Direct":  {},
		"Expedia": {},
	}
	for i := 0; i < 2000; i++ {
		counts["Direct"][guestTypeFor(f, "Direct")]++
		counts["Expedia"][guestTypeFor(f, "Expedia")]++
	}

	// Direct bookers skew loyal, OTA bookers skew new
	if counts["Direct"]["Loyalty Member"] <= counts["Expedia"]["Loyalty Member"] {
		t.Error("Direct channel should produce more loyalty members than OTA")
	}
	if counts["Expedia"]["New"] <= counts["Direct"]["New"] {
		t.Error("OTA channel should produce more new guests than direct")
	}
}

func TestBookingChannelByBrand(t *testing.T) {
	f := datagen.NewFakerWithSeed(42)

	// Economy brands never book through the Corporate channel
	for i := 0; i < 500; i++ {
		ch := bookingChannelFor(f, "Super 8")
		if ch == "Corporate" {
			t.Fatal("Super 8 should not see Corporate channel bookings")
		}
	}

	// Upscale brands skew direct
	direct := 0
	for i := 0; i < 2000; i++ {
		if bookingChannelFor(f, "Wyndham") == "Direct" {
			direct++
		}
	}
	if direct < 700 {
		t.Errorf("Expected Wyndham direct share near 45%%, got %d of 2000", direct)
	}
}
