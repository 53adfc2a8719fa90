//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package hospitality implements the synthetic hospitality revenue
// management dataset: a property portfolio, a market event calendar, daily
// performance, competitive benchmarks, and guest transactions.
package hospitality

import (
	"fmt"
	"math"
	"time"

	"github.com/hotelops/hotelgen/internal/db"
)

// Property is one hotel in the generated portfolio. Properties are created
// once per run and never mutated afterward.
type Property struct {
	PropertyID    string
	PropertyName  string
	Brand         string
	Region        string
	MarketTier    string
	PropertyType  string
	RoomCount     int
	OwnershipType string
	OpenDate      time.Time
	City          string
	StateProvince string
	Country       string
	MarketID      string
	Latitude      float64
	Longitude     float64
}

// MarketEvent is a demand shock affecting every property in a market for
// one or more days.
type MarketEvent struct {
	EventID       string
	MarketID      string
	EventDate     time.Time
	EndDate       *time.Time
	EventName     string
	EventType     string
	ImpactRating  string
	DemandLiftPct float64
	ADRLiftPct    float64
}

// DailyPerformance is one property-night of realized performance.
type DailyPerformance struct {
	PropertyID        string
	BusinessDate      time.Time
	RoomsAvailable    int
	RoomsSold         int
	OccupancyRate     float64
	ADR               float64
	RevPAR            float64
	RevenueRooms      float64
	RevenueFB         float64
	RevenueOther      float64
	RevenueTotal      float64
	AvgLengthOfStay   float64
	BookingChannelMix string
	MarketSegmentMix  string
	WalkInRate        float64
	NoShowRate        float64
	CancellationRate  float64
}

// CompetitiveIntelligence mirrors a shared market-level benchmark row onto
// each subject property in the market.
type CompetitiveIntelligence struct {
	MarketID         string
	BusinessDate     time.Time
	PropertyID       string
	MarketOccupancy  float64
	MarketADR        float64
	MarketRevPAR     float64
	PenetrationIndex float64
	ADRIndex         float64
	RevPARIndex      float64
	MarketRoomNights int64
	FairShareRooms   int64
}

// GuestTransaction is one booking covering one or more rooms.
type GuestTransaction struct {
	TransactionID      string
	PropertyID         string
	GuestID            string
	BusinessDate       time.Time
	DepartureDate      time.Time
	LengthOfStay       int
	RoomType           string
	RateCode           string
	RoomRevenue        float64
	TotalRevenue       float64
	BookingChannel     string
	MarketSegment      string
	BookingDate        time.Time
	AdvanceBookingDays int
	GuestType          string
	CancellationDate   *time.Time
	NoShow             bool
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func sqlStr(s string) string {
	return "'" + db.EscapeSingleQuote(s) + "'"
}

func sqlDate(t time.Time) string {
	return "'" + t.Format(time.DateOnly) + "'"
}

func sqlDateNull(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return sqlDate(*t)
}

func sqlBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (p Property) sqlTuple() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s, %s, %d, %s, %s, %s, %s, %s, %s, %.6f, %.6f)",
		sqlStr(p.PropertyID), sqlStr(p.PropertyName), sqlStr(p.Brand),
		sqlStr(p.Region), sqlStr(p.MarketTier), sqlStr(p.PropertyType),
		p.RoomCount, sqlStr(p.OwnershipType), sqlDate(p.OpenDate),
		sqlStr(p.City), sqlStr(p.StateProvince), sqlStr(p.Country),
		sqlStr(p.MarketID), p.Latitude, p.Longitude)
}

func (e MarketEvent) sqlTuple() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s, %s, %s, %.2f, %.2f)",
		sqlStr(e.EventID), sqlStr(e.MarketID), sqlDate(e.EventDate),
		sqlDateNull(e.EndDate), sqlStr(e.EventName), sqlStr(e.EventType),
		sqlStr(e.ImpactRating), e.DemandLiftPct, e.ADRLiftPct)
}

func (d DailyPerformance) sqlTuple() string {
	return fmt.Sprintf("(%s, %s, %d, %d, %.4f, %.2f, %.2f, %.2f, %.2f, %.2f, %.2f, %.1f, %s, %s, %.4f, %.4f, %.4f)",
		sqlStr(d.PropertyID), sqlDate(d.BusinessDate),
		d.RoomsAvailable, d.RoomsSold, d.OccupancyRate,
		d.ADR, d.RevPAR, d.RevenueRooms, d.RevenueFB, d.RevenueOther,
		d.RevenueTotal, d.AvgLengthOfStay,
		sqlStr(d.BookingChannelMix), sqlStr(d.MarketSegmentMix),
		d.WalkInRate, d.NoShowRate, d.CancellationRate)
}

func (c CompetitiveIntelligence) sqlTuple() string {
	return fmt.Sprintf("(%s, %s, %s, %.4f, %.2f, %.2f, %.2f, %.2f, %.2f, %d, %d)",
		sqlStr(c.MarketID), sqlDate(c.BusinessDate), sqlStr(c.PropertyID),
		c.MarketOccupancy, c.MarketADR, c.MarketRevPAR,
		c.PenetrationIndex, c.ADRIndex, c.RevPARIndex,
		c.MarketRoomNights, c.FairShareRooms)
}

func (t GuestTransaction) sqlTuple() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s, %d, %s, %s, %.2f, %.2f, %s, %s, %s, %d, %s, %s, %s)",
		sqlStr(t.TransactionID), sqlStr(t.PropertyID), sqlStr(t.GuestID),
		sqlDate(t.BusinessDate), sqlDate(t.DepartureDate), t.LengthOfStay,
		sqlStr(t.RoomType), sqlStr(t.RateCode), t.RoomRevenue, t.TotalRevenue,
		sqlStr(t.BookingChannel), sqlStr(t.MarketSegment),
		sqlDate(t.BookingDate), t.AdvanceBookingDays, sqlStr(t.GuestType),
		sqlDateNull(t.CancellationDate), sqlBool(t.NoShow))
}
