//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package hospitality

// Static domain reference data: brand and regional profiles, the city
// catalog, and the event type catalog. Pure lookup data with no logic.

// brandProfile describes one brand's pricing tier and physical footprint.
type brandProfile struct {
	ADRBase     float64
	RoomMin     int
	RoomMax     int
	BusinessMix float64
	Tier        string
	Code        string
}

// Brands ordered economy to upscale.
var brandProfiles = map[string]brandProfile{
	"Super 8":        {ADRBase: 85, RoomMin: 60, RoomMax: 120, BusinessMix: 0.30, Tier: "economy", Code: "SUP8"},
	"Travelodge":     {ADRBase: 90, RoomMin: 70, RoomMax: 140, BusinessMix: 0.35, Tier: "economy", Code: "TRAV"},
	"Days Inn":       {ADRBase: 95, RoomMin: 80, RoomMax: 160, BusinessMix: 0.40, Tier: "midscale_economy", Code: "DAYS"},
	"Howard Johnson": {ADRBase: 105, RoomMin: 90, RoomMax: 180, BusinessMix: 0.45, Tier: "midscale_economy", Code: "HOJO"},
	"Baymont":        {ADRBase: 115, RoomMin: 100, RoomMax: 200, BusinessMix: 0.50, Tier: "midscale", Code: "BAYMT"},
	"Ramada":         {ADRBase: 125, RoomMin: 110, RoomMax: 220, BusinessMix: 0.55, Tier: "midscale", Code: "RAMA"},
	"Wingate":        {ADRBase: 140, RoomMin: 120, RoomMax: 250, BusinessMix: 0.65, Tier: "upper_midscale", Code: "WING"},
	"Wyndham":        {ADRBase: 160, RoomMin: 150, RoomMax: 350, BusinessMix: 0.70, Tier: "upscale", Code: "WYND"},
}

// regionProfile describes one region's rate level and seasonal character.
type regionProfile struct {
	ADRMultiplier float64
	Seasonality   string // high, moderate, low
	Code          string
	Share         int // share of the default 900-property portfolio
}

var regionProfiles = map[string]regionProfile{
	"Northeast":      {ADRMultiplier: 1.25, Seasonality: "moderate", Code: "NE", Share: 140},
	"Southeast":      {ADRMultiplier: 1.10, Seasonality: "high", Code: "SE", Share: 160},
	"West":           {ADRMultiplier: 1.30, Seasonality: "moderate", Code: "W", Share: 130},
	"Southwest":      {ADRMultiplier: 1.15, Seasonality: "high", Code: "SW", Share: 110},
	"Midwest":        {ADRMultiplier: 1.00, Seasonality: "high", Code: "MW", Share: 120},
	"Central Canada": {ADRMultiplier: 0.95, Seasonality: "high", Code: "CC", Share: 80},
	"Eastern Canada": {ADRMultiplier: 1.05, Seasonality: "high", Code: "EC", Share: 80},
	"Western Canada": {ADRMultiplier: 1.20, Seasonality: "moderate", Code: "WC", Share: 80},
}

// cityInfo is one catalog entry: a city, its market tier, and the property
// archetype typically built there.
type cityInfo struct {
	City         string
	State        string
	Country      string
	MarketTier   string
	PropertyType string
}

var citiesByRegion = map[string][]cityInfo{
	"Northeast": {
		{"New York", "NY", "US", "Primary", "Urban"},
		{"Boston", "MA", "US", "Primary", "Urban"},
		{"Philadelphia", "PA", "US", "Primary", "Urban"},
		{"Newark", "NJ", "US", "Primary", "Airport"},
		{"Hartford", "CT", "US", "Secondary", "Urban"},
		{"Albany", "NY", "US", "Secondary", "Urban"},
		{"Syracuse", "NY", "US", "Secondary", "Suburban"},
		{"Worcester", "MA", "US", "Tertiary", "Suburban"},
		{"Waterbury", "CT", "US", "Tertiary", "Highway"},
	},
	"Southeast": {
		{"Atlanta", "GA", "US", "Primary", "Urban"},
		{"Miami", "FL", "US", "Primary", "Urban"},
		{"Orlando", "FL", "US", "Primary", "Resort"},
		{"Charlotte", "NC", "US", "Primary", "Urban"},
		{"Tampa", "FL", "US", "Secondary", "Urban"},
		{"Jacksonville", "FL", "US", "Secondary", "Urban"},
		{"Savannah", "GA", "US", "Secondary", "Resort"},
		{"Asheville", "NC", "US", "Tertiary", "Resort"},
		{"Gainesville", "FL", "US", "Tertiary", "Suburban"},
	},
	"Midwest": {
		{"Chicago", "IL", "US", "Primary", "Urban"},
		{"Detroit", "MI", "US", "Primary", "Urban"},
		{"Minneapolis", "MN", "US", "Primary", "Urban"},
		{"Milwaukee", "WI", "US", "Secondary", "Urban"},
		{"Indianapolis", "IN", "US", "Secondary", "Urban"},
		{"Columbus", "OH", "US", "Secondary", "Urban"},
		{"Grand Rapids", "MI", "US", "Tertiary", "Suburban"},
		{"Madison", "WI", "US", "Tertiary", "Suburban"},
	},
	"Southwest": {
		{"Las Vegas", "NV", "US", "Primary", "Resort"},
		{"Phoenix", "AZ", "US", "Primary", "Urban"},
		{"Denver", "CO", "US", "Primary", "Urban"},
		{"San Antonio", "TX", "US", "Primary", "Urban"},
		{"Albuquerque", "NM", "US", "Secondary", "Urban"},
		{"Tucson", "AZ", "US", "Secondary", "Urban"},
		{"Colorado Springs", "CO", "US", "Tertiary", "Suburban"},
		{"Santa Fe", "NM", "US", "Tertiary", "Resort"},
	},
	"West": {
		{"Los Angeles", "CA", "US", "Primary", "Urban"},
		{"San Francisco", "CA", "US", "Primary", "Urban"},
		{"Seattle", "WA", "US", "Primary", "Urban"},
		{"San Diego", "CA", "US", "Primary", "Resort"},
		{"Portland", "OR", "US", "Secondary", "Urban"},
		{"Sacramento", "CA", "US", "Secondary", "Urban"},
		{"Spokane", "WA", "US", "Tertiary", "Suburban"},
		{"Eugene", "OR", "US", "Tertiary", "Suburban"},
	},
	"Central Canada": {
		{"Toronto", "ON", "Canada", "Primary", "Urban"},
		{"Ottawa", "ON", "Canada", "Primary", "Urban"},
		{"Winnipeg", "MB", "Canada", "Secondary", "Urban"},
		{"London", "ON", "Canada", "Tertiary", "Suburban"},
		{"Thunder Bay", "ON", "Canada", "Tertiary", "Highway"},
	},
	"Eastern Canada": {
		{"Montreal", "QC", "Canada", "Primary", "Urban"},
		{"Quebec City", "QC", "Canada", "Secondary", "Urban"},
		{"Halifax", "NS", "Canada", "Secondary", "Urban"},
		{"Fredericton", "NB", "Canada", "Tertiary", "Suburban"},
	},
	"Western Canada": {
		{"Vancouver", "BC", "Canada", "Primary", "Urban"},
		{"Calgary", "AB", "Canada", "Primary", "Urban"},
		{"Edmonton", "AB", "Canada", "Secondary", "Urban"},
		{"Victoria", "BC", "Canada", "Tertiary", "Resort"},
		{"Saskatoon", "SK", "Canada", "Tertiary", "Suburban"},
	},
}

// Approximate coordinates for major cities; properties elsewhere get a
// regional fallback.
var cityCoords = map[string][2]float64{
	"New York":     {40.7128, -74.0060},
	"Boston":       {42.3601, -71.0589},
	"Philadelphia": {39.9526, -75.1652},
	"Atlanta":      {33.7490, -84.3880},
	"Miami":        {25.7617, -80.1918},
	"Chicago":      {41.8781, -87.6298},
	"Los Angeles":  {34.0522, -118.2437},
	"Toronto":      {43.6532, -79.3832},
	"Montreal":     {45.5017, -73.5673},
	"Vancouver":    {49.2827, -123.1207},
}

// eventType describes one kind of market demand shock. DemandLiftBase is
// the center of the demand lift distribution; negative for disruptive
// events.
type eventType struct {
	Name           string
	MaxDuration    int
	Impact         string
	DemandLiftBase float64
}

var eventTypes = []eventType{
	{Name: "Conference", MaxDuration: 3, Impact: "Medium", DemandLiftBase: 15},
	{Name: "Sports", MaxDuration: 1, Impact: "High", DemandLiftBase: 25},
	{Name: "Concert", MaxDuration: 1, Impact: "Medium", DemandLiftBase: 20},
	{Name: "Holiday", MaxDuration: 3, Impact: "High", DemandLiftBase: 30},
	{Name: "Weather", MaxDuration: 2, Impact: "Low", DemandLiftBase: -10},
	{Name: "Economic", MaxDuration: 30, Impact: "High", DemandLiftBase: -20},
}
