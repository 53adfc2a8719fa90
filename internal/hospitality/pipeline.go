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
	"github.com/hotelops/hotelgen/internal/logging"
)

// Params is the immutable configuration for one generation run. Every stage
// receives it explicitly; there is no shared mutable state between stages
// beyond the persisted tables.
type Params struct {
	StartDate         time.Time
	EndDate           time.Time
	PropertyCount     int
	Brands            []string
	Regions           []string
	Countries         []string
	BatchSize         int
	TransactionSample int
}

// HorizonDays returns the number of business dates in the horizon,
// inclusive of both endpoints.
func (p Params) HorizonDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

func (p Params) validate() error {
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			p.EndDate.Format(time.DateOnly), p.StartDate.Format(time.DateOnly))
	}
	if p.PropertyCount < 1 {
		return fmt.Errorf("property count must be at least 1")
	}
	if len(p.Brands) == 0 {
		return fmt.Errorf("at least one brand is required")
	}
	for _, b := range p.Brands {
		if _, ok := brandProfiles[b]; !ok {
			return fmt.Errorf("unknown brand: %s", b)
		}
	}
	if len(p.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}
	for _, r := range p.Regions {
		if _, ok := regionProfiles[r]; !ok {
			return fmt.Errorf("unknown region: %s", r)
		}
		if len(citiesByRegion[r]) == 0 {
			return fmt.Errorf("no cities configured for region: %s", r)
		}
	}
	if p.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1")
	}
	return nil
}

// Pipeline runs the generator stages in dependency order. Each stage owns
// exactly one output table and loads it as a complete overwrite, so a
// failed run is recovered by rerunning.
type Pipeline struct {
	params Params
	faker  *datagen.Faker
}

// NewPipeline validates the run parameters against the reference data and
// returns a pipeline. Validation failures here are fatal: nothing is
// generated from a malformed configuration.
func NewPipeline(params Params, faker *datagen.Faker) (*Pipeline, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("invalid generation parameters: %w", err)
	}
	return &Pipeline{params: params, faker: faker}, nil
}

// Run executes all five stages followed by the RevPAR consistency repair
// pass.
func (p *Pipeline) Run(ctx context.Context, pool *pgxpool.Pool) error {
	logging.Info().
		Int("properties", p.params.PropertyCount).
		Int("days", p.params.HorizonDays()).
		Msg("Starting generation")

	props, err := generateProperties(p.params, p.faker)
	if err != nil {
		return fmt.Errorf("property generation failed: %w", err)
	}
	if err := writeProperties(ctx, pool, props, p.params.BatchSize); err != nil {
		return err
	}

	events := generateEvents(p.params, marketsFrom(props), p.faker)
	if err := writeEvents(ctx, pool, events, p.params.BatchSize); err != nil {
		return err
	}

	daily := &dailyGenerator{
		params: p.params,
		faker:  p.faker,
		props:  props,
		events: buildEventIndex(events),
	}
	if err := daily.run(ctx, pool); err != nil {
		return fmt.Errorf("daily performance generation failed: %w", err)
	}

	competitive := &competitiveGenerator{params: p.params, faker: p.faker}
	if err := competitive.run(ctx, pool); err != nil {
		return fmt.Errorf("competitive intelligence generation failed: %w", err)
	}

	transactions := &transactionGenerator{params: p.params, faker: p.faker}
	if err := transactions.run(ctx, pool); err != nil {
		return fmt.Errorf("guest transaction generation failed: %w", err)
	}

	repaired, err := RepairRevPAR(ctx, pool)
	if err != nil {
		return fmt.Errorf("revpar repair pass failed: %w", err)
	}
	logging.Info().Int64("rows_repaired", repaired).Msg("RevPAR repair pass complete")

	return nil
}

// truncate empties a stage's output table before reload.
func truncate(ctx context.Context, pool *pgxpool.Pool, table string) error {
	if _, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s CASCADE", table)); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}
	return nil
}
