package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelops/hotelgen/internal/config"
	"github.com/hotelops/hotelgen/internal/datagen"
	"github.com/hotelops/hotelgen/internal/db"
	"github.com/hotelops/hotelgen/internal/hospitality"
	"github.com/hotelops/hotelgen/internal/logging"
)

var (
	initStartDate         string
	initEndDate           string
	initPropertyCount     int
	initSeed              uint64
	initBatchSize         int
	initTransactionSample int
	initDropExisting      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a database with the hospitality dataset",
	Long: `Initialize a PostgreSQL database with the generated hospitality
dataset: create the schema, run the five generator stages in dependency
order, run the RevPAR consistency repair pass, and record run metadata.

Example:
  hotelgen init --property-count 900 --seed 42 --connection "postgres://..."`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initStartDate, "start-date", "",
		"first business date (YYYY-MM-DD)")
	initCmd.Flags().StringVar(&initEndDate, "end-date", "",
		"last business date (YYYY-MM-DD, inclusive)")
	initCmd.Flags().IntVar(&initPropertyCount, "property-count", 0,
		"number of properties to generate")
	initCmd.Flags().Uint64Var(&initSeed, "seed", 0,
		"random seed for reproducible runs (unset: config value; config 0: time-based)")
	initCmd.Flags().IntVar(&initBatchSize, "batch-size", 0,
		"rows per multi-row INSERT batch")
	initCmd.Flags().IntVar(&initTransactionSample, "transaction-sample", 0,
		"property-nights sampled for guest transactions")
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop existing schema before initialization")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if initStartDate != "" {
		cfg.Generate.StartDate = initStartDate
	}
	if initEndDate != "" {
		cfg.Generate.EndDate = initEndDate
	}
	if initPropertyCount > 0 {
		cfg.Generate.PropertyCount = initPropertyCount
	}
	if initSeed > 0 {
		cfg.Generate.Seed = initSeed
	}
	if initBatchSize > 0 {
		cfg.Generate.BatchSize = initBatchSize
	}
	if initTransactionSample > 0 {
		cfg.Generate.TransactionSample = initTransactionSample
	}
	if initDropExisting {
		cfg.Generate.DropExisting = true
	}

	// Validate configuration
	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	faker := newFaker(cfg)
	start, end := cfg.Horizon()

	logging.Info().
		Str("start_date", cfg.Generate.StartDate).
		Str("end_date", cfg.Generate.EndDate).
		Int("property_count", cfg.Generate.PropertyCount).
		Uint64("seed", cfg.Generate.Seed).
		Msg("Initializing database")

	// Connect to database
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Drop existing schema if requested
	if cfg.Generate.DropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := hospitality.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	// Create schema
	logging.Info().Msg("Creating schema")
	if err := hospitality.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Run the generator pipeline
	pipeline, err := hospitality.NewPipeline(hospitality.Params{
		StartDate:         start,
		EndDate:           end,
		PropertyCount:     cfg.Generate.PropertyCount,
		Brands:            cfg.Generate.Brands,
		Regions:           cfg.Generate.Regions,
		Countries:         cfg.Generate.Countries,
		BatchSize:         cfg.Generate.BatchSize,
		TransactionSample: cfg.Generate.TransactionSample,
	}, faker)
	if err != nil {
		return err
	}
	if err := pipeline.Run(ctx, pool); err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}

	// Save metadata
	err = db.SaveMetadata(ctx, pool, db.RunInfo{
		Seed:          cfg.Generate.Seed,
		PropertyCount: cfg.Generate.PropertyCount,
		StartDate:     cfg.Generate.StartDate,
		EndDate:       cfg.Generate.EndDate,
	})
	if err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Info().
		Int("property_count", cfg.Generate.PropertyCount).
		Msg("Database initialization complete")

	return nil
}

// newFaker builds the run's random source. Seed 0 means a fresh
// time-based seed, anything else is reproducible.
func newFaker(cfg *config.Config) *datagen.Faker {
	if cfg.Generate.Seed == 0 {
		return datagen.NewFaker()
	}
	return datagen.NewFakerWithSeed(cfg.Generate.Seed)
}
