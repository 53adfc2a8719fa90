//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for hotelgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for hotelgen.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the data generation pipeline.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for the generation pipeline.
type GenerateConfig struct {
	// StartDate is the first business date of the horizon (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`

	// EndDate is the last business date of the horizon, inclusive.
	EndDate string `mapstructure:"end_date"`

	// PropertyCount is the total number of properties to generate,
	// distributed across the configured regions.
	PropertyCount int `mapstructure:"property_count"`

	// Seed seeds the random source. 0 means seed from the current time.
	Seed uint64 `mapstructure:"seed"`

	// BatchSize is the number of rows per batch insert.
	BatchSize int `mapstructure:"batch_size"`

	// TransactionSample is the number of property-nights sampled for
	// guest transaction generation.
	TransactionSample int `mapstructure:"transaction_sample"`

	// Brands is the set of brands to generate properties for.
	Brands []string `mapstructure:"brands"`

	// Regions is the set of regions to distribute properties across.
	Regions []string `mapstructure:"regions"`

	// Countries is the set of countries covered by the regions.
	Countries []string `mapstructure:"countries"`

	// DropExisting drops existing tables before initialization.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values. The defaults
// reproduce the reference dataset: 900 properties over three years.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			StartDate:         "2021-01-01",
			EndDate:           "2023-12-31",
			PropertyCount:     900,
			Seed:              42,
			BatchSize:         10000,
			TransactionSample: 50000,
			Brands: []string{
				"Days Inn", "Super 8", "Ramada", "Wyndham",
				"Baymont", "Travelodge", "Howard Johnson", "Wingate",
			},
			Regions: []string{
				"Northeast", "Southeast", "Midwest", "Southwest",
				"West", "Central Canada", "Eastern Canada", "Western Canada",
			},
			Countries:    []string{"US", "Canada"},
			DropExisting: false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./hotelgen.yaml
// 3. ~/.config/hotelgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("hotelgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "hotelgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateGenerate checks configuration required for data generation.
func (c *Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	start, err := time.Parse(time.DateOnly, c.Generate.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", c.Generate.StartDate, err)
	}
	end, err := time.Parse(time.DateOnly, c.Generate.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q: %w", c.Generate.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %s is before start_date %s",
			c.Generate.EndDate, c.Generate.StartDate)
	}
	if c.Generate.PropertyCount < 1 {
		return fmt.Errorf("property_count must be at least 1")
	}
	if c.Generate.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	if c.Generate.TransactionSample < 0 {
		return fmt.Errorf("transaction_sample must be non-negative")
	}
	if len(c.Generate.Brands) == 0 {
		return fmt.Errorf("at least one brand is required")
	}
	if len(c.Generate.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}
	return nil
}

// Horizon returns the parsed start and end dates. ValidateGenerate must
// have succeeded first.
func (c *Config) Horizon() (time.Time, time.Time) {
	start, _ := time.Parse(time.DateOnly, c.Generate.StartDate)
	end, _ := time.Parse(time.DateOnly, c.Generate.EndDate)
	return start, end
}
