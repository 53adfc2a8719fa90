//-------------------------------------------------------------------------
//
// hotelgen - Hospitality Data Generator
//
// Copyright (c) 2025 - 2026, Hotelops, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for hotelgen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hotelops/hotelgen/internal/config"
	"github.com/hotelops/hotelgen/internal/logging"
	"github.com/hotelops/hotelgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "hotelgen",
		Short: "Synthetic hospitality revenue-management data generator",
		Long: `hotelgen is a CLI tool that connects to a PostgreSQL database and
populates it with a synthetic hospitality revenue-management dataset:
a hotel portfolio, a market event calendar, multi-year daily performance,
competitive benchmarks, and guest transactions.

The generated data obeys the core domain identities (RevPAR equals
ADR times occupancy, competitive indices center on 100) and has a
realistic statistical shape: seasonality, weekday effects, brand tiers,
regional multipliers, and event-driven demand shocks. Runs are
reproducible when a seed is configured.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./hotelgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tablesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Describe the generated tables",
	Long: `List the output tables produced by a generation run, in the order
the generator stages load them. Each stage owns exactly one table and
loads it as a complete overwrite.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Output tables (load order):")
		cmd.Println()
		cmd.Println("  properties               - hotel portfolio: brand, region, market, rooms, geography")
		cmd.Println("  market_events            - demand-shock calendar keyed by market and date")
		cmd.Println("  daily_performance        - one row per property-night: occupancy, ADR, RevPAR, revenue")
		cmd.Println("  competitive_intelligence - market benchmarks and indices per property-night")
		cmd.Println("  guest_transactions       - sampled booking records consistent with daily pricing")
		cmd.Println()
		cmd.Println("Run metadata is recorded in hotelgen_metadata.")
	},
}
