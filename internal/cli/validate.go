package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/hotelops/hotelgen/internal/db"
	"github.com/hotelops/hotelgen/internal/hospitality"
	"github.com/hotelops/hotelgen/internal/logging"
)

var validateRepair bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an initialized database for consistency violations",
	Long: `Run the consistency and statistical-shape checks against an
initialized database: occupancy bounds, RevPAR identity, revenue
component sums, row coverage, room ranges, seasonality, and competitive
index centering.

With --repair, the RevPAR consistency repair pass is rerun first. The
pass is idempotent; on a consistent table it touches nothing.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateRepair, "repair", false,
		"repair inconsistent revpar values before validating")
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if validateRepair {
		repaired, err := hospitality.RepairRevPAR(ctx, pool)
		if err != nil {
			return err
		}
		logging.Info().Int64("rows_repaired", repaired).Msg("RevPAR repair pass complete")
	}

	results, err := hospitality.Validate(ctx, pool)
	if err != nil {
		return err
	}

	if r, err := checkRecordedPropertyCount(ctx, pool); err != nil {
		logging.Warn().Err(err).Msg("Skipping metadata check")
	} else {
		results = append(results, r)
	}

	var failed int
	for _, r := range results {
		if r.Passed {
			logging.Info().Str("check", r.Name).Str("detail", r.Detail).Msg("PASS")
		} else {
			logging.Error().Str("check", r.Name).Str("detail", r.Detail).Msg("FAIL")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d of %d checks", failed, len(results))
	}
	logging.Info().Int("checks", len(results)).Msg("All validation checks passed")
	return nil
}

// checkRecordedPropertyCount compares the properties table against the
// count the init run recorded in metadata.
func checkRecordedPropertyCount(ctx context.Context, pool *pgxpool.Pool) (hospitality.CheckResult, error) {
	recorded, err := db.GetMetadataValue(ctx, pool, "property_count")
	if err != nil {
		return hospitality.CheckResult{}, fmt.Errorf("no recorded property count: %w", err)
	}
	want, err := strconv.Atoi(recorded)
	if err != nil {
		return hospitality.CheckResult{}, fmt.Errorf("bad recorded property count %q: %w", recorded, err)
	}

	var got int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM properties").Scan(&got); err != nil {
		return hospitality.CheckResult{}, fmt.Errorf("failed to count properties: %w", err)
	}

	return hospitality.CheckResult{
		Name:   "recorded_property_count",
		Passed: got == want,
		Detail: fmt.Sprintf("%d properties, run recorded %d", got, want),
	}, nil
}
