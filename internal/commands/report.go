package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/svodka-dev/svodka/internal/config"
	"github.com/svodka-dev/svodka/internal/filter"
	"github.com/svodka-dev/svodka/internal/importer"
	"github.com/svodka-dev/svodka/internal/logging"
	"github.com/svodka-dev/svodka/internal/model"
	"github.com/svodka-dev/svodka/internal/report"
	"github.com/svodka-dev/svodka/internal/view"
)

// reportOpName names the category filter in generated report files.
const reportOpName = "filter_by_category"

func newReportCommand(configPath *string) *cobra.Command {
	var category string
	var date string
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a 90-day category report as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logging.New()

			var asOf time.Time
			if date != "" {
				asOf, err = time.Parse(view.QueryTimeFormat, date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}

			reg := importer.DefaultRegistry()
			compute := func() ([]model.Transaction, error) {
				txns, err := reg.LoadFile(cfg.OperationsFile, cfg.ExportFormat)
				if err != nil {
					return nil, err
				}
				return filter.ByCategory(txns, category, asOf), nil
			}

			path := out
			if path == "" {
				path = report.DefaultPath(cfg.ReportsDir, reportOpName, time.Now())
			}

			txns, err := report.RunToFile(compute, path)
			if err != nil {
				return err
			}

			log.Info().Str("category", category).Str("path", path).Int("rows", len(txns)).Msg("report written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(txns), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "transaction category to report on (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&date, "date", "", `end of the 90-day window, "YYYY-MM-DD HH:MM:SS" (default: now)`)
	cmd.Flags().StringVar(&out, "out", "", "report file path (default: timestamped file in the reports dir)")

	return cmd
}
