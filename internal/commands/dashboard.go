package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/svodka-dev/svodka/internal/config"
	"github.com/svodka-dev/svodka/internal/importer"
	"github.com/svodka-dev/svodka/internal/logging"
	"github.com/svodka-dev/svodka/internal/model"
	"github.com/svodka-dev/svodka/internal/rates"
	"github.com/svodka-dev/svodka/internal/view"
	"github.com/svodka-dev/svodka/internal/watchlist"
)

func newDashboardCommand(configPath *string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard summary for a query date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logging.New()

			watch, err := watchlist.Load(cfg.UserSettingsFile)
			if err != nil {
				return err
			}

			reg := importer.DefaultRegistry()
			source := view.SourceFunc(func() ([]model.Transaction, error) {
				return reg.LoadFile(cfg.OperationsFile, cfg.ExportFormat)
			})

			currency := rates.NewCurrencyClient(nil, cfg.Feeds.CurrencyBaseURL, config.APIKey(), log)
			stocks := rates.NewStockClient(nil, cfg.Feeds.StockBaseURL, log)

			svc := view.NewService(source, watch, currency, stocks, log)

			if date == "" {
				date = time.Now().Format(view.QueryTimeFormat)
			}
			resp := svc.Query(cmd.Context(), date)

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", `query timestamp "YYYY-MM-DD HH:MM:SS" (default: now)`)

	return cmd
}
