package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svodka-dev/svodka/internal/aggregate"
	"github.com/svodka-dev/svodka/internal/config"
	"github.com/svodka-dev/svodka/internal/importer"
)

func newSavingsCommand(configPath *string) *cobra.Command {
	var month string
	var limit int64

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Compute round-up savings for a month",
		Long: "Computes the savings-jar amount: the change left over from rounding\n" +
			"each debit payment up to the next multiple of the limit (10, 50 or 100).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			txns, err := importer.DefaultRegistry().LoadFile(cfg.OperationsFile, cfg.ExportFormat)
			if err != nil {
				return err
			}

			records := make([]aggregate.SavingsRecord, 0, len(txns))
			for _, t := range txns {
				records = append(records, aggregate.SavingsRecord{
					Status:        t.Status,
					Date:          t.OpDate.Format("2006-01-02"),
					PaymentAmount: t.PaymentAmount,
				})
			}

			total, err := aggregate.RoundUpSavings(month, records, limit)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", total.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", `month to compute, "YYYY-MM" (required)`)
	_ = cmd.MarkFlagRequired("month")
	cmd.Flags().Int64Var(&limit, "limit", 50, "round-up multiple (10, 50 or 100)")

	return cmd
}
