package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/svodka-dev/svodka/internal/config"
)

// exampleSettings seeds a fresh project's user_settings.json.
const exampleSettings = `{
  "user_stocks": ["AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"],
  "user_currencies": ["USD", "EUR", "CHF", "GBP", "JPY", "CAD", "CNY"]
}
`

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new svodka project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	for _, d := range []string{"data", filepath.Join("data", "reports")} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(dir)
	if err := config.Save(filepath.Join(dir, "svodka.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.WriteFile(cfg.UserSettingsFile, []byte(exampleSettings), 0o644); err != nil {
		return fmt.Errorf("writing user settings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized svodka project at %s\n", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Put your bank export at %s\n", cfg.OperationsFile)
	return nil
}
