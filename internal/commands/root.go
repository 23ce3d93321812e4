package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svodka-dev/svodka/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "svodka",
		Short:   "Personal finance dashboard over bank exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "svodka.yaml", "path to the project config")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDashboardCommand(&configPath))
	rootCmd.AddCommand(newReportCommand(&configPath))
	rootCmd.AddCommand(newSavingsCommand(&configPath))

	return rootCmd
}
