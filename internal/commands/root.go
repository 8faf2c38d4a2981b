package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/buildinfo"
	"github.com/moneynotes-dev/moneynotes/internal/logging"
)

// globals carries state shared by every subcommand.
type globals struct {
	verbose bool
	log     zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:     "moneynotes",
		Short:   "Personal income and expense notes",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			g.log = logging.New(cmd.ErrOrStderr(), g.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(g),
		newListCommand(g),
		newAddCommand(g),
		newBalanceCommand(g),
		newChartCommand(g),
		newImportCommand(g),
		newCategoriesCommand(g),
		newDiceCommand(g),
		newCalcCommand(g),
		newConvertCommand(g),
	)

	return rootCmd
}
