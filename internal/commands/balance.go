package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCommand(g *globals) *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the running balance over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(repoDir, g.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			series := p.ledger.RunningBalanceSeries()
			if len(series) == 0 {
				fmt.Fprintln(out, "No transactions.")
				return nil
			}
			renderBalance(out, p.ledger.OrderedByDateAscending(), series, p.cfg.Currency.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}
