package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(g *globals) *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(repoDir, g.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			view := p.session.ListView()
			if len(view.Transactions) == 0 {
				fmt.Fprintln(out, "No transactions.")
				return nil
			}
			renderTransactions(out, view.Transactions, p.cfg.Currency.Code)
			fmt.Fprintf(out, "Balance: %s\n", formatBalance(p.ledger.Total(), p.cfg.Currency.Code))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}
