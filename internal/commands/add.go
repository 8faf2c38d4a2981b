package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/activitylog"
)

func newAddCommand(g *globals) *cobra.Command {
	var repoDir string
	var category, amount, date, clock string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income (positive) or expense (negative) transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(repoDir, g.log)
			if err != nil {
				return err
			}

			s := p.session
			form := s.NavigateToAdd()
			form.Category = category
			form.Amount = amount
			if cmd.Flags().Changed("date") {
				form.Date = date
			}
			if cmd.Flags().Changed("time") {
				form.Time = clock
			}

			txn, err := s.Submit()
			if err != nil {
				return err
			}

			p.checkCategory(txn)

			if err := p.save(); err != nil {
				return fmt.Errorf("saving ledger: %w", err)
			}
			hash := p.commit(fmt.Sprintf("add: %s %d", txn.Category, txn.Amount))
			p.record([]activitylog.Entry{activitylog.ForTransaction(time.Now(), activitylog.ActionAdd, txn, "")}, hash)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %s %s on %s\n", txn.Category, formatAmount(txn, p.cfg.Currency.Code), txn.Timestamp.Format("2006-01-02 15:04"))
			if !p.persistent {
				renderTransactions(out, s.ListView().Transactions, p.cfg.Currency.Code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category label")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "signed amount in minor units (negative for expenses)")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&clock, "time", "", "time as HH:MM, 24h (default now)")
	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")

	return cmd
}
