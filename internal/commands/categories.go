package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/categories"
)

func newCategoriesCommand(g *globals) *cobra.Command {
	var repoDir string
	var catalogue bool
	var kind string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(repoDir, g.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			code := p.cfg.Currency.Code

			if catalogue {
				cats := p.categories.All()
				if kind != "" {
					k := categories.Kind(strings.ToLower(kind))
					if k != categories.KindIncome && k != categories.KindExpense {
						return fmt.Errorf("unknown kind %q (want %s or %s)", kind, categories.KindIncome, categories.KindExpense)
					}
					cats = p.categories.ByKind(k)
				}
				table := newTable(out, "Category", "Kind", "Description")
				for _, c := range cats {
					table.Append([]string{c.Name, string(c.Kind), c.Description})
				}
				table.Render()
				return nil
			}

			sums := p.categories.Summarize(p.ledger.All())
			if len(sums) == 0 {
				fmt.Fprintln(out, "No transactions.")
				return nil
			}
			table := newTable(out, "Category", "Kind", "Count", "Income", "Expense", "Net")
			for _, s := range sums {
				kind := string(s.Kind)
				if !s.Known {
					kind = "?"
				}
				table.Append([]string{
					s.Category,
					kind,
					strconv.Itoa(s.Count),
					formatBalance(s.Income, code),
					formatBalance(s.Expense, code),
					formatBalance(s.Net(), code),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&catalogue, "catalogue", false, "list the known categories instead of totals")
	cmd.Flags().StringVar(&kind, "kind", "", "with --catalogue, only list income or expense categories")
	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}
