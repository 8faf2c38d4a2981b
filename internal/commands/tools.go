package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/calc"
	"github.com/moneynotes-dev/moneynotes/internal/currency"
	"github.com/moneynotes-dev/moneynotes/internal/dice"
)

func newDiceCommand(g *globals) *cobra.Command {
	diceCmd := &cobra.Command{
		Use:   "dice",
		Short: "Dice roller",
	}

	var sides, count int
	rollCmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a d4, d6, d12 or d20",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := dice.New(nil)
			if err := d.Select(sides); err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			g.log.Debug().Str("die", dice.Label(sides)).Int("count", count).Msg("rolling")
			for i := 0; i < count; i++ {
				fmt.Fprintf(cmd.OutOrStdout(), "Result: %d\n", d.Roll())
			}
			return nil
		},
	}
	rollCmd.Flags().IntVarP(&sides, "sides", "s", dice.DefaultSides, "die size (4, 6, 12 or 20)")
	rollCmd.Flags().IntVarP(&count, "count", "n", 1, "number of rolls")

	diceCmd.AddCommand(rollCmd)
	return diceCmd
}

func newCalcCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "calc <add|sub|mul|div> <a> <b>",
		Short:     "Integer calculator",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{string(calc.OpAdd), string(calc.OpSub), string(calc.OpMul), string(calc.OpDiv)},
		RunE: func(cmd *cobra.Command, args []string) error {
			op := calc.Operator(strings.ToLower(args[0]))
			v, err := calc.Evaluate(op, args[1], args[2])
			if err != nil {
				g.log.Debug().Err(err).Msg("calculation failed")
				fmt.Fprintln(cmd.OutOrStdout(), calc.InvalidInput)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	// Flags stop at the operator, so "calc sub 2 -3" keeps -3 as an operand
	// while "calc --help" still works.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newConvertCommand(g *globals) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert between " + strings.Join(currency.Codes, ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range []string{from, to} {
				if !currency.Known(code) {
					g.log.Warn().Str("currency", code).Msg("unknown currency, using rate 1.0")
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), currency.Render(args[0], from, to))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "USD", "input currency")
	cmd.Flags().StringVar(&to, "to", "IDR", "output currency")
	return cmd
}
