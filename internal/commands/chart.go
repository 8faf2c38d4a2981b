package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/chart"
)

func newChartCommand(g *globals) *cobra.Command {
	var repoDir, outPath, format string
	var width, height int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the running balance as a line chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == "" {
				format = filepath.Ext(outPath)
			}
			f, err := chart.ParseFormat(format)
			if err != nil {
				return err
			}

			p, err := openProject(repoDir, g.log)
			if err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating chart file: %w", err)
			}
			defer out.Close()

			opts := chart.Options{Width: width, Height: height}
			if err := chart.RenderBalance(out, p.ledger.RunningBalanceSeries(), f, opts); err != nil {
				out.Close()
				os.Remove(outPath)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Chart saved to: %s\n", outPath)
			return nil
		},
	}

	defaults := chart.DefaultOptions()
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().StringVar(&format, "format", "", "png or svg (default from file extension)")
	cmd.Flags().IntVar(&width, "width", defaults.Width, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", defaults.Height, "image height in pixels")
	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")

	return cmd
}
