package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/activitylog"
	"github.com/moneynotes-dev/moneynotes/internal/importer"
)

func newImportCommand(g *globals) *cobra.Command {
	var repoDir, format string
	var scale int32

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import CSV exports waiting in import/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := importer.DefaultRegistry(scale)
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q (known: %s)", format, strings.Join(registry.Formats(), ", "))
			}

			p, err := openProject(repoDir, g.log)
			if err != nil {
				return err
			}
			if !p.persistent {
				return errNoProject
			}

			n, err := runImport(p, parser)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "export format")
	cmd.Flags().Int32Var(&scale, "scale", 0, "decimal places shifted into minor units")
	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")

	return cmd
}

// runImport parses every file waiting in import/ and returns the number of
// transactions added.
func runImport(p *project, parser importer.Parser) (int, error) {
	files, err := importer.Scan(p.root)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}

	// Nothing is saved unless every file parses.
	now := time.Now()
	var entries []activitylog.Entry
	for _, file := range files {
		txns, err := importer.ParseFile(parser, file.Path)
		if err != nil {
			return 0, err
		}
		for _, txn := range txns {
			p.ledger.Append(txn)
			p.checkCategory(txn)
			entries = append(entries, activitylog.ForTransaction(now, activitylog.ActionImport, txn, file.Name))
		}
		p.log.Debug().Str("file", file.Name).Int("transactions", len(txns)).Msg("parsed import file")
	}

	// Imports land at the tail, so the file only needs the new rows.
	recs := p.ledger.Records()
	if err := p.store.Append(recs[len(recs)-len(entries):]); err != nil {
		return 0, fmt.Errorf("saving ledger: %w", err)
	}
	for _, file := range files {
		if err := importer.MarkProcessed(p.root, file.Name); err != nil {
			return 0, err
		}
	}

	hash := p.commit(fmt.Sprintf("import: %d transactions from %d files", len(entries), len(files)))
	p.record(entries, hash)
	return len(entries), nil
}
