package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneynotes-dev/moneynotes/internal/activitylog"
	"github.com/moneynotes-dev/moneynotes/internal/categories"
	"github.com/moneynotes-dev/moneynotes/internal/config"
	"github.com/moneynotes-dev/moneynotes/internal/gitops"
	"github.com/moneynotes-dev/moneynotes/internal/ledger"
	"github.com/moneynotes-dev/moneynotes/internal/store"
)

func newInitCommand(g *globals) *cobra.Command {
	var name string
	var currencyCode string
	var noGit bool
	var empty bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new MoneyNotes project",
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

			opts := initOptions{name: name, currency: currencyCode, git: !noGit, seed: !empty}
			hash, err := runInit(g, absDir, opts)
			if err != nil {
				return err
			}
			if hash != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized MoneyNotes project at %s (%s)\n", absDir, hash)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized MoneyNotes project at %s\n", absDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "owner name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currencyCode, "currency", "IDR", "currency code amounts are recorded in")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "do not create a git repository")
	cmd.Flags().BoolVar(&empty, "empty", false, "start with an empty ledger instead of sample data")

	return cmd
}

type initOptions struct {
	name     string
	currency string
	git      bool
	seed     bool
}

func runInit(g *globals, dir string, opts initOptions) (string, error) {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return "", fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	for _, d := range []string{"logs", "import", filepath.Join("import", "processed")} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(opts.name)
	cfg.Currency.Code = opts.currency
	cfg.Git.AutoCommit = opts.git
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	// Stored timestamps carry whole seconds.
	now := time.Now().Truncate(time.Second)
	l := ledger.New()
	if opts.seed {
		l.Seed(now)
	}
	if err := store.NewService(dir, cfg.Ledger.File).Save(l); err != nil {
		return "", fmt.Errorf("writing ledger: %w", err)
	}

	if err := categories.NewService(categories.DefaultCategories()).Save(dir); err != nil {
		return "", err
	}

	gitignore := "logs/\ncharts/\n*.png\n*.svg\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return "", fmt.Errorf("writing .gitkeep: %w", err)
	}

	var hash string
	switch {
	case !opts.git:
	case !gitops.Available():
		g.log.Warn().Msg("git not installed; project created without history")
	default:
		if err := gitops.Init(dir); err != nil {
			return "", fmt.Errorf("git init: %w", err)
		}
		var err error
		hash, err = gitops.CommitAll(dir, "init: Initialize notes for "+opts.name, cfg.Git.Author())
		if err != nil {
			return "", fmt.Errorf("initial commit: %w", err)
		}
	}

	entry := activitylog.Entry{
		Timestamp:  now,
		Action:     activitylog.ActionInit,
		Amount:     l.Total(),
		Details:    fmt.Sprintf("seeded %d transactions", l.Len()),
		CommitHash: hash,
	}
	if err := activitylog.Append(dir, []activitylog.Entry{entry}); err != nil {
		g.log.Warn().Err(err).Msg("failed to write activity log")
	}

	g.log.Debug().Str("dir", dir).Int("transactions", l.Len()).Msg("project initialized")
	return hash, nil
}
