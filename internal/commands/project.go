package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/moneynotes-dev/moneynotes/internal/activitylog"
	"github.com/moneynotes-dev/moneynotes/internal/categories"
	"github.com/moneynotes-dev/moneynotes/internal/config"
	"github.com/moneynotes-dev/moneynotes/internal/gitops"
	"github.com/moneynotes-dev/moneynotes/internal/ledger"
	"github.com/moneynotes-dev/moneynotes/internal/model"
	"github.com/moneynotes-dev/moneynotes/internal/session"
	"github.com/moneynotes-dev/moneynotes/internal/store"
)

// errNoProject is returned by commands that need an initialized directory.
var errNoProject = errors.New("no moneynotes.yaml found; run 'moneynotes init' first")

// project is the ledger a command works on. Without a moneynotes.yaml the
// ledger is the in-memory sample data and nothing is written back.
type project struct {
	root       string
	cfg        *config.Config
	store      *store.Service
	session    *session.Session
	ledger     *ledger.Ledger
	categories *categories.Service
	persistent bool
	changed    bool
	log        zerolog.Logger
}

func openProject(repoDir string, log zerolog.Logger) (*project, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := filepath.Join(root, config.FileName)
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("dir", root).Msg("no project found, using sample data")
		return newProject(&project{
			root:       root,
			cfg:        config.Default(""),
			session:    session.NewSeeded(time.Now),
			categories: categories.NewService(categories.DefaultCategories()),
			log:        log,
		}), nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	svc := store.NewService(root, cfg.Ledger.File)
	l, err := svc.Load()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", svc.Path()).Int("transactions", l.Len()).Msg("loaded ledger")

	cats, err := categories.Load(root)
	if err != nil {
		return nil, err
	}

	return newProject(&project{
		root:       root,
		cfg:        cfg,
		store:      svc,
		session:    session.New(l, time.Now),
		categories: cats,
		persistent: true,
		log:        log,
	}), nil
}

// newProject exposes the session's ledger and tracks whether a command
// changed it.
func newProject(p *project) *project {
	p.ledger = p.session.Ledger()
	p.ledger.Subscribe(func(*ledger.Ledger) { p.changed = true })
	return p
}

// save writes the ledger back when the project is file-backed and a
// command changed it.
func (p *project) save() error {
	if !p.persistent {
		p.log.Debug().Msg("in-memory ledger; changes are not saved")
		return nil
	}
	if !p.changed {
		p.log.Debug().Msg("ledger unchanged; nothing to save")
		return nil
	}
	return p.store.Save(p.ledger)
}

// commit records the change in git when auto-commit is on. It returns the
// short hash, or "" when no commit was made.
func (p *project) commit(message string) string {
	if !p.persistent || !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return ""
	}
	if !gitops.Available() {
		p.log.Warn().Msg("git not installed; skipping auto-commit")
		return ""
	}
	changed, err := gitops.HasChanges(p.root)
	if err != nil {
		p.log.Warn().Err(err).Msg("checking git status")
		return ""
	}
	if !changed {
		return ""
	}
	hash, err := gitops.CommitAll(p.root, message, p.cfg.Git.Author())
	if err != nil {
		p.log.Warn().Err(err).Msg("auto-commit failed")
		return ""
	}
	p.log.Debug().Str("commit", hash).Msg("committed ledger change")
	return hash
}

// checkCategory warns when txn's sign disagrees with its catalogued kind.
func (p *project) checkCategory(txn model.Transaction) {
	switch {
	case !p.categories.Exists(txn.Category):
		p.log.Debug().Str("category", txn.Category).Msg("category not in catalogue")
	case p.categories.Mismatch(txn):
		c, _ := p.categories.Get(txn.Category)
		p.log.Warn().Str("category", txn.Category).Str("kind", string(c.Kind)).Int64("amount", txn.Amount).Msg("amount sign does not match category kind")
	}
}

// record appends entries to the activity log, stamping each with hash.
func (p *project) record(entries []activitylog.Entry, hash string) {
	if !p.persistent || len(entries) == 0 {
		return
	}
	for i := range entries {
		entries[i].CommitHash = hash
	}
	if err := activitylog.Append(p.root, entries); err != nil {
		p.log.Warn().Err(err).Msg("failed to write activity log")
	}
}
