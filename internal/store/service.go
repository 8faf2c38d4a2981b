package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
)

// DefaultFile is the ledger file name inside a project directory.
const DefaultFile = "transactions.csv"

// Service reads and writes a ledger file.
type Service struct {
	path string
}

// NewService creates a Service over repoRoot/file. An empty file uses DefaultFile.
func NewService(repoRoot, file string) *Service {
	if file == "" {
		file = DefaultFile
	}
	return &Service{path: filepath.Join(repoRoot, file)}
}

// Path returns the ledger file path.
func (s *Service) Path() string {
	return s.path
}

// Load reads the ledger file into a Ledger in file order, restoring each
// row's insertion sequence. A missing file yields an empty ledger.
func (s *Service) Load() (*ledger.Ledger, error) {
	l := ledger.New()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	for _, rec := range recs {
		l.Restore(rec)
	}
	return l, nil
}

// Save rewrites the ledger file in storage order.
func (s *Service) Save(l *ledger.Ledger) error {
	return s.write(l.Records())
}

func (s *Service) write(recs []ledger.Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}

	if err := WriteRecords(f, recs); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing ledger file: %w", err)
	}
	return nil
}

// Append adds recs to the end of the ledger file without rewriting it. A
// missing file is created with a header.
func (s *Service) Append(recs []ledger.Record) error {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return s.write(recs)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger for append: %w", err)
	}
	if err := AppendRecords(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("appending to ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ledger file: %w", err)
	}
	return nil
}
