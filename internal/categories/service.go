// Package categories holds the catalogue of known transaction categories and
// per-category totals. Transaction categories stay free-form; the catalogue
// only describes the ones a project expects.
package categories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/moneynotes-dev/moneynotes/internal/model"
)

// FileName is the catalogue file inside a project.
const FileName = "categories.csv"

// Kind says whether a category normally carries income or expenses.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category is one catalogue entry.
type Category struct {
	Name        string
	Kind        Kind
	Description string
}

// Service provides lookup over the category catalogue. Names match
// case-insensitively.
type Service struct {
	cats   []Category
	byName map[string]Category
}

// NewService creates a Service from a slice of categories.
func NewService(cats []Category) *Service {
	byName := make(map[string]Category, len(cats))
	for _, c := range cats {
		byName[key(c.Name)] = c
	}
	return &Service{cats: cats, byName: byName}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load reads categories.csv from a project root. A missing file yields the
// default catalogue.
func Load(root string) (*Service, error) {
	f, err := os.Open(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(DefaultCategories()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return NewService(cats), nil
}

// Save writes the catalogue to categories.csv under root.
func (s *Service) Save(root string) error {
	f, err := os.Create(filepath.Join(root, FileName))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.cats); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// All returns all categories.
func (s *Service) All() []Category {
	return s.cats
}

// Get returns a category by name.
func (s *Service) Get(name string) (Category, bool) {
	c, ok := s.byName[key(name)]
	return c, ok
}

// Exists reports whether name is in the catalogue.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[key(name)]
	return ok
}

// ByKind returns all categories of the given kind.
func (s *Service) ByKind(kind Kind) []Category {
	var result []Category
	for _, c := range s.cats {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// Mismatch reports whether txn's sign disagrees with its catalogued kind.
// Uncatalogued categories and zero amounts never mismatch.
func (s *Service) Mismatch(txn model.Transaction) bool {
	c, ok := s.Get(txn.Category)
	if !ok || txn.Amount == 0 {
		return false
	}
	return (c.Kind == KindIncome) != txn.IsIncome()
}

// Summary is the total of every transaction sharing a category label.
type Summary struct {
	Category string
	Known    bool
	Kind     Kind
	Count    int
	Income   int64
	Expense  int64
}

// Net is Income plus Expense; Expense is never positive.
func (s Summary) Net() int64 { return s.Income + s.Expense }

// Summarize groups txns by exact category label, largest absolute net first
// and by name on ties.
func (s *Service) Summarize(txns []model.Transaction) []Summary {
	idx := make(map[string]int)
	var out []Summary
	for _, txn := range txns {
		i, ok := idx[txn.Category]
		if !ok {
			i = len(out)
			idx[txn.Category] = i
			sum := Summary{Category: txn.Category}
			if c, known := s.Get(txn.Category); known {
				sum.Known = true
				sum.Kind = c.Kind
			}
			out = append(out, sum)
		}
		out[i].Count++
		if txn.IsIncome() {
			out[i].Income += txn.Amount
		} else {
			out[i].Expense += txn.Amount
		}
	}

	sort.Slice(out, func(a, b int) bool {
		na, nb := abs(out[a].Net()), abs(out[b].Net())
		if na != nb {
			return na > nb
		}
		return out[a].Category < out[b].Category
	})
	return out
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
