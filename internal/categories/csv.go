package categories

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	numFields = 3
	colName   = 0
	colKind   = 1
	colDesc   = 2
)

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var cats []Category
	for i, rec := range records[1:] {
		c, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// WriteCategories writes categories.csv.
func WriteCategories(w io.Writer, cats []Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "kind", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range cats {
		if err := cw.Write(MarshalCategory(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c Category) []string {
	row := make([]string, numFields)
	row[colName] = c.Name
	row[colKind] = string(c.Kind)
	row[colDesc] = c.Description
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (Category, error) {
	if len(record) != numFields {
		return Category{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	name := strings.TrimSpace(record[colName])
	if name == "" {
		return Category{}, fmt.Errorf("blank category name")
	}

	kind := Kind(record[colKind])
	if kind != KindIncome && kind != KindExpense {
		return Category{}, fmt.Errorf("parsing kind %q: must be %s or %s", record[colKind], KindIncome, KindExpense)
	}

	return Category{
		Name:        name,
		Kind:        kind,
		Description: record[colDesc],
	}, nil
}
