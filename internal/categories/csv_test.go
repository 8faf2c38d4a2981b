package categories

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cats := []Category{
		{Name: "Gaji", Kind: KindIncome, Description: "Salary"},
		{Name: "Makan, Minum", Kind: KindExpense},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCategories(&buf, cats))

	got, err := ReadCategories(&buf)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
}

func TestDefaultCategoriesRoundTrip(t *testing.T) {
	cats := DefaultCategories()

	var buf bytes.Buffer
	require.NoError(t, WriteCategories(&buf, cats))

	got, err := ReadCategories(&buf)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	require.NotEmpty(t, cats)

	names := make(map[string]bool)
	for _, c := range cats {
		assert.NotEmpty(t, c.Name)
		assert.Contains(t, []Kind{KindIncome, KindExpense}, c.Kind, "category %s", c.Name)
		assert.False(t, names[c.Name], "duplicate category %s", c.Name)
		names[c.Name] = true
	}
	// The sample ledger's categories are all catalogued.
	for _, n := range []string{"Gaji", "Makan", "Transport"} {
		assert.True(t, names[n], "expected %s", n)
	}
}

func TestReadCategories_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"bad kind", "name,kind,description\nGaji,salary,\n", "parsing kind"},
		{"blank name", "name,kind,description\n  ,income,\n", "blank category name"},
		{"short row", "name,kind,description\nGaji,income\n", "wrong number of fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCategories(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadCategories_Empty(t *testing.T) {
	got, err := ReadCategories(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
