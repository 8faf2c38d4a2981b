package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
)

func sampleSeries() []ledger.BalancePoint {
	return []ledger.BalancePoint{
		{Index: 0, Balance: 5000000},
		{Index: 1, Balance: 4975000},
		{Index: 2, Balance: 4960000},
	}
}

func TestRenderBalance_SVG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBalance(&buf, sampleSeries(), FormatSVG, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), Title)
}

func TestRenderBalance_PNG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBalance(&buf, sampleSeries(), FormatPNG, DefaultOptions())
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestRenderBalance_SinglePoint(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBalance(&buf, []ledger.BalancePoint{{Index: 0, Balance: 0}}, FormatSVG, DefaultOptions())
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestRenderBalance_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBalance(&buf, nil, FormatPNG, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptySeries)
	assert.Zero(t, buf.Len())
}

func TestRenderBalance_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBalance(&buf, sampleSeries(), Format("gif"), DefaultOptions())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"png", FormatPNG},
		{".PNG", FormatPNG},
		{"svg", FormatSVG},
		{".svg", FormatSVG},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("jpeg")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPaddedRange(t *testing.T) {
	lo, hi := paddedRange([]float64{5, 5})
	assert.Less(t, lo, 5.0)
	assert.Greater(t, hi, 5.0)

	lo, hi = paddedRange([]float64{0, 100})
	assert.InDelta(t, -10.0, lo, 0.001)
	assert.InDelta(t, 110.0, hi, 0.001)
}
