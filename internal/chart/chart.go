// Package chart renders the running balance as a line chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
)

// Title labels the balance series.
const Title = "Saldo Total"

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	// ErrEmptySeries is returned when there is nothing to plot.
	ErrEmptySeries = errors.New("balance series is empty")
	// ErrUnknownFormat is returned for formats other than png and svg.
	ErrUnknownFormat = errors.New("unknown chart format")
)

var lineColor = drawing.Color{R: 77, G: 184, B: 255, A: 255}

// ParseFormat maps a flag value or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options controls the rendered image size.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns the standard chart size.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 300}
}

// RenderBalance draws series to w.
func RenderBalance(w io.Writer, series []ledger.BalancePoint, format Format, opts Options) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(p.Index)
		ys[i] = float64(p.Balance)
	}

	xMin, xMax := paddedRange(xs)
	yMin, yMax := paddedRange(ys)

	graph := gochart.Chart{
		Title:  Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Range:          &gochart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: integerFormatter,
		},
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: integerFormatter,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    Title,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    4,
				},
			},
		},
	}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("rendering balance chart: %w", err)
	}
	return nil
}

// paddedRange returns bounds around values that are never degenerate, so
// single-point and flat series still render.
func paddedRange(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * 0.1
	if pad < 1 {
		pad = 1
	}
	return lo - pad, hi + pad
}

func integerFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%v", v)
}
