package report

import (
	"fmt"
	"io"

	"github.com/clouded-cloud/price-scraper/models"

	"github.com/guptarohit/asciigraph"
)

// Renderer draws labeled numeric series into a displayable string.
type Renderer interface {
	Render(series [][]float64, legends []string) string
}

// AsciiRenderer renders series as a terminal plot.
type AsciiRenderer struct {
	Height int
}

func (r AsciiRenderer) Render(series [][]float64, legends []string) string {
	height := r.Height
	if height <= 0 {
		height = 12
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption("Original vs Converted Prices"),
	)
}

// Chart plots the source and converted price series on a comparable axis.
// The converted series is divided by max(converted)/max(source) so both fit
// one scale; a zero source maximum leaves the converted series unscaled.
// An empty batch is a no-op with a notice.
func Chart(w io.Writer, items []models.Item, renderer Renderer, sourceCode string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items to chart.")
		return
	}

	source := make([]float64, len(items))
	converted := make([]float64, len(items))
	var maxSource, maxConverted float64
	for i, item := range items {
		source[i] = item.SourcePrice.InexactFloat64()
		converted[i] = item.ConvertedPrice.InexactFloat64()
		if source[i] > maxSource {
			maxSource = source[i]
		}
		if converted[i] > maxConverted {
			maxConverted = converted[i]
		}
	}

	scale := 1.0
	if maxSource > 0 && maxConverted > 0 {
		scale = maxConverted / maxSource
	}
	for i := range converted {
		converted[i] /= scale
	}

	target := items[0].TargetCurrency
	legends := []string{sourceCode, fmt.Sprintf("%s (norm)", target)}

	fmt.Fprintln(w, renderer.Render([][]float64{source, converted}, legends))
}
