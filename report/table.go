package report

import (
	"fmt"
	"io"

	"github.com/clouded-cloud/price-scraper/models"
)

// RenderTable writes a display table of a completed batch: title, source
// price with its currency symbol, converted price with the target code.
// Formatting only, no computation.
func RenderTable(w io.Writer, items []models.Item, sourceSymbol string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items to display.")
		return
	}

	titleWidth := len("Title")
	for _, item := range items {
		if len(item.Title) > titleWidth {
			titleWidth = len(item.Title)
		}
	}

	fmt.Fprintf(w, "%-*s  %12s  %16s\n", titleWidth, "Title", "Price", "Converted")
	for _, item := range items {
		source := sourceSymbol + item.SourcePrice.StringFixed(2)
		converted := item.ConvertedPrice.StringFixed(2) + " " + item.TargetCurrency
		fmt.Fprintf(w, "%-*s  %12s  %16s\n", titleWidth, item.Title, source, converted)
	}
}
