package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clouded-cloud/price-scraper/models"

	"github.com/gocarina/gocsv"
)

// Export writes a completed batch to a CSV file at path. The column order
// is the schema declared on models.Item.
func Export(items []models.Item, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&items, f); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// ReadExport reads a CSV export back into items.
func ReadExport(path string) ([]models.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	var items []models.Item
	if err := gocsv.UnmarshalFile(f, &items); err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	return items, nil
}

// ExportFilename builds a per-run export path, keyed by target currency and
// run timestamp so successive runs never collide.
func ExportFilename(dir, target string, ts time.Time) string {
	name := fmt.Sprintf("book_prices_%s_%s.csv", target, ts.Format("20060102_150405"))
	return filepath.Join(dir, name)
}
