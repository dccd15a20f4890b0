package catalogue

import (
	"log"
	"time"

	"github.com/clouded-cloud/price-scraper/models"
)

// Collector drives a PageReader across successive pages until a requested
// item count is reached or the catalogue is exhausted.
type Collector struct {
	reader PageReader
	delay  time.Duration
}

// NewCollector creates a new Collector instance. delay is the politeness
// pause between consecutive page fetches.
func NewCollector(reader PageReader, delay time.Duration) *Collector {
	return &Collector{
		reader: reader,
		delay:  delay,
	}
}

// Collect gathers up to limit items, consulting at most maxPages pages.
// A read failure mid-way stops collection and returns what was gathered so
// far; fewer than limit items is a valid outcome, not an error.
func (c *Collector) Collect(limit, maxPages int) []models.Item {
	if limit <= 0 || maxPages <= 0 {
		return nil
	}

	var collected []models.Item

	for page := 1; page <= maxPages; page++ {
		if page > 1 && c.delay > 0 {
			time.Sleep(c.delay)
		}

		items, hasNext := c.reader.ReadPage(page)
		if len(items) == 0 {
			break
		}

		// Truncate this page's contribution so the running total never
		// exceeds limit.
		remaining := limit - len(collected)
		if len(items) > remaining {
			items = items[:remaining]
		}
		collected = append(collected, items...)

		log.Printf("Collected page %d: %d items (total %d/%d)\n", page, len(items), len(collected), limit)

		if len(collected) >= limit || !hasNext {
			break
		}
	}

	return collected
}
