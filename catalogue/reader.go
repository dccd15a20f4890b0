package catalogue

import (
	"fmt"
	"log"
	"strings"

	"github.com/clouded-cloud/price-scraper/fetcher"
	"github.com/clouded-cloud/price-scraper/models"
	"github.com/clouded-cloud/price-scraper/parser"
)

// PageReader returns the items found on a catalogue page and whether a
// further page exists.
type PageReader interface {
	ReadPage(page int) ([]models.Item, bool)
}

// Reader reads catalogue list pages through a Fetcher and a Parser.
type Reader struct {
	fetcher fetcher.Fetcher
	parser  *parser.Parser
	baseURL string
}

// NewReader creates a new Reader instance
func NewReader(f fetcher.Fetcher, p *parser.Parser, baseURL string) *Reader {
	return &Reader{
		fetcher: f,
		parser:  p,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PageURL builds the address of the n-th catalogue list page.
func (r *Reader) PageURL(page int) string {
	return fmt.Sprintf("%s/catalogue/page-%d.html", r.baseURL, page)
}

// ReadPage fetches and parses one catalogue page. Any failure, or a page
// with no items, signals end-of-data rather than an error; the caller
// decides whether that is fatal.
func (r *Reader) ReadPage(page int) ([]models.Item, bool) {
	url := r.PageURL(page)

	html, err := r.fetcher.Fetch(url)
	if err != nil {
		log.Printf("Failed to fetch page %d: %v\n", page, err)
		return nil, false
	}

	items, hasNext, err := r.parser.ParsePage(html)
	if err != nil {
		log.Printf("Failed to parse page %d: %v\n", page, err)
		return nil, false
	}

	if len(items) == 0 {
		return nil, false
	}

	return items, hasNext
}
