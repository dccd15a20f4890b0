package parser

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/clouded-cloud/price-scraper/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// Parser extracts catalogue items from HTML
type Parser struct {
	baseURL string
}

// NewParser creates a new Parser instance. baseURL is the catalogue site
// root used to absolutize relative detail links.
func NewParser(baseURL string) *Parser {
	return &Parser{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ParsePage extracts items from one catalogue page. The second return
// reports whether the page advertises a further page.
func (p *Parser) ParsePage(htmlContent string) ([]models.Item, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var items []models.Item

	doc.Find("article.product_pod").Each(func(i int, s *goquery.Selection) {
		item := p.extractItem(s)
		if item != nil {
			items = append(items, *item)
		}
	})

	hasNext := doc.Find("li.next a").Length() > 0

	return items, hasNext, nil
}

// extractItem extracts a single item from a product block. Returns nil if
// the block is missing a usable title or price.
func (p *Parser) extractItem(s *goquery.Selection) *models.Item {
	item := &models.Item{}

	link := s.Find("h3 a").First()

	title := link.AttrOr("title", "")
	if title == "" {
		title = link.Text()
	}
	item.Title = strings.TrimSpace(title)
	if item.Title == "" {
		log.Println("Skipping product block without a title")
		return nil
	}

	priceText := strings.TrimSpace(s.Find("p.price_color").First().Text())
	price, err := parsePrice(priceText)
	if err != nil {
		log.Printf("Skipping %q: %v\n", item.Title, err)
		return nil
	}
	item.SourcePrice = price

	item.URL = p.resolveURL(link.AttrOr("href", ""))

	return item
}

// parsePrice strips the leading currency glyph from a price label and
// parses the remainder as a positive decimal.
func parsePrice(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimLeftFunc(text, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("no price in %q", text)
	}

	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable price %q: %w", text, err)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive price %q", text)
	}

	return price, nil
}

// resolveURL rewrites a possibly-relative detail link into an absolute URL.
// Catalogue pages link items either via ascension ("../../../x/index.html")
// or from the site root ("catalogue/x/index.html"); anything else is left
// as-is.
func (p *Parser) resolveURL(href string) string {
	if href == "" {
		return ""
	}

	if strings.HasPrefix(href, "../") {
		for strings.HasPrefix(href, "../") {
			href = strings.TrimPrefix(href, "../")
		}
		return p.baseURL + "/catalogue/" + href
	}

	if strings.HasPrefix(href, "catalogue/") {
		return p.baseURL + "/" + href
	}

	return href
}
