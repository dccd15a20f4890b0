package convert

import (
	"fmt"
	"time"

	"github.com/clouded-cloud/price-scraper/models"
	"github.com/clouded-cloud/price-scraper/rates"

	"github.com/shopspring/decimal"
)

// Converter normalizes a batch of items from the source currency into a
// target currency via USD.
type Converter struct {
	resolver    rates.Resolver
	sourceCode  string
	sourceToUSD decimal.Decimal

	now func() time.Time
}

// NewConverter creates a new Converter instance
func NewConverter(resolver rates.Resolver, sourceCode string, sourceToUSD decimal.Decimal) *Converter {
	return &Converter{
		resolver:    resolver,
		sourceCode:  sourceCode,
		sourceToUSD: sourceToUSD,
		now:         time.Now,
	}
}

// Normalize completes every item with USD and target prices, the composite
// conversion rate and a batch timestamp. The rate is resolved once for the
// whole batch, and every item shares the same timestamp. Items with a
// non-positive source price violate the precondition; nothing is converted
// in that case.
func (c *Converter) Normalize(items []models.Item, target string) ([]models.Item, error) {
	for i := range items {
		if !items[i].SourcePrice.IsPositive() {
			return nil, fmt.Errorf("item %q has no valid source price", items[i].Title)
		}
	}

	usdToTarget := c.resolver.Resolve(target)
	composite := c.sourceToUSD.Mul(usdToTarget).Round(4)
	stamp := models.Timestamp{Time: c.now()}

	for i := range items {
		usd := items[i].SourcePrice.Mul(c.sourceToUSD).Round(2)
		items[i].USDPrice = usd
		items[i].ConvertedPrice = usd.Mul(usdToTarget).Round(2)
		items[i].SourceCurrency = c.sourceCode
		items[i].TargetCurrency = target
		items[i].ConversionRate = composite
		items[i].ConvertedAt = stamp
	}

	return items, nil
}
