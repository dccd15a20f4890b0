package rates

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/clouded-cloud/price-scraper/models"

	"github.com/shopspring/decimal"
)

// Resolver resolves a USD->target conversion multiplier.
type Resolver interface {
	Resolve(target string) decimal.Decimal
}

// Provider fetches a live rate table from an FX endpoint and falls back to
// a static rate when the source is unavailable.
type Provider struct {
	url        string
	fallback   decimal.Decimal
	httpClient *http.Client
}

type fxResponse struct {
	Rates models.RateTable `json:"rates"`
}

// NewProvider creates a new Provider instance
func NewProvider(url string, fallback decimal.Decimal, timeout time.Duration) *Provider {
	return &Provider{
		url:        url,
		fallback:   fallback,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve returns the USD->target multiplier for a currency code. Any fetch
// or decode failure, and any code absent from the table, degrades to the
// fallback rate; Resolve never fails.
func (p *Provider) Resolve(target string) decimal.Decimal {
	table, err := p.fetchTable()
	if err != nil {
		log.Printf("Warning: FX fetch failed, using fallback rate: %v\n", err)
		return p.fallback
	}

	rate, ok := table[target]
	if !ok {
		log.Printf("Warning: no rate for %s, using fallback rate\n", target)
		return p.fallback
	}

	return rate
}

func (p *Provider) fetchTable() (models.RateTable, error) {
	resp, err := p.httpClient.Get(p.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var body fxResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode FX response: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("FX response has no rates")
	}

	return body.Rates, nil
}
