package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents one catalogue entry. The catalogue reader fills Title,
// SourcePrice and URL; the converter fills everything else. The csv tags
// declare the export schema and its column order.
type Item struct {
	Title          string          `csv:"title"`
	SourcePrice    decimal.Decimal `csv:"source_price"`
	SourceCurrency string          `csv:"source_currency"`
	USDPrice       decimal.Decimal `csv:"usd_price"`
	ConvertedPrice decimal.Decimal `csv:"converted_price"`
	TargetCurrency string          `csv:"target_currency"`
	ConversionRate decimal.Decimal `csv:"conversion_rate"`
	ConvertedAt    Timestamp       `csv:"conversion_timestamp"`
	URL            string          `csv:"detail_url"`
}

// RateTable maps a currency code to its USD-based multiplier. Fetched once
// per run, never persisted.
type RateTable map[string]decimal.Decimal

const timestampLayout = "2006-01-02 15:04:05"

// Timestamp is a time.Time that exports as "2006-01-02 15:04:05".
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalCSV() (string, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.Format(timestampLayout), nil
}

func (t *Timestamp) UnmarshalCSV(s string) error {
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
