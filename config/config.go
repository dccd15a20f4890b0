package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds all tunables for a scraping run. Both conversion constants
// (source_to_usd and the fallback rate) are configuration, not code.
type Config struct {
	Catalogue struct {
		BaseURL        string `yaml:"base_url"`
		MaxPages       int    `yaml:"max_pages"`
		PageDelayMS    int    `yaml:"page_delay_ms"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"catalogue"`
	FX struct {
		URL            string  `yaml:"url"`
		FallbackRate   float64 `yaml:"fallback_rate"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
	} `yaml:"fx"`
	Currency struct {
		SourceCode    string  `yaml:"source_code"`
		SourceSymbol  string  `yaml:"source_symbol"`
		SourceToUSD   float64 `yaml:"source_to_usd"`
		DefaultTarget string  `yaml:"default_target"`
	} `yaml:"currency"`
	Output struct {
		DefaultLimit int    `yaml:"default_limit"`
		ExportDir    string `yaml:"export_dir"`
	} `yaml:"output"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration matching the public book catalogue
// and the known historical USD->KES rate.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Catalogue.BaseURL = "https://books.toscrape.com"
	cfg.Catalogue.MaxPages = 5
	cfg.Catalogue.PageDelayMS = 1000
	cfg.Catalogue.TimeoutSeconds = 10
	cfg.Catalogue.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.FX.URL = "https://api.exchangerate-api.com/v4/latest/USD"
	cfg.FX.FallbackRate = 129.28
	cfg.FX.TimeoutSeconds = 10
	cfg.Currency.SourceCode = "GBP"
	cfg.Currency.SourceSymbol = "£"
	cfg.Currency.SourceToUSD = 1 / 0.741
	cfg.Currency.DefaultTarget = "KES"
	cfg.Output.DefaultLimit = 10
	cfg.Output.ExportDir = "."
	return cfg
}

// PageDelay returns the politeness delay between page fetches.
func (c *Config) PageDelay() time.Duration {
	return time.Duration(c.Catalogue.PageDelayMS) * time.Millisecond
}

// FetchTimeout returns the timeout for catalogue page fetches.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Catalogue.TimeoutSeconds) * time.Second
}

// FXTimeout returns the timeout for the FX rate fetch.
func (c *Config) FXTimeout() time.Duration {
	return time.Duration(c.FX.TimeoutSeconds) * time.Second
}

// SourceToUSDRate returns the fixed source->USD multiplier as a decimal.
func (c *Config) SourceToUSDRate() decimal.Decimal {
	return decimal.NewFromFloat(c.Currency.SourceToUSD)
}

// FallbackRate returns the static USD->target rate used when the FX source
// is unavailable.
func (c *Config) FallbackRate() decimal.Decimal {
	return decimal.NewFromFloat(c.FX.FallbackRate)
}
