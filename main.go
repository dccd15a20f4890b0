package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clouded-cloud/price-scraper/catalogue"
	"github.com/clouded-cloud/price-scraper/config"
	"github.com/clouded-cloud/price-scraper/convert"
	"github.com/clouded-cloud/price-scraper/fetcher"
	"github.com/clouded-cloud/price-scraper/parser"
	"github.com/clouded-cloud/price-scraper/rates"
	"github.com/clouded-cloud/price-scraper/report"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	maxPages := flag.Int("pages", 0, "Maximum number of catalogue pages to fetch (0 = use config value)")
	outDir := flag.String("out", "", "Directory for the CSV export (default: config value)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *maxPages > 0 {
		cfg.Catalogue.MaxPages = *maxPages
	}
	if *outDir != "" {
		cfg.Output.ExportDir = *outDir
	}

	run(cfg, bufio.NewReader(os.Stdin))
}

// loadConfig loads the configuration file, falling back to defaults if
// loading fails
func loadConfig(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Could not load config from %s, using defaults: %v\n", path, err)
		return config.DefaultConfig()
	}
	return cfg
}

// run executes one collect -> convert -> report pass
func run(cfg *config.Config, in *bufio.Reader) {
	f := fetcher.NewCollyFetcher(cfg.Catalogue.UserAgent, cfg.FetchTimeout())
	p := parser.NewParser(cfg.Catalogue.BaseURL)
	reader := catalogue.NewReader(f, p, cfg.Catalogue.BaseURL)
	collector := catalogue.NewCollector(reader, cfg.PageDelay())

	limit := promptCount(in, cfg.Output.DefaultLimit)

	fmt.Println("Scraping books ...")
	items := collector.Collect(limit, cfg.Catalogue.MaxPages)
	if len(items) == 0 {
		// The single fatal point of the whole pipeline
		log.Fatalln("No items collected; aborting")
	}

	target := promptCurrency(in, cfg.Currency.DefaultTarget)

	provider := rates.NewProvider(cfg.FX.URL, cfg.FallbackRate(), cfg.FXTimeout())
	converter := convert.NewConverter(provider, cfg.Currency.SourceCode, cfg.SourceToUSDRate())

	items, err := converter.Normalize(items, target)
	if err != nil {
		log.Fatalf("Conversion failed: %v\n", err)
	}

	fmt.Println()
	report.RenderTable(os.Stdout, items, cfg.Currency.SourceSymbol)

	path := report.ExportFilename(cfg.Output.ExportDir, target, time.Now())
	if err := report.Export(items, path); err != nil {
		log.Printf("Warning: failed to write export: %v\n", err)
	} else {
		fmt.Printf("\nSaved to %s\n", path)
	}

	if promptChart(in) {
		fmt.Println()
		report.Chart(os.Stdout, items, report.AsciiRenderer{}, cfg.Currency.SourceCode)
	}
}

// promptCount asks how many items to collect. Blank or non-numeric input
// substitutes the default.
func promptCount(in *bufio.Reader, def int) int {
	fmt.Printf("How many items? (default %d): ", def)
	line := readLine(in)
	if line == "" {
		return def
	}
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// promptCurrency asks for the target currency code. Blank input substitutes
// the default; input is upcased.
func promptCurrency(in *bufio.Reader, def string) string {
	fmt.Printf("Target currency (default %s): ", def)
	line := strings.ToUpper(readLine(in))
	if line == "" {
		return def
	}
	return line
}

// promptChart asks whether to display the chart; default is yes.
func promptChart(in *bufio.Reader) bool {
	fmt.Print("Show chart? (Y/n): ")
	line := strings.ToLower(readLine(in))
	return line != "n" && line != "no"
}

func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
