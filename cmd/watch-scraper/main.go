package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/maltedev/flipkart-watch-scraper/internal/browser"
	"github.com/maltedev/flipkart-watch-scraper/internal/config"
	"github.com/maltedev/flipkart-watch-scraper/internal/exporter"
	"github.com/maltedev/flipkart-watch-scraper/internal/fetcher"
	"github.com/maltedev/flipkart-watch-scraper/internal/parser"
	"github.com/maltedev/flipkart-watch-scraper/internal/scraper"
)

func main() {
	var (
		url        = flag.String("url", "", "Flipkart search results URL to scrape (overrides SCRAPER_URL)")
		priceLimit = flag.Int("price-limit", -1, "Maximum price for records to keep (overrides SCRAPER_PRICE_LIMIT)")
		output     = flag.String("output", "", "Output xlsx file (overrides SCRAPER_OUTPUT_FILE)")
		headless   = flag.Bool("headless", true, "Run browser in headless mode")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	overrides := cliOverrides{
		url:        *url,
		priceLimit: *priceLimit,
		output:     *output,
		headless:   *headless,
	}
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "headless" {
			overrides.headlessSet = true
		}
	})
	applyOverrides(cfg, overrides)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	browserOpts := &browser.Options{
		Headless:       cfg.Browser.Headless,
		Timeout:        cfg.Browser.Timeout,
		UserAgent:      cfg.Browser.UserAgent,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		AcceptLanguage: cfg.Browser.AcceptLanguage,
		TimezoneID:     cfg.Browser.TimezoneID,
		Locale:         cfg.Browser.Locale,
		ExtraHeaders:   browser.DefaultOptions().ExtraHeaders,
	}

	f := fetcher.New(browserOpts, cfg.Scraper.SettleDelay, logger)
	p := parser.NewFlipkartParser(logger)
	svc := scraper.NewService(f, p, cfg.Scraper.PriceLimit, logger)

	records, summary, err := svc.Run(context.Background(), cfg.Scraper.URL)
	if err != nil {
		switch {
		case errors.Is(err, fetcher.ErrChallengeDetected):
			logger.Error("challenge page detected, try again later or from a different network", "url", cfg.Scraper.URL)
		case errors.Is(err, parser.ErrNoContainers):
			logger.Error("no product containers found, the site's class names may have changed", "url", cfg.Scraper.URL)
		default:
			logger.Error("scrape failed", "error", err)
		}
		os.Exit(1)
	}

	if err := exporter.Export(records, cfg.Scraper.OutputFile); err != nil {
		if errors.Is(err, exporter.ErrNothingToExport) {
			fmt.Printf("No watches under %d found, nothing exported.\n", cfg.Scraper.PriceLimit)
			return
		}
		logger.Error("export failed", "error", err, "path", cfg.Scraper.OutputFile)
		os.Exit(1)
	}

	summary.OutputPath = cfg.Scraper.OutputFile
	logger.Info("export complete", "run_id", summary.RunID, "records", summary.Accepted, "path", summary.OutputPath)
	fmt.Printf("Saved %d watches under %d to %s (skipped %d malformed cards).\n",
		summary.Accepted, cfg.Scraper.PriceLimit, summary.OutputPath, summary.Skipped)
}

// cliOverrides carries the flag values layered over the environment config.
// Every flag overrides its env var the same way; headlessSet distinguishes
// an explicit -headless=true from the flag's default.
type cliOverrides struct {
	url         string
	priceLimit  int
	output      string
	headless    bool
	headlessSet bool
}

func applyOverrides(cfg *config.Config, o cliOverrides) {
	if o.url != "" {
		cfg.Scraper.URL = o.url
	}
	if o.priceLimit >= 0 {
		cfg.Scraper.PriceLimit = o.priceLimit
	}
	if o.output != "" {
		cfg.Scraper.OutputFile = o.output
	}
	if o.headlessSet {
		cfg.Browser.Headless = o.headless
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
