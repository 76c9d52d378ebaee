package scraper

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maltedev/flipkart-watch-scraper/internal/models"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Parser interface {
	ExtractProducts(html string) ([]models.Product, int, error)
}

// Service runs the fetch, extract, filter pipeline for one URL per call.
// The price limit is fixed at construction and read-only afterwards.
type Service struct {
	fetcher    Fetcher
	parser     Parser
	priceLimit int
	logger     *slog.Logger
}

func NewService(fetcher Fetcher, parser Parser, priceLimit int, logger *slog.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		parser:     parser,
		priceLimit: priceLimit,
		logger:     logger.With("component", "scraper"),
	}
}

func (s *Service) PriceLimit() int {
	return s.priceLimit
}

// Accept reports whether a record passes the price ceiling.
func (s *Service) Accept(p models.Product) bool {
	return p.Price <= s.priceLimit
}

// Run fetches url, extracts product records and returns the ones at or under
// the price limit, in encounter order. Fetch and extraction failures abort
// the run; per-card failures inside extraction only show up in the summary's
// skipped count.
func (s *Service) Run(ctx context.Context, url string) ([]models.Product, models.ScrapeSummary, error) {
	summary := models.ScrapeSummary{
		RunID: uuid.New().String(),
		URL:   url,
	}

	logger := s.logger.With("run_id", summary.RunID, "url", url)
	logger.Info("starting scrape", "price_limit", s.priceLimit)

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, summary, err
	}

	candidates, skipped, err := s.parser.ExtractProducts(html)
	if err != nil {
		return nil, summary, err
	}
	summary.Skipped = skipped

	accepted := make([]models.Product, 0, len(candidates))
	for _, candidate := range candidates {
		if s.Accept(candidate) {
			accepted = append(accepted, candidate)
		}
	}
	summary.Accepted = len(accepted)

	logger.Info("scrape complete",
		"candidates", len(candidates),
		"accepted", summary.Accepted,
		"skipped", summary.Skipped,
	)

	return accepted, summary, nil
}
