package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/maltedev/flipkart-watch-scraper/internal/models"
)

// ErrNoContainers means the results page held no product cards at all,
// usually because Flipkart rotated its class names. Callers must treat this
// differently from a page whose cards all failed the price filter.
var ErrNoContainers = errors.New("no product containers found")

// Flipkart search-result card selectors. These class names are generated and
// rotate occasionally; they are the single place to update when they do.
const (
	containerSelector = "div.hCKiGj"
	nameSelector      = "a.WKTcLC"
	brandSelector     = "div.syl9yP"
	priceSelector     = "div.Nx9bqj"
)

const unavailableMarker = "Currently unavailable"

type FlipkartParser struct {
	logger *slog.Logger
}

func NewFlipkartParser(logger *slog.Logger) *FlipkartParser {
	return &FlipkartParser{
		logger: logger.With("component", "parser"),
	}
}

// ExtractProducts parses the rendered markup into product records, one per
// well-formed card, in document order. A malformed card is skipped and
// counted, never fatal: the skipped return carries how many cards were
// dropped. Returns ErrNoContainers when the page has no cards at all.
func (p *FlipkartParser) ExtractProducts(html string) ([]models.Product, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse HTML: %w", err)
	}

	cards := doc.Find(containerSelector)
	if cards.Length() == 0 {
		return nil, 0, ErrNoContainers
	}

	var products []models.Product
	skipped := 0

	cards.Each(func(i int, card *goquery.Selection) {
		product, err := p.extractCard(card)
		if err != nil {
			skipped++
			p.logger.Warn("skipping product card", "index", i, "error", err)
			return
		}
		products = append(products, product)
	})

	return products, skipped, nil
}

func (p *FlipkartParser) extractCard(card *goquery.Selection) (models.Product, error) {
	name := strings.TrimSpace(card.Find(nameSelector).First().Text())
	if name == "" {
		return models.Product{}, errors.New("name element missing")
	}

	brand := strings.TrimSpace(card.Find(brandSelector).First().Text())
	if brand == "" {
		return models.Product{}, errors.New("brand element missing")
	}

	priceText := card.Find(priceSelector).First().Text()
	price, ok := ParsePrice(priceText)
	if !ok {
		return models.Product{}, fmt.Errorf("unparseable price %q", strings.TrimSpace(priceText))
	}

	availability := models.AvailabilityInStock
	if strings.Contains(card.Text(), unavailableMarker) {
		availability = models.AvailabilityOutOfStock
	}

	return models.Product{
		Name:         name,
		Brand:        brand,
		Price:        price,
		Availability: availability,
	}, nil
}
