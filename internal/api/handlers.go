package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/maltedev/flipkart-watch-scraper/internal/fetcher"
	"github.com/maltedev/flipkart-watch-scraper/internal/models"
	"github.com/maltedev/flipkart-watch-scraper/internal/parser"
	"github.com/maltedev/flipkart-watch-scraper/internal/scraper"
)

type Handlers struct {
	fetcher      scraper.Fetcher
	parser       scraper.Parser
	defaultURL   string
	defaultLimit int
	logger       *slog.Logger
}

func NewHandlers(fetcher scraper.Fetcher, parser scraper.Parser, defaultURL string, defaultLimit int, logger *slog.Logger) *Handlers {
	return &Handlers{
		fetcher:      fetcher,
		parser:       parser,
		defaultURL:   defaultURL,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// ScrapeRequest triggers one pipeline run. Both fields are optional and fall
// back to the configured defaults.
type ScrapeRequest struct {
	URL        string `json:"url"`
	PriceLimit *int   `json:"price_limit"`
}

type ScrapeResponse struct {
	RunID      string           `json:"run_id"`
	URL        string           `json:"url"`
	PriceLimit int              `json:"price_limit"`
	Accepted   int              `json:"accepted"`
	Skipped    int              `json:"skipped"`
	Records    []models.Product `json:"records"`
}

// Scrape runs the pipeline for the requested URL and returns the accepted
// records as JSON. Nothing is written to disk in this mode.
func (h *Handlers) Scrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	url := req.URL
	if url == "" {
		url = h.defaultURL
	}

	limit := h.defaultLimit
	if req.PriceLimit != nil {
		if *req.PriceLimit < 0 {
			h.respondError(w, http.StatusBadRequest, "price_limit must not be negative")
			return
		}
		limit = *req.PriceLimit
	}

	svc := scraper.NewService(h.fetcher, h.parser, limit, h.logger)

	records, summary, err := svc.Run(r.Context(), url)
	if err != nil {
		h.logger.Error("scrape failed", "error", err, "url", url)
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, ScrapeResponse{
		RunID:      summary.RunID,
		URL:        summary.URL,
		PriceLimit: limit,
		Accepted:   summary.Accepted,
		Skipped:    summary.Skipped,
		Records:    records,
	})
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, fetcher.ErrChallengeDetected):
		return http.StatusServiceUnavailable
	case errors.Is(err, fetcher.ErrDriverInit):
		return http.StatusInternalServerError
	case errors.Is(err, fetcher.ErrNavigation), errors.Is(err, parser.ErrNoContainers):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
