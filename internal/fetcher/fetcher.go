package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/maltedev/flipkart-watch-scraper/internal/browser"
)

var (
	ErrDriverInit        = errors.New("failed to initialize browser driver")
	ErrNavigation        = errors.New("navigation failed")
	ErrChallengeDetected = errors.New("bot challenge detected")
)

// challengeMarkers are the strings Flipkart's interstitial renders instead of
// search results when it decides the client is not a person.
var challengeMarkers = []string{
	"Are you a human?",
	"Please verify you are a human",
}

// page is the slice of playwright.Page that Fetch actually drives.
type page interface {
	Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error)
	Content() (string, error)
	Close(options ...playwright.PageCloseOptions) error
}

// session is one browser session, released with Close.
type session interface {
	NewPage() (page, error)
	Close() error
}

type browserSession struct {
	b *browser.Browser
}

func (s *browserSession) NewPage() (page, error) {
	return s.b.NewPage()
}

func (s *browserSession) Close() error {
	return s.b.Close()
}

func newBrowserSession(opts *browser.Options) (session, error) {
	b, err := browser.New(opts)
	if err != nil {
		return nil, err
	}
	return &browserSession{b: b}, nil
}

// Fetcher renders one page per call. The browser session is acquired inside
// Fetch and released before it returns, so no OS-level resource outlives the
// call on any exit path.
type Fetcher struct {
	opts       *browser.Options
	settle     time.Duration
	logger     *slog.Logger
	newSession func(*browser.Options) (session, error)
}

func New(opts *browser.Options, settle time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		opts:       opts,
		settle:     settle,
		logger:     logger.With("component", "fetcher"),
		newSession: newBrowserSession,
	}
}

// Fetch navigates to url and returns the fully rendered markup. A fixed
// settle delay gives asynchronously loaded cards time to appear; there is no
// retry on any failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("%w: empty url", ErrNavigation)
	}

	s, err := f.newSession(f.opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDriverInit, err)
	}
	defer s.Close()

	p, err := s.NewPage()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDriverInit, err)
	}
	defer p.Close()

	f.logger.Info("navigating", "url", url)

	_, err = p.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return "", fmt.Errorf("%w: goto %s: %v", ErrNavigation, url, err)
	}

	// Fixed delay rather than wait-for-selector: the card markup is churned
	// by client-side hydration and settles within a few seconds.
	select {
	case <-time.After(f.settle):
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrNavigation, ctx.Err())
	}

	html, err := p.Content()
	if err != nil {
		return "", fmt.Errorf("%w: read content: %v", ErrNavigation, err)
	}

	if IsChallenge(html) {
		f.logger.Warn("challenge page served instead of results", "url", url)
		return "", ErrChallengeDetected
	}

	return html, nil
}

// IsChallenge reports whether the rendered markup is a bot-check interstitial
// rather than a results page.
func IsChallenge(html string) bool {
	for _, marker := range challengeMarkers {
		if strings.Contains(html, marker) {
			return true
		}
	}
	return false
}
