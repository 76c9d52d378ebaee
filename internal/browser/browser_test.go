package browser

import (
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.Headless {
		t.Error("Expected headless to be true by default")
	}

	if opts.Timeout != 30*time.Second {
		t.Errorf("Expected timeout to be 30s, got %v", opts.Timeout)
	}

	if opts.ViewportWidth != 1920 || opts.ViewportHeight != 1080 {
		t.Errorf("Expected viewport to be 1920x1080, got %dx%d", opts.ViewportWidth, opts.ViewportHeight)
	}

	if opts.Locale != "en-IN" {
		t.Errorf("Expected locale to be en-IN, got %s", opts.Locale)
	}

	if opts.TimezoneID != "Asia/Kolkata" {
		t.Errorf("Expected timezone to be Asia/Kolkata, got %s", opts.TimezoneID)
	}

	if opts.UserAgent == "" {
		t.Error("Expected a non-empty default user agent")
	}
}

func TestContextHeadersCarriesAcceptLanguage(t *testing.T) {
	opts := DefaultOptions()

	headers := contextHeaders(opts)

	if headers["Accept-Language"] != opts.AcceptLanguage {
		t.Errorf("Expected Accept-Language %q, got %q", opts.AcceptLanguage, headers["Accept-Language"])
	}

	for k, v := range opts.ExtraHeaders {
		if headers[k] != v {
			t.Errorf("Expected header %s=%q to be preserved, got %q", k, v, headers[k])
		}
	}
}

func TestContextHeadersEmptyAcceptLanguage(t *testing.T) {
	opts := DefaultOptions()
	opts.AcceptLanguage = ""

	if _, ok := contextHeaders(opts)["Accept-Language"]; ok {
		t.Error("Expected no Accept-Language header when the option is empty")
	}
}
