package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltedev/flipkart-watch-scraper/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		o      cliOverrides
		check  func(t *testing.T, cfg *config.Config)
	}{
		{
			name:   "unset flags leave config untouched",
			mutate: func(*config.Config) {},
			o:      cliOverrides{priceLimit: -1},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 2000, cfg.Scraper.PriceLimit)
				assert.Equal(t, "watch_data.xlsx", cfg.Scraper.OutputFile)
				assert.True(t, cfg.Browser.Headless)
			},
		},
		{
			name:   "each flag overrides its env value",
			mutate: func(*config.Config) {},
			o: cliOverrides{
				url:        "https://example.com/search",
				priceLimit: 1500,
				output:     "out.xlsx",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "https://example.com/search", cfg.Scraper.URL)
				assert.Equal(t, 1500, cfg.Scraper.PriceLimit)
				assert.Equal(t, "out.xlsx", cfg.Scraper.OutputFile)
			},
		},
		{
			name:   "explicit -headless=false wins",
			mutate: func(*config.Config) {},
			o:      cliOverrides{priceLimit: -1, headless: false, headlessSet: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Browser.Headless)
			},
		},
		{
			name:   "explicit -headless=true wins over env false",
			mutate: func(cfg *config.Config) { cfg.Browser.Headless = false },
			o:      cliOverrides{priceLimit: -1, headless: true, headlessSet: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.Browser.Headless)
			},
		},
		{
			name:   "headless default does not clobber env false",
			mutate: func(cfg *config.Config) { cfg.Browser.Headless = false },
			o:      cliOverrides{priceLimit: -1, headless: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Browser.Headless)
			},
		},
		{
			name:   "price limit zero is a valid override",
			mutate: func(*config.Config) {},
			o:      cliOverrides{priceLimit: 0},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Zero(t, cfg.Scraper.PriceLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			applyOverrides(cfg, tt.o)
			tt.check(t, cfg)
		})
	}
}
