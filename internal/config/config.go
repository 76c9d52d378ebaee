package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Scraper ScraperConfig
	Browser BrowserConfig
	Server  ServerConfig
	Logging LoggingConfig
}

type ScraperConfig struct {
	URL         string
	PriceLimit  int
	OutputFile  string
	SettleDelay time.Duration
}

type BrowserConfig struct {
	Headless       bool
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	TimezoneID     string
	Locale         string
	UserAgent      string
}

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// A missing .env is fine, real config may come from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Scraper: ScraperConfig{
			URL:         getEnvOrDefault("SCRAPER_URL", "https://www.flipkart.com/search?q=watches+for+men+under+2000"),
			PriceLimit:  getIntOrDefault("SCRAPER_PRICE_LIMIT", 2000),
			OutputFile:  getEnvOrDefault("SCRAPER_OUTPUT_FILE", "watch_data.xlsx"),
			SettleDelay: getDurationOrDefault("SCRAPER_SETTLE_DELAY", 5*time.Second),
		},
		Browser: BrowserConfig{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", true),
			Timeout:        getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			AcceptLanguage: getEnvOrDefault("BROWSER_ACCEPT_LANGUAGE", "en-IN,en;q=0.9"),
			TimezoneID:     getEnvOrDefault("BROWSER_TIMEZONE", "Asia/Kolkata"),
			Locale:         getEnvOrDefault("BROWSER_LOCALE", "en-IN"),
			UserAgent:      getEnvOrDefault("BROWSER_USER_AGENT", defaultUserAgent),
		},
		Server: ServerConfig{
			Addr:            getEnvOrDefault("SERVER_ADDR", ":8080"),
			ReadTimeout:     getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationOrDefault("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationOrDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.URL == "" {
		return fmt.Errorf("SCRAPER_URL must not be empty")
	}

	if c.Scraper.PriceLimit < 0 {
		return fmt.Errorf("SCRAPER_PRICE_LIMIT must not be negative")
	}

	if c.Scraper.OutputFile == "" {
		return fmt.Errorf("SCRAPER_OUTPUT_FILE must not be empty")
	}

	if c.Scraper.SettleDelay < 0 {
		return fmt.Errorf("SCRAPER_SETTLE_DELAY must not be negative")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
