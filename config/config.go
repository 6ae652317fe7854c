package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type CrawlConfig struct {
	BaseURL     string `yaml:"base_url"`
	WorkerCount int    `yaml:"worker_count"`
}

type FetchConfig struct {
	Browser            string  `yaml:"browser"` // "chrome" or "http"
	Referer            string  `yaml:"referer"`
	ChallengeMarker    string  `yaml:"challenge_marker"`
	ChallengePollStr   string  `yaml:"challenge_poll"`
	RetryAttempts      int     `yaml:"retry_attempts"`
	RetryBackoffStr    string  `yaml:"retry_backoff"`
	RetryBackoffCapStr string  `yaml:"retry_backoff_cap"`
	RatePerSecond      float64 `yaml:"rate_per_second"`
	RateBurst          int     `yaml:"rate_burst"`

	// Parsed durations.
	ChallengePoll   time.Duration `yaml:"-"`
	RetryBackoff    time.Duration `yaml:"-"`
	RetryBackoffCap time.Duration `yaml:"-"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // "xlsx", "csv" or "mssql"
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
}

type Config struct {
	Crawl  CrawlConfig  `yaml:"crawl"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Output OutputConfig `yaml:"output"`
}

// Defaults is the configuration used when no config file is present.
func Defaults() Config {
	return Config{
		Crawl: CrawlConfig{
			BaseURL:     "https://www.flightradar24.com",
			WorkerCount: 8,
		},
		Fetch: FetchConfig{
			Browser:            "chrome",
			Referer:            "https://www.google.com/",
			ChallengeMarker:    "Checking your browser before accessing",
			ChallengePollStr:   "1s",
			RetryAttempts:      5,
			RetryBackoffStr:    "500ms",
			RetryBackoffCapStr: "30s",
			RatePerSecond:      2,
			RateBurst:          4,
		},
		Output: OutputConfig{
			Format: "xlsx",
			Path:   "Output.xlsx",
		},
	}
}

// Load reads the YAML config at path (falling back to ./config.yaml, then
// to defaults) and applies .env overrides for credentials.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Connection strings carry credentials and stay out of the YAML file.
	if dsn := os.Getenv("TURNAROUND_DSN"); dsn != "" {
		cfg.Output.DSN = dsn
	}

	var err error
	if cfg.Fetch.ChallengePoll, err = time.ParseDuration(cfg.Fetch.ChallengePollStr); err != nil {
		return cfg, fmt.Errorf("parse challenge_poll: %w", err)
	}
	if cfg.Fetch.RetryBackoff, err = time.ParseDuration(cfg.Fetch.RetryBackoffStr); err != nil {
		return cfg, fmt.Errorf("parse retry_backoff: %w", err)
	}
	if cfg.Fetch.RetryBackoffCap, err = time.ParseDuration(cfg.Fetch.RetryBackoffCapStr); err != nil {
		return cfg, fmt.Errorf("parse retry_backoff_cap: %w", err)
	}

	if cfg.Crawl.WorkerCount < 1 {
		return cfg, fmt.Errorf("worker_count must be at least 1, got %d", cfg.Crawl.WorkerCount)
	}
	return cfg, nil
}
