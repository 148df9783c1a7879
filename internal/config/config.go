package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort            = "8080"
	defaultEnvironment     = "development"
	defaultLogLevel        = "info"
	defaultQuoteRateLimit  = 2.0
	defaultQuoteRateBurst  = 4
	environmentDevelopment = "development"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// QuoteRateLimit is the sustained per-client rate for quote documents, in requests per second.
	QuoteRateLimit float64
	QuoteRateBurst int
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: local development values. Real deployments inject the environment.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("could not read .env", "error", err)
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) Config {
	cfg := Config{
		Port:           getenv("PORT"),
		Environment:    strings.ToLower(strings.TrimSpace(getenv("ENVIRONMENT"))),
		QuoteRateLimit: defaultQuoteRateLimit,
		QuoteRateBurst: defaultQuoteRateBurst,
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}

	level := getenv("LOG_LEVEL")
	if level == "" {
		level = defaultLogLevel
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		slog.Warn("invalid LOG_LEVEL, using info", "value", level)
		cfg.LogLevel = slog.LevelInfo
	}

	if v := getenv("QUOTE_RATE_LIMIT"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n <= 0 {
			slog.Warn("invalid QUOTE_RATE_LIMIT, using default", "value", v, "default", defaultQuoteRateLimit)
		} else {
			cfg.QuoteRateLimit = n
		}
	}
	if v := getenv("QUOTE_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			slog.Warn("invalid QUOTE_RATE_BURST, using default", "value", v, "default", defaultQuoteRateBurst)
		} else {
			cfg.QuoteRateBurst = n
		}
	}

	return cfg
}

// IsDev reports whether the server runs in the development environment.
func (c Config) IsDev() bool {
	return c.Environment == environmentDevelopment
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
