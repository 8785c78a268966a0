package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/hupe1980/dimgo"
)

// config is read from the environment; flags override it.
type config struct {
	Catalog   string `env:"DIMCALC_CATALOG"`
	LogLevel  string `env:"DIMCALC_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"DIMCALC_LOG_FORMAT" envDefault:"text"`
	CacheSize int    `env:"DIMCALC_CACHE_SIZE" envDefault:"256"`
	Output    string `env:"DIMCALC_OUTPUT" envDefault:"text"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func (c config) logger(w io.Writer) (*dimgo.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	switch c.LogFormat {
	case "json":
		return dimgo.NewJSONLogger(w, level), nil
	case "text", "":
		return dimgo.NewTextLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}

func (c config) engineOptions(w io.Writer) ([]dimgo.Option, error) {
	logger, err := c.logger(w)
	if err != nil {
		return nil, err
	}
	opts := []dimgo.Option{
		dimgo.WithLogger(logger),
		dimgo.WithCacheSize(c.CacheSize),
	}
	if c.Catalog != "" {
		opts = append(opts, dimgo.WithCatalogFile(c.Catalog))
	}
	return opts, nil
}
