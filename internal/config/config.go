// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the service configuration from DOCW_* environment
// variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/docwidgets/internal/icon"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"DOCW_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"DOCW_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"DOCW_ENV" envDefault:"development"`
	LogLevel   string `env:"DOCW_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"DOCW_LOG_FORMAT"` // text or json; empty picks by Env
	DocsDir    string `env:"DOCW_DOCS_DIR" envDefault:"./docs"`
	IconCDN    string `env:"DOCW_ICON_CDN" envDefault:"https://d3gk2c5xim1je2.cloudfront.net/v6.6.0"`

	// Per-IP rate limiting
	RateLimitRPS   float64 `env:"DOCW_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"DOCW_RATE_LIMIT_BURST" envDefault:"40"`

	// Rendered page cache; Redis is used when RedisURL is set
	CacheEnabled    bool          `env:"DOCW_CACHE_ENABLED" envDefault:"true"`
	CacheTTL        time.Duration `env:"DOCW_CACHE_TTL" envDefault:"10m"`
	CacheMaxEntries int           `env:"DOCW_CACHE_MAX_ENTRIES" envDefault:"1000"`
	RedisURL        string        `env:"DOCW_REDIS_URL"`

	// Invalidate cached pages when files in DocsDir change
	WatchDocs bool `env:"DOCW_WATCH_DOCS" envDefault:"true"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// ResolvedLogFormat returns LogFormat, or text in development and json
// elsewhere when it is unset.
func (c Config) ResolvedLogFormat() string {
	if c.LogFormat != "" {
		return strings.ToLower(c.LogFormat)
	}
	if c.IsDevelopment() {
		return "text"
	}
	return "json"
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.IconCDN = strings.TrimRight(cfg.IconCDN, "/")
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("DOCW_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("DOCW_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("DOCW_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.IconCDN == "" {
		c.IconCDN = icon.DefaultCDN
	}
	u, err := url.Parse(c.IconCDN)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("DOCW_ICON_CDN must be an absolute http(s) URL, got %q", c.IconCDN)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("DOCW_RATE_LIMIT_RPS and DOCW_RATE_LIMIT_BURST must be positive")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("DOCW_CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("DOCW_CACHE_MAX_ENTRIES must not be negative, got %d", c.CacheMaxEntries)
	}
	if c.RedisURL != "" {
		u, err := url.Parse(c.RedisURL)
		if err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			return fmt.Errorf("DOCW_REDIS_URL must be a redis:// or rediss:// URL")
		}
	}
	return nil
}
