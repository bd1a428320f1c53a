package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// Config berisi konfigurasi runtime dari variabel lingkungan.
type Config struct {
	Host           string
	Port           string
	BaseURL        string
	FetchMode      string
	RequestTimeout time.Duration
	PageDelay      time.Duration
	MaxPages       int
}

const (
	defaultHost      = "0.0.0.0"
	defaultPort      = "8000"
	defaultBaseURL   = "https://sman8ptk.sch.id/berita"
	defaultFetchMode = FetchModeHTTP
	defaultTimeout   = 30 * time.Second
)

// Load membaca Config dari environment dengan nilai default.
func Load() (*Config, error) {
	cfg := &Config{
		Host:           getenvDefault("HOST", defaultHost),
		Port:           getenvDefault("PORT", defaultPort),
		BaseURL:        getenvDefault("BERITA_BASE_URL", defaultBaseURL),
		FetchMode:      getenvDefault("FETCH_MODE", defaultFetchMode),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		PageDelay:      parseDurationDefault("PAGE_DELAY", 0),
		MaxPages:       parseIntDefault("MAX_PAGES", 0),
	}

	if cfg.FetchMode != FetchModeHTTP && cfg.FetchMode != FetchModeBrowser {
		return nil, fmt.Errorf("FETCH_MODE must be %q or %q, got %q", FetchModeHTTP, FetchModeBrowser, cfg.FetchMode)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.PageDelay < 0 {
		cfg.PageDelay = 0
	}
	if cfg.MaxPages < 0 {
		cfg.MaxPages = 0
	}

	return cfg, nil
}

// Addr menggabungkan host dan port untuk http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
