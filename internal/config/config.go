// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. .env file: optional, loaded into the process environment without overriding it
//  3. Config File: optional YAML file (config.yaml) for persistent settings
//  4. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Geocoder GeocoderConfig `koanf:"geocoder"`
	Map      MapConfig      `koanf:"map"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// DatabaseConfig holds photo store settings.
//
// Environment Variables:
//   - DB_DRIVER: sqlite or duckdb (default: sqlite)
//   - DB_PATH: database file used at runtime (default: /tmp/photo_locations.db)
//   - DB_SEED_PATH: bundled database copied to DB_PATH when DB_PATH is missing
//   - DB_WATCH: reload the viewer when the file changes on disk (default: true)
type DatabaseConfig struct {
	Driver       string `koanf:"driver"`
	Path         string `koanf:"path"`
	SeedPath     string `koanf:"seed_path"`
	Watch        bool   `koanf:"watch"`
	MaxOpenConns int    `koanf:"max_open_conns"`
}

// GeocoderConfig holds settings for the place-name lookup service.
type GeocoderConfig struct {
	BaseURL     string        `koanf:"base_url"`
	CountryHint string        `koanf:"country_hint"`
	UserAgent   string        `koanf:"user_agent"`
	MinInterval time.Duration `koanf:"min_interval"` // Minimum spacing between outbound calls
	Timeout     time.Duration `koanf:"timeout"`

	// CacheDir enables the persistent lookup cache when non-empty.
	CacheDir string        `koanf:"cache_dir"`
	CacheTTL time.Duration `koanf:"cache_ttl"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the geocoder.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`      // Requests allowed while half-open
	Interval         time.Duration `koanf:"interval"`          // Closed-state counter reset period
	Timeout          time.Duration `koanf:"timeout"`           // Open-state duration before half-open
	MinRequests      uint32        `koanf:"min_requests"`      // Requests needed before tripping
	FailureThreshold float64       `koanf:"failure_threshold"` // Failure ratio that trips the breaker
}

// MapConfig selects and tunes the presentation adapter.
type MapConfig struct {
	Adapter string        `koanf:"adapter"` // "leaflet" or "scatter"
	TileURL string        `koanf:"tile_url"`
	Leaflet LeafletConfig `koanf:"leaflet"`
	Scatter ScatterConfig `koanf:"scatter"`
}

// LeafletConfig sizes vector circle markers in screen pixels.
type LeafletConfig struct {
	ScaleFactor float64 `koanf:"scale_factor"`
	MinRadius   float64 `koanf:"min_radius"`
	MaxRadius   float64 `koanf:"max_radius"`
}

// ScatterConfig sizes WebGL scatter points: radius in meters, clamped in pixels by the widget.
type ScatterConfig struct {
	RadiusScale float64 `koanf:"radius_scale"`
	MinPixels   float64 `koanf:"min_pixels"`
	MaxPixels   float64 `koanf:"max_pixels"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
