// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Supported database drivers.
const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

// Supported presentation adapters.
const (
	AdapterLeaflet = "leaflet"
	AdapterScatter = "scatter"
)

// minGeocodeInterval is the usage-policy floor for the public geocoding service.
const minGeocodeInterval = time.Second

// Rate limiting bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validDrivers = map[string]bool{
	DriverSQLite: true,
	DriverDuckDB: true,
}

var validAdapters = map[string]bool{
	AdapterLeaflet: true,
	AdapterScatter: true,
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that configuration values are present and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateGeocoder(); err != nil {
		return err
	}
	if err := c.validateMap(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if !validDrivers[c.Database.Driver] {
		return fmt.Errorf("DB_DRIVER must be one of: sqlite, duckdb")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must not be negative")
	}
	return nil
}

func (c *Config) validateGeocoder() error {
	u, err := url.Parse(c.Geocoder.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GEOCODER_URL must be an absolute http(s) URL")
	}
	if c.Geocoder.UserAgent == "" {
		return fmt.Errorf("GEOCODER_USER_AGENT is required by the geocoding service usage policy")
	}
	if c.Geocoder.MinInterval < minGeocodeInterval {
		return fmt.Errorf("GEOCODER_MIN_INTERVAL must be at least %v", minGeocodeInterval)
	}
	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("GEOCODER_TIMEOUT must be positive")
	}
	if c.Geocoder.CacheDir != "" && c.Geocoder.CacheTTL <= 0 {
		return fmt.Errorf("GEOCODER_CACHE_TTL must be positive when GEOCODER_CACHE_DIR is set")
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.Geocoder.Breaker
	if b.MaxRequests == 0 {
		return fmt.Errorf("geocoder.breaker.max_requests must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("GEOCODER_BREAKER_TIMEOUT must be positive")
	}
	if b.FailureThreshold <= 0 || b.FailureThreshold > 1 {
		return fmt.Errorf("GEOCODER_BREAKER_THRESHOLD must be in (0, 1]")
	}
	return nil
}

// validateMap checks the adapter name and that every radius policy is sane.
func (c *Config) validateMap() error {
	if !validAdapters[c.Map.Adapter] {
		return fmt.Errorf("MAP_ADAPTER must be one of: leaflet, scatter")
	}

	l := c.Map.Leaflet
	if l.ScaleFactor <= 0 {
		return fmt.Errorf("LEAFLET_SCALE_FACTOR must be positive")
	}
	if l.MinRadius < 0 || l.MinRadius > l.MaxRadius {
		return fmt.Errorf("LEAFLET_MIN_RADIUS must be between 0 and LEAFLET_MAX_RADIUS (%v)", l.MaxRadius)
	}

	s := c.Map.Scatter
	if s.RadiusScale <= 0 {
		return fmt.Errorf("SCATTER_RADIUS_SCALE must be positive")
	}
	if s.MinPixels < 0 || s.MinPixels > s.MaxPixels {
		return fmt.Errorf("SCATTER_RADIUS_MIN_PIXELS must be between 0 and SCATTER_RADIUS_MAX_PIXELS (%v)", s.MaxPixels)
	}
	return nil
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
