// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/photomap/config.yaml",
	"/etc/photomap/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the .env file location.
const DotEnvPathEnvVar = "DOTENV_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8501,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			Path:         "/tmp/photo_locations.db",
			SeedPath:     "photo_locations.db",
			Watch:        true,
			MaxOpenConns: 4,
		},
		Geocoder: GeocoderConfig{
			BaseURL:     "https://nominatim.openstreetmap.org",
			CountryHint: "India",
			UserAgent:   "photomap/1.0 (+https://github.com/tomtom215/photomap)",
			MinInterval: time.Second,
			Timeout:     10 * time.Second,
			CacheDir:    "",
			CacheTTL:    30 * 24 * time.Hour,
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          time.Minute,
				MinRequests:      3,
				FailureThreshold: 0.6,
			},
		},
		Map: MapConfig{
			Adapter: AdapterLeaflet,
			TileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Leaflet: LeafletConfig{
				ScaleFactor: 1.5,
				MinRadius:   4,
				MaxRadius:   15,
			},
			Scatter: ScatterConfig{
				RadiusScale: 3000,
				MinPixels:   3,
				MaxPixels:   40,
			},
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
func LoadWithKoanf() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	// DB_PATH -> database.path, MAP_ADAPTER -> map.adapter
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads a .env file into the process environment. Variables that
// are already set win. A missing default .env is not an error.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are koanf paths whose env values are comma-separated lists.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env strings into slices.
// Values loaded from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored so the process environment cannot pollute config.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Database
	"db_driver":         "database.driver",
	"db_path":           "database.path",
	"db_seed_path":      "database.seed_path",
	"db_watch":          "database.watch",
	"db_max_open_conns": "database.max_open_conns",

	// Geocoder
	"geocoder_url":               "geocoder.base_url",
	"geocoder_country":           "geocoder.country_hint",
	"geocoder_user_agent":        "geocoder.user_agent",
	"geocoder_min_interval":      "geocoder.min_interval",
	"geocoder_timeout":           "geocoder.timeout",
	"geocoder_cache_dir":         "geocoder.cache_dir",
	"geocoder_cache_ttl":         "geocoder.cache_ttl",
	"geocoder_breaker_timeout":   "geocoder.breaker.timeout",
	"geocoder_breaker_threshold": "geocoder.breaker.failure_threshold",

	// Map presentation
	"map_adapter":               "map.adapter",
	"map_tile_url":              "map.tile_url",
	"leaflet_scale_factor":      "map.leaflet.scale_factor",
	"leaflet_min_radius":        "map.leaflet.min_radius",
	"leaflet_max_radius":        "map.leaflet.max_radius",
	"scatter_radius_scale":      "map.scatter.radius_scale",
	"scatter_radius_min_pixels": "map.scatter.min_pixels",
	"scatter_radius_max_pixels": "map.scatter.max_pixels",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
