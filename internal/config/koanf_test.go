// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/tmp/photo_locations.db" {
		t.Errorf("Database.Path = %q, want /tmp/photo_locations.db", cfg.Database.Path)
	}
	if cfg.Database.SeedPath != "photo_locations.db" {
		t.Errorf("Database.SeedPath = %q, want photo_locations.db", cfg.Database.SeedPath)
	}
	if cfg.Geocoder.MinInterval != time.Second {
		t.Errorf("Geocoder.MinInterval = %v, want 1s", cfg.Geocoder.MinInterval)
	}
	if cfg.Geocoder.Timeout != 10*time.Second {
		t.Errorf("Geocoder.Timeout = %v, want 10s", cfg.Geocoder.Timeout)
	}
	if cfg.Map.Adapter != AdapterLeaflet {
		t.Errorf("Map.Adapter = %q, want leaflet", cfg.Map.Adapter)
	}
	if cfg.Map.Leaflet != (LeafletConfig{ScaleFactor: 1.5, MinRadius: 4, MaxRadius: 15}) {
		t.Errorf("Map.Leaflet = %+v", cfg.Map.Leaflet)
	}
	if cfg.Map.Scatter != (ScatterConfig{RadiusScale: 3000, MinPixels: 3, MaxPixels: 40}) {
		t.Errorf("Map.Scatter = %+v", cfg.Map.Scatter)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "duckdb")
	t.Setenv("DB_PATH", "/data/photos.duckdb")
	t.Setenv("MAP_ADAPTER", "scatter")
	t.Setenv("SCATTER_RADIUS_SCALE", "1500")
	t.Setenv("GEOCODER_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("DB_WATCH", "false")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverDuckDB {
		t.Errorf("Database.Driver = %q, want duckdb", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/data/photos.duckdb" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Database.Watch {
		t.Error("Database.Watch should be false")
	}
	if cfg.Map.Adapter != AdapterScatter {
		t.Errorf("Map.Adapter = %q, want scatter", cfg.Map.Adapter)
	}
	if cfg.Map.Scatter.RadiusScale != 1500 {
		t.Errorf("Map.Scatter.RadiusScale = %v, want 1500", cfg.Map.Scatter.RadiusScale)
	}
	if cfg.Geocoder.Timeout != 5*time.Second {
		t.Errorf("Geocoder.Timeout = %v, want 5s", cfg.Geocoder.Timeout)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 8080
map:
  adapter: scatter
  leaflet:
    scale_factor: 2
    min_radius: 5
    max_radius: 20
geocoder:
  country_hint: France
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// Environment wins over the file
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Map.Adapter != AdapterScatter {
		t.Errorf("Map.Adapter = %q, want scatter", cfg.Map.Adapter)
	}
	if cfg.Map.Leaflet.ScaleFactor != 2 || cfg.Map.Leaflet.MaxRadius != 20 {
		t.Errorf("Map.Leaflet = %+v", cfg.Map.Leaflet)
	}
	if cfg.Geocoder.CountryHint != "France" {
		t.Errorf("Geocoder.CountryHint = %q, want France", cfg.Geocoder.CountryHint)
	}
	// Untouched sections keep defaults
	if cfg.Map.Scatter.MaxPixels != 40 {
		t.Errorf("Map.Scatter.MaxPixels = %v, want 40", cfg.Map.Scatter.MaxPixels)
	}
}

func TestLoadWithKoanf_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("GEOCODER_COUNTRY=Italy\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(DotEnvPathEnvVar, envFile)
	// Real environment takes precedence over the .env file
	t.Setenv("LOG_LEVEL", "warn")
	// Registered for cleanup so the value loaded from the file does not leak
	t.Setenv("GEOCODER_COUNTRY", "")
	os.Unsetenv("GEOCODER_COUNTRY")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Geocoder.CountryHint != "Italy" {
		t.Errorf("Geocoder.CountryHint = %q, want Italy", cfg.Geocoder.CountryHint)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_InvalidValues(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MAP_ADAPTER", "globe")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for unknown adapter")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"DB_PATH", "database.path"},
		{"db_path", "database.path"},
		{"LEAFLET_SCALE_FACTOR", "map.leaflet.scale_factor"},
		{"SCATTER_RADIUS_MAX_PIXELS", "map.scatter.max_pixels"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 1234\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}
