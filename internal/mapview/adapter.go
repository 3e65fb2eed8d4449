// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package mapview converts marker groups into render-ready marker descriptors
// for the map widget in use. Two adapters exist: a vector circle-marker map
// (Leaflet) and a WebGL scatter-plot map (deck.gl).
package mapview

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/models"
)

// ErrUnknownAdapter is returned for an adapter name that is not registered.
var ErrUnknownAdapter = errors.New("unknown map adapter")

// Radius units reported in MarkerDescriptor.Units.
const (
	UnitsPixels = "pixels"
	UnitsMeters = "meters"
)

// Adapter turns marker groups into markers for one rendering widget.
type Adapter interface {
	// Name is the configuration name of the adapter.
	Name() string

	// ToMarkers returns one descriptor per group, in input order.
	ToMarkers(groups []models.MarkerGroup) []models.MarkerDescriptor

	// Widget describes client-side settings the page needs to draw the markers.
	Widget() WidgetSettings
}

// WidgetSettings are passed through to the browser-side renderer.
type WidgetSettings struct {
	Kind      string  `json:"kind"`
	Units     string  `json:"units"`
	MinPixels float64 `json:"min_pixels,omitempty"`
	MaxPixels float64 `json:"max_pixels,omitempty"`
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Registry holds the configured adapters and the default selection.
type Registry struct {
	adapters    map[string]Adapter
	defaultName string
}

// NewRegistry builds both adapters from cfg. cfg.Adapter selects the default.
func NewRegistry(cfg *config.MapConfig) (*Registry, error) {
	r := &Registry{
		adapters: map[string]Adapter{
			config.AdapterLeaflet: NewLeafletAdapter(cfg.Leaflet),
			config.AdapterScatter: NewScatterAdapter(cfg.Scatter),
		},
		defaultName: cfg.Adapter,
	}
	if _, ok := r.adapters[cfg.Adapter]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, cfg.Adapter)
	}
	return r, nil
}

// Get returns the named adapter; an empty name selects the default.
func (r *Registry) Get(name string) (Adapter, error) {
	if name == "" {
		name = r.defaultName
	}
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, name)
	}
	return a, nil
}

// Default returns the configured default adapter.
func (r *Registry) Default() Adapter {
	return r.adapters[r.defaultName]
}

// Names lists registered adapter names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
