// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package mapview

import (
	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/models"
)

// LeafletAdapter sizes circle markers in screen pixels:
// radius = clamp(count * ScaleFactor, MinRadius, MaxRadius).
type LeafletAdapter struct {
	ScaleFactor float64
	MinRadius   float64
	MaxRadius   float64
}

// NewLeafletAdapter creates an adapter from configuration.
func NewLeafletAdapter(cfg config.LeafletConfig) *LeafletAdapter {
	return &LeafletAdapter{
		ScaleFactor: cfg.ScaleFactor,
		MinRadius:   cfg.MinRadius,
		MaxRadius:   cfg.MaxRadius,
	}
}

// Name implements Adapter.
func (a *LeafletAdapter) Name() string { return config.AdapterLeaflet }

// Radius returns the marker radius in pixels for count photos.
func (a *LeafletAdapter) Radius(count int) float64 {
	return clamp(float64(count)*a.ScaleFactor, a.MinRadius, a.MaxRadius)
}

// ToMarkers implements Adapter.
func (a *LeafletAdapter) ToMarkers(groups []models.MarkerGroup) []models.MarkerDescriptor {
	out := make([]models.MarkerDescriptor, len(groups))
	for i := range groups {
		out[i] = describe(&groups[i], a.Radius(groups[i].PhotoCount), UnitsPixels)
	}
	return out
}

// Widget implements Adapter.
func (a *LeafletAdapter) Widget() WidgetSettings {
	return WidgetSettings{Kind: config.AdapterLeaflet, Units: UnitsPixels}
}
