// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package mapview

import (
	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/models"
)

// ScatterAdapter sizes WebGL scatter points linearly in meters:
// radius = count * RadiusScale. The widget clamps the rendered size to
// [MinPixels, MaxPixels] at the current zoom, so the pixel bounds are
// forwarded through Widget rather than applied here.
type ScatterAdapter struct {
	RadiusScale float64
	MinPixels   float64
	MaxPixels   float64
}

// NewScatterAdapter creates an adapter from configuration.
func NewScatterAdapter(cfg config.ScatterConfig) *ScatterAdapter {
	return &ScatterAdapter{
		RadiusScale: cfg.RadiusScale,
		MinPixels:   cfg.MinPixels,
		MaxPixels:   cfg.MaxPixels,
	}
}

// Name implements Adapter.
func (a *ScatterAdapter) Name() string { return config.AdapterScatter }

// Radius returns the marker radius in meters for count photos.
func (a *ScatterAdapter) Radius(count int) float64 {
	return float64(count) * a.RadiusScale
}

// PixelRadius returns the on-screen radius for a point of radiusMeters at a
// scale of metersPerPixel, clamped the way the widget clamps it.
func (a *ScatterAdapter) PixelRadius(radiusMeters, metersPerPixel float64) float64 {
	if metersPerPixel <= 0 {
		return a.MaxPixels
	}
	return clamp(radiusMeters/metersPerPixel, a.MinPixels, a.MaxPixels)
}

// ToMarkers implements Adapter.
func (a *ScatterAdapter) ToMarkers(groups []models.MarkerGroup) []models.MarkerDescriptor {
	out := make([]models.MarkerDescriptor, len(groups))
	for i := range groups {
		out[i] = describe(&groups[i], a.Radius(groups[i].PhotoCount), UnitsMeters)
	}
	return out
}

// Widget implements Adapter.
func (a *ScatterAdapter) Widget() WidgetSettings {
	return WidgetSettings{
		Kind:      config.AdapterScatter,
		Units:     UnitsMeters,
		MinPixels: a.MinPixels,
		MaxPixels: a.MaxPixels,
	}
}
