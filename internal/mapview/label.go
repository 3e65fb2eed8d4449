// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package mapview

import (
	"strconv"

	"github.com/tomtom215/photomap/internal/models"
)

// Label formats the tooltip text for a group:
//
//	Paris · 2 photos · last seen 2024-01-03
func Label(g *models.MarkerGroup) string {
	noun := " photos"
	if g.PhotoCount == 1 {
		noun = " photo"
	}
	return g.Title + " · " + strconv.Itoa(g.PhotoCount) + noun + " · last seen " + g.LastSeen.Format(models.DateLayout)
}

func describe(g *models.MarkerGroup, radius float64, units string) models.MarkerDescriptor {
	return models.MarkerDescriptor{
		Position:   models.Coordinate{Latitude: g.Latitude, Longitude: g.Longitude},
		Radius:     radius,
		Units:      units,
		Label:      Label(g),
		Title:      g.Title,
		PhotoCount: g.PhotoCount,
		LastSeen:   g.LastSeen.Format(models.DateLayout),
	}
}
