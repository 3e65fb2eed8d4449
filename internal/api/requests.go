// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

// MarkersRequest holds the query parameters of GET /markers.
type MarkersRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Adapter   string `query:"adapter" validate:"omitempty,max=32"`
}

// AddPlaceRequest is the body of POST /places.
type AddPlaceRequest struct {
	Name    string `json:"name" validate:"required,placename,max=120" example:"Munnar"`
	Country string `json:"country,omitempty" validate:"omitempty,placename,max=80" example:"India"`
}
