// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

import (
	"net/http"

	"github.com/tomtom215/photomap/internal/models"
	"github.com/tomtom215/photomap/internal/validation"
	"github.com/tomtom215/photomap/internal/viewer"
)

// PhotosResponse is the payload of GET /photos.
type PhotosResponse struct {
	Records []models.PhotoRecord `json:"records"`
	Count   int                  `json:"count"`
}

// AdaptersResponse is the payload of GET /adapters.
type AdaptersResponse struct {
	Adapters    []string `json:"adapters"`
	Default     string   `json:"default"`
	CountryHint string   `json:"country_hint"`
}

// Markers returns the marker descriptors for a date range.
//
// An empty range is not an error: the response has empty=true, no markers
// and a message for the user.
//
// @Summary Get map markers
// @Description Filters photos by an inclusive calendar date range, groups them by location and title, and sizes each marker for the selected map adapter. Defaults to the full date range of the data.
// @Tags Map
// @Produce json
// @Param start_date query string false "First day to include (YYYY-MM-DD)" example("2023-05-01")
// @Param end_date query string false "Last day to include (YYYY-MM-DD)" example("2023-05-31")
// @Param adapter query string false "Map adapter (leaflet or scatter)" example("leaflet")
// @Success 200 {object} models.APIResponse{data=viewer.ViewResult} "Markers for the range"
// @Failure 400 {object} models.APIResponse "Invalid dates or unknown adapter"
// @Failure 404 {object} models.APIResponse "No photos stored"
// @Failure 503 {object} models.APIResponse "Storage unavailable"
// @Router /markers [get]
func (h *Handler) Markers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := MarkersRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Adapter:   q.Get("adapter"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	// Both values passed the datetime validator.
	start, _ := parseDateParam(req.StartDate)
	end, _ := parseDateParam(req.EndDate)

	result, err := h.viewer.View(r.Context(), viewer.ViewRequest{
		Start:   start,
		End:     end,
		Adapter: req.Adapter,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	gen := result.Generation
	respondSuccess(w, r, http.StatusOK, result, &gen)
}

// Photos returns every loaded photo record.
//
// @Summary List photo records
// @Description Returns every photo record with a valid timestamp, in storage order.
// @Tags Map
// @Produce json
// @Success 200 {object} models.APIResponse{data=PhotosResponse} "All records"
// @Failure 503 {object} models.APIResponse "Storage unavailable"
// @Router /photos [get]
func (h *Handler) Photos(w http.ResponseWriter, r *http.Request) {
	records, gen, err := h.viewer.Records(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []models.PhotoRecord{}
	}
	respondSuccess(w, r, http.StatusOK, PhotosResponse{Records: records, Count: len(records)}, &gen)
}

// Bounds returns the earliest and latest photo dates.
//
// @Summary Get date bounds
// @Description Returns the calendar dates of the earliest and latest photos, used as the default filter range.
// @Tags Map
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DateRange} "Date bounds"
// @Failure 404 {object} models.APIResponse "No photos stored"
// @Router /bounds [get]
func (h *Handler) Bounds(w http.ResponseWriter, r *http.Request) {
	bounds, gen, err := h.viewer.Bounds(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, bounds, &gen)
}

// Adapters lists the configured map adapters.
//
// @Summary List map adapters
// @Tags Map
// @Produce json
// @Success 200 {object} models.APIResponse{data=AdaptersResponse} "Adapter names and default"
// @Router /adapters [get]
func (h *Handler) Adapters(w http.ResponseWriter, r *http.Request) {
	names, def := h.viewer.Adapters()
	respondSuccess(w, r, http.StatusOK, AdaptersResponse{
		Adapters:    names,
		Default:     def,
		CountryHint: h.viewer.CountryHint(),
	}, nil)
}
