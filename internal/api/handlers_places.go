// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

import (
	"net/http"

	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/validation"
	"github.com/tomtom215/photomap/internal/viewer"
)

// ReloadResponse is the payload of POST /reload.
type ReloadResponse struct {
	Generation uint64 `json:"generation"`
}

// AddPlace geocodes a place name and stores it as a manual entry.
//
// @Summary Add a place
// @Description Resolves a place name through the geocoding service and inserts one record timestamped now. Nothing is stored when the lookup fails.
// @Tags Places
// @Accept json
// @Produce json
// @Param place body AddPlaceRequest true "Place to add"
// @Success 201 {object} models.APIResponse{data=viewer.AddPlaceResult} "Place stored"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 404 {object} models.APIResponse "Location not found"
// @Failure 500 {object} models.APIResponse "Storage write failed"
// @Failure 502 {object} models.APIResponse "Geocoding service error"
// @Router /places [post]
func (h *Handler) AddPlace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req AddPlaceRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "Invalid request body", map[string]interface{}{
			"reason": err.Error(),
		})
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("place", sanitizeLogValue(req.Name)).
		Str("country", sanitizeLogValue(req.Country)).
		Msg("Add place requested")

	result, err := h.viewer.AddPlace(r.Context(), viewer.AddPlaceRequest{
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	gen := result.Generation
	respondSuccess(w, r, http.StatusCreated, result, &gen)
}

// Reload drops the cached records so the next read goes to storage.
//
// @Summary Reload photo data
// @Description Invalidates the record cache and notifies connected map pages.
// @Tags Places
// @Produce json
// @Success 200 {object} models.APIResponse{data=ReloadResponse} "New reload generation"
// @Router /reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	gen := h.viewer.Reload()
	logging.Ctx(r.Context()).Info().Uint64("generation", gen).Msg("Photo data reload requested")
	respondSuccess(w, r, http.StatusOK, ReloadResponse{Generation: gen}, &gen)
}
