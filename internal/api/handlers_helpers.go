// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/photomap/internal/database"
	"github.com/tomtom215/photomap/internal/geocode"
	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/mapview"
	"github.com/tomtom215/photomap/internal/models"
	"github.com/tomtom215/photomap/internal/pipeline"
	"github.com/tomtom215/photomap/internal/validation"
	"github.com/tomtom215/photomap/internal/viewer"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation          = validation.CodeValidationError
	CodeUnknownAdapter      = "UNKNOWN_ADAPTER"
	CodeNoData              = "NO_DATA"
	CodeGeocodeNotFound     = "GEOCODE_NOT_FOUND"
	CodeGeocodeServiceError = "GEOCODE_SERVICE_ERROR"
	CodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	CodeStorageCorrupt      = "STORAGE_CORRUPT"
	CodeStorageWriteError   = "STORAGE_WRITE_ERROR"
	CodeTimeout             = "TIMEOUT"
	CodeInternal            = "INTERNAL_ERROR"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 16 * 1024

// serviceError is the HTTP rendering of a domain error.
type serviceError struct {
	status  int
	code    string
	message string
}

// classifyError maps errors from the lower layers to a status, code and
// user-facing message. Order matters only where one error wraps another.
func classifyError(err error) serviceError {
	switch {
	case errors.Is(err, viewer.ErrNoData):
		return serviceError{http.StatusNotFound, CodeNoData, "No data found."}
	case errors.Is(err, viewer.ErrInvalidPlace):
		return serviceError{http.StatusBadRequest, CodeValidation, "Please enter a place name."}
	case errors.Is(err, pipeline.ErrInvalidRange):
		return serviceError{http.StatusBadRequest, CodeValidation, "Start date must not be after end date."}
	case errors.Is(err, mapview.ErrUnknownAdapter):
		return serviceError{http.StatusBadRequest, CodeUnknownAdapter, err.Error()}
	case errors.Is(err, geocode.ErrNotFound):
		return serviceError{http.StatusNotFound, CodeGeocodeNotFound, "Location not found."}
	case errors.Is(err, geocode.ErrService):
		return serviceError{http.StatusBadGateway, CodeGeocodeServiceError, "The location service is unavailable. Please try again later."}
	case errors.Is(err, database.ErrStorageUnavailable):
		return serviceError{http.StatusServiceUnavailable, CodeStorageUnavailable, "The photo database is unavailable."}
	case errors.Is(err, database.ErrStorageCorrupt):
		return serviceError{http.StatusInternalServerError, CodeStorageCorrupt, "The photo database is damaged or has an unexpected layout."}
	case errors.Is(err, database.ErrStorageWrite):
		return serviceError{http.StatusInternalServerError, CodeStorageWriteError, "The place could not be saved."}
	case errors.Is(err, context.DeadlineExceeded):
		return serviceError{http.StatusGatewayTimeout, CodeTimeout, "The request timed out."}
	default:
		return serviceError{http.StatusInternalServerError, CodeInternal, "Internal server error."}
	}
}

// respondJSON writes response with status.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

func newMetadata(r *http.Request) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
}

// respondSuccess wraps data in a success envelope. gen is omitted when nil.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, gen *uint64) {
	meta := newMetadata(r)
	meta.Generation = gen
	respondJSON(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: newMetadata(r),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondServiceError classifies err, logs it and writes the error envelope.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	se := classifyError(err)

	event := logging.Ctx(r.Context()).Info()
	if se.status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).Str("code", se.code).Int("status", se.status).Str("path", r.URL.Path).Msg("Request failed")

	respondError(w, r, se.status, se.code, se.message, nil)
}

// respondValidationError writes a 400 for a failed struct validation.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

// decodeJSONBody decodes a bounded JSON body into dst.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("unsupported content type %q", ct)
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// parseDateParam parses an optional YYYY-MM-DD value as midnight UTC.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(models.DateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// sanitizeLogValue strips control characters from client-supplied values before logging.
func sanitizeLogValue(s string) string {
	const maxLen = 200
	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
		if b.Len() >= maxLen {
			break
		}
	}
	return b.String()
}
