// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package models

import "time"

// APIResponse is the envelope returned by every /api/v1 endpoint.
//
// Successful response:
//
//	{
//	  "status": "success",
//	  "data": {"markers": [...], "empty": false},
//	  "metadata": {"timestamp": "2024-03-01T09:15:30Z", "request_id": "…", "generation": 2}
//	}
//
// Error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "GEOCODE_NOT_FOUND", "message": "Location not found."},
//	  "metadata": {"timestamp": "2024-03-01T09:15:30Z", "request_id": "…"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every response. Generation is the reload counter the
// data was computed from, when the endpoint reads records.
type Metadata struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Generation *uint64   `json:"generation,omitempty"`
}

// APIError is a machine-readable error code with a message for the user.
//
// Codes:
//   - VALIDATION_ERROR, UNKNOWN_ADAPTER: bad request parameters
//   - NO_DATA: storage holds no usable records
//   - GEOCODE_NOT_FOUND, GEOCODE_SERVICE_ERROR: add-place lookup failures
//   - STORAGE_UNAVAILABLE, STORAGE_CORRUPT, STORAGE_WRITE_ERROR: storage failures
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
