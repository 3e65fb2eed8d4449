// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"errors"
	"io"
	"strings"
)

// Storage error classes. Every error returned by DB wraps exactly one of these.
var (
	// ErrStorageUnavailable means the database file or connection could not be opened or reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageCorrupt means the photos table or one of its required columns is missing.
	ErrStorageCorrupt = errors.New("storage corrupt")

	// ErrStorageWrite means an insert failed on a constraint violation or I/O error.
	ErrStorageWrite = errors.New("storage write failed")
)

// errorClass returns the metrics label for a classified storage error.
func errorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStorageCorrupt):
		return "corrupt"
	case errors.Is(err, ErrStorageWrite):
		return "write"
	default:
		return "unavailable"
	}
}

// schemaErrorMarkers are driver messages for a missing table or column, or a
// file that is not a database at all.
var schemaErrorMarkers = []string{
	"file is not a database",
	"not a valid duckdb database",
	"no such table",
	"no such column",
	"does not exist",
	"not found in from clause",
	"referenced column",
	"has no column",
}

// isSchemaError reports whether err was caused by a damaged or incomplete schema.
func isSchemaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range schemaErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// closeQuietly closes a resource on an error path where the Close error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
