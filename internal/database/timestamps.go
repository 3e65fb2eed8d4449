// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"fmt"
	"strings"
	"time"
)

// StoredTimestampLayout is how Insert writes the datetime column.
// It is ISO-8601 without a zone: the wall clock of the caller.
const StoredTimestampLayout = "2006-01-02T15:04:05"

// timestampLayouts are tried in order when reading the datetime column.
// Layouts without a zone are read as UTC so the stored calendar date is kept.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006:01:02 15:04:05", // EXIF DateTimeOriginal
	"2006-01-02",
}

// ParseTimestamp parses a stored datetime value. It returns an error for
// empty or unrecognized input; callers drop such rows.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// FormatTimestamp renders ts for storage.
func FormatTimestamp(ts time.Time) string {
	return ts.Format(StoredTimestampLayout)
}
