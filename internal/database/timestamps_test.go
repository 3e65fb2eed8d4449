// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-01-01T10:00:00Z", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-01-01T10:00:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-01-01 10:00:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-01-01 10:00:00.250", want: time.Date(2024, 1, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{in: "2024-01-01 23:30", want: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)},
		{in: "2023:12:31 23:59:59", want: time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)},
		{in: "2024-01-03", want: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{in: "  2024-01-03  ", want: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{in: "", wantErr: true},
		{in: "yesterday", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "01/02/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp_KeepsOffsetDate(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01T23:30:00+05:30")
	if err != nil {
		t.Fatal(err)
	}
	if got.Day() != 1 {
		t.Errorf("calendar day = %d, want the stored day 1", got.Day())
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 6, 1, 7, 5, 3, 0, time.UTC)
	s := FormatTimestamp(ts)
	if s != "2024-06-01T07:05:03" {
		t.Fatalf("FormatTimestamp() = %q", s)
	}
	back, err := ParseTimestamp(s)
	if err != nil || !back.Equal(ts) {
		t.Errorf("round trip = %v, %v", back, err)
	}
}
