// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestDateRange_JSONUsesCalendarDates(t *testing.T) {
	r := DateRange{
		Start: time.Date(2023, time.May, 1, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2023, time.June, 10, 23, 59, 59, 0, time.UTC),
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"start":"2023-05-01","end":"2023-06-10"}` {
		t.Fatalf("marshal = %s", data)
	}

	var back DateRange
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Start.Equal(time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", back.Start)
	}
	if !back.End.Equal(time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", back.End)
	}
}

func TestDateRange_UnmarshalRejectsBadDates(t *testing.T) {
	var r DateRange
	if err := json.Unmarshal([]byte(`{"start":"2023-05-01","end":"June"}`), &r); err == nil {
		t.Error("expected error for malformed end date")
	}
}

func TestMarkerGroup_Key(t *testing.T) {
	g := MarkerGroup{Title: "Paris", Latitude: 48.8566, Longitude: 2.3522, PhotoCount: 2}
	want := MarkerGroupKey{Latitude: 48.8566, Longitude: 2.3522, Title: "Paris"}
	if g.Key() != want {
		t.Errorf("Key() = %+v", g.Key())
	}
}
