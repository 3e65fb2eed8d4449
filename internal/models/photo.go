// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// SourceManualEntry tags rows created through the "add place" flow.
const SourceManualEntry = "manual_entry"

// DateLayout is the calendar-date format used by the API and marker labels.
const DateLayout = "2006-01-02"

// PhotoRecord is one row of the photos table.
//
// Timestamp is always valid on records returned by the storage accessor;
// rows with a missing or unparseable datetime are dropped at load time.
type PhotoRecord struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"source"`
}

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate returns the record's position.
func (p *PhotoRecord) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// DateRange is an inclusive range of calendar dates.
// Only the year, month and day of Start and End are significant.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MarshalJSON renders both bounds as YYYY-MM-DD.
func (r DateRange) MarshalJSON() ([]byte, error) {
	return []byte(`{"start":"` + r.Start.Format(DateLayout) + `","end":"` + r.End.Format(DateLayout) + `"}`), nil
}

// UnmarshalJSON reads the YYYY-MM-DD form written by MarshalJSON as midnight UTC.
func (r *DateRange) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.ParseInLocation(DateLayout, raw.Start, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.ParseInLocation(DateLayout, raw.End, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	r.Start, r.End = start, end
	return nil
}

// MarkerGroupKey identifies a marker group. Groups are distinct unless all
// three fields are exactly equal.
type MarkerGroupKey struct {
	Latitude  float64
	Longitude float64
	Title     string
}

// MarkerGroup is the aggregate of every record sharing a MarkerGroupKey.
// It is derived on every filter change and never persisted.
type MarkerGroup struct {
	Title      string    `json:"title"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	PhotoCount int       `json:"photo_count"`
	LastSeen   time.Time `json:"last_seen"`
}

// Key returns the grouping key of the group.
func (g *MarkerGroup) Key() MarkerGroupKey {
	return MarkerGroupKey{Latitude: g.Latitude, Longitude: g.Longitude, Title: g.Title}
}

// MarkerDescriptor is a render-ready marker for a map widget.
type MarkerDescriptor struct {
	Position   Coordinate `json:"position"`
	Radius     float64    `json:"radius"`
	Units      string     `json:"units"`
	Label      string     `json:"label"`
	Title      string     `json:"title"`
	PhotoCount int        `json:"photo_count"`
	LastSeen   string     `json:"last_seen"`
}
