// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package pipeline filters photo records by date and aggregates them into
// marker groups. Every function is pure: no I/O, no shared state, and input
// slices are never modified.
package pipeline

import (
	"errors"
	"sort"
	"time"

	"github.com/tomtom215/photomap/internal/models"
)

var (
	// ErrEmptyResult is a reportable, non-fatal condition: nothing matched.
	ErrEmptyResult = errors.New("no records match")

	// ErrInvalidRange means the start date is after the end date.
	ErrInvalidRange = errors.New("start date is after end date")
)

// civilDate is a calendar date with time of day discarded.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{year: y, month: m, day: d}
}

func (d civilDate) before(o civilDate) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func (d civilDate) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// FilterByDate returns the records whose calendar date lies in [start, end],
// inclusive at both ends. Only the date components of start, end and each
// timestamp are compared. It returns ErrEmptyResult when nothing matches.
func FilterByDate(records []models.PhotoRecord, start, end time.Time) ([]models.PhotoRecord, error) {
	from, to := dateOf(start), dateOf(end)
	if to.before(from) {
		return nil, ErrInvalidRange
	}

	var out []models.PhotoRecord
	for i := range records {
		d := dateOf(records[i].Timestamp)
		if d.before(from) || to.before(d) {
			continue
		}
		out = append(out, records[i])
	}
	if len(out) == 0 {
		return nil, ErrEmptyResult
	}
	return out, nil
}

// GroupMarkers collapses records sharing exact (latitude, longitude, title)
// into one group with its photo count and latest timestamp.
//
// Output is sorted by photo count descending, then last seen descending,
// then title, latitude and longitude ascending.
func GroupMarkers(records []models.PhotoRecord) []models.MarkerGroup {
	index := make(map[models.MarkerGroupKey]int, len(records))
	groups := make([]models.MarkerGroup, 0, len(records))

	for i := range records {
		r := &records[i]
		key := models.MarkerGroupKey{Latitude: r.Latitude, Longitude: r.Longitude, Title: r.Title}
		if pos, ok := index[key]; ok {
			g := &groups[pos]
			g.PhotoCount++
			if r.Timestamp.After(g.LastSeen) {
				g.LastSeen = r.Timestamp
			}
			continue
		}
		index[key] = len(groups)
		groups = append(groups, models.MarkerGroup{
			Title:      r.Title,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			PhotoCount: 1,
			LastSeen:   r.Timestamp,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := &groups[i], &groups[j]
		switch {
		case a.PhotoCount != b.PhotoCount:
			return a.PhotoCount > b.PhotoCount
		case !a.LastSeen.Equal(b.LastSeen):
			return a.LastSeen.After(b.LastSeen)
		case a.Title != b.Title:
			return a.Title < b.Title
		case a.Latitude != b.Latitude:
			return a.Latitude < b.Latitude
		default:
			return a.Longitude < b.Longitude
		}
	})
	return groups
}

// CenterPoint returns the arithmetic mean of latitudes and longitudes.
// No geodesic correction is applied. Empty input returns ErrEmptyResult.
func CenterPoint(records []models.PhotoRecord) (models.Coordinate, error) {
	if len(records) == 0 {
		return models.Coordinate{}, ErrEmptyResult
	}
	var sumLat, sumLon float64
	for i := range records {
		sumLat += records[i].Latitude
		sumLon += records[i].Longitude
	}
	n := float64(len(records))
	return models.Coordinate{Latitude: sumLat / n, Longitude: sumLon / n}, nil
}

// DateBounds returns the earliest and latest calendar dates present, as
// midnight UTC. Empty input returns ErrEmptyResult.
func DateBounds(records []models.PhotoRecord) (models.DateRange, error) {
	if len(records) == 0 {
		return models.DateRange{}, ErrEmptyResult
	}
	lo := dateOf(records[0].Timestamp)
	hi := lo
	for i := 1; i < len(records); i++ {
		d := dateOf(records[i].Timestamp)
		if d.before(lo) {
			lo = d
		}
		if hi.before(d) {
			hi = d
		}
	}
	return models.DateRange{Start: lo.time(), End: hi.time()}, nil
}
