// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package geocode

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/photomap/internal/models"
)

func setupCacheDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("Failed to open BadgerDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCachedGeocoder_StoresSuccess(t *testing.T) {
	stub := &stubGeocoder{coord: models.Coordinate{Latitude: 41.9028, Longitude: 12.4964}}
	c := NewCachedGeocoder(stub, setupCacheDB(t), 0)

	for i := 0; i < 3; i++ {
		coord, err := c.Geocode(context.Background(), "Rome", "Italy")
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if coord != stub.coord {
			t.Errorf("call %d: coord = %+v", i, coord)
		}
	}
	if got := stub.calls.Load(); got != 1 {
		t.Errorf("wrapped geocoder called %d times, want 1", got)
	}
}

func TestCachedGeocoder_NormalizesKey(t *testing.T) {
	stub := &stubGeocoder{coord: models.Coordinate{Latitude: 1, Longitude: 2}}
	c := NewCachedGeocoder(stub, setupCacheDB(t), 0)

	_, _ = c.Geocode(context.Background(), "Fort  Kochi", "India")
	_, _ = c.Geocode(context.Background(), " fort kochi ", "INDIA")

	if got := stub.calls.Load(); got != 1 {
		t.Errorf("wrapped geocoder called %d times, want 1", got)
	}
}

func TestCachedGeocoder_DoesNotCacheFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", fmt.Errorf("%w: munnar", ErrNotFound)},
		{"service error", fmt.Errorf("%w: timeout", ErrService)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGeocoder{err: tt.err}
			c := NewCachedGeocoder(stub, setupCacheDB(t), 0)

			for i := 0; i < 2; i++ {
				if _, err := c.Geocode(context.Background(), "Munnar", "India"); !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
			}
			if got := stub.calls.Load(); got != 2 {
				t.Errorf("wrapped geocoder called %d times, want 2", got)
			}
		})
	}
}

func TestCachedGeocoder_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	stub := &stubGeocoder{coord: models.Coordinate{Latitude: 10.0889, Longitude: 77.0595}}

	db, err := OpenCacheDB(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewCachedGeocoder(stub, db, 0).Geocode(context.Background(), "Munnar", "India"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = OpenCacheDB(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	coord, err := NewCachedGeocoder(stub, db, 0).Geocode(context.Background(), "Munnar", "India")
	if err != nil {
		t.Fatal(err)
	}
	if coord != stub.coord {
		t.Errorf("coord = %+v", coord)
	}
	if got := stub.calls.Load(); got != 1 {
		t.Errorf("wrapped geocoder called %d times, want 1", got)
	}
}

func TestCacheKey(t *testing.T) {
	if got, want := CacheKey("  Fort   Kochi ", "India"), "geocode:fort kochi|india"; got != want {
		t.Errorf("CacheKey = %q, want %q", got, want)
	}
}
