// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package geocode

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/models"
)

// stubGeocoder returns a fixed answer and counts calls.
type stubGeocoder struct {
	calls atomic.Int32
	coord models.Coordinate
	err   error
}

func (s *stubGeocoder) Geocode(ctx context.Context, place, countryHint string) (models.Coordinate, error) {
	s.calls.Add(1)
	return s.coord, s.err
}

func testBreakerConfig() config.BreakerConfig {
	return config.BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		MinRequests:      2,
		FailureThreshold: 0.5,
	}
}

func TestBreakerClient_PassesThroughSuccess(t *testing.T) {
	stub := &stubGeocoder{coord: models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}}
	b := NewBreakerClient(stub, testBreakerConfig())

	coord, err := b.Geocode(context.Background(), "Paris", "France")
	if err != nil {
		t.Fatal(err)
	}
	if coord != stub.coord {
		t.Errorf("coord = %+v, want %+v", coord, stub.coord)
	}
	if b.State() != "closed" {
		t.Errorf("state = %s, want closed", b.State())
	}
}

func TestBreakerClient_OpensOnServiceErrors(t *testing.T) {
	stub := &stubGeocoder{err: fmt.Errorf("%w: status 503", ErrService)}
	b := NewBreakerClient(stub, testBreakerConfig())

	for i := 0; i < 2; i++ {
		if _, err := b.Geocode(context.Background(), "Kochi", "India"); !errors.Is(err, ErrService) {
			t.Fatalf("call %d: err = %v, want ErrService", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("state = %s, want open", b.State())
	}

	_, err := b.Geocode(context.Background(), "Kochi", "India")
	if !errors.Is(err, ErrService) {
		t.Errorf("rejected call err = %v, want ErrService", err)
	}
	if got := stub.calls.Load(); got != 2 {
		t.Errorf("wrapped geocoder called %d times, want 2", got)
	}
}

func TestBreakerClient_NotFoundDoesNotTrip(t *testing.T) {
	stub := &stubGeocoder{err: fmt.Errorf("%w: %q", ErrNotFound, "Munnar, India")}
	b := NewBreakerClient(stub, testBreakerConfig())

	for i := 0; i < 5; i++ {
		if _, err := b.Geocode(context.Background(), "Munnar", "India"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("call %d: err = %v, want ErrNotFound", i, err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("state = %s, want closed", b.State())
	}
	if got := stub.calls.Load(); got != 5 {
		t.Errorf("wrapped geocoder called %d times, want 5", got)
	}
}
