// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

/*
Package viewer is the application shell that sits between the HTTP API and
the storage, geocoding and presentation layers.

Each view request runs the whole pipeline against the cached record list:

	load (cached per reload generation)
	  -> filter by date range
	  -> group into markers
	  -> center point
	  -> adapter markers

The add-place flow geocodes a name, inserts one row and bumps the reload
generation so the next view sees the new row. Listeners registered as a
Notifier (the websocket hub) are told about reloads and new places.
*/
package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/photomap/internal/cache"
	"github.com/tomtom215/photomap/internal/geocode"
	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/mapview"
	"github.com/tomtom215/photomap/internal/metrics"
	"github.com/tomtom215/photomap/internal/models"
	"github.com/tomtom215/photomap/internal/pipeline"
)

var (
	// ErrNoData means storage holds no usable records at all.
	ErrNoData = errors.New("no photo records in storage")

	// ErrInvalidPlace means the add-place request had no usable name.
	ErrInvalidPlace = errors.New("place name is required")
)

// Notification types sent to the Notifier.
const (
	EventReload     = "reload"
	EventPlaceAdded = "place_added"
)

// Store is the subset of the storage accessor the viewer uses.
type Store interface {
	LoadAll(ctx context.Context) ([]models.PhotoRecord, error)
	Insert(ctx context.Context, title string, latitude, longitude float64, ts time.Time, source string) (int64, error)
}

// Notifier receives change notifications. Implementations must not block.
type Notifier interface {
	Broadcast(messageType string, data interface{})
}

// Options tunes a Service. Zero values are usable.
type Options struct {
	CountryHint string
	TileURL     string
	Notifier    Notifier
	Now         func() time.Time
}

// Service answers view and add-place requests.
type Service struct {
	store    Store
	geocoder geocode.Geocoder
	adapters *mapview.Registry
	records  *cache.ReloadCache

	countryHint string
	tileURL     string
	notifier    Notifier
	now         func() time.Time

	// addMu keeps geocode-then-insert sequences from interleaving.
	addMu sync.Mutex
}

// ViewRequest selects a date range and adapter. Nil bounds default to the
// earliest and latest dates in storage; an empty adapter selects the default.
type ViewRequest struct {
	Start   *time.Time
	End     *time.Time
	Adapter string
}

// ViewResult is everything the page needs to draw the map.
type ViewResult struct {
	Adapter        string                    `json:"adapter"`
	Widget         mapview.WidgetSettings    `json:"widget"`
	TileURL        string                    `json:"tile_url,omitempty"`
	Range          models.DateRange          `json:"range"`
	Bounds         models.DateRange          `json:"bounds"`
	Markers        []models.MarkerDescriptor `json:"markers"`
	Center         *models.Coordinate        `json:"center,omitempty"`
	TotalRecords   int                       `json:"total_records"`
	MatchedRecords int                       `json:"matched_records"`
	Empty          bool                      `json:"empty"`
	Message        string                    `json:"message,omitempty"`
	Generation     uint64                    `json:"generation"`
}

// AddPlaceRequest names a place to geocode and store. An empty Country
// falls back to the configured country hint.
type AddPlaceRequest struct {
	Name    string
	Country string
}

// AddPlaceResult is the stored record and the generation that includes it.
type AddPlaceResult struct {
	Record     models.PhotoRecord `json:"record"`
	Generation uint64             `json:"generation"`
}

// New wires a Service. A fresh reload cache is created at generation 0.
func New(store Store, geocoder geocode.Geocoder, adapters *mapview.Registry, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:       store,
		geocoder:    geocoder,
		adapters:    adapters,
		records:     cache.NewReloadCache(),
		countryHint: opts.CountryHint,
		tileURL:     opts.TileURL,
		notifier:    opts.Notifier,
		now:         now,
	}
}

// Records returns every loaded record and the generation it belongs to.
func (s *Service) Records(ctx context.Context) ([]models.PhotoRecord, uint64, error) {
	start := time.Now()
	records, gen, err := s.records.Get(ctx, s.store.LoadAll)
	metrics.ObserveStage("load", start)
	return records, gen, err
}

// Bounds returns the earliest and latest calendar dates in storage.
func (s *Service) Bounds(ctx context.Context) (models.DateRange, uint64, error) {
	records, gen, err := s.Records(ctx)
	if err != nil {
		return models.DateRange{}, gen, err
	}
	bounds, err := pipeline.DateBounds(records)
	if errors.Is(err, pipeline.ErrEmptyResult) {
		return models.DateRange{}, gen, ErrNoData
	}
	return bounds, gen, err
}

// View runs the filter and aggregate pipeline for req.
//
// An empty filter result is not an error: the returned result has Empty set,
// no markers and no center.
func (s *Service) View(ctx context.Context, req ViewRequest) (*ViewResult, error) {
	adapter, err := s.adapters.Get(req.Adapter)
	if err != nil {
		return nil, err
	}

	records, gen, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	bounds, err := pipeline.DateBounds(records)
	if err != nil {
		return nil, err
	}
	rng := requestedRange(bounds, req)

	result := &ViewResult{
		Adapter:      adapter.Name(),
		Widget:       adapter.Widget(),
		TileURL:      s.tileURL,
		Range:        rng,
		Bounds:       bounds,
		Markers:      []models.MarkerDescriptor{},
		TotalRecords: len(records),
		Generation:   gen,
	}

	start := time.Now()
	filtered, err := pipeline.FilterByDate(records, rng.Start, rng.End)
	metrics.ObserveStage("filter", start)
	switch {
	case errors.Is(err, pipeline.ErrEmptyResult):
		result.Empty = true
		result.Message = fmt.Sprintf("No photos found between %s and %s.",
			rng.Start.Format(models.DateLayout), rng.End.Format(models.DateLayout))
		metrics.MarkersRendered.WithLabelValues(adapter.Name()).Set(0)
		return result, nil
	case err != nil:
		return nil, err
	}

	start = time.Now()
	groups := pipeline.GroupMarkers(filtered)
	metrics.ObserveStage("group", start)

	center, err := pipeline.CenterPoint(filtered)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	result.Markers = adapter.ToMarkers(groups)
	metrics.ObserveStage("present", start)

	result.Center = &center
	result.MatchedRecords = len(filtered)
	metrics.MarkersRendered.WithLabelValues(adapter.Name()).Set(float64(len(result.Markers)))
	return result, nil
}

// requestedRange overlays the supplied bounds on the storage bounds. A
// defaulted bound never crosses a supplied one, so only a request giving both
// bounds in reverse order reaches the filter as an invalid range.
func requestedRange(bounds models.DateRange, req ViewRequest) models.DateRange {
	rng := bounds
	switch {
	case req.Start != nil && req.End != nil:
		rng.Start, rng.End = *req.Start, *req.End
	case req.Start != nil:
		rng.Start = *req.Start
		if rng.End.Before(rng.Start) {
			rng.End = rng.Start
		}
	case req.End != nil:
		rng.End = *req.End
		if rng.Start.After(rng.End) {
			rng.Start = rng.End
		}
	}
	return rng
}

// AddPlace geocodes req and stores the match as a new record titled with the
// place name. Nothing is written when the lookup fails.
func (s *Service) AddPlace(ctx context.Context, req AddPlaceRequest) (*AddPlaceResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidPlace
	}
	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = s.countryHint
	}

	s.addMu.Lock()
	defer s.addMu.Unlock()

	coord, err := s.geocoder.Geocode(ctx, name, country)
	if err != nil {
		return nil, err
	}

	ts := s.now().UTC().Truncate(time.Second)
	id, err := s.store.Insert(ctx, name, coord.Latitude, coord.Longitude, ts, models.SourceManualEntry)
	if err != nil {
		return nil, err
	}

	rec := models.PhotoRecord{
		ID:        id,
		Title:     name,
		Timestamp: ts,
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Source:    models.SourceManualEntry,
	}
	gen := s.Reload()

	logging.Ctx(ctx).Info().
		Int64("id", id).
		Str("title", name).
		Str("country", country).
		Uint64("generation", gen).
		Msg("Added place")

	result := &AddPlaceResult{Record: rec, Generation: gen}
	s.notify(EventPlaceAdded, result)
	return result, nil
}

// Reload invalidates the cached records and returns the new generation.
func (s *Service) Reload() uint64 {
	gen := s.records.Invalidate()
	logging.Debug().Uint64("generation", gen).Msg("Record cache invalidated")
	s.notify(EventReload, map[string]uint64{"generation": gen})
	return gen
}

// Generation returns the current reload counter.
func (s *Service) Generation() uint64 {
	return s.records.Generation()
}

// Adapters lists the registered adapter names and the default.
func (s *Service) Adapters() (names []string, defaultName string) {
	return s.adapters.Names(), s.adapters.Default().Name()
}

// CountryHint returns the default country qualifier for lookups.
func (s *Service) CountryHint() string {
	return s.countryHint
}

// TileURL returns the base map tile template.
func (s *Service) TileURL() string {
	return s.tileURL
}

func (s *Service) notify(messageType string, data interface{}) {
	if s.notifier != nil {
		s.notifier.Broadcast(messageType, data)
	}
}
