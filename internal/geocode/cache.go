// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/metrics"
	"github.com/tomtom215/photomap/internal/models"
)

const cacheKeyPrefix = "geocode:"

var _ Geocoder = (*CachedGeocoder)(nil)

// CachedGeocoder remembers successful lookups in BadgerDB.
//
// Misses and failures are never stored, so a place that later appears in
// the upstream data is picked up on the next attempt. Cache read and write
// errors are logged and otherwise ignored.
type CachedGeocoder struct {
	next Geocoder
	db   *badger.DB
	ttl  time.Duration
}

type cachedCoordinate struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	StoredAt  time.Time `json:"stored_at"`
}

// OpenCacheDB opens (or creates) the lookup cache under dir.
func OpenCacheDB(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open geocode cache at %s: %w", dir, err)
	}
	return db, nil
}

// NewCachedGeocoder wraps next with a lookup cache stored in db. A ttl of
// zero keeps entries forever. The caller owns db and closes it.
func NewCachedGeocoder(next Geocoder, db *badger.DB, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{next: next, db: db, ttl: ttl}
}

// CacheKey normalizes a lookup so that case and spacing differences share an entry.
func CacheKey(place, countryHint string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}
	return cacheKeyPrefix + norm(place) + "|" + norm(countryHint)
}

// Geocode returns a cached coordinate when present, otherwise asks next and
// stores a successful answer.
func (c *CachedGeocoder) Geocode(ctx context.Context, place, countryHint string) (models.Coordinate, error) {
	key := []byte(CacheKey(place, countryHint))

	coord, ok, err := c.lookup(key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", string(key)).Msg("Geocode cache read failed")
	}
	if ok {
		metrics.GeocodeRequests.WithLabelValues("cache_hit").Inc()
		return coord, nil
	}

	coord, err = c.next.Geocode(ctx, place, countryHint)
	if err != nil {
		return coord, err
	}

	if err := c.store(key, coord); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", string(key)).Msg("Geocode cache write failed")
	}
	return coord, nil
}

func (c *CachedGeocoder) lookup(key []byte) (models.Coordinate, bool, error) {
	var entry cachedCoordinate
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.Coordinate{}, false, nil
	}
	if err != nil {
		return models.Coordinate{}, false, err
	}
	return models.Coordinate{Latitude: entry.Latitude, Longitude: entry.Longitude}, true, nil
}

func (c *CachedGeocoder) store(key []byte, coord models.Coordinate) error {
	data, err := json.Marshal(cachedCoordinate{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		StoredAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, data)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
}
