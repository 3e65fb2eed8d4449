// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package geocode resolves free-text place names to coordinates.
//
// Client talks to a Nominatim-compatible search endpoint. BreakerClient and
// CachedGeocoder wrap any Geocoder with a circuit breaker and a persistent
// lookup cache respectively. Callers classify failures with errors.Is against
// ErrNotFound and ErrService. Nothing in this package retries.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/metrics"
	"github.com/tomtom215/photomap/internal/models"
)

var (
	// ErrNotFound means the service answered but had no match for the query.
	ErrNotFound = errors.New("geocode: place not found")

	// ErrService covers transport failures, timeouts, bad status codes and
	// undecodable responses.
	ErrService = errors.New("geocode: service error")
)

// maxResponseBytes bounds how much of a search response is read.
const maxResponseBytes = 1 << 20

// Geocoder resolves a place name, qualified by a country, to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, place, countryHint string) (models.Coordinate, error)
}

var _ Geocoder = (*Client)(nil)

// Client queries a Nominatim search endpoint, never more often than once per
// configured interval.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

// nominatimResult is one entry of the search response. Coordinates arrive as strings.
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NewClient creates a client from geocoder settings. The first call is sent
// immediately; later calls wait until MinInterval has passed since the previous one.
func NewClient(cfg *config.GeocoderConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
	}
}

// Query builds the free-text search string sent to the service.
func Query(place, countryHint string) string {
	place = strings.TrimSpace(place)
	countryHint = strings.TrimSpace(countryHint)
	if countryHint == "" {
		return place
	}
	return place + ", " + countryHint
}

// Geocode returns the first match for place within countryHint.
func (c *Client) Geocode(ctx context.Context, place, countryHint string) (models.Coordinate, error) {
	if strings.TrimSpace(place) == "" {
		return models.Coordinate{}, fmt.Errorf("%w: empty place name", ErrNotFound)
	}
	query := Query(place, countryHint)

	start := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return models.Coordinate{}, fmt.Errorf("%w: rate limiter: %w", ErrService, err)
	}

	results, err := c.search(ctx, query)
	metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues("error").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("Geocode request failed")
		return models.Coordinate{}, err
	}

	if len(results) == 0 {
		metrics.GeocodeRequests.WithLabelValues("not_found").Inc()
		logging.Ctx(ctx).Info().Str("query", query).Msg("Geocode found no match")
		return models.Coordinate{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}

	coord, err := parseResult(&results[0])
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return models.Coordinate{}, err
	}

	metrics.GeocodeRequests.WithLabelValues("found").Inc()
	logging.Ctx(ctx).Debug().
		Str("query", query).
		Str("match", results[0].DisplayName).
		Float64("latitude", coord.Latitude).
		Float64("longitude", coord.Longitude).
		Msg("Geocode resolved place")
	return coord, nil
}

func (c *Client) search(ctx context.Context, query string) ([]nominatimResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrService, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: service returned status %d", ErrService, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrService, err)
	}
	return results, nil
}

func parseResult(r *nominatimResult) (models.Coordinate, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: invalid latitude %q", ErrService, r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: invalid longitude %q", ErrService, r.Lon)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.Coordinate{}, fmt.Errorf("%w: coordinate out of range (%g, %g)", ErrService, lat, lon)
	}
	return models.Coordinate{Latitude: lat, Longitude: lon}, nil
}
