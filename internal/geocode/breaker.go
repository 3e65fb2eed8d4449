// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package geocode

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/metrics"
	"github.com/tomtom215/photomap/internal/models"
)

const breakerName = "geocoder"

var _ Geocoder = (*BreakerClient)(nil)

// BreakerClient stops calling the wrapped Geocoder after repeated service
// failures and fails fast with ErrService until the breaker half-opens.
//
// A not-found answer is a healthy response and never counts as a failure.
type BreakerClient struct {
	next Geocoder
	cb   *gobreaker.CircuitBreaker[models.Coordinate]
	name string
}

// NewBreakerClient wraps next with a circuit breaker configured by cfg.
func NewBreakerClient(next Geocoder, cfg config.BreakerConfig) *BreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[models.Coordinate](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureThreshold
			if shouldTrip {
				logging.WithComponent(logging.ComponentGeocoder).Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening geocoder circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.WithComponent(logging.ComponentGeocoder).Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] Geocoder state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerClient{next: next, cb: cb, name: breakerName}
}

// Geocode forwards to the wrapped Geocoder unless the circuit is open.
func (b *BreakerClient) Geocode(ctx context.Context, place, countryHint string) (models.Coordinate, error) {
	coord, err := b.cb.Execute(func() (models.Coordinate, error) {
		return b.next.Geocode(ctx, place, countryHint)
	})

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		return coord, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Ctx(ctx).Warn().Err(err).Msg("[CIRCUIT BREAKER] Geocode request rejected")
		return models.Coordinate{}, fmt.Errorf("%w: %w", ErrService, err)
	case errors.Is(err, ErrNotFound):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		return models.Coordinate{}, err
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return models.Coordinate{}, err
	}
}

// State reports the breaker state as a lowercase string.
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
