// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package cache

import (
	"context"
	"sync"

	"github.com/tomtom215/photomap/internal/metrics"
	"github.com/tomtom215/photomap/internal/models"
)

// Loader reads every record from storage.
type Loader func(ctx context.Context) ([]models.PhotoRecord, error)

// ReloadCache caches the full record list until the next Invalidate.
type ReloadCache struct {
	mu         sync.Mutex
	generation uint64

	records   []models.PhotoRecord
	loadedGen uint64
	valid     bool

	inflight *pendingLoad
}

type pendingLoad struct {
	done    chan struct{}
	gen     uint64
	records []models.PhotoRecord
	err     error
}

// NewReloadCache returns an empty cache at generation 0.
func NewReloadCache() *ReloadCache {
	metrics.CacheGeneration.Set(0)
	return &ReloadCache{}
}

// Get returns the records for the current generation, calling loader on a miss.
//
// The returned slice is shared between callers and must not be modified.
// Callers arriving while a load for the same generation is running wait for
// that load instead of starting another. Loader errors are returned to every
// waiter and are not cached.
func (c *ReloadCache) Get(ctx context.Context, loader Loader) ([]models.PhotoRecord, uint64, error) {
	c.mu.Lock()
	if c.valid && c.loadedGen == c.generation {
		records, gen := c.records, c.loadedGen
		c.mu.Unlock()
		metrics.CacheEvents.WithLabelValues("hit").Inc()
		return records, gen, nil
	}

	if l := c.inflight; l != nil && l.gen == c.generation {
		c.mu.Unlock()
		metrics.CacheEvents.WithLabelValues("shared").Inc()
		select {
		case <-l.done:
			return l.records, l.gen, l.err
		case <-ctx.Done():
			return nil, l.gen, ctx.Err()
		}
	}

	l := &pendingLoad{done: make(chan struct{}), gen: c.generation}
	c.inflight = l
	c.mu.Unlock()
	metrics.CacheEvents.WithLabelValues("miss").Inc()

	records, err := loader(ctx)

	c.mu.Lock()
	l.records, l.err = records, err
	// A load that raced with Invalidate is handed to its waiters but not kept.
	if err == nil && l.gen == c.generation {
		c.records = records
		c.loadedGen = l.gen
		c.valid = true
	}
	if c.inflight == l {
		c.inflight = nil
	}
	c.mu.Unlock()
	close(l.done)

	if err != nil {
		metrics.CacheEvents.WithLabelValues("load_error").Inc()
	}
	return records, l.gen, err
}

// Invalidate drops the cached records and returns the new generation.
func (c *ReloadCache) Invalidate() uint64 {
	c.mu.Lock()
	c.generation++
	c.valid = false
	c.records = nil
	gen := c.generation
	c.mu.Unlock()

	metrics.CacheEvents.WithLabelValues("invalidate").Inc()
	metrics.CacheGeneration.Set(float64(gen))
	return gen
}

// Generation returns the current reload counter.
func (c *ReloadCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}
