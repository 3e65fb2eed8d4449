// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

/*
Package cache holds the in-memory copy of the photos table used by the viewer.

The copy is keyed by a reload counter (the generation). Reads return the
cached records while the generation is unchanged. Invalidate bumps the
generation so the next read goes back to storage. The database file may be
rewritten by another process at any time, so the cache never tries to patch
records in place: a change of any kind is an invalidation.

Concurrent readers that miss share a single load. A failed load is never
cached.

# Usage

	c := cache.NewReloadCache()
	records, gen, err := c.Get(ctx, db.LoadAll)
	...
	c.Invalidate() // after an insert or a file change

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
