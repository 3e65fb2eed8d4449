// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package services adapts the server's long-running components to the
// suture.Service interface: Serve(ctx) blocks until ctx is cancelled and
// returns an error only when the component failed and should be restarted.
package services
