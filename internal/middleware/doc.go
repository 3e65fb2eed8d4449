// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package middleware provides HTTP middleware shared by the API routes:
// request ID propagation, access logging and Prometheus instrumentation.
//
// Middleware here uses the func(http.HandlerFunc) http.HandlerFunc shape;
// the api package adapts it for chi's r.Use.
package middleware
