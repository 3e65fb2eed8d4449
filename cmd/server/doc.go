// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

/*
Package main is the entry point for the Photomap server.

Photomap shows where geotagged photos were taken. It reads a table of
(title, datetime, latitude, longitude) rows from SQLite or DuckDB, filters
them by an inclusive calendar date range, groups them by location and title,
and draws one sized marker per group on a Leaflet or deck.gl map. Places
without photos can be added by name; the name is resolved through a
Nominatim-compatible geocoder and stored as a manual entry.

# Application Architecture

	RootSupervisor ("photomap")
	├── DataSupervisor ("data-layer")
	│   └── Database file watcher (DB_WATCH=true)
	└── APISupervisor ("api-layer")
	    ├── WebSocket Hub (reload notifications)
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, .env, config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Database: SQLite (default) or DuckDB, seeded from DB_SEED_PATH if missing
 4. Geocoder: rate-limited HTTP client, circuit breaker, optional BadgerDB cache
 5. Map adapters: leaflet and scatter marker sizing
 6. Viewer: record cache, date filter, grouping, add-place flow
 7. Supervisor Tree: Suture v4 process supervision
 8. HTTP Server: Chi router with middleware stack

# Configuration

Core environment variables:

	# Server
	HTTP_PORT=8501
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Storage
	DB_DRIVER=sqlite             # sqlite or duckdb
	DB_PATH=/tmp/photo_locations.db
	DB_SEED_PATH=photo_locations.db
	DB_WATCH=true

	# Geocoding
	GEOCODER_URL=https://nominatim.openstreetmap.org
	GEOCODER_COUNTRY=India
	GEOCODER_MIN_INTERVAL=1s     # never below 1s
	GEOCODER_CACHE_DIR=          # empty disables the lookup cache

	# Map
	MAP_ADAPTER=leaflet          # leaflet or scatter

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests, the hub closes websocket clients, and the database and
geocode cache are closed before exit.

# API Documentation

Swagger documentation is served at /swagger/index.html.
*/
package main
