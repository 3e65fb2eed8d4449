// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

/*
Package api serves the photo map over HTTP.

Routes (chi):

	GET  /api/v1/health           storage ping, record count, reload generation
	GET  /api/v1/markers          markers for a date range and adapter
	GET  /api/v1/photos           every loaded record
	GET  /api/v1/bounds           earliest and latest photo dates
	GET  /api/v1/adapters         configured map adapters
	POST /api/v1/places           geocode a place name and store it
	POST /api/v1/reload           drop the record cache
	GET  /api/v1/ws               websocket change notifications
	GET  /metrics                 Prometheus
	GET  /swagger/*               Swagger UI
	GET  /                        map page

Every /api/v1 response uses the models.APIResponse envelope. Errors from the
storage, geocoding and pipeline layers are translated to status codes and
error codes in one place (respondServiceError), so handlers never decide
status codes for domain errors themselves.
*/
package api
