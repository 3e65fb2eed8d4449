// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package main provides the Photomap HTTP server
//
// @title Photomap API
// @version 1.0
// @description Map of where geotagged photos were taken, filtered by date, with place lookup for manual entries.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "GEOCODE_NOT_FOUND",
// @description     "message": "Location not found."
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-10-15T12:34:56Z",
// @description     "request_id": "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/photomap
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
//
// @tag.name Core
// @tag.description Health and runtime status
//
// @tag.name Map
// @tag.description Markers, records and date bounds for the map page
//
// @tag.name Places
// @tag.description Manual place entry and data reload
//
// @tag.name Realtime
// @tag.description WebSocket change notifications
package main
