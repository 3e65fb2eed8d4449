// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/photomap/internal/logging"
	ws "github.com/tomtom215/photomap/internal/websocket"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"` // "healthy" or "degraded"
	DatabaseConnected bool    `json:"database_connected"`
	PhotoCount        int64   `json:"photo_count"`
	Generation        uint64  `json:"generation"`
	WebSocketClients  int     `json:"websocket_clients"`
	Uptime            float64 `json:"uptime_seconds"`
}

// Health reports storage connectivity and runtime state.
//
// @Summary Get system health status
// @Description Returns database connectivity, stored photo count, reload generation, websocket client count and uptime.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus} "Healthy"
// @Failure 503 {object} models.APIResponse{data=HealthStatus} "Storage unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:     "healthy",
		Generation: h.viewer.Generation(),
		Uptime:     time.Since(h.startTime).Seconds(),
	}

	if h.store != nil && h.store.Ping(r.Context()) == nil {
		health.DatabaseConnected = true
		if n, err := h.store.Count(r.Context()); err == nil {
			health.PhotoCount = n
		} else {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check could not count photos")
		}
	}
	if h.wsHub != nil {
		health.WebSocketClients = h.wsHub.ClientCount()
	}

	status := http.StatusOK
	if !health.DatabaseConnected {
		health.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	gen := health.Generation
	respondSuccess(w, r, status, health, &gen)
}

// WebSocket upgrades the connection and subscribes it to change notifications.
//
// @Summary Establish WebSocket connection
// @Description Streams reload and place_added messages so open map pages refresh when data changes.
// @Tags Realtime
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {string} string "Bad Request"
// @Failure 503 {object} models.APIResponse "WebSocket hub not available"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	select {
	case h.wsHub.Register <- client:
		client.Start()
	case <-h.wsHub.Done():
		_ = conn.Close()
	case <-r.Context().Done():
		_ = conn.Close()
	}
}
