// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/viewer"
	ws "github.com/tomtom215/photomap/internal/websocket"
)

// HealthChecker is the subset of the storage accessor used by the health endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Handler holds the dependencies of every HTTP handler.
type Handler struct {
	viewer    *viewer.Service
	store     HealthChecker
	wsHub     *ws.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler. store and hub may be nil.
func NewHandler(svc *viewer.Service, store HealthChecker, hub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		viewer:    svc,
		store:     store,
		wsHub:     hub,
		config:    cfg,
		startTime: time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts the page's own origin and any configured CORS origin.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Browsers always send Origin on websocket handshakes.
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
		return true
	}

	if h.config == nil {
		return true
	}

	for _, allowedOrigin := range h.config.Security.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
