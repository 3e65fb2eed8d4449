// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/middleware"
)

//go:embed static/index.html
var staticFS embed.FS

// indexData is injected into the map page.
type indexData struct {
	TileURL        string
	DefaultAdapter string
	Adapters       []string
	CountryHint    string
}

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	indexTemplate *template.Template
}

// NewRouter creates a router. mw may be nil, in which case CORS allows any
// origin and rate limiting is off.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(&ChiMiddlewareConfig{
			CORSAllowedOrigins: []string{"*"},
			RateLimitDisabled:  true,
		})
	}

	tmpl, err := template.ParseFS(staticFS, "static/index.html")
	if err != nil {
		// The page is embedded, so this only fails on a broken build.
		logging.Error().Err(err).Msg("Failed to parse index.html template")
	}

	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		indexTemplate: tmpl,
	}
}

// SetupChi builds the HTTP handler tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/", router.serveIndex)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	h := router.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.AccessLog))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(APISecurityHeaders())

		// The websocket stays outside the rate limiter; its
		// handshake is a single long-lived request.
		r.Get("/ws", h.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/health", h.Health)
			r.Get("/markers", h.Markers)
			r.Get("/photos", h.Photos)
			r.Get("/bounds", h.Bounds)
			r.Get("/adapters", h.Adapters)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWrites())

			r.Post("/places", h.AddPlace)
			r.Post("/reload", h.Reload)
		})
	})

	return r
}

func (router *Router) serveIndex(w http.ResponseWriter, r *http.Request) {
	if router.indexTemplate == nil {
		http.Error(w, "map page unavailable", http.StatusInternalServerError)
		return
	}

	names, def := router.handler.viewer.Adapters()
	data := indexData{
		TileURL:        router.handler.viewer.TileURL(),
		DefaultAdapter: def,
		Adapters:       names,
		CountryHint:    router.handler.viewer.CountryHint(),
	}

	var buf bytes.Buffer
	if err := router.indexTemplate.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render index page")
		http.Error(w, "map page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}
