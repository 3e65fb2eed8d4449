// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package logging owns the single zerolog logger photomap writes through.
//
// Request-scoped code logs through Ctx so entries carry the request ID.
// Long-lived background parts (the file watcher, the websocket hub, the
// geocoder breaker) log through WithComponent so their entries can be told
// apart from request traffic:
//
//	logging.Ctx(r.Context()).Info().Str("title", name).Msg("Added place")
//	logging.WithComponent(logging.ComponentWatcher).Info().Msg("Database file changed")
//
// Every event chain must end in Msg or Send to be written.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Component names used for the "component" field.
const (
	ComponentStore    = "store"
	ComponentGeocoder = "geocoder"
	ComponentWatcher  = "watcher"
	ComponentHub      = "websocket-hub"
)

// Config selects level, encoding and destination of log output.
type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic or disabled.
	// Anything else means info.
	Level string

	// Format "console" renders human-readable lines; anything else is JSON.
	Format string

	// Caller appends the file:line of the log call.
	Caller bool

	// Output is os.Stderr when nil.
	Output io.Writer
}

// DefaultConfig is JSON at info level on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

var (
	mu     sync.RWMutex
	global = newLogger(DefaultConfig())
)

// Init replaces the global logger. Loggers handed out earlier keep writing
// to their old destination; the level applies to all of them.
func Init(cfg Config) {
	l := newLogger(cfg)
	mu.Lock()
	global = l
	mu.Unlock()
}

func newLogger(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	zctx := zerolog.New(out).With().Timestamp()
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return zctx.Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// WithComponent returns the global logger tagged with component.
// Resolve it at the log site rather than storing it, so a later Init is seen.
func WithComponent(component string) *zerolog.Logger {
	l := Logger().With().Str("component", component).Logger()
	return &l
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts a fatal event. The process exits after it is written.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}
