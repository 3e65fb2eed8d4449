// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package database is the photo store accessor. It owns the connection to the
// sqlite or duckdb file holding the photos table and exposes EnsureSchema,
// LoadAll and Insert. It performs no caching; callers memoize LoadAll.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/photomap/internal/config"
	"github.com/tomtom215/photomap/internal/logging"
)

// defaultOpTimeout bounds calls made without a caller deadline.
const defaultOpTimeout = 30 * time.Second

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DB is the photo store accessor.
type DB struct {
	conn    *sql.DB
	dialect dialect
	path    string

	// writeMu serializes inserts; duckdb derives ids from max(id).
	writeMu sync.Mutex
}

// New resolves the database path, opens it with the configured driver and
// ensures the photos table exists.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	path, err := ResolvePath(cfg.Path, cfg.SeedPath)
	if err != nil {
		return nil, err
	}

	db, err := Open(cfg.Driver, path)
	if err != nil {
		return nil, err
	}
	db.configureConnectionPool(cfg.MaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), defaultOpTimeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		closeQuietly(db.conn)
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		closeQuietly(db.conn)
		return nil, err
	}

	logging.WithComponent(logging.ComponentStore).Info().
		Str("driver", db.dialect.name).
		Str("path", path).
		Msg("Photo store ready")
	return db, nil
}

// Open opens path with driver without touching the schema.
func Open(driver, path string) (*DB, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	conn, err := sql.Open(d.driverName, d.dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}
	if path == MemoryPath {
		// Each connection to :memory: is its own database, so keep exactly one
		// and never let the pool retire it.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	}

	return &DB{conn: conn, dialect: d, path: path}, nil
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool(maxOpen int) {
	if db.path == MemoryPath {
		return
	}
	if maxOpen > 0 {
		db.conn.SetMaxOpenConns(maxOpen)
	}
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// ensureContext applies defaultOpTimeout when ctx has no deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultOpTimeout)
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping %s: %v", ErrStorageUnavailable, db.path, err)
	}
	return nil
}

// Path returns the file the store is using after fallback resolution.
func (db *DB) Path() string {
	return db.path
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.dialect.name
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
