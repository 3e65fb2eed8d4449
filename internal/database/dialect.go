// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2" // registers "duckdb"
	_ "modernc.org/sqlite"             // registers "sqlite"

	"github.com/tomtom215/photomap/internal/config"
)

// dialect holds the SQL that differs between the supported engines.
type dialect struct {
	name       string
	driverName string
	dsn        func(path string) string
	schema     []string
	insert     string
}

// photoColumns is the select list every dialect reads. The order matches scanPhoto.
const photoColumns = "id, title, datetime, latitude, longitude, filepath"

var sqliteDialect = dialect{
	name:       config.DriverSQLite,
	driverName: "sqlite",
	dsn: func(path string) string {
		if path == MemoryPath {
			// Private to the single pooled connection Open allows.
			return ":memory:"
		}
		return "file:" + path + "?_pragma=busy_timeout(5000)"
	},
	schema: []string{
		`CREATE TABLE IF NOT EXISTS photos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			datetime TEXT,
			latitude REAL,
			longitude REAL,
			filepath TEXT
		)`,
	},
	// AUTOINCREMENT never hands out an id again, even after the highest row is
	// deleted. Files created without it (the bundled seed) fall back to
	// max(rowid)+1, which is stable while nothing deletes rows.
	insert: `INSERT INTO photos (title, datetime, latitude, longitude, filepath)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`,
}

var duckdbDialect = dialect{
	name:       config.DriverDuckDB,
	driverName: "duckdb",
	dsn: func(path string) string {
		if path == MemoryPath {
			return ""
		}
		return path + "?access_mode=read_write&autoinstall_known_extensions=false&autoload_known_extensions=false"
	},
	schema: []string{
		`CREATE TABLE IF NOT EXISTS photos (
			id BIGINT PRIMARY KEY,
			title VARCHAR,
			datetime VARCHAR,
			latitude DOUBLE,
			longitude DOUBLE,
			filepath VARCHAR
		)`,
	},
	// No sequence: a pre-populated file may already hold ids a fresh sequence would reuse.
	// Inserts are serialized by DB.writeMu, so max(id)+1 is stable.
	insert: `INSERT INTO photos (id, title, datetime, latitude, longitude, filepath)
		SELECT COALESCE(MAX(id), 0) + 1, CAST(? AS VARCHAR), CAST(? AS VARCHAR),
			CAST(? AS DOUBLE), CAST(? AS DOUBLE), CAST(? AS VARCHAR)
		FROM photos
		RETURNING id`,
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "", config.DriverSQLite:
		return sqliteDialect, nil
	case config.DriverDuckDB:
		return duckdbDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}
