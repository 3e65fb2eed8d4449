// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/metrics"
	"github.com/tomtom215/photomap/internal/models"
)

// EnsureSchema creates the photos table when absent and checks that an
// existing table has every required column. It never alters existing data.
func (db *DB) EnsureSchema(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("ensure_schema", time.Since(start), errorClass(err)) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	for _, stmt := range db.dialect.schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return db.classifyReadError("create photos table", err)
		}
	}
	return db.verifyColumns(ctx)
}

// verifyColumns selects every required column from an empty result set.
func (db *DB) verifyColumns(ctx context.Context) error {
	rows, err := db.conn.QueryContext(ctx, "SELECT "+photoColumns+" FROM photos LIMIT 0")
	if err != nil {
		return db.classifyReadError("verify photos columns", err)
	}
	closeQuietly(rows)
	return nil
}

// LoadAll reads every row of the photos table ordered by id.
//
// Rows whose datetime is missing or unparseable, or whose coordinates are
// NULL, are skipped and counted; they never reach the pipeline.
func (db *DB) LoadAll(ctx context.Context) (records []models.PhotoRecord, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("load_all", time.Since(start), errorClass(err)) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, "SELECT "+photoColumns+" FROM photos ORDER BY id")
	if err != nil {
		return nil, db.classifyReadError("load photos", err)
	}
	defer closeQuietly(rows)

	records = make([]models.PhotoRecord, 0, 64)
	dropped := 0
	for rows.Next() {
		rec, ok, err := scanPhoto(rows)
		if err != nil {
			return nil, db.classifyReadError("scan photo row", err)
		}
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, db.classifyReadError("iterate photos", err)
	}

	if dropped > 0 {
		metrics.RowsDropped.Add(float64(dropped))
		logging.WithComponent(logging.ComponentStore).Warn().Int("dropped", dropped).Int("kept", len(records)).Msg("Skipped photo rows with missing datetime or coordinates")
	}
	return records, nil
}

// scanPhoto reads one row. ok is false when the row must be dropped.
func scanPhoto(rows *sql.Rows) (rec models.PhotoRecord, ok bool, err error) {
	var (
		title, datetime, source sql.NullString
		lat, lon                sql.NullFloat64
	)
	if err := rows.Scan(&rec.ID, &title, &datetime, &lat, &lon, &source); err != nil {
		return rec, false, err
	}
	if !datetime.Valid || !lat.Valid || !lon.Valid {
		return rec, false, nil
	}
	ts, perr := ParseTimestamp(datetime.String)
	if perr != nil {
		logging.Debug().Int64("id", rec.ID).Str("datetime", datetime.String).Msg("Dropping row with unparseable datetime")
		return rec, false, nil
	}

	rec.Title = title.String
	rec.Timestamp = ts
	rec.Latitude = lat.Float64
	rec.Longitude = lon.Float64
	rec.Source = source.String
	return rec, true, nil
}

// Insert adds one row with parameterized values and returns its new id.
func (db *DB) Insert(ctx context.Context, title string, latitude, longitude float64, ts time.Time, source string) (id int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", time.Since(start), errorClass(err)) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	row := db.conn.QueryRowContext(ctx, db.dialect.insert,
		title, FormatTimestamp(ts), latitude, longitude, source)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: insert %q: %v", ErrStorageWrite, title, err)
	}

	logging.Debug().Int64("id", id).Str("title", title).Msg("Inserted photo row")
	return id, nil
}

// Count returns the number of rows in the photos table, including rows LoadAll would drop.
func (db *DB) Count(ctx context.Context) (n int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("count", time.Since(start), errorClass(err)) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM photos").Scan(&n); err != nil {
		return 0, db.classifyReadError("count photos", err)
	}
	return n, nil
}

// classifyReadError maps a driver error to ErrStorageCorrupt or ErrStorageUnavailable.
func (db *DB) classifyReadError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	}
	if isSchemaError(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorageCorrupt, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
