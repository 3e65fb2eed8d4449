// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tomtom215/photomap/internal/logging"
)

// ResolvePath decides which file the store opens.
//
//   - path exists and is writable: use it.
//   - path exists but is read-only: copy it into os.TempDir() and use the copy.
//   - path is missing and seedPath exists: copy the seed to path (or to
//     os.TempDir() when path's directory is not writable).
//   - neither exists: a new database is created at path (or in os.TempDir()).
//
// An existing copy in the fallback location is reused, never overwritten.
func ResolvePath(path, seedPath string) (string, error) {
	if path == MemoryPath {
		return path, nil
	}

	if fileExists(path) {
		if fileWritable(path) {
			return path, nil
		}
		target := fallbackPath(path)
		logging.WithComponent(logging.ComponentStore).Warn().Str("path", path).Str("fallback", target).Msg("Database is read-only, using a writable copy")
		if err := copyIfMissing(path, target); err != nil {
			return "", err
		}
		return target, nil
	}

	target := path
	if !dirWritable(filepath.Dir(path)) {
		target = fallbackPath(path)
		logging.WithComponent(logging.ComponentStore).Warn().Str("path", path).Str("fallback", target).Msg("Database directory is not writable, using fallback location")
	}

	if seedPath != "" && fileExists(seedPath) {
		if err := copyIfMissing(seedPath, target); err != nil {
			return "", err
		}
		logging.WithComponent(logging.ComponentStore).Info().Str("seed", seedPath).Str("path", target).Msg("Seeded database from bundled copy")
	}
	return target, nil
}

func fallbackPath(path string) string {
	return filepath.Join(os.TempDir(), filepath.Base(path))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func fileWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	closeQuietly(f)
	return true
}

// dirWritable creates dir if needed and checks it by creating a temp file.
func dirWritable(dir string) bool {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false
	}
	tmp, err := os.CreateTemp(dir, ".photomap-write-check-*")
	if err != nil {
		return false
	}
	name := tmp.Name()
	closeQuietly(tmp)
	_ = os.Remove(name)
	return true
}

func copyIfMissing(src, dst string) error {
	if fileExists(dst) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("%w: create directory for %s: %v", ErrStorageUnavailable, dst, err)
	}

	in, err := os.Open(src) //nolint:gosec // path comes from configuration
	if err != nil {
		return fmt.Errorf("%w: open seed %s: %v", ErrStorageUnavailable, src, err)
	}
	defer closeQuietly(in)

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrStorageUnavailable, dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		closeQuietly(out)
		_ = os.Remove(dst)
		return fmt.Errorf("%w: copy %s to %s: %v", ErrStorageUnavailable, src, dst, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("%w: finish copy to %s: %v", ErrStorageUnavailable, dst, err)
	}
	return nil
}
