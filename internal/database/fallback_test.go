// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package database

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestResolvePath_ExistingWritable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo_locations.db")
	writeFile(t, path, "live")
	seed := filepath.Join(dir, "seed.db")
	writeFile(t, seed, "seed")

	got, err := ResolvePath(path, seed)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("ResolvePath() = %q, want %q", got, path)
	}
	if readFile(t, path) != "live" {
		t.Error("existing database must not be overwritten by the seed")
	}
}

func TestResolvePath_CopiesSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runtime", "photo_locations.db")
	seed := filepath.Join(dir, "photo_locations.db")
	writeFile(t, seed, "seed-bytes")

	got, err := ResolvePath(path, seed)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("ResolvePath() = %q, want %q", got, path)
	}
	if readFile(t, path) != "seed-bytes" {
		t.Error("seed was not copied to the runtime path")
	}
}

func TestResolvePath_NoSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")

	got, err := ResolvePath(path, filepath.Join(t.TempDir(), "missing.db"))
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("ResolvePath() = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("ResolvePath must not create the database file itself")
	}
}

func TestResolvePath_ReadOnlyFallsBackToTemp(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "photomap-readonly-test.db")
	writeFile(t, path, "readonly")
	if err := os.Chmod(path, 0o400); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(os.TempDir(), "photomap-readonly-test.db")
	_ = os.Remove(want)
	t.Cleanup(func() { _ = os.Remove(want) })

	got, err := ResolvePath(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
	if readFile(t, got) != "readonly" {
		t.Error("fallback copy has wrong content")
	}
}

func TestResolvePath_Memory(t *testing.T) {
	got, err := ResolvePath(":memory:", "seed.db")
	if err != nil || got != ":memory:" {
		t.Errorf("ResolvePath(:memory:) = %q, %v", got, err)
	}
}
