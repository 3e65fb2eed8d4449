// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/photomap/internal/logging"
)

// DefaultDebounce groups bursts of writes from one import into a single reload.
const DefaultDebounce = 500 * time.Millisecond

// companionSuffixes are journal files written next to the database.
var companionSuffixes = []string{"-wal", "-journal", "-shm", ".wal"}

// DBWatcherService calls onChange after the database file (or one of its
// journal files) is modified by any process, once the writes have been
// quiet for the debounce interval.
//
// The parent directory is watched rather than the file so that replacing
// the file by rename is seen too.
type DBWatcherService struct {
	path     string
	debounce time.Duration
	onChange func()
}

// NewDBWatcherService watches path. A non-positive debounce uses DefaultDebounce.
func NewDBWatcherService(path string, debounce time.Duration, onChange func()) *DBWatcherService {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &DBWatcherService{path: path, debounce: debounce, onChange: onChange}
}

// Serve implements suture.Service.
func (s *DBWatcherService) Serve(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	s.logger().Info().Dur("debounce", s.debounce).Msg("Watching database file for changes")

	timer := time.NewTimer(s.debounce)
	timer.Stop()
	pending := 0

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case evt, ok := <-watcher.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if !s.relevant(evt) {
				continue
			}
			pending++
			timer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			s.logger().Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			s.logger().Info().Int("events", pending).Msg("Database file changed")
			pending = 0
			s.onChange()
		}
	}
}

func (s *DBWatcherService) logger() *zerolog.Logger {
	l := logging.WithComponent(logging.ComponentWatcher).With().Str("path", s.path).Logger()
	return &l
}

func (s *DBWatcherService) relevant(evt fsnotify.Event) bool {
	if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) && !evt.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Base(evt.Name)
	base := filepath.Base(s.path)
	if name == base {
		return true
	}
	for _, suffix := range companionSuffixes {
		if name == base+suffix {
			return true
		}
	}
	return false
}

func (s *DBWatcherService) String() string {
	return "db-watcher"
}
