// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// MetadataWatcher reloads the metadata document when its file changes.
//
// The parent directory is watched rather than the file itself: the document
// is replaced by rename on save, which drops a watch placed on the old inode.
// Bursts of events are collapsed into one reload after the debounce period.
type MetadataWatcher struct {
	path     string
	debounce time.Duration
	reloader Reloader
	watcher  *fsnotify.Watcher

	logger *logger.Logger
}

func NewMetadataWatcher(path string, debounce time.Duration, reloader Reloader, logger *logger.Logger) (*MetadataWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchingMetadata, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchingMetadata, err)
	}
	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("%w: %w", ErrWatchingMetadata, err)
	}

	return &MetadataWatcher{
		path:     absPath,
		debounce: debounce,
		reloader: reloader,
		watcher:  watcher,
		logger:   logger.Component("metadata_watcher"),
	}, nil
}

// Run processes file events until ctx is done. The fsnotify watcher is
// closed on return.
func (m *MetadataWatcher) Run(ctx context.Context) error {
	defer m.watcher.Close()

	m.logger.Info().Str("path", m.path).Dur("debounce", m.debounce).Msg("watching metadata document")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if !m.relevant(event) {
				continue
			}
			m.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("metadata change detected")

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(m.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			m.reload(ctx)

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Err(err).Msg("metadata watcher error")
		}
	}
}

// relevant reports whether event may have changed the document contents.
// Removal alone is ignored; an atomic replace follows it with a create.
func (m *MetadataWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != m.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (m *MetadataWatcher) reload(ctx context.Context) {
	if err := m.reloader.Reload(ctx); err != nil {
		m.logger.Err(err).Str("path", m.path).Msg("metadata reload failed, keeping previous document")
		return
	}
	m.logger.Info().Str("path", m.path).Msg("metadata reloaded")
}
