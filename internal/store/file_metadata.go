// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/models"
)

// metadataFileStorage keeps the metadata document in a JSON file. Writes go
// to a temporary file in the same directory which is then renamed over the
// document, so readers never observe a partially written file.
type metadataFileStorage struct {
	path string
	mu   sync.Mutex
}

// NewMetadataFileStorage constructs a [MetadataStorage] backed by path.
func NewMetadataFileStorage(path string) MetadataStorage {
	return &metadataFileStorage{path: path}
}

func (s *metadataFileStorage) Path() string {
	return s.path
}

// Load reads and parses the document. A missing file is created holding an
// empty document.
func (s *metadataFileStorage) Load(ctx context.Context) (models.Metadata, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", s.path).Msg("metadata file not found, creating an empty one")
		empty := models.Metadata{}
		if err = s.Save(ctx, empty); err != nil {
			return models.Metadata{}, err
		}
		return empty, nil
	}
	if err != nil {
		log.Err(err).Str("func", "metadataFileStorage.Load").Str("path", s.path).Msg("failed to read metadata file")
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrMetadataFile, err)
	}

	md, err := metadata.Parse(data)
	if err != nil {
		log.Err(err).Str("func", "metadataFileStorage.Load").Str("path", s.path).Msg("failed to parse metadata file")
		return models.Metadata{}, fmt.Errorf("%w: %s: %w", ErrMetadataFile, s.path, err)
	}

	return md, nil
}

// Save encodes md and atomically replaces the document.
func (s *metadataFileStorage) Save(ctx context.Context, md models.Metadata) error {
	log := logger.FromContext(ctx)

	data, err := metadata.Encode(md)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetadataFile, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = writeFileAtomic(s.path, data); err != nil {
		log.Err(err).Str("func", "metadataFileStorage.Save").Str("path", s.path).Msg("failed to write metadata file")
		return fmt.Errorf("%w: %w", ErrMetadataFile, err)
	}

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
