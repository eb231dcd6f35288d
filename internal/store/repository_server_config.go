// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/models"
)

// serverConfigRepository stores the server configuration as one row per
// key in the server_config table. Each value is the JSON encoding of the
// field, so booleans and strings survive a round trip unchanged.
type serverConfigRepository struct {
	*DB
	now func() time.Time
}

// NewServerConfigRepository constructs a [ServerConfigRepository] on db.
func NewServerConfigRepository(db *DB) ServerConfigRepository {
	return &serverConfigRepository{
		DB:  db,
		now: time.Now,
	}
}

// Get reads every stored row and decodes them into a record.
func (r *serverConfigRepository) Get(ctx context.Context) (models.ServerConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectServerConfigQuery(r.placeholder)
	if err != nil {
		log.Err(err).Str("func", "serverConfigRepository.Get").Msg("failed to create query")
		return models.ServerConfig{}, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "serverConfigRepository.Get").Msg("failed to execute query for server config")
		return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stored := make(map[string]json.RawMessage, 11)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			log.Err(err).Str("func", "serverConfigRepository.Get").Msg("failed to scan server config row")
			return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if !json.Valid([]byte(value)) {
			return models.ServerConfig{}, fmt.Errorf("%w: key %s", ErrDecodingValue, name)
		}
		stored[name] = json.RawMessage(value)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "serverConfigRepository.Get").Msg("error occurred during rows iteration")
		return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decodeServerConfig(stored)
}

// Save upserts all keys of cfg in a single transaction, retrying the whole
// transaction on transient errors.
func (r *serverConfigRepository) Save(ctx context.Context, cfg models.ServerConfig) error {
	values, err := encodeServerConfig(cfg)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	return r.withRetry(ctx, func(ctx context.Context) error {
		return r.saveTx(ctx, names, values)
	})
}

func (r *serverConfigRepository) saveTx(ctx context.Context, names []string, values map[string]string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "serverConfigRepository.Save").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	updatedAt := r.now().UTC()
	for _, name := range names {
		query, args, err := buildUpsertServerConfigQuery(r.placeholder, name, values[name], updatedAt)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "serverConfigRepository.Save").
				Str("key", name).
				Msg("failed to upsert server config value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "serverConfigRepository.Save").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func encodeServerConfig(cfg models.ServerConfig) (map[string]string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("error encoding server config: %w", err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("error encoding server config: %w", err)
	}

	values := make(map[string]string, len(fields))
	for name, value := range fields {
		values[name] = string(value)
	}
	return values, nil
}

func decodeServerConfig(stored map[string]json.RawMessage) (models.ServerConfig, error) {
	var cfg models.ServerConfig
	if len(stored) == 0 {
		return cfg, nil
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}
	if err = json.Unmarshal(raw, &cfg); err != nil {
		return models.ServerConfig{}, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}

	return cfg, nil
}
