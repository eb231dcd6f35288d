// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/netalert/internal/config"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/migrations"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification indicates whether a failed database operation should
// be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// constraint violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a lock timeout).
	Retryable
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 50 * time.Millisecond
)

// DB wraps a *sql.DB together with the dialect-specific parts the
// repositories need: placeholder format, migration dialect and error
// classification.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	placeholder        squirrel.PlaceholderFormat
	dialect            string
	retryBase          time.Duration
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it with exponential backoff while the
// returned error is classified as [Retryable].
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	base := db.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	backoff := retry.WithMaxRetries(defaultMaxRetries, retry.NewExponential(base))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Int("attempt", attempt).
				Msg("retryable database error")
			return retry.RetryableError(err)
		}

		return err
	})
}
