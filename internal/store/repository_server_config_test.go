// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		placeholder:        squirrel.Question,
		dialect:            "sqlite3",
		retryBase:          time.Millisecond,
		logger:             logger.Nop(),
	}
}

func sampleServerConfig() models.ServerConfig {
	return models.ServerConfig{
		AlertNewDevice:     true,
		AlertDownDevice:    false,
		AlertDownThreshold: "3",
		AlertFrom:          "pi@home.lan",
		AlertSubject:       "alert",
		AlertTo:            "me@home.lan",
		SMTPServer:         "smtp.home.lan",
		SMTPPort:           "587",
		SMTPUsername:       "pi",
		SMTPPassword:       "secret",
		WebAdminDeviceURL:  "http://pi.lan/device",
	}
}

// expectUpserts registers one upsert per key of cfg in sorted key order.
func expectUpserts(t *testing.T, mock sqlmock.Sqlmock, cfg models.ServerConfig) {
	t.Helper()
	values, err := encodeServerConfig(cfg)
	require.NoError(t, err)

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO server_config")).
			WithArgs(name, values[name], sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestServerConfigRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))

	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow(models.KeyAlertNewDevice, "true").
		AddRow(models.KeySMTPPort, `"587"`).
		AddRow("LEGACY_KEY", `"ignored"`)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, value FROM server_config ORDER BY name")).
		WillReturnRows(rows)

	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.AlertNewDevice)
	assert.False(t, cfg.AlertDownDevice)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Empty(t, cfg.SMTPServer)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServerConfigRepository_Get_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))

	mock.ExpectQuery("SELECT name, value FROM server_config").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ServerConfig{}, cfg)
}

func TestServerConfigRepository_Get_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))

	mock.ExpectQuery("SELECT name, value FROM server_config").
		WillReturnError(errors.New("no such table"))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestServerConfigRepository_Get_InvalidValue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))

	mock.ExpectQuery("SELECT name, value FROM server_config").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow(models.KeyAlertNewDevice, `"yes"`))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrDecodingValue)
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestServerConfigRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))
	cfg := sampleServerConfig()

	mock.ExpectBegin()
	expectUpserts(t, mock, cfg)
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), cfg))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServerConfigRepository_Save_ExecFailsRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO server_config").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), sampleServerConfig())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServerConfigRepository_Save_RetriesBusyDatabase(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))
	cfg := sampleServerConfig()

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectBegin()
	expectUpserts(t, mock, cfg)
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), cfg))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServerConfigRepository_Save_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewServerConfigRepository(newDBFromSQL(db))
	cfg := sampleServerConfig()

	mock.ExpectBegin()
	expectUpserts(t, mock, cfg)
	mock.ExpectCommit().WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── encoding ──────────────────────────────────────────────────────────────────

func TestEncodeDecodeServerConfig(t *testing.T) {
	cfg := sampleServerConfig()

	values, err := encodeServerConfig(cfg)
	require.NoError(t, err)
	assert.Len(t, values, 11)
	assert.Equal(t, "true", values[models.KeyAlertNewDevice])
	assert.Equal(t, "false", values[models.KeyAlertDownDevice])
	assert.Equal(t, `"587"`, values[models.KeySMTPPort])

	stored := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		stored[k] = json.RawMessage(v)
	}
	decoded, err := decodeServerConfig(stored)
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

// ── error classification ──────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), configDB("mysql"), logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
