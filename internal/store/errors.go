// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the storages. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrUnsupportedDriver is returned by [NewConnect] for a driver other
	// than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrMetadataFile is returned when the metadata document cannot be read,
	// parsed or written.
	ErrMetadataFile = errors.New("metadata file error")

	// ErrDecodingValue is returned when a stored configuration value is not
	// valid for its key.
	ErrDecodingValue = errors.New("error decoding stored value")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
