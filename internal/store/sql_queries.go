// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

const (
	serverConfigTable = "server_config"

	upsertServerConfigSuffix = "ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func buildSelectServerConfigQuery(ph squirrel.PlaceholderFormat) (string, []any, error) {
	query, args, err := squirrel.
		Select("name", "value").
		From(serverConfigTable).
		OrderBy("name").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertServerConfigQuery(ph squirrel.PlaceholderFormat, name, value string, updatedAt time.Time) (string, []any, error) {
	query, args, err := squirrel.
		Insert(serverConfigTable).
		Columns("name", "value", "updated_at").
		Values(name, value, updatedAt).
		Suffix(upsertServerConfigSuffix).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
