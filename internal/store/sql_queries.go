// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStateTable = "local_state"

	upsertLocalStateSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// Keys of the local state table.
const (
	keyInstallationID = "user_id"
	keyReactions      = "user_votes"
	keyCredential     = "github_token"
	keySessionValid   = "session_valid"
	keyLanguage       = "lang"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectValueQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(localStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(localStateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix(upsertLocalStateSuffix).
		ToSql()
}

func buildDeleteKeysQuery(keys ...string) (string, []any, error) {
	return psql.
		Delete(localStateTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}
