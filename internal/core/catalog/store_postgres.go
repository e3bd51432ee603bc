// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
PostgreSQL implementation of the catalog stores.

  - Joins: Books are read with their author, copies with their book, in one round-trip.
  - JSON Aggregation: A book's genres are folded into a JSON array column.
  - ACID Transactions: A book row and its genre links are written together.

Identifiers are UUID columns. A lookup with a malformed id never reaches the
database and reports [dberr.ErrNotFound] directly.
*/

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/library/internal/platform/dberr"
	"github.com/taibuivan/library/internal/platform/postgres"
	"github.com/taibuivan/library/pkg/uuid"
)

// # PostgreSQL Repository

// repository implements [Repository] using pgx.
type repository struct {
	db postgres.DB
}

// NewRepository constructs a PostgreSQL backed catalog store.
func NewRepository(db postgres.DB) Repository {
	return &repository{db: db}
}

// # Query Helpers

// qualify prefixes every column with a table alias: "a.id, a.name".
func qualify(alias string, columns []string) string {
	qualified := make([]string, len(columns))
	for index, column := range columns {
		qualified[index] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

// placeholders returns "$1, $2, ..., $n".
func placeholders(count int) string {
	marks := make([]string, count)
	for index := range marks {
		marks[index] = fmt.Sprintf("$%d", index+1)
	}
	return strings.Join(marks, ", ")
}

// count runs a COUNT(*) style query returning a single integer.
func (repository *repository) count(context context.Context, action, query string, args ...any) (int64, error) {
	var total int64
	if err := repository.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return total, nil
}

// execAffectingOne runs a statement that must touch exactly one row.
func (repository *repository) execAffectingOne(context context.Context, action, query string, args ...any) error {
	tag, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// collect drains rows through scan into a slice, closing rows on return.
func collect[T any](rows pgx.Rows, action string, scan func(pgx.Rows) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return items, nil
}

// withTransaction runs fn inside a transaction, committing only if it succeeds.
func (repository *repository) withTransaction(context context.Context, action string, fn func(pgx.Tx) error) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	defer func() { _ = transaction.Rollback(context) }()

	if err := fn(transaction); err != nil {
		return dberr.Wrap(err, action)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to commit %s: %w", action, err), action)
	}

	return nil
}

// validIDs reports whether every id is a well-formed UUID.
func validIDs(ids ...string) bool {
	for _, id := range ids {
		if !uuid.Valid(id) {
			return false
		}
	}
	return true
}
