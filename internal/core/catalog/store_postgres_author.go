// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/library/internal/platform/database/schema"
	"github.com/taibuivan/library/internal/platform/dberr"
)

// # Author Repository Implementation

// scanAuthor reads the columns of [schema.CatalogAuthorTable.Columns] in order.
func scanAuthor(row pgx.Row) (*Author, error) {
	author := &Author{}
	err := row.Scan(
		&author.ID,
		&author.FirstName,
		&author.FamilyName,
		&author.DateOfBirth,
		&author.DateOfDeath,
	)
	if err != nil {
		return nil, err
	}
	return author, nil
}

func scanAuthorRows(rows pgx.Rows) (*Author, error) { return scanAuthor(rows) }

/*
ListAuthors returns every author ordered by family name, then first name.
*/
func (repository *repository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s a ORDER BY a.%s, a.%s`,
		qualify("a", schema.CatalogAuthor.Columns()),
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.FamilyName, schema.CatalogAuthor.FirstName,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list authors")
	}

	return collect(rows, "list authors", scanAuthorRows)
}

/*
GetAuthor returns a single author.

Returns:
  - error: dberr.ErrNotFound if the id is malformed or unknown
*/
func (repository *repository) GetAuthor(context context.Context, id string) (*Author, error) {
	if !validIDs(id) {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.%s = $1`,
		qualify("a", schema.CatalogAuthor.Columns()),
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.ID,
	)

	author, err := scanAuthor(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get author")
	}

	return author, nil
}

/*
CreateAuthor inserts a new author row.
*/
func (repository *repository) CreateAuthor(context context.Context, author *Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (%s)`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.ID,
		schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.FamilyName,
		schema.CatalogAuthor.DateOfBirth,
		schema.CatalogAuthor.DateOfDeath,
		placeholders(5),
	)

	_, err := repository.db.Exec(context, query,
		author.ID, author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath,
	)
	return dberr.Wrap(err, "create author")
}

/*
UpdateAuthor replaces every editable column. Unset dates become NULL.

Returns:
  - error: dberr.ErrNotFound if no row carries the id
*/
func (repository *repository) UpdateAuthor(context context.Context, author *Author) error {
	if !validIDs(author.ID) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.FamilyName,
		schema.CatalogAuthor.DateOfBirth,
		schema.CatalogAuthor.DateOfDeath,
		schema.CatalogAuthor.ID,
	)

	return repository.execAffectingOne(context, "update author", query,
		author.ID, author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath,
	)
}

/*
DeleteAuthor removes an author row.

Returns:
  - error: dberr.ErrNotFound if no row carries the id, a conflict if books still reference it
*/
func (repository *repository) DeleteAuthor(context context.Context, id string) error {
	if !validIDs(id) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogAuthor.Table, schema.CatalogAuthor.ID)
	return repository.execAffectingOne(context, "delete author", query, id)
}

// CountAuthors returns the number of authors.
func (repository *repository) CountAuthors(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogAuthor.Table)
	return repository.count(context, "count authors", query)
}
