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

// # Genre Repository Implementation

func scanGenre(row pgx.Row) (*Genre, error) {
	genre := &Genre{}
	if err := row.Scan(&genre.ID, &genre.Name); err != nil {
		return nil, err
	}
	return genre, nil
}

func scanGenreRows(rows pgx.Rows) (*Genre, error) { return scanGenre(rows) }

// ListGenres returns every genre ordered by name.
func (repository *repository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s g ORDER BY g.%s`,
		qualify("g", schema.CatalogGenre.Columns()),
		schema.CatalogGenre.Table,
		schema.CatalogGenre.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list genres")
	}

	return collect(rows, "list genres", scanGenreRows)
}

// GetGenre returns a single genre, or dberr.ErrNotFound.
func (repository *repository) GetGenre(context context.Context, id string) (*Genre, error) {
	if !validIDs(id) {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM %s g WHERE g.%s = $1`,
		qualify("g", schema.CatalogGenre.Columns()),
		schema.CatalogGenre.Table,
		schema.CatalogGenre.ID,
	)

	genre, err := scanGenre(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get genre")
	}

	return genre, nil
}

/*
FindGenreByName returns the oldest genre whose name matches exactly.

Names are compared as stored: callers pass the sanitized, NFC-normalized form.
*/
func (repository *repository) FindGenreByName(context context.Context, name string) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s g WHERE g.%s = $1 ORDER BY g.%s LIMIT 1`,
		qualify("g", schema.CatalogGenre.Columns()),
		schema.CatalogGenre.Table,
		schema.CatalogGenre.Name,
		schema.CatalogGenre.ID,
	)

	genre, err := scanGenre(repository.db.QueryRow(context, query, name))
	if err != nil {
		return nil, dberr.Wrap(err, "find genre by name")
	}

	return genre, nil
}

// CreateGenre inserts a new genre row.
func (repository *repository) CreateGenre(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (%s)`,
		schema.CatalogGenre.Table,
		schema.CatalogGenre.ID,
		schema.CatalogGenre.Name,
		placeholders(2),
	)

	_, err := repository.db.Exec(context, query, genre.ID, genre.Name)
	return dberr.Wrap(err, "create genre")
}

// UpdateGenre replaces the name of an existing genre.
func (repository *repository) UpdateGenre(context context.Context, genre *Genre) error {
	if !validIDs(genre.ID) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.CatalogGenre.Table,
		schema.CatalogGenre.Name,
		schema.CatalogGenre.ID,
	)

	return repository.execAffectingOne(context, "update genre", query, genre.ID, genre.Name)
}

// DeleteGenre removes a genre row.
func (repository *repository) DeleteGenre(context context.Context, id string) error {
	if !validIDs(id) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogGenre.Table, schema.CatalogGenre.ID)
	return repository.execAffectingOne(context, "delete genre", query, id)
}

// CountGenres returns the number of genres.
func (repository *repository) CountGenres(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogGenre.Table)
	return repository.count(context, "count genres", query)
}
