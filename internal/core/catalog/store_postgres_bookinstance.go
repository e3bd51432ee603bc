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

// # Book Instance Repository Implementation

// scanBookInstance reads the columns of [schema.CatalogBookInstanceTable.Columns] in order.
func scanBookInstance(rows pgx.Rows) (*BookInstance, error) {
	instance := &BookInstance{}
	if err := rows.Scan(&instance.ID, &instance.BookID, &instance.Imprint, &instance.Status, &instance.DueBack); err != nil {
		return nil, err
	}
	return instance, nil
}

// scanBookInstanceWithBook reads a copy row followed by the joined book id and title.
func scanBookInstanceWithBook(row pgx.Row) (*BookInstance, error) {
	instance := &BookInstance{Book: &Book{}}
	err := row.Scan(
		&instance.ID, &instance.BookID, &instance.Imprint, &instance.Status, &instance.DueBack,
		&instance.Book.ID, &instance.Book.Title,
	)
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func scanBookInstanceWithBookRows(rows pgx.Rows) (*BookInstance, error) {
	return scanBookInstanceWithBook(rows)
}

// selectInstancesWithBook is the shared projection of copies joined to their book.
func selectInstancesWithBook() string {
	return fmt.Sprintf(`
		SELECT %s, b.%s, b.%s
		FROM %s i
		JOIN %s b ON b.%s = i.%s`,
		qualify("i", schema.CatalogBookInstance.Columns()),
		schema.CatalogBook.ID, schema.CatalogBook.Title,
		schema.CatalogBookInstance.Table,
		schema.CatalogBook.Table, schema.CatalogBook.ID, schema.CatalogBookInstance.BookID,
	)
}

// ListBookInstances returns every copy ordered by book title, then imprint.
func (repository *repository) ListBookInstances(context context.Context) ([]*BookInstance, error) {
	query := fmt.Sprintf(`%s ORDER BY b.%s, i.%s, i.%s`,
		selectInstancesWithBook(),
		schema.CatalogBook.Title,
		schema.CatalogBookInstance.Imprint,
		schema.CatalogBookInstance.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list book instances")
	}

	return collect(rows, "list book instances", scanBookInstanceWithBookRows)
}

// GetBookInstance returns a single copy with its book populated, or dberr.ErrNotFound.
func (repository *repository) GetBookInstance(context context.Context, id string) (*BookInstance, error) {
	if !validIDs(id) {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`%s WHERE i.%s = $1`, selectInstancesWithBook(), schema.CatalogBookInstance.ID)

	instance, err := scanBookInstanceWithBook(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get book instance")
	}

	return instance, nil
}

// ListBookInstancesByBook returns the copies of a book ordered by imprint.
func (repository *repository) ListBookInstancesByBook(context context.Context, bookID string) ([]*BookInstance, error) {
	if !validIDs(bookID) {
		return []*BookInstance{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s i WHERE i.%s = $1 ORDER BY i.%s, i.%s`,
		qualify("i", schema.CatalogBookInstance.Columns()),
		schema.CatalogBookInstance.Table,
		schema.CatalogBookInstance.BookID,
		schema.CatalogBookInstance.Imprint,
		schema.CatalogBookInstance.ID,
	)

	rows, err := repository.db.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list book instances by book")
	}

	return collect(rows, "list book instances by book", scanBookInstance)
}

// CreateBookInstance inserts a new copy row.
func (repository *repository) CreateBookInstance(context context.Context, instance *BookInstance) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (%s)`,
		schema.CatalogBookInstance.Table,
		schema.CatalogBookInstance.ID,
		schema.CatalogBookInstance.BookID,
		schema.CatalogBookInstance.Imprint,
		schema.CatalogBookInstance.Status,
		schema.CatalogBookInstance.DueBack,
		placeholders(5),
	)

	_, err := repository.db.Exec(context, query,
		instance.ID, instance.BookID, instance.Imprint, string(instance.Status), instance.DueBack,
	)
	return dberr.Wrap(err, "create book instance")
}

// UpdateBookInstance replaces every editable column. An unset due date becomes NULL.
func (repository *repository) UpdateBookInstance(context context.Context, instance *BookInstance) error {
	if !validIDs(instance.ID) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.CatalogBookInstance.Table,
		schema.CatalogBookInstance.BookID,
		schema.CatalogBookInstance.Imprint,
		schema.CatalogBookInstance.Status,
		schema.CatalogBookInstance.DueBack,
		schema.CatalogBookInstance.ID,
	)

	return repository.execAffectingOne(context, "update book instance", query,
		instance.ID, instance.BookID, instance.Imprint, string(instance.Status), instance.DueBack,
	)
}

// DeleteBookInstance removes a copy row.
func (repository *repository) DeleteBookInstance(context context.Context, id string) error {
	if !validIDs(id) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogBookInstance.Table, schema.CatalogBookInstance.ID)
	return repository.execAffectingOne(context, "delete book instance", query, id)
}

// CountBookInstances returns the number of copies, restricted to status when it is set.
func (repository *repository) CountBookInstances(context context.Context, status Status) (int64, error) {
	if status == "" {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogBookInstance.Table)
		return repository.count(context, "count book instances", query)
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.CatalogBookInstance.Table,
		schema.CatalogBookInstance.Status,
	)
	return repository.count(context, "count book instances", query, string(status))
}
