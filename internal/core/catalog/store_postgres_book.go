// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/library/internal/platform/database/schema"
	"github.com/taibuivan/library/internal/platform/dberr"
)

// # Book Repository Implementation

// bookColumns lists the book columns in the order read by [scanBook].
func bookColumns() []string {
	return []string{
		schema.CatalogBook.ID,
		schema.CatalogBook.Title,
		schema.CatalogBook.Summary,
		schema.CatalogBook.ISBN,
		schema.CatalogBook.AuthorID,
	}
}

// scanBook reads a bare book row.
func scanBook(rows pgx.Rows) (*Book, error) {
	book := &Book{}
	if err := rows.Scan(&book.ID, &book.Title, &book.Summary, &book.ISBN, &book.AuthorID); err != nil {
		return nil, err
	}
	return book, nil
}

// scanBookWithAuthor reads a book row followed by its joined author columns.
func scanBookWithAuthor(rows pgx.Rows) (*Book, error) {
	book := &Book{Author: &Author{}}
	err := rows.Scan(
		&book.ID, &book.Title, &book.Summary, &book.ISBN, &book.AuthorID,
		&book.Author.ID, &book.Author.FirstName, &book.Author.FamilyName,
		&book.Author.DateOfBirth, &book.Author.DateOfDeath,
	)
	if err != nil {
		return nil, err
	}
	return book, nil
}

/*
ListBooks returns every book ordered by title, with its author joined.
*/
func (repository *repository) ListBooks(context context.Context) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s b
		JOIN %s a ON a.%s = b.%s
		ORDER BY b.%s, b.%s`,
		qualify("b", bookColumns()),
		qualify("a", schema.CatalogAuthor.Columns()),
		schema.CatalogBook.Table,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID, schema.CatalogBook.AuthorID,
		schema.CatalogBook.Title, schema.CatalogBook.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list books")
	}

	return collect(rows, "list books", scanBookWithAuthor)
}

/*
GetBook returns a book with its author and genres populated.

Description: The author is joined and the genres are aggregated into a JSON
array ordered by name, so the whole aggregate is read in one round-trip.

Returns:
  - error: dberr.ErrNotFound if the id is malformed or unknown
*/
func (repository *repository) GetBook(context context.Context, id string) (*Book, error) {
	if !validIDs(id) {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`
		SELECT %s, %s,
			COALESCE((
				SELECT json_agg(json_build_object('id', g.%s, 'name', g.%s) ORDER BY g.%s)
				FROM %s g
				JOIN %s bg ON bg.%s = g.%s
				WHERE bg.%s = b.%s
			), '[]') AS genres
		FROM %s b
		JOIN %s a ON a.%s = b.%s
		WHERE b.%s = $1`,
		qualify("b", bookColumns()),
		qualify("a", schema.CatalogAuthor.Columns()),
		schema.CatalogGenre.ID, schema.CatalogGenre.Name, schema.CatalogGenre.Name,
		schema.CatalogGenre.Table,
		schema.CatalogBookGenre.Table, schema.CatalogBookGenre.GenreID, schema.CatalogGenre.ID,
		schema.CatalogBookGenre.BookID, schema.CatalogBook.ID,
		schema.CatalogBook.Table,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID, schema.CatalogBook.AuthorID,
		schema.CatalogBook.ID,
	)

	book := &Book{Author: &Author{}}
	var genresJSON []byte

	err := repository.db.QueryRow(context, query, id).Scan(
		&book.ID, &book.Title, &book.Summary, &book.ISBN, &book.AuthorID,
		&book.Author.ID, &book.Author.FirstName, &book.Author.FamilyName,
		&book.Author.DateOfBirth, &book.Author.DateOfDeath,
		&genresJSON,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get book")
	}

	// Unmarshal the aggregated genre set
	var genres []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(genresJSON, &genres); err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to decode book genres: %w", err), "get book")
	}

	book.Genres = make([]*Genre, 0, len(genres))
	book.GenreIDs = make([]string, 0, len(genres))
	for _, genre := range genres {
		book.Genres = append(book.Genres, &Genre{ID: genre.ID, Name: genre.Name})
		book.GenreIDs = append(book.GenreIDs, genre.ID)
	}

	return book, nil
}

// ListBooksByAuthor returns the books written by an author, ordered by title.
func (repository *repository) ListBooksByAuthor(context context.Context, authorID string) ([]*Book, error) {
	if !validIDs(authorID) {
		return []*Book{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1 ORDER BY b.%s`,
		qualify("b", bookColumns()),
		schema.CatalogBook.Table,
		schema.CatalogBook.AuthorID,
		schema.CatalogBook.Title,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list books by author")
	}

	return collect(rows, "list books by author", scanBook)
}

// ListBooksByGenre returns the books filed under a genre, ordered by title.
func (repository *repository) ListBooksByGenre(context context.Context, genreID string) ([]*Book, error) {
	if !validIDs(genreID) {
		return []*Book{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s b
		JOIN %s bg ON bg.%s = b.%s
		WHERE bg.%s = $1
		ORDER BY b.%s`,
		qualify("b", bookColumns()),
		schema.CatalogBook.Table,
		schema.CatalogBookGenre.Table, schema.CatalogBookGenre.BookID, schema.CatalogBook.ID,
		schema.CatalogBookGenre.GenreID,
		schema.CatalogBook.Title,
	)

	rows, err := repository.db.Query(context, query, genreID)
	if err != nil {
		return nil, dberr.Wrap(err, "list books by genre")
	}

	return collect(rows, "list books by genre", scanBook)
}

/*
CreateBook inserts the book row and its genre links in one transaction.
*/
func (repository *repository) CreateBook(context context.Context, book *Book) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (%s)`,
		schema.CatalogBook.Table,
		schema.CatalogBook.ID,
		schema.CatalogBook.Title,
		schema.CatalogBook.Summary,
		schema.CatalogBook.ISBN,
		schema.CatalogBook.AuthorID,
		placeholders(5),
	)

	return repository.withTransaction(context, "create book", func(transaction pgx.Tx) error {
		if _, err := transaction.Exec(context, query, book.ID, book.Title, book.Summary, book.ISBN, book.AuthorID); err != nil {
			return err
		}
		return replaceBookGenres(context, transaction, book.ID, book.GenreIDs)
	})
}

/*
UpdateBook replaces the editable columns and the full genre set in one transaction.

Returns:
  - error: dberr.ErrNotFound if no row carries the id
*/
func (repository *repository) UpdateBook(context context.Context, book *Book) error {
	if !validIDs(book.ID) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.CatalogBook.Table,
		schema.CatalogBook.Title,
		schema.CatalogBook.Summary,
		schema.CatalogBook.ISBN,
		schema.CatalogBook.AuthorID,
		schema.CatalogBook.ID,
	)

	return repository.withTransaction(context, "update book", func(transaction pgx.Tx) error {
		tag, err := transaction.Exec(context, query, book.ID, book.Title, book.Summary, book.ISBN, book.AuthorID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}
		return replaceBookGenres(context, transaction, book.ID, book.GenreIDs)
	})
}

// DeleteBook removes a book row. Genre links cascade.
func (repository *repository) DeleteBook(context context.Context, id string) error {
	if !validIDs(id) {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogBook.Table, schema.CatalogBook.ID)
	return repository.execAffectingOne(context, "delete book", query, id)
}

// CountBooks returns the number of books.
func (repository *repository) CountBooks(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogBook.Table)
	return repository.count(context, "count books", query)
}

/*
replaceBookGenres rewrites the genre links of a book.

Description: Clears the existing links, then queues one INSERT per genre in a
single [pgx.Batch]. Must run inside the transaction that wrote the book row.
*/
func replaceBookGenres(context context.Context, transaction pgx.Tx, bookID string, genreIDs []string) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogBookGenre.Table, schema.CatalogBookGenre.BookID)
	if _, err := transaction.Exec(context, deleteQuery, bookID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", schema.CatalogBookGenre.Table, err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.CatalogBookGenre.Table, schema.CatalogBookGenre.BookID, schema.CatalogBookGenre.GenreID)

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insertQuery, bookID, genreID)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", schema.CatalogBookGenre.Table, err)
	}

	return nil
}
