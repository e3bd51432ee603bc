// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Catalog Data Access
//
// Every lookup by id returns [dberr.ErrNotFound] when the record is absent,
// including when the id is not a well-formed UUID.

// AuthorRepository defines the data access contract for authors.
type AuthorRepository interface {
	// ListAuthors returns every author ordered by family name.
	ListAuthors(context context.Context) ([]*Author, error)

	// GetAuthor returns the author with the given id.
	GetAuthor(context context.Context, id string) (*Author, error)

	// CreateAuthor inserts a new author. The id must already be assigned.
	CreateAuthor(context context.Context, author *Author) error

	// UpdateAuthor replaces every editable field of an existing author.
	UpdateAuthor(context context.Context, author *Author) error

	// DeleteAuthor removes the author with the given id.
	DeleteAuthor(context context.Context, id string) error

	// CountAuthors returns the number of authors.
	CountAuthors(context context.Context) (int64, error)
}

// GenreRepository defines the data access contract for genres.
type GenreRepository interface {
	// ListGenres returns every genre ordered by name.
	ListGenres(context context.Context) ([]*Genre, error)

	// GetGenre returns the genre with the given id.
	GetGenre(context context.Context, id string) (*Genre, error)

	// FindGenreByName returns the genre whose name matches exactly.
	FindGenreByName(context context.Context, name string) (*Genre, error)

	// CreateGenre inserts a new genre. The id must already be assigned.
	CreateGenre(context context.Context, genre *Genre) error

	// UpdateGenre replaces the name of an existing genre.
	UpdateGenre(context context.Context, genre *Genre) error

	// DeleteGenre removes the genre with the given id.
	DeleteGenre(context context.Context, id string) error

	// CountGenres returns the number of genres.
	CountGenres(context context.Context) (int64, error)
}

// BookRepository defines the data access contract for books.
type BookRepository interface {
	// ListBooks returns every book ordered by title, with its author populated.
	ListBooks(context context.Context) ([]*Book, error)

	// GetBook returns the book with its author and genres populated.
	GetBook(context context.Context, id string) (*Book, error)

	// ListBooksByAuthor returns the books written by an author, ordered by title.
	ListBooksByAuthor(context context.Context, authorID string) ([]*Book, error)

	// ListBooksByGenre returns the books filed under a genre, ordered by title.
	ListBooksByGenre(context context.Context, genreID string) ([]*Book, error)

	// CreateBook inserts a new book and its genre links atomically.
	CreateBook(context context.Context, book *Book) error

	// UpdateBook replaces every editable field and the genre links atomically.
	UpdateBook(context context.Context, book *Book) error

	// DeleteBook removes the book and its genre links.
	DeleteBook(context context.Context, id string) error

	// CountBooks returns the number of books.
	CountBooks(context context.Context) (int64, error)
}

// BookInstanceRepository defines the data access contract for physical copies.
type BookInstanceRepository interface {
	// ListBookInstances returns every copy with its book populated,
	// ordered by book title then imprint.
	ListBookInstances(context context.Context) ([]*BookInstance, error)

	// GetBookInstance returns the copy with its book populated.
	GetBookInstance(context context.Context, id string) (*BookInstance, error)

	// ListBookInstancesByBook returns the copies of a book ordered by imprint.
	ListBookInstancesByBook(context context.Context, bookID string) ([]*BookInstance, error)

	// CreateBookInstance inserts a new copy. The id must already be assigned.
	CreateBookInstance(context context.Context, instance *BookInstance) error

	// UpdateBookInstance replaces every editable field of an existing copy.
	UpdateBookInstance(context context.Context, instance *BookInstance) error

	// DeleteBookInstance removes the copy with the given id.
	DeleteBookInstance(context context.Context, id string) error

	// CountBookInstances returns the number of copies, optionally restricted
	// to one status (an empty status counts all).
	CountBookInstances(context context.Context, status Status) (int64, error)
}

// Repository aggregates every catalog store behind one handle.
type Repository interface {
	AuthorRepository
	GenreRepository
	BookRepository
	BookInstanceRepository
}
