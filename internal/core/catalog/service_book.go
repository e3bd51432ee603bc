// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/library/internal/platform/validate"
	"github.com/taibuivan/library/pkg/parallel"
	"github.com/taibuivan/library/pkg/uuid"
)

// BookFormOptions holds the reference lists offered by the book form.
type BookFormOptions struct {
	Authors []*Author
	Genres  []*Genre
}

// # Book Lookups

// ListBooks returns every book with its author, ordered by title.
func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

// GetBookWithInstances fetches a book (author and genres populated) and its copies concurrently.
func (service *Service) GetBookWithInstances(ctx context.Context, id string) (*Book, []*BookInstance, error) {
	return parallel.Join(ctx,
		func(ctx context.Context) (*Book, error) { return service.repo.GetBook(ctx, id) },
		func(ctx context.Context) ([]*BookInstance, error) { return service.repo.ListBookInstancesByBook(ctx, id) },
	)
}

// BookFormOptions fetches every author and genre concurrently.
func (service *Service) BookFormOptions(ctx context.Context) (BookFormOptions, error) {
	authors, genres, err := parallel.Join(ctx,
		func(ctx context.Context) ([]*Author, error) { return service.repo.ListAuthors(ctx) },
		func(ctx context.Context) ([]*Genre, error) { return service.repo.ListGenres(ctx) },
	)
	if err != nil {
		return BookFormOptions{}, err
	}

	return BookFormOptions{Authors: authors, Genres: genres}, nil
}

/*
GetBookForEdit fetches a book together with the form reference lists.

Description: The three reads run concurrently. A missing book fails the
whole call with a not-found error.
*/
func (service *Service) GetBookForEdit(ctx context.Context, id string) (*Book, BookFormOptions, error) {
	book, authors, genres, err := parallel.Join3(ctx,
		func(ctx context.Context) (*Book, error) { return service.repo.GetBook(ctx, id) },
		func(ctx context.Context) ([]*Author, error) { return service.repo.ListAuthors(ctx) },
		func(ctx context.Context) ([]*Genre, error) { return service.repo.ListGenres(ctx) },
	)
	if err != nil {
		return nil, BookFormOptions{}, err
	}

	return book, BookFormOptions{Authors: authors, Genres: genres}, nil
}

// # Book Management

func validateBook(input BookInput) error {
	validator := &validate.Validator{}

	validator.
		RequiredMsg(FieldTitle, input.Title, "Title must not be empty.").
		RequiredMsg(FieldAuthor, input.Author, "Author must not be empty.").
		Custom(FieldAuthor, input.Author != "" && !uuid.Valid(input.Author), "Author must reference an existing author.").
		RequiredMsg(FieldSummary, input.Summary, "Summary must not be empty.").
		RequiredMsg(FieldISBN, input.ISBN, "ISBN must not be empty")

	for _, genreID := range input.Genre {
		validator.UUID(FieldGenre, genreID, "Genre must reference an existing genre.")
	}

	return validator.Err()
}

func bookFromInput(id string, input BookInput) *Book {
	genres := make([]string, 0, len(input.Genre))
	return &Book{
		ID:       id,
		Title:    input.Title,
		Summary:  input.Summary,
		ISBN:     input.ISBN,
		AuthorID: input.Author,
		GenreIDs: append(genres, input.Genre...),
	}
}

/*
CreateBook validates the form and persists a new book with its genre links.

Returns:
  - *Book: The stored book with its new id
  - error: VALIDATION_ERROR, CONFLICT when a reference does not exist, or a storage failure
*/
func (service *Service) CreateBook(context context.Context, input BookInput) (*Book, error) {
	if err := validateBook(input); err != nil {
		return nil, err
	}

	book := bookFromInput(uuid.New(), input)
	if err := service.repo.CreateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.String("book_id", book.ID),
		slog.String("author_id", book.AuthorID),
		slog.Int("genres", len(book.GenreIDs)),
	)
	return book, nil
}

// UpdateBook validates the form and replaces the book and its genre links.
func (service *Service) UpdateBook(context context.Context, id string, input BookInput) (*Book, error) {
	if err := validateBook(input); err != nil {
		return nil, err
	}

	book := bookFromInput(id, input)
	if err := service.repo.UpdateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.String("book_id", book.ID))
	return book, nil
}

/*
DeleteBook removes a book unless copies of it still exist.

Returns:
  - []*BookInstance: Blocking copies (empty when the book was deleted)
*/
func (service *Service) DeleteBook(ctx context.Context, id string) (*Book, []*BookInstance, error) {
	book, instances, err := service.GetBookWithInstances(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if len(instances) > 0 {
		service.logger.Info("book_delete_blocked",
			slog.String("book_id", id),
			slog.Int("instances", len(instances)),
		)
		return book, instances, nil
	}

	if err := service.repo.DeleteBook(ctx, book.ID); err != nil {
		return nil, nil, err
	}

	service.logger.Info("book_deleted", slog.String("book_id", book.ID))
	return book, instances, nil
}
