// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/library/internal/platform/apperr"
	"github.com/taibuivan/library/internal/platform/dberr"
	"github.com/taibuivan/library/internal/platform/sanitize"
	"github.com/taibuivan/library/internal/platform/validate"
	"github.com/taibuivan/library/pkg/parallel"
	"github.com/taibuivan/library/pkg/uuid"
)

// # Genre Lookups

// ListGenres returns every genre ordered by name.
func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

// GetGenreWithBooks fetches a genre and the books filed under it concurrently.
func (service *Service) GetGenreWithBooks(ctx context.Context, id string) (*Genre, []*Book, error) {
	return parallel.Join(ctx,
		func(ctx context.Context) (*Genre, error) { return service.repo.GetGenre(ctx, id) },
		func(ctx context.Context) ([]*Book, error) { return service.repo.ListBooksByGenre(ctx, id) },
	)
}

// GetGenre returns a single genre, or a not-found error.
func (service *Service) GetGenre(context context.Context, id string) (*Genre, error) {
	return service.repo.GetGenre(context, id)
}

// # Genre Management

func validateGenre(input GenreInput) error {
	validator := &validate.Validator{}

	validator.
		RequiredMsg(FieldName, input.Name, "Genre name required").
		MaxLen(FieldName, sanitize.Unescape(input.Name), maxNameLength)

	return validator.Err()
}

/*
CreateGenre validates the form and returns the genre carrying that name.

Description: Genre names are unique. When a genre with exactly the same
(sanitized) name exists it is returned unchanged and nothing is inserted,
including when a concurrent request inserts it between lookup and insert.

Returns:
  - *Genre: The existing or newly stored genre
  - bool: true when a new genre was inserted
  - error: VALIDATION_ERROR, or a storage failure
*/
func (service *Service) CreateGenre(context context.Context, input GenreInput) (*Genre, bool, error) {
	if err := validateGenre(input); err != nil {
		return nil, false, err
	}

	existing, err := service.repo.FindGenreByName(context, input.Name)
	switch {
	case err == nil:
		service.logger.Debug("genre_exists", slog.String("genre_id", existing.ID))
		return existing, false, nil
	case !apperr.IsNotFound(err):
		return nil, false, err
	}

	genre := &Genre{ID: uuid.New(), Name: input.Name}
	if err := service.repo.CreateGenre(context, genre); err != nil {
		if !errors.Is(err, dberr.ErrDuplicate) {
			return nil, false, err
		}
		winner, findErr := service.repo.FindGenreByName(context, input.Name)
		if findErr != nil {
			return nil, false, findErr
		}
		service.logger.Debug("genre_exists", slog.String("genre_id", winner.ID))
		return winner, false, nil
	}

	service.logger.Info("genre_created", slog.String("genre_id", genre.ID))
	return genre, true, nil
}

// UpdateGenre validates the form and renames an existing genre.
// Renaming onto a name another genre already holds is a validation error.
func (service *Service) UpdateGenre(context context.Context, id string, input GenreInput) (*Genre, error) {
	if err := validateGenre(input); err != nil {
		return nil, err
	}

	genre := &Genre{ID: id, Name: input.Name}
	if err := service.repo.UpdateGenre(context, genre); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldName,
				Message: "Genre already exists",
			})
		}
		return nil, err
	}

	service.logger.Info("genre_updated", slog.String("genre_id", genre.ID))
	return genre, nil
}

/*
DeleteGenre removes a genre unless a book is still filed under it.

Returns:
  - []*Book: Blocking books (empty when the genre was deleted)
*/
func (service *Service) DeleteGenre(ctx context.Context, id string) (*Genre, []*Book, error) {
	genre, books, err := service.GetGenreWithBooks(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if len(books) > 0 {
		service.logger.Info("genre_delete_blocked",
			slog.String("genre_id", id),
			slog.Int("books", len(books)),
		)
		return genre, books, nil
	}

	if err := service.repo.DeleteGenre(ctx, genre.ID); err != nil {
		return nil, nil, err
	}

	service.logger.Info("genre_deleted", slog.String("genre_id", genre.ID))
	return genre, books, nil
}
