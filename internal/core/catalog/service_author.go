// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/library/internal/platform/sanitize"
	"github.com/taibuivan/library/internal/platform/validate"
	"github.com/taibuivan/library/pkg/parallel"
	"github.com/taibuivan/library/pkg/uuid"
)

// # Author Lookups

// ListAuthors returns every author ordered by family name.
func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

// GetAuthor returns a single author, or a not-found error.
func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

/*
GetAuthorWithBooks fetches an author and the books they wrote concurrently.

Returns:
  - error: not found if the author is absent, or the first failing query
*/
func (service *Service) GetAuthorWithBooks(ctx context.Context, id string) (*Author, []*Book, error) {
	return parallel.Join(ctx,
		func(ctx context.Context) (*Author, error) { return service.repo.GetAuthor(ctx, id) },
		func(ctx context.Context) ([]*Book, error) { return service.repo.ListBooksByAuthor(ctx, id) },
	)
}

// # Author Management

// validateAuthor applies the author form rules.
func validateAuthor(input AuthorInput) error {
	validator := &validate.Validator{}

	validator.
		RequiredMsg(FieldFirstName, input.FirstName, "First name must be specified.").
		MaxLen(FieldFirstName, sanitize.Unescape(input.FirstName), maxNameLength).
		Alphanumeric(FieldFirstName, input.FirstName, "First name has non-alphanumeric characters")

	validator.
		RequiredMsg(FieldFamilyName, input.FamilyName, "Family name must be specified.").
		MaxLen(FieldFamilyName, sanitize.Unescape(input.FamilyName), maxNameLength).
		Alphanumeric(FieldFamilyName, input.FamilyName, "Family name has non-alphanumeric characters")

	validator.
		Date(FieldDateOfBirth, input.DateOfBirth, "Invalid date of birth").
		Date(FieldDateOfDeath, input.DateOfDeath, "Invalid date of death")

	return validator.Err()
}

// authorFromInput builds the stored form of a validated input.
func authorFromInput(id string, input AuthorInput) *Author {
	return &Author{
		ID:          id,
		FirstName:   input.FirstName,
		FamilyName:  input.FamilyName,
		DateOfBirth: parseOptionalDate(input.DateOfBirth),
		DateOfDeath: parseOptionalDate(input.DateOfDeath),
	}
}

/*
CreateAuthor validates the form and persists a new author.

Returns:
  - *Author: The stored author with its new id
  - error: VALIDATION_ERROR with field details, or a storage failure
*/
func (service *Service) CreateAuthor(context context.Context, input AuthorInput) (*Author, error) {
	if err := validateAuthor(input); err != nil {
		return nil, err
	}

	author := authorFromInput(uuid.New(), input)
	if err := service.repo.CreateAuthor(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.String("author_id", author.ID))
	return author, nil
}

/*
UpdateAuthor validates the form and replaces every editable field of the author.

Returns:
  - error: VALIDATION_ERROR, not found if the author is absent, or a storage failure
*/
func (service *Service) UpdateAuthor(context context.Context, id string, input AuthorInput) (*Author, error) {
	if err := validateAuthor(input); err != nil {
		return nil, err
	}

	author := authorFromInput(id, input)
	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.String("author_id", author.ID))
	return author, nil
}

/*
DeleteAuthor removes an author unless books still reference them.

Description: The author and their books are re-read concurrently. When books
remain, nothing is deleted and they are returned so the caller can list them.

Returns:
  - *Author: The author as it was found
  - []*Book: Blocking books (empty when the author was deleted)
  - error: not found if the author is absent, or a storage failure
*/
func (service *Service) DeleteAuthor(context context.Context, id string) (*Author, []*Book, error) {
	author, books, err := service.GetAuthorWithBooks(context, id)
	if err != nil {
		return nil, nil, err
	}

	if len(books) > 0 {
		service.logger.Info("author_delete_blocked",
			slog.String("author_id", id),
			slog.Int("books", len(books)),
		)
		return author, books, nil
	}

	if err := service.repo.DeleteAuthor(context, author.ID); err != nil {
		return nil, nil, err
	}

	service.logger.Info("author_deleted", slog.String("author_id", author.ID))
	return author, books, nil
}
