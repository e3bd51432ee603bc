// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/library/internal/platform/validate"
	"github.com/taibuivan/library/pkg/parallel"
	"github.com/taibuivan/library/pkg/slice"
	"github.com/taibuivan/library/pkg/uuid"
)

// # Copy Lookups

// ListBookInstances returns every copy with its book, ordered by book title.
func (service *Service) ListBookInstances(context context.Context) ([]*BookInstance, error) {
	return service.repo.ListBookInstances(context)
}

// GetBookInstance returns a single copy with its book populated.
func (service *Service) GetBookInstance(context context.Context, id string) (*BookInstance, error) {
	return service.repo.GetBookInstance(context, id)
}

// GetBookInstanceForEdit fetches a copy and the selectable books concurrently.
func (service *Service) GetBookInstanceForEdit(ctx context.Context, id string) (*BookInstance, []*Book, error) {
	return parallel.Join(ctx,
		func(ctx context.Context) (*BookInstance, error) { return service.repo.GetBookInstance(ctx, id) },
		func(ctx context.Context) ([]*Book, error) { return service.repo.ListBooks(ctx) },
	)
}

// # Copy Management

// normalizeStatus applies the default status to an empty submission.
func normalizeStatus(input BookInstanceInput) BookInstanceInput {
	if input.Status == "" {
		input.Status = string(DefaultStatus)
	}
	return input
}

func validateBookInstance(input BookInstanceInput) error {
	validator := &validate.Validator{}

	allowed := slice.Map(Statuses(), func(status Status) string { return string(status) })
	statusMessage := "Status must be one of: " + strings.Join(allowed, ", ")

	validator.
		RequiredMsg(FieldBook, input.Book, "Book must be specified").
		Custom(FieldBook, input.Book != "" && !uuid.Valid(input.Book), "Book must reference an existing book.").
		RequiredMsg(FieldImprint, input.Imprint, "Imprint must be specified").
		Custom(FieldStatus, !Status(input.Status).IsValid(), statusMessage).
		Date(FieldDueBack, input.DueBack, "Invalid date")

	return validator.Err()
}

func bookInstanceFromInput(id string, input BookInstanceInput) *BookInstance {
	return &BookInstance{
		ID:      id,
		BookID:  input.Book,
		Imprint: input.Imprint,
		Status:  Status(input.Status),
		DueBack: parseOptionalDate(input.DueBack),
	}
}

/*
CreateBookInstance validates the form and persists a new copy.

Description: An empty status falls back to [DefaultStatus]. The returned
input carries the applied default so a re-rendered form shows it.

Returns:
  - *BookInstance: The stored copy with its new id
  - error: VALIDATION_ERROR, CONFLICT when the book does not exist, or a storage failure
*/
func (service *Service) CreateBookInstance(context context.Context, input BookInstanceInput) (*BookInstance, error) {
	input = normalizeStatus(input)
	if err := validateBookInstance(input); err != nil {
		return nil, err
	}

	instance := bookInstanceFromInput(uuid.New(), input)
	if err := service.repo.CreateBookInstance(context, instance); err != nil {
		return nil, err
	}

	service.logger.Info("bookinstance_created",
		slog.String("bookinstance_id", instance.ID),
		slog.String("book_id", instance.BookID),
		slog.String("status", string(instance.Status)),
	)
	return instance, nil
}

// UpdateBookInstance validates the form and replaces every editable field of the copy.
func (service *Service) UpdateBookInstance(context context.Context, id string, input BookInstanceInput) (*BookInstance, error) {
	input = normalizeStatus(input)
	if err := validateBookInstance(input); err != nil {
		return nil, err
	}

	instance := bookInstanceFromInput(id, input)
	if err := service.repo.UpdateBookInstance(context, instance); err != nil {
		return nil, err
	}

	service.logger.Info("bookinstance_updated",
		slog.String("bookinstance_id", instance.ID),
		slog.String("status", string(instance.Status)),
	)
	return instance, nil
}

// DeleteBookInstance removes a copy. Copies have no dependents, so only a
// missing record prevents the delete.
func (service *Service) DeleteBookInstance(context context.Context, id string) (*BookInstance, error) {
	instance, err := service.repo.GetBookInstance(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.DeleteBookInstance(context, instance.ID); err != nil {
		return nil, err
	}

	service.logger.Info("bookinstance_deleted", slog.String("bookinstance_id", instance.ID))
	return instance, nil
}
