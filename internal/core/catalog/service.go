// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"log/slog"
	"time"

	"github.com/taibuivan/library/internal/platform/validate"
)

// # Service Layer

// Service orchestrates the business rules of the catalog: validation,
// identity assignment, and the referential checks that guard deletes.
//
// Reads of an entity and its dependents run concurrently through
// [parallel.Join]. The first failure cancels the sibling query.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Internal Helpers

// parseOptionalDate converts a validated optional date field.
//
// Only call after the validator accepted the value: a parse error yields nil.
func parseOptionalDate(value string) *time.Time {
	date, err := validate.ParseDate(value)
	if err != nil {
		return nil
	}
	return date
}
