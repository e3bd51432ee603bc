// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/library/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes handled explicitly.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeInvalidTextRepresent = "22P02"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is returned when a write violates a unique constraint.
	// Compare with [errors.Is].
	ErrDuplicate = apperr.Conflict("A record with the same value already exists")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action describes the failed operation (e.g. "get author") and is logged
// for 5xx classifications only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Already classified
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 3. SQLSTATE mapping
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case codeUniqueViolation:
			return ErrDuplicate
		case codeForeignKeyViolation:
			return apperr.Conflict("The record is still referenced by other records")
		case codeInvalidTextRepresent:
			// A malformed identifier can never match a row.
			return ErrNotFound
		}
	}

	// 4. Unknown query errors become Internal Server Errors
	slog.Debug("database_error", slog.String("action", action), slog.Any("error", err))
	return apperr.Internal(err)
}
