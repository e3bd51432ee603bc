// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
// Format rules delegate to ozzo-validation so the character classes match the
// ones used by common form validators.
package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/taibuivan/library/internal/platform/apperr"
)

// Accepted ISO-8601 layouts for date fields. Fractional seconds are
// accepted by every layout that carries seconds.
const (
	LayoutDate          = "2006-01-02"
	LayoutDateTime      = time.RFC3339
	LayoutLocalDateTime = "2006-01-02T15:04:05"
	LayoutLocalMinute   = "2006-01-02T15:04"
)

var dateLayouts = []string{LayoutDate, LayoutDateTime, LayoutLocalDateTime, LayoutLocalMinute}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// RequiredMsg fails with message if the trimmed value is empty.
func (v *Validator) RequiredMsg(field, value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Alphanumeric fails if a non-empty value contains anything but ASCII letters and digits.
func (v *Validator) Alphanumeric(field, value, message string) *Validator {
	if err := validation.Validate(value, is.Alphanumeric); err != nil {
		v.add(field, message)
	}
	return v
}

// Date fails if a non-empty value is not an ISO-8601 date or timestamp.
func (v *Validator) Date(field, value, message string) *Validator {
	if _, err := ParseDate(value); err != nil {
		v.add(field, message)
	}
	return v
}

// UUID fails if the value is not a valid UUID string.
func (v *Validator) UUID(field, value, message string) *Validator {
	if value == "" {
		v.add(field, message)
		return v
	}
	if err := validation.Validate(value, is.UUID); err != nil {
		v.add(field, message)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("date_of_death", death.Before(birth), "Date of death precedes date of birth")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// # Parsing

// ParseDate converts an optional ISO-8601 form value into a date.
//
// An empty value yields (nil, nil). Timestamps keep the calendar day as
// written, whatever their offset, and are stored at UTC midnight.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if err := validation.Validate(value, validation.Date(layout)); err != nil {
			continue
		}
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		return &day, nil
	}

	return nil, fmt.Errorf("validate: %q is not an ISO-8601 date", value)
}
