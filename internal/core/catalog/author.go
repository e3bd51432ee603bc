// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strconv"
	"time"
)

// # Author Domain

// Author is a writer whose books are held by the library.
//
// Text fields are stored sanitized (HTML-escaped).
type Author struct {
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// URL is the canonical detail page of the author.
func (author *Author) URL() string {
	return BasePath + "/author/" + author.ID
}

// Name is the catalog sort form "family_name, first_name".
func (author *Author) Name() string {
	return author.FamilyName + ", " + author.FirstName
}

// Lifespan is the number of calendar years between birth and death.
// It is empty unless both dates are known.
func (author *Author) Lifespan() string {
	if author.DateOfBirth == nil || author.DateOfDeath == nil {
		return ""
	}
	return strconv.Itoa(author.DateOfDeath.Year() - author.DateOfBirth.Year())
}

// DateOfBirthFormatted renders the birth date as "Jan 2, 2006".
func (author *Author) DateOfBirthFormatted() string { return formatMedium(author.DateOfBirth) }

// DateOfDeathFormatted renders the death date as "Jan 2, 2006".
func (author *Author) DateOfDeathFormatted() string { return formatMedium(author.DateOfDeath) }

// DateOfBirthISO renders the birth date for date inputs.
func (author *Author) DateOfBirthISO() string { return formatISO(author.DateOfBirth) }

// DateOfDeathISO renders the death date for date inputs.
func (author *Author) DateOfDeathISO() string { return formatISO(author.DateOfDeath) }

// AuthorInput is the sanitized author form as submitted.
//
// Dates stay raw strings so an invalid value can be shown back to the user.
type AuthorInput struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
}

// NewAuthorInput pre-fills the author form from a stored record.
func NewAuthorInput(author *Author) AuthorInput {
	return AuthorInput{
		FirstName:   author.FirstName,
		FamilyName:  author.FamilyName,
		DateOfBirth: author.DateOfBirthISO(),
		DateOfDeath: author.DateOfDeathISO(),
	}
}
