// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog manages the holdings of a local library.

It covers four entities that reference each other and are therefore kept in
one package:

  - [Author]: A writer, referenced by books.
  - [Genre]: A category, attached to books (many-to-many).
  - [Book]: A title written by one author and filed under any number of genres.
  - [BookInstance]: A physical copy of a book with a circulation status.

Every entity is browsed and maintained through server-rendered pages. Reads
fetch an entity together with its dependents concurrently, writes go through
a sanitize-then-validate pipeline, and deletes are refused while dependents
still reference the entity.
*/
package catalog

import "time"

// # Routing

// BasePath is the mount point of every catalog page.
const BasePath = "/catalog"

// # Form Fields

const (
	FieldFirstName   = "first_name"
	FieldFamilyName  = "family_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"

	FieldTitle   = "title"
	FieldAuthor  = "author"
	FieldSummary = "summary"
	FieldISBN    = "isbn"
	FieldGenre   = "genre"

	FieldName = "name"

	FieldBook    = "book"
	FieldImprint = "imprint"
	FieldStatus  = "status"
	FieldDueBack = "due_back"
)

// Body fields naming the record targeted by a delete confirmation.
const (
	FieldAuthorID       = "authorid"
	FieldBookID         = "bookid"
	FieldGenreID        = "genreid"
	FieldBookInstanceID = "bookinstanceid"
)

// maxNameLength bounds person and genre names as typed, before HTML escaping.
const maxNameLength = 100

// # Circulation Status

// Status is the circulation state of a [BookInstance].
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// DefaultStatus applies when a copy is submitted without a status.
const DefaultStatus = StatusMaintenance

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

// IsOut reports whether the copy is away from the shelf, which is when a due date matters.
func (s Status) IsOut() bool {
	return s == StatusLoaned || s == StatusReserved
}

// # Date Display

const (
	layoutMedium = "Jan 2, 2006"
	layoutISO    = "2006-01-02"
)

// formatMedium renders an optional date as "Jan 2, 2006", or "" when unset.
func formatMedium(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(layoutMedium)
}

// formatISO renders an optional date as "2006-01-02", or "" when unset.
func formatISO(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(layoutISO)
}
