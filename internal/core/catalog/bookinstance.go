// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// # Book Instance Domain

// BookInstance is one physical copy of a [Book].
type BookInstance struct {
	ID      string
	BookID  string
	Imprint string
	Status  Status
	DueBack *time.Time

	// Book is populated by reads that join the referenced book.
	Book *Book
}

// URL is the canonical detail page of the copy.
func (instance *BookInstance) URL() string {
	return BasePath + "/bookinstance/" + instance.ID
}

// DueBackFormatted renders the due date as "Jan 2, 2006".
func (instance *BookInstance) DueBackFormatted() string { return formatMedium(instance.DueBack) }

// DueBackISO renders the due date for date inputs.
func (instance *BookInstance) DueBackISO() string { return formatISO(instance.DueBack) }

// BookInstanceInput is the sanitized copy form as submitted.
type BookInstanceInput struct {
	Book    string
	Imprint string
	Status  string
	DueBack string
}

// NewBookInstanceInput pre-fills the copy form from a stored record.
func NewBookInstanceInput(instance *BookInstance) BookInstanceInput {
	return BookInstanceInput{
		Book:    instance.BookID,
		Imprint: instance.Imprint,
		Status:  string(instance.Status),
		DueBack: instance.DueBackISO(),
	}
}
