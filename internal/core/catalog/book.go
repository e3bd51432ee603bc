// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "slices"

// # Book Domain

// Book is a title held by the library.
//
// AuthorID and GenreIDs are the stored references. Author and Genres are
// populated by reads that join the referenced records.
type Book struct {
	ID       string
	Title    string
	Summary  string
	ISBN     string
	AuthorID string
	GenreIDs []string

	Author *Author
	Genres []*Genre
}

// URL is the canonical detail page of the book.
func (book *Book) URL() string {
	return BasePath + "/book/" + book.ID
}

// BookInput is the sanitized book form as submitted.
//
// Genre is always a list, even when the form carried zero or one value.
type BookInput struct {
	Title   string
	Author  string
	Summary string
	ISBN    string
	Genre   []string
}

// NewBookInput pre-fills the book form from a stored record.
func NewBookInput(book *Book) BookInput {
	genres := make([]string, 0, len(book.GenreIDs))
	return BookInput{
		Title:   book.Title,
		Author:  book.AuthorID,
		Summary: book.Summary,
		ISBN:    book.ISBN,
		Genre:   append(genres, book.GenreIDs...),
	}
}

// HasGenre reports whether the genre checkbox with the given id is checked.
func (input BookInput) HasGenre(id string) bool {
	return slices.Contains(input.Genre, id)
}
