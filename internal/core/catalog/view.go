// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/library/internal/platform/apperr"

// # Page Names

// Templates rendered by the catalog [Handler].
const (
	PageHome = "home"

	PageAuthorList   = "author_list"
	PageAuthorDetail = "author_detail"
	PageAuthorForm   = "author_form"
	PageAuthorDelete = "author_delete"

	PageGenreList   = "genre_list"
	PageGenreDetail = "genre_detail"
	PageGenreForm   = "genre_form"
	PageGenreDelete = "genre_delete"

	PageBookList   = "book_list"
	PageBookDetail = "book_detail"
	PageBookForm   = "book_form"
	PageBookDelete = "book_delete"

	PageBookInstanceList   = "bookinstance_list"
	PageBookInstanceDetail = "bookinstance_detail"
	PageBookInstanceForm   = "bookinstance_form"
	PageBookInstanceDelete = "bookinstance_delete"
)

// Pages lists every template name the catalog renders.
func Pages() []string {
	return []string{
		PageHome,
		PageAuthorList, PageAuthorDetail, PageAuthorForm, PageAuthorDelete,
		PageGenreList, PageGenreDetail, PageGenreForm, PageGenreDelete,
		PageBookList, PageBookDetail, PageBookForm, PageBookDelete,
		PageBookInstanceList, PageBookInstanceDetail, PageBookInstanceForm, PageBookInstanceDelete,
	}
}

// # View Models

type HomeView struct {
	Title   string
	Summary Summary
}

type AuthorListView struct {
	Title   string
	Authors []*Author
}

type AuthorDetailView struct {
	Title  string
	Author *Author
	Books  []*Book
}

type AuthorFormView struct {
	Title  string
	Form   AuthorInput
	Errors []apperr.FieldError
}

// AuthorDeleteView backs both the confirmation and the blocked-delete page.
type AuthorDeleteView struct {
	Title  string
	Author *Author
	Books  []*Book
}

type GenreListView struct {
	Title  string
	Genres []*Genre
}

type GenreDetailView struct {
	Title string
	Genre *Genre
	Books []*Book
}

type GenreFormView struct {
	Title  string
	Form   GenreInput
	Errors []apperr.FieldError
}

type GenreDeleteView struct {
	Title string
	Genre *Genre
	Books []*Book
}

type BookListView struct {
	Title string
	Books []*Book
}

type BookDetailView struct {
	Title     string
	Book      *Book
	Instances []*BookInstance
}

// BookFormView carries the submitted input alongside the selectable
// authors and genres. Checked genres are derived from Form.Genre.
type BookFormView struct {
	Title   string
	Form    BookInput
	Authors []*Author
	Genres  []*Genre
	Errors  []apperr.FieldError
}

type BookDeleteView struct {
	Title     string
	Book      *Book
	Instances []*BookInstance
}

type BookInstanceListView struct {
	Title     string
	Instances []*BookInstance
}

type BookInstanceDetailView struct {
	Title    string
	Instance *BookInstance
}

type BookInstanceFormView struct {
	Title    string
	Form     BookInstanceInput
	Books    []*Book
	Statuses []Status
	Errors   []apperr.FieldError
}

type BookInstanceDeleteView struct {
	Title    string
	Instance *BookInstance
}
