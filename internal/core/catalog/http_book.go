// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/taibuivan/library/internal/platform/apperr"
	requestutil "github.com/taibuivan/library/internal/platform/request"
	"github.com/taibuivan/library/internal/platform/respond"
	"github.com/taibuivan/library/internal/platform/sanitize"
)

const bookListPath = BasePath + "/books"

// decodeBookForm reads and sanitizes the book form.
//
// The genre checkboxes are normalized to a list whether none, one or
// several were submitted.
func decodeBookForm(request *http.Request) BookInput {
	return BookInput{
		Title:   sanitize.Text(requestutil.FormValue(request, FieldTitle)),
		Author:  sanitize.Text(requestutil.FormValue(request, FieldAuthor)),
		Summary: sanitize.Text(requestutil.FormValue(request, FieldSummary)),
		ISBN:    sanitize.Text(requestutil.FormValue(request, FieldISBN)),
		Genre:   sanitize.List(requestutil.FormList(request, FieldGenre)),
	}
}

// # Book Retrieval

// ListBooks handles GET /catalog/books.
func (handler *Handler) ListBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageBookList, BookListView{Title: "Book List", Books: books})
}

/*
GET /catalog/book/{id}.

Response:
  - 200: Book with author, genres and copies
  - 404: Book not found
*/
func (handler *Handler) GetBook(writer http.ResponseWriter, request *http.Request) {
	book, instances, err := handler.service.GetBookWithInstances(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageBookDetail, BookDetailView{
		Title:     "Book Detail",
		Book:      book,
		Instances: instances,
	})
}

// # Book Creation

// CreateBookForm handles GET /catalog/book/create.
func (handler *Handler) CreateBookForm(writer http.ResponseWriter, request *http.Request) {
	options, err := handler.service.BookFormOptions(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageBookForm, BookFormView{
		Title:   "Create Book",
		Authors: options.Authors,
		Genres:  options.Genres,
	})
}

// renderBookForm re-renders a rejected submission with fresh reference lists.
func (handler *Handler) renderBookForm(writer http.ResponseWriter, request *http.Request, title string, input BookInput, err error) {
	options, optionsErr := handler.service.BookFormOptions(request.Context())
	if optionsErr != nil {
		handler.renderer.Error(writer, request, optionsErr)
		return
	}

	handler.renderer.OK(writer, request, PageBookForm, BookFormView{
		Title:   title,
		Form:    input,
		Authors: options.Authors,
		Genres:  options.Genres,
		Errors:  apperr.Fields(err),
	})
}

/*
POST /catalog/book/create.

Response:
  - 302: Redirect to the new book
  - 200: Form re-rendered with field errors and the submitted genres checked
  - 409: The selected author or a genre no longer exists
*/
func (handler *Handler) CreateBook(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeBookForm(request)

	book, err := handler.service.CreateBook(request.Context(), input)
	if apperr.IsValidation(err) {
		handler.renderBookForm(writer, request, "Create Book", input, err)
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, book.URL())
}

// # Book Update

// UpdateBookForm handles GET /catalog/book/{id}/update.
func (handler *Handler) UpdateBookForm(writer http.ResponseWriter, request *http.Request) {
	book, options, err := handler.service.GetBookForEdit(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, bookListPath)
		return
	}

	handler.renderer.OK(writer, request, PageBookForm, BookFormView{
		Title:   "Update Book",
		Form:    NewBookInput(book),
		Authors: options.Authors,
		Genres:  options.Genres,
	})
}

// UpdateBook handles POST /catalog/book/{id}/update. Genre links are
// replaced with the submitted set.
func (handler *Handler) UpdateBook(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeBookForm(request)

	book, err := handler.service.UpdateBook(request.Context(), requestutil.ID(request, paramID), input)
	if apperr.IsValidation(err) {
		handler.renderBookForm(writer, request, "Update Book", input, err)
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, book.URL())
}

// # Book Deletion

// DeleteBookForm handles GET /catalog/book/{id}/delete.
func (handler *Handler) DeleteBookForm(writer http.ResponseWriter, request *http.Request) {
	book, instances, err := handler.service.GetBookWithInstances(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, bookListPath)
		return
	}

	handler.renderer.OK(writer, request, PageBookDelete, BookDeleteView{
		Title:     "Delete Book",
		Book:      book,
		Instances: instances,
	})
}

/*
POST /catalog/book/{id}/delete.

Response:
  - 302: Redirect to the book list once deleted, or when already absent
  - 200: Confirmation re-rendered with the copies that block the delete
*/
func (handler *Handler) DeleteBook(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	id := requestutil.FormID(request, FieldBookID, paramID)

	book, instances, err := handler.service.DeleteBook(request.Context(), id)
	if err != nil {
		handler.redirectIfMissing(writer, request, err, bookListPath)
		return
	}

	if len(instances) > 0 {
		handler.renderer.OK(writer, request, PageBookDelete, BookDeleteView{
			Title:     "Delete Book",
			Book:      book,
			Instances: instances,
		})
		return
	}

	respond.Redirect(writer, request, bookListPath)
}
