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

const authorListPath = BasePath + "/authors"

// decodeAuthorForm reads and sanitizes the author form. Dates are only
// normalized: they are parsed, never displayed verbatim.
func decodeAuthorForm(request *http.Request) AuthorInput {
	return AuthorInput{
		FirstName:   sanitize.Text(requestutil.FormValue(request, FieldFirstName)),
		FamilyName:  sanitize.Text(requestutil.FormValue(request, FieldFamilyName)),
		DateOfBirth: sanitize.Normalize(requestutil.FormValue(request, FieldDateOfBirth)),
		DateOfDeath: sanitize.Normalize(requestutil.FormValue(request, FieldDateOfDeath)),
	}
}

// # Author Retrieval

// ListAuthors handles GET /catalog/authors.
func (handler *Handler) ListAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageAuthorList, AuthorListView{Title: "Author List", Authors: authors})
}

/*
GET /catalog/author/{id}.

Response:
  - 200: Author with their books
  - 404: Author not found
*/
func (handler *Handler) GetAuthor(writer http.ResponseWriter, request *http.Request) {
	author, books, err := handler.service.GetAuthorWithBooks(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageAuthorDetail, AuthorDetailView{
		Title:  "Author Detail",
		Author: author,
		Books:  books,
	})
}

// # Author Creation

// CreateAuthorForm handles GET /catalog/author/create.
func (handler *Handler) CreateAuthorForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.OK(writer, request, PageAuthorForm, AuthorFormView{Title: "Create Author"})
}

/*
POST /catalog/author/create.

Response:
  - 302: Redirect to the new author
  - 200: Form re-rendered with field errors
*/
func (handler *Handler) CreateAuthor(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeAuthorForm(request)

	author, err := handler.service.CreateAuthor(request.Context(), input)
	if apperr.IsValidation(err) {
		handler.renderer.OK(writer, request, PageAuthorForm, AuthorFormView{
			Title:  "Create Author",
			Form:   input,
			Errors: apperr.Fields(err),
		})
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, author.URL())
}

// # Author Update

// UpdateAuthorForm handles GET /catalog/author/{id}/update.
func (handler *Handler) UpdateAuthorForm(writer http.ResponseWriter, request *http.Request) {
	author, err := handler.service.GetAuthor(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, authorListPath)
		return
	}

	handler.renderer.OK(writer, request, PageAuthorForm, AuthorFormView{
		Title: "Update Author",
		Form:  NewAuthorInput(author),
	})
}

/*
POST /catalog/author/{id}/update.

Response:
  - 302: Redirect to the updated author
  - 200: Form re-rendered with field errors
  - 404: Author not found
*/
func (handler *Handler) UpdateAuthor(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeAuthorForm(request)

	author, err := handler.service.UpdateAuthor(request.Context(), requestutil.ID(request, paramID), input)
	if apperr.IsValidation(err) {
		handler.renderer.OK(writer, request, PageAuthorForm, AuthorFormView{
			Title:  "Update Author",
			Form:   input,
			Errors: apperr.Fields(err),
		})
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, author.URL())
}

// # Author Deletion

// DeleteAuthorForm handles GET /catalog/author/{id}/delete.
func (handler *Handler) DeleteAuthorForm(writer http.ResponseWriter, request *http.Request) {
	author, books, err := handler.service.GetAuthorWithBooks(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, authorListPath)
		return
	}

	handler.renderer.OK(writer, request, PageAuthorDelete, AuthorDeleteView{
		Title:  "Delete Author",
		Author: author,
		Books:  books,
	})
}

/*
POST /catalog/author/{id}/delete.

Description: The target is read from the authorid body field, falling back
to the route id.

Response:
  - 302: Redirect to the author list once deleted, or when already absent
  - 200: Confirmation re-rendered with the books that block the delete
*/
func (handler *Handler) DeleteAuthor(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	id := requestutil.FormID(request, FieldAuthorID, paramID)

	author, books, err := handler.service.DeleteAuthor(request.Context(), id)
	if err != nil {
		handler.redirectIfMissing(writer, request, err, authorListPath)
		return
	}

	if len(books) > 0 {
		handler.renderer.OK(writer, request, PageAuthorDelete, AuthorDeleteView{
			Title:  "Delete Author",
			Author: author,
			Books:  books,
		})
		return
	}

	respond.Redirect(writer, request, authorListPath)
}
