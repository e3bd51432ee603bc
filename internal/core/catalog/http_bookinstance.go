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

const bookInstanceListPath = BasePath + "/bookinstances"

// decodeBookInstanceForm reads and sanitizes the copy form, applying the
// default status when none was selected.
func decodeBookInstanceForm(request *http.Request) BookInstanceInput {
	return normalizeStatus(BookInstanceInput{
		Book:    sanitize.Text(requestutil.FormValue(request, FieldBook)),
		Imprint: sanitize.Text(requestutil.FormValue(request, FieldImprint)),
		Status:  sanitize.Text(requestutil.FormValue(request, FieldStatus)),
		DueBack: sanitize.Normalize(requestutil.FormValue(request, FieldDueBack)),
	})
}

// # Copy Retrieval

// ListBookInstances handles GET /catalog/bookinstances.
func (handler *Handler) ListBookInstances(writer http.ResponseWriter, request *http.Request) {
	instances, err := handler.service.ListBookInstances(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageBookInstanceList, BookInstanceListView{
		Title:     "Book Instance List",
		Instances: instances,
	})
}

// GetBookInstance handles GET /catalog/bookinstance/{id}: the copy with its book, or 404.
func (handler *Handler) GetBookInstance(writer http.ResponseWriter, request *http.Request) {
	instance, err := handler.service.GetBookInstance(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageBookInstanceDetail, BookInstanceDetailView{
		Title:    "Book Instance Detail",
		Instance: instance,
	})
}

// # Copy Creation

// CreateBookInstanceForm handles GET /catalog/bookinstance/create.
func (handler *Handler) CreateBookInstanceForm(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageBookInstanceForm, BookInstanceFormView{
		Title:    "Create Book Instance",
		Form:     BookInstanceInput{Status: string(DefaultStatus)},
		Books:    books,
		Statuses: Statuses(),
	})
}

// renderBookInstanceForm re-renders a rejected submission with the selected book kept.
func (handler *Handler) renderBookInstanceForm(writer http.ResponseWriter, request *http.Request, title string, input BookInstanceInput, err error) {
	books, listErr := handler.service.ListBooks(request.Context())
	if listErr != nil {
		handler.renderer.Error(writer, request, listErr)
		return
	}

	handler.renderer.OK(writer, request, PageBookInstanceForm, BookInstanceFormView{
		Title:    title,
		Form:     input,
		Books:    books,
		Statuses: Statuses(),
		Errors:   apperr.Fields(err),
	})
}

/*
POST /catalog/bookinstance/create.

Response:
  - 302: Redirect to the new copy
  - 200: Form re-rendered with field errors
  - 409: The selected book no longer exists
*/
func (handler *Handler) CreateBookInstance(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeBookInstanceForm(request)

	instance, err := handler.service.CreateBookInstance(request.Context(), input)
	if apperr.IsValidation(err) {
		handler.renderBookInstanceForm(writer, request, "Create Book Instance", input, err)
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, instance.URL())
}

// # Copy Update

// UpdateBookInstanceForm handles GET /catalog/bookinstance/{id}/update.
func (handler *Handler) UpdateBookInstanceForm(writer http.ResponseWriter, request *http.Request) {
	instance, books, err := handler.service.GetBookInstanceForEdit(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, bookInstanceListPath)
		return
	}

	handler.renderer.OK(writer, request, PageBookInstanceForm, BookInstanceFormView{
		Title:    "Update Book Instance",
		Form:     NewBookInstanceInput(instance),
		Books:    books,
		Statuses: Statuses(),
	})
}

// UpdateBookInstance handles POST /catalog/bookinstance/{id}/update.
func (handler *Handler) UpdateBookInstance(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeBookInstanceForm(request)

	instance, err := handler.service.UpdateBookInstance(request.Context(), requestutil.ID(request, paramID), input)
	if apperr.IsValidation(err) {
		handler.renderBookInstanceForm(writer, request, "Update Book Instance", input, err)
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, instance.URL())
}

// # Copy Deletion

// DeleteBookInstanceForm handles GET /catalog/bookinstance/{id}/delete.
func (handler *Handler) DeleteBookInstanceForm(writer http.ResponseWriter, request *http.Request) {
	instance, err := handler.service.GetBookInstance(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, bookInstanceListPath)
		return
	}

	handler.renderer.OK(writer, request, PageBookInstanceDelete, BookInstanceDeleteView{
		Title:    "Delete Book Instance",
		Instance: instance,
	})
}

// DeleteBookInstance handles POST /catalog/bookinstance/{id}/delete.
// Copies have no dependents: the delete always proceeds.
func (handler *Handler) DeleteBookInstance(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	id := requestutil.FormID(request, FieldBookInstanceID, paramID)

	if _, err := handler.service.DeleteBookInstance(request.Context(), id); err != nil {
		handler.redirectIfMissing(writer, request, err, bookInstanceListPath)
		return
	}

	respond.Redirect(writer, request, bookInstanceListPath)
}
