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

const genreListPath = BasePath + "/genres"

func decodeGenreForm(request *http.Request) GenreInput {
	return GenreInput{Name: sanitize.Text(requestutil.FormValue(request, FieldName))}
}

// # Genre Retrieval

// ListGenres handles GET /catalog/genres.
func (handler *Handler) ListGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageGenreList, GenreListView{Title: "Genre List", Genres: genres})
}

// GetGenre handles GET /catalog/genre/{id}: the genre with its books, or 404.
func (handler *Handler) GetGenre(writer http.ResponseWriter, request *http.Request) {
	genre, books, err := handler.service.GetGenreWithBooks(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.OK(writer, request, PageGenreDetail, GenreDetailView{
		Title: "Genre Detail",
		Genre: genre,
		Books: books,
	})
}

// # Genre Creation

// CreateGenreForm handles GET /catalog/genre/create.
func (handler *Handler) CreateGenreForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.OK(writer, request, PageGenreForm, GenreFormView{Title: "Create Genre"})
}

/*
POST /catalog/genre/create.

Description: Submitting the name of an existing genre redirects to that
genre without creating a duplicate.

Response:
  - 302: Redirect to the new or existing genre
  - 200: Form re-rendered with field errors
*/
func (handler *Handler) CreateGenre(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeGenreForm(request)

	genre, _, err := handler.service.CreateGenre(request.Context(), input)
	if apperr.IsValidation(err) {
		handler.renderer.OK(writer, request, PageGenreForm, GenreFormView{
			Title:  "Create Genre",
			Form:   input,
			Errors: apperr.Fields(err),
		})
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, genre.URL())
}

// # Genre Update

// UpdateGenreForm handles GET /catalog/genre/{id}/update.
func (handler *Handler) UpdateGenreForm(writer http.ResponseWriter, request *http.Request) {
	genre, err := handler.service.GetGenre(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, genreListPath)
		return
	}

	handler.renderer.OK(writer, request, PageGenreForm, GenreFormView{
		Title: "Update Genre",
		Form:  GenreInput{Name: genre.Name},
	})
}

// UpdateGenre handles POST /catalog/genre/{id}/update.
func (handler *Handler) UpdateGenre(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := decodeGenreForm(request)

	genre, err := handler.service.UpdateGenre(request.Context(), requestutil.ID(request, paramID), input)
	if apperr.IsValidation(err) {
		handler.renderer.OK(writer, request, PageGenreForm, GenreFormView{
			Title:  "Update Genre",
			Form:   input,
			Errors: apperr.Fields(err),
		})
		return
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, genre.URL())
}

// # Genre Deletion

// DeleteGenreForm handles GET /catalog/genre/{id}/delete.
func (handler *Handler) DeleteGenreForm(writer http.ResponseWriter, request *http.Request) {
	genre, books, err := handler.service.GetGenreWithBooks(request.Context(), requestutil.ID(request, paramID))
	if err != nil {
		handler.redirectIfMissing(writer, request, err, genreListPath)
		return
	}

	handler.renderer.OK(writer, request, PageGenreDelete, GenreDeleteView{
		Title: "Delete Genre",
		Genre: genre,
		Books: books,
	})
}

// DeleteGenre handles POST /catalog/genre/{id}/delete. Books filed under
// the genre block the delete.
func (handler *Handler) DeleteGenre(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(writer, request); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	id := requestutil.FormID(request, FieldGenreID, paramID)

	genre, books, err := handler.service.DeleteGenre(request.Context(), id)
	if err != nil {
		handler.redirectIfMissing(writer, request, err, genreListPath)
		return
	}

	if len(books) > 0 {
		handler.renderer.OK(writer, request, PageGenreDelete, GenreDeleteView{
			Title: "Delete Genre",
			Genre: genre,
			Books: books,
		})
		return
	}

	respond.Redirect(writer, request, genreListPath)
}
