// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/library/internal/platform/apperr"
	"github.com/taibuivan/library/internal/platform/respond"
)

// paramID names the record identifier in every catalog route.
const paramID = "id"

// # Handler Implementation

// Handler implements the server-rendered pages of the catalog.
type Handler struct {
	service  *Service
	renderer *respond.Renderer
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service, renderer *respond.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

/*
Routes builds the catalog router, to be mounted at [BasePath].

Every entity exposes the same set of pages:

  - GET /<entity>/create, POST /<entity>/create
  - GET /<entity>/{id}
  - GET /<entity>/{id}/update, POST /<entity>/{id}/update
  - GET /<entity>/{id}/delete, POST /<entity>/{id}/delete

The create routes are registered before {id} so "create" is never taken for an id.
*/
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.Home)

	router.Get("/authors", handler.ListAuthors)
	router.Route("/author", func(author chi.Router) {
		author.Get("/create", handler.CreateAuthorForm)
		author.Post("/create", handler.CreateAuthor)
		author.Get("/{id}", handler.GetAuthor)
		author.Get("/{id}/update", handler.UpdateAuthorForm)
		author.Post("/{id}/update", handler.UpdateAuthor)
		author.Get("/{id}/delete", handler.DeleteAuthorForm)
		author.Post("/{id}/delete", handler.DeleteAuthor)
	})

	router.Get("/books", handler.ListBooks)
	router.Route("/book", func(book chi.Router) {
		book.Get("/create", handler.CreateBookForm)
		book.Post("/create", handler.CreateBook)
		book.Get("/{id}", handler.GetBook)
		book.Get("/{id}/update", handler.UpdateBookForm)
		book.Post("/{id}/update", handler.UpdateBook)
		book.Get("/{id}/delete", handler.DeleteBookForm)
		book.Post("/{id}/delete", handler.DeleteBook)
	})

	router.Get("/genres", handler.ListGenres)
	router.Route("/genre", func(genre chi.Router) {
		genre.Get("/create", handler.CreateGenreForm)
		genre.Post("/create", handler.CreateGenre)
		genre.Get("/{id}", handler.GetGenre)
		genre.Get("/{id}/update", handler.UpdateGenreForm)
		genre.Post("/{id}/update", handler.UpdateGenre)
		genre.Get("/{id}/delete", handler.DeleteGenreForm)
		genre.Post("/{id}/delete", handler.DeleteGenre)
	})

	router.Get("/bookinstances", handler.ListBookInstances)
	router.Route("/bookinstance", func(instance chi.Router) {
		instance.Get("/create", handler.CreateBookInstanceForm)
		instance.Post("/create", handler.CreateBookInstance)
		instance.Get("/{id}", handler.GetBookInstance)
		instance.Get("/{id}/update", handler.UpdateBookInstanceForm)
		instance.Post("/{id}/update", handler.UpdateBookInstance)
		instance.Get("/{id}/delete", handler.DeleteBookInstanceForm)
		instance.Post("/{id}/delete", handler.DeleteBookInstance)
	})

	return router
}

// # Home

/*
GET /catalog.

Description: Renders the record counts of the catalog. Failed counts are
shown on the page instead of failing the request.
*/
func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.OK(writer, request, PageHome, HomeView{
		Title:   "Local Library Home",
		Summary: handler.service.Summary(request.Context()),
	})
}

// # Shared Flow

// redirectIfMissing sends the client to the list page when err is a
// not-found error and renders the error page otherwise.
func (handler *Handler) redirectIfMissing(writer http.ResponseWriter, request *http.Request, err error, list string) {
	if apperr.IsNotFound(err) {
		respond.Redirect(writer, request, list)
		return
	}
	handler.renderer.Error(writer, request, err)
}
