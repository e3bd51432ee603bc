// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Catalog pages are server-rendered: a [Renderer] executes a named page
// template into a buffer first, so a template failure never leaves a
// half-written page behind. Errors of any kind are converted to an
// [apperr.AppError] and rendered through the shared "error" page.
// Health endpoints keep a small JSON writer.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/taibuivan/library/internal/platform/apperr"
	"github.com/taibuivan/library/internal/platform/constants"
	"github.com/taibuivan/library/internal/platform/ctxutil"
)

// ErrorPageName is the template rendered by [Renderer.Error].
const ErrorPageName = "error"

// ErrorPage is the view model of the error template.
type ErrorPage struct {
	Title     string
	Status    int
	Message   string
	RequestID string
	Details   []apperr.FieldError
}

// Renderer executes named page templates.
//
// Each entry of pages must be a complete template set (layout plus page)
// whose root template renders the whole document.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer constructs a [Renderer] over a parsed page set.
func NewRenderer(pages map[string]*template.Template) *Renderer {
	return &Renderer{pages: pages}
}

// # Pages

// Page renders the named template with data and the given status code.
func (renderer *Renderer) Page(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	page, ok := renderer.pages[name]
	if !ok {
		renderer.fail(writer, request, errors.New("respond: unknown page "+name))
		return
	}

	var buffer bytes.Buffer
	if err := page.Execute(&buffer, data); err != nil {
		renderer.fail(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeHTML)
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// OK renders the named template with a 200 status.
func (renderer *Renderer) OK(writer http.ResponseWriter, request *http.Request, name string, data any) {
	renderer.Page(writer, request, http.StatusOK, name, data)
}

// Error converts any Go error into the rendered error page.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the user.
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	renderer.Page(writer, request, appError.HTTPStatus, ErrorPageName, ErrorPage{
		Title:     http.StatusText(appError.HTTPStatus),
		Status:    appError.HTTPStatus,
		Message:   appError.Message,
		RequestID: ctxutil.GetRequestID(request.Context()),
		Details:   appError.Details,
	})
}

// fail is the last-resort path when a template cannot be rendered.
func (renderer *Renderer) fail(writer http.ResponseWriter, request *http.Request, err error) {
	ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "template_render_failed",
		slog.Any("error", err),
	)
	http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// # Navigation

// Redirect sends a 302 Found to target, matching classic form POST flows.
func Redirect(writer http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(writer, request, target, http.StatusFound)
}

// # JSON

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}
