// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
form decoding patterns shared by every catalog handler, ensuring consistent
error handling.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/library/internal/platform/apperr"
)

// maxFormBytes bounds urlencoded request bodies.
const maxFormBytes = 1 << 20

/*
ParseForm decodes an urlencoded request body.

Returns:
  - error: apperr.BadRequest if the body is malformed or too large
*/
func ParseForm(writer http.ResponseWriter, request *http.Request) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxFormBytes)
	if err := request.ParseForm(); err != nil {
		return apperr.BadRequest("Malformed form submission", err)
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
FormValue returns the first value submitted for key in the request body, or "".
*/
func FormValue(request *http.Request, key string) string {
	values := request.PostForm[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

/*
FormList returns every value submitted for key as a list.

A missing key yields an empty list, a single value a one-element list, and
repeated keys the values in submission order. The result is never nil.
*/
func FormList(request *http.Request, key string) []string {
	values := request.PostForm[key]
	list := make([]string, 0, len(values))
	return append(list, values...)
}

/*
FormID returns the identifier named by a body field, falling back to the
route parameter when the field is absent or blank.
*/
func FormID(request *http.Request, field, param string) string {
	if id := FormValue(request, field); id != "" {
		return id
	}
	return ID(request, param)
}
