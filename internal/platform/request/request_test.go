// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/library/internal/platform/apperr"
	requestutil "github.com/taibuivan/library/internal/platform/request"
)

// newFormRequest builds a parsed POST request with an optional chi route id.
func newFormRequest(t *testing.T, form url.Values, routeID string) *http.Request {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/catalog/book/create", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if routeID != "" {
		routeContext := chi.NewRouteContext()
		routeContext.URLParams.Add("id", routeID)
		request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
	}

	require.NoError(t, requestutil.ParseForm(httptest.NewRecorder(), request))
	return request
}

/*
TestFormList verifies that list fields are normalized regardless of cardinality.
*/
func TestFormList(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want []string
	}{
		{"missing", url.Values{}, []string{}},
		{"single", url.Values{"genre": {"g1"}}, []string{"g1"}},
		{"multiple", url.Values{"genre": {"g1", "g2", "g3"}}, []string{"g1", "g2", "g3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := newFormRequest(t, tt.form, "")
			got := requestutil.FormList(request, "genre")

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestFormValue returns the first submitted value only.
*/
func TestFormValue(t *testing.T) {
	request := newFormRequest(t, url.Values{"title": {"Dune", "Other"}}, "")

	assert.Equal(t, "Dune", requestutil.FormValue(request, "title"))
	assert.Empty(t, requestutil.FormValue(request, "isbn"))
}

/*
TestFormID prefers the body field and falls back to the route parameter.
*/
func TestFormID(t *testing.T) {
	withField := newFormRequest(t, url.Values{"authorid": {"from-body"}}, "from-route")
	assert.Equal(t, "from-body", requestutil.FormID(withField, "authorid", "id"))

	withoutField := newFormRequest(t, url.Values{}, "from-route")
	assert.Equal(t, "from-route", requestutil.FormID(withoutField, "authorid", "id"))
}

/*
TestParseForm_Malformed maps undecodable bodies to a bad request.
*/
func TestParseForm_Malformed(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=%zz"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	err := requestutil.ParseForm(httptest.NewRecorder(), request)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}
