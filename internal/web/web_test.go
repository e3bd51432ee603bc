// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/library/internal/core/catalog"
	"github.com/taibuivan/library/internal/platform/respond"
	"github.com/taibuivan/library/internal/web"
)

/*
TestPages verifies that the error page and every catalog page parse.
*/
func TestPages(t *testing.T) {
	pages, err := web.Pages()
	require.NoError(t, err)

	assert.Contains(t, pages, respond.ErrorPageName)
	for _, name := range catalog.Pages() {
		assert.Contains(t, pages, name)
	}
}

/*
TestPages_RenderEscapedText verifies that stored escapes are shown once, never doubled.
*/
func TestPages_RenderEscapedText(t *testing.T) {
	pages, err := web.Pages()
	require.NoError(t, err)

	var buffer bytes.Buffer
	err = pages[catalog.PageGenreList].Execute(&buffer, catalog.GenreListView{
		Title:  "Genre List",
		Genres: []*catalog.Genre{{ID: "g1", Name: "Sci-Fi &amp; Fantasy"}},
	})
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), "Sci-Fi &amp; Fantasy")
	assert.NotContains(t, buffer.String(), "&amp;amp;")
	assert.Contains(t, buffer.String(), `href="/catalog/genre/g1"`)
}

/*
TestPages_StatusClass verifies the circulation status styling on the copy list.
*/
func TestPages_StatusClass(t *testing.T) {
	pages, err := web.Pages()
	require.NoError(t, err)

	var buffer bytes.Buffer
	err = pages[catalog.PageBookInstanceList].Execute(&buffer, catalog.BookInstanceListView{
		Title: "Book Instance List",
		Instances: []*catalog.BookInstance{
			{ID: "i1", Imprint: "Gnome", Status: catalog.StatusAvailable, Book: &catalog.Book{Title: "Foundation"}},
			{ID: "i2", Imprint: "Doubleday", Status: catalog.StatusLoaned},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), `class="status-available"`)
	assert.Contains(t, buffer.String(), `class="status-out"`)
}

/*
TestStatic verifies that the stylesheet is served from the embedded assets.
*/
func TestStatic(t *testing.T) {
	recorder := httptest.NewRecorder()
	web.Static().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/css")
}
