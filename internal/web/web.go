// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web bundles the HTML templates and static assets of the catalog.

Every page is parsed into its own template set made of the shared layout and
the page file. The layout renders the whole document and pulls the page in
through the "content" block. Stored text is HTML-escaped at write time, so
templates unescape it before html/template escapes it again for output.
*/
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/taibuivan/library/internal/core/catalog"
	"github.com/taibuivan/library/internal/platform/respond"
	"github.com/taibuivan/library/internal/platform/sanitize"
)

const (
	layoutFile = "templates/layout.html"

	// StaticPath is the URL prefix under which assets are served.
	StaticPath = "/static/"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"unescape":    sanitize.Unescape,
		"statusClass": statusClass,
	}
}

// statusClass maps a circulation status to its display class.
func statusClass(status catalog.Status) string {
	switch status {
	case catalog.StatusAvailable:
		return "status-available"
	case catalog.StatusMaintenance:
		return "status-maintenance"
	default:
		return "status-out"
	}
}

/*
Pages parses the error page and every catalog page.

Returns:
  - map[string]*template.Template: One executable set per page name
  - error: A parse failure naming the offending page
*/
func Pages() (map[string]*template.Template, error) {
	names := append([]string{respond.ErrorPageName}, catalog.Pages()...)

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		page, err := template.New("layout.html").
			Funcs(Funcs()).
			ParseFS(templateFiles, layoutFile, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse page %q: %w", name, err)
		}
		pages[name] = page
	}

	return pages, nil
}

// Static serves the embedded assets under [StaticPath].
func Static() http.Handler {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(StaticPath, http.FileServer(http.FS(assets)))
}
