// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sanitize cleans raw form input before it reaches validation.

Every free-text field goes through the same pipeline:

  - Trim: leading and trailing whitespace is removed.
  - Normalize: the value is converted to Unicode NFC so visually identical
    strings compare equal (e.g. "é" typed as one or two code points).
  - Escape: HTML metacharacters are replaced by entities.

Values are stored escaped. Views unescape them before handing them to
html/template, which escapes again on output, so nothing is double encoded.
*/
package sanitize

import (
	"html"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims the value and converts it to Unicode NFC.
func Normalize(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

// Text applies the full pipeline: [Normalize] followed by HTML escaping.
func Text(value string) string {
	return html.EscapeString(Normalize(value))
}

// List applies [Text] to every element and returns a new slice.
// A nil input yields an empty, non-nil slice.
func List(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		cleaned = append(cleaned, Text(value))
	}
	return cleaned
}

// Unescape reverses the escaping step of [Text] for display and form pre-fill.
func Unescape(value string) string {
	return html.UnescapeString(value)
}
