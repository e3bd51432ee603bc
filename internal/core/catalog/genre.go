// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// # Genre Domain

// Genre is a category books are filed under. Names are unique by exact match.
type Genre struct {
	ID   string
	Name string
}

// URL is the canonical detail page of the genre.
func (genre *Genre) URL() string {
	return BasePath + "/genre/" + genre.ID
}

// GenreInput is the sanitized genre form as submitted.
type GenreInput struct {
	Name string
}
