// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/library/internal/core/catalog"
)

func date(year int, month time.Month, day int) *time.Time {
	value := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &value
}

/*
TestAuthor_DisplayFields verifies the computed fields rendered by the author pages.
*/
func TestAuthor_DisplayFields(t *testing.T) {
	author := &catalog.Author{
		ID:          "0190c6f8-8f7e-7a3b-9c1d-2e4f6a8b0c1d",
		FirstName:   "Isaac",
		FamilyName:  "Asimov",
		DateOfBirth: date(1920, time.January, 2),
		DateOfDeath: date(1992, time.April, 6),
	}

	assert.Equal(t, "/catalog/author/0190c6f8-8f7e-7a3b-9c1d-2e4f6a8b0c1d", author.URL())
	assert.Equal(t, "Asimov, Isaac", author.Name())
	assert.Equal(t, "72", author.Lifespan())
	assert.Equal(t, "Jan 2, 1920", author.DateOfBirthFormatted())
	assert.Equal(t, "Apr 6, 1992", author.DateOfDeathFormatted())
	assert.Equal(t, "1920-01-02", author.DateOfBirthISO())
}

/*
TestAuthor_LifespanNeedsBothDates verifies that a partial lifespan renders as empty.
*/
func TestAuthor_LifespanNeedsBothDates(t *testing.T) {
	tests := []struct {
		name   string
		author catalog.Author
	}{
		{"no_dates", catalog.Author{}},
		{"birth_only", catalog.Author{DateOfBirth: date(1920, time.January, 2)}},
		{"death_only", catalog.Author{DateOfDeath: date(1992, time.April, 6)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, tt.author.Lifespan())
		})
	}
}

/*
TestStatus verifies the circulation status set.
*/
func TestStatus(t *testing.T) {
	assert.Equal(t, catalog.StatusMaintenance, catalog.DefaultStatus)
	assert.Len(t, catalog.Statuses(), 4)

	for _, status := range catalog.Statuses() {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, catalog.Status("Lost").IsValid())

	assert.True(t, catalog.StatusLoaned.IsOut())
	assert.True(t, catalog.StatusReserved.IsOut())
	assert.False(t, catalog.StatusAvailable.IsOut())
	assert.False(t, catalog.StatusMaintenance.IsOut())
}

/*
TestBookInput_FromBook verifies that pre-filled forms copy the genre list and mark it checked.
*/
func TestBookInput_FromBook(t *testing.T) {
	book := &catalog.Book{ID: "b", Title: "Foundation", AuthorID: "a", GenreIDs: []string{"g1", "g2"}}

	input := catalog.NewBookInput(book)
	input.Genre[0] = "changed"

	assert.Equal(t, "g1", book.GenreIDs[0])
	assert.Equal(t, "a", input.Author)
	assert.True(t, input.HasGenre("g2"))
	assert.False(t, input.HasGenre("g1"))
	assert.Equal(t, "/catalog/book/b", book.URL())
}

/*
TestBookInstance_DisplayFields verifies the due date rendering and pre-fill.
*/
func TestBookInstance_DisplayFields(t *testing.T) {
	instance := &catalog.BookInstance{
		ID:      "i",
		BookID:  "b",
		Imprint: "Gnome Press, 1951",
		Status:  catalog.StatusLoaned,
		DueBack: date(2026, time.March, 15),
	}

	assert.Equal(t, "Mar 15, 2026", instance.DueBackFormatted())
	assert.Equal(t, "/catalog/bookinstance/i", instance.URL())
	assert.Equal(t, catalog.BookInstanceInput{
		Book:    "b",
		Imprint: "Gnome Press, 1951",
		Status:  "Loaned",
		DueBack: "2026-03-15",
	}, catalog.NewBookInstanceInput(instance))

	assert.Empty(t, (&catalog.BookInstance{}).DueBackFormatted())
}
