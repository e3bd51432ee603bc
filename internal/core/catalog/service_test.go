// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/library/internal/core/catalog"
	"github.com/taibuivan/library/internal/platform/apperr"
	"github.com/taibuivan/library/internal/platform/sanitize"
)

func newTestService() (*catalog.Service, *memoryRepository) {
	repo := newMemoryRepository()
	return catalog.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

// fieldsOf returns the field names of a validation error in order.
func fieldsOf(err error) []string {
	var fields []string
	for _, field := range apperr.Fields(err) {
		fields = append(fields, field.Field)
	}
	return fields
}

// # Authors

/*
TestService_CreateAuthor verifies that a valid form is stored with parsed dates.
*/
func TestService_CreateAuthor(t *testing.T) {
	service, repo := newTestService()

	author, err := service.CreateAuthor(context.Background(), catalog.AuthorInput{
		FirstName:   "Isaac",
		FamilyName:  "Asimov",
		DateOfBirth: "1920-01-02",
		DateOfDeath: "1992-04-06T10:00:00Z",
	})
	require.NoError(t, err)

	stored, ok := repo.authors[author.ID]
	require.True(t, ok)
	assert.Equal(t, "Isaac", stored.FirstName)
	require.NotNil(t, stored.DateOfBirth)
	assert.Equal(t, time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC), *stored.DateOfBirth)
	require.NotNil(t, stored.DateOfDeath)
	assert.Equal(t, time.Date(1992, time.April, 6, 0, 0, 0, 0, time.UTC), *stored.DateOfDeath)
}

/*
TestService_CreateAuthor_Validation verifies the author rules and that nothing is stored.
*/
func TestService_CreateAuthor_Validation(t *testing.T) {
	tests := []struct {
		name       string
		input      catalog.AuthorInput
		wantFields []string
	}{
		{"missing_names", catalog.AuthorInput{}, []string{catalog.FieldFirstName, catalog.FieldFamilyName}},
		{"non_alphanumeric", catalog.AuthorInput{FirstName: "Jean-Luc", FamilyName: "Picard"}, []string{catalog.FieldFirstName}},
		{"bad_birth_date", catalog.AuthorInput{FirstName: "Ann", FamilyName: "Leckie", DateOfBirth: "yesterday"}, []string{catalog.FieldDateOfBirth}},
		{"bad_death_date", catalog.AuthorInput{FirstName: "Ann", FamilyName: "Leckie", DateOfDeath: "1992-13-45"}, []string{catalog.FieldDateOfDeath}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()

			_, err := service.CreateAuthor(context.Background(), tt.input)

			require.True(t, apperr.IsValidation(err))
			assert.Equal(t, tt.wantFields, fieldsOf(err))
			assert.Empty(t, repo.authors)
		})
	}
}

/*
TestService_UpdateAuthor verifies the full replace and the missing-record case.
*/
func TestService_UpdateAuthor(t *testing.T) {
	service, repo := newTestService()
	existing := repo.addAuthor("Isaac", "Asimov")
	birth := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)
	existing.DateOfBirth = &birth
	repo.authors[existing.ID] = *existing

	updated, err := service.UpdateAuthor(context.Background(), existing.ID, catalog.AuthorInput{FirstName: "Isaac", FamilyName: "Azimov"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "Azimov", repo.authors[existing.ID].FamilyName)
	assert.Nil(t, repo.authors[existing.ID].DateOfBirth)

	_, err = service.UpdateAuthor(context.Background(), "0190c6f8-8f7e-7a3b-9c1d-2e4f6a8b0c1d", catalog.AuthorInput{FirstName: "A", FamilyName: "B"})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_DeleteAuthor verifies that books block the delete.
*/
func TestService_DeleteAuthor(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	book := repo.addBook("Foundation", author.ID)

	_, books, err := service.DeleteAuthor(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Contains(t, repo.authors, author.ID)

	delete(repo.books, book.ID)

	_, books, err = service.DeleteAuthor(context.Background(), author.ID)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NotContains(t, repo.authors, author.ID)

	_, _, err = service.DeleteAuthor(context.Background(), author.ID)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_GetAuthorWithBooks_Failure verifies that a failing fetch surfaces as one error.
*/
func TestService_GetAuthorWithBooks_Failure(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	repo.err = errors.New("connection refused")

	got, books, err := service.GetAuthorWithBooks(context.Background(), author.ID)

	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, got)
	assert.Nil(t, books)
}

// # Genres

/*
TestService_CreateGenre_FindOrCreate verifies that an existing name is reused.
*/
func TestService_CreateGenre_FindOrCreate(t *testing.T) {
	service, repo := newTestService()

	first, created, err := service.CreateGenre(context.Background(), catalog.GenreInput{Name: "Fantasy"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := service.CreateGenre(context.Background(), catalog.GenreInput{Name: "Fantasy"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.genres, 1)
}

/*
TestService_CreateGenre_Validation verifies the required name and its length bound.
*/
func TestService_CreateGenre_Validation(t *testing.T) {
	service, repo := newTestService()

	_, _, err := service.CreateGenre(context.Background(), catalog.GenreInput{})
	require.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Genre name required", apperr.Fields(err)[0].Message)

	long := make([]byte, 101)
	for index := range long {
		long[index] = 'a'
	}
	_, _, err = service.CreateGenre(context.Background(), catalog.GenreInput{Name: string(long)})
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, repo.genres)
}

/*
TestService_CreateGenre_EscapedLength verifies that the length bound applies
to the name as typed, not to its stored HTML-escaped form.
*/
func TestService_CreateGenre_EscapedLength(t *testing.T) {
	service, repo := newTestService()

	typed := strings.Repeat(`"a"`, 28) + "b"
	require.Len(t, typed, 85)

	genre, created, err := service.CreateGenre(context.Background(), catalog.GenreInput{Name: sanitize.Text(typed)})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, typed, sanitize.Unescape(genre.Name))
	assert.Len(t, repo.genres, 1)
}

/*
TestService_CreateGenre_ConcurrentInsert verifies that losing an insert race
returns the genre stored by the other request.
*/
func TestService_CreateGenre_ConcurrentInsert(t *testing.T) {
	service, repo := newTestService()
	existing := repo.addGenre("Fantasy")
	repo.missedLookups = 1

	genre, created, err := service.CreateGenre(context.Background(), catalog.GenreInput{Name: "Fantasy"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, genre.ID)
	assert.Len(t, repo.genres, 1)
}

/*
TestService_UpdateGenre_DuplicateName verifies that a rename onto a taken
name is reported on the name field.
*/
func TestService_UpdateGenre_DuplicateName(t *testing.T) {
	service, repo := newTestService()
	repo.addGenre("Fantasy")
	poetry := repo.addGenre("Poetry")

	_, err := service.UpdateGenre(context.Background(), poetry.ID, catalog.GenreInput{Name: "Fantasy"})

	require.True(t, apperr.IsValidation(err))
	assert.Equal(t, []string{catalog.FieldName}, fieldsOf(err))
	assert.Equal(t, "Genre already exists", apperr.Fields(err)[0].Message)
	assert.Equal(t, "Poetry", repo.genres[poetry.ID].Name)
}

/*
TestService_DeleteGenre verifies that a genre in use is kept.
*/
func TestService_DeleteGenre(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	genre := repo.addGenre("Science Fiction")
	unused := repo.addGenre("Poetry")
	repo.addBook("Foundation", author.ID, genre.ID)

	_, books, err := service.DeleteGenre(context.Background(), genre.ID)
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Contains(t, repo.genres, genre.ID)

	_, books, err = service.DeleteGenre(context.Background(), unused.ID)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NotContains(t, repo.genres, unused.ID)
}

// # Books

/*
TestService_CreateBook verifies the stored references and genre links.
*/
func TestService_CreateBook(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	genre := repo.addGenre("Science Fiction")

	book, err := service.CreateBook(context.Background(), catalog.BookInput{
		Title:   "Foundation",
		Author:  author.ID,
		Summary: "Psychohistory",
		ISBN:    "9780553293357",
		Genre:   []string{genre.ID},
	})
	require.NoError(t, err)

	stored := repo.books[book.ID]
	assert.Equal(t, author.ID, stored.AuthorID)
	assert.Equal(t, []string{genre.ID}, stored.GenreIDs)
}

/*
TestService_CreateBook_Validation verifies required fields and reference formats.
*/
func TestService_CreateBook_Validation(t *testing.T) {
	service, repo := newTestService()

	_, err := service.CreateBook(context.Background(), catalog.BookInput{
		Author: "not-an-id",
		Genre:  []string{"also-not-an-id"},
	})

	require.True(t, apperr.IsValidation(err))
	assert.Equal(t, []string{
		catalog.FieldTitle,
		catalog.FieldAuthor,
		catalog.FieldSummary,
		catalog.FieldISBN,
		catalog.FieldGenre,
	}, fieldsOf(err))
	assert.Empty(t, repo.books)
}

/*
TestService_CreateBook_UnknownAuthor verifies that a dangling reference is a conflict.
*/
func TestService_CreateBook_UnknownAuthor(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateBook(context.Background(), catalog.BookInput{
		Title:   "Foundation",
		Author:  "0190c6f8-8f7e-7a3b-9c1d-2e4f6a8b0c1d",
		Summary: "Psychohistory",
		ISBN:    "9780553293357",
	})

	require.NotNil(t, apperr.As(err))
	assert.Equal(t, apperr.CodeConflict, apperr.As(err).Code)
}

/*
TestService_GetBookForEdit verifies the three concurrent reads.
*/
func TestService_GetBookForEdit(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	genre := repo.addGenre("Science Fiction")
	book := repo.addBook("Foundation", author.ID, genre.ID)

	got, options, err := service.GetBookForEdit(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foundation", got.Title)
	assert.Len(t, options.Authors, 1)
	assert.Len(t, options.Genres, 1)

	_, _, err = service.GetBookForEdit(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_DeleteBook verifies that copies block the delete.
*/
func TestService_DeleteBook(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	book := repo.addBook("Foundation", author.ID)
	repo.addInstance(book.ID, "Gnome Press", catalog.StatusAvailable)

	_, instances, err := service.DeleteBook(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Len(t, instances, 1)
	assert.Contains(t, repo.books, book.ID)
}

// # Book Instances

/*
TestService_CreateBookInstance verifies the default status and the due date.
*/
func TestService_CreateBookInstance(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	book := repo.addBook("Foundation", author.ID)

	instance, err := service.CreateBookInstance(context.Background(), catalog.BookInstanceInput{
		Book:    book.ID,
		Imprint: "Gnome Press, 1951",
		DueBack: "2026-03-15",
	})
	require.NoError(t, err)

	stored := repo.instances[instance.ID]
	assert.Equal(t, catalog.StatusMaintenance, stored.Status)
	require.NotNil(t, stored.DueBack)
	assert.Equal(t, "2026-03-15", stored.DueBack.Format("2006-01-02"))
}

/*
TestService_CreateBookInstance_Validation verifies the copy rules.
*/
func TestService_CreateBookInstance_Validation(t *testing.T) {
	service, repo := newTestService()

	_, err := service.CreateBookInstance(context.Background(), catalog.BookInstanceInput{
		Status:  "Lost",
		DueBack: "soon",
	})

	require.True(t, apperr.IsValidation(err))
	assert.Equal(t, []string{catalog.FieldBook, catalog.FieldImprint, catalog.FieldStatus, catalog.FieldDueBack}, fieldsOf(err))
	assert.Equal(t, "Status must be one of: Available, Maintenance, Loaned, Reserved", apperr.Fields(err)[2].Message)
	assert.Empty(t, repo.instances)
}

/*
TestService_DeleteBookInstance verifies that copies are always deletable.
*/
func TestService_DeleteBookInstance(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	book := repo.addBook("Foundation", author.ID)
	instance := repo.addInstance(book.ID, "Gnome Press", catalog.StatusLoaned)

	_, err := service.DeleteBookInstance(context.Background(), instance.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.instances)

	_, err = service.DeleteBookInstance(context.Background(), instance.ID)
	assert.True(t, apperr.IsNotFound(err))
}

// # Home

/*
TestService_Summary verifies the counts and the per-count failure report.
*/
func TestService_Summary(t *testing.T) {
	service, repo := newTestService()
	author := repo.addAuthor("Isaac", "Asimov")
	book := repo.addBook("Foundation", author.ID)
	repo.addInstance(book.ID, "Gnome Press", catalog.StatusAvailable)
	repo.addInstance(book.ID, "Doubleday", catalog.StatusLoaned)
	repo.addGenre("Science Fiction")

	summary := service.Summary(context.Background())
	require.Len(t, summary.Counts, 5)
	assert.False(t, summary.HasErrors())

	values := make([]int64, 0, len(summary.Counts))
	for _, count := range summary.Counts {
		values = append(values, count.Value)
	}
	assert.Equal(t, []int64{1, 2, 1, 1, 1}, values)

	repo.countErr = errors.New("timeout")
	summary = service.Summary(context.Background())
	assert.True(t, summary.HasErrors())
	assert.Equal(t, int64(1), summary.Counts[0].Value)
	assert.Equal(t, "Genres", summary.Counts[4].Label)
	assert.Error(t, summary.Counts[4].Err)
}
