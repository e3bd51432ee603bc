// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/library/internal/core/catalog"
	"github.com/taibuivan/library/internal/platform/apperr"
	"github.com/taibuivan/library/internal/platform/dberr"
	"github.com/taibuivan/library/pkg/uuid"
)

// memoryRepository is an in-memory [catalog.Repository] that mirrors the
// PostgreSQL store: malformed ids are absent, reads populate references and
// deletes of referenced rows are refused.
type memoryRepository struct {
	mu sync.Mutex

	authors   map[string]catalog.Author
	genres    map[string]catalog.Genre
	books     map[string]catalog.Book
	instances map[string]catalog.BookInstance

	// err fails every call when set.
	err error
	// countErr fails CountGenres only.
	countErr error
	// missedLookups makes the next FindGenreByName calls miss, as when a
	// concurrent request inserts the same genre between lookup and insert.
	missedLookups int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		authors:   map[string]catalog.Author{},
		genres:    map[string]catalog.Genre{},
		books:     map[string]catalog.Book{},
		instances: map[string]catalog.BookInstance{},
	}
}

var _ catalog.Repository = (*memoryRepository)(nil)

// # Seeding

func (repo *memoryRepository) addAuthor(first, family string) *catalog.Author {
	author := catalog.Author{ID: uuid.New(), FirstName: first, FamilyName: family}
	repo.authors[author.ID] = author
	return &author
}

func (repo *memoryRepository) addGenre(name string) *catalog.Genre {
	genre := catalog.Genre{ID: uuid.New(), Name: name}
	repo.genres[genre.ID] = genre
	return &genre
}

func (repo *memoryRepository) addBook(title, authorID string, genreIDs ...string) *catalog.Book {
	book := catalog.Book{ID: uuid.New(), Title: title, Summary: "Summary of " + title, ISBN: "978", AuthorID: authorID, GenreIDs: genreIDs}
	repo.books[book.ID] = book
	return &book
}

func (repo *memoryRepository) addInstance(bookID, imprint string, status catalog.Status) *catalog.BookInstance {
	instance := catalog.BookInstance{ID: uuid.New(), BookID: bookID, Imprint: imprint, Status: status}
	repo.instances[instance.ID] = instance
	return &instance
}

// # Helpers

func (repo *memoryRepository) populateBook(book catalog.Book) *catalog.Book {
	if author, ok := repo.authors[book.AuthorID]; ok {
		book.Author = &author
	}
	book.Genres = nil
	for _, id := range book.GenreIDs {
		if genre, ok := repo.genres[id]; ok {
			book.Genres = append(book.Genres, &genre)
		}
	}
	return &book
}

func (repo *memoryRepository) populateInstance(instance catalog.BookInstance) *catalog.BookInstance {
	if book, ok := repo.books[instance.BookID]; ok {
		instance.Book = &book
	}
	return &instance
}

func (repo *memoryRepository) sortedBooks(keep func(catalog.Book) bool) []*catalog.Book {
	books := make([]*catalog.Book, 0)
	for _, book := range repo.books {
		if keep(book) {
			books = append(books, repo.populateBook(book))
		}
	}
	slices.SortFunc(books, func(a, b *catalog.Book) int { return strings.Compare(a.Title, b.Title) })
	return books
}

func referenceMissing() error {
	return apperr.Conflict("The record is still referenced by other records")
}

// # Authors

func (repo *memoryRepository) ListAuthors(_ context.Context) ([]*catalog.Author, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	authors := make([]*catalog.Author, 0, len(repo.authors))
	for _, author := range repo.authors {
		authors = append(authors, &author)
	}
	slices.SortFunc(authors, func(a, b *catalog.Author) int {
		if c := strings.Compare(a.FamilyName, b.FamilyName); c != 0 {
			return c
		}
		return strings.Compare(a.FirstName, b.FirstName)
	})
	return authors, nil
}

func (repo *memoryRepository) GetAuthor(_ context.Context, id string) (*catalog.Author, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	author, ok := repo.authors[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &author, nil
}

func (repo *memoryRepository) CreateAuthor(_ context.Context, author *catalog.Author) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	repo.authors[author.ID] = *author
	return nil
}

func (repo *memoryRepository) UpdateAuthor(_ context.Context, author *catalog.Author) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.authors[author.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.authors[author.ID] = *author
	return nil
}

func (repo *memoryRepository) DeleteAuthor(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.authors[id]; !ok {
		return dberr.ErrNotFound
	}
	for _, book := range repo.books {
		if book.AuthorID == id {
			return referenceMissing()
		}
	}
	delete(repo.authors, id)
	return nil
}

func (repo *memoryRepository) CountAuthors(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return 0, repo.err
	}
	return int64(len(repo.authors)), nil
}

// # Genres

func (repo *memoryRepository) ListGenres(_ context.Context) ([]*catalog.Genre, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	genres := make([]*catalog.Genre, 0, len(repo.genres))
	for _, genre := range repo.genres {
		genres = append(genres, &genre)
	}
	slices.SortFunc(genres, func(a, b *catalog.Genre) int { return strings.Compare(a.Name, b.Name) })
	return genres, nil
}

func (repo *memoryRepository) GetGenre(_ context.Context, id string) (*catalog.Genre, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	genre, ok := repo.genres[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &genre, nil
}

func (repo *memoryRepository) FindGenreByName(_ context.Context, name string) (*catalog.Genre, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	if repo.missedLookups > 0 {
		repo.missedLookups--
		return nil, dberr.ErrNotFound
	}

	for _, genre := range repo.genres {
		if genre.Name == name {
			return &genre, nil
		}
	}
	return nil, dberr.ErrNotFound
}

// genreNameTaken reports whether another genre already uses name.
func (repo *memoryRepository) genreNameTaken(id, name string) bool {
	for _, genre := range repo.genres {
		if genre.ID != id && genre.Name == name {
			return true
		}
	}
	return false
}

func (repo *memoryRepository) CreateGenre(_ context.Context, genre *catalog.Genre) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if repo.genreNameTaken(genre.ID, genre.Name) {
		return dberr.ErrDuplicate
	}
	repo.genres[genre.ID] = *genre
	return nil
}

func (repo *memoryRepository) UpdateGenre(_ context.Context, genre *catalog.Genre) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.genres[genre.ID]; !ok {
		return dberr.ErrNotFound
	}
	if repo.genreNameTaken(genre.ID, genre.Name) {
		return dberr.ErrDuplicate
	}
	repo.genres[genre.ID] = *genre
	return nil
}

func (repo *memoryRepository) DeleteGenre(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.genres[id]; !ok {
		return dberr.ErrNotFound
	}
	for _, book := range repo.books {
		if slices.Contains(book.GenreIDs, id) {
			return referenceMissing()
		}
	}
	delete(repo.genres, id)
	return nil
}

func (repo *memoryRepository) CountGenres(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return 0, repo.err
	}
	if repo.countErr != nil {
		return 0, repo.countErr
	}
	return int64(len(repo.genres)), nil
}

// # Books

func (repo *memoryRepository) ListBooks(_ context.Context) ([]*catalog.Book, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	return repo.sortedBooks(func(catalog.Book) bool { return true }), nil
}

func (repo *memoryRepository) GetBook(_ context.Context, id string) (*catalog.Book, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	book, ok := repo.books[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return repo.populateBook(book), nil
}

func (repo *memoryRepository) ListBooksByAuthor(_ context.Context, authorID string) ([]*catalog.Book, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	return repo.sortedBooks(func(book catalog.Book) bool { return book.AuthorID == authorID }), nil
}

func (repo *memoryRepository) ListBooksByGenre(_ context.Context, genreID string) ([]*catalog.Book, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	return repo.sortedBooks(func(book catalog.Book) bool { return slices.Contains(book.GenreIDs, genreID) }), nil
}

func (repo *memoryRepository) checkBookReferences(book *catalog.Book) error {
	if _, ok := repo.authors[book.AuthorID]; !ok {
		return referenceMissing()
	}
	for _, id := range book.GenreIDs {
		if _, ok := repo.genres[id]; !ok {
			return referenceMissing()
		}
	}
	return nil
}

func (repo *memoryRepository) CreateBook(_ context.Context, book *catalog.Book) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if err := repo.checkBookReferences(book); err != nil {
		return err
	}
	repo.books[book.ID] = *book
	return nil
}

func (repo *memoryRepository) UpdateBook(_ context.Context, book *catalog.Book) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.books[book.ID]; !ok {
		return dberr.ErrNotFound
	}
	if err := repo.checkBookReferences(book); err != nil {
		return err
	}
	repo.books[book.ID] = *book
	return nil
}

func (repo *memoryRepository) DeleteBook(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.books[id]; !ok {
		return dberr.ErrNotFound
	}
	for _, instance := range repo.instances {
		if instance.BookID == id {
			return referenceMissing()
		}
	}
	delete(repo.books, id)
	return nil
}

func (repo *memoryRepository) CountBooks(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return 0, repo.err
	}
	return int64(len(repo.books)), nil
}

// # Book Instances

func (repo *memoryRepository) sortedInstances(keep func(catalog.BookInstance) bool) []*catalog.BookInstance {
	instances := make([]*catalog.BookInstance, 0)
	for _, instance := range repo.instances {
		if keep(instance) {
			instances = append(instances, repo.populateInstance(instance))
		}
	}
	slices.SortFunc(instances, func(a, b *catalog.BookInstance) int {
		if a.Book != nil && b.Book != nil {
			if c := strings.Compare(a.Book.Title, b.Book.Title); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Imprint, b.Imprint)
	})
	return instances
}

func (repo *memoryRepository) ListBookInstances(_ context.Context) ([]*catalog.BookInstance, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	return repo.sortedInstances(func(catalog.BookInstance) bool { return true }), nil
}

func (repo *memoryRepository) GetBookInstance(_ context.Context, id string) (*catalog.BookInstance, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	instance, ok := repo.instances[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return repo.populateInstance(instance), nil
}

func (repo *memoryRepository) ListBookInstancesByBook(_ context.Context, bookID string) ([]*catalog.BookInstance, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return nil, repo.err
	}

	return repo.sortedInstances(func(instance catalog.BookInstance) bool { return instance.BookID == bookID }), nil
}

func (repo *memoryRepository) CreateBookInstance(_ context.Context, instance *catalog.BookInstance) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.books[instance.BookID]; !ok {
		return referenceMissing()
	}
	repo.instances[instance.ID] = *instance
	return nil
}

func (repo *memoryRepository) UpdateBookInstance(_ context.Context, instance *catalog.BookInstance) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.instances[instance.ID]; !ok {
		return dberr.ErrNotFound
	}
	if _, ok := repo.books[instance.BookID]; !ok {
		return referenceMissing()
	}
	repo.instances[instance.ID] = *instance
	return nil
}

func (repo *memoryRepository) DeleteBookInstance(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return repo.err
	}

	if _, ok := repo.instances[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.instances, id)
	return nil
}

func (repo *memoryRepository) CountBookInstances(_ context.Context, status catalog.Status) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.err != nil {
		return 0, repo.err
	}

	var count int64
	for _, instance := range repo.instances {
		if status == "" || instance.Status == status {
			count++
		}
	}
	return count, nil
}
