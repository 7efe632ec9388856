package catalog

import (
	"context"

	"locallibrary/internal/entity"
)

// Repository contracts implemented by the store package. Reads that
// resolve foreign references say so; lists come back sorted by their
// display field ascending.

type AuthorRepository interface {
	// List returns all authors sorted by family name.
	List(ctx context.Context) ([]entity.Author, error)
	GetByID(ctx context.Context, id string) (entity.Author, error)
	// Insert assigns and returns a new identifier.
	Insert(ctx context.Context, a entity.Author) (string, error)
	// Update persists in place at a.ID.
	Update(ctx context.Context, a entity.Author) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type GenreRepository interface {
	// List returns all genres sorted by name.
	List(ctx context.Context) ([]entity.Genre, error)
	GetByID(ctx context.Context, id string) (entity.Genre, error)
	GetByName(ctx context.Context, name string) (entity.Genre, error)
	Insert(ctx context.Context, g entity.Genre) (string, error)
	Update(ctx context.Context, g entity.Genre) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type BookRepository interface {
	// List returns all books sorted by title, with authors resolved.
	List(ctx context.Context) ([]entity.Book, error)
	// GetByID resolves the author and genre references.
	GetByID(ctx context.Context, id string) (entity.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]entity.Book, error)
	ListByGenre(ctx context.Context, genreID string) ([]entity.Book, error)
	Insert(ctx context.Context, b entity.Book) (string, error)
	Update(ctx context.Context, b entity.Book) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type BookInstanceRepository interface {
	// List returns all copies with their books resolved.
	List(ctx context.Context) ([]entity.BookInstance, error)
	// GetByID resolves the book reference.
	GetByID(ctx context.Context, id string) (entity.BookInstance, error)
	ListByBook(ctx context.Context, bookID string) ([]entity.BookInstance, error)
	Insert(ctx context.Context, bi entity.BookInstance) (string, error)
	Update(ctx context.Context, bi entity.BookInstance) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status entity.Status) (int, error)
}
