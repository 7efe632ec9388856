// Package testutil provides in-memory repository implementations and
// canned fixtures shared by the service and handler tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"locallibrary/internal/catalog"
	"locallibrary/internal/entity"
)

// AuthorRepo is an in-memory catalog.AuthorRepository. Set Err to make
// every call fail with it.
type AuthorRepo struct {
	Authors map[string]entity.Author
	Err     error
	nextID  int
}

func NewAuthorRepo() *AuthorRepo {
	return &AuthorRepo{Authors: map[string]entity.Author{}}
}

// Add stores the author directly, assigning an identifier when absent.
func (r *AuthorRepo) Add(a entity.Author) entity.Author {
	if a.ID == "" {
		r.nextID++
		a.ID = fmt.Sprintf("author-%d", r.nextID)
	}
	r.Authors[a.ID] = a
	return a
}

func (r *AuthorRepo) List(ctx context.Context) ([]entity.Author, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]entity.Author, 0, len(r.Authors))
	for _, a := range r.Authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FamilyName < out[j].FamilyName })
	return out, nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id string) (entity.Author, error) {
	if r.Err != nil {
		return entity.Author{}, r.Err
	}
	a, ok := r.Authors[id]
	if !ok {
		return entity.Author{}, catalog.ErrNotFound
	}
	return a, nil
}

func (r *AuthorRepo) Insert(ctx context.Context, a entity.Author) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Add(a).ID, nil
}

func (r *AuthorRepo) Update(ctx context.Context, a entity.Author) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Authors[a.ID]; !ok {
		return catalog.ErrNotFound
	}
	r.Authors[a.ID] = a
	return nil
}

func (r *AuthorRepo) Delete(ctx context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Authors[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.Authors, id)
	return nil
}

func (r *AuthorRepo) Count(ctx context.Context) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.Authors), nil
}

// GenreRepo is an in-memory catalog.GenreRepository. FailNextInsert
// makes exactly one Insert fail, which simulates losing a uniqueness
// race to a concurrent writer.
type GenreRepo struct {
	Genres         map[string]entity.Genre
	Err            error
	FailNextInsert error
	nextID         int
}

func NewGenreRepo() *GenreRepo {
	return &GenreRepo{Genres: map[string]entity.Genre{}}
}

func (r *GenreRepo) Add(g entity.Genre) entity.Genre {
	if g.ID == "" {
		r.nextID++
		g.ID = fmt.Sprintf("genre-%d", r.nextID)
	}
	r.Genres[g.ID] = g
	return g
}

func (r *GenreRepo) List(ctx context.Context) ([]entity.Genre, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]entity.Genre, 0, len(r.Genres))
	for _, g := range r.Genres {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id string) (entity.Genre, error) {
	if r.Err != nil {
		return entity.Genre{}, r.Err
	}
	g, ok := r.Genres[id]
	if !ok {
		return entity.Genre{}, catalog.ErrNotFound
	}
	return g, nil
}

func (r *GenreRepo) GetByName(ctx context.Context, name string) (entity.Genre, error) {
	if r.Err != nil {
		return entity.Genre{}, r.Err
	}
	for _, g := range r.Genres {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return entity.Genre{}, catalog.ErrNotFound
}

func (r *GenreRepo) Insert(ctx context.Context, g entity.Genre) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	if r.FailNextInsert != nil {
		err := r.FailNextInsert
		r.FailNextInsert = nil
		return "", err
	}
	return r.Add(g).ID, nil
}

func (r *GenreRepo) Update(ctx context.Context, g entity.Genre) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Genres[g.ID]; !ok {
		return catalog.ErrNotFound
	}
	r.Genres[g.ID] = g
	return nil
}

func (r *GenreRepo) Delete(ctx context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Genres[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.Genres, id)
	return nil
}

func (r *GenreRepo) Count(ctx context.Context) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.Genres), nil
}

// BookRepo is an in-memory catalog.BookRepository.
type BookRepo struct {
	Books  map[string]entity.Book
	Err    error
	nextID int
}

func NewBookRepo() *BookRepo {
	return &BookRepo{Books: map[string]entity.Book{}}
}

func (r *BookRepo) Add(b entity.Book) entity.Book {
	if b.ID == "" {
		r.nextID++
		b.ID = fmt.Sprintf("book-%d", r.nextID)
	}
	r.Books[b.ID] = b
	return b
}

func (r *BookRepo) List(ctx context.Context) ([]entity.Book, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]entity.Book, 0, len(r.Books))
	for _, b := range r.Books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id string) (entity.Book, error) {
	if r.Err != nil {
		return entity.Book{}, r.Err
	}
	b, ok := r.Books[id]
	if !ok {
		return entity.Book{}, catalog.ErrNotFound
	}
	return b, nil
}

func (r *BookRepo) ListByAuthor(ctx context.Context, authorID string) ([]entity.Book, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var out []entity.Book
	for _, b := range r.Books {
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *BookRepo) ListByGenre(ctx context.Context, genreID string) ([]entity.Book, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var out []entity.Book
	for _, b := range r.Books {
		if b.HasGenre(genreID) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *BookRepo) Insert(ctx context.Context, b entity.Book) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Add(b).ID, nil
}

func (r *BookRepo) Update(ctx context.Context, b entity.Book) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Books[b.ID]; !ok {
		return catalog.ErrNotFound
	}
	r.Books[b.ID] = b
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Books[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.Books, id)
	return nil
}

func (r *BookRepo) Count(ctx context.Context) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.Books), nil
}

// BookInstanceRepo is an in-memory catalog.BookInstanceRepository.
type BookInstanceRepo struct {
	Instances map[string]entity.BookInstance
	Err       error
	nextID    int
}

func NewBookInstanceRepo() *BookInstanceRepo {
	return &BookInstanceRepo{Instances: map[string]entity.BookInstance{}}
}

func (r *BookInstanceRepo) Add(bi entity.BookInstance) entity.BookInstance {
	if bi.ID == "" {
		r.nextID++
		bi.ID = fmt.Sprintf("instance-%d", r.nextID)
	}
	r.Instances[bi.ID] = bi
	return bi
}

func (r *BookInstanceRepo) List(ctx context.Context) ([]entity.BookInstance, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]entity.BookInstance, 0, len(r.Instances))
	for _, bi := range r.Instances {
		out = append(out, bi)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BookInstanceRepo) GetByID(ctx context.Context, id string) (entity.BookInstance, error) {
	if r.Err != nil {
		return entity.BookInstance{}, r.Err
	}
	bi, ok := r.Instances[id]
	if !ok {
		return entity.BookInstance{}, catalog.ErrNotFound
	}
	return bi, nil
}

func (r *BookInstanceRepo) ListByBook(ctx context.Context, bookID string) ([]entity.BookInstance, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var out []entity.BookInstance
	for _, bi := range r.Instances {
		if bi.BookID == bookID {
			out = append(out, bi)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BookInstanceRepo) Insert(ctx context.Context, bi entity.BookInstance) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Add(bi).ID, nil
}

func (r *BookInstanceRepo) Update(ctx context.Context, bi entity.BookInstance) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Instances[bi.ID]; !ok {
		return catalog.ErrNotFound
	}
	r.Instances[bi.ID] = bi
	return nil
}

func (r *BookInstanceRepo) Delete(ctx context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Instances[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.Instances, id)
	return nil
}

func (r *BookInstanceRepo) Count(ctx context.Context) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.Instances), nil
}

func (r *BookInstanceRepo) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	n := 0
	for _, bi := range r.Instances {
		if bi.Status == status {
			n++
		}
	}
	return n, nil
}
