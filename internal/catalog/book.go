package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entity"
	"locallibrary/internal/forms"
)

const bookListURL = "/catalog/books"

type BookService struct {
	books     BookRepository
	authors   AuthorRepository
	genres    GenreRepository
	instances BookInstanceRepository
}

func NewBookService(books BookRepository, authors AuthorRepository, genres GenreRepository, instances BookInstanceRepository) *BookService {
	return &BookService{books: books, authors: authors, genres: genres, instances: instances}
}

func (s *BookService) List(ctx context.Context) ([]entity.Book, error) {
	return s.books.List(ctx)
}

type BookDetail struct {
	Book      entity.Book
	Instances []entity.BookInstance
}

func (s *BookService) Detail(ctx context.Context, id string) (BookDetail, error) {
	var d BookDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.books.GetByID(gctx, id)
		if err != nil {
			return fmt.Errorf("get book %s: %w", id, err)
		}
		d.Book = b
		return nil
	})
	g.Go(func() error {
		instances, err := s.instances.ListByBook(gctx, id)
		if err != nil {
			return fmt.Errorf("list copies of book %s: %w", id, err)
		}
		d.Instances = instances
		return nil
	})
	if err := g.Wait(); err != nil {
		return BookDetail{}, err
	}
	return d, nil
}

// BookFormView is everything the book form needs: the candidate, the
// reference lists for the select controls, which genres are ticked, the
// accumulated errors, or a redirect when the workflow finished. Selection
// state lives in its own map rather than on the fetched genres.
type BookFormView struct {
	Book        entity.Book
	Authors     []entity.Author
	Genres      []entity.Genre
	Selected    map[string]bool
	Errors      []forms.ValidationError
	RedirectURL string
}

// FormView prepares an empty create form.
func (s *BookService) FormView(ctx context.Context) (BookFormView, error) {
	authors, genres, err := s.referenceLists(ctx)
	if err != nil {
		return BookFormView{}, err
	}
	return BookFormView{Authors: authors, Genres: genres, Selected: map[string]bool{}}, nil
}

// UpdateFormView prefills the form from the stored book.
func (s *BookService) UpdateFormView(ctx context.Context, id string) (BookFormView, error) {
	var (
		book    entity.Book
		authors []entity.Author
		genres  []entity.Genre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.books.GetByID(gctx, id)
		book = b
		return err
	})
	g.Go(func() error {
		as, err := s.authors.List(gctx)
		authors = as
		return err
	})
	g.Go(func() error {
		gs, err := s.genres.List(gctx)
		genres = gs
		return err
	})
	if err := g.Wait(); err != nil {
		return BookFormView{}, err
	}
	return BookFormView{Book: book, Authors: authors, Genres: genres, Selected: selectedSet(book)}, nil
}

func (s *BookService) Create(ctx context.Context, form forms.BookForm) (BookFormView, error) {
	errs := form.Validate()
	candidate := form.Book("")
	if len(errs) > 0 {
		return s.rerender(ctx, candidate, errs)
	}

	id, err := s.books.Insert(ctx, candidate)
	if err != nil {
		return BookFormView{}, fmt.Errorf("insert book: %w", err)
	}
	candidate.ID = id
	return BookFormView{RedirectURL: candidate.URL()}, nil
}

func (s *BookService) Update(ctx context.Context, id string, form forms.BookForm) (BookFormView, error) {
	errs := form.Validate()
	candidate := form.Book(id)
	if len(errs) > 0 {
		return s.rerender(ctx, candidate, errs)
	}

	if err := s.books.Update(ctx, candidate); err != nil {
		return BookFormView{}, fmt.Errorf("update book %s: %w", id, err)
	}
	return BookFormView{RedirectURL: candidate.URL()}, nil
}

// rerender refetches the reference lists so the form can be shown again
// with the candidate and its errors.
func (s *BookService) rerender(ctx context.Context, candidate entity.Book, errs []forms.ValidationError) (BookFormView, error) {
	authors, genres, err := s.referenceLists(ctx)
	if err != nil {
		return BookFormView{}, err
	}
	return BookFormView{
		Book:     candidate,
		Authors:  authors,
		Genres:   genres,
		Selected: selectedSet(candidate),
		Errors:   errs,
	}, nil
}

func (s *BookService) referenceLists(ctx context.Context) ([]entity.Author, []entity.Genre, error) {
	var (
		authors []entity.Author
		genres  []entity.Genre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		as, err := s.authors.List(gctx)
		if err != nil {
			return fmt.Errorf("list authors: %w", err)
		}
		authors = as
		return nil
	})
	g.Go(func() error {
		gs, err := s.genres.List(gctx)
		if err != nil {
			return fmt.Errorf("list genres: %w", err)
		}
		genres = gs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return authors, genres, nil
}

func selectedSet(b entity.Book) map[string]bool {
	selected := make(map[string]bool, len(b.GenreIDs))
	for _, id := range b.GenreIDs {
		selected[id] = true
	}
	return selected
}

type BookDeleteResult struct {
	RedirectURL string
	Book        entity.Book
	Instances   []entity.BookInstance
}

func (s *BookService) DeleteView(ctx context.Context, id string) (BookDeleteResult, error) {
	return s.deleteState(ctx, id)
}

// Delete removes the book unless copies of it still exist; those must be
// deleted first and the confirmation view lists them.
func (s *BookService) Delete(ctx context.Context, id string) (BookDeleteResult, error) {
	res, err := s.deleteState(ctx, id)
	if err != nil || res.RedirectURL != "" || len(res.Instances) > 0 {
		return res, err
	}
	if err := s.books.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return BookDeleteResult{}, fmt.Errorf("delete book %s: %w", id, err)
	}
	return BookDeleteResult{RedirectURL: bookListURL}, nil
}

func (s *BookService) deleteState(ctx context.Context, id string) (BookDeleteResult, error) {
	var (
		book      entity.Book
		instances []entity.BookInstance
		bookErr   error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.books.GetByID(gctx, id)
		if errors.Is(err, ErrNotFound) {
			bookErr = err
			return nil
		}
		book = b
		return err
	})
	g.Go(func() error {
		is, err := s.instances.ListByBook(gctx, id)
		instances = is
		return err
	})
	if err := g.Wait(); err != nil {
		return BookDeleteResult{}, err
	}
	if bookErr != nil {
		return BookDeleteResult{RedirectURL: bookListURL}, nil
	}
	return BookDeleteResult{Book: book, Instances: instances}, nil
}
