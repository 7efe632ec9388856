package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entity"
	"locallibrary/internal/forms"
)

const authorListURL = "/catalog/authors"

type AuthorService struct {
	authors AuthorRepository
	books   BookRepository
}

func NewAuthorService(authors AuthorRepository, books BookRepository) *AuthorService {
	return &AuthorService{authors: authors, books: books}
}

func (s *AuthorService) List(ctx context.Context) ([]entity.Author, error) {
	return s.authors.List(ctx)
}

type AuthorDetail struct {
	Author entity.Author
	Books  []entity.Book
}

// Detail fetches the author and their books together.
func (s *AuthorService) Detail(ctx context.Context, id string) (AuthorDetail, error) {
	var d AuthorDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.authors.GetByID(gctx, id)
		if err != nil {
			return fmt.Errorf("get author %s: %w", id, err)
		}
		d.Author = a
		return nil
	})
	g.Go(func() error {
		books, err := s.books.ListByAuthor(gctx, id)
		if err != nil {
			return fmt.Errorf("list books by author %s: %w", id, err)
		}
		d.Books = books
		return nil
	})
	if err := g.Wait(); err != nil {
		return AuthorDetail{}, err
	}
	return d, nil
}

// AuthorFormResult is the outcome of a create or update submission. A
// non-empty RedirectURL means the workflow finished; otherwise the form is
// re-rendered with the candidate and the accumulated errors.
type AuthorFormResult struct {
	Author      entity.Author
	Errors      []forms.ValidationError
	RedirectURL string
}

func (s *AuthorService) Create(ctx context.Context, form forms.AuthorForm) (AuthorFormResult, error) {
	errs := form.Validate()
	candidate := form.Author("")
	if len(errs) > 0 {
		return AuthorFormResult{Author: candidate, Errors: errs}, nil
	}

	id, err := s.authors.Insert(ctx, candidate)
	if err != nil {
		return AuthorFormResult{}, fmt.Errorf("insert author: %w", err)
	}
	candidate.ID = id
	return AuthorFormResult{RedirectURL: candidate.URL()}, nil
}

// UpdateView fetches the author being edited, for form prefill.
func (s *AuthorService) UpdateView(ctx context.Context, id string) (entity.Author, error) {
	return s.authors.GetByID(ctx, id)
}

// Update keeps the original identifier on the candidate regardless of
// anything in the submission.
func (s *AuthorService) Update(ctx context.Context, id string, form forms.AuthorForm) (AuthorFormResult, error) {
	errs := form.Validate()
	candidate := form.Author(id)
	if len(errs) > 0 {
		return AuthorFormResult{Author: candidate, Errors: errs}, nil
	}

	if err := s.authors.Update(ctx, candidate); err != nil {
		return AuthorFormResult{}, fmt.Errorf("update author %s: %w", id, err)
	}
	return AuthorFormResult{RedirectURL: candidate.URL()}, nil
}

// AuthorDeleteResult is the outcome of a delete request. RedirectURL set
// means done (or nothing to do); a non-empty Books slice means deletion was
// blocked and the confirmation view lists the dependents.
type AuthorDeleteResult struct {
	RedirectURL string
	Author      entity.Author
	Books       []entity.Book
}

// DeleteView prepares the confirmation page.
func (s *AuthorService) DeleteView(ctx context.Context, id string) (AuthorDeleteResult, error) {
	return s.deleteState(ctx, id)
}

// Delete removes the author unless books still reference them. A missing
// target is treated as already deleted.
func (s *AuthorService) Delete(ctx context.Context, id string) (AuthorDeleteResult, error) {
	res, err := s.deleteState(ctx, id)
	if err != nil || res.RedirectURL != "" || len(res.Books) > 0 {
		return res, err
	}
	if err := s.authors.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return AuthorDeleteResult{}, fmt.Errorf("delete author %s: %w", id, err)
	}
	return AuthorDeleteResult{RedirectURL: authorListURL}, nil
}

func (s *AuthorService) deleteState(ctx context.Context, id string) (AuthorDeleteResult, error) {
	var (
		author    entity.Author
		books     []entity.Book
		authorErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.authors.GetByID(gctx, id)
		if errors.Is(err, ErrNotFound) {
			authorErr = err
			return nil
		}
		author = a
		return err
	})
	g.Go(func() error {
		bs, err := s.books.ListByAuthor(gctx, id)
		books = bs
		return err
	})
	if err := g.Wait(); err != nil {
		return AuthorDeleteResult{}, err
	}
	if authorErr != nil {
		// Already gone, deleting again is a no-op.
		return AuthorDeleteResult{RedirectURL: authorListURL}, nil
	}
	return AuthorDeleteResult{Author: author, Books: books}, nil
}
