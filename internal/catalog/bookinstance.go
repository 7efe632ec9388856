package catalog

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/internal/entity"
	"locallibrary/internal/forms"
)

const instanceListURL = "/catalog/bookinstances"

type BookInstanceService struct {
	instances BookInstanceRepository
	books     BookRepository
}

func NewBookInstanceService(instances BookInstanceRepository, books BookRepository) *BookInstanceService {
	return &BookInstanceService{instances: instances, books: books}
}

func (s *BookInstanceService) List(ctx context.Context) ([]entity.BookInstance, error) {
	return s.instances.List(ctx)
}

func (s *BookInstanceService) Detail(ctx context.Context, id string) (entity.BookInstance, error) {
	return s.instances.GetByID(ctx, id)
}

type BookInstanceFormView struct {
	Instance    entity.BookInstance
	Books       []entity.Book
	Errors      []forms.ValidationError
	RedirectURL string
}

func (s *BookInstanceService) FormView(ctx context.Context) (BookInstanceFormView, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return BookInstanceFormView{}, fmt.Errorf("list books: %w", err)
	}
	return BookInstanceFormView{Books: books}, nil
}

func (s *BookInstanceService) UpdateFormView(ctx context.Context, id string) (BookInstanceFormView, error) {
	instance, err := s.instances.GetByID(ctx, id)
	if err != nil {
		return BookInstanceFormView{}, err
	}
	books, err := s.books.List(ctx)
	if err != nil {
		return BookInstanceFormView{}, fmt.Errorf("list books: %w", err)
	}
	return BookInstanceFormView{Instance: instance, Books: books}, nil
}

func (s *BookInstanceService) Create(ctx context.Context, form forms.BookInstanceForm) (BookInstanceFormView, error) {
	errs := form.Validate()
	candidate := form.BookInstance("")
	if len(errs) > 0 {
		return s.rerender(ctx, candidate, errs)
	}

	id, err := s.instances.Insert(ctx, candidate)
	if err != nil {
		return BookInstanceFormView{}, fmt.Errorf("insert book instance: %w", err)
	}
	candidate.ID = id
	return BookInstanceFormView{RedirectURL: candidate.URL()}, nil
}

func (s *BookInstanceService) Update(ctx context.Context, id string, form forms.BookInstanceForm) (BookInstanceFormView, error) {
	errs := form.Validate()
	candidate := form.BookInstance(id)
	if len(errs) > 0 {
		return s.rerender(ctx, candidate, errs)
	}

	if err := s.instances.Update(ctx, candidate); err != nil {
		return BookInstanceFormView{}, fmt.Errorf("update book instance %s: %w", id, err)
	}
	return BookInstanceFormView{RedirectURL: candidate.URL()}, nil
}

func (s *BookInstanceService) rerender(ctx context.Context, candidate entity.BookInstance, errs []forms.ValidationError) (BookInstanceFormView, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return BookInstanceFormView{}, fmt.Errorf("list books: %w", err)
	}
	return BookInstanceFormView{Instance: candidate, Books: books, Errors: errs}, nil
}

type BookInstanceDeleteResult struct {
	RedirectURL string
	Instance    entity.BookInstance
}

func (s *BookInstanceService) DeleteView(ctx context.Context, id string) (BookInstanceDeleteResult, error) {
	instance, err := s.instances.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return BookInstanceDeleteResult{RedirectURL: instanceListURL}, nil
	}
	if err != nil {
		return BookInstanceDeleteResult{}, err
	}
	return BookInstanceDeleteResult{Instance: instance}, nil
}

// Delete removes the copy. Nothing depends on a copy, so a found target is
// always deletable; a missing one is treated as already deleted.
func (s *BookInstanceService) Delete(ctx context.Context, id string) (BookInstanceDeleteResult, error) {
	if err := s.instances.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return BookInstanceDeleteResult{}, fmt.Errorf("delete book instance %s: %w", id, err)
	}
	return BookInstanceDeleteResult{RedirectURL: instanceListURL}, nil
}
