package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entity"
	"locallibrary/internal/forms"
)

const genreListURL = "/catalog/genres"

type GenreService struct {
	genres GenreRepository
	books  BookRepository
}

func NewGenreService(genres GenreRepository, books BookRepository) *GenreService {
	return &GenreService{genres: genres, books: books}
}

func (s *GenreService) List(ctx context.Context) ([]entity.Genre, error) {
	return s.genres.List(ctx)
}

type GenreDetail struct {
	Genre entity.Genre
	Books []entity.Book
}

func (s *GenreService) Detail(ctx context.Context, id string) (GenreDetail, error) {
	var d GenreDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		genre, err := s.genres.GetByID(gctx, id)
		if err != nil {
			return fmt.Errorf("get genre %s: %w", id, err)
		}
		d.Genre = genre
		return nil
	})
	g.Go(func() error {
		books, err := s.books.ListByGenre(gctx, id)
		if err != nil {
			return fmt.Errorf("list books by genre %s: %w", id, err)
		}
		d.Books = books
		return nil
	})
	if err := g.Wait(); err != nil {
		return GenreDetail{}, err
	}
	return d, nil
}

type GenreFormResult struct {
	Genre       entity.Genre
	Errors      []forms.ValidationError
	RedirectURL string
}

// Create inserts a genre unless one with the same name already exists, in
// which case the caller is redirected to the existing genre instead of a
// duplicate being created. The unique index on the name backs this up: a
// concurrent insert of the same name surfaces as ErrConflict and resolves
// to the same redirect.
func (s *GenreService) Create(ctx context.Context, form forms.GenreForm) (GenreFormResult, error) {
	errs := form.Validate()
	candidate := form.Genre("")
	if len(errs) > 0 {
		return GenreFormResult{Genre: candidate, Errors: errs}, nil
	}

	existing, err := s.genres.GetByName(ctx, candidate.Name)
	if err == nil {
		return GenreFormResult{RedirectURL: existing.URL()}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return GenreFormResult{}, fmt.Errorf("find genre by name: %w", err)
	}

	id, err := s.genres.Insert(ctx, candidate)
	if errors.Is(err, ErrConflict) {
		existing, err := s.genres.GetByName(ctx, candidate.Name)
		if err != nil {
			return GenreFormResult{}, fmt.Errorf("refetch conflicting genre: %w", err)
		}
		return GenreFormResult{RedirectURL: existing.URL()}, nil
	}
	if err != nil {
		return GenreFormResult{}, fmt.Errorf("insert genre: %w", err)
	}
	candidate.ID = id
	return GenreFormResult{RedirectURL: candidate.URL()}, nil
}

func (s *GenreService) UpdateView(ctx context.Context, id string) (entity.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

// Update renames the genre in place. When a different genre already holds
// the submitted name, the form is re-rendered over the original record with
// a single synthetic error; the user's edit is not kept on that path.
func (s *GenreService) Update(ctx context.Context, id string, form forms.GenreForm) (GenreFormResult, error) {
	errs := form.Validate()
	candidate := form.Genre(id)
	if len(errs) > 0 {
		return GenreFormResult{Genre: candidate, Errors: errs}, nil
	}

	existing, err := s.genres.GetByName(ctx, candidate.Name)
	if err == nil && existing.ID != id {
		return s.nameConflict(ctx, id)
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return GenreFormResult{}, fmt.Errorf("find genre by name: %w", err)
	}

	if err := s.genres.Update(ctx, candidate); err != nil {
		if errors.Is(err, ErrConflict) {
			return s.nameConflict(ctx, id)
		}
		return GenreFormResult{}, fmt.Errorf("update genre %s: %w", id, err)
	}
	return GenreFormResult{RedirectURL: candidate.URL()}, nil
}

func (s *GenreService) nameConflict(ctx context.Context, id string) (GenreFormResult, error) {
	original, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return GenreFormResult{}, fmt.Errorf("get genre %s: %w", id, err)
	}
	return GenreFormResult{
		Genre:  original,
		Errors: []forms.ValidationError{{Field: "name", Message: "Genre with this name already exists"}},
	}, nil
}

type GenreDeleteResult struct {
	RedirectURL string
	Genre       entity.Genre
	Books       []entity.Book
}

func (s *GenreService) DeleteView(ctx context.Context, id string) (GenreDeleteResult, error) {
	return s.deleteState(ctx, id)
}

// Delete removes the genre unless books still carry it.
func (s *GenreService) Delete(ctx context.Context, id string) (GenreDeleteResult, error) {
	res, err := s.deleteState(ctx, id)
	if err != nil || res.RedirectURL != "" || len(res.Books) > 0 {
		return res, err
	}
	if err := s.genres.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return GenreDeleteResult{}, fmt.Errorf("delete genre %s: %w", id, err)
	}
	return GenreDeleteResult{RedirectURL: genreListURL}, nil
}

func (s *GenreService) deleteState(ctx context.Context, id string) (GenreDeleteResult, error) {
	var (
		genre    entity.Genre
		books    []entity.Book
		genreErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		gn, err := s.genres.GetByID(gctx, id)
		if errors.Is(err, ErrNotFound) {
			genreErr = err
			return nil
		}
		genre = gn
		return err
	})
	g.Go(func() error {
		bs, err := s.books.ListByGenre(gctx, id)
		books = bs
		return err
	})
	if err := g.Wait(); err != nil {
		return GenreDeleteResult{}, err
	}
	if genreErr != nil {
		return GenreDeleteResult{RedirectURL: genreListURL}, nil
	}
	return GenreDeleteResult{Genre: genre, Books: books}, nil
}
