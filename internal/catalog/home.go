package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entity"
)

type HomeCounts struct {
	Books              int
	Instances          int
	AvailableInstances int
	Authors            int
	Genres             int
}

type HomeService struct {
	books     BookRepository
	instances BookInstanceRepository
	authors   AuthorRepository
	genres    GenreRepository
}

func NewHomeService(books BookRepository, instances BookInstanceRepository, authors AuthorRepository, genres GenreRepository) *HomeService {
	return &HomeService{books: books, instances: instances, authors: authors, genres: genres}
}

// Counts gathers the landing-page totals in one fan-out.
func (s *HomeService) Counts(ctx context.Context) (HomeCounts, error) {
	var counts HomeCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.books.Count(gctx)
		counts.Books = n
		return err
	})
	g.Go(func() error {
		n, err := s.instances.Count(gctx)
		counts.Instances = n
		return err
	})
	g.Go(func() error {
		n, err := s.instances.CountByStatus(gctx, entity.StatusAvailable)
		counts.AvailableInstances = n
		return err
	})
	g.Go(func() error {
		n, err := s.authors.Count(gctx)
		counts.Authors = n
		return err
	})
	g.Go(func() error {
		n, err := s.genres.Count(gctx)
		counts.Genres = n
		return err
	})
	if err := g.Wait(); err != nil {
		return HomeCounts{}, err
	}
	return counts, nil
}
