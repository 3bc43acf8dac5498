package book

import (
	"context"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// Service provides catalog business logic for books and the genre and
// language lookup tables they reference.
type Service struct {
	books     Repository
	genres    GenreRepository
	languages LanguageRepository
}

func NewService(books Repository, genres GenreRepository, languages LanguageRepository) *Service {
	return &Service{books: books, genres: genres, languages: languages}
}

func (s *Service) Create(ctx context.Context, b *catalog.Book, genreIDs []string) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return s.books.Create(ctx, b, genreIDs)
}

func (s *Service) Get(ctx context.Context, id string) (catalog.Book, error) {
	return s.books.Get(ctx, id)
}

// Update persists field changes and, when genreIDs is non-nil, replaces
// the genre set.
func (s *Service) Update(ctx context.Context, b *catalog.Book, genreIDs []string) (catalog.Book, error) {
	if err := b.Validate(); err != nil {
		return catalog.Book{}, err
	}
	if err := s.books.Update(ctx, b); err != nil {
		return catalog.Book{}, err
	}
	if genreIDs != nil {
		if err := s.books.SetGenres(ctx, b.ID, genreIDs); err != nil {
			return catalog.Book{}, err
		}
	}
	return s.books.Get(ctx, b.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.books.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]catalog.Book, int, error) {
	return s.books.List(ctx, limit, offset)
}

func (s *Service) CreateGenre(ctx context.Context, g *catalog.Genre) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return s.genres.Create(ctx, g)
}

func (s *Service) UpdateGenre(ctx context.Context, g *catalog.Genre) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return s.genres.Update(ctx, g)
}

func (s *Service) DeleteGenre(ctx context.Context, id string) error {
	return s.genres.Delete(ctx, id)
}

func (s *Service) ListGenres(ctx context.Context) ([]catalog.Genre, error) {
	return s.genres.List(ctx)
}

func (s *Service) CreateLanguage(ctx context.Context, l *catalog.Language) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return s.languages.Create(ctx, l)
}

func (s *Service) UpdateLanguage(ctx context.Context, l *catalog.Language) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return s.languages.Update(ctx, l)
}

func (s *Service) DeleteLanguage(ctx context.Context, id string) error {
	return s.languages.Delete(ctx, id)
}

func (s *Service) ListLanguages(ctx context.Context) ([]catalog.Language, error) {
	return s.languages.List(ctx)
}
