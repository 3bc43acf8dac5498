package book

import (
	"context"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// Repository defines the contract for book storage. Books are returned
// with their genre set loaded; SetGenres replaces the set atomically.
type Repository interface {
	Create(ctx context.Context, b *catalog.Book, genreIDs []string) error
	Get(ctx context.Context, id string) (catalog.Book, error)
	Update(ctx context.Context, b *catalog.Book) error
	SetGenres(ctx context.Context, bookID string, genreIDs []string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]catalog.Book, int, error)
}

// GenreRepository defines the contract for genre storage.
type GenreRepository interface {
	Create(ctx context.Context, g *catalog.Genre) error
	Get(ctx context.Context, id string) (catalog.Genre, error)
	Update(ctx context.Context, g *catalog.Genre) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]catalog.Genre, error)
}

// LanguageRepository defines the contract for language storage.
type LanguageRepository interface {
	Create(ctx context.Context, l *catalog.Language) error
	Get(ctx context.Context, id string) (catalog.Language, error)
	Update(ctx context.Context, l *catalog.Language) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]catalog.Language, error)
}
