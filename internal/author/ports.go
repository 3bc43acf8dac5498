package author

import (
	"context"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// Repository defines the contract for author storage. List returns authors
// in their natural (last_name, first_name) ordering.
type Repository interface {
	Create(ctx context.Context, a *catalog.Author) error
	Get(ctx context.Context, id string) (catalog.Author, error)
	Update(ctx context.Context, a *catalog.Author) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]catalog.Author, int, error)
}
