package instance

import (
	"context"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// Repository defines the contract for book instance storage. Update is
// version-checked: a concurrent writer since the instance was read makes
// it fail with catalog.ErrConflict.
type Repository interface {
	Create(ctx context.Context, bi *catalog.BookInstance) error
	Get(ctx context.Context, id string) (catalog.BookInstance, error)
	Update(ctx context.Context, bi *catalog.BookInstance) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q Query) ([]catalog.BookInstance, int, error)
}
