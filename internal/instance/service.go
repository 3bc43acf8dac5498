package instance

import (
	"context"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// Service provides book instance business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new instance. Status defaults to
// Available when unset.
func (s *Service) Create(ctx context.Context, bi *catalog.BookInstance) error {
	if bi.Status == "" {
		bi.Status = catalog.StatusAvailable
	}
	if err := bi.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, bi)
}

func (s *Service) Get(ctx context.Context, id string) (catalog.BookInstance, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, bi *catalog.BookInstance) error {
	if err := bi.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, bi)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]catalog.BookInstance, int, error) {
	return s.repo.List(ctx, q)
}
