package author

import (
	"context"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// Service provides author business logic on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, a *catalog.Author) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id string) (catalog.Author, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *catalog.Author) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]catalog.Author, int, error) {
	return s.repo.List(ctx, limit, offset)
}
