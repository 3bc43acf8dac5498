package instance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, bi *catalog.BookInstance) error {
	args := m.Called(ctx, bi)
	return args.Error(0)
}

func (m *mockRepo) Get(ctx context.Context, id string) (catalog.BookInstance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.BookInstance), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, bi *catalog.BookInstance) error {
	args := m.Called(ctx, bi)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) List(ctx context.Context, q Query) ([]catalog.BookInstance, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]catalog.BookInstance), args.Int(1), args.Error(2)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("status defaults to available", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", ctx, mock.MatchedBy(func(bi *catalog.BookInstance) bool {
			return bi.Status == catalog.StatusAvailable
		})).Return(nil)
		s := NewService(repo)

		bi := catalog.BookInstance{Imprint: "Gollancz, 2007"}
		assert.NoError(t, s.Create(ctx, &bi))
		assert.Equal(t, catalog.StatusAvailable, bi.Status)
		repo.AssertExpectations(t)
	})

	t.Run("explicit status kept", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", ctx, mock.Anything).Return(nil)
		s := NewService(repo)

		bi := catalog.BookInstance{Status: catalog.StatusMaintenance}
		assert.NoError(t, s.Create(ctx, &bi))
		assert.Equal(t, catalog.StatusMaintenance, bi.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		repo := new(mockRepo)
		s := NewService(repo)

		bi := catalog.BookInstance{Status: catalog.Status("z")}
		var verr *catalog.ValidationError
		assert.ErrorAs(t, s.Create(ctx, &bi), &verr)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict propagates", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Update", ctx, mock.Anything).Return(catalog.ErrConflict)
		s := NewService(repo)

		bi := catalog.BookInstance{ID: "i1", Status: catalog.StatusOnLoan, Version: 1}
		assert.ErrorIs(t, s.Update(ctx, &bi), catalog.ErrConflict)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Update", ctx, mock.Anything).Return(catalog.ErrNotFound)
		s := NewService(repo)

		bi := catalog.BookInstance{ID: "missing", Status: catalog.StatusAvailable}
		assert.ErrorIs(t, s.Update(ctx, &bi), catalog.ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	status := catalog.StatusOnLoan
	borrower := "u1"

	repo := new(mockRepo)
	repo.On("List", ctx, mock.MatchedBy(func(q Query) bool {
		return q.Status != nil && *q.Status == status &&
			q.BorrowerID != nil && *q.BorrowerID == borrower
	})).Return([]catalog.BookInstance{{ID: "i1", Status: status, BorrowerID: &borrower}}, 1, nil)
	s := NewService(repo)

	got, total, err := s.List(ctx, Query{Status: &status, BorrowerID: &borrower})
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, got, 1)
}
