// Package loan encodes the business rules around borrowing, returning and
// renewing book instances. Authorization stays with the caller: handlers
// evaluate the user.CanMarkReturned capability before invoking the gated
// operations here.
package loan

import (
	"context"
	"time"

	"github.com/Huntitude/locallibrary/internal/catalog"
	"github.com/Huntitude/locallibrary/internal/instance"
)

// RenewalPeriodDays is the default loan extension offered when pre-filling
// a renewal form. A presentation convenience, not an invariant.
const RenewalPeriodDays = 21

// ProposedRenewalDate returns the default due date suggested for a
// renewal: three weeks from the given day.
func ProposedRenewalDate(today time.Time) time.Time {
	y, m, d := today.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, RenewalPeriodDays)
}

// Service runs the loan workflow over the instance repository.
type Service struct {
	instances instance.Repository
}

func NewService(instances instance.Repository) *Service {
	return &Service{instances: instances}
}

// ListBorrowedBy returns one page of the instances currently on loan to
// the given user, soonest due first, along with the total match count.
func (s *Service) ListBorrowedBy(ctx context.Context, userID string, limit, offset int) ([]catalog.BookInstance, int, error) {
	status := catalog.StatusOnLoan
	return s.instances.List(ctx, instance.Query{
		Status:     &status,
		BorrowerID: &userID,
		Limit:      limit,
		Offset:     offset,
	})
}

// ListAllOnLoan returns one page of every instance regardless of status,
// soonest due first, for the librarian's all-borrowed view.
func (s *Service) ListAllOnLoan(ctx context.Context, limit, offset int) ([]catalog.BookInstance, int, error) {
	return s.instances.List(ctx, instance.Query{Limit: limit, Offset: offset})
}

// Get returns a single instance, for pre-filling the renewal form.
func (s *Service) Get(ctx context.Context, instanceID string) (catalog.BookInstance, error) {
	return s.instances.Get(ctx, instanceID)
}

// Renew extends the instance's due date without changing its borrower.
// The date is not otherwise constrained; a librarian may set one in the
// past.
func (s *Service) Renew(ctx context.Context, instanceID string, newDueBack time.Time) (catalog.BookInstance, error) {
	bi, err := s.instances.Get(ctx, instanceID)
	if err != nil {
		return catalog.BookInstance{}, err
	}
	bi.DueBack = &newDueBack
	if err := s.instances.Update(ctx, &bi); err != nil {
		return catalog.BookInstance{}, err
	}
	return bi, nil
}

// MarkReturned puts the instance back on the shelf: status Available, no
// borrower, no due date.
func (s *Service) MarkReturned(ctx context.Context, instanceID string) (catalog.BookInstance, error) {
	bi, err := s.instances.Get(ctx, instanceID)
	if err != nil {
		return catalog.BookInstance{}, err
	}
	bi.Status = catalog.StatusAvailable
	bi.BorrowerID = nil
	bi.DueBack = nil
	if err := s.instances.Update(ctx, &bi); err != nil {
		return catalog.BookInstance{}, err
	}
	return bi, nil
}
