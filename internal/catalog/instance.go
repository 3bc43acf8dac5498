package catalog

import (
	"fmt"
	"time"
)

// Status is the loan status of a book instance, persisted as the
// single-character codes of the original schema.
type Status string

const (
	StatusMaintenance Status = "m"
	StatusOnLoan      Status = "o"
	StatusAvailable   Status = "a"
	StatusReserved    Status = "r"
)

// Valid reports whether s is one of the closed set of statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

// Label returns the human-readable name for the status code.
func (s Status) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return string(s)
}

// ParseStatus converts a status code into a Status.
func ParseStatus(code string) (Status, error) {
	s := Status(code)
	if !s.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("invalid status %q", code))
	}
	return s, nil
}

// BookInstance is a specific physical copy of a book, individually
// trackable and loanable. IDs are UUIDs; the book and borrower references
// are nullable and cleared when the referenced record is deleted. Natural
// ordering is (due_back ascending, status).
type BookInstance struct {
	ID         string     `json:"id"`
	BookID     *string    `json:"book_id,omitempty"`
	BorrowerID *string    `json:"borrower_id,omitempty"`
	Imprint    string     `json:"imprint,omitempty" validate:"max=200"`
	DueBack    *time.Time `json:"due_back,omitempty"`
	Status     Status     `json:"status" validate:"required,oneof=m o a r"`
	Version    int        `json:"version"`
}

// Validate checks the instance's fields.
func (bi BookInstance) Validate() error {
	return validateStruct(bi)
}

// IsOverdue reports whether the instance's due date has passed as of the
// given date. Always false when no due date is set.
func (bi BookInstance) IsOverdue(today time.Time) bool {
	return bi.DueBack != nil && truncateToDate(today).After(*bi.DueBack)
}
