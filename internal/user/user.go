// Package user holds library member accounts. Patrons borrow instances;
// librarians additionally hold the mark-returned capability that gates the
// all-loans and renewal operations.
package user

import "time"

const (
	RolePatron    = "PATRON"
	RoleLibrarian = "LIBRARIAN"
)

// CanMarkReturned reports whether the role carries the librarian
// capability to view every loan, renew instances and mark them returned.
// Authorization policy stays here; the loan workflow only consumes the
// already-evaluated result.
func CanMarkReturned(role string) bool {
	return role == RoleLibrarian
}

// User is a library member account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
