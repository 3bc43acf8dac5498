package catalog

import (
	"strings"
	"time"
)

// Book is a catalog title. Author and language references are nullable:
// deleting either leaves the book in place with the reference cleared.
type Book struct {
	ID         string     `json:"id"`
	Title      string     `json:"title" validate:"required,max=200"`
	AuthorID   *string    `json:"author_id,omitempty"`
	Summary    string     `json:"summary" validate:"max=1000"`
	ISBN       string     `json:"isbn" validate:"required,len=13"`
	LanguageID *string    `json:"language_id,omitempty"`
	Genres     []Genre    `json:"genres,omitempty"`
	BookAdded  *time.Time `json:"book_added,omitempty"`
}

// Validate checks the book's fields. ISBN must be exactly 13 characters;
// uniqueness is enforced by the repository.
func (b Book) Validate() error {
	return validateStruct(b)
}

// DisplayGenre returns a short preview of the book's genres: the names of
// up to the first three, comma-joined, in storage order.
func (b Book) DisplayGenre() string {
	n := len(b.Genres)
	if n > 3 {
		n = 3
	}
	names := make([]string, 0, n)
	for _, g := range b.Genres[:n] {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
