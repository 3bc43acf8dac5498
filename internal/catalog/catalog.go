// Package catalog defines the library's domain entities and the pure
// derived properties the rest of the application builds on. Entities are
// plain records; anything that needs the current date takes it as an
// explicit argument so the computations stay deterministic.
package catalog

// Genre classifies books (e.g. Science Fiction). Books reference genres
// as an unordered set.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=200"`
}

// Validate checks the genre's fields.
func (g Genre) Validate() error {
	return validateStruct(g)
}

// Language is a book's natural language (e.g. English, German).
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

// Validate checks the language's fields.
func (l Language) Validate() error {
	return validateStruct(l)
}
