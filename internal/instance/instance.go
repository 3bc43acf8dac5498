// Package instance manages the physical book copies of the catalog and
// the queries the loan workflow is built on.
package instance

import "github.com/Huntitude/locallibrary/internal/catalog"

// Query defines the composable filters for listing instances. Results are
// always in the natural (due_back ascending, status) ordering.
type Query struct {
	Status     *catalog.Status
	BorrowerID *string
	Limit      int
	Offset     int
}
