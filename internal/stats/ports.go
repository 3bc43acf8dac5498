package stats

import "context"

// Counts is the landing-page summary of the catalog.
type Counts struct {
	NumBooks              int `json:"num_books"`
	NumInstances          int `json:"num_instances"`
	NumInstancesAvailable int `json:"num_instances_available"`
	NumAuthors            int `json:"num_authors"`
	NumGenres             int `json:"num_genres"`
}

type Repository interface {
	Counts(ctx context.Context) (Counts, error)
}
