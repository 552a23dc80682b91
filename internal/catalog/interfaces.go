package catalog

import (
	"context"

	"github.com/ytget/movie-recommender/internal/model"
)

// Catalog defines the interface for the movie catalog client.
type Catalog interface {
	// Discover browses the catalog. genre may be model.GenreAll for no constraint.
	Discover(ctx context.Context, page int, genre model.GenreID) Result

	// Search looks up movies by free text. Callers reject blank queries.
	Search(ctx context.Context, query string) Result
}
