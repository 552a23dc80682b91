package catalog

import (
	"errors"

	"github.com/ytget/movie-recommender/internal/model"
)

// Result is the outcome of one catalog query. Movies is empty whenever Err is set.
type Result struct {
	Movies []model.Movie
	Err    error
}

// Failed reports whether the request failed, as opposed to matching nothing
func (r Result) Failed() bool {
	return r.Err != nil
}

// Empty reports whether there is nothing to display
func (r Result) Empty() bool {
	return len(r.Movies) == 0
}

// Unauthorized reports whether the catalog rejected the API key
func (r Result) Unauthorized() bool {
	var apiErr *APIError
	return errors.As(r.Err, &apiErr) && apiErr.IsUnauthorized()
}

func failed(err error) Result {
	return Result{Movies: []model.Movie{}, Err: err}
}

func succeeded(movies []model.Movie) Result {
	if movies == nil {
		movies = []model.Movie{}
	}
	return Result{Movies: movies}
}
