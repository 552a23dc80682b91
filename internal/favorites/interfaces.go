package favorites

import "context"

// Favorites defines the interface for the favorites store.
type Favorites interface {
	Init(ctx context.Context) error
	Add(ctx context.Context, title string) error
	List(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, title string) error

	// SetUniqueTitles switches duplicate suppression for later Add calls
	SetUniqueTitles(unique bool)
}
