package favorites

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ytget/movie-recommender/internal/model"
)

var _ Favorites = (*Store)(nil)

// Store is the SQLite-backed favorites set
type Store struct {
	path   string
	unique bool
	logger zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithUniqueTitles makes Add skip titles that are already stored
func WithUniqueTitles(unique bool) Option {
	return func(s *Store) {
		s.unique = unique
	}
}

// NewStore creates a favorites store for the database file at path
func NewStore(path string, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: logger.With().Str("component", "favorites").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUniqueTitles switches duplicate suppression on or off for later Add calls
func (s *Store) SetUniqueTitles(unique bool) {
	s.unique = unique
}

// Init creates the schema if absent. Safe to call on every startup.
func (s *Store) Init(ctx context.Context) error {
	return s.withDB(ctx, migrate)
}

// Add stores title as a favorite. Any title is accepted, the empty one included.
func (s *Store) Add(ctx context.Context, title string) error {
	return s.withDB(ctx, func(db *gorm.DB) error {
		if s.unique {
			var count int64
			if err := db.Model(&model.Favorite{}).Where("title = ?", title).Count(&count).Error; err != nil {
				return fmt.Errorf("count favorites: %w", err)
			}
			if count > 0 {
				s.logger.Debug().Str("title", title).Msg("Favorite already stored, skipping")
				return nil
			}
		}

		fav := model.Favorite{Title: title}
		if err := db.Create(&fav).Error; err != nil {
			return fmt.Errorf("insert favorite: %w", err)
		}
		s.logger.Debug().Str("title", title).Uint("id", fav.ID).Msg("Favorite added")
		return nil
	})
}

// List returns every stored title in insertion order, duplicates included
func (s *Store) List(ctx context.Context) ([]string, error) {
	titles := []string{}
	err := s.withDB(ctx, func(db *gorm.DB) error {
		if err := db.Model(&model.Favorite{}).Order("id").Pluck("title", &titles).Error; err != nil {
			return fmt.Errorf("list favorites: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// Remove deletes every favorite whose title equals title. Removing a title
// that is not stored is not an error.
func (s *Store) Remove(ctx context.Context, title string) error {
	return s.withDB(ctx, func(db *gorm.DB) error {
		res := db.Where("title = ?", title).Delete(&model.Favorite{})
		if res.Error != nil {
			return fmt.Errorf("delete favorites: %w", res.Error)
		}
		s.logger.Debug().Str("title", title).Int64("rows", res.RowsAffected).Msg("Favorite removed")
		return nil
	})
}

// withDB opens a connection, runs fn, and closes the connection
func (s *Store) withDB(ctx context.Context, fn func(db *gorm.DB) error) (err error) {
	db, err := open(s.path, s.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeDB(db); cerr != nil && err == nil {
			err = fmt.Errorf("close sqlite: %w", cerr)
		}
	}()

	return fn(db.WithContext(ctx))
}
