package ui

import (
	"context"
	"slices"

	"github.com/ytget/movie-recommender/internal/catalog"
	"github.com/ytget/movie-recommender/internal/config"
	"github.com/ytget/movie-recommender/internal/model"
)

type discoverCall struct {
	page  int
	genre model.GenreID
}

type fakeCatalog struct {
	result   catalog.Result
	discover []discoverCall
	search   []string
}

func (f *fakeCatalog) Discover(_ context.Context, page int, genre model.GenreID) catalog.Result {
	f.discover = append(f.discover, discoverCall{page: page, genre: genre})
	return f.result
}

func (f *fakeCatalog) Search(_ context.Context, query string) catalog.Result {
	f.search = append(f.search, query)
	return f.result
}

type fakeFavorites struct {
	titles []string
	unique bool
	err    error
}

func (f *fakeFavorites) Init(context.Context) error { return f.err }

func (f *fakeFavorites) Add(_ context.Context, title string) error {
	if f.err != nil {
		return f.err
	}
	if f.unique && slices.Contains(f.titles, title) {
		return nil
	}
	f.titles = append(f.titles, title)
	return nil
}

func (f *fakeFavorites) List(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.titles), nil
}

func (f *fakeFavorites) Remove(_ context.Context, title string) error {
	if f.err != nil {
		return f.err
	}
	f.titles = slices.DeleteFunc(f.titles, func(t string) bool { return t == title })
	return nil
}

func (f *fakeFavorites) SetUniqueTitles(unique bool) { f.unique = unique }

type fakeSaver struct {
	saved []config.Config
	err   error
}

func (f *fakeSaver) Save(cfg *config.Config) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *cfg)
	return nil
}

func (f *fakeSaver) Path() string { return "config.json" }

func rated(v float64) *float64 { return &v }
