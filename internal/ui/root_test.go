package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/movie-recommender/internal/catalog"
	"github.com/ytget/movie-recommender/internal/config"
	"github.com/ytget/movie-recommender/internal/model"
)

type notice struct {
	title   string
	message string
}

type rootFixture struct {
	ui        *RootUI
	app       fyne.App
	cfg       *config.Config
	catalog   *fakeCatalog
	favorites *fakeFavorites
	saver     *fakeSaver
	notices   []notice
	warnings  []notice
	errs      []error
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	f := &rootFixture{
		app:       a,
		cfg:       config.Default(),
		catalog:   &fakeCatalog{result: catalog.Result{Movies: []model.Movie{}}},
		favorites: &fakeFavorites{},
		saver:     &fakeSaver{},
	}
	f.ui = NewRootUI(w, a, f.cfg, f.saver, f.catalog, f.favorites, zerolog.Nop())
	f.ui.shuffle = func([]model.Movie) {}
	f.ui.showInfo = func(title, message string) {
		f.notices = append(f.notices, notice{title, message})
	}
	f.ui.showWarning = func(title, message string) {
		f.warnings = append(f.warnings, notice{title, message})
	}
	f.ui.showError = func(err error) {
		f.errs = append(f.errs, err)
	}
	return f
}

func cards(t *testing.T, c *fyne.Container) []*MovieCard {
	t.Helper()
	out := []*MovieCard{}
	for _, obj := range c.Objects {
		card, ok := obj.(*MovieCard)
		require.True(t, ok, "expected only cards, got %T", obj)
		out = append(out, card)
	}
	return out
}

func onlyLabel(t *testing.T, c *fyne.Container) string {
	t.Helper()
	require.Len(t, c.Objects, 1)
	label, ok := c.Objects[0].(*widget.Label)
	require.True(t, ok, "expected a label, got %T", c.Objects[0])
	return label.Text
}

func TestSearch_EmptyQueryWarnsWithoutRequest(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		f := newRootFixture(t)
		f.ui.searchEntry.SetText(query)
		f.ui.onSearch()

		assert.Empty(t, f.catalog.search, "query %q", query)
		require.Len(t, f.warnings, 1)
		assert.Equal(t, "Please enter a search term.", f.warnings[0].message)
	}
}

func TestSearch_RendersCardPerMovie(t *testing.T) {
	f := newRootFixture(t)
	f.catalog.result = catalog.Result{Movies: []model.Movie{
		{Title: "Inception", VoteAverage: rated(8.4)},
		{Title: "Interstellar", VoteAverage: rated(8)},
		{Title: "Tenet"},
	}}

	f.ui.searchEntry.SetText("  nolan ")
	f.ui.onSearch()

	assert.Equal(t, []string{"nolan"}, f.catalog.search)
	got := cards(t, f.ui.searchResults)
	require.Len(t, got, 3)
	assert.Equal(t, "Inception", got[0].TitleText())
	assert.Equal(t, "8.0", got[1].RatingText())
	assert.Equal(t, "Not Rated", got[2].RatingText())
	assert.Equal(t, AddFavorite("Tenet"), got[2].Command())
	assert.Empty(t, f.ui.recommendations.Objects)
}

func TestSearch_ShufflesDisplayOrder(t *testing.T) {
	f := newRootFixture(t)
	movies := []model.Movie{{Title: "A"}, {Title: "B"}}
	f.catalog.result = catalog.Result{Movies: movies}
	f.ui.shuffle = func(m []model.Movie) { m[0], m[1] = m[1], m[0] }

	f.ui.searchEntry.SetText("x")
	f.ui.onSearch()

	got := cards(t, f.ui.searchResults)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].TitleText())
	assert.Equal(t, "A", movies[0].Title, "the catalog result must not be reordered")
}

func TestRecommend_ActionGenreFirstPage(t *testing.T) {
	f := newRootFixture(t)
	f.catalog.result = catalog.Result{Movies: []model.Movie{{Title: "Mad Max", VoteAverage: rated(7.8)}}}

	f.ui.genreSelect.SetSelected("Action")
	assert.Empty(t, f.catalog.discover, "changing genre must not fetch")

	f.ui.onRecommend()

	require.Equal(t, []discoverCall{{page: 1, genre: model.GenreAction}}, f.catalog.discover)
	got := cards(t, f.ui.recommendations)
	require.Len(t, got, 1)
	assert.Equal(t, "Mad Max", got[0].TitleText())
	assert.Equal(t, "7.8", got[0].RatingText())
}

func TestRecommend_PageAdvancesAndWraps(t *testing.T) {
	f := newRootFixture(t)
	f.cfg.MaxDiscoverPage = 2

	for i := 0; i < 4; i++ {
		f.ui.onRecommend()
	}

	pages := []int{}
	for _, call := range f.catalog.discover {
		pages = append(pages, call.page)
		assert.Equal(t, model.GenreAll, call.genre)
	}
	assert.Equal(t, []int{1, 2, 1, 2}, pages)
}

func TestDisplay_FailureAndEmptyAreDistinct(t *testing.T) {
	f := newRootFixture(t)

	f.catalog.result = catalog.Result{Movies: []model.Movie{}}
	f.ui.onRecommend()
	assert.Equal(t, "No movies found.", onlyLabel(t, f.ui.recommendations))

	f.catalog.result = catalog.Result{Movies: []model.Movie{}, Err: errors.New("dial tcp: refused")}
	f.ui.onRecommend()
	assert.Equal(t, "Could not reach the movie catalog.", onlyLabel(t, f.ui.recommendations))

	f.catalog.result = catalog.Result{Movies: []model.Movie{}, Err: &catalog.APIError{StatusCode: 401}}
	f.ui.onRecommend()
	assert.Equal(t, f.ui.localization.GetText(KeyCatalogUnauthorized), onlyLabel(t, f.ui.recommendations))
}

func TestFavorites_EmptyView(t *testing.T) {
	f := newRootFixture(t)

	f.ui.onShowFavorites()

	assert.Equal(t, ViewFavorites, f.ui.view)
	assert.Equal(t, "No favorites added yet.", onlyLabel(t, f.ui.recommendations))
}

func TestFavorites_AddFromCardThenView(t *testing.T) {
	f := newRootFixture(t)
	f.catalog.result = catalog.Result{Movies: []model.Movie{{Title: "Inception", VoteAverage: rated(8.4)}}}
	f.ui.onRecommend()

	card := cards(t, f.ui.recommendations)[0]
	card.Tap()
	card.Tap()

	assert.Equal(t, []string{"Inception", "Inception"}, f.favorites.titles)
	require.Len(t, f.notices, 2)
	assert.Equal(t, "'Inception' added to favorites!", f.notices[0].message)

	f.ui.onShowFavorites()
	got := cards(t, f.ui.recommendations)
	require.Len(t, got, 2)
	assert.Equal(t, RemoveFavorite("Inception"), got[0].Command())
	assert.Empty(t, got[0].RatingText())
}

func TestFavorites_RemoveRerendersList(t *testing.T) {
	f := newRootFixture(t)
	f.favorites.titles = []string{"Inception", "Heat", "Inception"}
	f.ui.onShowFavorites()

	cards(t, f.ui.recommendations)[0].Tap()

	assert.Equal(t, []string{"Heat"}, f.favorites.titles)
	got := cards(t, f.ui.recommendations)
	require.Len(t, got, 1)
	assert.Equal(t, "Heat", got[0].TitleText())
	require.Len(t, f.notices, 1)
	assert.Equal(t, "'Inception' removed from favorites!", f.notices[0].message)

	cards(t, f.ui.recommendations)[0].Tap()
	assert.Equal(t, "No favorites added yet.", onlyLabel(t, f.ui.recommendations))
}

func TestFavorites_StorageErrorIsReported(t *testing.T) {
	f := newRootFixture(t)
	f.favorites.err = errors.New("database is locked")

	f.ui.execute(AddFavorite("Heat"))
	f.ui.onShowFavorites()

	require.Len(t, f.errs, 2)
	assert.Empty(t, f.notices)
	assert.Empty(t, f.ui.recommendations.Objects)
}

func TestSettings_SaveLightPersistsAndRepaints(t *testing.T) {
	f := newRootFixture(t)
	dir := t.TempDir()
	store := config.NewStore(filepath.Join(dir, "config.json"))
	f.ui.cfgSaver = store

	f.ui.onShowSettings()
	sd := f.ui.settingsDialog
	require.NotNil(t, sd)

	sd.themeSelect.SetSelected("light")
	sd.uniqueCheck.SetChecked(true)
	sd.onSave(true)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme)
	assert.True(t, loaded.UniqueFavorites)
	assert.True(t, f.favorites.unique)

	current, ok := f.app.Settings().Theme().(*PaletteTheme)
	require.True(t, ok)
	assert.Equal(t, model.ThemeLight, current.Name())
	assert.Equal(t, lightPalette.Background, current.Color(theme.ColorNameBackground, theme.VariantDark))

	require.Len(t, f.notices, 1)
	assert.Equal(t, "Settings Saved", f.notices[0].title)
}

func TestSettings_CancelLeavesConfig(t *testing.T) {
	f := newRootFixture(t)

	f.ui.onShowSettings()
	f.ui.settingsDialog.themeSelect.SetSelected("light")
	f.ui.settingsDialog.onSave(false)

	assert.Equal(t, "dark", f.cfg.Theme)
	assert.Empty(t, f.saver.saved)
	assert.Empty(t, f.notices)
}

func TestLanguageChange_PersistsAndRelabels(t *testing.T) {
	f := newRootFixture(t)

	f.ui.onLanguageChange("ru")

	require.Len(t, f.saver.saved, 1)
	assert.Equal(t, "ru", f.saver.saved[0].Language)
	assert.Equal(t, f.ui.localization.GetText(KeyGetRecommendations), f.ui.recommendBtn.Text)
	assert.NotEqual(t, "Get Recommendations", f.ui.recommendBtn.Text)
}

func TestRecommendationsView_String(t *testing.T) {
	assert.Equal(t, "recommendations", ViewRecommendations.String())
	assert.Equal(t, "favorites", ViewFavorites.String())
	assert.Equal(t, "unknown", RecommendationsView(9).String())
}

func TestLanguageChange_KeepsFileKeyUnderEnvOverride(t *testing.T) {
	f := newRootFixture(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key":"file-key","theme":"dark"}`), 0644))
	store := config.NewStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	t.Setenv(config.EnvAPIKey, "secret-env-key")
	loaded.ApplyEnv()
	*f.cfg = *loaded
	f.ui.cfgSaver = store

	f.ui.onLanguageChange("pt")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file-key")
	assert.NotContains(t, string(data), "secret-env-key")
	assert.Equal(t, "secret-env-key", f.cfg.EffectiveAPIKey())
	assert.Equal(t, "pt", f.cfg.Language)
}

func TestLanguageChange_SaveFailureKeepsLanguage(t *testing.T) {
	f := newRootFixture(t)
	f.saver.err = errors.New("disk full")

	f.ui.onLanguageChange("ru")

	require.Len(t, f.errs, 1)
	assert.Equal(t, "en", f.cfg.Language)
	assert.Equal(t, "en", f.ui.localization.GetCurrentLanguage())
	assert.Equal(t, "Get Recommendations", f.ui.recommendBtn.Text)
}

func TestSettings_SaveFailureLeavesConfig(t *testing.T) {
	f := newRootFixture(t)
	f.saver.err = errors.New("disk full")

	f.ui.onShowSettings()
	sd := f.ui.settingsDialog
	sd.themeSelect.SetSelected("light")
	sd.apiKeyEntry.SetText("unsaved-key")
	sd.uniqueCheck.SetChecked(true)
	sd.onSave(true)

	assert.Empty(t, f.saver.saved)
	assert.Equal(t, "dark", f.cfg.Theme)
	assert.Equal(t, config.PlaceholderAPIKey, f.cfg.APIKey)
	assert.False(t, f.cfg.UniqueFavorites)
	assert.False(t, f.favorites.unique)
	assert.Empty(t, f.notices)
}

func TestSettings_UnchangedKeyKeepsEnvOverride(t *testing.T) {
	f := newRootFixture(t)
	f.cfg.APIKey = "file-key"
	t.Setenv(config.EnvAPIKey, "env-key")
	f.cfg.ApplyEnv()

	f.ui.onShowSettings()
	f.ui.settingsDialog.onSave(true)

	require.Len(t, f.saver.saved, 1)
	assert.Equal(t, "file-key", f.saver.saved[0].APIKey)
	assert.Equal(t, "env-key", f.cfg.EffectiveAPIKey())
}

func TestLanguageChange_RelabelsShownLists(t *testing.T) {
	f := newRootFixture(t)
	f.catalog.result = catalog.Result{Movies: []model.Movie{{Title: "Heat", VoteAverage: rated(8.3)}}}
	f.ui.searchEntry.SetText("heat")
	f.ui.onSearch()
	f.ui.onShowFavorites()

	f.ui.onLanguageChange("pt")

	card := cards(t, f.ui.searchResults)[0]
	assert.Equal(t, f.ui.localization.GetText(KeyAddToFavorites), card.actionBtn.Text)
	assert.NotEqual(t, "Add to Favorites", card.actionBtn.Text)
	assert.Equal(t, f.ui.localization.GetText(KeyNoFavorites), onlyLabel(t, f.ui.recommendations))
	assert.Equal(t, f.ui.localization.GetText(KeyGenre), f.ui.genreLabel.Text)
}

func TestFavorites_AddWhileShownRefreshesList(t *testing.T) {
	f := newRootFixture(t)
	f.catalog.result = catalog.Result{Movies: []model.Movie{{Title: "Heat"}}}
	f.ui.searchEntry.SetText("heat")
	f.ui.onSearch()
	f.ui.onShowFavorites()
	require.Equal(t, "No favorites added yet.", onlyLabel(t, f.ui.recommendations))

	cards(t, f.ui.searchResults)[0].Tap()

	got := cards(t, f.ui.recommendations)
	require.Len(t, got, 1)
	assert.Equal(t, RemoveFavorite("Heat"), got[0].Command())

	f.ui.onRecommend()
	cards(t, f.ui.searchResults)[0].Tap()
	assert.Equal(t, ViewRecommendations, f.ui.view)
	recs := cards(t, f.ui.recommendations)
	require.Len(t, recs, 1)
	assert.Equal(t, AddFavorite("Heat"), recs[0].Command(), "recommendations are not replaced by favorites")
}

func TestGenreLabel(t *testing.T) {
	f := newRootFixture(t)
	assert.Equal(t, "Genre", f.ui.genreLabel.Text)
}
