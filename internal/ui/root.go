package ui

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-recommender/internal/catalog"
	"github.com/ytget/movie-recommender/internal/config"
	"github.com/ytget/movie-recommender/internal/favorites"
	"github.com/ytget/movie-recommender/internal/model"
)

// RecommendationsView tells which list the shared lower area currently shows
type RecommendationsView int

const (
	ViewRecommendations RecommendationsView = iota
	ViewFavorites
)

// String returns the view name for logs
func (v RecommendationsView) String() string {
	switch v {
	case ViewRecommendations:
		return "recommendations"
	case ViewFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	cfg          *config.Config
	cfgSaver     config.Saver
	catalog      catalog.Catalog
	favorites    favorites.Favorites
	localization *Localization
	logger       zerolog.Logger

	// Recommendation state
	pager *Pager
	genre model.GenreID
	view  RecommendationsView

	// Message labels shown in place of cards, by localization key
	messages map[*widget.Label]string

	// Hooks replaced in tests
	shuffle     func([]model.Movie)
	showInfo    func(title, message string)
	showWarning func(title, message string)
	showError   func(err error)

	// UI components
	headerLabel     *widget.Label
	searchEntry     *widget.Entry
	searchBtn       *widget.Button
	searchResults   *fyne.Container
	genreLabel      *widget.Label
	genreSelect     *widget.Select
	recommendBtn    *widget.Button
	recommendations *fyne.Container
	favoritesBtn    *widget.Button
	settingsBtn     *widget.Button
	settingsDialog  *SettingsDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	app fyne.App,
	cfg *config.Config,
	cfgSaver config.Saver,
	catalogSvc catalog.Catalog,
	favoritesSvc favorites.Favorites,
	logger zerolog.Logger,
) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(cfg.Language)

	ui := &RootUI{
		window:       window,
		app:          app,
		cfg:          cfg,
		cfgSaver:     cfgSaver,
		catalog:      catalogSvc,
		favorites:    favoritesSvc,
		localization: localization,
		logger:       logger.With().Str("component", "ui").Logger(),
		pager:        NewPager(),
		genre:        model.GenreAll,
		view:         ViewRecommendations,
		messages:     make(map[*widget.Label]string),
		shuffle:      shuffleMovies,
	}
	ui.showInfo = func(title, message string) {
		dialog.ShowInformation(title, message, ui.window)
	}
	ui.showWarning = ui.showInfo
	ui.showError = func(err error) {
		dialog.ShowError(err, ui.window)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadIconResource(); err == nil {
		window.SetIcon(icon)
	} else {
		ui.logger.Debug().Err(err).Msg("Window icon not loaded")
	}

	ui.setupUI()
	ui.applyTheme()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.headerLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}
	ui.searchBtn = widget.NewButton(IconSearch+" "+ui.localization.GetText(KeySearch), ui.onSearch)
	searchRow := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)

	ui.searchResults = container.NewVBox()
	searchScroll := container.NewVScroll(ui.searchResults)

	genreNames := []string{}
	for _, g := range model.Genres() {
		genreNames = append(genreNames, g.Name)
	}
	ui.genreLabel = widget.NewLabel(ui.localization.GetText(KeyGenre))
	ui.genreSelect = widget.NewSelect(genreNames, ui.onGenreChanged)
	ui.genreSelect.SetSelected(genreNames[0])
	genreRow := container.NewBorder(nil, nil, ui.genreLabel, nil, ui.genreSelect)

	ui.recommendBtn = widget.NewButton(ui.localization.GetText(KeyGetRecommendations), ui.onRecommend)
	ui.recommendBtn.Importance = widget.HighImportance

	ui.recommendations = container.NewVBox()
	recommendationsScroll := container.NewVScroll(ui.recommendations)

	ui.favoritesBtn = widget.NewButton(IconFavorite+" "+ui.localization.GetText(KeyViewFavorites), ui.onShowFavorites)
	ui.settingsBtn = widget.NewButton(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	recommendationsPanel := container.NewBorder(
		container.NewVBox(genreRow, ui.recommendBtn),
		nil,
		nil,
		nil,
		recommendationsScroll,
	)

	split := container.NewVSplit(searchScroll, recommendationsPanel)
	split.SetOffset(SearchSplitOffset)

	content := container.NewBorder(
		container.NewVBox(ui.headerLabel, searchRow),
		container.NewVBox(ui.favoritesBtn, ui.settingsBtn),
		nil,
		nil,
		split,
	)

	ui.window.SetContent(content)
	ui.logger.Debug().Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange persists the language and switches the UI to it
func (ui *RootUI) onLanguageChange(langCode string) {
	next := *ui.cfg
	next.Language = langCode

	if err := ui.cfgSaver.Save(&next); err != nil {
		ui.logger.Error().Err(err).Str("language", langCode).Msg("Failed to save language")
		ui.showError(err)
		return
	}
	*ui.cfg = next

	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.headerLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchBtn.SetText(IconSearch + " " + ui.localization.GetText(KeySearch))
	ui.recommendBtn.SetText(ui.localization.GetText(KeyGetRecommendations))
	ui.genreLabel.SetText(ui.localization.GetText(KeyGenre))
	ui.favoritesBtn.SetText(IconFavorite + " " + ui.localization.GetText(KeyViewFavorites))
	ui.settingsBtn.SetText(IconSettings + " " + ui.localization.GetText(KeySettings))
	ui.relabelList(ui.searchResults)
	ui.relabelList(ui.recommendations)
	ui.settingsDialog = nil
}

// relabelList re-reads localized texts of the cards and messages in a list
func (ui *RootUI) relabelList(target *fyne.Container) {
	for _, obj := range target.Objects {
		switch item := obj.(type) {
		case *MovieCard:
			item.Relabel()
		case *widget.Label:
			if key, ok := ui.messages[item]; ok {
				item.SetText(ui.localization.GetText(key))
			}
		}
	}
}

// clearList empties a list and forgets its message labels
func (ui *RootUI) clearList(target *fyne.Container) {
	for _, obj := range target.Objects {
		if label, ok := obj.(*widget.Label); ok {
			delete(ui.messages, label)
		}
	}
	target.RemoveAll()
}

// showMessage adds a localized message line to a list
func (ui *RootUI) showMessage(target *fyne.Container, key string) {
	label := widget.NewLabel(ui.localization.GetText(key))
	ui.messages[label] = key
	target.Add(label)
}

// applyTheme paints the whole app with the configured palette
func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewPaletteTheme(ui.cfg.CurrentTheme()))
	if content := ui.window.Content(); content != nil {
		content.Refresh()
	}
}

// onSearch handles the search button and Enter in the search field
func (ui *RootUI) onSearch() {
	query := strings.TrimSpace(ui.searchEntry.Text)
	if query == "" {
		ui.showWarning(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyPleaseEnterSearch))
		return
	}

	ui.logger.Info().Str("query", query).Msg("Searching catalog")
	result := ui.catalog.Search(context.Background(), query)
	ui.displayMovies(ui.searchResults, result)
}

// onGenreChanged updates the genre used by later recommendation requests
func (ui *RootUI) onGenreChanged(name string) {
	genre, ok := model.GenreByName(name)
	if !ok {
		ui.logger.Warn().Str("genre", name).Msg("Unknown genre selected")
		return
	}
	ui.genre = genre.ID
	ui.logger.Debug().Int("genre_id", int(genre.ID)).Msg("Genre filter changed")
}

// onRecommend fetches the next discover page for the selected genre
func (ui *RootUI) onRecommend() {
	page := ui.pager.Next(ui.cfg.MaxDiscoverPage)

	ui.logger.Info().Int("page", page).Int("genre_id", int(ui.genre)).Msg("Fetching recommendations")
	result := ui.catalog.Discover(context.Background(), page, ui.genre)

	ui.view = ViewRecommendations
	ui.displayMovies(ui.recommendations, result)
}

// onShowFavorites replaces the recommendations area with stored favorites
func (ui *RootUI) onShowFavorites() {
	titles, err := ui.favorites.List(context.Background())
	if err != nil {
		ui.reportStorageError("list", err)
		return
	}

	ui.view = ViewFavorites
	ui.clearList(ui.recommendations)

	if len(titles) == 0 {
		ui.showMessage(ui.recommendations, KeyNoFavorites)
		ui.recommendations.Refresh()
		return
	}

	for _, title := range titles {
		ui.recommendations.Add(NewFavoriteCard(title, ui.localization, ui.execute))
	}
	ui.recommendations.Refresh()
}

// execute runs a card command against the favorites store
func (ui *RootUI) execute(cmd FavoriteCommand) {
	ctx := context.Background()

	switch cmd.Op {
	case OpAddFavorite:
		if err := ui.favorites.Add(ctx, cmd.Title); err != nil {
			ui.reportStorageError(cmd.Op.String(), err)
			return
		}
		ui.logger.Info().Str("title", cmd.Title).Msg("Favorite added")
		ui.showInfo(ui.localization.GetText(KeySuccess), fmt.Sprintf(ui.localization.GetText(KeyAddedToFavorites), cmd.Title))
		if ui.view == ViewFavorites {
			ui.onShowFavorites()
		}

	case OpRemoveFavorite:
		if err := ui.favorites.Remove(ctx, cmd.Title); err != nil {
			ui.reportStorageError(cmd.Op.String(), err)
			return
		}
		ui.logger.Info().Str("title", cmd.Title).Msg("Favorite removed")
		ui.showInfo(ui.localization.GetText(KeySuccess), fmt.Sprintf(ui.localization.GetText(KeyRemovedFavorite), cmd.Title))
		ui.onShowFavorites()

	default:
		ui.logger.Warn().Str("op", cmd.Op.String()).Msg("Unknown favorite command")
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.cfg, ui.cfgSaver, ui.localization, ui.window, ui.logger, ui.onSettingsSaved)
	}
	ui.settingsDialog.Show()
}

// onSettingsSaved applies saved settings to the running app
func (ui *RootUI) onSettingsSaved() {
	ui.favorites.SetUniqueTitles(ui.cfg.UniqueFavorites)

	if ui.cfg.Language != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(ui.cfg.Language)
		ui.refreshUITexts()
		ui.createMenu()
	}

	ui.applyTheme()
	ui.showInfo(ui.localization.GetText(KeySettingsSaved), ui.localization.GetText(KeySettingsUpdated))
}

// displayMovies replaces target's content with cards for the result
func (ui *RootUI) displayMovies(target *fyne.Container, result catalog.Result) {
	ui.clearList(target)

	switch {
	case result.Failed():
		ui.logger.Warn().Err(result.Err).Msg("Catalog request failed")
		key := KeyCatalogUnavailable
		if result.Unauthorized() {
			key = KeyCatalogUnauthorized
		}
		ui.showMessage(target, key)

	case result.Empty():
		ui.showMessage(target, KeyNoMoviesFound)

	default:
		movies := slices.Clone(result.Movies)
		ui.shuffle(movies)
		for _, movie := range movies {
			target.Add(NewMovieCard(movie, ui.localization, ui.execute))
		}
	}

	target.Refresh()
}

// reportStorageError logs a failed favorites operation and tells the user
func (ui *RootUI) reportStorageError(op string, err error) {
	ui.logger.Error().Err(err).Str("op", op).Msg("Favorites storage failed")
	ui.showError(err)
}

// shuffleMovies randomizes display order in place
func shuffleMovies(movies []model.Movie) {
	rand.Shuffle(len(movies), func(i, j int) {
		movies[i], movies[j] = movies[j], movies[i]
	})
}
