package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/movie-recommender/internal/model"
)

// MovieCard is one row in a result or favorites list: title, an optional
// year and overview caption, optional rating and a single favorite action button.
type MovieCard struct {
	widget.BaseWidget

	movie        model.Movie
	showRating   bool
	command      FavoriteCommand
	localization *Localization
	onCommand    func(FavoriteCommand)

	// UI components
	titleLabel   *widget.Label
	captionLabel *widget.Label
	ratingLabel  *widget.Label
	actionBtn    *widget.Button
}

// NewMovieCard creates a card for a catalog movie with an "Add to Favorites" action
func NewMovieCard(movie model.Movie, localization *Localization, onCommand func(FavoriteCommand)) *MovieCard {
	return newMovieCard(movie, true, AddFavorite(movie.Title), localization, onCommand)
}

// NewFavoriteCard creates a card for a stored favorite with a "Remove from Favorites" action
func NewFavoriteCard(title string, localization *Localization, onCommand func(FavoriteCommand)) *MovieCard {
	return newMovieCard(model.Movie{Title: title}, false, RemoveFavorite(title), localization, onCommand)
}

func newMovieCard(movie model.Movie, showRating bool, cmd FavoriteCommand, localization *Localization, onCommand func(FavoriteCommand)) *MovieCard {
	mc := &MovieCard{
		movie:        movie,
		showRating:   showRating,
		command:      cmd,
		localization: localization,
		onCommand:    onCommand,
	}
	mc.ExtendBaseWidget(mc)
	mc.createUI()
	return mc
}

// Command returns the command the action button runs
func (mc *MovieCard) Command() FavoriteCommand {
	return mc.command
}

// TitleText returns the displayed title
func (mc *MovieCard) TitleText() string {
	return mc.titleLabel.Text
}

// RatingText returns the displayed rating value, or "" for favorites
func (mc *MovieCard) RatingText() string {
	if !mc.showRating {
		return ""
	}
	if !mc.movie.HasRating() {
		return mc.localization.GetText(KeyNotRated)
	}
	return mc.movie.RatingText()
}

// CaptionText returns the release year and overview line, or "" when the
// catalog sent neither
func (mc *MovieCard) CaptionText() string {
	parts := []string{}
	if year := mc.movie.Year(); year != "" {
		parts = append(parts, year)
	}
	if overview := strings.TrimSpace(mc.movie.Overview); overview != "" {
		parts = append(parts, overview)
	}
	return strings.Join(parts, CaptionSeparator)
}

// Relabel re-reads the localized rating and button texts
func (mc *MovieCard) Relabel() {
	if mc.showRating {
		mc.ratingLabel.SetText(fmt.Sprintf(mc.localization.GetText(KeyRating), mc.RatingText()))
	}
	mc.actionBtn.SetText(mc.localization.GetText(mc.command.LabelKey()))
}

// Tap runs the card's command as if its button was pressed
func (mc *MovieCard) Tap() {
	if mc.onCommand != nil {
		mc.onCommand(mc.command)
	}
}

// createUI creates the UI components
func (mc *MovieCard) createUI() {
	mc.titleLabel = widget.NewLabel(mc.movie.DisplayTitle())
	mc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	mc.titleLabel.Wrapping = fyne.TextWrapWord
	mc.titleLabel.Alignment = fyne.TextAlignLeading

	mc.captionLabel = widget.NewLabel(mc.CaptionText())
	mc.captionLabel.Importance = widget.LowImportance
	mc.captionLabel.Truncation = fyne.TextTruncateEllipsis
	if mc.captionLabel.Text == "" {
		mc.captionLabel.Hide()
	}

	mc.ratingLabel = widget.NewLabel("")
	mc.ratingLabel.Alignment = fyne.TextAlignTrailing
	if mc.showRating {
		mc.ratingLabel.SetText(fmt.Sprintf(mc.localization.GetText(KeyRating), mc.RatingText()))
	} else {
		mc.ratingLabel.Hide()
	}

	cmd := mc.command
	mc.actionBtn = widget.NewButton(mc.localization.GetText(cmd.LabelKey()), func() {
		if mc.onCommand != nil {
			mc.onCommand(cmd)
		}
	})
	mc.actionBtn.Importance = widget.MediumImportance
}

// CreateRenderer creates the renderer for the card
func (mc *MovieCard) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(themeColor(ColorNameCard))
	background.CornerRadius = CardRadius
	background.StrokeWidth = CardStrokeWidth
	background.StrokeColor = themeColor(ColorNameCardBorder)

	right := container.NewHBox(mc.ratingLabel, mc.actionBtn)
	text := container.NewVBox(mc.titleLabel, mc.captionLabel)
	content := container.NewPadded(container.NewBorder(nil, nil, nil, right, text))

	return &movieCardRenderer{
		card:       mc,
		background: background,
		content:    content,
	}
}

// movieCardRenderer draws the card background under its content
type movieCardRenderer struct {
	card       *MovieCard
	background *canvas.Rectangle
	content    *fyne.Container
}

// Layout positions the background and content
func (r *movieCardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.content.Resize(size)
}

// MinSize returns the minimum size
func (r *movieCardRenderer) MinSize() fyne.Size {
	min := r.content.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	if min.Height < CardMinHeight {
		min.Height = CardMinHeight
	}
	return min
}

// Refresh repaints the background with the current theme
func (r *movieCardRenderer) Refresh() {
	r.background.FillColor = themeColor(ColorNameCard)
	r.background.StrokeColor = themeColor(ColorNameCardBorder)
	r.background.Refresh()
	r.content.Refresh()
}

// Objects returns the container objects
func (r *movieCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.content}
}

// Destroy cleans up the renderer
func (r *movieCardRenderer) Destroy() {}
