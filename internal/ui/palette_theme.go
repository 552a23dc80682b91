package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/movie-recommender/internal/model"
)

// Card colors
const (
	ColorNameCard       fyne.ThemeColorName = "movieCard"
	ColorNameCardBorder fyne.ThemeColorName = "movieCardBorder"
)

// Palette is the set of colors one named theme paints with
type Palette struct {
	Background color.Color
	Foreground color.Color
	Card       color.Color
	CardBorder color.Color
}

var (
	darkPalette = Palette{
		Background: color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff},
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Card:       color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
		CardBorder: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
	lightPalette = Palette{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Card:       color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		CardBorder: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
)

// PaletteFor returns the palette of a named theme
func PaletteFor(t model.Theme) Palette {
	if t == model.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// PaletteTheme paints the whole window with one palette, regardless of the
// system light/dark variant, and uses compact sizes.
type PaletteTheme struct {
	name    model.Theme
	palette Palette
}

// NewPaletteTheme creates the theme for a named palette
func NewPaletteTheme(name model.Theme) *PaletteTheme {
	name = model.ParseTheme(name.String())
	return &PaletteTheme{name: name, palette: PaletteFor(name)}
}

// Name returns the palette this theme paints with
func (t *PaletteTheme) Name() model.Theme {
	return t.name
}

// Variant maps the palette to the closest Fyne variant for default colors
func (t *PaletteTheme) Variant() fyne.ThemeVariant {
	if t.name == model.ThemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// Color returns theme colors
func (t *PaletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.palette.Background
	case theme.ColorNameForeground:
		return t.palette.Foreground
	case ColorNameCard:
		return t.palette.Card
	case ColorNameCardBorder, theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return t.palette.CardBorder
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}

	// Use default colors of the matching variant for everything else
	return theme.DefaultTheme().Color(name, t.Variant())
}

// Font returns theme fonts
func (t *PaletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PaletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *PaletteTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// themeColor resolves a color from the current app theme
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return darkPalette.Card
	}
	settings := app.Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}
