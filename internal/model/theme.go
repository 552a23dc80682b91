package model

// Theme names a window color palette
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when no theme is configured
const DefaultTheme = ThemeDark

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}

// IsValid returns true for the known palettes
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// ParseTheme maps a stored theme name to a Theme, falling back to DefaultTheme
func ParseTheme(s string) Theme {
	t := Theme(s)
	if !t.IsValid() {
		return DefaultTheme
	}
	return t
}

// Themes returns available theme options
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}
