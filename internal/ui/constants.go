package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconFavorite = "★"
	IconLanguage = "🌐"
	IconDataDir  = "📁"
)

// Layout sizing (MovieCard / lists)
const (
	CardMinWidth    float32 = 360
	CardMinHeight   float32 = 48
	CardRadius      float32 = 12
	CardStrokeWidth float32 = 1

	CaptionSeparator = " · "

	SearchSplitOffset = 0.4
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 400
	SettingsDialogHeight float32 = 260
)

// Window defaults
const (
	DefaultWindowWidth  float32 = 900
	DefaultWindowHeight float32 = 700
)

