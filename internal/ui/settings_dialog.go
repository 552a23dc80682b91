package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-recommender/internal/config"
	"github.com/ytget/movie-recommender/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	cfg          *config.Config
	saver        config.Saver
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	logger       zerolog.Logger
	onSaved      func()

	// UI components
	apiKeyEntry    *widget.Entry
	themeSelect    *widget.Select
	languageSelect *widget.Select
	uniqueCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// configuration has been written.
func NewSettingsDialog(cfg *config.Config, saver config.Saver, localization *Localization, window fyne.Window, logger zerolog.Logger, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		cfg:          cfg,
		saver:        saver,
		localization: localization,
		window:       window,
		logger:       logger,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder(config.PlaceholderAPIKey)

	sd.themeSelect = widget.NewSelect(sd.cfg.GetThemeOptions(), nil)

	languageOptions := []string{}
	for code := range sd.cfg.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.uniqueCheck = widget.NewCheck(sd.localization.GetText(KeyUniqueFavorites), nil)

	dataDirBtn := widget.NewButton(IconDataDir+" "+sd.localization.GetText(KeyOpenDataFolder), sd.onRevealDataFolder)
	dataDirBtn.Importance = widget.LowImportance

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyAPIKey), sd.apiKeyEntry),
		widget.NewFormItem(sd.localization.GetText(KeyTheme), sd.themeSelect),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(
		form,
		sd.uniqueCheck,
		widget.NewSeparator(),
		dataDirBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.cfg.APIKey)
	sd.themeSelect.SetSelected(sd.cfg.CurrentTheme().String())
	sd.languageSelect.SetSelected(sd.cfg.Language)
	sd.uniqueCheck.SetChecked(sd.cfg.UniqueFavorites)
}

// onRevealDataFolder shows the config file in the system file manager
func (sd *SettingsDialog) onRevealDataFolder() {
	if err := platform.OpenFileInManager(sd.saver.Path()); err != nil {
		sd.logger.Warn().Err(err).Str("path", sd.saver.Path()).Msg("Failed to reveal data folder")
		dialog.ShowError(err, sd.window)
	}
}

// onSave handles saving the settings. The shared config changes only after
// the file has been written.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	next := *sd.cfg
	next.SetAPIKey(strings.TrimSpace(sd.apiKeyEntry.Text))

	if sd.themeSelect.Selected != "" {
		next.Theme = sd.themeSelect.Selected
	}

	if sd.languageSelect.Selected != "" {
		next.Language = sd.languageSelect.Selected
	}

	next.UniqueFavorites = sd.uniqueCheck.Checked

	if err := sd.saver.Save(&next); err != nil {
		sd.logger.Error().Err(err).Msg("Failed to save settings")
		dialog.ShowError(err, sd.window)
		return
	}
	*sd.cfg = next

	sd.logger.Info().
		Str("theme", sd.cfg.Theme).
		Str("language", sd.cfg.Language).
		Bool("unique_favorites", sd.cfg.UniqueFavorites).
		Bool("env_api_key", sd.cfg.HasEnvOverride()).
		Msg("Settings saved")

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
