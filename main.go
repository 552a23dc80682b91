package main

import (
	"context"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-recommender/internal/catalog"
	"github.com/ytget/movie-recommender/internal/config"
	"github.com/ytget/movie-recommender/internal/favorites"
	"github.com/ytget/movie-recommender/internal/platform"
	"github.com/ytget/movie-recommender/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.movie-recommender"
	EnvFile = ".env"
)

func main() {
	// Bootstrap logger until the configured level is known
	logger := setupLogger(config.DefaultLogLevel)

	if err := config.LoadEnvFiles(EnvFile); err != nil {
		logger.Warn().Err(err).Msg("Ignoring env file")
	}

	configPath, err := platform.DataPath(platform.ConfigFileName)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to resolve config path")
	}
	dbPath, err := platform.DataPath(platform.DatabaseFileName)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to resolve database path")
	}

	cfgStore := config.NewStore(configPath)
	cfg, err := cfgStore.Load()
	if err != nil {
		logger.Fatal().Err(err).Str("path", configPath).Msg("Failed to load configuration")
	}
	cfg.ApplyEnv()

	logger = setupLogger(cfg.LogLevel)
	logger.Info().
		Str("version", version).
		Str("config", configPath).
		Str("database", dbPath).
		Bool("development", platform.IsDevelopment()).
		Msg("Movie Recommender starting")

	if !cfg.HasAPIKey() {
		logger.Warn().Str("path", configPath).Msg("No API key configured; set one in Settings or " + config.EnvAPIKey)
	}

	favoritesStore := favorites.NewStore(dbPath, logger, favorites.WithUniqueTitles(cfg.UniqueFavorites))
	if err := favoritesStore.Init(context.Background()); err != nil {
		logger.Fatal().Err(err).Str("path", dbPath).Msg("Failed to initialize favorites storage")
	}

	catalogClient := catalog.NewClient(cfg, logger)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	ui.NewRootUI(myWindow, myApp, cfg, cfgStore, catalogClient, favoritesStore, logger)

	myWindow.ShowAndRun()
	logger.Info().Msg("Movie Recommender stopped")
}

// setupLogger configures the zerolog logger
func setupLogger(levelName string) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(levelName) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
