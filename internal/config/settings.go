package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ytget/movie-recommender/internal/model"
)

// Settings keys in the config file
const (
	KeyAPIKey          = "api_key"
	KeyTheme           = "theme"
	KeyLanguage        = "language"
	KeyUniqueFavorites = "unique_favorites"
	KeyMaxDiscoverPage = "max_discover_page"
	KeyBaseURL         = "base_url"
	KeyLogLevel        = "log_level"
)

// Default values
const (
	PlaceholderAPIKey      = "your_api_key_here"
	DefaultLanguage        = "en"
	DefaultMaxDiscoverPage = 500
	DefaultBaseURL         = "https://api.themoviedb.org/3/"
	DefaultLogLevel        = "info"
)

// EnvAPIKey overrides the configured API key when set
const EnvAPIKey = "TMDB_API_KEY"

// Config is the application configuration. One instance is loaded at startup
// and shared by the catalog client and the UI; the settings dialog mutates it
// and saves it through a Saver.
type Config struct {
	APIKey          string `mapstructure:"api_key"`
	Theme           string `mapstructure:"theme"`
	Language        string `mapstructure:"language"`
	UniqueFavorites bool   `mapstructure:"unique_favorites"`
	MaxDiscoverPage int    `mapstructure:"max_discover_page"`
	BaseURL         string `mapstructure:"base_url"`
	LogLevel        string `mapstructure:"log_level"`

	// envAPIKey is the TMDB_API_KEY override; it is never written to the file
	envAPIKey string
}

// Default returns the configuration written when no config file exists
func Default() *Config {
	return &Config{
		APIKey:          PlaceholderAPIKey,
		Theme:           model.DefaultTheme.String(),
		Language:        DefaultLanguage,
		MaxDiscoverPage: DefaultMaxDiscoverPage,
		BaseURL:         DefaultBaseURL,
		LogLevel:        DefaultLogLevel,
	}
}

// CurrentTheme returns the configured palette, falling back to the default
func (c *Config) CurrentTheme() model.Theme {
	return model.ParseTheme(c.Theme)
}

// HasAPIKey reports whether a real API key has been configured
func (c *Config) HasAPIKey() bool {
	key := strings.TrimSpace(c.EffectiveAPIKey())
	return key != "" && key != PlaceholderAPIKey
}

// EffectiveAPIKey returns the key catalog requests send: the environment
// override when present, the stored key otherwise.
func (c *Config) EffectiveAPIKey() string {
	if c.envAPIKey != "" {
		return c.envAPIKey
	}
	return c.APIKey
}

// HasEnvOverride reports whether the API key comes from the environment
func (c *Config) HasEnvOverride() bool {
	return c.envAPIKey != ""
}

// SetAPIKey records a key entered by the user. A key different from the
// stored one also drops the environment override for this session.
func (c *Config) SetAPIKey(key string) {
	if key == c.APIKey {
		return
	}
	c.APIKey = key
	c.envAPIKey = ""
}

// GetThemeOptions returns available theme options
func (c *Config) GetThemeOptions() []string {
	options := []string{}
	for _, t := range model.Themes() {
		options = append(options, t.String())
	}
	return options
}

// GetLanguageOptions returns available language options
func (c *Config) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// ApplyEnv reads in-memory overrides from the process environment. The
// stored APIKey is left alone so Save keeps the file's key.
func (c *Config) ApplyEnv() {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		c.envAPIKey = key
	}
}

// Store reads and writes the JSON config file
type Store struct {
	path string
}

// NewStore creates a config store for the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is created with default values;
// a file that cannot be parsed is an error.
func (s *Store) Load() (*Config, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := s.Save(cfg); err != nil {
			return nil, fmt.Errorf("error creating config: %w", err)
		}
		return cfg, nil
	}

	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg to the config file, replacing its contents
func (s *Store) Save(cfg *Config) error {
	v := s.newViper()
	v.Set(KeyAPIKey, cfg.APIKey)
	v.Set(KeyTheme, cfg.Theme)
	v.Set(KeyLanguage, cfg.Language)
	v.Set(KeyUniqueFavorites, cfg.UniqueFavorites)
	v.Set(KeyMaxDiscoverPage, cfg.MaxDiscoverPage)
	v.Set(KeyBaseURL, cfg.BaseURL)
	v.Set(KeyLogLevel, cfg.LogLevel)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}

// newViper returns a viper instance bound to the config file with defaults set
func (s *Store) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	setDefaults(v)
	return v
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyAPIKey, d.APIKey)
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyLanguage, d.Language)
	v.SetDefault(KeyUniqueFavorites, d.UniqueFavorites)
	v.SetDefault(KeyMaxDiscoverPage, d.MaxDiscoverPage)
	v.SetDefault(KeyBaseURL, d.BaseURL)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the process
// environment. Files that do not exist are skipped.
func LoadEnvFiles(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("error loading env files: %w", err)
	}
	return nil
}
