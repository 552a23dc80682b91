package config

// Saver persists configuration changes made at runtime.
type Saver interface {
	Save(cfg *Config) error
	Path() string
}
