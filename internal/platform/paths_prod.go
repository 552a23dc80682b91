//go:build prod

package platform

import (
	"os"
	"path/filepath"
)

// DataDir returns the directory holding config.json and favorites.db.
// Production builds use the user's config directory, or the working
// directory when it cannot be determined.
func DataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(configDir, AppDirName)
}

// IsDevelopment reports whether this is a development build
func IsDevelopment() bool {
	return false
}
