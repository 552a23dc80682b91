//go:build !prod

package platform

// DataDir returns the directory holding config.json and favorites.db.
// Development builds keep them in the working directory.
func DataDir() string {
	return "."
}

// IsDevelopment reports whether this is a development build
func IsDevelopment() bool {
	return true
}
