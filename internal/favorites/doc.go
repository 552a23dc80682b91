package favorites

// Package favorites persists favorited movie titles in a single SQLite table
// through GORM. Each operation opens its own connection and closes it before
// returning.
