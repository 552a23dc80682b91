package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the catalog client and the favorites store and
// renders results as movie cards. All UI strings are localized via Localization.
