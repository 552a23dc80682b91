package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "icon.png"
)

// LoadIconResource loads the window icon from the working directory
func LoadIconResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
