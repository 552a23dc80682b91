package ui

import "fmt"

// FavoriteOp is the action a card button performs
type FavoriteOp int

const (
	OpAddFavorite FavoriteOp = iota
	OpRemoveFavorite
)

// String returns a short name for logs
func (op FavoriteOp) String() string {
	switch op {
	case OpAddFavorite:
		return "add"
	case OpRemoveFavorite:
		return "remove"
	default:
		return fmt.Sprintf("FavoriteOp(%d)", int(op))
	}
}

// FavoriteCommand is bound to one card when the card is built. It holds the
// title by value, so later list rebuilds cannot change what a button acts on.
type FavoriteCommand struct {
	Op    FavoriteOp
	Title string
}

// AddFavorite builds the command for an "Add to Favorites" button
func AddFavorite(title string) FavoriteCommand {
	return FavoriteCommand{Op: OpAddFavorite, Title: title}
}

// RemoveFavorite builds the command for a "Remove from Favorites" button
func RemoveFavorite(title string) FavoriteCommand {
	return FavoriteCommand{Op: OpRemoveFavorite, Title: title}
}

// LabelKey returns the localization key of the button text
func (c FavoriteCommand) LabelKey() string {
	if c.Op == OpRemoveFavorite {
		return KeyRemoveFromFavorites
	}
	return KeyAddToFavorites
}
