package ui

import "testing"

func TestFavoriteCommand(t *testing.T) {
	add := AddFavorite("Heat")
	if add.Op != OpAddFavorite || add.Title != "Heat" {
		t.Errorf("unexpected add command %+v", add)
	}
	if add.LabelKey() != KeyAddToFavorites {
		t.Errorf("add label key = %s", add.LabelKey())
	}

	remove := RemoveFavorite("Heat")
	if remove.Op != OpRemoveFavorite || remove.Title != "Heat" {
		t.Errorf("unexpected remove command %+v", remove)
	}
	if remove.LabelKey() != KeyRemoveFromFavorites {
		t.Errorf("remove label key = %s", remove.LabelKey())
	}
}

func TestFavoriteOp_String(t *testing.T) {
	tests := map[FavoriteOp]string{
		OpAddFavorite:    "add",
		OpRemoveFavorite: "remove",
		FavoriteOp(7):    "FavoriteOp(7)",
	}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("FavoriteOp(%d).String() = %s, want %s", int(op), got, want)
		}
	}
}
