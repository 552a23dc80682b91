package model

// GenreID is a catalog genre identifier. GenreAll means no genre constraint.
type GenreID int

// Catalog genres offered in the recommendations filter
const (
	GenreAll     GenreID = 0
	GenreAction  GenreID = 28
	GenreComedy  GenreID = 35
	GenreDrama   GenreID = 18
	GenreRomance GenreID = 10749
)

// Genre pairs a catalog genre id with its display name
type Genre struct {
	ID   GenreID
	Name string
}

// IsAll reports whether the genre places no constraint on discovery
func (g GenreID) IsAll() bool {
	return g == GenreAll
}

// Genres returns the selectable genres in display order, "All" first
func Genres() []Genre {
	return []Genre{
		{ID: GenreAll, Name: "All"},
		{ID: GenreAction, Name: "Action"},
		{ID: GenreComedy, Name: "Comedy"},
		{ID: GenreDrama, Name: "Drama"},
		{ID: GenreRomance, Name: "Romance"},
	}
}

// GenreByName looks up a genre by its display name
func GenreByName(name string) (Genre, bool) {
	for _, g := range Genres() {
		if g.Name == name {
			return g, true
		}
	}
	return Genre{}, false
}
