package model

import (
	"strconv"
	"strings"
)

// NotRated is shown in place of a rating when the catalog omits vote_average
const NotRated = "Not Rated"

// Movie is a single catalog record as returned by the discover and search endpoints
type Movie struct {
	Title       string   `json:"title"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
}

// MoviePage is the envelope of a catalog list response
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// HasRating reports whether the catalog supplied a vote average
func (m Movie) HasRating() bool {
	return m.VoteAverage != nil
}

// RatingText returns the vote average for display, or NotRated when absent.
// Whole values keep one decimal so 8 renders as "8.0".
func (m Movie) RatingText() string {
	if m.VoteAverage == nil {
		return NotRated
	}

	v := *m.VoteAverage
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DisplayTitle returns the title with line breaks and tabs collapsed to spaces
func (m Movie) DisplayTitle() string {
	title := strings.ReplaceAll(m.Title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.TrimSpace(title)
}

// Year returns the release year, or an empty string if unknown
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}
