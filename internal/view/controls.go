package view

import (
	"fmt"

	"github.com/ejacobg/moviesapp/internal/data"
)

// YearControl is a single-select radio for one distinct release year.
type YearControl struct {
	Year    data.Year
	Checked bool
}

// ID matches the element id the page uses for the radio input.
func (c YearControl) ID() string {
	return "year-" + c.Year.String()
}

// GenreControl is a multi-select checkbox for one distinct genre.
type GenreControl struct {
	Genre   string
	Count   int
	Checked bool
}

func (c GenreControl) Label() string {
	return fmt.Sprintf("%s (%d)", c.Genre, c.Count)
}

// BuildYearControls returns one control per distinct year, ascending.
func BuildYearControls(movies []data.Movie) []YearControl {
	years := data.Years(movies)
	controls := make([]YearControl, 0, len(years))
	for _, y := range years {
		controls = append(controls, YearControl{Year: y})
	}
	return controls
}

// BuildGenreControls returns one control per distinct genre in the order the
// genres first appear.
func BuildGenreControls(movies []data.Movie) []GenreControl {
	counts := data.GenreCounts(movies)
	controls := make([]GenreControl, 0, len(counts))
	for _, gc := range counts {
		controls = append(controls, GenreControl{Genre: gc.Genre, Count: gc.Count})
	}
	return controls
}
