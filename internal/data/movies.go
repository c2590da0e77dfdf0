package data

import "github.com/ejacobg/moviesapp/internal/validator"

type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"` // A movie carries exactly one genre.
	Year  Year   `json:"year"`  // Year of release.
	Image string `json:"image,omitempty"`
}

// ValidateMovie checks the invariants every record in the store must hold.
func ValidateMovie(v *validator.Validator, movie Movie) {
	v.Check(movie.ID > 0, "id", "must be a positive integer")
	v.Check(movie.Title != "", "title", "must be provided")
	v.Check(movie.Genre != "", "genre", "must be provided")
	v.Check(movie.Year >= MinYear, "year", "must be greater than 1887")
	v.Check(movie.Year <= MaxYear, "year", "must be a four digit year")
}
