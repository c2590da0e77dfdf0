package data

import (
	"strings"

	"github.com/ejacobg/moviesapp/internal/validator"
	"golang.org/x/exp/slices"
)

// Names of the filter parameters a Query may carry.
const (
	FilterTitle  = "title"
	FilterYear   = "year"
	FilterGenres = "genres"
)

// FilterSafelist defines all the filter names a Query may refer to.
var FilterSafelist = []string{FilterTitle, FilterYear, FilterGenres}

// Predicate reports whether a movie belongs to a filtered subset.
type Predicate func(Movie) bool

// MatchesTitle reports whether the movie's title contains query, ignoring
// case. The query is not trimmed, so an empty query matches every movie.
func MatchesTitle(movie Movie, query string) bool {
	return strings.Contains(strings.ToLower(movie.Title), strings.ToLower(query))
}

func TitlePredicate(query string) Predicate {
	return func(m Movie) bool {
		return MatchesTitle(m, query)
	}
}

func YearPredicate(year Year) Predicate {
	return func(m Movie) bool {
		return m.Year == year
	}
}

// GenrePredicate matches movies whose genre is a member of genres. An empty
// set matches nothing.
func GenrePredicate(genres []string) Predicate {
	set := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		set[g] = struct{}{}
	}
	return func(m Movie) bool {
		_, ok := set[m.Genre]
		return ok
	}
}

// Select returns the movies accepted by p, in their original order.
func Select(movies []Movie, p Predicate) []Movie {
	matched := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if p(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// UniqueValues removes duplicates, keeping the first occurrence of each value
// in its original position.
func UniqueValues[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	unique := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

// Years returns the distinct release years in ascending order.
func Years(movies []Movie) []Year {
	years := make([]Year, 0, len(movies))
	for _, m := range movies {
		years = append(years, m.Year)
	}
	years = UniqueValues(years)
	slices.Sort(years)
	return years
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// GenreCounts counts the movies per genre. Genres appear in the order they
// are first seen, not sorted.
func GenreCounts(movies []Movie) []GenreCount {
	var counts []GenreCount
	index := make(map[string]int)
	for _, m := range movies {
		if i, ok := index[m.Genre]; ok {
			counts[i].Count++
			continue
		}
		index[m.Genre] = len(counts)
		counts = append(counts, GenreCount{Genre: m.Genre, Count: 1})
	}
	return counts
}

// Query describes a single stateless filter over the store. Filters lists the
// parameters that were supplied, in the order they were read.
type Query struct {
	Title   string
	Year    Year
	Genres  []string
	Filters []string
}

// ValidateQuery checks q against the filter safelist. Requested genres must
// appear in known.
func ValidateQuery(v *validator.Validator, q Query, known []string) {
	v.Check(len(q.Filters) <= 1, "filter", "only one of title, year or genres may be supplied")
	for _, f := range q.Filters {
		v.Check(validator.In(f, FilterSafelist...), "filter", "invalid filter value")
	}

	if validator.In(FilterYear, q.Filters...) {
		v.Check(q.Year >= MinYear, "year", "must be greater than 1887")
		v.Check(q.Year <= MaxYear, "year", "must be a four digit year")
	}

	if validator.In(FilterGenres, q.Filters...) {
		v.Check(len(q.Genres) > 0, "genres", "must contain at least 1 genre")
		v.Check(validator.Unique(q.Genres), "genres", "must not contain duplicate values")
		for _, g := range q.Genres {
			v.Check(validator.In(g, known...), "genres", "must contain only known genres")
		}
	}
}

// Predicate builds the predicate for the query. With no filter supplied every
// movie matches. If Filters holds an unknown name, this routine will panic.
func (q Query) Predicate() Predicate {
	if len(q.Filters) == 0 {
		return func(Movie) bool { return true }
	}

	switch q.Filters[0] {
	case FilterTitle:
		return TitlePredicate(q.Title)
	case FilterYear:
		return YearPredicate(q.Year)
	case FilterGenres:
		return GenrePredicate(q.Genres)
	}
	// The ValidateQuery call will check for correctness, but this is here just in case.
	panic("unsafe filter parameter: " + q.Filters[0])
}
