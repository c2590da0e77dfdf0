package data

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ejacobg/moviesapp/internal/validator"
	"github.com/goccy/go-json"
)

//go:embed "dataset"
var datasetFS embed.FS

var (
	ErrDuplicateID    = errors.New("duplicate movie id")
	ErrRecordNotFound = errors.New("record not found")
)

// InvalidMovieError reports a record that breaks the store invariants.
type InvalidMovieError struct {
	Index  int
	Errors map[string]string
}

func (e *InvalidMovieError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for k, msg := range e.Errors {
		fields = append(fields, k+" "+msg)
	}
	return fmt.Sprintf("invalid movie at index %d: %s", e.Index, strings.Join(fields, "; "))
}

// Store is the read-only, ordered set of movies loaded at startup.
type Store struct {
	movies []Movie
	byID   map[int64]int
	genres []string
}

// NewStore validates the records and keeps its own copy of them.
func NewStore(movies []Movie) (*Store, error) {
	s := &Store{
		movies: make([]Movie, len(movies)),
		byID:   make(map[int64]int, len(movies)),
	}
	copy(s.movies, movies)

	for i, m := range s.movies {
		v := validator.New()
		if ValidateMovie(v, m); !v.Valid() {
			return nil, &InvalidMovieError{Index: i, Errors: v.Errors}
		}
		if _, exists := s.byID[m.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}
		s.byID[m.ID] = i
		s.genres = append(s.genres, m.Genre)
	}
	s.genres = UniqueValues(s.genres)

	return s, nil
}

// All returns every movie in load order. The slice is a copy.
func (s *Store) All() []Movie {
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

func (s *Store) Len() int {
	return len(s.movies)
}

// Genres returns the distinct genres in first-occurrence order.
func (s *Store) Genres() []string {
	out := make([]string, len(s.genres))
	copy(out, s.genres)
	return out
}

func (s *Store) Get(id int64) (Movie, error) {
	i, ok := s.byID[id]
	if !ok {
		return Movie{}, ErrRecordNotFound
	}
	return s.movies[i], nil
}

// LoadJSON decodes a JSON array of movies. Unknown fields are rejected.
func LoadJSON(r io.Reader) ([]Movie, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var movies []Movie
	if err := dec.Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// LoadFile reads a JSON dataset from disk.
func LoadFile(path string) ([]Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}

// LoadDefault reads the dataset compiled into the binary.
func LoadDefault() ([]Movie, error) {
	f, err := datasetFS.Open("dataset/movies.json")
	if err != nil {
		return nil, fmt.Errorf("open embedded dataset: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}
