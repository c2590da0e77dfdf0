package data

import (
	"context"
	"database/sql"
	"time"
)

// MovieModel reads the catalog from the movies table.
type MovieModel struct {
	DB *sql.DB
}

// GetAll returns every row of the movies table ordered by id.
func (m MovieModel) GetAll(ctx context.Context) ([]Movie, error) {
	query := `
		SELECT id, title, genre, year, image
		FROM movies
		ORDER BY id ASC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var movie Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Year,
			&movie.Image,
		)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
