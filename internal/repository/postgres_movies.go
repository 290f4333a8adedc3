package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, genre, runtime) VALUES ($1, $2, $3)`

	_, err := p.db.Exec(ctx, query, movie.Title, movie.Genre, movie.Runtime)

	return translate(err)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies SET genre = $2, runtime = $3 WHERE title = $1`

	return affectedOne(p.db.Exec(ctx, query, movie.Title, movie.Genre, movie.Runtime))
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, title string) error {
	return affectedOne(p.db.Exec(ctx, `DELETE FROM movies WHERE title = $1`, title))
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT title, genre, runtime FROM movies ORDER BY title`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(&movie.Title, &movie.Genre, &movie.Runtime)
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

func (p *PostgresMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `SELECT title, genre, runtime FROM movies WHERE title = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, title).Scan(&movie.Title, &movie.Genre, &movie.Runtime)
	if err != nil {
		return nil, translate(err)
	}

	return &movie, nil
}
