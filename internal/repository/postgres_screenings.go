package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) Create(ctx context.Context, screening *domain.Screening) error {
	query := `INSERT INTO screenings (movie_title, room_name, starting_time) VALUES ($1, $2, $3)`

	_, err := p.db.Exec(ctx, query, screening.MovieTitle, screening.RoomName, screening.StartingTime)

	return translate(err)
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, key domain.ScreeningKey) error {
	query := `DELETE FROM screenings WHERE movie_title = $1 AND room_name = $2 AND starting_time = $3`

	return affectedOne(p.db.Exec(ctx, query, key.MovieTitle, key.RoomName, key.StartingTime))
}

func (p *PostgresScreeningRepository) GetAll(ctx context.Context) ([]domain.Screening, error) {
	query := `
		SELECT movie_title, room_name, starting_time
		FROM screenings
		ORDER BY starting_time, room_name, movie_title
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectScreenings(rows)
}

func (p *PostgresScreeningRepository) GetAllByRoom(ctx context.Context, roomName string) ([]domain.Screening, error) {
	query := `
		SELECT movie_title, room_name, starting_time
		FROM screenings
		WHERE room_name = $1
		ORDER BY starting_time
	`

	rows, err := p.db.Query(ctx, query, roomName)
	if err != nil {
		return nil, err
	}

	return collectScreenings(rows)
}

func (p *PostgresScreeningRepository) GetByKey(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	query := `
		SELECT movie_title, room_name, starting_time
		FROM screenings
		WHERE movie_title = $1 AND room_name = $2 AND starting_time = $3
	`

	var screening domain.Screening

	err := p.db.QueryRow(ctx, query, key.MovieTitle, key.RoomName, key.StartingTime).Scan(
		&screening.MovieTitle,
		&screening.RoomName,
		&screening.StartingTime,
	)
	if err != nil {
		return nil, translate(err)
	}

	return &screening, nil
}

func collectScreenings(rows pgx.Rows) ([]domain.Screening, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Screening, error) {
		var screening domain.Screening

		err := row.Scan(&screening.MovieTitle, &screening.RoomName, &screening.StartingTime)

		return screening, err
	})
}
