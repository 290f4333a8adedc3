package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

func (p *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (name, seat_rows, seat_columns) VALUES ($1, $2, $3)`

	_, err := p.db.Exec(ctx, query, room.Name, room.Rows, room.Columns)

	return translate(err)
}

func (p *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET seat_rows = $2, seat_columns = $3 WHERE name = $1`

	return affectedOne(p.db.Exec(ctx, query, room.Name, room.Rows, room.Columns))
}

func (p *PostgresRoomRepository) Delete(ctx context.Context, name string) error {
	return affectedOne(p.db.Exec(ctx, `DELETE FROM rooms WHERE name = $1`, name))
}

func (p *PostgresRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT name, seat_rows, seat_columns FROM rooms ORDER BY name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.Room{}

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(&room.Name, &room.Rows, &room.Columns)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (p *PostgresRoomRepository) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	query := `SELECT name, seat_rows, seat_columns FROM rooms WHERE name = $1`

	var room domain.Room

	err := p.db.QueryRow(ctx, query, name).Scan(&room.Name, &room.Rows, &room.Columns)
	if err != nil {
		return nil, translate(err)
	}

	return &room, nil
}
