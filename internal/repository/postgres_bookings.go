package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookingColumns = []string{
	"id", "movie_title", "room_name", "starting_time", "seats", "username", "price", "created_at",
}

var bookingSelectColumns = append([]string{"id::text"}, bookingColumns[1:]...)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Insert stores the booking and claims each of its seats. The booking_seats unique
// constraint rejects a seat another booking already holds; that surfaces as a
// *domain.SeatError wrapping domain.ErrSeatTaken for the first conflicting seat.
func (p *PostgresBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query, args, err := psql.Insert("bookings").
			Columns(bookingColumns...).
			Values(
				booking.ID,
				booking.MovieTitle,
				booking.RoomName,
				booking.StartingTime,
				domain.FormatSeats(booking.Seats),
				booking.Username,
				booking.Price,
				booking.CreatedAt,
			).
			ToSql()
		if err != nil {
			return err
		}

		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return translate(err)
		}

		batch := &pgx.Batch{}
		for _, seat := range booking.Seats {
			batch.Queue(`
				INSERT INTO booking_seats (booking_id, movie_title, room_name, starting_time, seat_row, seat_col)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				booking.ID,
				booking.MovieTitle,
				booking.RoomName,
				booking.StartingTime,
				seat.Row,
				seat.Col,
			)
		}

		results := tx.SendBatch(ctx, batch)

		for _, seat := range booking.Seats {
			if _, err = results.Exec(); err != nil {
				results.Close()

				if isUniqueViolation(err) {
					return &domain.SeatError{Seat: seat, Err: domain.ErrSeatTaken}
				}

				return err
			}
		}

		return results.Close()
	})
}

func (p *PostgresBookingRepository) FindByUser(ctx context.Context, username string) ([]domain.Booking, error) {
	return p.find(ctx, sq.Eq{"username": username})
}

func (p *PostgresBookingRepository) FindByScreening(ctx context.Context, key domain.ScreeningKey) ([]domain.Booking, error) {
	return p.find(ctx, sq.Eq{
		"movie_title":   key.MovieTitle,
		"room_name":     key.RoomName,
		"starting_time": key.StartingTime,
	})
}

func (p *PostgresBookingRepository) find(ctx context.Context, where sq.Sqlizer) ([]domain.Booking, error) {
	query, args, err := psql.Select(bookingSelectColumns...).
		From("bookings").
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}

	for rows.Next() {
		var (
			booking   domain.Booking
			seats     string
			createdAt time.Time
		)

		err = rows.Scan(
			&booking.ID,
			&booking.MovieTitle,
			&booking.RoomName,
			&booking.StartingTime,
			&seats,
			&booking.Username,
			&booking.Price,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		booking.Seats = domain.ParseSeats(seats)
		booking.CreatedAt = createdAt

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
