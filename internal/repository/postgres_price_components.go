package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgresPriceComponentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPriceComponentRepository(db *pgxpool.Pool) *PostgresPriceComponentRepository {
	return &PostgresPriceComponentRepository{
		db: db,
	}
}

func (p *PostgresPriceComponentRepository) Create(ctx context.Context, component *domain.PriceComponent) error {
	query := `INSERT INTO price_components (name, value) VALUES ($1, $2)`

	_, err := p.db.Exec(ctx, query, component.Name, component.Value)

	return translate(err)
}

func (p *PostgresPriceComponentRepository) GetByName(ctx context.Context, name string) (*domain.PriceComponent, error) {
	query := `SELECT name, value FROM price_components WHERE name = $1`

	var component domain.PriceComponent

	err := p.db.QueryRow(ctx, query, name).Scan(&component.Name, &component.Value)
	if err != nil {
		return nil, translate(err)
	}

	return &component, nil
}

func (p *PostgresPriceComponentRepository) Attach(ctx context.Context, attachment domain.Attachment) error {
	query := `
		INSERT INTO price_component_attachments (component_name, target, movie_title, room_name, starting_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.db.Exec(ctx,
		query,
		attachment.ComponentName,
		string(attachment.Target),
		attachment.MovieTitle,
		attachment.RoomName,
		attachment.StartingTime)

	return translate(err)
}

const sumAttachedQuery = `
	SELECT COALESCE(SUM(pc.value), 0)
	FROM price_component_attachments a
	JOIN price_components pc ON pc.name = a.component_name
	WHERE a.target = $1 AND a.movie_title = $2 AND a.room_name = $3 AND a.starting_time = $4
`

func (p *PostgresPriceComponentRepository) SumForMovie(ctx context.Context, title string) (int64, error) {
	return p.sum(ctx, domain.TargetMovie, title, "", "")
}

func (p *PostgresPriceComponentRepository) SumForRoom(ctx context.Context, name string) (int64, error) {
	return p.sum(ctx, domain.TargetRoom, "", name, "")
}

func (p *PostgresPriceComponentRepository) SumForScreening(ctx context.Context, key domain.ScreeningKey) (int64, error) {
	return p.sum(ctx, domain.TargetScreening, key.MovieTitle, key.RoomName, key.StartingTime)
}

func (p *PostgresPriceComponentRepository) sum(
	ctx context.Context,
	target domain.AttachmentTarget,
	movieTitle, roomName, startingTime string) (int64, error) {

	var total int64

	err := p.db.QueryRow(ctx, sumAttachedQuery, string(target), movieTitle, roomName, startingTime).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
