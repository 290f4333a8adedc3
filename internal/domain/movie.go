package domain

import "context"

type Movie struct {
	Title   string
	Genre   string
	Runtime int
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, title string) error
	GetAll(ctx context.Context) ([]Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
}
