package domain

import "context"

type Room struct {
	Name    string
	Rows    int
	Columns int
}

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, name string) error
	GetAll(ctx context.Context) ([]Room, error)
	GetByName(ctx context.Context, name string) (*Room, error)
}

// RoomDirectory is the read accessor the booking engine uses to resolve room geometry.
type RoomDirectory interface {
	GetRoomByName(ctx context.Context, name string) (*Room, error)
}
