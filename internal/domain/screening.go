package domain

import (
	"context"
	"time"
)

// StartingTimeLayout is the format of screening starting times.
const StartingTimeLayout = "2006-01-02 15:04"

type Screening struct {
	ScreeningKey
}

// Start parses the starting time. It is only needed by the overlap scheduler;
// everywhere else the starting time is an opaque key.
func (s Screening) Start() (time.Time, error) {
	return time.Parse(StartingTimeLayout, s.StartingTime)
}

type ScreeningRepository interface {
	Create(ctx context.Context, screening *Screening) error
	Delete(ctx context.Context, key ScreeningKey) error
	GetAll(ctx context.Context) ([]Screening, error)
	GetAllByRoom(ctx context.Context, roomName string) ([]Screening, error)
	GetByKey(ctx context.Context, key ScreeningKey) (*Screening, error)
}

type ScreeningDirectory interface {
	GetScreeningByKey(ctx context.Context, key ScreeningKey) (*Screening, error)
}
