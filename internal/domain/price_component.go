package domain

import "context"

type PriceComponent struct {
	Name  string
	Value int64
}

type AttachmentTarget string

const (
	TargetMovie     AttachmentTarget = "movie"
	TargetRoom      AttachmentTarget = "room"
	TargetScreening AttachmentTarget = "screening"
)

// Attachment binds a price component to a movie, a room or a screening.
// Only the key fields relevant for Target are set.
type Attachment struct {
	ComponentName string
	Target        AttachmentTarget
	MovieTitle    string
	RoomName      string
	StartingTime  string
}

type PriceComponentRepository interface {
	Create(ctx context.Context, component *PriceComponent) error
	GetByName(ctx context.Context, name string) (*PriceComponent, error)
	Attach(ctx context.Context, attachment Attachment) error
	SumForMovie(ctx context.Context, title string) (int64, error)
	SumForRoom(ctx context.Context, name string) (int64, error)
	SumForScreening(ctx context.Context, key ScreeningKey) (int64, error)
}

// PriceAdjustmentLookup returns the accumulated adjustment attached to each priced entity.
// An unknown entity is reported with ErrRecordNotFound.
type PriceAdjustmentLookup interface {
	ForMovie(ctx context.Context, title string) (int64, error)
	ForRoom(ctx context.Context, name string) (int64, error)
	ForScreening(ctx context.Context, key ScreeningKey) (int64, error)
}
