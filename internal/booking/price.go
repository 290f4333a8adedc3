package booking

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
)

// calculatePrice returns seats * (base + movie + room + screening adjustments).
func (e *Engine) calculatePrice(ctx context.Context, key domain.ScreeningKey, seats int) (int64, error) {
	movieAdj, err := e.prices.ForMovie(ctx, key.MovieTitle)
	if err != nil {
		return 0, err
	}

	roomAdj, err := e.prices.ForRoom(ctx, key.RoomName)
	if err != nil {
		return 0, err
	}

	screeningAdj, err := e.prices.ForScreening(ctx, key)
	if err != nil {
		return 0, err
	}

	perSeat := e.BasePrice() + movieAdj + roomAdj + screeningAdj

	return int64(seats) * perSeat, nil
}
