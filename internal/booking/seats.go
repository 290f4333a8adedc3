package booking

import (
	"context"
	"fmt"

	"github.com/metinatakli/ticket-service/internal/domain"
)

// checkSeatsInRoom reports the first seat, in request order, outside the room.
// The room is expected to exist since the screening references it.
func (e *Engine) checkSeatsInRoom(ctx context.Context, roomName string, seats []domain.Seat) error {
	room, err := e.rooms.GetRoomByName(ctx, roomName)
	if err != nil {
		return fmt.Errorf("failed to resolve room %q: %w", roomName, err)
	}

	for _, seat := range seats {
		if !seat.InRoom(room) {
			return &domain.SeatError{Seat: seat, Err: domain.ErrInvalidSeat}
		}
	}

	return nil
}

// checkSeatsFree reports the first requested seat already held by any booking of
// the screening, or listed twice in the request.
func (e *Engine) checkSeatsFree(ctx context.Context, key domain.ScreeningKey, seats []domain.Seat) error {
	existing, err := e.bookings.FindByScreening(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to fetch bookings of screening: %w", err)
	}

	taken := domain.NewSeatSet()
	for _, b := range existing {
		taken.Add(b.Seats...)
	}

	requested := domain.NewSeatSet()

	for _, seat := range seats {
		if taken.Contains(seat) || requested.Contains(seat) {
			return &domain.SeatError{Seat: seat, Err: domain.ErrSeatTaken}
		}

		requested.Add(seat)
	}

	return nil
}
