package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrRecordAlreadyExists = errors.New("record already exists")
	ErrValidation          = errors.New("invalid booking request")
	ErrScreeningNotFound   = errors.New("screening not found")
	ErrInvalidSeat         = errors.New("seat does not exist in this room")
	ErrSeatTaken           = errors.New("seat is already taken")
	ErrInvalidBooking      = errors.New("booking cannot be priced")
	ErrScreeningBusy       = errors.New("screening is locked by another booking")

	ErrMovieNotFound          = errors.New("movie not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrPriceComponentNotFound = errors.New("price component not found")
	ErrOverlappingScreening   = errors.New("screening overlaps another screening")
	ErrBreakPeriod            = errors.New("screening starts in the break after another screening")
)

// SeatError ties a booking rejection to the seat that caused it.
type SeatError struct {
	Seat Seat
	Err  error
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("seat %s: %v", e.Seat, e.Err)
}

func (e *SeatError) Unwrap() error {
	return e.Err
}

// UserMessage renders a booking outcome the way it is shown to the customer.
func UserMessage(err error) string {
	var seatErr *SeatError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &seatErr) && errors.Is(err, ErrInvalidSeat):
		return fmt.Sprintf("Seat %s does not exists in this room", seatErr.Seat.Display())
	case errors.As(err, &seatErr) && errors.Is(err, ErrSeatTaken):
		return fmt.Sprintf("Seat %s is already taken", seatErr.Seat.Display())
	case errors.Is(err, ErrScreeningNotFound):
		return "Cannot find specified screening"
	case errors.Is(err, ErrInvalidBooking):
		return "Invalid arguments given"
	case errors.Is(err, ErrScreeningBusy):
		return "The screening is being booked, please try again"
	case errors.Is(err, ErrMovieNotFound):
		return "No movie can be found with the specified title"
	case errors.Is(err, ErrRoomNotFound):
		return "No room can be found with the specified name"
	case errors.Is(err, ErrPriceComponentNotFound):
		return "No price component exists with such name"
	case errors.Is(err, ErrOverlappingScreening):
		return "There is an overlapping screening"
	case errors.Is(err, ErrBreakPeriod):
		return "This would start in the break period after another screening in this room"
	case errors.Is(err, ErrValidation):
		return "Every booking field is required"
	default:
		return "The server encountered a problem and could not process your request"
	}
}
