package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmation(t *testing.T) {
	b := &Booking{Seats: ParseSeats("5,5 5,6"), Price: 3000}

	assert.Equal(t, "Seats booked: (5,5), (5,6); the price for this booking is 3000 HUF", Confirmation(b))
}

func TestBookingViewString(t *testing.T) {
	v := NewBookingView(&Booking{
		MovieTitle:   "Sátántangó",
		RoomName:     "Pedersoli",
		StartingTime: "2021-03-15 10:45",
		Seats:        ParseSeats("5,5 5,6"),
		Username:     "sanyi",
		Price:        3000,
	})

	assert.Equal(t, "5,5 5,6", v.Seats)
	assert.Equal(t,
		"Seats (5,5), (5,6) on Sátántangó in room Pedersoli starting at 2021-03-15 10:45 for 3000 HUF",
		v.String())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "screening not found", err: ErrScreeningNotFound, want: "Cannot find specified screening"},
		{
			name: "invalid seat",
			err:  &SeatError{Seat: Seat{Row: 8, Col: 10}, Err: ErrInvalidSeat},
			want: "Seat (8,10) does not exists in this room",
		},
		{
			name: "wrapped seat taken",
			err:  fmt.Errorf("insert: %w", &SeatError{Seat: Seat{Row: 5, Col: 5}, Err: ErrSeatTaken}),
			want: "Seat (5,5) is already taken",
		},
		{name: "invalid booking", err: fmt.Errorf("%w: %w", ErrInvalidBooking, ErrRecordNotFound), want: "Invalid arguments given"},
		{name: "busy", err: ErrScreeningBusy, want: "The screening is being booked, please try again"},
		{name: "unexpected", err: fmt.Errorf("boom"), want: "The server encountered a problem and could not process your request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
