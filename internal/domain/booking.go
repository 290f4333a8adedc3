package domain

import (
	"context"
	"fmt"
	"time"
)

const Currency = "HUF"

// ScreeningKey is the natural key of a screening. Bookings embed a copy of it.
type ScreeningKey struct {
	MovieTitle   string
	RoomName     string
	StartingTime string
}

func (k ScreeningKey) String() string {
	return fmt.Sprintf("%s|%s|%s", k.MovieTitle, k.RoomName, k.StartingTime)
}

type BookingRequest struct {
	MovieTitle   string `json:"movieTitle" validate:"required"`
	RoomName     string `json:"roomName" validate:"required"`
	StartingTime string `json:"startingTime" validate:"required"`
	Seats        string `json:"seats" validate:"required,seats"`
	Username     string `json:"username" validate:"required"`
}

func (r BookingRequest) ScreeningKey() ScreeningKey {
	return ScreeningKey{
		MovieTitle:   r.MovieTitle,
		RoomName:     r.RoomName,
		StartingTime: r.StartingTime,
	}
}

type Booking struct {
	ID           string
	MovieTitle   string
	RoomName     string
	StartingTime string
	Seats        []Seat
	Username     string
	Price        int64
	CreatedAt    time.Time
}

func (b *Booking) ScreeningKey() ScreeningKey {
	return ScreeningKey{
		MovieTitle:   b.MovieTitle,
		RoomName:     b.RoomName,
		StartingTime: b.StartingTime,
	}
}

// Confirmation is the message shown after a successful booking.
func Confirmation(b *Booking) string {
	return fmt.Sprintf("Seats booked: %s; the price for this booking is %d %s",
		DisplaySeats(b.Seats), b.Price, Currency)
}

type BookingView struct {
	ID           string `json:"id"`
	MovieTitle   string `json:"movieTitle"`
	RoomName     string `json:"roomName"`
	StartingTime string `json:"startingTime"`
	Seats        string `json:"seats"`
	Username     string `json:"username"`
	Price        int64  `json:"price"`
}

func NewBookingView(b *Booking) BookingView {
	return BookingView{
		ID:           b.ID,
		MovieTitle:   b.MovieTitle,
		RoomName:     b.RoomName,
		StartingTime: b.StartingTime,
		Seats:        FormatSeats(b.Seats),
		Username:     b.Username,
		Price:        b.Price,
	}
}

func (v BookingView) SeatsDisplay() string {
	return DisplaySeats(ParseSeats(v.Seats))
}

func (v BookingView) String() string {
	return fmt.Sprintf("Seats %s on %s in room %s starting at %s for %d %s",
		v.SeatsDisplay(), v.MovieTitle, v.RoomName, v.StartingTime, v.Price, Currency)
}

type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) error
	FindByUser(ctx context.Context, username string) ([]Booking, error)
	FindByScreening(ctx context.Context, key ScreeningKey) ([]Booking, error)
}

type BookingPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *Booking) error
}
