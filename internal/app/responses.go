package app

import (
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status       string            `json:"status"`
	SystemInfo   SystemInfo        `json:"systemInfo"`
	Dependencies map[string]string `json:"dependencies"`
}

// Money renders an amount of whole currency units. Prices never have a minor part.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func newMoney(amount int64) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: domain.Currency}
}

type BookingResponse struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

type Booking struct {
	Id           string    `json:"id"`
	MovieTitle   string    `json:"movieTitle"`
	RoomName     string    `json:"roomName"`
	StartingTime string    `json:"startingTime"`
	Seats        []string  `json:"seats"`
	Username     string    `json:"username"`
	Price        Money     `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toApiBooking(b *domain.Booking) Booking {
	seats := make([]string, len(b.Seats))
	for i, seat := range b.Seats {
		seats[i] = seat.String()
	}

	return Booking{
		Id:           b.ID,
		MovieTitle:   b.MovieTitle,
		RoomName:     b.RoomName,
		StartingTime: b.StartingTime,
		Seats:        seats,
		Username:     b.Username,
		Price:        newMoney(b.Price),
		CreatedAt:    b.CreatedAt,
	}
}

type PriceResponse struct {
	Price Money `json:"price"`
}

type BasePriceRequest struct {
	Price *int64 `json:"price" validate:"required"`
}

type BasePriceResponse struct {
	BasePrice Money `json:"basePrice"`
}

type UserBookingsResponse struct {
	Bookings []UserBooking `json:"bookings"`
}

type UserBooking struct {
	domain.BookingView
	Description string `json:"description"`
}

type Movie struct {
	Title   string `json:"title" validate:"required"`
	Genre   string `json:"genre" validate:"required"`
	Runtime int    `json:"runtime" validate:"required,min=1"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type UpdateMovieRequest struct {
	Genre   string `json:"genre" validate:"required"`
	Runtime int    `json:"runtime" validate:"required,min=1"`
}

type Room struct {
	Name    string `json:"name" validate:"required"`
	Rows    int    `json:"rows" validate:"required,min=1"`
	Columns int    `json:"columns" validate:"required,min=1"`
}

type RoomListResponse struct {
	Rooms []Room `json:"rooms"`
}

type UpdateRoomRequest struct {
	Rows    int `json:"rows" validate:"required,min=1"`
	Columns int `json:"columns" validate:"required,min=1"`
}

type Screening struct {
	MovieTitle   string `json:"movieTitle" validate:"required"`
	RoomName     string `json:"roomName" validate:"required"`
	StartingTime string `json:"startingTime" validate:"required,starting_time"`
}

type ScreeningListResponse struct {
	Screenings []Screening `json:"screenings"`
}

type PriceComponent struct {
	Name  string `json:"name" validate:"required"`
	Value *int64 `json:"value" validate:"required"`
}

type AttachPriceComponentRequest struct {
	Target       string `json:"target" validate:"required,oneof=movie room screening"`
	MovieTitle   string `json:"movieTitle" validate:"required_unless=Target room"`
	RoomName     string `json:"roomName" validate:"required_unless=Target movie"`
	StartingTime string `json:"startingTime" validate:"required_if=Target screening"`
}
