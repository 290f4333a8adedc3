package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/metinatakli/ticket-service/internal/domain"
)

const DefaultBasePrice int64 = 1500

// Engine validates seat bookings against screenings, room geometry and existing
// bookings, and prices them. It holds no locks: callers that need protection
// against concurrent bookings of the same screening serialize around CreateBooking.
type Engine struct {
	logger     *slog.Logger
	validator  *validator.Validate
	rooms      domain.RoomDirectory
	screenings domain.ScreeningDirectory
	prices     domain.PriceAdjustmentLookup
	bookings   domain.BookingStore
	basePrice  atomic.Int64
	now        func() time.Time
}

func NewEngine(
	logger *slog.Logger,
	validator *validator.Validate,
	rooms domain.RoomDirectory,
	screenings domain.ScreeningDirectory,
	prices domain.PriceAdjustmentLookup,
	bookings domain.BookingStore,
	basePrice int64) *Engine {

	e := &Engine{
		logger:     logger,
		validator:  validator,
		rooms:      rooms,
		screenings: screenings,
		prices:     prices,
		bookings:   bookings,
		now:        time.Now,
	}
	e.basePrice.Store(basePrice)

	return e
}

func (e *Engine) BasePrice() int64 {
	return e.basePrice.Load()
}

// SetBasePrice replaces the per-seat base price. Negative values are accepted.
func (e *Engine) SetBasePrice(price int64) {
	old := e.basePrice.Swap(price)

	if price < 0 {
		e.logger.Warn("base price set to a negative value", "old_base_price", old, "base_price", price)
		return
	}

	e.logger.Info("base price updated", "old_base_price", old, "base_price", price)
}

func (e *Engine) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	err := e.validator.Struct(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	key := req.ScreeningKey()
	logger := e.logger.With("screening", key.String(), "username", req.Username)

	_, err = e.screenings.GetScreeningByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Warn("booking rejected: screening not found")
			return nil, domain.ErrScreeningNotFound
		}

		return nil, err
	}

	seats := domain.ParseSeats(req.Seats)

	err = e.checkSeatsInRoom(ctx, key.RoomName, seats)
	if err != nil {
		logger.Warn("booking rejected", "error", err)
		return nil, err
	}

	err = e.checkSeatsFree(ctx, key, seats)
	if err != nil {
		logger.Warn("booking rejected", "error", err)
		return nil, err
	}

	price, err := e.calculatePrice(ctx, key, len(seats))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Error("screening disappeared while booking", "error", err)
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidBooking, err)
		}

		return nil, err
	}

	booking := &domain.Booking{
		ID:           uuid.New().String(),
		MovieTitle:   key.MovieTitle,
		RoomName:     key.RoomName,
		StartingTime: key.StartingTime,
		Seats:        seats,
		Username:     req.Username,
		Price:        price,
		CreatedAt:    e.now(),
	}

	err = e.bookings.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	logger.Info("booking created", "booking_id", booking.ID, "seats", domain.FormatSeats(seats), "price", price)

	return booking, nil
}

// GetPriceForBooking prices a request without checking seats or persisting anything.
// It returns domain.ErrScreeningNotFound when the screening cannot be resolved.
func (e *Engine) GetPriceForBooking(ctx context.Context, req domain.BookingRequest) (int64, error) {
	key := req.ScreeningKey()

	_, err := e.screenings.GetScreeningByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, domain.ErrScreeningNotFound
		}

		return 0, err
	}

	price, err := e.calculatePrice(ctx, key, len(domain.ParseSeats(req.Seats)))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, domain.ErrScreeningNotFound
		}

		return 0, err
	}

	return price, nil
}

func (e *Engine) ListBookingsForUser(ctx context.Context, username string) ([]domain.BookingView, error) {
	bookings, err := e.bookings.FindByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	views := make([]domain.BookingView, len(bookings))
	for i := range bookings {
		views[i] = domain.NewBookingView(&bookings[i])
	}

	return views, nil
}
