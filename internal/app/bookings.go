package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
)

const publishTimeout = 5 * time.Second

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input domain.BookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	unlock, err := app.locker.Lock(r.Context(), input.ScreeningKey().String())
	if err != nil {
		logger.Warn("could not lock screening for booking", "screening", input.ScreeningKey().String(), "error", err)
		app.domainErrorResponse(w, r, err)
		return
	}

	booking, err := app.engine.CreateBooking(r.Context(), input)
	unlock()

	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.metrics.record(r.Context(), booking)
	app.publishBookingConfirmed(r.Context(), booking)

	resp := BookingResponse{
		Message: domain.Confirmation(booking),
		Booking: toApiBooking(booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// publishBookingConfirmed never fails the request: the booking is already stored.
func (app *Application) publishBookingConfirmed(ctx context.Context, booking *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := app.publisher.PublishBookingConfirmed(ctx, booking)
	if err != nil {
		app.logger.Error("failed to publish booking confirmed event", "booking_id", booking.ID, "error", err)
	}
}

func (app *Application) GetBookingPriceHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.BookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	price, err := app.engine.GetPriceForBooking(r.Context(), input)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, PriceResponse{Price: newMoney(price)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	username, err := readPathParam(r, "username")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.engine.ListBookingsForUser(r.Context(), username)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := UserBookingsResponse{Bookings: make([]UserBooking, len(views))}
	for i, view := range views {
		resp.Bookings[i] = UserBooking{BookingView: view, Description: view.String()}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBasePriceHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, BasePriceResponse{BasePrice: newMoney(app.engine.BasePrice())}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SetBasePriceHandler(w http.ResponseWriter, r *http.Request) {
	var input BasePriceRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	app.engine.SetBasePrice(*input.Price)

	err = app.writeJSON(w, http.StatusOK, BasePriceResponse{BasePrice: newMoney(app.engine.BasePrice())}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
