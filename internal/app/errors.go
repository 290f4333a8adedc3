package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/ticket-service/internal/domain"
	appvalidator "github.com/metinatakli/ticket-service/internal/validator"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "The " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusConflict, message)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := ValidationErrorResponse{
		Message:          "One or more fields have invalid values",
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]ValidationError, 0, len(validationErrors)),
	}

	for _, fieldErr := range validationErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// domainErrorResponse maps booking and catalog outcomes onto status codes. The
// message is the customer facing text of the outcome.
func (app *Application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	message := domain.UserMessage(err)

	switch {
	case errors.Is(err, domain.ErrValidation):
		app.failedValidationResponse(w, r, err)
	case errors.Is(err, domain.ErrScreeningNotFound),
		errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrPriceComponentNotFound):
		app.errorResponse(w, r, http.StatusNotFound, message)
	case errors.Is(err, domain.ErrInvalidSeat):
		app.errorResponse(w, r, http.StatusBadRequest, message)
	case errors.Is(err, domain.ErrSeatTaken),
		errors.Is(err, domain.ErrScreeningBusy),
		errors.Is(err, domain.ErrOverlappingScreening),
		errors.Is(err, domain.ErrBreakPeriod):
		app.conflictResponse(w, r, message)
	case errors.Is(err, domain.ErrRecordAlreadyExists):
		app.conflictResponse(w, r, "A record with the same key already exists")
	case errors.Is(err, domain.ErrInvalidBooking):
		app.logError(r, err)
		app.errorResponse(w, r, http.StatusInternalServerError, message)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
