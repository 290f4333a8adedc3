package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/ticket-service/internal/domain"
)

const (
	ErrRequired     = "is required"
	ErrMinValue     = "must be at least %s"
	ErrMaxValue     = "must be at most %s"
	ErrSeatList     = "must contain at least one seat"
	ErrStartingTime = "must be formatted as YYYY-MM-DD HH:MM"
	ErrOneOf        = "must be one of: %s"
	ErrInvalid      = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seats", validateSeats)
	validator.RegisterValidation("starting_time", validateStartingTime)

	return validator
}

// validateSeats rejects a list without any seat token. Malformed tokens pass: the
// booking engine reports them against the room so the offending seat can be named.
func validateSeats(fl validator.FieldLevel) bool {
	return len(domain.ParseSeats(fl.Field().String())) > 0
}

func validateStartingTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.StartingTimeLayout, fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_if", "required_unless":
		return ErrRequired
	case "min", "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max", "lte":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "seats":
		return ErrSeatList
	case "starting_time":
		return ErrStartingTime
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	default:
		return ErrInvalid
	}
}
