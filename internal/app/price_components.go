package app

import (
	"net/http"

	"github.com/metinatakli/ticket-service/internal/domain"
)

func (app *Application) CreatePriceComponentHandler(w http.ResponseWriter, r *http.Request) {
	var input PriceComponent

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

	component := domain.PriceComponent{Name: input.Name, Value: *input.Value}

	err = app.catalog.CreatePriceComponent(r.Context(), &component)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, input, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AttachPriceComponentHandler(w http.ResponseWriter, r *http.Request) {
	name, err := readPathParam(r, "name")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input AttachPriceComponentRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	attachment := domain.Attachment{
		ComponentName: name,
		Target:        domain.AttachmentTarget(input.Target),
		MovieTitle:    input.MovieTitle,
		RoomName:      input.RoomName,
		StartingTime:  input.StartingTime,
	}

	err = app.catalog.AttachPriceComponent(r.Context(), attachment)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
