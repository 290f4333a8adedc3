package app

import (
	"net/http"

	"github.com/metinatakli/ticket-service/internal/domain"
)

func (app *Application) GetScreeningsHandler(w http.ResponseWriter, r *http.Request) {
	screenings, err := app.catalog.ListScreenings(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := ScreeningListResponse{Screenings: make([]Screening, len(screenings))}
	for i, screening := range screenings {
		resp.Screenings[i] = toApiScreening(screening)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreeningHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readScreening(w, r)
	if !ok {
		return
	}

	screening := domain.Screening{ScreeningKey: domain.ScreeningKey{
		MovieTitle:   input.MovieTitle,
		RoomName:     input.RoomName,
		StartingTime: input.StartingTime,
	}}

	err := app.catalog.CreateScreening(r.Context(), &screening)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiScreening(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteScreeningHandler takes the screening key in the body since starting
// times do not travel well in a path.
func (app *Application) DeleteScreeningHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readScreening(w, r)
	if !ok {
		return
	}

	err := app.catalog.DeleteScreening(r.Context(), domain.ScreeningKey{
		MovieTitle:   input.MovieTitle,
		RoomName:     input.RoomName,
		StartingTime: input.StartingTime,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) readScreening(w http.ResponseWriter, r *http.Request) (Screening, bool) {
	var input Screening

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return input, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return input, false
	}

	return input, true
}

func toApiScreening(screening domain.Screening) Screening {
	return Screening{
		MovieTitle:   screening.MovieTitle,
		RoomName:     screening.RoomName,
		StartingTime: screening.StartingTime,
	}
}
