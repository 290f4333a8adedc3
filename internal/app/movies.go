package app

import (
	"net/http"

	"github.com/metinatakli/ticket-service/internal/domain"
)

func (app *Application) GetMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.catalog.ListMovies(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := MovieListResponse{Movies: make([]Movie, len(movies))}
	for i, movie := range movies {
		resp.Movies[i] = toApiMovie(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input Movie

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

	movie := domain.Movie{Title: input.Title, Genre: input.Genre, Runtime: input.Runtime}

	err = app.catalog.CreateMovie(r.Context(), &movie)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovieHandler(w http.ResponseWriter, r *http.Request) {
	title, err := readPathParam(r, "title")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input UpdateMovieRequest

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

	movie := domain.Movie{Title: title, Genre: input.Genre, Runtime: input.Runtime}

	err = app.catalog.UpdateMovie(r.Context(), &movie)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	title, err := readPathParam(r, "title")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.catalog.DeleteMovie(r.Context(), title)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiMovie(movie domain.Movie) Movie {
	return Movie{
		Title:   movie.Title,
		Genre:   movie.Genre,
		Runtime: movie.Runtime,
	}
}
