package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBookingHandler)
		r.Post("/price", app.GetBookingPriceHandler)
	})

	r.Get("/users/{username}/bookings", app.GetBookingsOfUserHandler)

	r.Route("/admin/base-price", func(r chi.Router) {
		r.Get("/", app.GetBasePriceHandler)
		r.Put("/", app.SetBasePriceHandler)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMoviesHandler)
		r.Post("/", app.CreateMovieHandler)
		r.Put("/{title}", app.UpdateMovieHandler)
		r.Delete("/{title}", app.DeleteMovieHandler)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", app.GetRoomsHandler)
		r.Post("/", app.CreateRoomHandler)
		r.Put("/{name}", app.UpdateRoomHandler)
		r.Delete("/{name}", app.DeleteRoomHandler)
	})

	r.Route("/screenings", func(r chi.Router) {
		r.Get("/", app.GetScreeningsHandler)
		r.Post("/", app.CreateScreeningHandler)
		r.Delete("/", app.DeleteScreeningHandler)
	})

	r.Route("/price-components", func(r chi.Router) {
		r.Post("/", app.CreatePriceComponentHandler)
		r.Post("/{name}/attachments", app.AttachPriceComponentHandler)
	})

	return r
}
