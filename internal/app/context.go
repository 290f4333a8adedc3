package app

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey string

const loggerContextKey = contextKey("logger")

func (app *Application) contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	ctx := context.WithValue(r.Context(), loggerContextKey, logger)
	return r.WithContext(ctx)
}

// contextGetLogger returns the request scoped logger, falling back to the
// application logger for requests that did not pass through requestLogger.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
