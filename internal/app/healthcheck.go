package app

import (
	"context"
	"net/http"
	"time"
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthcheckResponse{
		Status: statusUp,
		SystemInfo: SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
		Dependencies: map[string]string{},
	}

	if app.db != nil {
		resp.Dependencies["postgres"] = statusUp
		if err := app.db.Ping(ctx); err != nil {
			app.contextGetLogger(r).Error("postgres healthcheck failed", "error", err)
			resp.Dependencies["postgres"] = statusDown
			resp.Status = statusDown
		}
	}

	if app.redis != nil {
		resp.Dependencies["redis"] = statusUp
		if err := app.redis.Ping(ctx).Err(); err != nil {
			app.contextGetLogger(r).Error("redis healthcheck failed", "error", err)
			resp.Dependencies["redis"] = statusDown
			resp.Status = statusDown
		}
	}

	status := http.StatusOK
	if resp.Status == statusDown {
		status = http.StatusServiceUnavailable
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
