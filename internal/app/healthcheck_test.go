package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app, _ := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, statusUp, resp.Status)
	assert.Equal(t, "test", resp.SystemInfo.Environment)
	assert.Equal(t, version, resp.SystemInfo.Version)
	assert.Empty(t, resp.Dependencies)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/tickets", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	checkErrorResponse(t, w, http.StatusNotFound, "The requested resource not found")
}

func TestMethodNotAllowed(t *testing.T) {
	app, _ := newTestApplication()

	w, r := executeRequest(t, http.MethodPatch, "/healthcheck", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	checkErrorResponse(t, w, http.StatusMethodNotAllowed, "The PATCH method is not supported for this resource")
}

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication()

	handler := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w, r := executeRequest(t, http.MethodGet, "/", nil)

	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))
}
