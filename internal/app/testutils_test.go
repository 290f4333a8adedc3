package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/metinatakli/ticket-service/internal/booking"
	"github.com/metinatakli/ticket-service/internal/catalog"
	"github.com/metinatakli/ticket-service/internal/lock"
	"github.com/metinatakli/ticket-service/internal/mocks"
	"github.com/metinatakli/ticket-service/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

// testDeps holds the mocked collaborators behind a test application.
type testDeps struct {
	rooms      *mocks.MockRoomDirectory
	screenings *mocks.MockScreeningDirectory
	prices     *mocks.MockPriceLookup
	bookings   *mocks.MockBookingStore
	publisher  *mocks.MockBookingPublisher

	movieRepo          *mocks.MockMovieRepo
	roomRepo           *mocks.MockRoomRepo
	screeningRepo      *mocks.MockScreeningRepo
	priceComponentRepo *mocks.MockPriceComponentRepo
}

func (d *testDeps) assertExpectations(t *testing.T) {
	d.rooms.AssertExpectations(t)
	d.screenings.AssertExpectations(t)
	d.prices.AssertExpectations(t)
	d.bookings.AssertExpectations(t)
	d.publisher.AssertExpectations(t)
	d.movieRepo.AssertExpectations(t)
	d.roomRepo.AssertExpectations(t)
	d.screeningRepo.AssertExpectations(t)
	d.priceComponentRepo.AssertExpectations(t)
}

func newTestApplication(opts ...func(*Application)) (*Application, *testDeps) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := validator.NewValidator()

	deps := &testDeps{
		rooms:              new(mocks.MockRoomDirectory),
		screenings:         new(mocks.MockScreeningDirectory),
		prices:             new(mocks.MockPriceLookup),
		bookings:           new(mocks.MockBookingStore),
		publisher:          new(mocks.MockBookingPublisher),
		movieRepo:          new(mocks.MockMovieRepo),
		roomRepo:           new(mocks.MockRoomRepo),
		screeningRepo:      new(mocks.MockScreeningRepo),
		priceComponentRepo: new(mocks.MockPriceComponentRepo),
	}

	app := &Application{
		config:    Config{Env: "test"},
		logger:    logger,
		validator: v,
		engine: booking.NewEngine(
			logger, v, deps.rooms, deps.screenings, deps.prices, deps.bookings, booking.DefaultBasePrice,
		),
		catalog: catalog.NewService(
			logger, deps.movieRepo, deps.roomRepo, deps.screeningRepo, deps.priceComponentRepo,
		),
		locker:    lock.NewLocalLocker(lock.DefaultWait),
		publisher: deps.publisher,
		metrics:   newBookingMetrics(noop.NewMeterProvider().Meter(serviceName), logger),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, deps
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Field+" "+vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error '%s' not found in response %+v", wantErrMessage, validationResp.ValidationErrors)
		}

	default:
		var errorResp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}

// busyLocker never grants a lock.
type busyLocker struct {
	err error
}

func (l busyLocker) Lock(context.Context, string) (func(), error) {
	return nil, l.err
}

func ptr[T any](v T) *T {
	return &v
}
