package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	metricExportInterval = 15 * time.Second
	telemetryStopTimeout = 5 * time.Second
)

// Telemetry owns the OpenTelemetry providers installed as globals.
type Telemetry struct {
	shutdowns []func(context.Context) error
}

// InitTelemetry installs trace, metric and log providers exporting to the collector.
// Without a collector URL the global no-op providers stay in place.
func InitTelemetry(cfg Config) (*Telemetry, error) {
	t := &Telemetry{}

	if cfg.OtelCollectorUrl == "" {
		return t, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx, resource.WithAttributes(serviceAttributes(cfg)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	for _, start := range []func(context.Context, Config, *resource.Resource) (func(context.Context) error, error){
		startTracing,
		startMetrics,
		startLogging,
	} {
		shutdown, err := start(ctx, cfg, res)
		if err != nil {
			return nil, errors.Join(err, t.Shutdown(ctx))
		}

		t.shutdowns = append(t.shutdowns, shutdown)
	}

	return t, nil
}

// Shutdown flushes and stops the providers in reverse start order.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, telemetryStopTimeout)
	defer cancel()

	var errs []error
	for i := len(t.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, t.shutdowns[i](ctx))
	}
	t.shutdowns = nil

	return errors.Join(errs...)
}

func serviceAttributes(cfg Config) []attribute.KeyValue {
	lockBackend := "local"
	if cfg.Redis.URL != "" {
		lockBackend = "redis"
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
		semconv.DeploymentEnvironment(cfg.Env),
		attribute.String("booking.lock.backend", lockBackend),
		attribute.String("booking.currency", domain.Currency),
	}

	if cfg.AMQP.URL != "" {
		attrs = append(attrs,
			semconv.MessagingSystemKey.String("rabbitmq"),
			attribute.String("booking.events.exchange", cfg.AMQP.Exchange),
		)
	}

	return attrs
}

func startTracing(ctx context.Context, cfg Config, res *resource.Resource) (func(context.Context) error, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.OtelCollectorUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return provider.Shutdown, nil
}

func startMetrics(ctx context.Context, cfg Config, res *resource.Resource) (func(context.Context) error, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(cfg.OtelCollectorUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval))),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

func startLogging(ctx context.Context, cfg Config, res *resource.Resource) (func(context.Context) error, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(cfg.OtelCollectorUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	global.SetLoggerProvider(provider)

	return provider.Shutdown, nil
}

type bookingMetrics struct {
	created metric.Int64Counter
	price   metric.Int64Histogram
	seats   metric.Int64Histogram
}

// newBookingMetrics registers the booking instruments on meter. An instrument that
// fails to register is left nil and skipped when recording.
func newBookingMetrics(meter metric.Meter, logger *slog.Logger) *bookingMetrics {
	m := &bookingMetrics{}

	var err error

	m.created, err = meter.Int64Counter("bookings.created",
		metric.WithDescription("Number of confirmed bookings"))
	if err != nil {
		logger.Warn("failed to register metric", "metric", "bookings.created", "error", err)
	}

	m.price, err = meter.Int64Histogram("bookings.price",
		metric.WithDescription("Total price of confirmed bookings"),
		metric.WithUnit(domain.Currency))
	if err != nil {
		logger.Warn("failed to register metric", "metric", "bookings.price", "error", err)
	}

	m.seats, err = meter.Int64Histogram("bookings.seats",
		metric.WithDescription("Number of seats per confirmed booking"))
	if err != nil {
		logger.Warn("failed to register metric", "metric", "bookings.seats", "error", err)
	}

	return m
}

func (m *bookingMetrics) record(ctx context.Context, booking *domain.Booking) {
	attrs := metric.WithAttributes(
		attribute.String("movie", booking.MovieTitle),
		attribute.String("room", booking.RoomName),
	)

	if m.created != nil {
		m.created.Add(ctx, 1, attrs)
	}
	if m.price != nil {
		m.price.Record(ctx, booking.Price, attrs)
	}
	if m.seats != nil {
		m.seats.Record(ctx, int64(len(booking.Seats)), attrs)
	}
}

// MultiHandler fans a slog record out to several handlers, e.g. stdout and the
// OpenTelemetry log bridge.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle passes a clone of the record to each handler enabled for its level.
// A failing handler does not stop the others.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			errs = append(errs, handler.Handle(ctx, record.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler { return handler.WithAttrs(attrs) })
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler { return handler.WithGroup(name) })
}

func (h *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = fn(handler)
	}

	return &MultiHandler{handlers: handlers}
}
