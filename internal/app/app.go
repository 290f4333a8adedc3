package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/booking"
	"github.com/metinatakli/ticket-service/internal/catalog"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/metinatakli/ticket-service/internal/events"
	"github.com/metinatakli/ticket-service/internal/lock"
	"github.com/metinatakli/ticket-service/internal/repository"
	appvalidator "github.com/metinatakli/ticket-service/internal/validator"
	"github.com/metinatakli/ticket-service/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

var (
	version = vcs.Version()
)

const serviceName = "ticket-service"

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	engine    *booking.Engine
	catalog   *catalog.Service
	locker    lock.Locker
	publisher domain.BookingPublisher
	metrics   *bookingMetrics
}

func Run() error {
	cfg, displayVersion, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	telemetry, err := InitTelemetry(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	defer func() {
		err := telemetry.Shutdown(context.Background())
		if err != nil {
			logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}()

	validator := appvalidator.NewValidator()

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var (
		redisClient *redis.Client
		locker      lock.Locker
	)

	if cfg.Redis.URL != "" {
		redisClient, err = NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		locker = lock.NewRedisLocker(redisClient, logger, cfg.Lock.TTL, cfg.Lock.Wait)
	} else {
		logger.Info("redis URL not set, screenings are locked in process")
		locker = lock.NewLocalLocker(cfg.Lock.Wait)
	}

	var publisher domain.BookingPublisher = events.NopPublisher{}

	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()

		publisher = amqpPublisher
	} else {
		logger.Info("AMQP URL not set, booking events are not published")
	}

	catalogService := catalog.NewService(
		logger,
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresRoomRepository(db),
		repository.NewPostgresScreeningRepository(db),
		repository.NewPostgresPriceComponentRepository(db),
	)

	engine := booking.NewEngine(
		logger,
		validator,
		catalogService,
		catalogService,
		catalogService,
		repository.NewPostgresBookingRepository(db),
		cfg.BasePrice,
	)

	app := NewApp(cfg, logger, db, redisClient, validator, engine, catalogService, locker, publisher)

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient *redis.Client,
	validator *validator.Validate,
	engine *booking.Engine,
	catalogService *catalog.Service,
	locker lock.Locker,
	publisher domain.BookingPublisher) *Application {

	app := &Application{
		config:    cfg,
		logger:    logger,
		db:        db,
		validator: validator,
		engine:    engine,
		catalog:   catalogService,
		locker:    locker,
		publisher: publisher,
		metrics:   newBookingMetrics(otel.Meter(serviceName), logger),
	}

	// a typed nil would make the healthcheck think redis is configured
	if redisClient != nil {
		app.redis = redisClient
	}

	return app
}

func newLogger(cfg Config) *slog.Logger {
	stdout := slog.NewTextHandler(os.Stdout, nil)

	if cfg.OtelCollectorUrl == "" {
		return slog.New(stdout)
	}

	return slog.New(NewMultiHandler(stdout, otelslog.NewHandler(serviceName)))
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
