package integration_test

import (
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/app"
	"github.com/metinatakli/ticket-service/internal/booking"
	"github.com/metinatakli/ticket-service/internal/catalog"
	"github.com/metinatakli/ticket-service/internal/events"
	"github.com/metinatakli/ticket-service/internal/lock"
	"github.com/metinatakli/ticket-service/internal/repository"
	appvalidator "github.com/metinatakli/ticket-service/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Engine      *booking.Engine
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
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

	locker := lock.NewRedisLocker(redisClient, logger, cfg.Lock.TTL, cfg.Lock.Wait)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		engine,
		catalogService,
		locker,
		events.NopPublisher{},
	)

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Engine:      engine,
	}, nil
}

func (a *TestApp) Close() {
	a.RedisClient.Close()
	a.DB.Close()
}
