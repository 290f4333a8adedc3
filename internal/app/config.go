package app

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/metinatakli/ticket-service/internal/booking"
	"github.com/metinatakli/ticket-service/internal/events"
	"github.com/metinatakli/ticket-service/internal/lock"
)

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	AMQP             AMQPConfig
	Lock             LockConfig
	OtelCollectorUrl string
	BasePrice        int64
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

// RedisConfig with an empty URL makes the API fall back to in-process locking.
type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

// AMQPConfig with an empty URL disables booking event publishing.
type AMQPConfig struct {
	URL      string
	Exchange string
}

type LockConfig struct {
	TTL  time.Duration
	Wait time.Duration
}

// ParseConfig reads configuration from command line flags. Flag defaults come from
// the process environment, which may be seeded from a .env file.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, bool, error) {
	// a missing .env file is fine, the environment and flags still apply
	_ = godotenv.Load()

	var cfg Config

	fs.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	fs.StringVar(&cfg.AMQP.URL, "amqp-url", envString("AMQP_URL", ""), "RabbitMQ URL")
	fs.StringVar(&cfg.AMQP.Exchange, "amqp-exchange", envString("AMQP_EXCHANGE", events.DefaultExchange), "RabbitMQ exchange for booking events")

	fs.DurationVar(&cfg.Lock.TTL, "lock-ttl", lock.DefaultTTL, "Expiry of a screening booking lock")
	fs.DurationVar(&cfg.Lock.Wait, "lock-wait", lock.DefaultWait, "How long a booking waits for a busy screening")

	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")
	fs.Int64Var(&cfg.BasePrice, "base-price", envInt64("BASE_PRICE", booking.DefaultBasePrice), "Initial base price of a seat")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	return cfg, *displayVersion, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}

func envInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}

	return v
}
