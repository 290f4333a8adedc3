package app

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/metinatakli/ticket-service/internal/booking"
	"github.com/metinatakli/ticket-service/internal/events"
	"github.com/metinatakli/ticket-service/internal/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BASE_PRICE", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("AMQP_URL", "")

	cfg, displayVersion, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.False(t, displayVersion)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, booking.DefaultBasePrice, cfg.BasePrice)
	assert.Equal(t, events.DefaultExchange, cfg.AMQP.Exchange)
	assert.Equal(t, lock.DefaultTTL, cfg.Lock.TTL)
	assert.Equal(t, lock.DefaultWait, cfg.Lock.Wait)
	assert.Empty(t, cfg.Redis.URL)
}

func TestParseConfigEnvironmentAndFlags(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BASE_PRICE", "1800")
	t.Setenv("DB_DSN", "postgres://env")

	cfg, _, err := ParseConfig(newFlagSet(), []string{
		"-db-dsn", "postgres://flag",
		"-lock-wait", "250ms",
		"-version",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(1800), cfg.BasePrice)
	assert.Equal(t, "postgres://flag", cfg.DB.DSN)
	assert.Equal(t, 250*time.Millisecond, cfg.Lock.Wait)
}

func TestParseConfigRejectsUnknownFlags(t *testing.T) {
	_, _, err := ParseConfig(newFlagSet(), []string{"-session-secret", "s3cr3t"})

	assert.Error(t, err)
}
