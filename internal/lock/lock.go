// Package lock serializes booking attempts per screening.
package lock

import (
	"context"
	"time"
)

const (
	DefaultTTL  = 10 * time.Second
	DefaultWait = 3 * time.Second
)

// Locker grants exclusive access to a key until the returned unlock func is called.
// When the key stays held for longer than the locker is willing to wait, Lock
// returns domain.ErrScreeningBusy.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
