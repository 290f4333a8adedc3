package lock

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
)

// LocalLocker is an in-process keyed mutex for single instance deployments.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
	wait  time.Duration
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		slots: make(map[string]*slot),
		wait:  wait,
	}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	s := l.acquireSlot(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
		var once sync.Once

		return func() {
			once.Do(func() {
				<-s.ch
				l.releaseSlot(key)
			})
		}, nil
	case <-timer.C:
		l.releaseSlot(key)
		return nil, domain.ErrScreeningBusy
	case <-ctx.Done():
		l.releaseSlot(key)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++

	return s
}

func (l *LocalLocker) releaseSlot(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
