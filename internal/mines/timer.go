package mines

import (
	"context"
	"sync"
	"time"
)

// Timer delivers a tick on C every interval between Start and Stop. It
// never touches a Session; the owner applies Session.Tick for each tick.
type Timer struct {
	C chan struct{}

	interval time.Duration
	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{
		C:        make(chan struct{}),
		interval: interval,
	}
}

// Start launches the ticking goroutine. Starting a running timer does
// nothing.
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel, t.done = cancel, done

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case t.C <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it to exit, so no tick is sent
// after Stop returns.
func (t *Timer) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Sync starts or stops the timer to follow the session's clock.
func (t *Timer) Sync(ctx context.Context, s *Session) {
	if s.TimerRunning() {
		t.Start(ctx)
	} else {
		t.Stop()
	}
}
