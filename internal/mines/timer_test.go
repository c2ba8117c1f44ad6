package mines

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerTicksUntilStopped(t *testing.T) {
	timer := NewTimer(5 * time.Millisecond)
	timer.Start(context.Background())
	assert.True(t, timer.Running())

	for range 2 {
		select {
		case <-timer.C:
		case <-time.After(time.Second):
			t.Fatal("no tick")
		}
	}

	timer.Stop()
	assert.False(t, timer.Running())

	select {
	case <-timer.C:
		t.Fatal("tick after stop")
	case <-time.After(30 * time.Millisecond):
	}

	// stopping twice is fine
	timer.Stop()
}

func TestTimerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timer := NewTimer(5 * time.Millisecond)
	timer.Start(ctx)
	cancel()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-timer.C:
		t.Fatal("tick after cancel")
	default:
	}
	timer.Stop()
}

func TestTimerSync(t *testing.T) {
	timer := NewTimer(time.Hour)
	defer timer.Stop()

	s, err := NewSession(Easy, newRand(1))
	assert.NoError(t, err)
	timer.Sync(context.Background(), s)
	assert.False(t, timer.Running())

	s, err = s.Activate(Point{0, 0})
	assert.NoError(t, err)
	timer.Sync(context.Background(), s)
	assert.True(t, timer.Running())

	s, err = s.Reset(Easy)
	assert.NoError(t, err)
	timer.Sync(context.Background(), s)
	assert.False(t, timer.Running())
}
