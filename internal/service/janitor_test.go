package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEvicter struct {
	cutoff  time.Time
	evicted int
}

func (f *fakeEvicter) EvictIdle(cutoff time.Time) int {
	f.cutoff = cutoff
	return f.evicted
}

func (f *fakeEvicter) Len() int { return 0 }

func TestSessionJanitor_Sweep(t *testing.T) {
	ev := &fakeEvicter{evicted: 3}
	j := NewSessionJanitor(ev, 24*time.Hour, "@hourly", zap.NewNop())
	now := time.Date(2025, 7, 22, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, j.Sweep(now))
	assert.Equal(t, now.Add(-24*time.Hour), ev.cutoff)
}

func TestSessionJanitor_StartStops(t *testing.T) {
	j := NewSessionJanitor(&fakeEvicter{}, time.Hour, "@every 1h", zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- j.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitor_BadSchedule(t *testing.T) {
	j := NewSessionJanitor(&fakeEvicter{}, time.Hour, "not a schedule", zap.NewNop())
	require.Error(t, j.Start(context.Background()))
}
