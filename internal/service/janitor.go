package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically evicts quiz sessions of chats that went idle.
type SessionJanitor struct {
	sessions SessionEvicter
	idleTTL  time.Duration
	schedule string
	logger   *zap.Logger
}

// NewSessionJanitor creates a janitor running on a cron schedule (e.g. "@hourly").
func NewSessionJanitor(sessions SessionEvicter, idleTTL time.Duration, schedule string, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		idleTTL:  idleTTL,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs the cron scheduler until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(j.schedule, func() {
		j.Sweep(time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	j.logger.Info("session janitor started",
		zap.String("schedule", j.schedule),
		zap.Duration("idle_ttl", j.idleTTL),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")
	return nil
}

// Sweep evicts sessions idle for longer than the TTL as of now.
func (j *SessionJanitor) Sweep(now time.Time) int {
	evicted := j.sessions.EvictIdle(now.Add(-j.idleTTL))
	if evicted > 0 {
		j.logger.Info("evicted idle quiz sessions",
			zap.Int("evicted", evicted),
			zap.Int("remaining", j.sessions.Len()),
		)
	}
	return evicted
}
