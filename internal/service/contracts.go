package service

import (
	"context"
	"time"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

// Rand is the source of uniform integers used to draw operands.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SessionStore keeps the active quiz session of each player.
type SessionStore interface {
	Put(playerID int64, session *entities.QuizSession)
	Get(playerID int64) (*entities.QuizSession, bool)
	Touch(playerID int64)
	Delete(playerID int64) bool
}

// SessionEvicter drops sessions inactive since a cutoff.
type SessionEvicter interface {
	EvictIdle(cutoff time.Time) int
	Len() int
}

// SettingsRepository manages chat settings persistence.
type SettingsRepository interface {
	GetByChatID(ctx context.Context, chatID int64) (*entities.Settings, error)
	Upsert(ctx context.Context, settings *entities.Settings) error
}
