package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuizService interface {
	Start(ctx context.Context, playerID int64, maxFactor, questionCount int) (*entities.QuizSession, error)
	Current(ctx context.Context, playerID int64) (*entities.QuizSession, error)
	SubmitAnswer(ctx context.Context, playerID int64, value *int) (entities.AnswerOutcome, error)
	FinalScore(ctx context.Context, playerID int64) (score, total int, err error)
	Abandon(ctx context.Context, playerID int64) error
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, chatID int64) (*entities.Settings, error)
	UpdateMaxFactor(ctx context.Context, chatID int64, maxFactor int) (*entities.Settings, error)
	UpdateQuestionCount(ctx context.Context, chatID int64, questionCount int) (*entities.Settings, error)
}
