package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling turns quiz state errors into replies and logs everything else.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrNoActiveSession):
			h.sendError(chatID, msgNoActiveQuiz)
		case errors.Is(err, entities.ErrOutOfRange):
			msg := newPlainMessage(chatID, msgQuizFinished)
			msg.ReplyMarkup = buildQuizResultKeyboard()
			_ = h.send(msg)
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
