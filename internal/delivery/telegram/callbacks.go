package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	notice := ""
	defer func() {
		// Remove the user's "clock".
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, notice)); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionSettings:
		text, kb, err := h.handleSettingsCallback(ctx, chatID, cd)
		if err != nil {
			if isUserError(err) {
				h.logger.Warn("invalid settings callback", zap.String("data", cd.Raw), zap.Error(err))
				notice = msgInvalidCallback
				return
			}
			_ = h.withErrorHandling(func(context.Context, int64) error { return err })(ctx, chatID)
			return
		}

		edit := newEdit(chatID, cb.Message.MessageID, text)
		edit.ReplyMarkup = &kb
		_ = h.send(edit)

	case actionQuiz:
		if cd.param(0) != quizStart {
			notice = msgInvalidCallback
			return
		}
		_ = h.withErrorHandling(h.startQuiz)(ctx, chatID)

	default:
		h.logger.Debug("unknown callback action", zap.String("data", cd.Raw))
		notice = msgInvalidCallback
	}
}
