package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

var errInvalidCallback = errors.New("invalid callback data")

func (h *Handler) sendSettings(ctx context.Context, chatID int64) error {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		return err
	}

	msg := newMessage(chatID, formatSettings(settings))
	msg.ReplyMarkup = buildSettingsKeyboard()
	return h.send(msg)
}

// handleSettingsCallback returns the text and keyboard the settings message should be edited to.
func (h *Handler) handleSettingsCallback(
	ctx context.Context, chatID int64, cd callbackData,
) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	sub, value := cd.param(0), cd.param(1)

	switch {
	case sub == settingsMenu:
		// Falls through to the settings screen below.

	case sub == settingsMaxFactor && value == "":
		return formatSettings(settings), buildMaxFactorKeyboard(settings.MaxFactor), nil

	case sub == settingsMaxFactor:
		m, err := strconv.Atoi(value)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, errInvalidCallback
		}
		settings, err = h.settingsService.UpdateMaxFactor(ctx, chatID, m)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, err
		}

	case sub == settingsQuestionCount && value == "":
		return formatSettings(settings), buildQuestionCountKeyboard(settings.QuestionCount), nil

	case sub == settingsQuestionCount:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, errInvalidCallback
		}
		settings, err = h.settingsService.UpdateQuestionCount(ctx, chatID, n)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, err
		}

	default:
		return "", tgbotapi.InlineKeyboardMarkup{}, errInvalidCallback
	}

	return formatSettings(settings), buildSettingsKeyboard(), nil
}

// isUserError reports whether err comes from a stale or forged button rather than a failure.
func isUserError(err error) bool {
	return errors.Is(err, errInvalidCallback) || errors.Is(err, entities.ErrInvalidArgument)
}
