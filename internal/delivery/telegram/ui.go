package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔢 Max table", buildSettingsCallback(settingsMaxFactor)),
			tgbotapi.NewInlineKeyboardButtonData("❓ Questions", buildSettingsCallback(settingsQuestionCount)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start game", buildQuizStartCallback()),
		),
	)
}

// buildMaxFactorKeyboard builds keyboard for the factor ceiling, marking the current value.
func buildMaxFactorKeyboard(current int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for m := entities.MinMaxFactor; m <= entities.MaxMaxFactor; m++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(optionLabel(m, current), buildMaxFactorCallback(m)))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, backToSettingsRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionCountKeyboard builds keyboard for the question count, marking the current value.
func buildQuestionCountKeyboard(current int) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.AllowedQuestionCounts))
	for _, n := range entities.AllowedQuestionCounts {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(optionLabel(n, current), buildQuestionCountCallback(n)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(row, backToSettingsRow())
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Restart", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

func backToSettingsRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	)
}

func optionLabel(value, current int) string {
	if value == current {
		return fmt.Sprintf("✅ %d", value)
	}
	return fmt.Sprint(value)
}
