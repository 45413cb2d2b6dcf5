// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

// Plain messages.
const (
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command.\n\n/play - start a new game\n/settings - table size and number of questions\n/stop - stop the current game\n/help - how to play"
	msgNoActiveQuiz    = "There is no game in progress. Send /play to start one."
	msgQuizStopped     = "Game stopped. Send /play whenever you want to try again."
	msgQuizFinished    = "This game is over. Press Restart or send /play for a new one."
	msgInvalidCallback = "This button is no longer valid."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func welcomeMessage() string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold("✖️ Times Tables Exercise"),
		md("Pick how far up the tables go and how many questions you want, then press Start. "+
			"Type the answer to each question as a number."),
	)
}

func helpMessage() string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s\n\n%s",
		bold("How to play"),
		md("/settings - choose the biggest table (1 to 10) and the number of questions"),
		md("/play - start a game with your settings"),
		md("/stop - stop the current game"),
		md("/start - show the welcome screen"),
		md("Every question counts once: a wrong or empty answer moves on to the next question."),
	)
}

// formatSettings renders the settings screen.
func formatSettings(s *entities.Settings) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n%s %s",
		bold("⚙️ Settings"),
		md("🔢 Max multiplication table: up to"),
		bold(fmt.Sprint(s.MaxFactor)),
		md("❓ Number of questions:"),
		bold(fmt.Sprint(s.QuestionCount)),
	)
}

// formatQuizQuestion renders the current question with the running score.
func formatQuizQuestion(q entities.Question, currentNum, totalQuestions, score int) string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		bold(fmt.Sprintf("Question %d/%d:", currentNum, totalQuestions)),
		bold(q.String()+" = ?"),
		md(fmt.Sprintf("Score: %d", score)),
	)
}

// formatAnswerFeedback renders feedback for a submitted answer.
func formatAnswerFeedback(outcome entities.AnswerOutcome) string {
	if outcome.Correct {
		return md("✅ Correct!")
	}

	prefix := "❌ No answer."
	if outcome.Given != nil {
		prefix = fmt.Sprintf("❌ %d is wrong.", *outcome.Given)
	}

	return fmt.Sprintf(
		"%s %s %s",
		md(prefix),
		md(outcome.Question.String()+" ="),
		bold(fmt.Sprint(outcome.Question.Answer())),
	)
}

// formatQuizResult renders the final score.
func formatQuizResult(score, total int) string {
	percentage := float64(score) / float64(total) * 100

	emoji, message := "📚", "Keep practising your times tables!"
	switch {
	case percentage >= 90:
		emoji, message = "🌟", "Excellent!"
	case percentage >= 70:
		emoji, message = "👍", "Well done!"
	case percentage >= 50:
		emoji, message = "💪", "Not bad, keep going!"
	}

	return fmt.Sprintf(
		"%s\n\n%s %s\n%s\n\n%s",
		bold("🏁 Game over!"),
		md("You scored"),
		bold(fmt.Sprintf("%d/%d", score, total)),
		md(buildProgressBar(score, total, 10)),
		md(emoji+" "+message),
	)
}

func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := current * length / total
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
