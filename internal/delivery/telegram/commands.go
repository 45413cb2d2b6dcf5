package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/service"
)

// handleStart greets the user and shows the settings screen.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.send(newMessage(chatID, welcomeMessage())); err != nil {
			return err
		}
		return h.sendSettings(ctx, chatID)
	}
}

func (h *Handler) handleSettings() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendSettings(ctx, chatID)
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

func (h *Handler) handleUnknownCommand() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handlePlay starts a new game with the chat settings, replacing any running one.
func (h *Handler) handlePlay() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startQuiz(ctx, chatID)
	}
}

// handleStop abandons the running game.
func (h *Handler) handleStop() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.quizService.Abandon(ctx, chatID); err != nil {
			return err
		}
		return h.send(newPlainMessage(chatID, msgQuizStopped))
	}
}

// handleAnswer treats free text as the answer to the current question.
// A missing or finished game is reported by withErrorHandling.
func (h *Handler) handleAnswer(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.quizService.Current(ctx, chatID)
		if err != nil {
			return err
		}

		outcome, err := h.quizService.SubmitAnswer(ctx, chatID, service.ParseAnswer(text))
		if err != nil {
			return err
		}

		feedback := formatAnswerFeedback(outcome)

		if !outcome.Completed {
			return h.sendQuestion(chatID, session, feedback)
		}

		score, total, err := h.quizService.FinalScore(ctx, chatID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, feedback+"\n\n"+formatQuizResult(score, total))
		msg.ReplyMarkup = buildQuizResultKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) startQuiz(ctx context.Context, chatID int64) error {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		return err
	}

	session, err := h.quizService.Start(ctx, chatID, settings.MaxFactor, settings.QuestionCount)
	if err != nil {
		h.logger.Error("failed to start quiz session",
			zap.Int64("chat_id", chatID),
			zap.Int("max_factor", settings.MaxFactor),
			zap.Int("question_count", settings.QuestionCount),
			zap.Error(err),
		)
		return err
	}

	return h.sendQuestion(chatID, session, "")
}

// sendQuestion sends the current question of session, optionally preceded by a prefix.
func (h *Handler) sendQuestion(chatID int64, session *entities.QuizSession, prefix string) error {
	q, err := session.CurrentQuestion()
	if err != nil {
		return err
	}

	text := formatQuizQuestion(q, session.CurrentIndex()+1, session.QuestionCount(), session.Score())
	if prefix != "" {
		text = prefix + "\n\n" + text
	}

	return h.send(newMessage(chatID, text))
}
