package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Welcome and settings"},
	{Command: "play", Description: "Start a new game"},
	{Command: "settings", Description: "Choose table size and number of questions"},
	{Command: "stop", Description: "Stop the current game"},
	{Command: "help", Description: "How to play"},
}

type Handler struct {
	bot             Bot
	logger          *zap.Logger
	quizService     QuizService
	settingsService SettingsService
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	quizService QuizService,
	settingsService SettingsService,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		quizService:     quizService,
		settingsService: settingsService,
	}
}

// RegisterCommands publishes the command list shown in the Telegram menu.
func (h *Handler) RegisterCommands() error {
	_, err := h.bot.Request(tgbotapi.NewSetMyCommands(botCommands...))
	return err
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		var fn HandlerFunc
		switch update.Message.Command() {
		case "start":
			fn = h.handleStart()
		case "play":
			fn = h.handlePlay()
		case "settings":
			fn = h.handleSettings()
		case "stop":
			fn = h.handleStop()
		case "help":
			fn = h.handleHelp()
		default:
			fn = h.handleUnknownCommand()
		}

		_ = h.withErrorHandling(fn)(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.handleAnswer(update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
