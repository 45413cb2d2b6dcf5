package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/aliskhannn/times-tables-bot/internal/config"
	"github.com/aliskhannn/times-tables-bot/internal/delivery/telegram"
	"github.com/aliskhannn/times-tables-bot/internal/infra/postgres"
	"github.com/aliskhannn/times-tables-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/times-tables-bot/internal/logger"
	"github.com/aliskhannn/times-tables-bot/internal/service"
	"github.com/aliskhannn/times-tables-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	token, err := cfg.Token()
	if err != nil {
		lg.Fatal("telegram token is not configured", zap.Error(err))
	}
	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database url is not configured", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Initialize repositories and services.
	settingsRepo := repository.NewSettingsRepository(pool)
	sessionStorage := storage.NewSessionStorage()

	quizService := service.NewQuizService(service.NewSeededQuestionGenerator(), sessionStorage, lg)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Quiz.DefaultMaxFactor, cfg.Quiz.DefaultQuestionCount)
	janitor := service.NewSessionJanitor(sessionStorage, cfg.Quiz.SessionIdleTTL, cfg.Quiz.JanitorSchedule, lg)

	handler := telegram.NewHandler(bot, lg, quizService, settingsService)
	if err := handler.RegisterCommands(); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		if err := janitor.Start(ctx); err != nil {
			lg.Error("session janitor failed", zap.Error(err))
		}
	})
	wg.Go(func() {
		if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lg.Error("telegram handler failed", zap.Error(err))
		}
		stop()
	})
	wg.Wait()

	lg.Info("shutdown complete")
}
