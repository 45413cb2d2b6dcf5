package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/times-tables-bot/internal/config"
	"github.com/aliskhannn/times-tables-bot/internal/delivery/console"
	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/logger"
	"github.com/aliskhannn/times-tables-bot/internal/service"
	"github.com/aliskhannn/times-tables-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command-line flags
	maxFactor := flag.Int("max", cfg.Quiz.DefaultMaxFactor, "Default max multiplication table (1-10)")
	count := flag.Int("count", cfg.Quiz.DefaultQuestionCount, "Default number of questions (5, 10 or 20)")
	seed := flag.Int64("seed", 0, "Random seed for reproducible questions (0 uses the clock)")
	flag.Parse()

	if err := entities.NewSettings(0, *maxFactor, *count).Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	// Info logs would interleave with the prompts on the same terminal.
	lg = lg.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	defer func() { _ = lg.Sync() }()

	generator := service.NewSeededQuestionGenerator()
	if *seed != 0 {
		generator = service.NewQuestionGenerator(rand.New(rand.NewSource(*seed)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	quiz := service.NewQuizService(generator, storage.NewSessionStorage(), lg)
	game := console.NewGame(quiz, os.Stdin, os.Stdout, *maxFactor, *count)

	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
