package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

var ErrNoActiveSession = errors.New("no active quiz session")

// QuizService runs one quiz session per player on top of a SessionStore.
type QuizService struct {
	generator *QuestionGenerator
	sessions  SessionStore
	logger    *zap.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(generator *QuestionGenerator, sessions SessionStore, logger *zap.Logger) *QuizService {
	return &QuizService{
		generator: generator,
		sessions:  sessions,
		logger:    logger,
	}
}

// Start generates a fresh session for the player, replacing any previous one.
func (s *QuizService) Start(_ context.Context, playerID int64, maxFactor, questionCount int) (*entities.QuizSession, error) {
	questions, err := s.generator.Generate(maxFactor, questionCount)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	session, err := entities.NewQuizSession(maxFactor, questions)
	if err != nil {
		return nil, fmt.Errorf("new quiz session: %w", err)
	}

	s.sessions.Put(playerID, session)

	s.logger.Info("quiz session started",
		zap.Int64("player_id", playerID),
		zap.Int("max_factor", maxFactor),
		zap.Int("question_count", questionCount),
	)

	return session, nil
}

// Current returns the stored session of the player.
func (s *QuizService) Current(_ context.Context, playerID int64) (*entities.QuizSession, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// CurrentQuestion returns the question the player has to answer next.
func (s *QuizService) CurrentQuestion(ctx context.Context, playerID int64) (entities.Question, error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return entities.Question{}, err
	}
	return session.CurrentQuestion()
}

// SubmitAnswer scores value against the player's current question.
// A nil value is a missing or unparseable answer and counts as wrong.
func (s *QuizService) SubmitAnswer(ctx context.Context, playerID int64, value *int) (entities.AnswerOutcome, error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return entities.AnswerOutcome{}, err
	}

	outcome, err := session.SubmitAnswer(value)
	if err != nil {
		return entities.AnswerOutcome{}, err
	}
	s.sessions.Touch(playerID)

	s.logger.Debug("answer submitted",
		zap.Int64("player_id", playerID),
		zap.Stringer("question", outcome.Question),
		zap.Bool("correct", outcome.Correct),
		zap.Int("score", outcome.Score),
	)

	if outcome.Completed {
		s.logger.Info("quiz session completed",
			zap.Int64("player_id", playerID),
			zap.Int("score", outcome.Score),
			zap.Int("question_count", session.QuestionCount()),
		)
	}

	return outcome, nil
}

// FinalScore returns the score and question count of the player's completed session.
func (s *QuizService) FinalScore(ctx context.Context, playerID int64) (score, total int, err error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return 0, 0, err
	}
	return session.FinalScore()
}

// Abandon discards the player's session. It returns ErrNoActiveSession if there is none.
func (s *QuizService) Abandon(_ context.Context, playerID int64) error {
	if !s.sessions.Delete(playerID) {
		return ErrNoActiveSession
	}
	s.logger.Info("quiz session abandoned", zap.Int64("player_id", playerID))
	return nil
}
