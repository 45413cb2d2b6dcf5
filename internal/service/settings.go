package service

import (
	"context"
	"errors"
	"time"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/infra/postgres/repository"
)

type SettingsService struct {
	repository           SettingsRepository
	defaultMaxFactor     int
	defaultQuestionCount int
}

func NewSettingsService(repository SettingsRepository, defaultMaxFactor, defaultQuestionCount int) *SettingsService {
	return &SettingsService{
		repository:           repository,
		defaultMaxFactor:     defaultMaxFactor,
		defaultQuestionCount: defaultQuestionCount,
	}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, chatID int64) (*entities.Settings, error) {
	settings, err := s.repository.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			settings = entities.NewSettings(chatID, s.defaultMaxFactor, s.defaultQuestionCount)
			if err := s.repository.Upsert(ctx, settings); err != nil {
				return nil, err
			}
			return settings, nil
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateMaxFactor(ctx context.Context, chatID int64, maxFactor int) (*entities.Settings, error) {
	if err := entities.ValidateMaxFactor(maxFactor); err != nil {
		return nil, err
	}
	return s.update(ctx, chatID, func(settings *entities.Settings) {
		settings.MaxFactor = maxFactor
	})
}

func (s *SettingsService) UpdateQuestionCount(ctx context.Context, chatID int64, questionCount int) (*entities.Settings, error) {
	if err := entities.ValidateQuestionCount(questionCount); err != nil {
		return nil, err
	}
	return s.update(ctx, chatID, func(settings *entities.Settings) {
		settings.QuestionCount = questionCount
	})
}

func (s *SettingsService) update(ctx context.Context, chatID int64, apply func(*entities.Settings)) (*entities.Settings, error) {
	settings, err := s.GetOrCreate(ctx, chatID)
	if err != nil {
		return nil, err
	}

	apply(settings)
	settings.UpdatedAt = time.Now()

	if err := s.repository.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
