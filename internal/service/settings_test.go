package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/infra/postgres/repository"
)

type memorySettingsRepo struct {
	settings  map[int64]entities.Settings
	upserts   int
	getErr    error
	upsertErr error
}

func newMemorySettingsRepo() *memorySettingsRepo {
	return &memorySettingsRepo{settings: make(map[int64]entities.Settings)}
}

func (r *memorySettingsRepo) GetByChatID(_ context.Context, chatID int64) (*entities.Settings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	s, ok := r.settings[chatID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	return &s, nil
}

func (r *memorySettingsRepo) Upsert(_ context.Context, s *entities.Settings) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserts++
	r.settings[s.ChatID] = *s
	return nil
}

func TestSettingsService_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySettingsRepo()
	svc := NewSettingsService(repo, 3, 10)

	s, err := svc.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, s.MaxFactor)
	assert.Equal(t, 10, s.QuestionCount)
	assert.Equal(t, 1, repo.upserts)

	_, err = svc.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts)
}

func TestSettingsService_GetOrCreate_Error(t *testing.T) {
	repo := newMemorySettingsRepo()
	repo.getErr = errors.New("db down")
	svc := NewSettingsService(repo, 1, 5)

	_, err := svc.GetOrCreate(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 0, repo.upserts)
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySettingsRepo()
	svc := NewSettingsService(repo, 1, 5)

	s, err := svc.UpdateMaxFactor(ctx, 7, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, s.MaxFactor)
	assert.Equal(t, 5, s.QuestionCount)

	s, err = svc.UpdateQuestionCount(ctx, 7, 20)
	require.NoError(t, err)
	assert.Equal(t, 9, s.MaxFactor)
	assert.Equal(t, 20, s.QuestionCount)
	assert.Equal(t, entities.Settings{ChatID: 7, MaxFactor: 9, QuestionCount: 20, UpdatedAt: s.UpdatedAt}, repo.settings[7])
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySettingsRepo()
	svc := NewSettingsService(repo, 1, 5)

	_, err := svc.UpdateMaxFactor(ctx, 7, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = svc.UpdateQuestionCount(ctx, 7, 15)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	assert.Equal(t, 0, repo.upserts)
}
