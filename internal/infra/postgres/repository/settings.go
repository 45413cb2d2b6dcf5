package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
	"github.com/aliskhannn/times-tables-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to chat quiz settings in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database handle.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetByChatID retrieves settings for a chat.
func (r *SettingsRepository) GetByChatID(ctx context.Context, chatID int64) (*entities.Settings, error) {
	query := `
		SELECT chat_id, max_factor, question_count, updated_at
		FROM chat_settings
		WHERE chat_id = $1
	`

	var settings entities.Settings
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&settings.ChatID,
		&settings.MaxFactor,
		&settings.QuestionCount,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// Upsert creates or replaces the settings of a chat.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *entities.Settings) error {
	query := `
		INSERT INTO chat_settings (chat_id, max_factor, question_count, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id) DO UPDATE
		SET max_factor = EXCLUDED.max_factor,
		    question_count = EXCLUDED.question_count,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(
		ctx,
		query,
		settings.ChatID,
		settings.MaxFactor,
		settings.QuestionCount,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}
