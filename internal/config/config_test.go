package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 1, cfg.Quiz.DefaultMaxFactor)
	assert.Equal(t, 5, cfg.Quiz.DefaultQuestionCount)
	assert.Equal(t, 24*time.Hour, cfg.Quiz.SessionIdleTTL)
	assert.Equal(t, "@hourly", cfg.Quiz.JanitorSchedule)

	_, err = cfg.Token()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
	_, err = cfg.DB.DSN()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TELEGRAM_API_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://quiz@localhost/quiz")
	t.Setenv("QUIZ_DEFAULT_MAX_FACTOR", "10")
	t.Setenv("QUIZ_DEFAULT_QUESTION_COUNT", "20")
	t.Setenv("QUIZ_SESSION_IDLE_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 10, cfg.Quiz.DefaultMaxFactor)
	assert.Equal(t, 20, cfg.Quiz.DefaultQuestionCount)
	assert.Equal(t, 2*time.Hour, cfg.Quiz.SessionIdleTTL)

	token, err := cfg.Token()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", token)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://quiz@localhost/quiz", dsn)
}

func TestLoad_InvalidQuizDefaults(t *testing.T) {
	t.Setenv("QUIZ_DEFAULT_MAX_FACTOR", "11")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidQuestionCount(t *testing.T) {
	t.Setenv("QUIZ_DEFAULT_QUESTION_COUNT", "7")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_JanitorSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"@every 30m", false},
		{"0 */2 * * *", false},
		{"every hour", true},
		{"61 * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			t.Setenv("QUIZ_JANITOR_SCHEDULE", tt.schedule)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.schedule, cfg.Quiz.JanitorSchedule)
		})
	}
}
