package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`        // Telegram API token loaded from environment
	DB               DB     `mapstructure:"database"` // database configuration section
	Quiz             Quiz   `mapstructure:"quiz"`     // quiz defaults and session housekeeping
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Quiz contains defaults for new chats and idle session eviction.
type Quiz struct {
	DefaultMaxFactor     int           `mapstructure:"default_max_factor"`     // factor ceiling for chats without settings
	DefaultQuestionCount int           `mapstructure:"default_question_count"` // question count for chats without settings
	SessionIdleTTL       time.Duration `mapstructure:"session_idle_ttl"`       // idle time after which a session is evicted
	JanitorSchedule      string        `mapstructure:"janitor_schedule"`       // cron spec of the eviction job
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Token returns the Telegram API token if it is configured.
func (c *Config) Token() (string, error) {
	if c.TelegramAPIToken == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return c.TelegramAPIToken, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Variables already set in the environment take precedence over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("quiz.default_max_factor", entities.DefaultMaxFactor)
	v.SetDefault("quiz.default_question_count", entities.DefaultQuestionCount)
	v.SetDefault("quiz.session_idle_ttl", "24h")
	v.SetDefault("quiz.janitor_schedule", "@hourly")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	defaults := entities.NewSettings(0, cfg.Quiz.DefaultMaxFactor, cfg.Quiz.DefaultQuestionCount)
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz defaults: %w", err)
	}
	if cfg.Quiz.SessionIdleTTL <= 0 {
		return nil, fmt.Errorf("invalid quiz.session_idle_ttl: %s", cfg.Quiz.SessionIdleTTL)
	}
	if _, err := cron.ParseStandard(cfg.Quiz.JanitorSchedule); err != nil {
		return nil, fmt.Errorf("invalid quiz.janitor_schedule %q: %w", cfg.Quiz.JanitorSchedule, err)
	}

	// Sensitive values are checked by Token and DSN when a component needs them.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
