package entities

import (
	"time"
)

// Built-in defaults used when configuration does not override them.
const (
	DefaultMaxFactor     = 1
	DefaultQuestionCount = 5
)

// Settings stores the quiz preferences of a chat.
type Settings struct {
	ChatID        int64
	MaxFactor     int // inclusive operand ceiling, 1..10
	QuestionCount int // one of AllowedQuestionCounts
	UpdatedAt     time.Time
}

// NewSettings creates settings for a chat with the given preferences.
func NewSettings(chatID int64, maxFactor, questionCount int) *Settings {
	return &Settings{
		ChatID:        chatID,
		MaxFactor:     maxFactor,
		QuestionCount: questionCount,
		UpdatedAt:     time.Now(),
	}
}

// Validate checks both preferences against the session limits.
func (s *Settings) Validate() error {
	if err := ValidateMaxFactor(s.MaxFactor); err != nil {
		return err
	}
	return ValidateQuestionCount(s.QuestionCount)
}
