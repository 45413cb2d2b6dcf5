package service

import (
	"math/rand"
	"time"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

// QuestionGenerator draws random multiplication questions bounded by a factor ceiling.
type QuestionGenerator struct {
	rng Rand
}

// NewQuestionGenerator creates a generator drawing from rng.
func NewQuestionGenerator(rng Rand) *QuestionGenerator {
	return &QuestionGenerator{rng: rng}
}

// NewSeededQuestionGenerator creates a generator seeded from the current time.
func NewSeededQuestionGenerator() *QuestionGenerator {
	return NewQuestionGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate returns count questions whose operands are drawn independently and
// uniformly from [1, maxFactor]. Repeats are allowed.
func (g *QuestionGenerator) Generate(maxFactor, count int) ([]entities.Question, error) {
	if err := entities.ValidateMaxFactor(maxFactor); err != nil {
		return nil, err
	}
	if err := entities.ValidateQuestionCount(count); err != nil {
		return nil, err
	}

	questions := make([]entities.Question, 0, count)
	for range count {
		questions = append(questions, entities.Question{
			Left:  1 + g.rng.Intn(maxFactor),
			Right: 1 + g.rng.Intn(maxFactor),
		})
	}

	return questions, nil
}
