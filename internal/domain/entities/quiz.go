package entities

import (
	"errors"
	"fmt"
	"slices"
)

// Factor ceiling bounds and the question counts a session may be started with.
const (
	MinMaxFactor = 1
	MaxMaxFactor = 10
)

var AllowedQuestionCounts = []int{5, 10, 20}

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrOutOfRange        = errors.New("question index out of range")
	ErrSessionInProgress = errors.New("quiz session is still in progress")
)

// ValidateMaxFactor checks that m is a supported factor ceiling.
func ValidateMaxFactor(m int) error {
	if m < MinMaxFactor || m > MaxMaxFactor {
		return fmt.Errorf("%w: max factor %d not in [%d, %d]", ErrInvalidArgument, m, MinMaxFactor, MaxMaxFactor)
	}
	return nil
}

// ValidateQuestionCount checks that n is one of AllowedQuestionCounts.
func ValidateQuestionCount(n int) error {
	if !slices.Contains(AllowedQuestionCounts, n) {
		return fmt.Errorf("%w: question count %d not in %v", ErrInvalidArgument, n, AllowedQuestionCounts)
	}
	return nil
}

// AnswerOutcome describes the result of a single submitted answer.
type AnswerOutcome struct {
	Question  Question // question that was answered
	Given     *int     // submitted value, nil if missing or unparseable
	Correct   bool     // whether Given equals Question.Answer()
	Score     int      // score after this answer
	Completed bool     // whether the session is now completed
}

// QuizSession is one run of a fixed list of questions with an accumulating score.
// It is either in progress (currentIndex < len(questions)) or completed.
type QuizSession struct {
	maxFactor    int
	questions    []Question
	currentIndex int
	score        int
}

// NewQuizSession creates a session positioned at the first question with a zero score.
// The question count is len(questions) and must be an allowed count.
func NewQuizSession(maxFactor int, questions []Question) (*QuizSession, error) {
	if err := ValidateMaxFactor(maxFactor); err != nil {
		return nil, err
	}
	if err := ValidateQuestionCount(len(questions)); err != nil {
		return nil, err
	}

	for i, q := range questions {
		if q.Left < 1 || q.Left > maxFactor || q.Right < 1 || q.Right > maxFactor {
			return nil, fmt.Errorf("%w: question %d (%s) exceeds max factor %d", ErrInvalidArgument, i, q, maxFactor)
		}
	}

	return &QuizSession{
		maxFactor: maxFactor,
		questions: slices.Clone(questions),
	}, nil
}

// MaxFactor returns the inclusive upper bound of both operands.
func (qs *QuizSession) MaxFactor() int { return qs.maxFactor }

// QuestionCount returns the number of questions in the session.
func (qs *QuizSession) QuestionCount() int { return len(qs.questions) }

// CurrentIndex returns the 0-based index of the question awaiting an answer.
func (qs *QuizSession) CurrentIndex() int { return qs.currentIndex }

// Score returns the number of correct answers so far.
func (qs *QuizSession) Score() int { return qs.score }

// Questions returns a copy of the question list.
func (qs *QuizSession) Questions() []Question { return slices.Clone(qs.questions) }

// IsCompleted reports whether every question has been answered.
func (qs *QuizSession) IsCompleted() bool {
	return qs.currentIndex >= len(qs.questions)
}

// CurrentQuestion returns the question awaiting an answer.
// It returns ErrOutOfRange once the session is completed.
func (qs *QuizSession) CurrentQuestion() (Question, error) {
	if qs.IsCompleted() {
		return Question{}, fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, qs.currentIndex, len(qs.questions))
	}
	return qs.questions[qs.currentIndex], nil
}

// SubmitAnswer scores value against the current question and advances to the next one.
// A nil value counts as a wrong answer. The index advances regardless of correctness.
func (qs *QuizSession) SubmitAnswer(value *int) (AnswerOutcome, error) {
	q, err := qs.CurrentQuestion()
	if err != nil {
		return AnswerOutcome{}, err
	}

	correct := value != nil && *value == q.Answer()
	if correct {
		qs.score++
	}
	qs.currentIndex++

	return AnswerOutcome{
		Question:  q,
		Given:     value,
		Correct:   correct,
		Score:     qs.score,
		Completed: qs.IsCompleted(),
	}, nil
}

// FinalScore returns the score and the question count of a completed session.
func (qs *QuizSession) FinalScore() (score, total int, err error) {
	if !qs.IsCompleted() {
		return 0, 0, fmt.Errorf("%w: %d of %d answered", ErrSessionInProgress, qs.currentIndex, len(qs.questions))
	}
	return qs.score, len(qs.questions), nil
}
