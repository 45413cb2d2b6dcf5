package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func fiveQuestions() []Question {
	return []Question{
		{Left: 1, Right: 2},
		{Left: 3, Right: 3},
		{Left: 5, Right: 4},
		{Left: 2, Right: 2},
		{Left: 5, Right: 5},
	}
}

func TestNewQuizSession(t *testing.T) {
	tests := []struct {
		name      string
		maxFactor int
		questions []Question
		wantErr   error
	}{
		{name: "valid", maxFactor: 5, questions: fiveQuestions()},
		{name: "max factor too small", maxFactor: 0, questions: fiveQuestions(), wantErr: ErrInvalidArgument},
		{name: "max factor too large", maxFactor: 11, questions: fiveQuestions(), wantErr: ErrInvalidArgument},
		{name: "unsupported count", maxFactor: 5, questions: fiveQuestions()[:4], wantErr: ErrInvalidArgument},
		{name: "operand above ceiling", maxFactor: 4, questions: fiveQuestions(), wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := NewQuizSession(tt.maxFactor, tt.questions)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, qs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, qs.CurrentIndex())
			assert.Equal(t, 0, qs.Score())
			assert.Equal(t, len(tt.questions), qs.QuestionCount())
			assert.False(t, qs.IsCompleted())
		})
	}
}

func TestQuizSession_AllCorrect(t *testing.T) {
	qs, err := NewQuizSession(5, fiveQuestions())
	require.NoError(t, err)

	for i := range qs.QuestionCount() {
		q, err := qs.CurrentQuestion()
		require.NoError(t, err)

		out, err := qs.SubmitAnswer(intPtr(q.Answer()))
		require.NoError(t, err)
		assert.True(t, out.Correct)
		assert.Equal(t, i+1, out.Score)
		assert.Equal(t, i == qs.QuestionCount()-1, out.Completed)
	}

	score, total, err := qs.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, 5, score)
	assert.Equal(t, 5, total)
}

func TestQuizSession_AllWrong(t *testing.T) {
	qs, err := NewQuizSession(3, []Question{
		{Left: 1, Right: 1}, {Left: 2, Right: 3}, {Left: 3, Right: 3}, {Left: 1, Right: 2}, {Left: 2, Right: 2},
	})
	require.NoError(t, err)

	for range 5 {
		out, err := qs.SubmitAnswer(intPtr(-1))
		require.NoError(t, err)
		assert.False(t, out.Correct)
		assert.Equal(t, 0, out.Score)
	}

	score, total, err := qs.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, 5, total)
}

func TestQuizSession_MissingAnswerIsWrong(t *testing.T) {
	qs, err := NewQuizSession(5, fiveQuestions())
	require.NoError(t, err)

	out, err := qs.SubmitAnswer(nil)
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Nil(t, out.Given)
	assert.Equal(t, 0, qs.Score())
	assert.Equal(t, 1, qs.CurrentIndex())
}

func TestQuizSession_AfterCompletion(t *testing.T) {
	qs, err := NewQuizSession(5, fiveQuestions())
	require.NoError(t, err)

	for range 5 {
		_, err := qs.SubmitAnswer(nil)
		require.NoError(t, err)
	}
	require.True(t, qs.IsCompleted())

	_, err = qs.CurrentQuestion()
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = qs.SubmitAnswer(intPtr(1))
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 5, qs.CurrentIndex())
	assert.Equal(t, 0, qs.Score())
}

func TestQuizSession_FinalScoreInProgress(t *testing.T) {
	qs, err := NewQuizSession(5, fiveQuestions())
	require.NoError(t, err)

	_, _, err = qs.FinalScore()
	require.ErrorIs(t, err, ErrSessionInProgress)
}

func TestQuizSession_QuestionsAreCopied(t *testing.T) {
	src := fiveQuestions()
	qs, err := NewQuizSession(5, src)
	require.NoError(t, err)

	src[0] = Question{Left: 9, Right: 9}
	got := qs.Questions()
	got[1] = Question{Left: 9, Right: 9}

	q, err := qs.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, Question{Left: 1, Right: 2}, q)
	assert.Equal(t, Question{Left: 3, Right: 3}, qs.Questions()[1])
}

func TestQuestion(t *testing.T) {
	q := Question{Left: 7, Right: 8}
	assert.Equal(t, 56, q.Answer())
	assert.Equal(t, "7 × 8", q.String())
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, NewSettings(1, DefaultMaxFactor, DefaultQuestionCount).Validate())
	assert.ErrorIs(t, NewSettings(1, 0, 5).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, NewSettings(1, 10, 7).Validate(), ErrInvalidArgument)
}
