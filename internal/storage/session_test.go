package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

func newSession(t *testing.T) *entities.QuizSession {
	t.Helper()
	qs := make([]entities.Question, 5)
	for i := range qs {
		qs[i] = entities.Question{Left: 1, Right: 1}
	}
	s, err := entities.NewQuizSession(1, qs)
	require.NoError(t, err)
	return s
}

func TestSessionStorage_PutGetDelete(t *testing.T) {
	st := NewSessionStorage()

	_, ok := st.Get(42)
	assert.False(t, ok)

	first := newSession(t)
	st.Put(42, first)
	got, ok := st.Get(42)
	require.True(t, ok)
	assert.Same(t, first, got)

	second := newSession(t)
	st.Put(42, second)
	got, _ = st.Get(42)
	assert.Same(t, second, got)
	assert.Equal(t, 1, st.Len())

	assert.True(t, st.Delete(42))
	assert.False(t, st.Delete(42))
	assert.Equal(t, 0, st.Len())
}

func TestSessionStorage_EvictIdle(t *testing.T) {
	base := time.Date(2025, 7, 21, 12, 0, 0, 0, time.UTC)
	now := base
	st := NewSessionStorage()
	st.now = func() time.Time { return now }

	st.Put(1, newSession(t))
	st.Put(2, newSession(t))

	now = base.Add(2 * time.Hour)
	st.Touch(2)
	st.Touch(3) // unknown player is ignored

	evicted := st.EvictIdle(base.Add(time.Hour))
	assert.Equal(t, 1, evicted)

	_, ok := st.Get(1)
	assert.False(t, ok)
	_, ok = st.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 1, st.Len())
}
