package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/times-tables-bot/internal/domain/entities"
)

type sessionEntry struct {
	session    *entities.QuizSession
	lastActive time.Time
}

// SessionStorage provides in-memory storage for the active quiz session of each player.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]sessionEntry),
		now:      time.Now,
	}
}

// Put stores the session for a player, replacing any previous one.
func (s *SessionStorage) Put(playerID int64, session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[playerID] = sessionEntry{session: session, lastActive: s.now()}
}

// Get retrieves the session for a player.
func (s *SessionStorage) Get(playerID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[playerID]
	return e.session, ok
}

// Touch refreshes the last activity time of a player's session.
func (s *SessionStorage) Touch(playerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[playerID]; ok {
		e.lastActive = s.now()
		s.sessions[playerID] = e
	}
}

// Delete removes the session of a player. It reports whether one was stored.
func (s *SessionStorage) Delete(playerID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[playerID]
	delete(s.sessions, playerID)
	return ok
}

// EvictIdle removes sessions last active before cutoff and returns how many were removed.
func (s *SessionStorage) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.sessions {
		if e.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
