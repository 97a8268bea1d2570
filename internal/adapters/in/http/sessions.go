package http

import (
	"sync"

	"github.com/google/uuid"
)

// Session identifies a logged-in user for the lifetime of the process.
// Sessions are held in memory only: a restart logs everyone out, which
// matches the single-process deployment model.
type Session struct {
	Token    string
	UserID   int64
	Username string
	Role     string
}

// SessionStore issues and resolves bearer tokens.
// Safe for concurrent use.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
	}
}

// Issue creates a session with a fresh random token.
func (s *SessionStore) Issue(userID int64, username, role string) Session {
	session := Session{
		Token:    uuid.NewString(),
		UserID:   userID,
		Username: username,
		Role:     role,
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Get resolves a token to its session.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	return session, ok
}

// Revoke removes a session. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
