package store

import (
	"time"

	"github.com/google/uuid"

	"tiffin-marketplace-api/models"
)

// CreateSession issues a fresh opaque token bound to the (user, role) pair at
// this moment. Tokens are never reused.
func (s *Store) CreateSession(userID string, role models.UserRole) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.sessions[session.Token] = session
	return *session
}

// UserByToken resolves a token to its user. An empty expectedRole accepts any
// role; otherwise the session's bound role must match, so a customer token
// cannot reach a driver endpoint even if the user's role changed afterwards.
func (s *Store) UserByToken(token string, expectedRole models.UserRole) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return models.User{}, false
	}
	if expectedRole != "" && session.Role != expectedRole {
		return models.User{}, false
	}
	user, ok := s.users.get(session.UserID)
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

// RevokeSession drops a single token; revoking an absent token is a no-op.
func (s *Store) RevokeSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// RevokeSessionsForUser drops every session belonging to a user. Called on
// password change so old tokens die everywhere.
func (s *Store) RevokeSessionsForUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokeSessionsForUserLocked(userID)
}

func (s *Store) revokeSessionsForUserLocked(userID string) {
	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
}

// SetOTP stores a one-time code for a phone, overwriting any live entry.
func (s *Store) SetOTP(phone string, entry models.OtpEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[phone] = entry
}

func (s *Store) OTP(phone string) (models.OtpEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.otps[phone]
	return entry, ok
}

func (s *Store) ClearOTP(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, phone)
}
