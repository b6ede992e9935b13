package session

import (
	"sync"

	"taskboard/internal/core/domain"
)

// Session is the client-side authentication state: whether a user is signed
// in, who, and the token that authenticates remote calls.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
	profile       domain.Profile
	token         domain.SessionToken
}

func New() *Session {
	return &Session{}
}

// NewWithToken starts a session from a token obtained earlier, e.g. by the
// login command.
func NewWithToken(token domain.SessionToken) *Session {
	s := &Session{}
	if token != "" {
		s.authenticated = true
		s.token = token
	}
	return s
}

func (s *Session) SignIn(profile domain.Profile, token domain.SessionToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = true
	s.profile = profile
	s.token = token
}

func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.profile = domain.Profile{}
	s.token = ""
}

// UpdateProfile overwrites the non-empty fields of profile.
func (s *Session) UpdateProfile(profile domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.UserName != "" {
		s.profile.UserName = profile.UserName
	}
	if profile.Email != "" {
		s.profile.Email = profile.Email
	}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) Profile() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Session) SessionToken() domain.SessionToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SessionState{Authenticated: s.authenticated, Profile: s.profile}
}
