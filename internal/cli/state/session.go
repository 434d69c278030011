// Package state holds the client application state: session, preferences and
// favorites, hydrated from disk on Init and persisted on change.
package state

import (
	"errors"
	"sync"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// Session is the signed-in user and their token.
type Session struct {
	tokens repo.TokenStore
	users  repo.UserContextStore

	mu    sync.RWMutex
	token string
	user  *dto.UserView
}

func NewSession(tokens repo.TokenStore, users repo.UserContextStore) *Session {
	return &Session{tokens: tokens, users: users}
}

// Hydrate loads the token and profile. A token without a profile is kept; the profile is refreshed by "me".
func (s *Session) Hydrate() error {
	tok, err := s.tokens.Load()
	if err != nil && !errors.Is(err, repo.ErrNoValue) {
		return err
	}
	u, uerr := s.users.LoadUser()
	if uerr != nil && !errors.Is(uerr, repo.ErrNoValue) {
		return uerr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	s.user = nil
	if tok != "" && uerr == nil {
		s.user = &u
	}
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the profile, or nil when signed out.
func (s *Session) User() *dto.UserView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool { return s.Token() != "" }

// SignIn stores token and profile.
func (s *Session) SignIn(token string, u dto.UserView) error {
	if err := s.tokens.Save(token); err != nil {
		return err
	}
	if err := s.users.SaveUser(u); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.user = &u
	s.mu.Unlock()
	return nil
}

// SetUser replaces the cached profile of the current session.
func (s *Session) SetUser(u dto.UserView) error {
	if err := s.users.SaveUser(u); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// SignOut forgets token and profile.
func (s *Session) SignOut() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return errors.Join(s.tokens.Clear(), s.users.ClearUser())
}

// Persist writes the current session.
func (s *Session) Persist() error {
	s.mu.RLock()
	tok, u := s.token, s.user
	s.mu.RUnlock()
	if tok == "" {
		return errors.Join(s.tokens.Clear(), s.users.ClearUser())
	}
	if err := s.tokens.Save(tok); err != nil {
		return err
	}
	if u != nil {
		return s.users.SaveUser(*u)
	}
	return nil
}
