// Package auth persists the signed-in session between command
// invocations. The token and the cached user profile live in the local
// store so every command can restore authentication without prompting.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vasstra/internal/api"
	"vasstra/internal/logging"
	"vasstra/internal/store"
)

// Storage keys. These survive upgrades, so changing them logs everyone out.
const (
	TokenKey = "vasstra_auth_token"
	UserKey  = "vasstra_auth_user"
)

// ErrNotAuthenticated is returned when no session is cached.
var ErrNotAuthenticated = errors.New("auth: not signed in")

// Session restores and persists a signed-in user.
type Session struct {
	store *store.LocalStore
}

// NewSession wraps a local store.
func NewSession(s *store.LocalStore) *Session {
	return &Session{store: s}
}

// Save caches a token and user profile.
func (s *Session) Save(token string, user api.User) error {
	if token == "" {
		return fmt.Errorf("auth: refusing to save empty token")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("auth: failed to encode user: %w", err)
	}
	if err := s.store.SetValue(TokenKey, token); err != nil {
		return err
	}
	if err := s.store.SetValue(UserKey, string(raw)); err != nil {
		return err
	}
	logging.Auth("Session saved for %s", user.Email)
	return nil
}

// Token returns the cached token, or ErrNotAuthenticated.
func (s *Session) Token() (string, error) {
	token, err := s.store.GetValue(TokenKey)
	if errors.Is(err, store.ErrValueNotFound) {
		return "", ErrNotAuthenticated
	}
	return token, err
}

// User returns the cached user profile, or ErrNotAuthenticated.
func (s *Session) User() (api.User, error) {
	raw, err := s.store.GetValue(UserKey)
	if errors.Is(err, store.ErrValueNotFound) {
		return api.User{}, ErrNotAuthenticated
	}
	if err != nil {
		return api.User{}, err
	}
	var user api.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// A corrupt cache is unrecoverable; treat it as signed out.
		logging.Get(logging.CategoryAuth).Error("Discarding corrupt user cache: %v", err)
		s.Clear()
		return api.User{}, ErrNotAuthenticated
	}
	return user, nil
}

// Authenticated reports whether a token is cached.
func (s *Session) Authenticated() bool {
	_, err := s.Token()
	return err == nil
}

// Clear forgets the cached session.
func (s *Session) Clear() error {
	if err := s.store.DeleteValue(TokenKey); err != nil {
		return err
	}
	return s.store.DeleteValue(UserKey)
}

// Restore installs the cached token on an API client. Missing sessions
// are not an error; the client simply stays anonymous.
func (s *Session) Restore(client *api.Client) error {
	token, err := s.Token()
	if errors.Is(err, ErrNotAuthenticated) {
		return nil
	}
	if err != nil {
		return err
	}
	client.SetToken(token)
	return nil
}

// Login authenticates against the API and persists the session.
func (s *Session) Login(ctx context.Context, client *api.Client, email, password string) (api.User, error) {
	result, err := client.Login(ctx, email, password)
	if err != nil {
		return api.User{}, err
	}
	if err := s.Save(result.Token, result.User); err != nil {
		return api.User{}, err
	}
	return result.User, nil
}

// Logout clears both the cached session and the client's token.
func (s *Session) Logout(client *api.Client) error {
	client.SetToken("")
	if err := s.Clear(); err != nil {
		return err
	}
	logging.Auth("Session cleared")
	return nil
}

// RequireUser returns the cached user or ErrNotAuthenticated.
func (s *Session) RequireUser() (api.User, error) {
	return s.User()
}

// RequireAdmin returns the cached user only if they hold the admin role.
func (s *Session) RequireAdmin() (api.User, error) {
	user, err := s.User()
	if err != nil {
		return api.User{}, err
	}
	if !user.IsAdmin() {
		return api.User{}, fmt.Errorf("auth: %s is not an admin", user.Email)
	}
	return user, nil
}
