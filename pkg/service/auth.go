package service

import (
	"context"
	"fmt"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/auth"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/session"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// AuthService handles the session lifecycle
type AuthService struct {
	backend  *api.Backend
	session  *session.Session
	recovery *auth.SessionRecovery
}

// NewAuthService creates a new auth service
func NewAuthService(d Deps) *AuthService {
	return &AuthService{backend: d.Backend, session: d.Session, recovery: d.Recovery()}
}

// Login validates the form, authenticates and stores the session. Invalid
// input is rejected before any request is made.
func (s *AuthService) Login(ctx context.Context, email, password string) (*api.User, error) {
	if err := validate.Login(email, password); err != nil {
		return nil, err
	}

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.store(resp)
}

// Register validates the form, creates the account and stores the session
func (s *AuthService) Register(ctx context.Context, username, email, password, confirm string) (*api.User, error) {
	if err := validate.Register(username, email, password, confirm); err != nil {
		return nil, err
	}

	resp, err := s.backend.Register(ctx, api.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return s.store(resp)
}

func (s *AuthService) store(resp *api.AuthResponse) (*api.User, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("backend returned no access token")
	}

	user := api.NormalizeUser(resp.User)
	rec := session.Record{
		AccessToken: resp.AccessToken,
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
	}
	if err := s.session.Set(rec); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Logged in", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// Logout ends the session. The local session is cleared even when the
// backend call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return s.session.Clear()
	}

	callErr := s.backend.Logout(ctx)
	if callErr != nil {
		logger.Warn("Backend logout failed", "error", callErr)
	}
	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Logged out")
	return callErr
}

// Check returns the logged-in user, or nil when there is no valid session
func (s *AuthService) Check(ctx context.Context) (*api.User, error) {
	return s.recovery.Check(ctx)
}

// Current returns the locally stored identity without contacting the backend
func (s *AuthService) Current() *session.Record {
	if !s.session.IsAuthenticated() {
		return nil
	}
	return s.session.Current()
}
