package api

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/logger"
)

// Login authenticates with an email or username
func (b *Backend) Login(ctx context.Context, login, password string) (*AuthResponse, error) {
	logger.Debug("Logging in", "login", login)

	var resp AuthResponse
	if err := b.http.Post(ctx, "/auth/login", LoginRequest{Login: login, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its first session
func (b *Backend) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	logger.Debug("Registering", "username", req.Username, "email", req.Email)

	var resp AuthResponse
	if err := b.http.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckAuth returns the user the current token belongs to
func (b *Backend) CheckAuth(ctx context.Context) (*UserResponse, error) {
	logger.Debug("Checking session")

	var resp UserResponse
	if err := b.http.Get(ctx, "/auth/check", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout ends the session server-side
func (b *Backend) Logout(ctx context.Context) error {
	logger.Debug("Logging out")
	return b.http.Post(ctx, "/auth/logout", nil, nil)
}
