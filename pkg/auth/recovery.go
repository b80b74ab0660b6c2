package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/client"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/session"
)

// ErrSessionExpired is returned once a rejected token has been cleared
var ErrSessionExpired = errors.New("session expired")

// Checker reports who the current token belongs to
type Checker interface {
	CheckAuth(ctx context.Context) (*api.UserResponse, error)
}

// SessionRecovery validates the stored session against the backend and
// drops it once the backend rejects it. There is no refresh flow: a
// rejected session means logging in again.
type SessionRecovery struct {
	session *session.Session
	checker Checker
}

// NewSessionRecovery creates a recovery handler for sess
func NewSessionRecovery(sess *session.Session, checker Checker) *SessionRecovery {
	return &SessionRecovery{session: sess, checker: checker}
}

// Check asks the backend for the session's user. Without a token it
// returns nil, nil and sends nothing. Any HTTP error response clears the
// session; transport failures leave it in place.
func (sr *SessionRecovery) Check(ctx context.Context) (*api.User, error) {
	if !sr.session.IsAuthenticated() {
		logger.Debug("No session to check")
		return nil, nil
	}

	u, err := sr.checker.CheckAuth(ctx)
	if err != nil {
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) {
			logger.Info("Session rejected by backend, clearing it", "status", reqErr.StatusCode)
			if clearErr := sr.session.Clear(); clearErr != nil {
				logger.Error("Failed to clear session", "error", clearErr)
			}
			return nil, nil
		}
		return nil, err
	}

	user := api.NormalizeUser(*u)
	return &user, nil
}

// IsSessionError checks if an error means the token was rejected
func IsSessionError(err error) bool {
	if err == nil {
		return false
	}
	return client.IsUnauthorized(err) || errors.Is(err, ErrSessionExpired)
}

// HandleSessionError clears the session when err is a 401 and returns an
// error pointing the user at login. Other errors pass through.
func (sr *SessionRecovery) HandleSessionError(err error) error {
	if !IsSessionError(err) {
		return err
	}

	logger.Debug("Clearing rejected session")
	if clearErr := sr.session.Clear(); clearErr != nil {
		logger.Error("Failed to clear session", "error", clearErr)
	}
	return fmt.Errorf("%w: please log in again: %w", ErrSessionExpired, err)
}
