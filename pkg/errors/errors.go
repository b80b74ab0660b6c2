package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/sense-social/sense/cli/pkg/client"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeHTTP       ErrorType = "http"
	ErrorTypeAuth       ErrorType = "auth"
	ErrorTypeForbidden  ErrorType = "forbidden"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeServer     ErrorType = "server"
	ErrorTypeCanceled   ErrorType = "canceled"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
	StatusCode int
	// Fields holds per-field messages of a validation error
	Fields map[string]string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLI error
func NewCLIError(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NetworkError creates a network error
func NetworkError(message string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeNetwork, message, cause)
	err.Suggestion = "Check that the Sense backend is reachable (api.base_url) and try again."
	return err
}

// TimeoutError creates a timeout error
func TimeoutError(cause error) *CLIError {
	err := NewCLIError(ErrorTypeTimeout, "Request timed out", cause)
	err.Suggestion = "The server is taking too long to respond. Try again in a moment."
	return err
}

// AuthError creates an authentication error
func AuthError(message string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeAuth, message, cause)
	err.StatusCode = 401
	err.Suggestion = "Log in again with 'sense-cli auth login'."
	return err
}

// NotLoggedInError is returned before a request that needs a session
func NotLoggedInError() *CLIError {
	return AuthError("You are not logged in", nil)
}

// ForbiddenError creates a forbidden error
func ForbiddenError(message string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeForbidden, message, cause)
	err.StatusCode = 403
	err.Suggestion = "Only the owner of this resource can change it."
	return err
}

// ValidationError creates a validation error for one field
func ValidationError(field, reason string) *CLIError {
	err := NewCLIError(ErrorTypeValidation, fmt.Sprintf("%s: %s", field, reason), nil)
	err.Fields = map[string]string{field: reason}
	return err
}

// NotFoundError creates a not found error
func NotFoundError(message string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeNotFound, message, cause)
	err.StatusCode = 404
	return err
}

// ServerError creates a server error
func ServerError(status int, message string, cause error) *CLIError {
	err := NewCLIError(ErrorTypeServer, message, cause)
	err.StatusCode = status
	err.Suggestion = "The server encountered an error. Try again in a few moments."
	return err
}

// CategorizeError converts an error into a CLIError
func CategorizeError(err error) *CLIError {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		e := NewCLIError(ErrorTypeValidation, "Please fix the highlighted fields", err)
		e.Fields = fieldErrs
		return e
	}

	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		return fromStatus(reqErr)
	}

	if errors.Is(err, context.Canceled) {
		return NewCLIError(ErrorTypeCanceled, "Request canceled", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TimeoutError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return TimeoutError(err)
		}
		return NetworkError("Could not reach the server", err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) || strings.Contains(err.Error(), "connection refused") {
		return NetworkError("Could not connect to server. Make sure it's running.", err)
	}

	return NewCLIError(ErrorTypeUnknown, err.Error(), err)
}

func fromStatus(reqErr *client.RequestError) *CLIError {
	switch code := reqErr.StatusCode; {
	case code == 401:
		return AuthError(reqErr.Message, reqErr)
	case code == 403:
		return ForbiddenError(reqErr.Message, reqErr)
	case code == 404:
		return NotFoundError(reqErr.Message, reqErr)
	case code == 409:
		e := NewCLIError(ErrorTypeConflict, reqErr.Message, reqErr)
		e.StatusCode = code
		e.Suggestion = "This already exists. Try a different username or email."
		return e
	case code == 429:
		e := NewCLIError(ErrorTypeRateLimit, reqErr.Message, reqErr)
		e.StatusCode = code
		e.Suggestion = "Too many requests. Wait a moment and try again."
		return e
	case code >= 500:
		return ServerError(code, reqErr.Message, reqErr)
	default:
		e := NewCLIError(ErrorTypeHTTP, reqErr.Message, reqErr)
		e.StatusCode = code
		return e
	}
}

// FormatError returns a user-friendly error message. Anything that is not a
// validation problem is shown under the generic banner.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr := CategorizeError(err)
	var sb strings.Builder

	if cliErr.Type == ErrorTypeValidation {
		sb.WriteString("Invalid input")
		if len(cliErr.Fields) == 0 {
			sb.WriteString(": ")
			sb.WriteString(cliErr.Message)
		}
		sb.WriteString("\n")
		fields := make([]string, 0, len(cliErr.Fields))
		for f := range cliErr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(&sb, "  - %s: %s\n", f, cliErr.Fields[f])
		}
		return sb.String()
	}

	sb.WriteString("Something went wrong")
	if cliErr.Type != ErrorTypeUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(cliErr.Type))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(cliErr.Message)
	sb.WriteString("\n")

	if cliErr.HasSuggestion() {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(cliErr.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
