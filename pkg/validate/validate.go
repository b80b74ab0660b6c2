// Package validate checks form input before anything is sent to the backend
package validate

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sense-social/sense/cli/pkg/api"
)

const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MaxImageSize      = 10 * 1024 * 1024
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// Errors maps a form field to its message. A nil or empty Errors means the
// input is valid.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when there is nothing to report
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Fields returns the invalid field names in order
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Email checks the address format
func Email(errs Errors, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email format"
	}
}

// Password checks presence and minimum length
func Password(errs Errors, password string) {
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}
}

// Username checks length and charset
func Username(errs Errors, username string) {
	n := utf8.RuneCountInString(username)
	switch {
	case strings.TrimSpace(username) == "":
		errs["username"] = "Username is required"
	case n < MinUsernameLength:
		errs["username"] = fmt.Sprintf("Username must be at least %d characters", MinUsernameLength)
	case n > MaxUsernameLength:
		errs["username"] = fmt.Sprintf("Username must be at most %d characters", MaxUsernameLength)
	case !usernamePattern.MatchString(username):
		errs["username"] = "Username may only contain lowercase letters, digits and underscores"
	}
}

// Login validates the login form
func Login(email, password string) error {
	errs := Errors{}
	Email(errs, email)
	Password(errs, password)
	return errs.Err()
}

// Register validates the registration form
func Register(username, email, password, confirm string) error {
	errs := Errors{}

	Username(errs, username)
	Email(errs, email)
	Password(errs, password)

	switch {
	case confirm == "":
		errs["confirm_password"] = "Please confirm your password"
	case confirm != password:
		errs["confirm_password"] = "Passwords do not match"
	}

	return errs.Err()
}

// Draft is a publication about to be created
type Draft struct {
	Type    api.ContentType
	Title   string
	Content string
	Source  string
	// ImageName and Image are set when an image is attached
	ImageName string
	Image     []byte
}

// Publication validates a draft
func Publication(d Draft) error {
	errs := Errors{}

	if !d.Type.Valid() {
		errs["type"] = fmt.Sprintf("Unknown publication type %q", d.Type)
	}

	switch d.Type {
	case api.ContentArticle:
		if strings.TrimSpace(d.Title) == "" {
			errs["title"] = "Title is required"
		}
		if strings.TrimSpace(d.Content) == "" {
			errs["content"] = "Content is required"
		}
	case api.ContentPost, api.ContentQuote:
		if strings.TrimSpace(d.Content) == "" {
			errs["content"] = "Content is required"
		}
	}

	if d.Image != nil {
		if d.Type != api.ContentPost {
			errs["image"] = "Only posts can carry an image"
		} else if msg := imageProblem(d.Image); msg != "" {
			errs["image"] = msg
		}
	}

	return errs.Err()
}

// Image checks that data is an image within the upload limit
func Image(data []byte) error {
	if msg := imageProblem(data); msg != "" {
		return Errors{"image": msg}
	}
	return nil
}

func imageProblem(data []byte) string {
	if len(data) > MaxImageSize {
		return "File is too large (max 10MB)"
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "Invalid file type"
	}
	return ""
}

// Comment validates comment text
func Comment(text string) error {
	if strings.TrimSpace(text) == "" {
		return Errors{"content": "Comment cannot be empty"}
	}
	return nil
}
