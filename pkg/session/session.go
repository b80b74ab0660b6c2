package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the bearer token and the identity it belongs to. It is
// created once at start-up, read from its Store by Load, and cleared on
// logout or when the backend rejects the token.
type Session struct {
	store Store
	now   func() time.Time

	mu  sync.RWMutex
	rec *Record
}

// New creates a session backed by store. Call Load to pick up a persisted
// token.
func New(store Store) *Session {
	return &Session{store: store, now: time.Now}
}

// Load reads the persisted record, if any
func (s *Session) Load() error {
	rec, err := s.store.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.rec = rec
	s.mu.Unlock()
	return nil
}

// Set replaces the current record and persists it
func (s *Session) Set(rec Record) error {
	s.mu.Lock()
	s.rec = &rec
	s.mu.Unlock()
	return s.store.Save(&rec)
}

// Clear forgets the token in memory and in the store
func (s *Session) Clear() error {
	s.mu.Lock()
	s.rec = nil
	s.mu.Unlock()
	return s.store.Delete()
}

// Token returns the bearer token, or "" when there is none or it is a JWT
// whose exp has passed.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil || s.rec.AccessToken == "" {
		return ""
	}
	if exp, ok := tokenExpiry(s.rec.AccessToken); ok && !s.now().Before(exp) {
		return ""
	}
	return s.rec.AccessToken
}

// Current returns a copy of the record, or nil
func (s *Session) Current() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return nil
	}
	cp := *s.rec
	return &cp
}

// IsAuthenticated reports whether a usable token is held
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// tokenExpiry decodes exp from a JWT without verifying it. Opaque tokens
// report ok=false.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
