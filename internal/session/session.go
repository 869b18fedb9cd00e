// Package session holds the local record of the signed-in administrator:
// who they are, their bearer token, and whether the pair is valid. It is
// the single source of truth consulted by the API client and the route
// guard, and it survives restarts through a JSON file on disk.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grably/adminctl/pkg/domain"
)

// Store is the session state. All three fields change together: a session
// is either fully authenticated (user + token) or fully cleared. Methods
// are safe for concurrent use: bubbletea commands run in goroutines, and
// several in-flight requests may hit the unauthorized path at once.
type Store struct {
	mu            sync.RWMutex
	path          string
	user          *domain.Admin
	token         string
	authenticated bool
}

// NewStore creates a store persisting to path. The file is not read until
// Load is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load rehydrates the session from disk. A missing file leaves the store
// empty and is not an error; a corrupt file is.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("parse session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A half-written session on disk must not produce a half-authenticated
	// store: both user and token, or neither.
	if sess.User != nil && sess.Token != "" {
		u := *sess.User
		s.user = &u
		s.token = sess.Token
		s.authenticated = true
	} else {
		s.user = nil
		s.token = ""
		s.authenticated = false
	}
	return nil
}

// SetAuth records the signed-in administrator and their token, and persists
// the session. The token is stored as-is; no format validation.
func (s *Store) SetAuth(user *domain.Admin, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	s.token = token
	s.authenticated = true
	return s.saveLocked()
}

// ClearAuth wipes the session. Calling it on an already-cleared store is a
// no-op, so concurrent 401 handlers may all invoke it safely.
func (s *Store) ClearAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated && s.user == nil && s.token == "" {
		return nil
	}
	s.user = nil
	s.token = ""
	s.authenticated = false
	return s.saveLocked()
}

// UpdateUser replaces only the identity record, after a profile refresh.
// Token and authenticated state are untouched.
func (s *Store) UpdateUser(user *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	return s.saveLocked()
}

// Token returns the current bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in administrator, or nil.
func (s *Store) User() *domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a user and token are both present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// TokenExpiry returns the exp claim of the stored token, for display only.
// The signature is deliberately not verified; the backend is the judge of
// token validity; this just lets the UI show "expires in 2h".
func (s *Store) TokenExpiry() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// saveLocked writes the session file. Callers hold s.mu.
func (s *Store) saveLocked() error {
	sess := domain.Session{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.authenticated,
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
