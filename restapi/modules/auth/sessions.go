// Package auth gates the directory API behind the shared access password
// kept in a dedicated cell of the source spreadsheet.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PasswordSource fetches the access password cell. Satisfied by
// *sheets.Client.
type PasswordSource interface {
	FetchCell(ctx context.Context, gid string) (string, error)
}

// passwordTTL bounds how long a fetched password is reused before the sheet
// is consulted again, so rotating the cell takes effect without a restart.
const passwordTTL = 5 * time.Minute

// Sessions issues and tracks bearer tokens for authenticated sessions. All
// state is in-memory; restarting the backend logs everyone out.
type Sessions struct {
	source PasswordSource
	gid    string

	mu        sync.RWMutex
	password  string
	fetchedAt time.Time
	tokens    map[string]time.Time // token -> issued at
}

// NewSessions returns an empty session registry reading the password from the
// given sheet tab.
func NewSessions(source PasswordSource, gid string) *Sessions {
	return &Sessions{
		source: source,
		gid:    gid,
		tokens: make(map[string]time.Time),
	}
}

// secret returns the current access password, refetching it from the sheet
// when the cached copy is stale.
func (s *Sessions) secret(ctx context.Context) (string, error) {
	s.mu.RLock()
	password, fetchedAt := s.password, s.fetchedAt
	s.mu.RUnlock()
	if password != "" && time.Since(fetchedAt) < passwordTTL {
		return password, nil
	}

	fetched, err := s.source.FetchCell(ctx, s.gid)
	if err != nil {
		return "", fmt.Errorf("failed to fetch access password: %w", err)
	}
	if fetched == "" {
		return "", fmt.Errorf("access password cell is empty")
	}

	s.mu.Lock()
	s.password = fetched
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return fetched, nil
}

// PasswordLength returns how many characters the access password has, for
// the login screen's input hint.
func (s *Sessions) PasswordLength(ctx context.Context) (int, error) {
	secret, err := s.secret(ctx)
	if err != nil {
		return 0, err
	}
	return len([]rune(secret)), nil
}

// Login validates the password and issues a session token. A wrong password
// returns ok=false with no error; only fetch failures error.
func (s *Sessions) Login(ctx context.Context, password string) (string, bool, error) {
	secret, err := s.secret(ctx)
	if err != nil {
		return "", false, err
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(secret)) != 1 {
		return "", false, nil
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now()
	s.mu.Unlock()
	return token, true, nil
}

// Logout revokes a session token. Unknown tokens are ignored.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Valid reports whether the token belongs to a live session.
func (s *Sessions) Valid(token string) bool {
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok
}

// IssuedAt returns when the session for token was opened.
func (s *Sessions) IssuedAt(token string) (time.Time, bool) {
	s.mu.RLock()
	issued, ok := s.tokens[token]
	s.mu.RUnlock()
	return issued, ok
}
