// Package session holds the authentication state of the running client.
//
// The token is read from the local store once, at boot, and afterwards only
// changes through Begin (login) and End (logout). Gate decides from the token's
// presence alone whether the entry list may be shown; the token is never
// validated locally.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/classroom/internal/client/repositories/metadata"
)

// Store is the subset of the metadata repository a session needs.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetMany(ctx context.Context, values map[string]string) error
	DeleteMany(ctx context.Context, keys ...string) error
}

type Session struct {
	mu       sync.RWMutex
	store    Store
	token    string
	username string
}

// Init loads the stored token and username.
func Init(ctx context.Context, store Store) (*Session, error) {
	token, _, err := store.Get(ctx, metadata.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	username, _, err := store.Get(ctx, metadata.KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("load session username: %w", err)
	}
	return &Session{store: store, token: token, username: username}, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Authenticated reports whether a non-empty token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Begin persists username and token, then makes them current.
func (s *Session) Begin(ctx context.Context, username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.SetMany(ctx, map[string]string{
		metadata.KeyToken:    token,
		metadata.KeyUsername: username,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token = token
	s.username = username
	return nil
}

// End forgets the session both in memory and in the store. The in-memory
// state is cleared even when the store fails.
func (s *Session) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.username = ""
	if err := s.store.DeleteMany(ctx, metadata.KeyToken, metadata.KeyUsername); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

type Decision int

const (
	RedirectLogin Decision = iota
	ShowEntries
)

func (d Decision) String() string {
	switch d {
	case ShowEntries:
		return "show-entries"
	default:
		return "redirect-login"
	}
}

// Gate returns ShowEntries for an authenticated session, RedirectLogin
// otherwise (including a nil session).
func Gate(s *Session) Decision {
	if s != nil && s.Authenticated() {
		return ShowEntries
	}
	return RedirectLogin
}
