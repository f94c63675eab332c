package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Store resolves and caches the current session token. Reads are safe for
// concurrent presenters; login-state changes are serialized against them.
type Store struct {
	mu       sync.RWMutex
	provider LoginProvider
	token    Token
	log      zerolog.Logger
}

// NewStore creates a Store backed by the given login provider.
func NewStore(provider LoginProvider, log zerolog.Logger) *Store {
	return &Store{provider: provider, log: log}
}

// ResolveToken queries the login provider for the current login state and
// returns the token, or NoToken when logged out. Not being logged in is
// never an error. Provider failures are logged and degrade to NoToken;
// the cache is cleared so a token the provider can no longer vouch for
// is not reused.
func (s *Store) ResolveToken(ctx context.Context) Token {
	sess, err := s.provider.IsLoggedIn(ctx)

	s.mu.Lock()
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("login state unavailable, proceeding unauthenticated")
		s.token = NoToken
	case sess.Valid():
		s.token = sess.Token
	default:
		s.token = NoToken
	}
	token := s.token
	s.mu.Unlock()

	return token
}

// Token returns the last resolved token without consulting the provider.
func (s *Store) Token() Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Logout delegates to the login provider and clears the cached token.
// Calling it while already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.provider.Logout(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = NoToken
	s.mu.Unlock()

	return nil
}
