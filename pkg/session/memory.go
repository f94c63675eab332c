package session

import (
	"context"
	"sync"
)

// MemoryProvider is an in-process LoginProvider. The surrounding
// application sets the session after a successful login call and the
// provider serves it until logout.
type MemoryProvider struct {
	mu      sync.Mutex
	session *Session
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

// SetSession installs the session returned by a login call.
func (p *MemoryProvider) SetSession(sess *Session) {
	p.mu.Lock()
	p.session = sess
	p.mu.Unlock()
}

func (p *MemoryProvider) IsLoggedIn(_ context.Context) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session, nil
}

// Logout drops the session. Idempotent.
func (p *MemoryProvider) Logout(_ context.Context) error {
	p.mu.Lock()
	p.session = nil
	p.mu.Unlock()
	return nil
}
