// Package session holds the client-side authentication state: the opaque
// token carried on every listing call, and the store that resolves it
// from the login collaborator.
package session

import "context"

// Token is the opaque session token issued at login. The zero value means
// "no session": every call site can distinguish the unauthenticated-but-
// legal path explicitly.
type Token string

// NoToken is the absent token.
const NoToken Token = ""

// IsZero reports whether the token is absent.
func (t Token) IsZero() bool {
	return t == NoToken
}

// Session is the authenticated user context. It lives only for the
// process lifetime; persistence, if any, belongs to the login provider.
type Session struct {
	UserID     string `json:"user_id"`
	HandleName string `json:"handle_name"`
	Token      Token  `json:"token"`
}

// Valid reports whether the session carries a token.
func (s *Session) Valid() bool {
	return s != nil && !s.Token.IsZero()
}

// LoginProvider is the login/session collaborator consulted on every
// listing operation. IsLoggedIn returns (nil, nil) when no session
// exists; that is not an error.
type LoginProvider interface {
	IsLoggedIn(ctx context.Context) (*Session, error)
	Logout(ctx context.Context) error
}
