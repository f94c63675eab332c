// Package presenter implements the screen-facing flows of a listing
// frontend: browsing, detail lookup and registration. Presenters own no
// UI; they resolve the session token, call the backend and push results
// into a constructor-injected view.
package presenter

import (
	"context"

	"github.com/animalia/listing-system/pkg/client"
	"github.com/animalia/listing-system/pkg/session"
)

// AnimalAPI is the backend surface the presenters consume. *client.Client
// satisfies it.
type AnimalAPI interface {
	GetMetadata(ctx context.Context, token session.Token) (*client.Metadata, error)
	SearchAnimals(ctx context.Context, token session.Token, q client.SearchQuery) (*client.AnimalList, error)
	GetAnimal(ctx context.Context, token session.Token, id string, q client.FetchQuery) (*client.Animal, error)
	CreateAnimal(ctx context.Context, token session.Token, draft client.Draft) (*client.Animal, error)
}

// TokenSource resolves the current session token and ends sessions.
// *session.Store satisfies it.
type TokenSource interface {
	ResolveToken(ctx context.Context) session.Token
	Logout(ctx context.Context) error
}
