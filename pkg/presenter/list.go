package presenter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/pkg/client"
)

// ListView receives the results of a listing flow.
type ListView interface {
	ShowAnimals(list *client.AnimalList)
	ShowMetadata(md *client.Metadata)
}

// ListPresenter drives the animal listing screen.
type ListPresenter struct {
	api   AnimalAPI
	store TokenSource
	view  ListView
	log   zerolog.Logger
}

// NewListPresenter wires a listing flow to its view.
func NewListPresenter(api AnimalAPI, store TokenSource, view ListView, log zerolog.Logger) *ListPresenter {
	return &ListPresenter{api: api, store: store, view: view, log: log}
}

// Start runs the initial load: an unfiltered listing.
func (p *ListPresenter) Start(ctx context.Context) error {
	return p.ListAnimals(ctx, "", true)
}

// ListAnimals resolves the session, refreshes the catalogue metadata and
// pushes the matching animals to the view. Every call re-fetches; the
// refresh flag is bookkeeping for the caller's pull-to-refresh UI and
// does not change query semantics. Metadata requires a session and is
// best effort: a failure is logged, never surfaced, and never
// suppresses the listing itself.
func (p *ListPresenter) ListAnimals(ctx context.Context, query string, refresh bool) error {
	token := p.store.ResolveToken(ctx)

	if !token.IsZero() {
		md, err := p.api.GetMetadata(ctx, token)
		if err != nil {
			p.log.Warn().Err(err).Msg("metadata refresh failed")
		} else {
			p.view.ShowMetadata(md)
		}
	}

	list, err := p.api.SearchAnimals(ctx, token, client.SearchQuery{Query: query})
	if err != nil {
		return err
	}

	p.view.ShowAnimals(list)
	return nil
}

// Logout ends the current session.
func (p *ListPresenter) Logout(ctx context.Context) error {
	return p.store.Logout(ctx)
}
