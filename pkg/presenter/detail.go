package presenter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/pkg/client"
)

// DetailView receives a single loaded record.
type DetailView interface {
	ShowAnimal(a *client.Animal)
}

// DetailPresenter drives the single-animal detail screen.
type DetailPresenter struct {
	api   AnimalAPI
	store TokenSource
	view  DetailView
	log   zerolog.Logger
}

// NewDetailPresenter wires a detail flow to its view.
func NewDetailPresenter(api AnimalAPI, store TokenSource, view DetailView, log zerolog.Logger) *DetailPresenter {
	return &DetailPresenter{api: api, store: store, view: view, log: log}
}

// LoadAnimal fetches one active record and pushes it to the view. An id
// the backend does not know yields client.ErrNotFound: on a detail
// screen absence is an error, unlike in the client itself.
func (p *DetailPresenter) LoadAnimal(ctx context.Context, id string) error {
	token := p.store.ResolveToken(ctx)

	a, err := p.api.GetAnimal(ctx, token, id, client.FetchQuery{})
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("%w: %s", client.ErrNotFound, id)
	}

	p.view.ShowAnimal(a)
	return nil
}
