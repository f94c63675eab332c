package presenter

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/pkg/client"
)

// ErrIncompleteDraft is returned when a submission is attempted before
// name, description and image are all set.
var ErrIncompleteDraft = errors.New("draft is incomplete")

// RegistrationView receives the stored record after a submission.
type RegistrationView interface {
	ShowRegistered(a *client.Animal)
}

// RegistrationPresenter accumulates a draft field by field and submits
// it as one record. Field setters and submission may run from different
// goroutines; the draft is guarded accordingly.
type RegistrationPresenter struct {
	api   AnimalAPI
	store TokenSource
	view  RegistrationView
	log   zerolog.Logger

	mu          sync.Mutex
	name        string
	description string
	imageURI    string
}

// NewRegistrationPresenter wires a registration flow to its view.
func NewRegistrationPresenter(api AnimalAPI, store TokenSource, view RegistrationView, log zerolog.Logger) *RegistrationPresenter {
	return &RegistrationPresenter{api: api, store: store, view: view, log: log}
}

// SetAnimalName records the draft name.
func (p *RegistrationPresenter) SetAnimalName(name string) {
	p.mu.Lock()
	p.name = name
	p.mu.Unlock()
}

// SetAnimalDescription records the draft description.
func (p *RegistrationPresenter) SetAnimalDescription(description string) {
	p.mu.Lock()
	p.description = description
	p.mu.Unlock()
}

// SetImageURI records the draft photo location.
func (p *RegistrationPresenter) SetImageURI(uri string) {
	p.mu.Lock()
	p.imageURI = uri
	p.mu.Unlock()
}

// MakeAnimal assembles the current fields into a submittable draft, or
// returns nil while any required field is still missing.
func (p *RegistrationPresenter) MakeAnimal() *client.Draft {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.makeLocked()
}

func (p *RegistrationPresenter) makeLocked() *client.Draft {
	if p.name == "" || p.description == "" || p.imageURI == "" {
		return nil
	}
	return &client.Draft{
		Name:        p.name,
		Description: p.description,
		PhotoURL:    p.imageURI,
	}
}

// AddAnimal submits the current draft. An incomplete draft yields
// ErrIncompleteDraft without touching the backend. On success the draft
// is cleared and the stored record is pushed to the view; on failure the
// draft is kept so the user can retry.
func (p *RegistrationPresenter) AddAnimal(ctx context.Context) (*client.Animal, error) {
	p.mu.Lock()
	draft := p.makeLocked()
	p.mu.Unlock()

	if draft == nil {
		return nil, ErrIncompleteDraft
	}

	token := p.store.ResolveToken(ctx)
	a, err := p.api.CreateAnimal(ctx, token, *draft)
	if err != nil {
		return nil, err
	}

	p.ClearCurrentValues()
	p.view.ShowRegistered(a)
	return a, nil
}

// ClearCurrentValues discards the accumulated draft fields.
func (p *RegistrationPresenter) ClearCurrentValues() {
	p.mu.Lock()
	p.name = ""
	p.description = ""
	p.imageURI = ""
	p.mu.Unlock()
}
