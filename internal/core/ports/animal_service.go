package ports

import (
	"context"
	"time"
)

// Backend paging defaults, shared with the HTTP layer.
const (
	DefaultSearchLimit = 100
	DefaultFetchLimit  = 1
)

// SearchAnimalsInput carries all parameters for the search endpoint.
// Query may be empty; an empty query lists everything visible.
type SearchAnimalsInput struct {
	Query  string
	Limit  int
	Offset int
}

// AnimalView is the outward-facing shape of a single listing.
type AnimalView struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	AcquisitionDate string
	PhotoURL        string
	Likes           int64
	CreatedAt       time.Time
}

// SearchAnimalsResult is returned by SearchAnimals. Animals preserves
// repository order; Hits is the total number of matches, which may
// exceed the page size.
type SearchAnimalsResult struct {
	Hits    int
	Animals []AnimalView
	Limit   int
	Offset  int
}

// GetAnimalInput carries the parameters for a fetch-by-id.
type GetAnimalInput struct {
	ID                 string
	IncludeDeactivated bool
	Limit              int
	Offset             int
}

// CreateAnimalInput is a fully-formed registration draft. Name,
// Description and PhotoURL are mandatory; the rest is optional.
type CreateAnimalInput struct {
	Name            string
	Description     string
	PhotoURL        string
	Price           float64
	AcquisitionDate string
	OwnerID         string
}

// AnimalService defines the listing use-cases.
type AnimalService interface {
	SearchAnimals(ctx context.Context, input SearchAnimalsInput) (*SearchAnimalsResult, error)

	// GetAnimal returns at most Limit matching listings. A missing id is
	// not an error: the result is simply empty.
	GetAnimal(ctx context.Context, input GetAnimalInput) ([]AnimalView, error)

	CreateAnimal(ctx context.Context, input CreateAnimalInput) (*AnimalView, error)

	// LikeAnimal records that the user likes the animal. Liking twice is
	// domain.ErrAlreadyLiked; an unknown id is domain.ErrAnimalNotFound.
	LikeAnimal(ctx context.Context, animalID, userID string) error
}

// MetadataService assembles the opaque metadata payload served to
// authenticated clients: category inventory plus listing count.
type MetadataService interface {
	// Get returns the metadata document as raw JSON.
	Get(ctx context.Context) ([]byte, error)
}
