package ports

import "context"

// IndexInput is the DTO handed from the listing service to the search
// index pipeline when a new animal is registered.
type IndexInput struct {
	AnimalID    string
	Name        string
	Description string
}

// IndexService turns a freshly registered animal into search keywords.
type IndexService interface {
	Process(ctx context.Context, input IndexInput) error
}

// IndexEnqueuer decouples the listing service from the worker pool that
// runs IndexService asynchronously.
type IndexEnqueuer interface {
	Enqueue(input IndexInput)
}
