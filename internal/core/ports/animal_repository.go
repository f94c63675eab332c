package ports

import (
	"context"

	"github.com/animalia/listing-system/internal/core/domain"
)

// AnimalRepository is the persistence boundary for animal listings.
type AnimalRepository interface {
	// Search returns active animals matching the free-text query, in
	// newest-first order. An empty query matches everything.
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Animal, error)

	// FindByID returns the animal with the given identifier, or
	// domain.ErrAnimalNotFound. Deactivated records are excluded unless
	// includeDeactivated is set.
	FindByID(ctx context.Context, id string, includeDeactivated bool) (*domain.Animal, error)

	// Insert persists a new animal record.
	Insert(ctx context.Context, animal *domain.Animal) error

	// CountMatching reports how many active records the query matches in
	// total, regardless of paging.
	CountMatching(ctx context.Context, query string) (int64, error)

	// Count reports the number of active animal records.
	Count(ctx context.Context) (int64, error)
}

// LikeRepository is the persistence boundary for likes.
type LikeRepository interface {
	// Add persists a like, or returns domain.ErrAlreadyLiked when the
	// user has already liked this animal.
	Add(ctx context.Context, like *domain.Like) error

	// CountByAnimalIDs returns like counts keyed by animal id. Animals
	// with no likes are absent from the map.
	CountByAnimalIDs(ctx context.Context, animalIDs []string) (map[string]int64, error)
}

// CategoryRepository serves the category inventory for the metadata endpoint.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.AnimalCategory, error)
	ListSubcategories(ctx context.Context) ([]domain.AnimalSubcategory, error)
}
