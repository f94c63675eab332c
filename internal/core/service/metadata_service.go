package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/internal/api/metrics"
	"github.com/animalia/listing-system/internal/core/domain"
	"github.com/animalia/listing-system/internal/core/ports"
)

// MetadataCache abstracts the Redis-backed payload cache. Get returns
// (nil, nil) on a miss.
type MetadataCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
}

type metadataService struct {
	animalRepo   ports.AnimalRepository
	categoryRepo ports.CategoryRepository
	cache        MetadataCache
	log          zerolog.Logger
}

// NewMetadataService returns a MetadataService implementation.
func NewMetadataService(
	animalRepo ports.AnimalRepository,
	categoryRepo ports.CategoryRepository,
	cache MetadataCache,
	log zerolog.Logger,
) ports.MetadataService {
	return &metadataService{
		animalRepo:   animalRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		log:          log,
	}
}

// metadataDocument is the payload shape. Clients treat it as opaque JSON.
type metadataDocument struct {
	AnimalCategories    []domain.AnimalCategory    `json:"animal_category"`
	AnimalSubcategories []domain.AnimalSubcategory `json:"animal_subcategory"`
	AnimalCount         int64                      `json:"animal_count"`
}

// Get serves the metadata document, preferring the cache. Cache failures
// degrade to a rebuild, they never fail the request.
func (s *metadataService) Get(ctx context.Context) ([]byte, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("metadata cache read failed, rebuilding")
		} else if cached != nil {
			metrics.MetadataCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.MetadataCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("metadata: list categories: %w", err)
	}
	subcategories, err := s.categoryRepo.ListSubcategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("metadata: list subcategories: %w", err)
	}
	count, err := s.animalRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("metadata: count animals: %w", err)
	}

	doc := metadataDocument{
		AnimalCategories:    categories,
		AnimalSubcategories: subcategories,
		AnimalCount:         count,
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("metadata: marshal: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, payload); err != nil {
			s.log.Warn().Err(err).Msg("metadata cache write failed")
		}
	}

	return payload, nil
}
