package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/internal/core/domain"
	"github.com/animalia/listing-system/internal/core/ports"
)

type AnimalService struct {
	repo       ports.AnimalRepository
	likeRepo   ports.LikeRepository
	indexQueue ports.IndexEnqueuer
	logger     zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, likeRepo ports.LikeRepository, indexQueue ports.IndexEnqueuer, logger zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, likeRepo: likeRepo, indexQueue: indexQueue, logger: logger}
}

// SearchAnimals runs a single-page free-text search. Zero results are a
// valid success, never an error.
func (s *AnimalService) SearchAnimals(ctx context.Context, input ports.SearchAnimalsInput) (*ports.SearchAnimalsResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = ports.DefaultSearchLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	animals, err := s.repo.Search(ctx, input.Query, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("query", input.Query).Msg("search failed")
		return nil, err
	}

	views := make([]ports.AnimalView, 0, len(animals))
	for i := range animals {
		views = append(views, toAnimalView(&animals[i]))
	}
	if err := s.attachLikes(ctx, views); err != nil {
		return nil, err
	}

	hits, err := s.repo.CountMatching(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	return &ports.SearchAnimalsResult{
		Hits:    int(hits),
		Animals: views,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// GetAnimal fetches by identifier. A missing id yields an empty slice.
func (s *AnimalService) GetAnimal(ctx context.Context, input ports.GetAnimalInput) ([]ports.AnimalView, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = ports.DefaultFetchLimit
	}
	if input.Offset > 0 {
		// a single record cannot be paged past
		return []ports.AnimalView{}, nil
	}

	animal, err := s.repo.FindByID(ctx, input.ID, input.IncludeDeactivated)
	if err != nil {
		if errors.Is(err, domain.ErrAnimalNotFound) {
			return []ports.AnimalView{}, nil
		}
		return nil, err
	}

	views := []ports.AnimalView{toAnimalView(animal)}
	if len(views) > limit {
		views = views[:limit]
	}
	if err := s.attachLikes(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// LikeAnimal records a like for an existing, active animal.
func (s *AnimalService) LikeAnimal(ctx context.Context, animalID, userID string) error {
	if _, err := s.repo.FindByID(ctx, animalID, false); err != nil {
		return err
	}

	like := &domain.Like{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.likeRepo.Add(ctx, like); err != nil {
		return err
	}

	s.logger.Info().Str("animal_id", animalID).Str("user_id", userID).Msg("animal liked")
	return nil
}

// attachLikes folds per-animal like counts into the views.
func (s *AnimalService) attachLikes(ctx context.Context, views []ports.AnimalView) error {
	if s.likeRepo == nil || len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}

	counts, err := s.likeRepo.CountByAnimalIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range views {
		views[i].Likes = counts[views[i].ID]
	}
	return nil
}

// CreateAnimal persists a fully-formed draft, assigns its identifier, and
// hands it to the search index pipeline.
func (s *AnimalService) CreateAnimal(ctx context.Context, input ports.CreateAnimalInput) (*ports.AnimalView, error) {
	now := time.Now().UTC()
	animal := &domain.Animal{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		AcquisitionDate: input.AcquisitionDate,
		PhotoURL:        input.PhotoURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := animal.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, animal); err != nil {
		s.logger.Error().Err(err).Str("name", animal.Name).Msg("failed to insert animal")
		return nil, err
	}

	if s.indexQueue != nil {
		s.indexQueue.Enqueue(ports.IndexInput{
			AnimalID:    animal.ID,
			Name:        animal.Name,
			Description: animal.Description,
		})
	}

	s.logger.Info().Str("animal_id", animal.ID).Str("owner_id", input.OwnerID).Msg("animal registered")

	view := toAnimalView(animal)
	return &view, nil
}

func toAnimalView(a *domain.Animal) ports.AnimalView {
	return ports.AnimalView{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Price:           a.Price,
		AcquisitionDate: a.AcquisitionDate,
		PhotoURL:        a.PhotoURL,
		CreatedAt:       a.CreatedAt,
	}
}
