package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/internal/core/domain"
	"github.com/animalia/listing-system/internal/core/ports"
)

type stubAnimalRepo struct {
	animals []domain.Animal
	err     error
}

func (r *stubAnimalRepo) matching(query string) []domain.Animal {
	matched := make([]domain.Animal, 0, len(r.animals))
	for _, a := range r.animals {
		if a.Deactivated {
			continue
		}
		if query == "" || strings.Contains(strings.ToLower(a.Name+" "+a.Description), strings.ToLower(query)) {
			matched = append(matched, a)
		}
	}
	return matched
}

func (r *stubAnimalRepo) Search(_ context.Context, query string, limit, offset int) ([]domain.Animal, error) {
	if r.err != nil {
		return nil, r.err
	}
	matched := r.matching(query)
	if offset >= len(matched) {
		return []domain.Animal{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *stubAnimalRepo) CountMatching(_ context.Context, query string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.matching(query))), nil
}

func (r *stubAnimalRepo) FindByID(_ context.Context, id string, includeDeactivated bool) (*domain.Animal, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.animals {
		a := r.animals[i]
		if a.ID != id {
			continue
		}
		if a.Deactivated && !includeDeactivated {
			return nil, domain.ErrAnimalNotFound
		}
		return &a, nil
	}
	return nil, domain.ErrAnimalNotFound
}

func (r *stubAnimalRepo) Insert(_ context.Context, animal *domain.Animal) error {
	if r.err != nil {
		return r.err
	}
	r.animals = append(r.animals, *animal)
	return nil
}

func (r *stubAnimalRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, a := range r.animals {
		if !a.Deactivated {
			n++
		}
	}
	return n, nil
}

type stubEnqueuer struct {
	inputs []ports.IndexInput
}

func (q *stubEnqueuer) Enqueue(in ports.IndexInput) {
	q.inputs = append(q.inputs, in)
}

type stubLikeRepo struct {
	likes []domain.Like
	err   error
}

func (r *stubLikeRepo) Add(_ context.Context, like *domain.Like) error {
	if r.err != nil {
		return r.err
	}
	for _, l := range r.likes {
		if l.AnimalID == like.AnimalID && l.UserID == like.UserID {
			return domain.ErrAlreadyLiked
		}
	}
	r.likes = append(r.likes, *like)
	return nil
}

func (r *stubLikeRepo) CountByAnimalIDs(_ context.Context, animalIDs []string) (map[string]int64, error) {
	if r.err != nil {
		return nil, r.err
	}
	wanted := make(map[string]bool, len(animalIDs))
	for _, id := range animalIDs {
		wanted[id] = true
	}
	counts := make(map[string]int64)
	for _, l := range r.likes {
		if wanted[l.AnimalID] {
			counts[l.AnimalID]++
		}
	}
	return counts, nil
}

func seededRepo() *stubAnimalRepo {
	return &stubAnimalRepo{animals: []domain.Animal{
		{ID: "a1", Name: "Rex", Description: "Friendly dog", PhotoURL: "http://img/1.jpg"},
		{ID: "a2", Name: "Mia", Description: "Sleepy cat", PhotoURL: "http://img/2.jpg"},
		{ID: "a3", Name: "Coco", Description: "Loud parrot", PhotoURL: "http://img/3.jpg"},
		{ID: "a4", Name: "Ghost", Description: "Retired dog", PhotoURL: "http://img/4.jpg", Deactivated: true},
	}}
}

func TestAnimalService_SearchAnimals_All(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	result, err := svc.SearchAnimals(context.Background(), ports.SearchAnimalsInput{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Hits != 3 || len(result.Animals) != 3 {
		t.Fatalf("expected 3 active animals, got %d", result.Hits)
	}
	if result.Limit != ports.DefaultSearchLimit || result.Offset != 0 {
		t.Fatalf("expected default paging, got limit=%d offset=%d", result.Limit, result.Offset)
	}
	// repository order must be preserved
	if result.Animals[0].ID != "a1" || result.Animals[2].ID != "a3" {
		t.Fatalf("unexpected ordering: %+v", result.Animals)
	}
}

func TestAnimalService_SearchAnimals_Query(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	result, err := svc.SearchAnimals(context.Background(), ports.SearchAnimalsInput{Query: "dog"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Hits != 1 || result.Animals[0].ID != "a1" {
		t.Fatalf("expected only active dog, got %+v", result.Animals)
	}
}

func TestAnimalService_SearchAnimals_NoMatchIsSuccess(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	result, err := svc.SearchAnimals(context.Background(), ports.SearchAnimalsInput{Query: "unicorn"})
	if err != nil {
		t.Fatalf("zero results must not be an error, got %v", err)
	}
	if result.Hits != 0 {
		t.Fatalf("expected no hits, got %d", result.Hits)
	}
}

func TestAnimalService_GetAnimal_Found(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	views, err := svc.GetAnimal(context.Background(), ports.GetAnimalInput{ID: "a2"})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(views) != 1 || views[0].Name != "Mia" {
		t.Fatalf("unexpected result: %+v", views)
	}
}

func TestAnimalService_GetAnimal_MissingIsEmpty(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	views, err := svc.GetAnimal(context.Background(), ports.GetAnimalInput{ID: "nope"})
	if err != nil {
		t.Fatalf("missing id must not be an error, got %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty result, got %+v", views)
	}
}

func TestAnimalService_GetAnimal_DeactivatedFilter(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	views, err := svc.GetAnimal(context.Background(), ports.GetAnimalInput{ID: "a4"})
	if err != nil || len(views) != 0 {
		t.Fatalf("deactivated animal should be hidden: %v %+v", err, views)
	}

	views, err = svc.GetAnimal(context.Background(), ports.GetAnimalInput{ID: "a4", IncludeDeactivated: true})
	if err != nil || len(views) != 1 {
		t.Fatalf("deactivated animal should be visible when requested: %v %+v", err, views)
	}
}

func TestAnimalService_CreateAnimal(t *testing.T) {
	repo := seededRepo()
	queue := &stubEnqueuer{}
	svc := NewAnimalService(repo, nil, queue, zerolog.Nop())

	created, err := svc.CreateAnimal(context.Background(), ports.CreateAnimalInput{
		Name:        "Hana",
		Description: "Shiba puppy",
		PhotoURL:    "http://img/5.jpg",
		Price:       120,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned identifier")
	}

	// round trip through the repository
	views, err := svc.GetAnimal(context.Background(), ports.GetAnimalInput{ID: created.ID})
	if err != nil || len(views) != 1 {
		t.Fatalf("created animal not retrievable: %v %+v", err, views)
	}
	if views[0].Name != "Hana" || views[0].Description != "Shiba puppy" || views[0].PhotoURL != "http://img/5.jpg" {
		t.Fatalf("round-tripped fields mismatch: %+v", views[0])
	}

	if len(queue.inputs) != 1 || queue.inputs[0].AnimalID != created.ID {
		t.Fatalf("expected one index enqueue for %s, got %+v", created.ID, queue.inputs)
	}
}

func TestAnimalService_CreateAnimal_Incomplete(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, &stubEnqueuer{}, zerolog.Nop())

	_, err := svc.CreateAnimal(context.Background(), ports.CreateAnimalInput{
		Name:        "NoPhoto",
		Description: "missing image",
	})
	if err != domain.ErrInvalidAnimal {
		t.Fatalf("expected ErrInvalidAnimal, got %v", err)
	}
}

func TestAnimalService_SearchAnimals_HitsCountAllMatches(t *testing.T) {
	svc := NewAnimalService(seededRepo(), nil, nil, zerolog.Nop())

	result, err := svc.SearchAnimals(context.Background(), ports.SearchAnimalsInput{Limit: 2})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Animals) != 2 {
		t.Fatalf("expected page of 2, got %d", len(result.Animals))
	}
	// hits covers every match, not just the returned page
	if result.Hits != 3 {
		t.Fatalf("expected 3 hits, got %d", result.Hits)
	}
}

func TestAnimalService_SearchAnimals_LikeCounts(t *testing.T) {
	likeRepo := &stubLikeRepo{likes: []domain.Like{
		{ID: "l1", AnimalID: "a1", UserID: "u1"},
		{ID: "l2", AnimalID: "a1", UserID: "u2"},
		{ID: "l3", AnimalID: "a3", UserID: "u1"},
	}}
	svc := NewAnimalService(seededRepo(), likeRepo, nil, zerolog.Nop())

	result, err := svc.SearchAnimals(context.Background(), ports.SearchAnimalsInput{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	byID := make(map[string]int64, len(result.Animals))
	for _, v := range result.Animals {
		byID[v.ID] = v.Likes
	}
	if byID["a1"] != 2 || byID["a2"] != 0 || byID["a3"] != 1 {
		t.Fatalf("unexpected like counts: %+v", byID)
	}
}

func TestAnimalService_GetAnimal_LikeCount(t *testing.T) {
	likeRepo := &stubLikeRepo{likes: []domain.Like{
		{ID: "l1", AnimalID: "a2", UserID: "u1"},
	}}
	svc := NewAnimalService(seededRepo(), likeRepo, nil, zerolog.Nop())

	views, err := svc.GetAnimal(context.Background(), ports.GetAnimalInput{ID: "a2"})
	if err != nil || len(views) != 1 {
		t.Fatalf("get failed: %v %+v", err, views)
	}
	if views[0].Likes != 1 {
		t.Fatalf("expected 1 like, got %d", views[0].Likes)
	}
}

func TestAnimalService_LikeAnimal(t *testing.T) {
	likeRepo := &stubLikeRepo{}
	svc := NewAnimalService(seededRepo(), likeRepo, nil, zerolog.Nop())

	if err := svc.LikeAnimal(context.Background(), "a1", "u1"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if len(likeRepo.likes) != 1 {
		t.Fatalf("expected one stored like, got %d", len(likeRepo.likes))
	}
	stored := likeRepo.likes[0]
	if stored.AnimalID != "a1" || stored.UserID != "u1" || stored.ID == "" {
		t.Fatalf("unexpected stored like: %+v", stored)
	}
}

func TestAnimalService_LikeAnimal_Duplicate(t *testing.T) {
	likeRepo := &stubLikeRepo{}
	svc := NewAnimalService(seededRepo(), likeRepo, nil, zerolog.Nop())

	if err := svc.LikeAnimal(context.Background(), "a1", "u1"); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	if err := svc.LikeAnimal(context.Background(), "a1", "u1"); err != domain.ErrAlreadyLiked {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}
}

func TestAnimalService_LikeAnimal_UnknownAnimal(t *testing.T) {
	likeRepo := &stubLikeRepo{}
	svc := NewAnimalService(seededRepo(), likeRepo, nil, zerolog.Nop())

	if err := svc.LikeAnimal(context.Background(), "nope", "u1"); err != domain.ErrAnimalNotFound {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
	if len(likeRepo.likes) != 0 {
		t.Fatalf("no like should be stored, got %+v", likeRepo.likes)
	}
}
