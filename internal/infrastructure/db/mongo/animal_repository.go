package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/animalia/listing-system/internal/core/domain"
)

const collectionAnimals = "animals"

type AnimalRepository struct {
	col *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{col: db.Collection(collectionAnimals)}
}

// Search returns active animals matching the free-text query, newest first.
// The match is a case-insensitive substring on name or description.
func (r *AnimalRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.col.Find(ctx, searchFilter(query), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	animals := []domain.Animal{}
	if err := cursor.All(ctx, &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// CountMatching reports the total number of active animals the query
// matches, regardless of paging.
func (r *AnimalRepository) CountMatching(ctx context.Context, query string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, searchFilter(query))
}

// searchFilter is the shared filter for Search and CountMatching: active
// records only, case-insensitive substring match on name or description.
func searchFilter(query string) bson.M {
	filter := bson.M{"deactivated": false}
	if query != "" {
		regex := bson.M{"$regex": query, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
		}
	}
	return filter
}

// FindByID retrieves a single animal by identifier.
func (r *AnimalRepository) FindByID(ctx context.Context, id string, includeDeactivated bool) (*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if !includeDeactivated {
		filter["deactivated"] = false
	}

	var a domain.Animal
	err := r.col.FindOne(ctx, filter).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Insert persists a new animal document.
func (r *AnimalRepository) Insert(ctx context.Context, animal *domain.Animal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, animal)
	return err
}

// Count reports the number of active animal documents.
func (r *AnimalRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"deactivated": false})
}
