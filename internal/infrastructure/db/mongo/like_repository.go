package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/animalia/listing-system/internal/core/domain"
)

const collectionLikes = "likes"

// LikeRepository persists likes. Uniqueness of (animal_id, user_id)
// relies on a unique compound index on the collection.
type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection(collectionLikes)}
}

func (r *LikeRepository) Add(ctx context.Context, like *domain.Like) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, like)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyLiked
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) CountByAnimalIDs(ctx context.Context, animalIDs []string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"animal_id": bson.M{"$in": animalIDs}}},
		{"$group": bson.M{"_id": "$animal_id", "count": bson.M{"$sum": 1}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		AnimalID string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode like counts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.AnimalID] = row.Count
	}
	return counts, nil
}
