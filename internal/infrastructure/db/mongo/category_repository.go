package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/animalia/listing-system/internal/core/domain"
)

const (
	collectionCategories    = "animal_categories"
	collectionSubcategories = "animal_subcategories"
)

// CategoryRepository serves the category inventory used by the metadata
// endpoint. The collections are seed data, written out-of-band.
type CategoryRepository struct {
	categories    *mongo.Collection
	subcategories *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		categories:    db.Collection(collectionCategories),
		subcategories: db.Collection(collectionSubcategories),
	}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.AnimalCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []domain.AnimalCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) ListSubcategories(ctx context.Context) ([]domain.AnimalSubcategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.subcategories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subcategories := []domain.AnimalSubcategory{}
	if err := cursor.All(ctx, &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}
