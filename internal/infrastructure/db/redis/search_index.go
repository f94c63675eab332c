package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SearchIndex maintains the keyword index written by the async index
// pipeline. Key format: index:keyword:<keyword> -> set of animal ids.
type SearchIndex struct {
	client *redis.Client
}

// NewSearchIndex creates a SearchIndex wrapping the given Redis client.
func NewSearchIndex(client *redis.Client) *SearchIndex {
	return &SearchIndex{client: client}
}

// AddKeywords registers the animal id under every keyword in one pipeline.
func (i *SearchIndex) AddKeywords(ctx context.Context, animalID string, keywords []string) error {
	pipe := i.client.Pipeline()
	for _, kw := range keywords {
		pipe.SAdd(ctx, i.key(kw), animalID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("index keywords: %w", err)
	}
	return nil
}

func (i *SearchIndex) key(keyword string) string {
	return fmt.Sprintf("index:keyword:%s", keyword)
}
