package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/animalia/listing-system/internal/core/ports"
)

// SearchIndex abstracts the keyword index store (Redis).
type SearchIndex interface {
	AddKeywords(ctx context.Context, animalID string, keywords []string) error
}

type indexService struct {
	index SearchIndex
	log   zerolog.Logger
}

// NewIndexService returns an IndexService implementation.
func NewIndexService(index SearchIndex, log zerolog.Logger) ports.IndexService {
	return &indexService{index: index, log: log}
}

// Process tokenizes the animal's name and description and registers the
// resulting keywords against its identifier.
func (s *indexService) Process(ctx context.Context, in ports.IndexInput) error {
	keywords := tokenize(in.Name + " " + in.Description)
	if len(keywords) == 0 {
		s.log.Debug().Str("animal_id", in.AnimalID).Msg("nothing to index")
		return nil
	}

	if err := s.index.AddKeywords(ctx, in.AnimalID, keywords); err != nil {
		return fmt.Errorf("index animal %s: %w", in.AnimalID, err)
	}

	s.log.Info().
		Str("animal_id", in.AnimalID).
		Int("keywords", len(keywords)).
		Msg("animal indexed")

	return nil
}

// tokenize lowercases the text, splits on non-letter/digit runes, and
// deduplicates while preserving first-seen order.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		keywords = append(keywords, f)
	}
	return keywords
}
