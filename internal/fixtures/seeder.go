package fixtures

import (
	"context"
	"fmt"

	"menu-catalog/internal/model"

	"github.com/rs/zerolog"
)

// ProductCreator stores a single product. service.ProductService satisfies it.
type ProductCreator interface {
	Create(ctx context.Context, input model.ProductDTO) (*model.ProductDTO, error)
}

// CategoryLister lists every stored product in a category, available or not.
// repository.ProductRepository satisfies it.
type CategoryLister interface {
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
}

// SeedResult reports what a seeding run did.
type SeedResult struct {
	Created int
	// ByCategory holds the stored product count per category after seeding.
	// Nil when the seeder has no CategoryLister.
	ByCategory map[model.Category]int
}

// Seeder creates menu items through the catalogue service.
type Seeder struct {
	creator ProductCreator
	lister  CategoryLister
	logger  zerolog.Logger
}

// NewSeeder creates a seeder. lister may be nil.
func NewSeeder(creator ProductCreator, lister CategoryLister, logger zerolog.Logger) *Seeder {
	return &Seeder{
		creator: creator,
		lister:  lister,
		logger:  logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed creates items in order and stops at the first failure.
// Items created before the failure stay stored and are counted in the result.
func (s *Seeder) Seed(ctx context.Context, items []model.ProductDTO) (SeedResult, error) {
	var result SeedResult

	for i, item := range items {
		created, err := s.creator.Create(ctx, item)
		if err != nil {
			s.logger.Error().
				Err(err).
				Int("index", i).
				Str("name", item.Name).
				Msg("failed to seed menu item")
			return result, fmt.Errorf("failed to seed item %d (%s): %w", i, item.Name, err)
		}
		result.Created++

		s.logger.Debug().
			Int64("product_id", *created.ID).
			Str("name", created.Name).
			Msg("menu item seeded")
	}

	if s.lister != nil {
		counts, err := s.countByCategory(ctx)
		if err != nil {
			return result, err
		}
		result.ByCategory = counts
	}

	s.logger.Info().Int("created", result.Created).Msg("menu seeded")

	return result, nil
}

func (s *Seeder) countByCategory(ctx context.Context) (map[model.Category]int, error) {
	counts := make(map[model.Category]int, len(model.Categories()))
	for _, category := range model.Categories() {
		products, err := s.lister.FindByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s products: %w", category, err)
		}
		counts[category] = len(products)
	}
	return counts, nil
}
