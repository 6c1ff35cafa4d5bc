package repository

import (
	"context"

	"menu-catalog/internal/model"
)

// FeaturedLimit caps the number of products returned by FindFeatured.
const FeaturedLimit = 6

// ProductRepository defines the interface for product data access operations.
// List methods return an empty slice, never an error, when nothing matches.
type ProductRepository interface {
	// FindAvailable retrieves every product flagged as available.
	FindAvailable(ctx context.Context) ([]model.Product, error)

	// FindByCategory retrieves products in the category regardless of availability.
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)

	// FindAvailableByCategory retrieves available products in the category.
	FindAvailableByCategory(ctx context.Context, category model.Category) ([]model.Product, error)

	// FindFeatured retrieves up to FeaturedLimit available products, newest first.
	FindFeatured(ctx context.Context) ([]model.Product, error)

	// FindByID retrieves a single product by its ID.
	// Returns nil without an error when no such product exists.
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// SearchByName retrieves available products whose name contains fragment, ignoring case.
	SearchByName(ctx context.Context, fragment string) ([]model.Product, error)

	// Create inserts the product and fills in the store-assigned ID.
	Create(ctx context.Context, product *model.Product) error
}
