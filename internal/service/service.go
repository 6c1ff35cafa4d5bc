package service

import (
	"context"

	"menu-catalog/internal/model"
)

// ProductService defines the catalogue operations exposed to handlers.
type ProductService interface {
	// ListFeatured returns the newest available products, at most six.
	ListFeatured(ctx context.Context) ([]model.ProductDTO, error)

	// ListAll returns every available product.
	ListAll(ctx context.Context) ([]model.ProductDTO, error)

	// GetByID returns a single product.
	// Fails with a PRODUCT_NOT_FOUND domain error when the ID is unknown.
	GetByID(ctx context.Context, id int64) (*model.ProductDTO, error)

	// ListByCategory returns available products in the named category.
	// The name is matched case-insensitively; unknown names fail with an INVALID_CATEGORY domain error.
	ListByCategory(ctx context.Context, name string) ([]model.ProductDTO, error)

	// SearchByName returns available products whose name contains the fragment.
	SearchByName(ctx context.Context, name string) ([]model.ProductDTO, error)

	// Create stores a new product and returns it with its generated ID and timestamps.
	Create(ctx context.Context, input model.ProductDTO) (*model.ProductDTO, error)
}
