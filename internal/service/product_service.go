package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menu-catalog/internal/metrics"
	"menu-catalog/internal/model"
	"menu-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ListFeatured returns the newest available products, at most six.
func (s *productService) ListFeatured(ctx context.Context) ([]model.ProductDTO, error) {
	products, err := s.productRepo.FindFeatured(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get featured products")
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved featured products")

	return model.ToDTOs(products), nil
}

// ListAll returns every available product.
func (s *productService) ListAll(ctx context.Context) ([]model.ProductDTO, error) {
	products, err := s.productRepo.FindAvailable(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get available products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved available products")

	return model.ToDTOs(products), nil
}

// GetByID returns a single product.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.NewProductNotFoundError(id)
	}

	dto := model.ToDTO(*product)
	return &dto, nil
}

// ListByCategory returns available products in the named category.
func (s *productService) ListByCategory(ctx context.Context, name string) ([]model.ProductDTO, error) {
	category, ok := model.ParseCategory(name)
	if !ok {
		s.logger.Warn().Str("category", name).Msg("invalid category")
		return nil, model.NewInvalidCategoryError(name)
	}

	products, err := s.productRepo.FindAvailableByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category.String()).Msg("failed to get products by category")
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	s.logger.Debug().
		Str("category", category.String()).
		Int("count", len(products)).
		Msg("retrieved products by category")

	return model.ToDTOs(products), nil
}

// SearchByName returns available products whose name contains the fragment.
func (s *productService) SearchByName(ctx context.Context, name string) ([]model.ProductDTO, error) {
	fragment := strings.TrimSpace(name)
	if fragment == "" {
		return []model.ProductDTO{}, nil
	}

	products, err := s.productRepo.SearchByName(ctx, fragment)
	if err != nil {
		s.logger.Error().Err(err).Str("name", fragment).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return model.ToDTOs(products), nil
}

// Create stores a new product and returns it with its generated ID and timestamps.
// Availability defaults to true when the input leaves it unset.
func (s *productService) Create(ctx context.Context, input model.ProductDTO) (*model.ProductDTO, error) {
	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	now := s.now()
	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsAvailable: available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	metrics.RecordProductCreated()
	s.logger.Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	dto := model.ToDTO(*product)
	return &dto, nil
}
