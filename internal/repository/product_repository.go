package repository

import (
	"context"
	"errors"
	"fmt"

	"menu-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, description, price::text, category, image_url, is_available, created_at, updated_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	db     DB
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db DB, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// FindAvailable retrieves every product flagged as available.
func (r *productRepository) FindAvailable(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_available = TRUE
		ORDER BY created_at DESC, id DESC
	`

	return r.queryProducts(ctx, "available products", query)
}

// FindByCategory retrieves products in the category regardless of availability.
func (r *productRepository) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY created_at DESC, id DESC
	`

	return r.queryProducts(ctx, "products by category", query, string(category))
}

// FindAvailableByCategory retrieves available products in the category.
func (r *productRepository) FindAvailableByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1 AND is_available = TRUE
		ORDER BY created_at DESC, id DESC
	`

	return r.queryProducts(ctx, "available products by category", query, string(category))
}

// FindFeatured retrieves up to FeaturedLimit available products, newest first.
func (r *productRepository) FindFeatured(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_available = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	return r.queryProducts(ctx, "featured products", query, FeaturedLimit)
}

// SearchByName retrieves available products whose name contains fragment, ignoring case.
func (r *productRepository) SearchByName(ctx context.Context, fragment string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%' AND is_available = TRUE
		ORDER BY name, id
	`

	return r.queryProducts(ctx, "products by name", query, fragment)
}

// FindByID retrieves a single product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts the product and fills in the store-assigned ID and stored price.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, price, category, image_url, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, price::text, created_at, updated_at
	`

	var price string
	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price.String(),
		string(product.Category),
		product.ImageURL,
		product.IsAvailable,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID, &price, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	// NUMERIC(10,2) rounds the input; report what was stored
	product.Price, err = decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid stored price %q: %w", price, err)
	}

	r.logger.Debug().Int64("product_id", product.ID).Msg("product inserted")

	return nil
}

// queryProducts runs a multi-row product query and scans every row.
func (r *productRepository) queryProducts(ctx context.Context, what, query string, args ...any) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msgf("failed to query %s", what)
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// scanProduct reads one row in productColumns order.
func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		p        model.Product
		price    string
		category string
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&price,
		&category,
		&p.ImageURL,
		&p.IsAvailable,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return model.Product{}, err
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid price %q: %w", price, err)
	}

	p.Category = model.Category(category)
	if !p.Category.Valid() {
		return model.Product{}, fmt.Errorf("unknown category %q in store", category)
	}

	return p, nil
}
