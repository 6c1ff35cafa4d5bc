package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a menu item in the catalogue.
type Product struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Category    Category        `db:"category"`
	ImageURL    string          `db:"image_url"`
	IsAvailable bool            `db:"is_available"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// ProductDTO is the request/response representation of a product.
// Server-assigned fields are pointers so they can be absent on input.
type ProductDTO struct {
	ID          *int64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable *bool           `json:"isAvailable"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

// PriceScale is the number of decimal places prices are stored and written with.
const PriceScale = 2

// MarshalJSON writes price as a JSON number with exactly PriceScale decimals.
func (d ProductDTO) MarshalJSON() ([]byte, error) {
	type plain ProductDTO
	return json.Marshal(struct {
		plain
		Price json.RawMessage `json:"price"`
	}{
		plain: plain(d),
		Price: json.RawMessage(d.Price.StringFixed(PriceScale)),
	})
}

// ToDTO copies a stored product into its transfer representation.
func ToDTO(p Product) ProductDTO {
	id := p.ID
	available := p.IsAvailable
	createdAt := p.CreatedAt
	updatedAt := p.UpdatedAt

	return ProductDTO{
		ID:          &id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsAvailable: &available,
		CreatedAt:   &createdAt,
		UpdatedAt:   &updatedAt,
	}
}

// ToDTOs maps a slice of products, preserving order. The result is never nil.
func ToDTOs(products []Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos
}
