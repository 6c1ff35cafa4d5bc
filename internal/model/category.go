package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the closed set of menu sections a product can belong to.
type Category string

const (
	CategoryAppetizer  Category = "APPETIZER"
	CategoryMainCourse Category = "MAIN_COURSE"
	CategoryDessert    Category = "DESSERT"
	CategoryBeverage   Category = "BEVERAGE"
	CategorySideDish   Category = "SIDE_DISH"
)

// Categories lists every category in menu order.
func Categories() []Category {
	return []Category{
		CategoryAppetizer,
		CategoryMainCourse,
		CategoryDessert,
		CategoryBeverage,
		CategorySideDish,
	}
}

// ParseCategory matches s case-insensitively against the known categories.
// Surrounding whitespace is not ignored. The boolean is false when s names no category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToUpper(s)) {
	case CategoryAppetizer:
		return CategoryAppetizer, true
	case CategoryMainCourse:
		return CategoryMainCourse, true
	case CategoryDessert:
		return CategoryDessert, true
	case CategoryBeverage:
		return CategoryBeverage, true
	case CategorySideDish:
		return CategorySideDish, true
	default:
		return "", false
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category literal.
func (c Category) String() string {
	return string(c)
}

// UnmarshalJSON decodes a category literal, rejecting unknown values.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("category must be a string: %w", err)
	}

	parsed, ok := ParseCategory(s)
	if !ok {
		return fmt.Errorf("unknown category %q", s)
	}

	*c = parsed
	return nil
}
