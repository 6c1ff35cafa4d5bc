package fixtures

import (
	"menu-catalog/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultMenu returns the demo menu seeded when no menu file is configured.
// IDs and timestamps are left unset; the store assigns them.
func DefaultMenu() []model.ProductDTO {
	return []model.ProductDTO{
		menuItem("Bruschetta",
			"Toasted bread topped with tomatoes, garlic, and fresh basil",
			"8.99", model.CategoryAppetizer,
			"https://images.unsplash.com/photo-1572445271230-a78b5944a659?w=400"),
		menuItem("Grilled Salmon",
			"Fresh Atlantic salmon grilled to perfection with herbs",
			"24.99", model.CategoryMainCourse,
			"https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400"),
		menuItem("Beef Tenderloin",
			"Premium cut beef tenderloin with red wine reduction sauce",
			"32.99", model.CategoryMainCourse,
			"https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400"),
		menuItem("Tiramisu",
			"Classic Italian dessert with coffee-flavored mascarpone cream",
			"9.99", model.CategoryDessert,
			"https://images.unsplash.com/photo-1571877227200-a98ea607e9?w=400"),
		menuItem("Fresh Fruit Smoothie",
			"Blend of seasonal fruits with yogurt and honey",
			"6.99", model.CategoryBeverage,
			"https://images.unsplash.com/photo-1505252585461-04db1eb84625?w=400"),
		menuItem("Truffle Fries",
			"Crispy fries tossed with truffle oil and parmesan cheese",
			"8.99", model.CategorySideDish,
			"https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400"),
	}
}

func menuItem(name, description, price string, category model.Category, imageURL string) model.ProductDTO {
	available := true
	return model.ProductDTO{
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		ImageURL:    imageURL,
		IsAvailable: &available,
	}
}
