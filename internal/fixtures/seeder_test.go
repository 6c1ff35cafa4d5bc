package fixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"menu-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCreator struct {
	mock.Mock
}

func (m *MockProductCreator) Create(ctx context.Context, input model.ProductDTO) (*model.ProductDTO, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductDTO), args.Error(1)
}

type MockCategoryLister struct {
	mock.Mock
}

func (m *MockCategoryLister) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func stored(input model.ProductDTO, id int64) *model.ProductDTO {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	out := input
	out.ID = &id
	out.CreatedAt = &now
	out.UpdatedAt = &now
	return &out
}

func TestDefaultMenu(t *testing.T) {
	menu := DefaultMenu()

	require.Len(t, menu, 6)

	seen := make(map[model.Category]bool)
	for _, item := range menu {
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.ImageURL)
		assert.True(t, item.Category.Valid())
		assert.True(t, item.Price.IsPositive())
		assert.Nil(t, item.ID)
		require.NotNil(t, item.IsAvailable)
		assert.True(t, *item.IsAvailable)
		seen[item.Category] = true
	}

	// Every category appears on the demo menu
	assert.Len(t, seen, len(model.Categories()))
	assert.Equal(t, "Bruschetta", menu[0].Name)
	assert.Equal(t, "8.99", menu[0].Price.StringFixed(2))
}

func TestDefaultMenu_ReturnsFreshCopies(t *testing.T) {
	first := DefaultMenu()
	*first[0].IsAvailable = false
	first[0].Name = "changed"

	second := DefaultMenu()
	assert.Equal(t, "Bruschetta", second[0].Name)
	assert.True(t, *second[0].IsAvailable)
}

func TestSeeder_Seed(t *testing.T) {
	menu := DefaultMenu()[:2]
	creator := new(MockProductCreator)
	lister := new(MockCategoryLister)

	creator.On("Create", mock.Anything, menu[0]).Return(stored(menu[0], 1), nil).Once()
	creator.On("Create", mock.Anything, menu[1]).Return(stored(menu[1], 2), nil).Once()

	for _, category := range model.Categories() {
		var products []model.Product
		switch category {
		case model.CategoryAppetizer, model.CategoryMainCourse:
			products = []model.Product{{Category: category}}
		default:
			products = []model.Product{}
		}
		lister.On("FindByCategory", mock.Anything, category).Return(products, nil).Once()
	}

	seeder := NewSeeder(creator, lister, zerolog.Nop())

	result, err := seeder.Seed(context.Background(), menu)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.ByCategory[model.CategoryAppetizer])
	assert.Equal(t, 1, result.ByCategory[model.CategoryMainCourse])
	assert.Equal(t, 0, result.ByCategory[model.CategoryDessert])
	assert.Len(t, result.ByCategory, 5)
	creator.AssertExpectations(t)
	lister.AssertExpectations(t)
}

func TestSeeder_Seed_WithoutLister(t *testing.T) {
	menu := DefaultMenu()[:1]
	creator := new(MockProductCreator)
	creator.On("Create", mock.Anything, menu[0]).Return(stored(menu[0], 7), nil)

	seeder := NewSeeder(creator, nil, zerolog.Nop())

	result, err := seeder.Seed(context.Background(), menu)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Nil(t, result.ByCategory)
}

func TestSeeder_Seed_StopsOnFirstFailure(t *testing.T) {
	menu := DefaultMenu()[:3]
	creator := new(MockProductCreator)
	lister := new(MockCategoryLister)

	creator.On("Create", mock.Anything, menu[0]).Return(stored(menu[0], 1), nil).Once()
	creator.On("Create", mock.Anything, menu[1]).Return(nil, errors.New("connection refused")).Once()

	seeder := NewSeeder(creator, lister, zerolog.Nop())

	result, err := seeder.Seed(context.Background(), menu)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Grilled Salmon")
	assert.Equal(t, 1, result.Created)
	creator.AssertNotCalled(t, "Create", mock.Anything, menu[2])
	lister.AssertNotCalled(t, "FindByCategory", mock.Anything, mock.Anything)
}

func TestSeeder_Seed_CountError(t *testing.T) {
	creator := new(MockProductCreator)
	lister := new(MockCategoryLister)
	lister.On("FindByCategory", mock.Anything, model.CategoryAppetizer).Return(nil, errors.New("database error"))

	seeder := NewSeeder(creator, lister, zerolog.Nop())

	result, err := seeder.Seed(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count APPETIZER products")
	assert.Equal(t, 0, result.Created)
}
