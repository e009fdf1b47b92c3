package services_test

import (
	"context"
	"errors"
	"testing"

	"auroramart/internal/models"
	"auroramart/internal/repositories"
	"auroramart/internal/repositories/repository_mocks"
	"auroramart/internal/services"
	"auroramart/internal/taxonomy"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_ListCategoriesFoldsLegacySpellings(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	service := services.NewCategoryService(products, taxonomy.NewResolver(nil), 50)

	products.EXPECT().CategoryCounts().Return([]repositories.CategoryCount{
		{Category: "Home & Kitchen", Products: 3, InStock: 2},
		{Category: "home_kitchen", Products: 4, InStock: 4},
		{Category: "Mystery Box", Products: 1, InStock: 0},
		{Category: "books", Products: 2, InStock: 1},
	}, nil)

	summaries, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, len(taxonomy.DefaultCategories()))

	bySlug := make(map[string]services.CategorySummary)
	for _, s := range summaries {
		bySlug[s.Slug] = s
	}

	assert.Equal(t, int64(7), bySlug[taxonomy.SlugHomeKitchen].Products)
	assert.Equal(t, int64(6), bySlug[taxonomy.SlugHomeKitchen].InStock)
	assert.Equal(t, []string{"Home & Kitchen", "home_kitchen"}, bySlug[taxonomy.SlugHomeKitchen].StoredSpelling)
	assert.Equal(t, int64(1), bySlug[taxonomy.SlugOther].Products)
	assert.Equal(t, int64(0), bySlug[taxonomy.SlugToysGames].Products)
}

func TestCategoryService_ListCategoriesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	products.EXPECT().CategoryCounts().Return(nil, errors.New("boom"))

	_, err := services.NewCategoryService(products, nil, 0).ListCategories(context.Background())

	assert.ErrorContains(t, err, "failed to list categories")
}

func TestCategoryService_BrowseCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	service := services.NewCategoryService(products, taxonomy.NewResolver(nil), 20)

	products.EXPECT().ListByCategory(predicateFor(taxonomy.SlugHomeKitchen), 0, 20).
		Return([]models.Product{product("HK-1", "home appliances", 2)}, int64(1), nil)

	listing, err := service.BrowseCategory(context.Background(), "Home and Kitchen", -5, 100)
	require.NoError(t, err)
	assert.True(t, listing.Known)
	assert.Equal(t, taxonomy.SlugHomeKitchen, listing.Category.Slug)
	assert.Equal(t, int64(1), listing.Total)
	assert.Equal(t, 0, listing.Offset)
	assert.Equal(t, 20, listing.Limit)
}

func TestCategoryService_BrowseUnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	service := services.NewCategoryService(products, taxonomy.NewResolver(nil), 20)

	products.EXPECT().ListByCategory(predicateFor("Mystery Box"), 0, 5).Return([]models.Product{}, int64(0), nil)

	listing, err := service.BrowseCategory(context.Background(), "Mystery Box", 0, 5)
	require.NoError(t, err)
	assert.False(t, listing.Known)
	assert.Equal(t, "Mystery Box", listing.Category.Label)

	_, err = service.BrowseCategory(context.Background(), "  ", 0, 5)
	assert.ErrorIs(t, err, services.ErrInvalidCategory)
}
