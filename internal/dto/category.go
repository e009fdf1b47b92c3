package dto

import "auroramart/internal/taxonomy"

// CategoryResponse is one canonical category with catalogue counts
type CategoryResponse struct {
	Slug     string `json:"slug"`
	Label    string `json:"label"`
	Products int64  `json:"products"`
	InStock  int64  `json:"in_stock"`
}

// ListCategoriesResponse is the body of GET /api/v1/categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// BrowseCategoryRequest is the path and query of GET /api/v1/categories/:category/products
type BrowseCategoryRequest struct {
	Category string `param:"category" validate:"category"`
	Limit    int    `query:"limit" validate:"omitempty,min=1"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// CategoryProductsResponse is one page of a category
type CategoryProductsResponse struct {
	Category taxonomy.Category `json:"category"`
	Known    bool              `json:"known"`
	Products []ProductSummary  `json:"products"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
