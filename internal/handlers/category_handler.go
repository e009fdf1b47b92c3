package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"auroramart/internal/dto"
	apperrors "auroramart/internal/errors"
	"auroramart/internal/services"
	"auroramart/internal/taxonomy"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the canonical taxonomy and alias-aware browsing
type CategoryHandler struct {
	service  services.CategoryServiceInterface
	resolver *taxonomy.Resolver
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service services.CategoryServiceInterface, resolver *taxonomy.Resolver) *CategoryHandler {
	if resolver == nil {
		resolver = taxonomy.NewResolver(nil)
	}
	return &CategoryHandler{service: service, resolver: resolver}
}

// ListCategories returns the canonical categories in display order
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse "Canonical categories with counts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	summaries, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListCategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{
			Slug:     s.Slug,
			Label:    s.Label,
			Products: s.Products,
			InStock:  s.InStock,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// BrowseCategory lists the products of a category. Any spelling that
// resolves to the category matches, so legacy rows are included.
// @Summary Browse a category
// @Tags Categories
// @Produce json
// @Param category path string true "Category slug, label or legacy spelling"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.CategoryProductsResponse "Category page"
// @Failure 400 {object} errors.ErrorResponse "CATALOG_002 - Invalid category"
// @Failure 404 {object} errors.ErrorResponse "CATALOG_004 - Category not found"
// @Router /api/v1/categories/{category}/products [get]
func (h *CategoryHandler) BrowseCategory(c echo.Context) error {
	var req dto.BrowseCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("limit and offset must be numbers"))
	}
	if unescaped, err := url.PathUnescape(req.Category); err == nil {
		req.Category = unescaped
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	listing, err := h.service.BrowseCategory(c.Request().Context(), req.Category, req.Offset, req.Limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			return SendError(c, apperrors.CatalogInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	if !listing.Known && listing.Total == 0 {
		return SendError(c, apperrors.CatalogCategoryNotFound, apperrors.WithDetails("category: "+req.Category))
	}

	return c.JSON(http.StatusOK, dto.CategoryProductsResponse{
		Category: listing.Category,
		Known:    listing.Known,
		Products: toProductSummaries(listing.Products, h.resolver),
		Total:    listing.Total,
		Limit:    listing.Limit,
		Offset:   listing.Offset,
	})
}
