package handlers

import (
	"auroramart/internal/dto"
	"auroramart/internal/models"
	"auroramart/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDContextKey holds the shopper id set by the user context middleware
	UserIDContextKey = "user_id"
)

// getUserIDFromContext returns the shopper id, or uuid.Nil for anonymous
// shoppers
func getUserIDFromContext(c echo.Context) uuid.UUID {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func toProductSummaries(products []models.Product, resolver *taxonomy.Resolver) []dto.ProductSummary {
	out := make([]dto.ProductSummary, 0, len(products))
	for _, p := range products {
		slug := resolver.ResolveSlug(p.Category)
		if slug == "" {
			slug = p.Category
		}
		out = append(out, dto.ProductSummary{
			ID:            p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Category:      slug,
			CategoryLabel: resolver.DisplayLabel(p.Category),
			Price:         p.Price.StringFixed(2),
			Stock:         p.Stock,
			Rating:        p.Rating,
		})
	}
	return out
}
