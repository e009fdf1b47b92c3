package dto

import (
	"auroramart/internal/models"

	"github.com/google/uuid"
)

// RecommendationRequest is the query of GET /api/v1/recommendations
type RecommendationRequest struct {
	Limit int  `query:"limit"`
	Trace bool `query:"trace"`
}

// CompleteTheSetRequest is the query of GET /api/v1/recommendations/complete-the-set
type CompleteTheSetRequest struct {
	SKUs  []string `query:"sku" validate:"dive,sku"`
	Limit int      `query:"limit"`
}

// ProductSummary is the storefront view of a product
type ProductSummary struct {
	ID            uuid.UUID `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Price         string    `json:"price"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating"`
}

// RecommendationResponse reports which source won and what it produced
type RecommendationResponse struct {
	Source   string                `json:"source"`
	Stage    string                `json:"stage"`
	Category string                `json:"category,omitempty"`
	Products []ProductSummary      `json:"products"`
	Attempts []models.StageAttempt `json:"attempts,omitempty"`
}
