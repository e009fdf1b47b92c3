package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"auroramart/internal/dto"
	apperrors "auroramart/internal/errors"
	"auroramart/internal/models"
	"auroramart/internal/services"
	"auroramart/internal/taxonomy"

	"github.com/labstack/echo/v4"
)

const (
	DefaultMaxLimit = 50
	DefaultMaxSeeds = 20
)

// RecommendationHandler serves shopper and complete-the-set recommendations
type RecommendationHandler struct {
	service  services.RecommendationServiceInterface
	resolver *taxonomy.Resolver
	metrics  services.MetricsRecorderInterface
	maxLimit int
	maxSeeds int
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	service services.RecommendationServiceInterface,
	resolver *taxonomy.Resolver,
	metrics services.MetricsRecorderInterface,
	maxLimit int,
) *RecommendationHandler {
	if resolver == nil {
		resolver = taxonomy.NewResolver(nil)
	}
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &RecommendationHandler{
		service:  service,
		resolver: resolver,
		metrics:  metrics,
		maxLimit: maxLimit,
		maxSeeds: DefaultMaxSeeds,
	}
}

// GetRecommendations resolves recommendations for the current shopper
// @Summary Shopper recommendations
// @Description Resolve recommendations through the source cascade. Anonymous shoppers get the generic fallback.
// @Tags Recommendations
// @Produce json
// @Param X-User-ID header string false "Shopper ID (UUID)"
// @Param limit query int false "Number of products (1-50)" default(8)
// @Param trace query bool false "Include per-stage attempts"
// @Success 200 {object} dto.RecommendationResponse "Recommendations with winning source"
// @Failure 400 {object} errors.ErrorResponse "RECOMMENDATION_001 - Invalid limit"
// @Failure 503 {object} errors.ErrorResponse "CATALOG_003 - Catalogue unavailable"
// @Router /api/v1/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req dto.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("limit and trace must be a number and a boolean"))
	}

	if err := h.checkLimit(req.Limit); err != nil {
		return SendError(c, apperrors.RecommendationInvalidLimit, apperrors.WithDetails(err.Error()))
	}

	result, err := h.service.Recommend(ctx, getUserIDFromContext(c), req.Limit)
	h.metrics.RecordProcessingTime(services.MetricAPIRecommendations, time.Since(startTime))
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.toResponse(result, req.Trace))
}

// GetCompleteTheSet recommends products that go with the seed SKUs
// @Summary Complete the set
// @Description Recommend products bought together with the seed SKUs, falling back to the seeds' category.
// @Tags Recommendations
// @Produce json
// @Param sku query []string true "Seed SKUs" collectionFormat(multi)
// @Param limit query int false "Number of products (1-50)" default(4)
// @Success 200 {object} dto.RecommendationResponse "Recommendations with winning source"
// @Failure 400 {object} errors.ErrorResponse "RECOMMENDATION_002 - Missing seed SKUs"
// @Failure 503 {object} errors.ErrorResponse "CATALOG_003 - Catalogue unavailable"
// @Router /api/v1/recommendations/complete-the-set [get]
func (h *RecommendationHandler) GetCompleteTheSet(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req dto.CompleteTheSetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("limit must be a number"))
	}

	seeds := make([]string, 0, len(req.SKUs))
	for _, sku := range req.SKUs {
		if sku = strings.TrimSpace(sku); sku != "" {
			seeds = append(seeds, sku)
		}
	}
	req.SKUs = seeds

	if len(req.SKUs) == 0 {
		return SendError(c, apperrors.RecommendationMissingSeeds)
	}
	if len(req.SKUs) > h.maxSeeds {
		return SendError(c, apperrors.RecommendationTooManySeeds, apperrors.WithDetails(fmt.Sprintf("at most %d seed SKUs are accepted", h.maxSeeds)))
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.checkLimit(req.Limit); err != nil {
		return SendError(c, apperrors.RecommendationInvalidLimit, apperrors.WithDetails(err.Error()))
	}

	result, err := h.service.CompleteTheSet(ctx, req.SKUs, req.Limit)
	h.metrics.RecordProcessingTime(services.MetricAPICompleteTheSet, time.Since(startTime))
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.toResponse(result, false))
}

// checkLimit accepts 0 (use the default) or 1..maxLimit
func (h *RecommendationHandler) checkLimit(limit int) error {
	if limit < 0 || limit > h.maxLimit {
		return fmt.Errorf("limit must be between 1 and %d", h.maxLimit)
	}
	return nil
}

func (h *RecommendationHandler) sendServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrCatalogUnavailable) {
		return SendError(c, apperrors.CatalogUnavailable)
	}
	return SendSystemError(c, err)
}

func (h *RecommendationHandler) toResponse(result *models.RecommendationResult, trace bool) dto.RecommendationResponse {
	resp := dto.RecommendationResponse{
		Source:   result.Source,
		Stage:    result.Stage,
		Category: result.Category,
		Products: toProductSummaries(result.Products, h.resolver),
	}
	if trace {
		resp.Attempts = result.Attempts
	}
	return resp
}
