package services

import (
	"context"
	"io"
	"time"

	"auroramart/internal/ml"
	"auroramart/internal/models"

	"github.com/google/uuid"
)

// RecommendationServiceInterface resolves recommendation lists through the
// source cascade.
type RecommendationServiceInterface interface {
	// Recommend resolves the list served to a customer, including any stored rows
	Recommend(ctx context.Context, customerID uuid.UUID, limit int) (*models.RecommendationResult, error)

	// Compute runs the cascade while ignoring precomputed rows
	Compute(ctx context.Context, customerID uuid.UUID, limit int) (*models.RecommendationResult, error)

	// CompleteTheSet suggests companions for the given SKUs
	CompleteTheSet(ctx context.Context, seedSKUs []string, limit int) (*models.RecommendationResult, error)
}

// CategoryServiceInterface serves alias-aware category browsing
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]CategorySummary, error)
	BrowseCategory(ctx context.Context, raw string, offset, limit int) (*CategoryListing, error)
}

type BasketSignalInterface interface {
	Gather(ctx context.Context, customerID uuid.UUID) []string
}

// CategoryClassifierInterface predicts a customer's likely category
type CategoryClassifierInterface interface {
	PredictCategory(profile *ml.Profile) (string, bool)
}

// RuleRecommenderInterface ranks companion SKUs for a basket
type RuleRecommenderInterface interface {
	Recommend(basketSKUs []string, topN int) []string
}

type RecommendationRefresherInterface interface {
	StartProcessing(ctx context.Context)
	RefreshBatch(ctx context.Context) (int, error)
	RefreshCustomer(ctx context.Context, customerID uuid.UUID) error
}

type CatalogSeederInterface interface {
	Seed(ctx context.Context, path string, progress io.Writer) (*SeedReport, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitState
	Reset()
	GetFailureCount() int
}

type RecommendationLoggerInterface interface {
	LogStageEvaluated(ctx context.Context, customerID uuid.UUID, attempt models.StageAttempt)
	LogRecommendationResolved(ctx context.Context, customerID uuid.UUID, result *models.RecommendationResult, durationMs int64)
	LogSourceFailed(ctx context.Context, customerID uuid.UUID, stage string, errorMsg string)
	LogPrecomputeCompleted(ctx context.Context, customerID uuid.UUID, source string, count int)
	LogPrecomputeFailed(ctx context.Context, customerID uuid.UUID, errorMsg string)
	LogCatalogSeeded(ctx context.Context, report *SeedReport, durationMs int64)
}
