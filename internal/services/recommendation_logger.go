package services

import (
	"context"
	"log/slog"
	"time"

	"auroramart/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey carries the request trace id through service calls
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying requestID for log correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RecommendationLogger provides structured logging for recommendation resolution
type RecommendationLogger struct {
	logger *slog.Logger
}

// NewRecommendationLogger creates a new recommendation logger
func NewRecommendationLogger(logger *slog.Logger) RecommendationLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendationLogger{
		logger: logger,
	}
}

// LogStageEvaluated logs the outcome of one cascade stage at debug level
func (rl *RecommendationLogger) LogStageEvaluated(ctx context.Context, customerID uuid.UUID, attempt models.StageAttempt) {
	rl.logger.DebugContext(ctx, "recommendation stage evaluated",
		slog.String("event_type", "recommendation_stage_evaluated"),
		slog.String("customer_id", customerID.String()),
		slog.String("stage", attempt.Stage),
		slog.String("source", attempt.Source),
		slog.String("category", attempt.Category),
		slog.Int("candidates", attempt.Candidates),
		slog.Int("accepted", attempt.Accepted),
		slog.String("skipped", attempt.Skipped),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRecommendationResolved logs which source won a resolution
func (rl *RecommendationLogger) LogRecommendationResolved(ctx context.Context, customerID uuid.UUID, result *models.RecommendationResult, durationMs int64) {
	if result == nil {
		return
	}
	rl.logger.InfoContext(ctx, "recommendations resolved",
		slog.String("event_type", "recommendation_resolved"),
		slog.String("customer_id", customerID.String()),
		slog.String("source", result.Source),
		slog.String("stage", result.Stage),
		slog.String("category", result.Category),
		slog.Int("count", len(result.Products)),
		slog.Int("stages_evaluated", len(result.Attempts)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSourceFailed logs a source failure that was absorbed by the cascade
func (rl *RecommendationLogger) LogSourceFailed(ctx context.Context, customerID uuid.UUID, stage string, errorMsg string) {
	rl.logger.WarnContext(ctx, "recommendation source failed",
		slog.String("event_type", "recommendation_source_failed"),
		slog.String("customer_id", customerID.String()),
		slog.String("stage", stage),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecommendationLogger) LogPrecomputeCompleted(ctx context.Context, customerID uuid.UUID, source string, count int) {
	rl.logger.InfoContext(ctx, "precomputed recommendations stored",
		slog.String("event_type", "recommendation_precompute_completed"),
		slog.String("customer_id", customerID.String()),
		slog.String("source", source),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
	)
}

func (rl *RecommendationLogger) LogPrecomputeFailed(ctx context.Context, customerID uuid.UUID, errorMsg string) {
	rl.logger.ErrorContext(ctx, "precompute failed",
		slog.String("event_type", "recommendation_precompute_failed"),
		slog.String("customer_id", customerID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
	)
}

// LogCatalogSeeded logs a completed catalogue import
func (rl *RecommendationLogger) LogCatalogSeeded(ctx context.Context, report *SeedReport, durationMs int64) {
	if report == nil {
		return
	}
	rl.logger.InfoContext(ctx, "catalog seeded",
		slog.String("event_type", "catalog_seeded"),
		slog.String("path", report.Path),
		slog.Int("rows", report.Rows),
		slog.Int64("written", report.Written),
		slog.Int("skipped", report.Skipped),
		slog.Int("unresolved_categories", len(report.UnresolvedCategories)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

// Helper functions

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
