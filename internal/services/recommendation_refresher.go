package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"auroramart/internal/models"
	"auroramart/internal/repositories"

	"github.com/google/uuid"
)

// personalisedSources are worth storing; the other sources are cheap to
// resolve on demand.
var personalisedSources = map[string]struct{}{
	models.SourceMLPredicted:      {},
	models.SourceProfile:          {},
	models.SourceAssociationRules: {},
}

type RefresherOptions struct {
	Interval  time.Duration
	Workers   int
	BatchSize int
	Limit     int
}

// RecommendationRefresher walks the customer table in pages and stores each
// customer's personalised recommendations so the next request can serve them
// from the manual stage.
type RecommendationRefresher struct {
	customers       repositories.CustomerRepositoryInterface
	recommendations repositories.RecommendationRepositoryInterface
	service         RecommendationServiceInterface
	logger          RecommendationLoggerInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	opts            RefresherOptions
	workerSemaphore chan struct{}
	slog            *slog.Logger

	mu     sync.Mutex
	cursor int
}

func NewRecommendationRefresher(
	customers repositories.CustomerRepositoryInterface,
	recommendations repositories.RecommendationRepositoryInterface,
	service RecommendationServiceInterface,
	logger RecommendationLoggerInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
	opts RefresherOptions,
) *RecommendationRefresher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Minute
	}
	return &RecommendationRefresher{
		customers:       customers,
		recommendations: recommendations,
		service:         service,
		logger:          logger,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		opts:            opts,
		workerSemaphore: make(chan struct{}, opts.Workers),
		slog:            slog.Default(),
	}
}

func (r *RecommendationRefresher) StartProcessing(ctx context.Context) {
	r.slog.Info("starting recommendation refresher",
		slog.Int("max_workers", r.opts.Workers),
		slog.Int("batch_size", r.opts.BatchSize),
		slog.Duration("interval", r.opts.Interval),
	)

	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.slog.Info("recommendation refresher stopped")
			return

		case <-ticker.C:
			if _, err := r.RefreshBatch(ctx); err != nil {
				r.slog.Error("failed to refresh recommendation batch",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// RefreshBatch refreshes the next page of customers and waits for the
// workers to finish. The cursor wraps once the table is exhausted.
func (r *RecommendationRefresher) RefreshBatch(ctx context.Context) (int, error) {
	if r.circuitBreaker.IsOpen() {
		r.metrics.IncrementCounter(MetricCircuitBreakerOpen, map[string]string{
			"service": "precompute",
		})
		return 0, ErrCircuitBreakerOpen
	}

	start := time.Now()
	r.mu.Lock()
	offset := r.cursor
	r.mu.Unlock()

	ids, err := r.customers.ListIDs(offset, r.opts.BatchSize)
	if err != nil {
		r.circuitBreaker.RecordFailure()
		return 0, fmt.Errorf("failed to list customers: %w", err)
	}

	r.mu.Lock()
	if len(ids) < r.opts.BatchSize {
		r.cursor = 0
	} else {
		r.cursor = offset + len(ids)
	}
	r.mu.Unlock()

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go r.refreshAsync(ctx, id, &wg)
	}
	wg.Wait()

	r.metrics.RecordProcessingTime(MetricPrecomputeBatch, time.Since(start))
	return len(ids), nil
}

func (r *RecommendationRefresher) refreshAsync(ctx context.Context, customerID uuid.UUID, wg *sync.WaitGroup) {
	defer wg.Done()

	r.workerSemaphore <- struct{}{}
	defer func() { <-r.workerSemaphore }()

	if err := r.RefreshCustomer(ctx, customerID); err != nil {
		r.logger.LogPrecomputeFailed(ctx, customerID, err.Error())
	}
}

// RefreshCustomer recomputes one customer. Personalised winners replace the
// stored precomputed rows; anything else clears them.
func (r *RecommendationRefresher) RefreshCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := r.service.Compute(ctx, customerID, r.opts.Limit)
	if err != nil {
		r.circuitBreaker.RecordFailure()
		r.metrics.IncrementCounter(MetricPrecomputeRefreshed, map[string]string{"status": "failed"})
		return fmt.Errorf("failed to compute recommendations: %w", err)
	}

	var productIDs []uuid.UUID
	if _, ok := personalisedSources[result.Source]; ok {
		productIDs = make([]uuid.UUID, 0, len(result.Products))
		for _, p := range result.Products {
			productIDs = append(productIDs, p.ID)
		}
	}

	if err := r.recommendations.ReplacePrecomputed(customerID, result.Source, productIDs); err != nil {
		r.circuitBreaker.RecordFailure()
		r.metrics.IncrementCounter(MetricPrecomputeRefreshed, map[string]string{"status": "failed"})
		return fmt.Errorf("failed to store recommendations: %w", err)
	}

	r.circuitBreaker.RecordSuccess()
	r.metrics.IncrementCounter(MetricPrecomputeRefreshed, map[string]string{"status": "success"})
	r.logger.LogPrecomputeCompleted(ctx, customerID, result.Source, len(productIDs))
	return nil
}
