// Package app wires the recommendation core from configuration. Both the
// HTTP server and the operator CLI build their collaborators here.
package app

import (
	"fmt"
	"log/slog"

	"auroramart/internal/config"
	"auroramart/internal/ml"
	"auroramart/internal/repositories"
	"auroramart/internal/services"
	"auroramart/internal/taxonomy"

	"gorm.io/gorm"
)

const (
	ArtifactClassifier = "classifier"
	ArtifactRules      = "rules"
)

// Components are the long-lived collaborators of one process
type Components struct {
	Config    *config.Config
	Resolver  *taxonomy.Resolver
	Artifacts *ml.ArtifactStore
	Bridge    *ml.IdentifierBridge

	Classifier *ml.CategoryClassifier
	Rules      *ml.AssociationRecommender

	Products        repositories.ProductRepositoryInterface
	Customers       repositories.CustomerRepositoryInterface
	Recommendations repositories.RecommendationRepositoryInterface
	Baskets         repositories.BasketRepositoryInterface

	Basket          *services.BasketSignal
	Logger          services.RecommendationLoggerInterface
	Metrics         services.MetricsRecorderInterface
	Recommendation  *services.RecommendationService
	Categories      services.CategoryServiceInterface
	Seeder          services.CatalogSeederInterface
	CircuitBreaker  *services.CircuitBreaker
	RefresherOption services.RefresherOptions
}

// NewResolver builds the taxonomy resolver with the optional alias file
func NewResolver(cfg config.RecommendationConfig, logger *slog.Logger) (*taxonomy.Resolver, error) {
	if cfg.AliasFile == "" {
		return taxonomy.NewResolver(logger), nil
	}
	extra, err := taxonomy.LoadAliasFile(cfg.AliasFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load category aliases: %w", err)
	}
	return taxonomy.NewResolver(logger, extra...), nil
}

// Build wires every component against db. Model artifacts are not read
// here; the classifier and rule recommender load them on first use.
func Build(cfg *config.Config, db *gorm.DB, logger *slog.Logger, metrics services.MetricsRecorderInterface) (*Components, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolver, err := NewResolver(cfg.Recommendation, logger)
	if err != nil {
		return nil, err
	}

	rc := cfg.Recommendation
	artifacts := ml.NewArtifactStore(rc.ArtifactDirs, rc.ClassifierFile, rc.RulesFile, logger)
	bridge := ml.LoadIdentifierBridge(rc.CatalogPath, logger)

	c := &Components{
		Config:          cfg,
		Resolver:        resolver,
		Artifacts:       artifacts,
		Bridge:          bridge,
		Classifier:      ml.NewCategoryClassifier(artifacts.LoadClassifier, logger),
		Rules:           ml.NewAssociationRecommender(bridge, artifacts.LoadRules, rc.RulesCandidateMult, logger),
		Products:        repositories.NewProductRepository(db),
		Customers:       repositories.NewCustomerRepository(db),
		Recommendations: repositories.NewRecommendationRepository(db),
		Baskets:         repositories.NewBasketRepository(db),
		Logger:          services.NewRecommendationLogger(logger),
		Metrics:         metrics,
		CircuitBreaker:  services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		RefresherOption: services.RefresherOptions{
			Interval:  rc.PrecomputeInterval,
			Workers:   rc.PrecomputeWorkers,
			BatchSize: rc.PrecomputeBatch,
			Limit:     rc.DefaultLimit,
		},
	}

	c.Basket = services.NewBasketSignal(c.Baskets, rc.BasketCap, logger)

	opts := services.RecommendationOptionsFromConfig(rc)
	c.Recommendation = services.NewRecommendationService(services.RecommendationDeps{
		Products:        c.Products,
		Customers:       c.Customers,
		Recommendations: c.Recommendations,
		Basket:          c.Basket,
		Classifier:      c.Classifier,
		Rules:           c.Rules,
		Resolver:        resolver,
		Logger:          c.Logger,
		Metrics:         metrics,
	}, opts)
	c.Categories = services.NewCategoryService(c.Products, resolver, opts.MaxLimit)
	c.Seeder = services.NewCatalogSeeder(c.Products, resolver, c.Logger, metrics)

	c.CircuitBreaker.OnStateChange = func(from, to services.CircuitState) {
		logger.Warn("Precompute circuit breaker changed state",
			slog.String("event_type", "circuit_breaker_state_changed"),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		metrics.RecordGauge(services.MetricCircuitBreakerOpen, float64(to), map[string]string{"service": "precompute"})
	}

	return c, nil
}

// ArtifactStatus loads both model artifacts and reports which are usable.
// The result is also published on the artifact gauge.
func (c *Components) ArtifactStatus() map[string]bool {
	status := map[string]bool{
		ArtifactClassifier: c.Classifier.Available(),
		ArtifactRules:      c.Rules.Kind() != ml.KindUnknown,
	}
	for name, ok := range status {
		value := 0.0
		if ok {
			value = 1
		}
		c.Metrics.RecordGauge(services.MetricArtifactAvailable, value, map[string]string{"artifact": name})
	}
	return status
}

// NewRefresher builds the background precompute worker
func (c *Components) NewRefresher() *services.RecommendationRefresher {
	return services.NewRecommendationRefresher(
		c.Customers,
		c.Recommendations,
		c.Recommendation,
		c.Logger,
		c.Metrics,
		c.CircuitBreaker,
		c.RefresherOption,
	)
}
