package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auroramart/internal/config"
	"auroramart/internal/ml"
	"auroramart/internal/models"
	"auroramart/internal/repositories"
	"auroramart/internal/taxonomy"

	"github.com/google/uuid"
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// Reasons a stage was not evaluated, reported on models.StageAttempt
const (
	SkipAnonymous      = "anonymous"
	SkipNoProfile      = "no_profile"
	SkipSparseProfile  = "sparse_profile"
	SkipNoPrediction   = "no_prediction"
	SkipNoPreferences  = "no_preferences"
	SkipEmptyBasket    = "empty_basket"
	SkipUnavailable    = "unavailable"
	SkipNothingUntried = "nothing_untried"
	SkipNoSeeds        = "no_seeds"
	SkipSourceError    = "error"
)

// rules are asked for more candidates than needed so the stock filter can
// still fill the list
const rulesCandidateBoost = 2

type RecommendationOptions struct {
	DefaultLimit      int
	MaxLimit          int
	CompleteSetLimit  int
	RichnessThreshold int
}

func DefaultRecommendationOptions() RecommendationOptions {
	return RecommendationOptions{
		DefaultLimit:      8,
		MaxLimit:          50,
		CompleteSetLimit:  4,
		RichnessThreshold: 3,
	}
}

// RecommendationOptionsFromConfig copies the tuning knobs out of cfg, keeping
// defaults for unset values.
func RecommendationOptionsFromConfig(cfg config.RecommendationConfig) RecommendationOptions {
	opts := DefaultRecommendationOptions()
	if cfg.DefaultLimit > 0 {
		opts.DefaultLimit = cfg.DefaultLimit
	}
	if cfg.MaxLimit > 0 {
		opts.MaxLimit = cfg.MaxLimit
	}
	if cfg.CompleteSetLimit > 0 {
		opts.CompleteSetLimit = cfg.CompleteSetLimit
	}
	if cfg.RichnessThreshold > 0 {
		opts.RichnessThreshold = cfg.RichnessThreshold
	}
	return opts
}

// RecommendationDeps are the collaborators of RecommendationService.
// Classifier and Rules may be nil, which disables their stages.
type RecommendationDeps struct {
	Products        repositories.ProductRepositoryInterface
	Customers       repositories.CustomerRepositoryInterface
	Recommendations repositories.RecommendationRepositoryInterface
	Basket          BasketSignalInterface
	Classifier      CategoryClassifierInterface
	Rules           RuleRecommenderInterface
	Resolver        *taxonomy.Resolver
	Logger          RecommendationLoggerInterface
	Metrics         MetricsRecorderInterface
}

// RecommendationService arbitrates between recommendation sources. Stages are
// evaluated in precedence order and the first one yielding in-stock products
// wins. Source failures never reach the caller; they only make a stage empty.
type RecommendationService struct {
	products   repositories.ProductRepositoryInterface
	customers  repositories.CustomerRepositoryInterface
	stored     repositories.RecommendationRepositoryInterface
	basket     BasketSignalInterface
	classifier CategoryClassifierInterface
	rules      RuleRecommenderInterface
	resolver   *taxonomy.Resolver
	logger     RecommendationLoggerInterface
	metrics    MetricsRecorderInterface
	opts       RecommendationOptions
	cascade    []stage
	setCascade []stage
}

type stage struct {
	name string
	run  func(ctx context.Context, r *resolution) stageOutcome
}

type stageOutcome struct {
	source   string
	category string
	products []models.Product
	skipped  string
	err      error
}

// resolution is the per-request state shared by the stages
type resolution struct {
	customerID    uuid.UUID
	customer      *models.Customer
	profile       *ml.Profile
	limit         int
	includeStored bool
	seeds         []string
	exclude       map[string]struct{}
	tried         map[string]struct{}
	predicted     string
	predictedDone bool
}

func NewRecommendationService(deps RecommendationDeps, opts RecommendationOptions) *RecommendationService {
	if deps.Resolver == nil {
		deps.Resolver = taxonomy.NewResolver(nil)
	}
	if deps.Logger == nil {
		deps.Logger = NewRecommendationLogger(nil)
	}

	s := &RecommendationService{
		products:   deps.Products,
		customers:  deps.Customers,
		stored:     deps.Recommendations,
		basket:     deps.Basket,
		classifier: deps.Classifier,
		rules:      deps.Rules,
		resolver:   deps.Resolver,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		opts:       opts,
	}

	s.cascade = []stage{
		{name: models.StageManual, run: s.manualStage},
		{name: models.StageMLPredicted, run: s.predictedStage},
		{name: models.StageProfile, run: s.profileStage},
		{name: models.StageAssociationRules, run: s.rulesStage},
		{name: models.StageCategoryFallback, run: s.categoryFallbackStage},
		{name: models.StageGenericFallback, run: s.genericStage},
	}
	s.setCascade = []stage{
		{name: models.StageAssociationRules, run: s.seedRulesStage},
		{name: models.StageCategoryFallback, run: s.seedCategoryStage},
	}
	return s
}

func (s *RecommendationService) Recommend(ctx context.Context, customerID uuid.UUID, limit int) (*models.RecommendationResult, error) {
	return s.resolve(ctx, customerID, limit, true)
}

func (s *RecommendationService) Compute(ctx context.Context, customerID uuid.UUID, limit int) (*models.RecommendationResult, error) {
	return s.resolve(ctx, customerID, limit, false)
}

func (s *RecommendationService) resolve(ctx context.Context, customerID uuid.UUID, limit int, includeStored bool) (*models.RecommendationResult, error) {
	start := time.Now()

	r := s.newResolution(ctx, customerID, s.clampLimit(limit, s.opts.DefaultLimit))
	r.includeStored = includeStored

	result, err := s.run(ctx, r, s.cascade)
	if err != nil {
		return result, err
	}

	s.observe(ctx, customerID, result, start)
	return result, nil
}

// CompleteTheSet suggests products that go with the seed SKUs: association
// rules over the seeds first, then in-stock items from the first seed's
// category. Seeds are never suggested back.
func (s *RecommendationService) CompleteTheSet(ctx context.Context, seedSKUs []string, limit int) (*models.RecommendationResult, error) {
	start := time.Now()

	r := s.newResolution(ctx, uuid.Nil, s.clampLimit(limit, s.opts.CompleteSetLimit))
	collector := newSKUCollector(len(seedSKUs) + 1)
	collector.add(seedSKUs...)
	r.seeds = collector.skus
	for key := range collector.seen {
		r.exclude[key] = struct{}{}
	}

	result, err := s.run(ctx, r, s.setCascade)
	if err != nil {
		return result, err
	}

	s.observe(ctx, uuid.Nil, result, start)
	return result, nil
}

func (s *RecommendationService) run(ctx context.Context, r *resolution, stages []stage) (*models.RecommendationResult, error) {
	result := &models.RecommendationResult{
		Products: []models.Product{},
		Source:   models.SourceFallback,
		Stage:    models.StageGenericFallback,
	}

	var lastErr error
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out := st.run(ctx, r)
		accepted := acceptProducts(out.products, r.exclude, r.limit)

		attempt := models.StageAttempt{
			Stage:      st.name,
			Source:     out.source,
			Category:   out.category,
			Candidates: len(out.products),
			Accepted:   len(accepted),
			Skipped:    out.skipped,
		}
		result.Attempts = append(result.Attempts, attempt)
		s.logger.LogStageEvaluated(ctx, r.customerID, attempt)
		if out.skipped != "" && out.err == nil {
			s.count(MetricRecommendationSkipped, map[string]string{"stage": st.name, "reason": out.skipped})
		}

		if len(accepted) > 0 {
			result.Products = accepted
			result.Source = out.source
			result.Stage = st.name
			result.Category = out.category
			return result, nil
		}
		lastErr = out.err
	}

	if lastErr != nil && stages[len(stages)-1].name == models.StageGenericFallback {
		return result, fmt.Errorf("%w: %v", ErrCatalogUnavailable, lastErr)
	}
	return result, nil
}

func (s *RecommendationService) newResolution(ctx context.Context, customerID uuid.UUID, limit int) *resolution {
	r := &resolution{
		customerID: customerID,
		limit:      limit,
		exclude:    make(map[string]struct{}),
		tried:      make(map[string]struct{}),
	}
	if customerID == uuid.Nil || s.customers == nil {
		return r
	}

	customer, err := s.customers.GetByID(customerID)
	if err != nil {
		if !errors.Is(err, repositories.ErrCustomerNotFound) {
			s.sourceFailed(ctx, r, models.StageProfile, err)
		}
		return r
	}
	r.customer = customer
	r.profile = ml.ProfileFromCustomer(customer)
	return r
}

func (s *RecommendationService) manualStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceManual}
	if r.customerID == uuid.Nil {
		out.skipped = SkipAnonymous
		return out
	}
	if s.stored == nil {
		out.skipped = SkipUnavailable
		return out
	}

	rows, err := s.stored.ListForCustomer(r.customerID)
	if err != nil {
		return s.failedOutcome(ctx, r, models.StageManual, out, err)
	}

	// A list made only of precomputed rows reports the source that won when
	// it was computed; any merchandiser row keeps it manual.
	stored := ""
	mixed := false
	for _, row := range rows {
		source, precomputed := row.Precomputed()
		if precomputed && !r.includeStored {
			continue
		}
		if row.Product == nil {
			continue
		}
		out.products = append(out.products, *row.Product)
		switch {
		case !precomputed || source == "":
			mixed = true
		case stored == "":
			stored = source
		case stored != source:
			mixed = true
		}
	}
	if !mixed && stored != "" {
		out.source = stored
	}
	return out
}

func (s *RecommendationService) predictedStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceMLPredicted}
	switch {
	case r.profile == nil:
		out.skipped = SkipNoProfile
		return out
	case r.profile.SignalCount() < s.opts.RichnessThreshold:
		out.skipped = SkipSparseProfile
		return out
	}

	slug := s.prediction(r)
	if slug == "" {
		out.skipped = SkipNoPrediction
		return out
	}
	return s.categoryOutcome(ctx, r, models.StageMLPredicted, out, slug)
}

func (s *RecommendationService) profileStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceProfile}
	prefs := r.customer.PreferredCategoryList()
	if len(prefs) == 0 {
		out.skipped = SkipNoPreferences
		return out
	}

	for _, pref := range prefs {
		slug := s.categorySlug(pref)
		if _, done := r.tried[slug]; done || slug == "" {
			continue
		}
		if o := s.categoryOutcome(ctx, r, models.StageProfile, out, slug); len(o.products) > 0 {
			return o
		}
	}
	return out
}

func (s *RecommendationService) rulesStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceAssociationRules}
	switch {
	case r.customerID == uuid.Nil:
		out.skipped = SkipAnonymous
		return out
	case s.rules == nil || s.basket == nil:
		out.skipped = SkipUnavailable
		return out
	}

	basket := s.basket.Gather(ctx, r.customerID)
	if len(basket) == 0 {
		out.skipped = SkipEmptyBasket
		return out
	}
	return s.ruleOutcome(ctx, r, out, basket)
}

// categoryFallbackStage retries the predicted category without the richness
// guard, then any preference not tried yet.
func (s *RecommendationService) categoryFallbackStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{}

	type candidate struct {
		slug   string
		source string
	}
	var candidates []candidate
	if r.profile != nil {
		candidates = append(candidates, candidate{slug: s.prediction(r), source: models.SourceMLPredicted})
	}
	for _, pref := range r.customer.PreferredCategoryList() {
		candidates = append(candidates, candidate{slug: s.categorySlug(pref), source: models.SourceProfile})
	}

	attempted := false
	for _, c := range candidates {
		if _, done := r.tried[c.slug]; done || c.slug == "" {
			continue
		}
		attempted = true
		out.source = c.source
		if o := s.categoryOutcome(ctx, r, models.StageCategoryFallback, out, c.slug); len(o.products) > 0 {
			return o
		}
	}

	if !attempted {
		out.skipped = SkipNothingUntried
	}
	return out
}

func (s *RecommendationService) genericStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceFallback}
	products, err := s.products.TopInStock(r.limit + len(r.exclude))
	if err != nil {
		return s.failedOutcome(ctx, r, models.StageGenericFallback, out, err)
	}
	out.products = products
	return out
}

func (s *RecommendationService) seedRulesStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceAssociationRules}
	switch {
	case len(r.seeds) == 0:
		out.skipped = SkipNoSeeds
		return out
	case s.rules == nil:
		out.skipped = SkipUnavailable
		return out
	}
	return s.ruleOutcome(ctx, r, out, r.seeds)
}

func (s *RecommendationService) seedCategoryStage(ctx context.Context, r *resolution) stageOutcome {
	out := stageOutcome{source: models.SourceFallback}
	if len(r.seeds) == 0 {
		out.skipped = SkipNoSeeds
		return out
	}

	seed, err := s.products.GetBySKU(r.seeds[0])
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			out.skipped = SkipNoSeeds
			return out
		}
		return s.failedOutcome(ctx, r, models.StageCategoryFallback, out, err)
	}

	slug := s.categorySlug(seed.Category)
	if slug == "" {
		out.skipped = SkipNoSeeds
		return out
	}
	out.category = slug

	products, err := s.products.FindInStockByCategory(s.resolver.MatchPredicate(slug), r.limit+len(r.exclude))
	if err != nil {
		return s.failedOutcome(ctx, r, models.StageCategoryFallback, out, err)
	}
	out.products = products
	return out
}

func (s *RecommendationService) ruleOutcome(ctx context.Context, r *resolution, out stageOutcome, basket []string) stageOutcome {
	skus := s.rules.Recommend(basket, r.limit*rulesCandidateBoost)
	if len(skus) == 0 {
		return out
	}

	products, err := s.products.GetBySKUs(skus)
	if err != nil {
		return s.failedOutcome(ctx, r, models.StageAssociationRules, out, err)
	}
	out.products = products
	return out
}

func (s *RecommendationService) categoryOutcome(ctx context.Context, r *resolution, stageName string, out stageOutcome, slug string) stageOutcome {
	r.tried[slug] = struct{}{}
	out.category = slug

	products, err := s.products.FindInStockByCategory(s.resolver.MatchPredicate(slug), r.limit)
	if err != nil {
		return s.failedOutcome(ctx, r, stageName, out, err)
	}
	out.products = products
	return out
}

// prediction asks the classifier once per resolution and returns the
// canonical slug, or the lowercased raw label when it is not in the taxonomy.
func (s *RecommendationService) prediction(r *resolution) string {
	if r.predictedDone {
		return r.predicted
	}
	r.predictedDone = true

	if s.classifier == nil || r.profile == nil {
		return ""
	}
	raw, ok := s.classifier.PredictCategory(r.profile)
	if !ok {
		return ""
	}
	r.predicted = s.categorySlug(raw)
	return r.predicted
}

func (s *RecommendationService) categorySlug(raw string) string {
	if slug := s.resolver.ResolveSlug(raw); slug != "" {
		return slug
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

func (s *RecommendationService) failedOutcome(ctx context.Context, r *resolution, stageName string, out stageOutcome, err error) stageOutcome {
	s.sourceFailed(ctx, r, stageName, err)
	out.products = nil
	out.skipped = SkipSourceError
	out.err = err
	return out
}

func (s *RecommendationService) sourceFailed(ctx context.Context, r *resolution, stageName string, err error) {
	s.logger.LogSourceFailed(ctx, r.customerID, stageName, err.Error())
	s.count(MetricSourceFailed, map[string]string{"stage": stageName})
}

func (s *RecommendationService) observe(ctx context.Context, customerID uuid.UUID, result *models.RecommendationResult, start time.Time) {
	elapsed := time.Since(start)
	s.logger.LogRecommendationResolved(ctx, customerID, result, elapsed.Milliseconds())
	s.count(MetricRecommendationResolved, map[string]string{"source": result.Source, "stage": result.Stage})
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(MetricRecommendationDuration, elapsed)
	}
}

func (s *RecommendationService) count(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func (s *RecommendationService) clampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if s.opts.MaxLimit > 0 && limit > s.opts.MaxLimit {
		limit = s.opts.MaxLimit
	}
	return limit
}

// acceptProducts dedupes products by id and SKU, drops anything out of stock
// or excluded, and caps the list at limit.
func acceptProducts(products []models.Product, exclude map[string]struct{}, limit int) []models.Product {
	accepted := make([]models.Product, 0, min(len(products), limit))
	seenIDs := make(map[uuid.UUID]struct{}, len(products))
	seenSKUs := make(map[string]struct{}, len(products))

	for _, p := range products {
		if len(accepted) >= limit {
			break
		}
		if !p.InStock() {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(p.SKU))
		if _, skip := exclude[key]; skip {
			continue
		}
		if _, dup := seenIDs[p.ID]; dup {
			continue
		}
		if _, dup := seenSKUs[key]; dup {
			continue
		}
		seenIDs[p.ID] = struct{}{}
		seenSKUs[key] = struct{}{}
		accepted = append(accepted, p)
	}
	return accepted
}
