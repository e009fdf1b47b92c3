package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"auroramart/internal/config"
	"auroramart/internal/models"
	"auroramart/internal/repositories"
	"auroramart/internal/repositories/repository_mocks"
	"auroramart/internal/services"
	"auroramart/internal/services/service_mocks"
	"auroramart/internal/taxonomy"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RecommendationServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	service    *services.RecommendationService
	products   *repository_mocks.MockProductRepositoryInterface
	customers  *repository_mocks.MockCustomerRepositoryInterface
	stored     *repository_mocks.MockRecommendationRepositoryInterface
	basket     *service_mocks.MockBasketSignalInterface
	classifier *service_mocks.MockCategoryClassifierInterface
	rules      *service_mocks.MockRuleRecommenderInterface
	logger     *service_mocks.MockRecommendationLoggerInterface
	metrics    *service_mocks.MockMetricsRecorderInterface
}

func TestRecommendationServiceSuite(t *testing.T) {
	suite.Run(t, new(RecommendationServiceTestSuite))
}

func (s *RecommendationServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.products = repository_mocks.NewMockProductRepositoryInterface(s.ctrl)
	s.customers = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.stored = repository_mocks.NewMockRecommendationRepositoryInterface(s.ctrl)
	s.basket = service_mocks.NewMockBasketSignalInterface(s.ctrl)
	s.classifier = service_mocks.NewMockCategoryClassifierInterface(s.ctrl)
	s.rules = service_mocks.NewMockRuleRecommenderInterface(s.ctrl)
	s.logger = service_mocks.NewMockRecommendationLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.logger.EXPECT().LogStageEvaluated(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogRecommendationResolved(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewRecommendationService(services.RecommendationDeps{
		Products:        s.products,
		Customers:       s.customers,
		Recommendations: s.stored,
		Basket:          s.basket,
		Classifier:      s.classifier,
		Rules:           s.rules,
		Resolver:        taxonomy.NewResolver(nil),
		Logger:          s.logger,
		Metrics:         s.metrics,
	}, services.DefaultRecommendationOptions())
}

func (s *RecommendationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func product(sku, category string, stock int) models.Product {
	return models.Product{
		ID:       uuid.New(),
		SKU:      sku,
		Name:     gofakeit.ProductName(),
		Category: category,
		Price:    decimal.NewFromFloat(gofakeit.Price(1, 500)),
		Stock:    stock,
	}
}

func intPtr(v int) *int { return &v }

func richCustomer(prefs string) *models.Customer {
	return &models.Customer{
		ID:                  uuid.New(),
		Email:               gofakeit.Email(),
		Age:                 intPtr(34),
		Gender:              "Female",
		EmploymentStatus:    "Full-time",
		Occupation:          "Engineer",
		PreferredCategories: prefs,
	}
}

// predicateFor matches a taxonomy.Predicate for slug
type predicateFor string

func (p predicateFor) Matches(x interface{}) bool {
	pred, ok := x.(taxonomy.Predicate)
	return ok && pred.Slug == string(p)
}

func (p predicateFor) String() string {
	return fmt.Sprintf("predicate for %s", string(p))
}

func skus(result *models.RecommendationResult) []string {
	return result.SKUs()
}

func (s *RecommendationServiceTestSuite) expectCustomer(c *models.Customer) {
	s.customers.EXPECT().GetByID(c.ID).Return(c, nil)
}

func (s *RecommendationServiceTestSuite) expectNoManual(id uuid.UUID) {
	s.stored.EXPECT().ListForCustomer(id).Return([]models.Recommendation{}, nil)
}

func (s *RecommendationServiceTestSuite) TestRecommend_ManualWinsVerbatim() {
	customer := richCustomer("books")
	s.expectCustomer(customer)

	a := product("MAN-1", "books", 3)
	gone := product("MAN-2", "books", 0)
	b := product("MAN-3", "toys", 1)
	s.stored.EXPECT().ListForCustomer(customer.ID).Return([]models.Recommendation{
		{ProductID: a.ID, Product: &a, Reason: "staff pick"},
		{ProductID: gone.ID, Product: &gone},
		{ProductID: a.ID, Product: &a},
		{ProductID: b.ID, Product: &b},
	}, nil)

	s.classifier.EXPECT().PredictCategory(gomock.Any()).Times(0)
	s.basket.EXPECT().Gather(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.service.Recommend(s.ctx, customer.ID, 8)

	s.Require().NoError(err)
	s.Equal(models.SourceManual, result.Source)
	s.Equal(models.StageManual, result.Stage)
	s.Equal([]string{"MAN-1", "MAN-3"}, skus(result))
	s.Len(result.Attempts, 1)
}

func (s *RecommendationServiceTestSuite) TestRecommend_RichnessGuardSkipsClassifier() {
	customer := &models.Customer{ID: uuid.New(), Email: gofakeit.Email(), Age: intPtr(25), PreferredCategories: "Literature"}
	s.expectCustomer(customer)
	s.expectNoManual(customer.ID)

	s.classifier.EXPECT().PredictCategory(gomock.Any()).Times(0)
	s.products.EXPECT().FindInStockByCategory(predicateFor(taxonomy.SlugBooks), 8).
		Return([]models.Product{product("BK-1", "books", 4)}, nil)

	result, err := s.service.Recommend(s.ctx, customer.ID, 8)

	s.Require().NoError(err)
	s.Equal(models.SourceProfile, result.Source)
	s.Equal(taxonomy.SlugBooks, result.Category)
	s.Require().Len(result.Attempts, 3)
	s.Equal(models.StageMLPredicted, result.Attempts[1].Stage)
	s.Equal(services.SkipSparseProfile, result.Attempts[1].Skipped)
}

func (s *RecommendationServiceTestSuite) TestRecommend_PredictedCategoryWins() {
	customer := richCustomer("toys")
	s.expectCustomer(customer)
	s.expectNoManual(customer.ID)

	s.classifier.EXPECT().PredictCategory(gomock.Any()).Return("Home & Kitchen", true).Times(1)
	s.products.EXPECT().FindInStockByCategory(predicateFor(taxonomy.SlugHomeKitchen), 4).
		Return([]models.Product{product("HK-1", "home_kitchen", 9), product("HK-2", "Home and Kitchen", 2)}, nil)

	result, err := s.service.Recommend(s.ctx, customer.ID, 4)

	s.Require().NoError(err)
	s.Equal(models.SourceMLPredicted, result.Source)
	s.Equal(models.StageMLPredicted, result.Stage)
	s.Equal(taxonomy.SlugHomeKitchen, result.Category)
	s.Equal([]string{"HK-1", "HK-2"}, skus(result))
}

func (s *RecommendationServiceTestSuite) TestRecommend_ZeroStockFallsThroughToRules() {
	customer := richCustomer("")
	s.expectCustomer(customer)
	s.expectNoManual(customer.ID)

	s.classifier.EXPECT().PredictCategory(gomock.Any()).Return("electronics", true).Times(1)
	s.products.EXPECT().FindInStockByCategory(predicateFor(taxonomy.SlugElectronics), 8).
		Return([]models.Product{product("EL-1", "electronics", 0)}, nil)

	s.basket.EXPECT().Gather(gomock.Any(), customer.ID).Return([]string{"SKU1"})
	s.rules.EXPECT().Recommend([]string{"SKU1"}, 16).Return([]string{"SKU2", "SKU3"})
	s.products.EXPECT().GetBySKUs([]string{"SKU2", "SKU3"}).
		Return([]models.Product{product("SKU2", "toys", 0), product("SKU3", "toys", 5)}, nil)

	result, err := s.service.Recommend(s.ctx, customer.ID, 8)

	s.Require().NoError(err)
	s.Equal(models.SourceAssociationRules, result.Source)
	s.Equal([]string{"SKU3"}, skus(result))

	for _, p := range result.Products {
		s.Greater(p.Stock, 0)
	}
	s.Equal(0, result.Attempts[1].Accepted)
	s.Equal(1, result.Attempts[1].Candidates)
}

func (s *RecommendationServiceTestSuite) TestRecommend_CategoryFallbackIgnoresGuard() {
	customer := &models.Customer{ID: uuid.New(), Email: gofakeit.Email(), Age: intPtr(25)}
	s.expectCustomer(customer)
	s.expectNoManual(customer.ID)

	s.basket.EXPECT().Gather(gomock.Any(), customer.ID).Return([]string{})
	s.classifier.EXPECT().PredictCategory(gomock.Any()).Return("Smart Devices", true).Times(1)
	s.products.EXPECT().FindInStockByCategory(predicateFor(taxonomy.SlugElectronics), 8).
		Return([]models.Product{product("EL-1", "electronics", 2)}, nil)

	result, err := s.service.Recommend(s.ctx, customer.ID, 8)

	s.Require().NoError(err)
	s.Equal(models.SourceMLPredicted, result.Source)
	s.Equal(models.StageCategoryFallback, result.Stage)
	s.Equal(services.SkipEmptyBasket, result.Attempts[3].Skipped)
}

func (s *RecommendationServiceTestSuite) TestRecommend_AnonymousGetsGenericFallback() {
	s.products.EXPECT().TopInStock(8).
		Return([]models.Product{product("TOP-1", "toys", 50), product("TOP-2", "toys", 0), product("TOP-3", "books", 7)}, nil)

	result, err := s.service.Recommend(s.ctx, uuid.Nil, 0)

	s.Require().NoError(err)
	s.Equal(models.SourceFallback, result.Source)
	s.Equal(models.StageGenericFallback, result.Stage)
	s.Equal([]string{"TOP-1", "TOP-3"}, skus(result))
	s.Require().Len(result.Attempts, len(models.AllStages()))
	s.Equal(services.SkipAnonymous, result.Attempts[0].Skipped)
	s.Equal(services.SkipNoProfile, result.Attempts[1].Skipped)
	s.Equal(services.SkipNothingUntried, result.Attempts[4].Skipped)
}

func (s *RecommendationServiceTestSuite) TestRecommend_SourceFailuresAreAbsorbed() {
	id := uuid.New()
	s.customers.EXPECT().GetByID(id).Return(nil, errors.New("connection reset"))
	s.stored.EXPECT().ListForCustomer(id).Return(nil, errors.New("connection reset"))
	s.basket.EXPECT().Gather(gomock.Any(), id).Return([]string{"A"})
	s.rules.EXPECT().Recommend([]string{"A"}, 16).Return([]string{"B"})
	s.products.EXPECT().GetBySKUs([]string{"B"}).Return(nil, errors.New("timeout"))
	s.products.EXPECT().TopInStock(8).Return([]models.Product{product("TOP-1", "toys", 1)}, nil)

	s.logger.EXPECT().LogSourceFailed(gomock.Any(), id, models.StageProfile, gomock.Any())
	s.logger.EXPECT().LogSourceFailed(gomock.Any(), id, models.StageManual, gomock.Any())
	s.logger.EXPECT().LogSourceFailed(gomock.Any(), id, models.StageAssociationRules, gomock.Any())

	result, err := s.service.Recommend(s.ctx, id, 8)

	s.Require().NoError(err)
	s.Equal(models.SourceFallback, result.Source)
	s.Equal(services.SkipSourceError, result.Attempts[0].Skipped)
	s.Equal(services.SkipSourceError, result.Attempts[3].Skipped)
}

func (s *RecommendationServiceTestSuite) TestRecommend_CustomerNotFoundIsNotAFailure() {
	id := uuid.New()
	s.customers.EXPECT().GetByID(id).Return(nil, repositories.ErrCustomerNotFound)
	s.expectNoManual(id)
	s.basket.EXPECT().Gather(gomock.Any(), id).Return(nil)
	s.products.EXPECT().TopInStock(8).Return([]models.Product{product("TOP-1", "toys", 1)}, nil)
	s.logger.EXPECT().LogSourceFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := s.service.Recommend(s.ctx, id, 8)

	s.Require().NoError(err)
	s.Equal([]string{"TOP-1"}, skus(result))
}

func (s *RecommendationServiceTestSuite) TestRecommend_CatalogDown() {
	s.products.EXPECT().TopInStock(8).Return(nil, errors.New("connection refused"))
	s.logger.EXPECT().LogSourceFailed(gomock.Any(), uuid.Nil, models.StageGenericFallback, gomock.Any())

	result, err := s.service.Recommend(s.ctx, uuid.Nil, 8)

	s.ErrorIs(err, services.ErrCatalogUnavailable)
	s.Empty(result.Products)
}

func (s *RecommendationServiceTestSuite) TestRecommend_LimitIsClamped() {
	s.products.EXPECT().TopInStock(50).Return([]models.Product{}, nil)

	result, err := s.service.Recommend(s.ctx, uuid.Nil, 500)

	s.Require().NoError(err)
	s.Empty(result.Products)
}

func (s *RecommendationServiceTestSuite) TestCompute_IgnoresPrecomputedRows() {
	customer := richCustomer("")
	s.customers.EXPECT().GetByID(customer.ID).Return(customer, nil).Times(2)

	cached := product("CACHED-1", "toys", 5)
	rows := []models.Recommendation{{ProductID: cached.ID, Product: &cached, Reason: models.ReasonPrecomputed}}
	s.stored.EXPECT().ListForCustomer(customer.ID).Return(rows, nil).Times(2)

	served, err := s.service.Recommend(s.ctx, customer.ID, 8)
	s.Require().NoError(err)
	s.Equal(models.SourceManual, served.Source)

	s.classifier.EXPECT().PredictCategory(gomock.Any()).Return("", false)
	s.basket.EXPECT().Gather(gomock.Any(), customer.ID).Return(nil)
	s.products.EXPECT().TopInStock(8).Return([]models.Product{product("TOP-1", "toys", 1)}, nil)

	fresh, err := s.service.Compute(s.ctx, customer.ID, 8)
	s.Require().NoError(err)
	s.Equal(models.SourceFallback, fresh.Source)
	s.Equal(services.SkipNoPrediction, fresh.Attempts[1].Skipped)
}

func (s *RecommendationServiceTestSuite) TestRecommend_PrecomputedRowsReportStoredSource() {
	customer := richCustomer("")
	s.customers.EXPECT().GetByID(customer.ID).Return(customer, nil)

	a, b := product("A-1", "books", 2), product("B-1", "books", 1)
	rows := []models.Recommendation{
		{ProductID: a.ID, Product: &a, Reason: models.PrecomputedReason(models.SourceProfile)},
		{ProductID: b.ID, Product: &b, Reason: models.PrecomputedReason(models.SourceProfile)},
	}
	s.stored.EXPECT().ListForCustomer(customer.ID).Return(rows, nil)

	result, err := s.service.Recommend(s.ctx, customer.ID, 8)

	s.Require().NoError(err)
	s.Equal(models.StageManual, result.Stage)
	s.Equal(models.SourceProfile, result.Source)
	s.Equal(models.SourceProfile, result.Attempts[0].Source)
	s.Equal([]string{"A-1", "B-1"}, skus(result))
}

func (s *RecommendationServiceTestSuite) TestRecommend_MerchandiserRowKeepsManualSource() {
	customer := richCustomer("")
	s.customers.EXPECT().GetByID(customer.ID).Return(customer, nil)

	pinned, cached := product("PIN-1", "books", 2), product("A-1", "books", 1)
	rows := []models.Recommendation{
		{ProductID: pinned.ID, Product: &pinned, Reason: "spring campaign"},
		{ProductID: cached.ID, Product: &cached, Reason: models.PrecomputedReason(models.SourceMLPredicted)},
	}
	s.stored.EXPECT().ListForCustomer(customer.ID).Return(rows, nil)

	result, err := s.service.Recommend(s.ctx, customer.ID, 8)

	s.Require().NoError(err)
	s.Equal(models.SourceManual, result.Source)
	s.Equal([]string{"PIN-1", "A-1"}, skus(result))
}

func (s *RecommendationServiceTestSuite) TestCompleteTheSet_RulesExcludeSeeds() {
	s.rules.EXPECT().Recommend([]string{"SKU1", "SKU9"}, 8).Return([]string{"SKU2", "sku1", "SKU3"})
	s.products.EXPECT().GetBySKUs([]string{"SKU2", "sku1", "SKU3"}).
		Return([]models.Product{product("SKU2", "toys", 1), product("SKU1", "toys", 1), product("SKU3", "toys", 1)}, nil)

	result, err := s.service.CompleteTheSet(s.ctx, []string{"SKU1", " sku1 ", "SKU9"}, 0)

	s.Require().NoError(err)
	s.Equal(models.SourceAssociationRules, result.Source)
	s.Equal([]string{"SKU2", "SKU3"}, skus(result))
}

func (s *RecommendationServiceTestSuite) TestCompleteTheSet_FallsBackToSeedCategory() {
	seed := product("BAG-1", "Fashion - Women", 2)
	s.rules.EXPECT().Recommend([]string{"BAG-1"}, 8).Return(nil)
	s.products.EXPECT().GetBySKU("BAG-1").Return(&seed, nil)
	s.products.EXPECT().FindInStockByCategory(predicateFor(taxonomy.SlugFashionWomen), 5).
		Return([]models.Product{seed, product("SCARF-1", "fashion_women", 3)}, nil)

	result, err := s.service.CompleteTheSet(s.ctx, []string{"BAG-1"}, 4)

	s.Require().NoError(err)
	s.Equal(models.StageCategoryFallback, result.Stage)
	s.Equal(taxonomy.SlugFashionWomen, result.Category)
	s.Equal([]string{"SCARF-1"}, skus(result))
}

func (s *RecommendationServiceTestSuite) TestCompleteTheSet_NoSeeds() {
	result, err := s.service.CompleteTheSet(s.ctx, []string{" "}, 4)

	s.Require().NoError(err)
	s.Empty(result.Products)
	s.Equal(services.SkipNoSeeds, result.Attempts[0].Skipped)
}

func TestRecommendationOptionsFromConfig(t *testing.T) {
	opts := services.RecommendationOptionsFromConfig(config.RecommendationConfig{DefaultLimit: 12, RichnessThreshold: 0})

	assert.Equal(t, 12, opts.DefaultLimit)
	assert.Equal(t, 3, opts.RichnessThreshold)
	assert.Equal(t, 4, opts.CompleteSetLimit)
	assert.Equal(t, 50, opts.MaxLimit)
}
