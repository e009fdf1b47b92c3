package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"auroramart/internal/models"
	"auroramart/internal/repositories/repository_mocks"
	"auroramart/internal/services"
	"auroramart/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RecommendationRefresherTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	refresher *services.RecommendationRefresher
	customers *repository_mocks.MockCustomerRepositoryInterface
	stored    *repository_mocks.MockRecommendationRepositoryInterface
	service   *service_mocks.MockRecommendationServiceInterface
	logger    *service_mocks.MockRecommendationLoggerInterface
	metrics   *service_mocks.MockMetricsRecorderInterface
	breaker   *service_mocks.MockCircuitBreakerInterface
}

func TestRecommendationRefresherSuite(t *testing.T) {
	suite.Run(t, new(RecommendationRefresherTestSuite))
}

func (s *RecommendationRefresherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.customers = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.stored = repository_mocks.NewMockRecommendationRepositoryInterface(s.ctrl)
	s.service = service_mocks.NewMockRecommendationServiceInterface(s.ctrl)
	s.logger = service_mocks.NewMockRecommendationLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.refresher = services.NewRecommendationRefresher(
		s.customers,
		s.stored,
		s.service,
		s.logger,
		s.metrics,
		s.breaker,
		services.RefresherOptions{Interval: time.Minute, Workers: 2, BatchSize: 2, Limit: 8},
	)
}

func (s *RecommendationRefresherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RecommendationRefresherTestSuite) TestRefreshCustomer_StoresPersonalisedResult() {
	id := uuid.New()
	a, b := product("A-1", "books", 2), product("B-1", "books", 1)
	s.service.EXPECT().Compute(gomock.Any(), id, 8).Return(&models.RecommendationResult{
		Products: []models.Product{a, b},
		Source:   models.SourceProfile,
		Stage:    models.StageProfile,
	}, nil)
	s.stored.EXPECT().ReplacePrecomputed(id, models.SourceProfile, []uuid.UUID{a.ID, b.ID}).Return(nil)
	s.breaker.EXPECT().RecordSuccess()
	s.logger.EXPECT().LogPrecomputeCompleted(gomock.Any(), id, models.SourceProfile, 2)

	s.NoError(s.refresher.RefreshCustomer(s.ctx, id))
}

func (s *RecommendationRefresherTestSuite) TestRefreshCustomer_GenericResultClearsStoredRows() {
	id := uuid.New()
	s.service.EXPECT().Compute(gomock.Any(), id, 8).Return(&models.RecommendationResult{
		Products: []models.Product{product("TOP-1", "toys", 3)},
		Source:   models.SourceFallback,
		Stage:    models.StageGenericFallback,
	}, nil)
	s.stored.EXPECT().ReplacePrecomputed(id, models.SourceFallback, gomock.Nil()).Return(nil)
	s.breaker.EXPECT().RecordSuccess()
	s.logger.EXPECT().LogPrecomputeCompleted(gomock.Any(), id, models.SourceFallback, 0)

	s.NoError(s.refresher.RefreshCustomer(s.ctx, id))
}

func (s *RecommendationRefresherTestSuite) TestRefreshCustomer_StoreFailureTripsBreaker() {
	id := uuid.New()
	s.service.EXPECT().Compute(gomock.Any(), id, 8).Return(&models.RecommendationResult{
		Products: []models.Product{product("A-1", "books", 2)},
		Source:   models.SourceAssociationRules,
	}, nil)
	s.stored.EXPECT().ReplacePrecomputed(id, models.SourceAssociationRules, gomock.Any()).Return(errors.New("deadlock detected"))
	s.breaker.EXPECT().RecordFailure()

	err := s.refresher.RefreshCustomer(s.ctx, id)

	s.ErrorContains(err, "failed to store recommendations")
}

func (s *RecommendationRefresherTestSuite) TestRefreshBatch_PagesAndWraps() {
	first := []uuid.UUID{uuid.New(), uuid.New()}
	last := []uuid.UUID{uuid.New()}

	s.breaker.EXPECT().IsOpen().Return(false).Times(3)
	gomock.InOrder(
		s.customers.EXPECT().ListIDs(0, 2).Return(first, nil),
		s.customers.EXPECT().ListIDs(2, 2).Return(last, nil),
		s.customers.EXPECT().ListIDs(0, 2).Return([]uuid.UUID{}, nil),
	)

	s.service.EXPECT().Compute(gomock.Any(), gomock.Any(), 8).Return(&models.RecommendationResult{Source: models.SourceFallback}, nil).Times(3)
	s.stored.EXPECT().ReplacePrecomputed(gomock.Any(), models.SourceFallback, gomock.Any()).Return(nil).Times(3)
	s.breaker.EXPECT().RecordSuccess().Times(3)
	s.logger.EXPECT().LogPrecomputeCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)

	n, err := s.refresher.RefreshBatch(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = s.refresher.RefreshBatch(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	n, err = s.refresher.RefreshBatch(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *RecommendationRefresherTestSuite) TestRefreshBatch_FailedCustomerIsLogged() {
	id := uuid.New()
	s.breaker.EXPECT().IsOpen().Return(false)
	s.customers.EXPECT().ListIDs(0, 2).Return([]uuid.UUID{id}, nil)
	s.service.EXPECT().Compute(gomock.Any(), id, 8).Return(nil, errors.New("catalog unavailable"))
	s.breaker.EXPECT().RecordFailure()
	s.logger.EXPECT().LogPrecomputeFailed(gomock.Any(), id, gomock.Any())

	n, err := s.refresher.RefreshBatch(s.ctx)

	s.NoError(err)
	s.Equal(1, n)
}

func (s *RecommendationRefresherTestSuite) TestRefreshBatch_OpenBreaker() {
	s.breaker.EXPECT().IsOpen().Return(true)

	_, err := s.refresher.RefreshBatch(s.ctx)

	s.ErrorIs(err, services.ErrCircuitBreakerOpen)
}

func (s *RecommendationRefresherTestSuite) TestStartProcessing_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})

	go func() {
		s.refresher.StartProcessing(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("refresher did not stop")
	}
}
