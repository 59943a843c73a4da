package service

import (
	"context"
	"testing"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/model"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/repository/unitofwork"
	"ara-be/pkg/database"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPublisherService struct {
	mock.Mock
}

func (m *mockPublisherService) Publish(ctx context.Context, msg []byte) error {
	return m.Called(ctx, msg).Error(0)
}

type mockEventPublisherService struct {
	mock.Mock
}

func (m *mockEventPublisherService) PublishFunctionalityMoved(ctx context.Context, projectId int64, functionalityIds []int64, parentId *int64) {
	m.Called(ctx, projectId, functionalityIds, parentId)
}

func (m *mockEventPublisherService) PublishCoverageChanged(ctx context.Context, projectId int64, functionalityId int64) {
	m.Called(ctx, projectId, functionalityId)
}

func (m *mockEventPublisherService) PublishDefectRefreshRequested(ctx context.Context, projectId int64, indexer string) {
	m.Called(ctx, projectId, indexer)
}

type mockSummaryCache struct {
	mock.Mock
}

func (m *mockSummaryCache) Get(ctx context.Context, projectId int64) (*dto.CoverageSummaryResponse, int64, error) {
	args := m.Called(ctx, projectId)
	summary, _ := args.Get(0).(*dto.CoverageSummaryResponse)
	return summary, args.Get(1).(int64), args.Error(2)
}

func (m *mockSummaryCache) Set(ctx context.Context, projectId int64, generation int64, summary *dto.CoverageSummaryResponse) (bool, error) {
	args := m.Called(ctx, projectId, generation, summary)
	return args.Bool(0), args.Error(1)
}

func (m *mockSummaryCache) Invalidate(ctx context.Context, projectId int64) error {
	return m.Called(ctx, projectId).Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendHTML(from string, recipients []string, subject, body string) error {
	return m.Called(from, recipients, subject, body).Error(0)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteMemoryDB(model.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

func testLogger() logger.ILogger {
	return logger.NewNopLogger()
}

func int64Ptr(i int64) *int64 { return &i }
func boolPtr(b bool) *bool    { return &b }

func seedScenario(t *testing.T, factory unitofwork.RepositoryFactory, s *entity.Scenario) *entity.Scenario {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, factory.NewUnitOfWork(ctx).ScenarioRepository().Create(ctx, s))
	return s
}

func seedTeam(t *testing.T, factory unitofwork.RepositoryFactory, team *entity.Team) *entity.Team {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, factory.NewUnitOfWork(ctx).TeamRepository().Create(ctx, team))
	return team
}
