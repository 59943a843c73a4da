package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/repository/cache"
	"ara-be/internal/repository/specification"
	"ara-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func seedFunctionality(t *testing.T, factory unitofwork.RepositoryFactory, f *entity.Functionality) *entity.Functionality {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, factory.NewUnitOfWork(ctx).FunctionalityRepository().Create(ctx, f))
	return f
}

func TestCoverageService_Axis(t *testing.T) {
	svc := NewCoverageService(nil, nil, testLogger())

	axis := svc.Axis()
	assert.Equal(t, CoverageAxisCode, axis.Code)
	require.Len(t, axis.Points, len(entity.CoverageLevels))
	for i, level := range entity.CoverageLevels {
		assert.Equal(t, string(level), axis.Points[i].Id)
		assert.Equal(t, level.Label(), axis.Points[i].Name)
	}

	f := &entity.Functionality{}
	f.SetStarted(boolPtr(true))
	assert.Equal(t, []string{string(entity.CoverageLevelStarted)}, svc.ValuePoints(f))
}

func TestCoverageService_SummaryCountsFunctionalitiesOnly(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewCoverageService(factory, nil, testLogger())
	ctx := context.Background()

	active := seedScenario(t, factory, &entity.Scenario{ProjectId: projectId, SourceId: 1, Name: "a"})
	seedFunctionality(t, factory, &entity.Functionality{ProjectId: projectId, Type: entity.FunctionalityTypeFolder, Name: "Folder"})
	covered := &entity.Functionality{ProjectId: projectId, Type: entity.FunctionalityTypeFunctionality, Name: "Covered", Severity: "HIGH"}
	covered.AddScenario(active)
	seedFunctionality(t, factory, covered)
	seedFunctionality(t, factory, &entity.Functionality{ProjectId: projectId, Type: entity.FunctionalityTypeFunctionality, Name: "Bare", Severity: "LOW"})

	summary, err := svc.Summary(ctx, projectId)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)

	counts := map[string]int{}
	for _, level := range summary.Levels {
		counts[level.Level] = level.Count
	}
	assert.Equal(t, 1, counts[string(entity.CoverageLevelCovered)])
	assert.Equal(t, 1, counts[string(entity.CoverageLevelNotCovered)])
	assert.Len(t, summary.Levels, len(entity.CoverageLevels))
}

func TestCoverageService_SummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		cached := &dto.CoverageSummaryResponse{ProjectId: projectId, Total: 42}
		summaryCache := &mockSummaryCache{}
		summaryCache.On("Get", mock.Anything, projectId).Return(cached, int64(0), nil)
		svc := NewCoverageService(nil, summaryCache, testLogger())

		got, err := svc.Summary(ctx, projectId)
		require.NoError(t, err)
		assert.Same(t, cached, got)
	})

	t.Run("miss stores the computed summary", func(t *testing.T) {
		summaryCache := &mockSummaryCache{}
		summaryCache.On("Get", mock.Anything, projectId).Return(nil, int64(3), nil)
		summaryCache.On("Set", mock.Anything, projectId, int64(3), mock.AnythingOfType("*dto.CoverageSummaryResponse")).Return(true, nil).Once()
		svc := NewCoverageService(newTestFactory(t), summaryCache, testLogger())

		_, err := svc.Summary(ctx, projectId)
		require.NoError(t, err)
		summaryCache.AssertExpectations(t)
	})

	t.Run("failures are bypassed", func(t *testing.T) {
		summaryCache := &mockSummaryCache{}
		summaryCache.On("Get", mock.Anything, projectId).Return(nil, int64(0), errors.New("redis down"))
		summaryCache.On("Invalidate", mock.Anything, projectId).Return(errors.New("redis down"))
		svc := NewCoverageService(newTestFactory(t), summaryCache, testLogger())

		summary, err := svc.Summary(ctx, projectId)
		require.NoError(t, err)
		assert.Zero(t, summary.Total)
		svc.InvalidateSummary(ctx, projectId)
		summaryCache.AssertCalled(t, "Invalidate", mock.Anything, projectId)
		summaryCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCoverageService_SummaryIsNotCachedAfterConcurrentInvalidation(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	summaryCache := cache.NewCoverageSummaryCache(rdb, time.Minute)

	factory := newTestFactory(t)
	svc := NewCoverageService(factory, summaryCache, testLogger())

	// An invalidation between the cache read and the write leaves the key empty.
	racing := &invalidatingCache{ICoverageSummaryCache: summaryCache, svc: svc}
	_, err := NewCoverageService(factory, racing, testLogger()).Summary(ctx, projectId)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.CoverageSummaryKey(projectId)))

	_, err = svc.Summary(ctx, projectId)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.CoverageSummaryKey(projectId)))

	svc.InvalidateSummary(ctx, projectId)
	assert.False(t, mr.Exists(cache.CoverageSummaryKey(projectId)))
}

type invalidatingCache struct {
	cache.ICoverageSummaryCache
	svc ICoverageService
}

func (c *invalidatingCache) Set(ctx context.Context, projectId int64, generation int64, summary *dto.CoverageSummaryResponse) (bool, error) {
	c.svc.InvalidateSummary(ctx, projectId)
	return c.ICoverageSummaryCache.Set(ctx, projectId, generation, summary)
}

func TestCountCoverage(t *testing.T) {
	counters := CountCoverage([]*entity.Scenario{
		{Name: "a", CountryCodes: "us,fr"},
		{Name: "b", CountryCodes: "fr"},
		{Name: "c", CountryCodes: "us", Ignored: true},
		{Name: "d"},
	})

	assert.Equal(t, CoverageCounters{
		Covered:          3,
		CoveredCountries: "fr:2|us:1",
		Ignored:          1,
		IgnoredCountries: "us:1",
	}, counters)
	assert.Equal(t, CoverageCounters{}, CountCoverage(nil))
}

func TestConsumerService_RefreshesCounters(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	db := newTestDB(t)
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	factory := unitofwork.NewRepositoryFactory(db)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coverage := NewCoverageService(factory, nil, testLogger())
	consumer := NewConsumerService(pubSub, "COVERAGE_CHANGED", factory, coverage, testLogger())
	require.NoError(t, consumer.Consume(ctx))
	publisher := NewPublisherService("COVERAGE_CHANGED", pubSub)

	f := &entity.Functionality{ProjectId: projectId, Type: entity.FunctionalityTypeFunctionality, Name: "Pay", Severity: "HIGH"}
	f.AddScenario(seedScenario(t, factory, &entity.Scenario{ProjectId: projectId, SourceId: 1, Name: "a", CountryCodes: "fr,us"}))
	f.AddScenario(seedScenario(t, factory, &entity.Scenario{ProjectId: projectId, SourceId: 1, Name: "b", CountryCodes: "fr"}))
	f.AddScenario(seedScenario(t, factory, &entity.Scenario{ProjectId: projectId, SourceId: 1, Name: "c", CountryCodes: "us", Ignored: true}))
	seedFunctionality(t, factory, f)

	require.NoError(t, publisher.Publish(ctx, []byte("not json")))
	msg, _ := json.Marshal(dto.PublishCoverageMessage{FunctionalityId: f.Id})
	require.NoError(t, publisher.Publish(ctx, msg))

	require.Eventually(t, func() bool {
		got, err := factory.NewUnitOfWork(ctx).FunctionalityRepository().FindOne(ctx, specification.ByID{ID: f.Id})
		return err == nil && got != nil && got.CoveredScenarios == 2
	}, 2*time.Second, 10*time.Millisecond)

	got, err := factory.NewUnitOfWork(ctx).FunctionalityRepository().FindOne(ctx, specification.ByID{ID: f.Id})
	require.NoError(t, err)
	assert.Equal(t, "fr:2|us:1", got.CoveredCountryScenarios)
	assert.Equal(t, 1, got.IgnoredScenarios)
	assert.Equal(t, "us:1", got.IgnoredCountryScenarios)
}
