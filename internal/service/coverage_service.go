package service

import (
	"context"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/repository/cache"
	"ara-be/internal/repository/specification"
	"ara-be/internal/repository/unitofwork"
	"ara-be/pkg/events"
	pktNats "ara-be/pkg/nats"
)

const (
	CoverageAxisCode = "coverage"
	CoverageAxisName = "Coverage"
)

type ICoverageService interface {
	Axis() *dto.CoverageAxisResponse
	AxisPoints() []*dto.AxisPointResponse
	ValuePoints(functionality *entity.Functionality) []string
	Summary(ctx context.Context, projectId int64) (*dto.CoverageSummaryResponse, error)
	InvalidateSummary(ctx context.Context, projectId int64)
	ListenForInvalidation(subscriber *pktNats.Subscriber) error
}

type coverageService struct {
	uowFactory   unitofwork.RepositoryFactory
	summaryCache cache.ICoverageSummaryCache
	logger       logger.ILogger
}

// NewCoverageService accepts a nil summary cache: summaries are then always computed.
func NewCoverageService(
	uowFactory unitofwork.RepositoryFactory,
	summaryCache cache.ICoverageSummaryCache,
	log logger.ILogger,
) ICoverageService {
	return &coverageService{
		uowFactory:   uowFactory,
		summaryCache: summaryCache,
		logger:       log,
	}
}

func (s *coverageService) Axis() *dto.CoverageAxisResponse {
	return &dto.CoverageAxisResponse{
		Code:   CoverageAxisCode,
		Name:   CoverageAxisName,
		Points: s.AxisPoints(),
	}
}

// AxisPoints lists one point per coverage level, in level order.
func (s *coverageService) AxisPoints() []*dto.AxisPointResponse {
	points := make([]*dto.AxisPointResponse, 0, len(entity.CoverageLevels))
	for _, level := range entity.CoverageLevels {
		points = append(points, &dto.AxisPointResponse{
			Id:      string(level),
			Name:    level.Label(),
			Tooltip: level.Tooltip(),
		})
	}
	return points
}

func (s *coverageService) ValuePoints(functionality *entity.Functionality) []string {
	return []string{string(functionality.CoverageLevel())}
}

func (s *coverageService) Summary(ctx context.Context, projectId int64) (*dto.CoverageSummaryResponse, error) {
	// Read before computing: Set then refuses the result if an invalidation landed meanwhile.
	cacheable := false
	var generation int64
	if s.summaryCache != nil {
		cached, gen, err := s.summaryCache.Get(ctx, projectId)
		if err != nil {
			s.logger.Warn("COVERAGE", "Summary cache read failed", map[string]interface{}{"project_id": projectId, "error": err.Error()})
		} else if cached != nil {
			return cached, nil
		} else {
			cacheable, generation = true, gen
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	functionalities, err := uow.FunctionalityRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.ByFunctionalityType{Type: string(entity.FunctionalityTypeFunctionality)},
		specification.WithScenarios{},
	)
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.CoverageLevel]int, len(entity.CoverageLevels))
	for _, f := range functionalities {
		counts[f.CoverageLevel()]++
	}

	summary := &dto.CoverageSummaryResponse{
		ProjectId: projectId,
		Total:     len(functionalities),
		Levels:    make([]*dto.CoverageLevelCount, 0, len(entity.CoverageLevels)),
	}
	for _, level := range entity.CoverageLevels {
		summary.Levels = append(summary.Levels, &dto.CoverageLevelCount{
			Level: string(level),
			Label: level.Label(),
			Count: counts[level],
		})
	}

	if cacheable {
		stored, err := s.summaryCache.Set(ctx, projectId, generation, summary)
		if err != nil {
			s.logger.Warn("COVERAGE", "Summary cache write failed", map[string]interface{}{"project_id": projectId, "error": err.Error()})
		} else if !stored {
			s.logger.Debug("COVERAGE", "Summary outdated by a concurrent change, not cached", map[string]interface{}{"project_id": projectId})
		}
	}

	return summary, nil
}

func (s *coverageService) InvalidateSummary(ctx context.Context, projectId int64) {
	if s.summaryCache == nil {
		return
	}
	if err := s.summaryCache.Invalidate(ctx, projectId); err != nil {
		s.logger.Warn("COVERAGE", "Summary cache invalidation failed", map[string]interface{}{"project_id": projectId, "error": err.Error()})
	}
}

// ListenForInvalidation drops cached summaries when another instance changes coverage.
func (s *coverageService) ListenForInvalidation(subscriber *pktNats.Subscriber) error {
	handler := func(ctx context.Context, event events.Event) error {
		if projectId, ok := events.ProjectId(event); ok {
			s.InvalidateSummary(ctx, projectId)
		}
		return nil
	}

	if err := subscriber.Subscribe(events.CoverageChanged, "coverage-summary-coverage-changed", handler); err != nil {
		return err
	}
	return subscriber.Subscribe(events.FunctionalityMoved, "coverage-summary-functionality-moved", handler)
}
