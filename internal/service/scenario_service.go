// FILE: internal/service/scenario_service.go
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/repository/specification"
	"ara-be/internal/repository/unitofwork"
)

type IScenarioService interface {
	GetAll(ctx context.Context, projectId int64) ([]*dto.ScenarioResponse, error)
	Create(ctx context.Context, projectId int64, req *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error)
}

type scenarioService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewScenarioService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IScenarioService {
	return &scenarioService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *scenarioService) GetAll(ctx context.Context, projectId int64) ([]*dto.ScenarioResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scenarios, err := uow.ScenarioRepository().FindAll(ctx, specification.ByProjectID{ProjectID: projectId})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(scenarios, entity.CompareScenarios)

	result := make([]*dto.ScenarioResponse, 0, len(scenarios))
	for _, scenario := range scenarios {
		result = append(result, toScenarioResponse(scenario))
	}
	return result, nil
}

func (s *scenarioService) Create(ctx context.Context, projectId int64, req *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := uow.SourceRepository().FindOne(ctx,
		specification.ByID{ID: req.SourceId},
		specification.ByProjectID{ProjectID: projectId},
	)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, serverutils.NewBadRequestError("source %d does not exist in this project", req.SourceId)
	}

	scenario := &entity.Scenario{
		ProjectId:    projectId,
		SourceId:     source.Id,
		FeatureFile:  req.FeatureFile,
		Name:         strings.TrimSpace(req.Name),
		Line:         req.Line,
		CountryCodes: normalizeCountryCodes(req.CountryCodes),
		Ignored:      req.Ignored,
	}
	if err := uow.ScenarioRepository().Create(ctx, scenario); err != nil {
		return nil, fmt.Errorf("create scenario: %w", err)
	}

	s.logger.Debug("SCENARIO", "Scenario created", map[string]interface{}{
		"project_id": projectId,
		"source":     source.Code,
		"id":         scenario.Id,
	})
	return toScenarioResponse(scenario), nil
}

func toScenarioResponse(scenario *entity.Scenario) *dto.ScenarioResponse {
	return &dto.ScenarioResponse{
		Id:           scenario.Id,
		SourceId:     scenario.SourceId,
		FeatureFile:  scenario.FeatureFile,
		Name:         scenario.Name,
		Line:         scenario.Line,
		CountryCodes: scenario.CountryCodes,
		Ignored:      scenario.Ignored,
	}
}
