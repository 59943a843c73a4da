// FILE: internal/service/source_service.go
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

type ISourceService interface {
	GetAll(ctx context.Context, projectId int64) ([]*dto.SourceResponse, error)
	Create(ctx context.Context, projectId int64, req *dto.CreateSourceRequest) (*dto.SourceResponse, error)
	Update(ctx context.Context, projectId int64, req *dto.UpdateSourceRequest) (*dto.SourceResponse, error)
	Delete(ctx context.Context, projectId int64, code string) error
}

type sourceService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSourceService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISourceService {
	return &sourceService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *sourceService) GetAll(ctx context.Context, projectId int64) ([]*dto.SourceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sources, err := uow.SourceRepository().FindAll(ctx, specification.ByProjectID{ProjectID: projectId})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(sources, entity.CompareSources)

	result := make([]*dto.SourceResponse, 0, len(sources))
	for _, source := range sources {
		result = append(result, toSourceResponse(source))
	}
	return result, nil
}

func (s *sourceService) Create(ctx context.Context, projectId int64, req *dto.CreateSourceRequest) (*dto.SourceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source := &entity.Source{
		ProjectId:                 projectId,
		Code:                      strings.TrimSpace(req.Code),
		Name:                      strings.TrimSpace(req.Name),
		Letter:                    req.Letter,
		Technology:                entity.Technology(req.Technology),
		VcsUrl:                    req.VcsUrl,
		DefaultBranch:             req.DefaultBranch,
		PostmanCountryRootFolders: req.PostmanCountryRootFolders,
	}
	if err := validateSource(source); err != nil {
		return nil, err
	}

	existing, err := uow.SourceRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.ByCode{Code: source.Code},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("a source with code %q already exists", source.Code)
	}

	if err := s.checkNameIsFree(ctx, uow, source); err != nil {
		return nil, err
	}

	if err := uow.SourceRepository().Create(ctx, source); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	s.logger.Info("SOURCE", "Source created", map[string]interface{}{
		"project_id": projectId,
		"code":       source.Code,
	})
	return toSourceResponse(source), nil
}

// Update keeps the code, which is the business key of the source.
func (s *sourceService) Update(ctx context.Context, projectId int64, req *dto.UpdateSourceRequest) (*dto.SourceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := s.findSource(ctx, uow, projectId, req.Code)
	if err != nil {
		return nil, err
	}

	source.Name = strings.TrimSpace(req.Name)
	source.Letter = req.Letter
	source.Technology = entity.Technology(req.Technology)
	source.VcsUrl = req.VcsUrl
	source.DefaultBranch = req.DefaultBranch
	source.PostmanCountryRootFolders = req.PostmanCountryRootFolders
	if err := validateSource(source); err != nil {
		return nil, err
	}
	if err := s.checkNameIsFree(ctx, uow, source); err != nil {
		return nil, err
	}

	if err := uow.SourceRepository().Update(ctx, source); err != nil {
		return nil, fmt.Errorf("update source: %w", err)
	}
	return toSourceResponse(source), nil
}

func (s *sourceService) Delete(ctx context.Context, projectId int64, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := s.findSource(ctx, uow, projectId, code)
	if err != nil {
		return err
	}

	scenario, err := uow.ScenarioRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.BySourceID{SourceID: source.Id},
	)
	if err != nil {
		return err
	}
	if scenario != nil {
		return serverutils.NewConflictError("source %q still has scenarios", code)
	}

	if err := uow.SourceRepository().Delete(ctx, source.Id); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}

	s.logger.Info("SOURCE", "Source deleted", map[string]interface{}{
		"project_id": projectId,
		"code":       code,
	})
	return nil
}

func (s *sourceService) findSource(ctx context.Context, uow unitofwork.UnitOfWork, projectId int64, code string) (*entity.Source, error) {
	source, err := uow.SourceRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.ByCode{Code: code},
	)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, serverutils.NewNotFoundError("source %q not found", code)
	}
	return source, nil
}

func (s *sourceService) checkNameIsFree(ctx context.Context, uow unitofwork.UnitOfWork, source *entity.Source) error {
	other, err := uow.SourceRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: source.ProjectId},
		specification.ByName{Name: source.Name},
	)
	if err != nil {
		return err
	}
	if other != nil && !other.Equal(source) {
		return serverutils.NewConflictError("a source named %q already exists", source.Name)
	}
	return nil
}

func validateSource(source *entity.Source) error {
	if !source.Technology.IsValid() {
		return serverutils.NewBadRequestError("unknown technology %q", source.Technology)
	}
	if len([]rune(source.Letter)) != 1 {
		return serverutils.NewBadRequestError("the letter must be a single character")
	}
	if !strings.Contains(source.VcsUrl, entity.BranchPlaceholder) {
		return serverutils.NewBadRequestError("the VCS URL must contain the %s placeholder", entity.BranchPlaceholder)
	}
	if source.PostmanCountryRootFolders && source.Technology != entity.TechnologyPostman {
		return serverutils.NewBadRequestError("country root folders are only supported by POSTMAN sources")
	}
	return nil
}

func toSourceResponse(source *entity.Source) *dto.SourceResponse {
	return &dto.SourceResponse{
		Id:                        source.Id,
		Code:                      source.Code,
		Name:                      source.Name,
		Letter:                    source.Letter,
		Technology:                string(source.Technology),
		VcsUrl:                    source.VcsUrl,
		DefaultBranch:             source.DefaultBranch,
		DefaultBranchUrl:          source.BranchURL(""),
		PostmanCountryRootFolders: source.PostmanCountryRootFolders,
	}
}
