// FILE: internal/service/problem_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/mapper"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/repository/specification"
	"ara-be/internal/repository/unitofwork"
)

type IProblemService interface {
	List(ctx context.Context, projectId int64, filter *dto.ProblemFilterRequest) ([]*dto.ProblemResponse, error)
	Create(ctx context.Context, projectId int64, req *dto.CreateProblemRequest) (*dto.CreateProblemResponse, error)
}

type problemService struct {
	uowFactory     unitofwork.RepositoryFactory
	settingService ISettingService
	filterMapper   *mapper.ProblemFilterMapper
	logger         logger.ILogger
}

func NewProblemService(uowFactory unitofwork.RepositoryFactory, settingService ISettingService, log logger.ILogger) IProblemService {
	return &problemService{
		uowFactory:     uowFactory,
		settingService: settingService,
		filterMapper:   mapper.NewProblemFilterMapper(),
		logger:         log,
	}
}

// List returns the matching problems, newest first.
func (s *problemService) List(ctx context.Context, projectId int64, filter *dto.ProblemFilterRequest) ([]*dto.ProblemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	problems, err := uow.ProblemRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.ProblemMatching{Filter: s.filterMapper.ToEntity(filter)},
		specification.OrderBy{Field: "creation_date_time", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	urlFormat, err := s.settingService.GetValue(ctx, projectId, entity.SettingDefectUrl)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProblemResponse, 0, len(problems))
	for _, problem := range problems {
		result = append(result, toProblemResponse(problem, urlFormat))
	}
	return result, nil
}

func (s *problemService) Create(ctx context.Context, projectId int64, req *dto.CreateProblemRequest) (*dto.CreateProblemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.BlamedTeamId != nil {
		team, err := uow.TeamRepository().FindOne(ctx,
			specification.ByID{ID: *req.BlamedTeamId},
			specification.ByProjectID{ProjectID: projectId},
		)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, serverutils.NewBadRequestError("team %d does not exist in this project", *req.BlamedTeamId)
		}
		if !team.AssignableToProblems {
			return nil, serverutils.NewBadRequestError("team %d cannot be assigned to problems", *req.BlamedTeamId)
		}
	}

	problem := &entity.Problem{
		ProjectId:        projectId,
		Name:             strings.TrimSpace(req.Name),
		Comment:          req.Comment,
		Status:           entity.ProblemStatusOpen,
		BlamedTeamId:     req.BlamedTeamId,
		DefectId:         strings.TrimSpace(req.DefectId),
		CreationDateTime: time.Now(),
	}
	if err := uow.ProblemRepository().Create(ctx, problem); err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}

	s.logger.Info("PROBLEM", "Problem created", map[string]interface{}{
		"project_id": projectId,
		"id":         problem.Id,
	})
	return &dto.CreateProblemResponse{
		Id: problem.Id,
	}, nil
}

// DefectURL resolves the defect link, empty when no usable format is configured.
func DefectURL(urlFormat, defectId string) string {
	if defectId == "" || !strings.Contains(urlFormat, entity.DefectIdPlaceholder) {
		return ""
	}
	return strings.ReplaceAll(urlFormat, entity.DefectIdPlaceholder, defectId)
}

func toProblemResponse(problem *entity.Problem, urlFormat string) *dto.ProblemResponse {
	return &dto.ProblemResponse{
		Id:               problem.Id,
		Name:             problem.Name,
		Comment:          problem.Comment,
		Status:           string(problem.Status),
		BlamedTeamId:     problem.BlamedTeamId,
		DefectId:         problem.DefectId,
		DefectUrl:        DefectURL(urlFormat, problem.DefectId),
		ClosingDateTime:  problem.ClosingDateTime,
		CreationDateTime: problem.CreationDateTime,
	}
}
