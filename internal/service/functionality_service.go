// FILE: internal/service/functionality_service.go
package service

import (
	"cmp"
	"context"
	"encoding/json"
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

// OrderGap separates the order of consecutive siblings appended at the end of a folder.
const OrderGap = 1024.0

type IFunctionalityService interface {
	GetAll(ctx context.Context, projectId int64) ([]*dto.FunctionalityResponse, error)
	Show(ctx context.Context, projectId int64, id int64) (*dto.FunctionalityResponse, error)
	Create(ctx context.Context, projectId int64, req *dto.CreateFunctionalityRequest) (*dto.CreateFunctionalityResponse, error)
	Update(ctx context.Context, projectId int64, req *dto.UpdateFunctionalityRequest) (*dto.UpdateFunctionalityResponse, error)
	Delete(ctx context.Context, projectId int64, id int64) error
	Move(ctx context.Context, projectId int64, req *dto.MoveFunctionalitiesRequest) (*dto.MoveFunctionalitiesResponse, error)
	LinkScenario(ctx context.Context, projectId int64, req *dto.LinkScenarioRequest) (*dto.FunctionalityResponse, error)
	UnlinkScenario(ctx context.Context, projectId int64, functionalityId int64, scenarioId int64) (*dto.FunctionalityResponse, error)
	SetFlags(ctx context.Context, projectId int64, req *dto.SetCoverageFlagsRequest) (*dto.FunctionalityResponse, error)
}

type functionalityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   IEventPublisherService
	coverageService  ICoverageService
	logger           logger.ILogger
}

func NewFunctionalityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher IEventPublisherService,
	coverageService ICoverageService,
	log logger.ILogger,
) IFunctionalityService {
	return &functionalityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		coverageService:  coverageService,
		logger:           log,
	}
}

// GetAll lists the whole tree depth first. Siblings follow their order, ties broken by business key.
func (s *functionalityService) GetAll(ctx context.Context, projectId int64) ([]*dto.FunctionalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	functionalities, err := uow.FunctionalityRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.WithScenarios{},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FunctionalityResponse, 0, len(functionalities))
	for _, f := range treeOrder(functionalities) {
		result = append(result, toFunctionalityResponse(f))
	}
	return result, nil
}

func (s *functionalityService) Show(ctx context.Context, projectId int64, id int64) (*dto.FunctionalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	functionality, err := s.findFunctionality(ctx, uow, projectId, id, true)
	if err != nil {
		return nil, err
	}
	return toFunctionalityResponse(functionality), nil
}

func (s *functionalityService) Create(ctx context.Context, projectId int64, req *dto.CreateFunctionalityRequest) (*dto.CreateFunctionalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	functionality := &entity.Functionality{
		ProjectId:    projectId,
		ParentId:     req.ParentId,
		Type:         entity.FunctionalityType(req.Type),
		Name:         strings.TrimSpace(req.Name),
		CountryCodes: normalizeCountryCodes(req.CountryCodes),
		TeamId:       req.TeamId,
		Severity:     entity.FunctionalitySeverity(req.Severity),
		Created:      req.Created,
		Comment:      req.Comment,
	}
	if !functionality.IsFolder() {
		functionality.SetStarted(req.Started)
		functionality.SetNotAutomatable(req.NotAutomatable)
	}

	if err := s.validate(ctx, uow, functionality); err != nil {
		return nil, err
	}

	if req.Order != nil {
		functionality.Order = *req.Order
	} else {
		siblings, err := uow.FunctionalityRepository().FindAll(ctx,
			specification.ByProjectID{ProjectID: projectId},
			specification.ByParentID{ParentID: functionality.ParentId},
		)
		if err != nil {
			return nil, err
		}
		functionality.Order = maxOrder(siblings) + OrderGap
	}

	if err := uow.FunctionalityRepository().Create(ctx, functionality); err != nil {
		return nil, fmt.Errorf("create functionality: %w", err)
	}

	s.coverageService.InvalidateSummary(ctx, projectId)
	s.logger.Info("FUNCTIONALITY", "Functionality created", map[string]interface{}{
		"project_id": projectId,
		"id":         functionality.Id,
		"type":       functionality.Type,
	})

	return &dto.CreateFunctionalityResponse{
		Id: functionality.Id,
	}, nil
}

func (s *functionalityService) Update(ctx context.Context, projectId int64, req *dto.UpdateFunctionalityRequest) (*dto.UpdateFunctionalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	functionality, err := s.findFunctionality(ctx, uow, projectId, req.Id, false)
	if err != nil {
		return nil, err
	}

	functionality.Name = strings.TrimSpace(req.Name)
	functionality.CountryCodes = normalizeCountryCodes(req.CountryCodes)
	functionality.TeamId = req.TeamId
	functionality.Severity = entity.FunctionalitySeverity(req.Severity)
	functionality.Created = req.Created
	functionality.Comment = req.Comment

	flagsChanged := false
	if !functionality.IsFolder() {
		flagsChanged = !equalFlag(functionality.Started(), req.Started) ||
			!equalFlag(functionality.NotAutomatable(), req.NotAutomatable)
		functionality.SetStarted(req.Started)
		functionality.SetNotAutomatable(req.NotAutomatable)
	}

	if err := s.validate(ctx, uow, functionality); err != nil {
		return nil, err
	}

	if err := uow.FunctionalityRepository().Update(ctx, functionality); err != nil {
		return nil, fmt.Errorf("update functionality %d: %w", functionality.Id, err)
	}

	s.coverageService.InvalidateSummary(ctx, projectId)
	if flagsChanged {
		s.eventPublisher.PublishCoverageChanged(ctx, projectId, functionality.Id)
	}

	return &dto.UpdateFunctionalityResponse{
		Id: functionality.Id,
	}, nil
}

// Delete removes the functionality and, for a folder, its whole subtree.
func (s *functionalityService) Delete(ctx context.Context, projectId int64, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findFunctionality(ctx, uow, projectId, id, false); err != nil {
		return err
	}

	all, err := uow.FunctionalityRepository().FindAll(ctx, specification.ByProjectID{ProjectID: projectId})
	if err != nil {
		return err
	}
	ids := subtreeIds(all, id)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FunctionalityRepository().Delete(ctx, ids...); err != nil {
		return fmt.Errorf("delete functionalities %v: %w", ids, err)
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.coverageService.InvalidateSummary(ctx, projectId)
	s.logger.Info("FUNCTIONALITY", "Functionality subtree deleted", map[string]interface{}{
		"project_id": projectId,
		"id":         id,
		"deleted":    len(ids),
	})
	return nil
}

// Move relocates the source functionalities relative to the reference one, in a single transaction.
func (s *functionalityService) Move(ctx context.Context, projectId int64, req *dto.MoveFunctionalitiesRequest) (*dto.MoveFunctionalitiesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.FunctionalityRepository().FindAll(ctx, specification.ByProjectID{ProjectID: projectId})
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]*entity.Functionality, len(all))
	for _, f := range all {
		byId[f.Id] = f
	}

	sources := make([]*entity.Functionality, 0, len(req.SourceIds))
	moving := make(map[int64]bool, len(req.SourceIds))
	for _, id := range req.SourceIds {
		if moving[id] {
			continue
		}
		f, ok := byId[id]
		if !ok {
			return nil, serverutils.NewNotFoundError("functionality %d not found", id)
		}
		moving[id] = true
		sources = append(sources, f)
	}
	sources = outermostSources(sources, byId, moving)

	var reference *entity.Functionality
	if req.ReferenceId != nil {
		ref, ok := byId[*req.ReferenceId]
		if !ok {
			return nil, serverutils.NewNotFoundError("reference functionality %d not found", *req.ReferenceId)
		}
		reference = ref
	}

	plan, err := planMove(all, byId, sources, moving, reference, entity.FunctionalityPosition(req.RelativePosition))
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for i, f := range sources {
		f.ParentId = plan.parentId
		f.Order = plan.orders[i]
		if err := uow.FunctionalityRepository().Update(ctx, f); err != nil {
			return nil, fmt.Errorf("move functionality %d: %w", f.Id, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(sources))
	moved := make([]*dto.FunctionalityResponse, 0, len(sources))
	for _, f := range sources {
		ids = append(ids, f.Id)
		moved = append(moved, toFunctionalityResponse(f))
	}
	s.eventPublisher.PublishFunctionalityMoved(ctx, projectId, ids, plan.parentId)

	return &dto.MoveFunctionalitiesResponse{
		Moved: moved,
	}, nil
}

func (s *functionalityService) LinkScenario(ctx context.Context, projectId int64, req *dto.LinkScenarioRequest) (*dto.FunctionalityResponse, error) {
	return s.changeCoverage(ctx, projectId, req.FunctionalityId, req.ScenarioId, (*entity.Functionality).AddScenario)
}

func (s *functionalityService) UnlinkScenario(ctx context.Context, projectId int64, functionalityId int64, scenarioId int64) (*dto.FunctionalityResponse, error) {
	return s.changeCoverage(ctx, projectId, functionalityId, scenarioId, (*entity.Functionality).RemoveScenario)
}

func (s *functionalityService) changeCoverage(
	ctx context.Context,
	projectId, functionalityId, scenarioId int64,
	mutate func(*entity.Functionality, *entity.Scenario),
) (*dto.FunctionalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	functionality, err := s.findFunctionality(ctx, uow, projectId, functionalityId, true)
	if err != nil {
		return nil, err
	}
	if functionality.IsFolder() {
		return nil, serverutils.NewBadRequestError("folder %d cannot be covered by scenarios", functionalityId)
	}

	scenario, err := uow.ScenarioRepository().FindOne(ctx,
		specification.ByID{ID: scenarioId},
		specification.ByProjectID{ProjectID: projectId},
	)
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, serverutils.NewNotFoundError("scenario %d not found", scenarioId)
	}

	mutate(functionality, scenario)

	if err := uow.FunctionalityRepository().SaveScenarios(ctx, functionality); err != nil {
		return nil, fmt.Errorf("save coverage of functionality %d: %w", functionalityId, err)
	}

	s.coverageChanged(ctx, functionality)
	return toFunctionalityResponse(functionality), nil
}

func (s *functionalityService) SetFlags(ctx context.Context, projectId int64, req *dto.SetCoverageFlagsRequest) (*dto.FunctionalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	functionality, err := s.findFunctionality(ctx, uow, projectId, req.Id, true)
	if err != nil {
		return nil, err
	}
	if functionality.IsFolder() {
		return nil, serverutils.NewBadRequestError("folder %d has no coverage flags", req.Id)
	}

	functionality.SetStarted(req.Started)
	functionality.SetNotAutomatable(req.NotAutomatable)

	if err := uow.FunctionalityRepository().Update(ctx, functionality); err != nil {
		return nil, fmt.Errorf("update flags of functionality %d: %w", req.Id, err)
	}

	s.coverageService.InvalidateSummary(ctx, projectId)
	s.eventPublisher.PublishCoverageChanged(ctx, projectId, functionality.Id)
	return toFunctionalityResponse(functionality), nil
}

// coverageChanged asks the consumer to refresh counters and notifies other instances.
func (s *functionalityService) coverageChanged(ctx context.Context, functionality *entity.Functionality) {
	msg, _ := json.Marshal(dto.PublishCoverageMessage{FunctionalityId: functionality.Id})
	if err := s.publisherService.Publish(ctx, msg); err != nil {
		s.logger.Error("FUNCTIONALITY", "Failed to publish coverage message", map[string]interface{}{
			"functionality_id": functionality.Id,
			"error":            err.Error(),
		})
	}

	s.coverageService.InvalidateSummary(ctx, functionality.ProjectId)
	s.eventPublisher.PublishCoverageChanged(ctx, functionality.ProjectId, functionality.Id)
}

func (s *functionalityService) findFunctionality(ctx context.Context, uow unitofwork.UnitOfWork, projectId, id int64, withScenarios bool) (*entity.Functionality, error) {
	specs := []specification.Specification{
		specification.ByID{ID: id},
		specification.ByProjectID{ProjectID: projectId},
	}
	if withScenarios {
		specs = append(specs, specification.WithScenarios{})
	}

	functionality, err := uow.FunctionalityRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if functionality == nil {
		return nil, serverutils.NewNotFoundError("functionality %d not found", id)
	}
	return functionality, nil
}

func (s *functionalityService) validate(ctx context.Context, uow unitofwork.UnitOfWork, f *entity.Functionality) error {
	if f.Name == "" {
		return serverutils.NewBadRequestError("name is required")
	}

	switch f.Type {
	case entity.FunctionalityTypeFolder:
		if f.Severity != "" {
			return serverutils.NewBadRequestError("a folder cannot have a severity")
		}
	case entity.FunctionalityTypeFunctionality:
		if f.Severity == "" {
			return serverutils.NewBadRequestError("severity is required for a functionality")
		}
	default:
		return serverutils.NewBadRequestError("unknown functionality type %q", f.Type)
	}

	if f.ParentId != nil {
		parent, err := uow.FunctionalityRepository().FindOne(ctx,
			specification.ByID{ID: *f.ParentId},
			specification.ByProjectID{ProjectID: f.ProjectId},
		)
		if err != nil {
			return err
		}
		if parent == nil {
			return serverutils.NewNotFoundError("parent %d not found", *f.ParentId)
		}
		if !parent.IsFolder() {
			return serverutils.NewBadRequestError("parent %d is not a folder", *f.ParentId)
		}
	}

	if f.TeamId != nil {
		team, err := uow.TeamRepository().FindOne(ctx,
			specification.ByID{ID: *f.TeamId},
			specification.ByProjectID{ProjectID: f.ProjectId},
		)
		if err != nil {
			return err
		}
		if team == nil {
			return serverutils.NewBadRequestError("team %d does not exist in this project", *f.TeamId)
		}
		if !team.AssignableToFunctionalities {
			return serverutils.NewBadRequestError("team %d cannot be assigned to functionalities", *f.TeamId)
		}
	}

	sibling, err := uow.FunctionalityRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: f.ProjectId},
		specification.ByParentID{ParentID: f.ParentId},
		specification.ByName{Name: f.Name},
	)
	if err != nil {
		return err
	}
	if sibling != nil && sibling.Id != f.Id && sibling.Equal(f) {
		return serverutils.NewConflictError("a functionality or folder named %q already exists here", f.Name)
	}
	return nil
}

type movePlan struct {
	parentId *int64
	orders   []float64
}

func planMove(
	all []*entity.Functionality,
	byId map[int64]*entity.Functionality,
	sources []*entity.Functionality,
	moving map[int64]bool,
	reference *entity.Functionality,
	position entity.FunctionalityPosition,
) (*movePlan, error) {
	if reference != nil && moving[reference.Id] {
		return nil, serverutils.NewBadRequestError("cannot move functionality %d relative to itself", reference.Id)
	}

	var parentId *int64
	switch position {
	case entity.FunctionalityPositionLastChild:
		if reference != nil {
			if !reference.IsFolder() {
				return nil, serverutils.NewBadRequestError("functionality %d is not a folder", reference.Id)
			}
			id := reference.Id
			parentId = &id
		}
	case entity.FunctionalityPositionAbove, entity.FunctionalityPositionBelow:
		if reference == nil {
			return nil, serverutils.NewBadRequestError("a reference is required to move %s", position)
		}
		parentId = reference.ParentId
	default:
		return nil, serverutils.NewBadRequestError("unknown relative position %q", position)
	}

	// The destination cannot be one of the moved nodes or below one of them.
	for ancestor := parentId; ancestor != nil; {
		if moving[*ancestor] {
			return nil, serverutils.NewBadRequestError("cannot move functionality %d into itself or one of its descendants", *ancestor)
		}
		next, ok := byId[*ancestor]
		if !ok {
			break
		}
		ancestor = next.ParentId
	}

	siblings := make([]*entity.Functionality, 0)
	for _, f := range all {
		if !moving[f.Id] && sameParent(f.ParentId, parentId) {
			siblings = append(siblings, f)
		}
	}
	slices.SortFunc(siblings, compareSiblings)

	names := make(map[string]bool, len(siblings)+len(sources))
	for _, f := range siblings {
		names[f.Name] = true
	}
	for _, f := range sources {
		if names[f.Name] {
			return nil, serverutils.NewConflictError("a functionality or folder named %q already exists in the destination", f.Name)
		}
		names[f.Name] = true
	}

	var lower, upper float64
	switch position {
	case entity.FunctionalityPositionLastChild:
		lower = maxOrder(siblings)
		upper = lower + OrderGap*float64(len(sources)+1)
	case entity.FunctionalityPositionAbove:
		i := slices.Index(siblings, reference)
		upper = reference.Order
		lower = upper - OrderGap
		if i > 0 {
			lower = siblings[i-1].Order
		}
	case entity.FunctionalityPositionBelow:
		i := slices.Index(siblings, reference)
		lower = reference.Order
		upper = lower + OrderGap
		if i >= 0 && i+1 < len(siblings) {
			upper = siblings[i+1].Order
		}
	}

	step := (upper - lower) / float64(len(sources)+1)
	orders := make([]float64, len(sources))
	for i := range sources {
		orders[i] = lower + step*float64(i+1)
	}

	return &movePlan{parentId: parentId, orders: orders}, nil
}

// outermostSources drops the sources having a moved ancestor: they travel with it.
func outermostSources(sources []*entity.Functionality, byId map[int64]*entity.Functionality, moving map[int64]bool) []*entity.Functionality {
	return slices.DeleteFunc(sources, func(f *entity.Functionality) bool {
		for ancestor := f.ParentId; ancestor != nil; {
			if moving[*ancestor] {
				return true
			}
			parent, ok := byId[*ancestor]
			if !ok {
				return false
			}
			ancestor = parent.ParentId
		}
		return false
	})
}

// treeOrder flattens the forest depth first; nodes whose parent is missing come last.
func treeOrder(functionalities []*entity.Functionality) []*entity.Functionality {
	present := make(map[int64]bool, len(functionalities))
	for _, f := range functionalities {
		present[f.Id] = true
	}

	children := make(map[int64][]*entity.Functionality)
	roots := make([]*entity.Functionality, 0)
	orphans := make([]*entity.Functionality, 0)
	for _, f := range functionalities {
		switch {
		case f.ParentId == nil:
			roots = append(roots, f)
		case present[*f.ParentId]:
			children[*f.ParentId] = append(children[*f.ParentId], f)
		default:
			orphans = append(orphans, f)
		}
	}

	result := make([]*entity.Functionality, 0, len(functionalities))
	var walk func(level []*entity.Functionality)
	walk = func(level []*entity.Functionality) {
		slices.SortFunc(level, compareSiblings)
		for _, f := range level {
			result = append(result, f)
			walk(children[f.Id])
		}
	}
	walk(roots)
	walk(orphans)
	return result
}

func compareSiblings(a, b *entity.Functionality) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return entity.CompareFunctionalities(a, b)
}

func subtreeIds(all []*entity.Functionality, rootId int64) []int64 {
	children := make(map[int64][]int64)
	for _, f := range all {
		if f.ParentId != nil {
			children[*f.ParentId] = append(children[*f.ParentId], f.Id)
		}
	}

	ids := []int64{rootId}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}
	return ids
}

func maxOrder(functionalities []*entity.Functionality) float64 {
	highest := 0.0
	for _, f := range functionalities {
		highest = max(highest, f.Order)
	}
	return highest
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalFlag(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func normalizeCountryCodes(codes string) string {
	countries := entity.SplitCountryCodes(strings.ToLower(codes))
	slices.Sort(countries)
	return strings.Join(slices.Compact(countries), entity.CountryCodesSeparator)
}

func toFunctionalityResponse(f *entity.Functionality) *dto.FunctionalityResponse {
	return &dto.FunctionalityResponse{
		Id:                      f.Id,
		ProjectId:               f.ProjectId,
		ParentId:                f.ParentId,
		Order:                   f.Order,
		Type:                    string(f.Type),
		Name:                    f.Name,
		CountryCodes:            f.CountryCodes,
		TeamId:                  f.TeamId,
		Severity:                string(f.Severity),
		Created:                 f.Created,
		Started:                 f.Started(),
		NotAutomatable:          f.NotAutomatable(),
		CoverageLevel:           string(f.CoverageLevel()),
		CoveredScenarios:        f.CoveredScenarios,
		CoveredCountryScenarios: f.CoveredCountryScenarios,
		IgnoredScenarios:        f.IgnoredScenarios,
		IgnoredCountryScenarios: f.IgnoredCountryScenarios,
		Comment:                 f.Comment,
		CreationDateTime:        f.CreationDateTime,
		UpdateDateTime:          f.UpdateDateTime,
	}
}
