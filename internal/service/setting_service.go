// FILE: internal/service/setting_service.go
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/repository/memory"
	"ara-be/internal/repository/unitofwork"
)

// Variables resolved by the execution indexer in the execution base path.
const (
	ProjectVariable           = "{{project}}"
	BranchVariable            = "{{branch}}"
	CycleVariable             = "{{cycle}}"
	DefaultExecutionVariables = ProjectVariable + "/" + BranchVariable + "/" + CycleVariable
)

const (
	defaultExecutionsDirectory = "/opt/ara/data/executions/"
	writingTestFile            = "writing-test"
)

type ISettingService interface {
	// Definitions returns the catalog with the current values of the project.
	Definitions(ctx context.Context, projectId int64) ([]*dto.SettingGroupResponse, error)
	// GetValue returns the stored value, or the default of the setting when none is stored.
	GetValue(ctx context.Context, projectId int64, code string) (string, error)
	Update(ctx context.Context, projectId int64, req *dto.UpdateSettingRequest) error
}

type settingService struct {
	uowFactory    unitofwork.RepositoryFactory
	cache         *memory.ProjectSettingCache
	defectService IDefectService
	logger        logger.ILogger

	executionsOnce   sync.Once
	executionsFolder string
}

// NewSettingService uses executionsFolder as the default executions folder when not empty,
// otherwise it is probed on first use.
func NewSettingService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.ProjectSettingCache,
	defectService IDefectService,
	executionsFolder string,
	log logger.ILogger,
) ISettingService {
	return &settingService{
		uowFactory:       uowFactory,
		cache:            cache,
		defectService:    defectService,
		executionsFolder: executionsFolder,
		logger:           log,
	}
}

func (s *settingService) Definitions(ctx context.Context, projectId int64) ([]*dto.SettingGroupResponse, error) {
	values, err := s.values(ctx, projectId)
	if err != nil {
		return nil, err
	}

	groups := s.groups(values)
	result := make([]*dto.SettingGroupResponse, 0, len(groups))
	for _, group := range groups {
		response := &dto.SettingGroupResponse{
			Name:     group.Name,
			Settings: make([]*dto.SettingResponse, 0, len(group.Settings)),
		}
		for _, definition := range group.Settings {
			response.Settings = append(response.Settings, toSettingResponse(definition, values))
		}
		result = append(result, response)
	}
	return result, nil
}

func (s *settingService) GetValue(ctx context.Context, projectId int64, code string) (string, error) {
	values, err := s.values(ctx, projectId)
	if err != nil {
		return "", err
	}
	if value, ok := values[code]; ok {
		return value, nil
	}
	if definition := findDefinition(s.groups(values), code); definition != nil {
		return definition.DefaultValue, nil
	}
	return "", nil
}

func (s *settingService) Update(ctx context.Context, projectId int64, req *dto.UpdateSettingRequest) error {
	values, err := s.values(ctx, projectId)
	if err != nil {
		return err
	}

	definition := findDefinition(s.groups(values), req.Code)
	if definition == nil {
		return serverutils.NewNotFoundError("setting %q not found", req.Code)
	}
	if message := definition.CheckValue(req.Value); message != "" {
		return serverutils.NewBadRequestError("%s: %s", definition.Name, message)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProjectSettingRepository().Upsert(ctx, &entity.ProjectSetting{
		ProjectId: projectId,
		Code:      req.Code,
		Value:     req.Value,
	}); err != nil {
		return fmt.Errorf("save setting %s: %w", req.Code, err)
	}
	s.cache.Delete(projectId)

	s.logger.Info("SETTING", "Setting updated", map[string]interface{}{
		"project_id": projectId,
		"code":       req.Code,
	})

	return s.applyChange(ctx, projectId, definition, req.Value)
}

func (s *settingService) applyChange(ctx context.Context, projectId int64, definition *entity.SettingDefinition, value string) error {
	switch definition.ApplyChange {
	case entity.ApplyChangeRefreshDefects:
		return s.defectService.RefreshDefectExistences(ctx, projectId, value)
	}
	return nil
}

func (s *settingService) values(ctx context.Context, projectId int64) (map[string]string, error) {
	if values, found := s.cache.Get(projectId); found {
		return values, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.ProjectSettingRepository().FindAllByProjectId(ctx, projectId)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Code] = setting.Value
	}
	s.cache.Save(projectId, values)
	return values, nil
}

func (s *settingService) groups(values map[string]string) []*entity.SettingGroup {
	return []*entity.SettingGroup{
		s.executionIndexingGroup(),
		emailReportsGroup(),
		s.defectsGroup(values),
	}
}

func (s *settingService) executionIndexingGroup() *entity.SettingGroup {
	const (
		cycleDefinitionPath  = "/cycleDefinition.json"
		buildInformationPath = "buildInformation.json"
	)
	executionBasePath := s.defaultExecutionsFolder() + DefaultExecutionVariables

	return &entity.SettingGroup{
		Name: "Execution Indexing",
		Settings: []*entity.SettingDefinition{
			{
				Code:         entity.SettingExecutionBasePath,
				Name:         "Execution base path",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: executionBasePath,
				Help: "The root path of all jobs for a given branch and cycle. " +
					"Optional variables you can use in this configuration: " +
					ProjectVariable + " is the code of the project for the given execution, " +
					BranchVariable + " is the name of the branch for the given execution, " +
					CycleVariable + " is the name of the given execution. " +
					"Eg. \"" + executionBasePath + "\"",
			},
			{
				Code:         entity.SettingCycleDefinitionPath,
				Name:         "Cycle definition path",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: cycleDefinitionPath,
				Help: "Cycle definition are extracted from this path. " +
					"Eg. \"" + cycleDefinitionPath + "\", appended to the run's job folder.",
			},
			{
				Code:         entity.SettingBuildInformationPath,
				Name:         "Build information path",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: buildInformationPath,
				Help: "Build information are extracted from this path. " +
					"Eg. \"" + buildInformationPath + "\", appended to EITHER the execution's jobUrl OR to the run's jobUrl. " +
					"It is used to complete builds to index when the hierarchy of all deployment and NRT jobs is generated.",
			},
			{
				Code:         entity.SettingDeleteAfterIndexing,
				Name:         "Delete after indexing as done",
				Type:         entity.SettingTypeBoolean,
				DefaultValue: "true",
				Help: "After an execution is not running anymore and is fully indexed in ARA, " +
					"remove the folder on the file system if checked. " +
					"The deletion is active by default: you can disable it temporarily to debug what ARA receives, " +
					"but be careful not to keep the option disabled for too long: disk could quickly become full " +
					"with big Postman and/or Cucumber report files, " +
					"and you will have to manually delete the directories yourself or use a cron job.",
			},
		},
	}
}

func emailReportsGroup() *entity.SettingGroup {
	const (
		receivers = "The receiver email address (or addresses, separated by commas (\",\")) for an execution "
		noEmail   = "No email will be sent if the setting is not provided."
	)
	recipient := func(code, name, when, example string) *entity.SettingDefinition {
		return &entity.SettingDefinition{
			Code: code,
			Name: name,
			Type: entity.SettingTypeString,
			Help: receivers + when + " Eg. \"" + example + "\". " + noEmail,
		}
	}

	return &entity.SettingGroup{
		Name: "Email Reports",
		Settings: []*entity.SettingDefinition{
			{
				Code:     entity.SettingEmailFrom,
				Name:     "From",
				Type:     entity.SettingTypeString,
				Required: true,
				Help: "The email address (with an optional name) from which to send reports once a new execution is finished. " +
					"Eg. \"ARA for Project X <project-x@technical.company.com>\" or just \"project-x@technical.company.com\".",
				Validation: entity.MatchingPattern(`@`, "The value must contain an email address."),
			},
			recipient(entity.SettingEmailToCrashed, "To, on crash",
				"without cycleDefinition.json, so we do not know what tests are expected to run for the given cycle.",
				"Technical Leader <technical-leader@company.com>"),
			recipient(entity.SettingEmailToRan, "To, on ran",
				"that ran but is not set to block the workflow on failure, only run test for information.",
				"Project Leader <project-leader@company.com>"),
			recipient(entity.SettingEmailToEligibleOk, "To, on eligible and passed",
				"that is set to block workflow on failure, and with a quality-status of PASSED.",
				"Project Team <project@lists.company.com>"),
			recipient(entity.SettingEmailToEligibleWarning, "To, on eligible but warning",
				"that is set to block workflow on failure, and with a quality-status of WARNING.",
				"Project Team <project@lists.company.com>"),
			recipient(entity.SettingEmailToNotEligible, "To, on not eligible",
				"that is set to block workflow on failure, and with a quality-status of INCOMPLETE or FAILED.",
				"Project Team <project@lists.company.com>, Project Leader <leader@company.com>"),
		},
	}
}

// defectsGroup only lists the URL format and the adapter settings once a defect system is chosen.
func (s *settingService) defectsGroup(values map[string]string) *entity.SettingGroup {
	options := []entity.SettingOption{{Value: "", Label: ""}}
	for _, adapter := range s.defectService.Adapters() {
		options = append(options, entity.SettingOption{Value: adapter.Code, Label: adapter.Name})
	}

	group := &entity.SettingGroup{
		Name: "Defects",
		Settings: []*entity.SettingDefinition{
			{
				Code:        entity.SettingDefectIndexer,
				Name:        "System",
				Type:        entity.SettingTypeSelect,
				Options:     options,
				ApplyChange: entity.ApplyChangeRefreshDefects,
				Help: "Define the system used to store and manage defects, " +
					"in order to update problem statuses with the defect statuses from this provider. " +
					"If none is provided, problem's defects will not be linked: " +
					"users will have to open/close them manually.",
			},
		},
	}

	adapter := s.defectService.Adapter(values[entity.SettingDefectIndexer])
	if adapter == nil {
		return group
	}

	group.Settings = append(group.Settings, &entity.SettingDefinition{
		Code: entity.SettingDefectUrl,
		Name: "URL format",
		Type: entity.SettingTypeString,
		Help: "Problems can be assigned a defect ID: " +
			"the URL format is used to construct the link for users to view properties of the defect. " +
			"The \"{{id}}\" placeholder is used to place the defect ID in the constructed URL. " +
			"Eg. for a defect ID \"PROJECT-42\" and an URL format " +
			"\"http://bugtracker.company.com/issues/{{id}}\", the ID will link to " +
			"\"http://bugtracker.company.com/issues/PROJECT-42\". " +
			"If the URL format is not defined, defect IDs will not be links.",
		Validation: entity.RequiredPlaceholder(entity.DefectIdPlaceholder),
	})
	group.Settings = append(group.Settings, adapter.Settings...)
	return group
}

// defaultExecutionsFolder probes the default directory once, falling back to the home directory.
func (s *settingService) defaultExecutionsFolder() string {
	s.executionsOnce.Do(func() {
		if s.executionsFolder != "" {
			return
		}
		err := checkWritable(defaultExecutionsDirectory)
		if err == nil {
			s.executionsFolder = defaultExecutionsDirectory
			return
		}
		home, _ := os.UserHomeDir()
		s.executionsFolder = filepath.Join(home, "ara-data", "executions") + string(filepath.Separator)
		s.logger.Warn("SETTING", "Cannot create or write to the default executions directory", map[string]interface{}{
			"default":  defaultExecutionsDirectory,
			"fallback": s.executionsFolder,
			"error":    err.Error(),
		})
	})
	return s.executionsFolder
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	file := filepath.Join(dir, writingTestFile)
	// Left over by a process killed before cleaning up.
	_ = os.Remove(file)
	if err := os.WriteFile(file, []byte{}, 0o644); err != nil {
		return err
	}
	return os.Remove(file)
}

func findDefinition(groups []*entity.SettingGroup, code string) *entity.SettingDefinition {
	for _, group := range groups {
		for _, definition := range group.Settings {
			if definition.Code == code {
				return definition
			}
		}
	}
	return nil
}

func toSettingResponse(definition *entity.SettingDefinition, values map[string]string) *dto.SettingResponse {
	value, ok := values[definition.Code]
	if !ok {
		value = definition.DefaultValue
	}
	if definition.Type == entity.SettingTypePassword {
		value = ""
	}

	response := &dto.SettingResponse{
		Code:         definition.Code,
		Name:         definition.Name,
		Type:         string(definition.Type),
		Required:     definition.Required,
		DefaultValue: definition.DefaultValue,
		Help:         definition.Help,
		Value:        value,
	}
	for _, option := range definition.Options {
		response.Options = append(response.Options, &dto.SettingOptionResponse{Value: option.Value, Label: option.Label})
	}
	return response
}
