// FILE: internal/service/defect_service.go
package service

import (
	"context"

	"ara-be/internal/entity"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/pkg/serverutils"
)

const (
	DefectAdapterRtc    = "rtc"
	DefectAdapterGithub = "github"
)

// RTC and GitHub adapter setting codes.
const (
	SettingDefectRtcRootUrl              = "defect.rtc.rootUrl"
	SettingDefectRtcPreAuthenticatePath  = "defect.rtc.preAuthenticatePath"
	SettingDefectRtcAuthenticatePath     = "defect.rtc.authenticatePath"
	SettingDefectRtcWorkItemResourcePath = "defect.rtc.workItemResourcePath"
	SettingDefectRtcUsername             = "defect.rtc.username"
	SettingDefectRtcPassword             = "defect.rtc.password"
	SettingDefectRtcBatchSize            = "defect.rtc.batchSize"
	SettingDefectRtcWorkItemTypes        = "defect.rtc.workItemTypes"
	SettingDefectRtcClosedStates         = "defect.rtc.closedStates"
	SettingDefectRtcOpenStates           = "defect.rtc.openStates"
	SettingDefectGithubOwner             = "defect.github.owner"
	SettingDefectGithubRepoName          = "defect.github.repositoryName"
	SettingDefectGithubToken             = "defect.github.token"
)

const caseInsensitiveList = "The list is case-insensitive. "

type IDefectService interface {
	Adapters() []*entity.DefectAdapter
	// Adapter returns nil for an unknown code.
	Adapter(code string) *entity.DefectAdapter
	// RefreshDefectExistences asks the defect indexer to re-check every defect id of the project.
	RefreshDefectExistences(ctx context.Context, projectId int64, indexer string) error
}

type defectService struct {
	adapters       []*entity.DefectAdapter
	eventPublisher IEventPublisherService
	logger         logger.ILogger
}

func NewDefectService(eventPublisher IEventPublisherService, log logger.ILogger) IDefectService {
	return &defectService{
		adapters:       []*entity.DefectAdapter{rtcAdapter(), githubAdapter()},
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *defectService) Adapters() []*entity.DefectAdapter {
	return s.adapters
}

func (s *defectService) Adapter(code string) *entity.DefectAdapter {
	for _, adapter := range s.adapters {
		if adapter.Code == code {
			return adapter
		}
	}
	return nil
}

func (s *defectService) RefreshDefectExistences(ctx context.Context, projectId int64, indexer string) error {
	if indexer != "" && s.Adapter(indexer) == nil {
		return serverutils.NewBadRequestError("unknown defect system %q", indexer)
	}

	s.logger.Info("DEFECT", "Refreshing defect existences", map[string]interface{}{
		"project_id": projectId,
		"indexer":    indexer,
	})
	s.eventPublisher.PublishDefectRefreshRequested(ctx, projectId, indexer)
	return nil
}

func rtcAdapter() *entity.DefectAdapter {
	const (
		preAuthenticatePath  = "/authenticated/identity"
		authenticatePath     = "/authenticated/j_security_check"
		workItemResourcePath = "/rpt/repository/workitem/"
		workItemTypes        = "Defect,Issue,Task"
		closedStates         = "Closed,Done,Invalid,Resolved,Verified"
		openStates           = "Blocked,New,In progress,Deploy ready,Reopened,Test ready,Triaged,Waiting for info,Waiting for review"
		stateHelp            = "States are separated with commas (\",\"). "
		stateConflictHelp    = "If a state is configured to be considered both CLOSED and OPEN, CLOSED wins, with a warning in logs. " +
			"If a state is not configured, it will be considered OPEN, with a warning in logs."
	)

	return &entity.DefectAdapter{
		Code: DefectAdapterRtc,
		Name: "RTC",
		Settings: []*entity.SettingDefinition{
			{
				Code:     SettingDefectRtcRootUrl,
				Name:     "Root URL",
				Type:     entity.SettingTypeString,
				Required: true,
				Help: "Root URL of RTC to query work-item statuses: includes protocol, domain and port, but NO path. " +
					"Eg. \"https://rtc.my-company.com/ccm\".",
				Validation: entity.MatchingPattern(`^https?://`, "The URL must start with http:// or https://."),
			},
			{
				Code:         SettingDefectRtcPreAuthenticatePath,
				Name:         "Pre-authenticate path",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: preAuthenticatePath,
				Help: "Path (to be appended to the root URL) of the page to query (GET) before and after authentication. " +
					"Eg. \"" + preAuthenticatePath + "\"",
			},
			{
				Code:         SettingDefectRtcAuthenticatePath,
				Name:         "Authenticate path",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: authenticatePath,
				Help: "Path (to be appended to the root URL) of the Ajax URL to query (POST) to send authentication credentials. " +
					"Eg. \"" + authenticatePath + "\"",
			},
			{
				Code:         SettingDefectRtcWorkItemResourcePath,
				Name:         "Work-item resource path",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: workItemResourcePath,
				Help: "Path (to be appended to the root path) of the URL to query all work-items (filters query will be appended). " +
					"Eg. \"" + workItemResourcePath + "\"",
			},
			{
				Code:     SettingDefectRtcUsername,
				Name:     "Username",
				Type:     entity.SettingTypeString,
				Required: true,
				Help:     "Username to authenticate to RTC (only read actions will be done).",
			},
			{
				Code:     SettingDefectRtcPassword,
				Name:     "Password",
				Type:     entity.SettingTypePassword,
				Required: true,
				Help:     "Password to authenticate to RTC (only read actions will be done).",
			},
			{
				Code:         SettingDefectRtcBatchSize,
				Name:         "Batch size",
				Type:         entity.SettingTypeInt,
				Required:     true,
				DefaultValue: "100",
				Help: "Number of batched work-items to request at once per HTTP request to RTC. " +
					"Will be used to form a filter passed in URL (resulting URL should not be longer than 2000 " +
					"characters for interoperability) and as page size when requesting recently modified items.",
				Validation: entity.PositiveInteger(),
			},
			{
				Code:         SettingDefectRtcWorkItemTypes,
				Name:         "Work-item types",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: workItemTypes,
				Help: "All RTC work-item types to support (and watch) for problem defect assignation. " +
					caseInsensitiveList + "Eg. \"" + workItemTypes + "\"",
			},
			{
				Code:         SettingDefectRtcClosedStates,
				Name:         "Closed states",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: closedStates,
				Help: "List of case-insensitive RTC states for RTC defects, tasks and issues whose identifiers " +
					"will be used in ARA problems, and whose problems should be considered as CLOSED. " +
					stateHelp + "Eg. \"" + closedStates + "\". " + caseInsensitiveList + stateConflictHelp,
			},
			{
				Code:         SettingDefectRtcOpenStates,
				Name:         "Open states",
				Type:         entity.SettingTypeString,
				Required:     true,
				DefaultValue: openStates,
				Help: "List of case-insensitive RTC states for RTC defects, tasks and issues whose identifiers " +
					"will be used in ARA problems, and whose problems should be considered as OPEN. " +
					stateHelp + "Eg. \"" + openStates + "\". " + caseInsensitiveList + stateConflictHelp,
			},
		},
	}
}

func githubAdapter() *entity.DefectAdapter {
	return &entity.DefectAdapter{
		Code: DefectAdapterGithub,
		Name: "GitHub",
		Settings: []*entity.SettingDefinition{
			{
				Code:     SettingDefectGithubOwner,
				Name:     "Github Repository's owner",
				Type:     entity.SettingTypeString,
				Required: true,
				Help: "The owner of this project's Github repository. " +
					"Usually the user or organization which holds the repository.",
			},
			{
				Code:     SettingDefectGithubRepoName,
				Name:     "Github Repository's name",
				Type:     entity.SettingTypeString,
				Required: true,
				Help:     "The name of this project's Github repository.",
			},
			{
				Code: SettingDefectGithubToken,
				Name: "Authorization token",
				Type: entity.SettingTypePassword,
				Help: "If your project's repository is a private one, you need to put here the personal token of " +
					"a user authorized to read the repository. " +
					"To create a personal access token, on Github, go to the Settings page of your account, then " +
					"click on the 'Developer settings' menu and click on the 'Personal Access Token' menu item.",
			},
		},
	}
}
