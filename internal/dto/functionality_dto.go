// FILE: internal/dto/functionality_dto.go
package dto

import "time"

type CreateFunctionalityRequest struct {
	ParentId       *int64   `json:"parent_id"`
	Order          *float64 `json:"order"`
	Type           string   `json:"type" validate:"required,oneof=FOLDER FUNCTIONALITY"`
	Name           string   `json:"name" validate:"required,max=512"`
	CountryCodes   string   `json:"country_codes" validate:"max=128"`
	TeamId         *int64   `json:"team_id"`
	Severity       string   `json:"severity" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Created        string   `json:"created" validate:"max=10"`
	Started        *bool    `json:"started"`
	NotAutomatable *bool    `json:"not_automatable"`
	Comment        string   `json:"comment"`
}

type CreateFunctionalityResponse struct {
	Id int64 `json:"id"`
}

type UpdateFunctionalityRequest struct {
	Id             int64
	Name           string `json:"name" validate:"required,max=512"`
	CountryCodes   string `json:"country_codes" validate:"max=128"`
	TeamId         *int64 `json:"team_id"`
	Severity       string `json:"severity" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Created        string `json:"created" validate:"max=10"`
	Started        *bool  `json:"started"`
	NotAutomatable *bool  `json:"not_automatable"`
	Comment        string `json:"comment"`
}

type UpdateFunctionalityResponse struct {
	Id int64 `json:"id"`
}

type FunctionalityResponse struct {
	Id                      int64      `json:"id"`
	ProjectId               int64      `json:"project_id"`
	ParentId                *int64     `json:"parent_id"`
	Order                   float64    `json:"order"`
	Type                    string     `json:"type"`
	Name                    string     `json:"name"`
	CountryCodes            string     `json:"country_codes"`
	TeamId                  *int64     `json:"team_id"`
	Severity                string     `json:"severity,omitempty"`
	Created                 string     `json:"created,omitempty"`
	Started                 *bool      `json:"started"`
	NotAutomatable          *bool      `json:"not_automatable"`
	CoverageLevel           string     `json:"coverage_level"`
	CoveredScenarios        int        `json:"covered_scenarios"`
	CoveredCountryScenarios string     `json:"covered_country_scenarios,omitempty"`
	IgnoredScenarios        int        `json:"ignored_scenarios"`
	IgnoredCountryScenarios string     `json:"ignored_country_scenarios,omitempty"`
	Comment                 string     `json:"comment,omitempty"`
	CreationDateTime        time.Time  `json:"creation_date_time"`
	UpdateDateTime          *time.Time `json:"update_date_time"`
}

// MoveFunctionalitiesRequest relocates SourceIds relative to ReferenceId.
// A nil ReferenceId designates the virtual root folder.
type MoveFunctionalitiesRequest struct {
	SourceIds        []int64 `json:"source_ids" validate:"required,min=1"`
	ReferenceId      *int64  `json:"reference_id"`
	RelativePosition string  `json:"relative_position" validate:"required,oneof=ABOVE BELOW LAST_CHILD"`
}

type MoveFunctionalitiesResponse struct {
	Moved []*FunctionalityResponse `json:"moved"`
}

type SetCoverageFlagsRequest struct {
	Id             int64
	Started        *bool `json:"started"`
	NotAutomatable *bool `json:"not_automatable"`
}

type LinkScenarioRequest struct {
	FunctionalityId int64
	ScenarioId      int64 `json:"scenario_id" validate:"required"`
}

// PublishCoverageMessage asks the consumer to refresh the scenario counters of a functionality.
type PublishCoverageMessage struct {
	FunctionalityId int64 `json:"functionality_id"`
}
