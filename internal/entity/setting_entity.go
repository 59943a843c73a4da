// FILE: internal/entity/setting_entity.go
package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ProjectSetting is a stored value of a catalog setting for one project.
type ProjectSetting struct {
	Id        int64
	ProjectId int64
	Code      string
	Value     string
}

type SettingType string

const (
	SettingTypeString   SettingType = "STRING"
	SettingTypePassword SettingType = "PASSWORD"
	SettingTypeBoolean  SettingType = "BOOLEAN"
	SettingTypeInt      SettingType = "INT"
	SettingTypeSelect   SettingType = "SELECT"
)

// Setting codes known by the catalog.
const (
	SettingExecutionBasePath      = "execution.indexer.file.executionBasePath"
	SettingCycleDefinitionPath    = "execution.indexer.file.cycleDefinitionPath"
	SettingBuildInformationPath   = "execution.indexer.file.buildInformationPath"
	SettingDeleteAfterIndexing    = "execution.indexer.file.deleteAfterIndexingAsDone"
	SettingEmailFrom              = "email.from"
	SettingEmailToCrashed         = "email.to.execution.crashed"
	SettingEmailToRan             = "email.to.execution.ran"
	SettingEmailToEligibleOk      = "email.to.execution.eligible.passed"
	SettingEmailToEligibleWarning = "email.to.execution.eligible.warning"
	SettingEmailToNotEligible     = "email.to.execution.not-eligible"
	SettingDefectIndexer          = "defect.indexer"
	SettingDefectUrl              = "defect.url"
)

// DefectIdPlaceholder is replaced by the defect id in the defect URL format.
const DefectIdPlaceholder = "{{id}}"

type SettingValidationKind string

const (
	ValidationNone                SettingValidationKind = ""
	ValidationRequiredPlaceholder SettingValidationKind = "REQUIRED_PLACEHOLDER"
	ValidationPattern             SettingValidationKind = "PATTERN"
	ValidationPositiveInteger     SettingValidationKind = "POSITIVE_INTEGER"
)

// SettingValidation is a value check beyond the type of the setting.
// Argument is the placeholder or the pattern, depending on Kind.
type SettingValidation struct {
	Kind     SettingValidationKind
	Argument string
	Message  string
}

func RequiredPlaceholder(placeholder string) SettingValidation {
	return SettingValidation{
		Kind:     ValidationRequiredPlaceholder,
		Argument: placeholder,
		Message:  fmt.Sprintf("The %q placeholder is required.", placeholder),
	}
}

func MatchingPattern(pattern, message string) SettingValidation {
	return SettingValidation{Kind: ValidationPattern, Argument: pattern, Message: message}
}

func PositiveInteger() SettingValidation {
	return SettingValidation{Kind: ValidationPositiveInteger, Message: "The value must be a positive integer."}
}

// Check returns the validation message when value is rejected, empty otherwise.
// Empty values are left to the required check.
func (v SettingValidation) Check(value string) string {
	if value == "" {
		return ""
	}
	switch v.Kind {
	case ValidationRequiredPlaceholder:
		if !strings.Contains(value, v.Argument) {
			return v.Message
		}
	case ValidationPattern:
		if ok, err := regexp.MatchString(v.Argument, value); err != nil || !ok {
			return v.Message
		}
	case ValidationPositiveInteger:
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return v.Message
		}
	}
	return ""
}

type SettingApplyChange string

const (
	ApplyChangeNone           SettingApplyChange = ""
	ApplyChangeRefreshDefects SettingApplyChange = "REFRESH_DEFECTS"
)

type SettingOption struct {
	Value string
	Label string
}

// SettingDefinition describes one entry of the settings catalog.
type SettingDefinition struct {
	Code         string
	Name         string
	Type         SettingType
	Required     bool
	DefaultValue string
	Help         string
	Options      []SettingOption
	Validation   SettingValidation
	ApplyChange  SettingApplyChange
}

// CheckValue validates value against the type, the required flag and the validation of the definition.
func (d *SettingDefinition) CheckValue(value string) string {
	if value == "" {
		if d.Required {
			return "The value is required."
		}
		return ""
	}
	switch d.Type {
	case SettingTypeBoolean:
		if value != "true" && value != "false" {
			return "The value must be true or false."
		}
	case SettingTypeInt:
		if _, err := strconv.Atoi(value); err != nil {
			return "The value must be an integer."
		}
	case SettingTypeSelect:
		found := false
		for _, option := range d.Options {
			if option.Value == value {
				found = true
				break
			}
		}
		if !found {
			return "The value is not one of the available options."
		}
	}
	return d.Validation.Check(value)
}

type SettingGroup struct {
	Name     string
	Settings []*SettingDefinition
}

// DefectAdapter is the metadata of a defect tracker integration.
type DefectAdapter struct {
	Code     string
	Name     string
	Settings []*SettingDefinition
}
