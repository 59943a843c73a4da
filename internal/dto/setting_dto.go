// FILE: internal/dto/setting_dto.go
package dto

type SettingOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SettingResponse struct {
	Code         string                   `json:"code"`
	Name         string                   `json:"name"`
	Type         string                   `json:"type"`
	Required     bool                     `json:"required"`
	DefaultValue string                   `json:"default_value,omitempty"`
	Help         string                   `json:"help"`
	Options      []*SettingOptionResponse `json:"options,omitempty"`
	Value        string                   `json:"value"`
}

type SettingGroupResponse struct {
	Name     string             `json:"name"`
	Settings []*SettingResponse `json:"settings"`
}

type UpdateSettingRequest struct {
	Code  string
	Value string `json:"value"`
}
