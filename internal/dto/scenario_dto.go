// FILE: internal/dto/scenario_dto.go
package dto

type CreateScenarioRequest struct {
	SourceId     int64  `json:"source_id" validate:"required"`
	FeatureFile  string `json:"feature_file" validate:"max=256"`
	Name         string `json:"name" validate:"required,max=512"`
	Line         int    `json:"line" validate:"gte=0"`
	CountryCodes string `json:"country_codes" validate:"max=128"`
	Ignored      bool   `json:"ignored"`
}

type ScenarioResponse struct {
	Id           int64  `json:"id"`
	SourceId     int64  `json:"source_id"`
	FeatureFile  string `json:"feature_file"`
	Name         string `json:"name"`
	Line         int    `json:"line"`
	CountryCodes string `json:"country_codes"`
	Ignored      bool   `json:"ignored"`
}
