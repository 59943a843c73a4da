// FILE: internal/dto/coverage_dto.go
package dto

// AxisPointResponse is one point of a cartography axis.
type AxisPointResponse struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Tooltip string `json:"tooltip,omitempty"`
}

type CoverageAxisResponse struct {
	Code   string               `json:"code"`
	Name   string               `json:"name"`
	Points []*AxisPointResponse `json:"points"`
}

type CoverageLevelCount struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CoverageSummaryResponse struct {
	ProjectId int64                 `json:"project_id"`
	Total     int                   `json:"total"`
	Levels    []*CoverageLevelCount `json:"levels"`
}
