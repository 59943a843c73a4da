// FILE: internal/mapper/problem_filter_mapper.go
package mapper

import (
	"strings"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
)

// ProblemFilterMapper copies the problem filter query into its domain form.
type ProblemFilterMapper struct{}

func NewProblemFilterMapper() *ProblemFilterMapper {
	return &ProblemFilterMapper{}
}

func (m *ProblemFilterMapper) ToEntity(req *dto.ProblemFilterRequest) entity.ProblemFilter {
	if req == nil {
		return entity.ProblemFilter{}
	}
	return entity.ProblemFilter{
		Name:         strings.TrimSpace(req.Name),
		DefectId:     strings.TrimSpace(req.DefectId),
		Status:       entity.ProblemStatus(req.Status),
		BlamedTeamId: req.BlamedTeamId,
	}
}

func (m *ProblemFilterMapper) ToRequest(filter entity.ProblemFilter) *dto.ProblemFilterRequest {
	return &dto.ProblemFilterRequest{
		Name:         filter.Name,
		DefectId:     filter.DefectId,
		Status:       string(filter.Status),
		BlamedTeamId: filter.BlamedTeamId,
	}
}
