// FILE: internal/mapper/problem_mapper.go
package mapper

import (
	"ara-be/internal/entity"
	"ara-be/internal/model"
)

type ProblemMapper struct{}

func NewProblemMapper() *ProblemMapper {
	return &ProblemMapper{}
}

func (m *ProblemMapper) ToEntity(p *model.Problem) *entity.Problem {
	if p == nil {
		return nil
	}
	return &entity.Problem{
		Id:               p.Id,
		ProjectId:        p.ProjectId,
		Name:             p.Name,
		Comment:          p.Comment,
		Status:           entity.ProblemStatus(p.Status),
		BlamedTeamId:     p.BlamedTeamId,
		DefectId:         p.DefectId,
		DefectExistence:  p.DefectExistence,
		ClosingDateTime:  p.ClosingDateTime,
		CreationDateTime: p.CreationDateTime,
	}
}

func (m *ProblemMapper) ToModel(p *entity.Problem) *model.Problem {
	if p == nil {
		return nil
	}
	return &model.Problem{
		Id:               p.Id,
		ProjectId:        p.ProjectId,
		Name:             p.Name,
		Comment:          p.Comment,
		Status:           string(p.Status),
		BlamedTeamId:     p.BlamedTeamId,
		DefectId:         p.DefectId,
		DefectExistence:  p.DefectExistence,
		ClosingDateTime:  p.ClosingDateTime,
		CreationDateTime: p.CreationDateTime,
	}
}

func (m *ProblemMapper) ToEntities(problems []*model.Problem) []*entity.Problem {
	entities := make([]*entity.Problem, len(problems))
	for i, p := range problems {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
