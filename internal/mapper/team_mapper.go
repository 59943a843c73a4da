// FILE: internal/mapper/team_mapper.go
package mapper

import (
	"ara-be/internal/entity"
	"ara-be/internal/model"
)

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) ToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}
	return &entity.Team{
		Id:                          t.Id,
		ProjectId:                   t.ProjectId,
		Name:                        t.Name,
		AssignableToProblems:        t.AssignableToProblems,
		AssignableToFunctionalities: t.AssignableToFunctionalities,
	}
}

func (m *TeamMapper) ToModel(t *entity.Team) *model.Team {
	if t == nil {
		return nil
	}
	return &model.Team{
		Id:                          t.Id,
		ProjectId:                   t.ProjectId,
		Name:                        t.Name,
		AssignableToProblems:        t.AssignableToProblems,
		AssignableToFunctionalities: t.AssignableToFunctionalities,
	}
}
