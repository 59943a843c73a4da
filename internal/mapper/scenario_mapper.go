// FILE: internal/mapper/scenario_mapper.go
package mapper

import (
	"ara-be/internal/entity"
	"ara-be/internal/model"
)

type ScenarioMapper struct{}

func NewScenarioMapper() *ScenarioMapper {
	return &ScenarioMapper{}
}

func (m *ScenarioMapper) ToEntity(s *model.Scenario) *entity.Scenario {
	if s == nil {
		return nil
	}
	return &entity.Scenario{
		Id:           s.Id,
		ProjectId:    s.ProjectId,
		SourceId:     s.SourceId,
		FeatureFile:  s.FeatureFile,
		Name:         s.Name,
		Line:         s.Line,
		CountryCodes: s.CountryCodes,
		Ignored:      s.Ignored,
	}
}

func (m *ScenarioMapper) ToModel(s *entity.Scenario) *model.Scenario {
	if s == nil {
		return nil
	}
	return &model.Scenario{
		Id:           s.Id,
		ProjectId:    s.ProjectId,
		SourceId:     s.SourceId,
		FeatureFile:  s.FeatureFile,
		Name:         s.Name,
		Line:         s.Line,
		CountryCodes: s.CountryCodes,
		Ignored:      s.Ignored,
	}
}

func (m *ScenarioMapper) ToEntities(scenarios []*model.Scenario) []*entity.Scenario {
	entities := make([]*entity.Scenario, len(scenarios))
	for i, s := range scenarios {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *ScenarioMapper) ToModels(scenarios []*entity.Scenario) []*model.Scenario {
	models := make([]*model.Scenario, len(scenarios))
	for i, s := range scenarios {
		models[i] = m.ToModel(s)
	}
	return models
}
