// FILE: internal/mapper/functionality_mapper.go
package mapper

import (
	"time"

	"ara-be/internal/entity"
	"ara-be/internal/model"
)

type FunctionalityMapper struct {
	scenarioMapper *ScenarioMapper
}

func NewFunctionalityMapper() *FunctionalityMapper {
	return &FunctionalityMapper{scenarioMapper: NewScenarioMapper()}
}

// ToEntity goes through the entity mutators so the coverage cache starts stale.
func (m *FunctionalityMapper) ToEntity(f *model.Functionality) *entity.Functionality {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdateDateTime.IsZero() {
		t := f.UpdateDateTime
		updatedAt = &t
	}

	e := &entity.Functionality{
		Id:                      f.Id,
		ProjectId:               f.ProjectId,
		ParentId:                f.ParentId,
		Order:                   f.Order,
		Type:                    entity.FunctionalityType(f.Type),
		Name:                    f.Name,
		CountryCodes:            f.CountryCodes,
		TeamId:                  f.TeamId,
		Severity:                entity.FunctionalitySeverity(f.Severity),
		Created:                 f.Created,
		Comment:                 f.Comment,
		CoveredScenarios:        f.CoveredScenarios,
		CoveredCountryScenarios: f.CoveredCountryScenarios,
		IgnoredScenarios:        f.IgnoredScenarios,
		IgnoredCountryScenarios: f.IgnoredCountryScenarios,
		CreationDateTime:        f.CreationDateTime,
		UpdateDateTime:          updatedAt,
	}
	e.SetStarted(f.Started)
	e.SetNotAutomatable(f.NotAutomatable)
	for _, s := range f.Scenarios {
		e.AddScenario(m.scenarioMapper.ToEntity(s))
	}
	return e
}

// ToModel leaves Scenarios empty: the association is written by the repository explicitly.
func (m *FunctionalityMapper) ToModel(f *entity.Functionality) *model.Functionality {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdateDateTime != nil {
		updatedAt = *f.UpdateDateTime
	}

	return &model.Functionality{
		Id:                      f.Id,
		ProjectId:               f.ProjectId,
		ParentId:                f.ParentId,
		Order:                   f.Order,
		Type:                    string(f.Type),
		Name:                    f.Name,
		CountryCodes:            f.CountryCodes,
		TeamId:                  f.TeamId,
		Severity:                string(f.Severity),
		Created:                 f.Created,
		Started:                 f.Started(),
		NotAutomatable:          f.NotAutomatable(),
		CoveredScenarios:        f.CoveredScenarios,
		CoveredCountryScenarios: f.CoveredCountryScenarios,
		IgnoredScenarios:        f.IgnoredScenarios,
		IgnoredCountryScenarios: f.IgnoredCountryScenarios,
		Comment:                 f.Comment,
		CreationDateTime:        f.CreationDateTime,
		UpdateDateTime:          updatedAt,
	}
}

func (m *FunctionalityMapper) ToEntities(functionalities []*model.Functionality) []*entity.Functionality {
	entities := make([]*entity.Functionality, len(functionalities))
	for i, f := range functionalities {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
