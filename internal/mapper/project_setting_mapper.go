// FILE: internal/mapper/project_setting_mapper.go
package mapper

import (
	"ara-be/internal/entity"
	"ara-be/internal/model"
)

type ProjectSettingMapper struct{}

func NewProjectSettingMapper() *ProjectSettingMapper {
	return &ProjectSettingMapper{}
}

func (m *ProjectSettingMapper) ToEntity(s *model.ProjectSetting) *entity.ProjectSetting {
	if s == nil {
		return nil
	}
	return &entity.ProjectSetting{Id: s.Id, ProjectId: s.ProjectId, Code: s.Code, Value: s.Value}
}

func (m *ProjectSettingMapper) ToModel(s *entity.ProjectSetting) *model.ProjectSetting {
	if s == nil {
		return nil
	}
	return &model.ProjectSetting{Id: s.Id, ProjectId: s.ProjectId, Code: s.Code, Value: s.Value}
}

func (m *ProjectSettingMapper) ToEntities(settings []*model.ProjectSetting) []*entity.ProjectSetting {
	entities := make([]*entity.ProjectSetting, len(settings))
	for i, s := range settings {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
