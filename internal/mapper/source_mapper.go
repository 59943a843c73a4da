// FILE: internal/mapper/source_mapper.go
package mapper

import (
	"ara-be/internal/entity"
	"ara-be/internal/model"
)

type SourceMapper struct{}

func NewSourceMapper() *SourceMapper {
	return &SourceMapper{}
}

func (m *SourceMapper) ToEntity(s *model.Source) *entity.Source {
	if s == nil {
		return nil
	}
	return &entity.Source{
		Id:                        s.Id,
		ProjectId:                 s.ProjectId,
		Code:                      s.Code,
		Name:                      s.Name,
		Letter:                    s.Letter,
		Technology:                entity.Technology(s.Technology),
		VcsUrl:                    s.VcsUrl,
		DefaultBranch:             s.DefaultBranch,
		PostmanCountryRootFolders: s.PostmanCountryRootFolders,
	}
}

func (m *SourceMapper) ToModel(s *entity.Source) *model.Source {
	if s == nil {
		return nil
	}
	return &model.Source{
		Id:                        s.Id,
		ProjectId:                 s.ProjectId,
		Code:                      s.Code,
		Name:                      s.Name,
		Letter:                    s.Letter,
		Technology:                string(s.Technology),
		VcsUrl:                    s.VcsUrl,
		DefaultBranch:             s.DefaultBranch,
		PostmanCountryRootFolders: s.PostmanCountryRootFolders,
	}
}

func (m *SourceMapper) ToEntities(sources []*model.Source) []*entity.Source {
	entities := make([]*entity.Source, len(sources))
	for i, s := range sources {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
