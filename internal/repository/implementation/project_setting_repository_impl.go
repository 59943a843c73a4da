package implementation

import (
	"context"

	"ara-be/internal/entity"
	"ara-be/internal/mapper"
	"ara-be/internal/model"
	"ara-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectSettingMapper
}

func NewProjectSettingRepository(db *gorm.DB) contract.ProjectSettingRepository {
	return &ProjectSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectSettingMapper(),
	}
}

func (r *ProjectSettingRepositoryImpl) Upsert(ctx context.Context, setting *entity.ProjectSetting) error {
	m := r.mapper.ToModel(setting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	setting.Id = m.Id
	return nil
}

func (r *ProjectSettingRepositoryImpl) FindAllByProjectId(ctx context.Context, projectId int64) ([]*entity.ProjectSetting, error) {
	var models []*model.ProjectSetting
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectId).Order("code ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
