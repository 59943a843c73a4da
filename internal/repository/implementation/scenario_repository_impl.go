package implementation

import (
	"context"
	"errors"

	"ara-be/internal/entity"
	"ara-be/internal/mapper"
	"ara-be/internal/model"
	"ara-be/internal/repository/contract"
	"ara-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ScenarioRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScenarioMapper
}

func NewScenarioRepository(db *gorm.DB) contract.ScenarioRepository {
	return &ScenarioRepositoryImpl{
		db:     db,
		mapper: mapper.NewScenarioMapper(),
	}
}

func (r *ScenarioRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	return specification.Apply(db, specs...)
}

func (r *ScenarioRepositoryImpl) Create(ctx context.Context, scenario *entity.Scenario) error {
	m := r.mapper.ToModel(scenario)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scenario = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScenarioRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scenario, error) {
	var m model.Scenario
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScenarioRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scenario, error) {
	var models []*model.Scenario
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
