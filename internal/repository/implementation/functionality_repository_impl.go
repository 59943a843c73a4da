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
	"gorm.io/gorm/clause"
)

// Columns owned by the coverage consumer; regular updates never write them.
var functionalityCounterColumns = []string{
	"covered_scenarios",
	"covered_country_scenarios",
	"ignored_scenarios",
	"ignored_country_scenarios",
}

type FunctionalityRepositoryImpl struct {
	db             *gorm.DB
	mapper         *mapper.FunctionalityMapper
	scenarioMapper *mapper.ScenarioMapper
}

func NewFunctionalityRepository(db *gorm.DB) contract.FunctionalityRepository {
	return &FunctionalityRepositoryImpl{
		db:             db,
		mapper:         mapper.NewFunctionalityMapper(),
		scenarioMapper: mapper.NewScenarioMapper(),
	}
}

func (r *FunctionalityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	return specification.Apply(db, specs...)
}

func (r *FunctionalityRepositoryImpl) Create(ctx context.Context, functionality *entity.Functionality) error {
	m := r.mapper.ToModel(functionality)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	functionality.Id = m.Id
	functionality.CreationDateTime = m.CreationDateTime
	if !m.UpdateDateTime.IsZero() {
		t := m.UpdateDateTime
		functionality.UpdateDateTime = &t
	}
	if len(functionality.Scenarios()) > 0 {
		return r.SaveScenarios(ctx, functionality)
	}
	return nil
}

func (r *FunctionalityRepositoryImpl) Update(ctx context.Context, functionality *entity.Functionality) error {
	m := r.mapper.ToModel(functionality)
	omit := append([]string{clause.Associations}, functionalityCounterColumns...)
	if err := r.db.WithContext(ctx).Omit(omit...).Save(m).Error; err != nil {
		return err
	}
	t := m.UpdateDateTime
	functionality.UpdateDateTime = &t
	return nil
}

func (r *FunctionalityRepositoryImpl) UpdateCounters(ctx context.Context, functionality *entity.Functionality) error {
	return r.db.WithContext(ctx).
		Model(&model.Functionality{Id: functionality.Id}).
		UpdateColumns(map[string]interface{}{
			"covered_scenarios":         functionality.CoveredScenarios,
			"covered_country_scenarios": functionality.CoveredCountryScenarios,
			"ignored_scenarios":         functionality.IgnoredScenarios,
			"ignored_country_scenarios": functionality.IgnoredCountryScenarios,
		}).Error
}

// SaveScenarios replaces the stored coverage association with the entity's scenario set.
func (r *FunctionalityRepositoryImpl) SaveScenarios(ctx context.Context, functionality *entity.Functionality) error {
	association := r.db.WithContext(ctx).
		Model(&model.Functionality{Id: functionality.Id}).
		Association("Scenarios")

	scenarios := functionality.Scenarios()
	if len(scenarios) == 0 {
		return association.Clear()
	}
	return association.Replace(r.scenarioMapper.ToModels(scenarios))
}

func (r *FunctionalityRepositoryImpl) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM functionality_coverage WHERE functionality_id IN ?", ids).Error; err != nil {
		return err
	}
	return db.Delete(&model.Functionality{}, ids).Error
}

func (r *FunctionalityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Functionality, error) {
	var m model.Functionality
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FunctionalityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Functionality, error) {
	var models []*model.Functionality
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FunctionalityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Functionality{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
