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

type ProblemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProblemMapper
}

func NewProblemRepository(db *gorm.DB) contract.ProblemRepository {
	return &ProblemRepositoryImpl{
		db:     db,
		mapper: mapper.NewProblemMapper(),
	}
}

func (r *ProblemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	return specification.Apply(db, specs...)
}

func (r *ProblemRepositoryImpl) Create(ctx context.Context, problem *entity.Problem) error {
	m := r.mapper.ToModel(problem)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*problem = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProblemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Problem, error) {
	var m model.Problem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProblemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Problem, error) {
	var models []*model.Problem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
