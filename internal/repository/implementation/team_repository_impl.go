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

type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewTeamRepository(db *gorm.DB) contract.TeamRepository {
	return &TeamRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	var m model.Team
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
