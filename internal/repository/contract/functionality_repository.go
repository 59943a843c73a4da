package contract

import (
	"context"

	"ara-be/internal/entity"
	"ara-be/internal/repository/specification"
)

type FunctionalityRepository interface {
	Create(ctx context.Context, functionality *entity.Functionality) error
	Update(ctx context.Context, functionality *entity.Functionality) error
	UpdateCounters(ctx context.Context, functionality *entity.Functionality) error
	SaveScenarios(ctx context.Context, functionality *entity.Functionality) error
	Delete(ctx context.Context, ids ...int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Functionality, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Functionality, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
