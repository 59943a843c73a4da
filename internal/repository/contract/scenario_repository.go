package contract

import (
	"context"

	"ara-be/internal/entity"
	"ara-be/internal/repository/specification"
)

type ScenarioRepository interface {
	Create(ctx context.Context, scenario *entity.Scenario) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scenario, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scenario, error)
}
