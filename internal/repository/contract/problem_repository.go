package contract

import (
	"context"

	"ara-be/internal/entity"
	"ara-be/internal/repository/specification"
)

type ProblemRepository interface {
	Create(ctx context.Context, problem *entity.Problem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Problem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Problem, error)
}
