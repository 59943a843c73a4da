package contract

import (
	"context"

	"ara-be/internal/entity"
	"ara-be/internal/repository/specification"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error)
}
