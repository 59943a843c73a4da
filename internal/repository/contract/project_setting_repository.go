package contract

import (
	"context"

	"ara-be/internal/entity"
)

type ProjectSettingRepository interface {
	// Upsert inserts or replaces the value of (projectId, code).
	Upsert(ctx context.Context, setting *entity.ProjectSetting) error
	FindAllByProjectId(ctx context.Context, projectId int64) ([]*entity.ProjectSetting, error)
}
