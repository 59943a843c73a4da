package unitofwork

import (
	"context"

	"ara-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FunctionalityRepository() contract.FunctionalityRepository
	ScenarioRepository() contract.ScenarioRepository
	SourceRepository() contract.SourceRepository
	TeamRepository() contract.TeamRepository
	ProblemRepository() contract.ProblemRepository
	ProjectSettingRepository() contract.ProjectSettingRepository
}
