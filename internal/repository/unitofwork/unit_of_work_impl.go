package unitofwork

import (
	"context"
	"errors"

	"ara-be/internal/repository/contract"
	"ara-be/internal/repository/implementation"

	"gorm.io/gorm"
)

var (
	ErrTransactionStarted = errors.New("transaction already started")
	ErrNoTransaction      = errors.New("no active transaction")
)

type unitOfWork struct {
	db *gorm.DB
	tx *gorm.DB // nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionStarted
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *unitOfWork) Commit() error {
	return u.finish((*gorm.DB).Commit)
}

func (u *unitOfWork) Rollback() error {
	return u.finish((*gorm.DB).Rollback)
}

func (u *unitOfWork) finish(end func(*gorm.DB) *gorm.DB) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	tx := u.tx
	u.tx = nil
	return end(tx).Error
}

func (u *unitOfWork) FunctionalityRepository() contract.FunctionalityRepository {
	return implementation.NewFunctionalityRepository(u.conn())
}

func (u *unitOfWork) ScenarioRepository() contract.ScenarioRepository {
	return implementation.NewScenarioRepository(u.conn())
}

func (u *unitOfWork) SourceRepository() contract.SourceRepository {
	return implementation.NewSourceRepository(u.conn())
}

func (u *unitOfWork) TeamRepository() contract.TeamRepository {
	return implementation.NewTeamRepository(u.conn())
}

func (u *unitOfWork) ProblemRepository() contract.ProblemRepository {
	return implementation.NewProblemRepository(u.conn())
}

func (u *unitOfWork) ProjectSettingRepository() contract.ProjectSettingRepository {
	return implementation.NewProjectSettingRepository(u.conn())
}
