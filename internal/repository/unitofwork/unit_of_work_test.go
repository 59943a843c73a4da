package unitofwork

import (
	"context"
	"testing"

	"ara-be/internal/entity"
	"ara-be/internal/model"
	"ara-be/internal/repository/specification"
	"ara-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) RepositoryFactory {
	t.Helper()
	db, err := database.NewSQLiteMemoryDB(model.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewRepositoryFactory(db)
}

func newSource(code string) *entity.Source {
	return &entity.Source{
		ProjectId:     1,
		Code:          code,
		Name:          code,
		Letter:        "A",
		Technology:    entity.TechnologyCucumber,
		VcsUrl:        "https://git/{{branch}}/",
		DefaultBranch: "master",
	}
}

func TestUnitOfWork_TransactionState(t *testing.T) {
	ctx := context.Background()
	uow := newFactory(t).NewUnitOfWork(ctx)

	assert.ErrorIs(t, uow.Commit(), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction)

	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), ErrTransactionStarted)
	require.NoError(t, uow.Commit())
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction, "commit ends the transaction")
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	factory := newFactory(t)

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.SourceRepository().Create(ctx, newSource("api")))
	require.NoError(t, uow.Rollback())

	uow = factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.SourceRepository().Create(ctx, newSource("web")))
	require.NoError(t, uow.Commit())

	reader := factory.NewUnitOfWork(ctx).SourceRepository()
	rolledBack, err := reader.FindOne(ctx, specification.ByProjectID{ProjectID: 1}, specification.ByCode{Code: "api"})
	require.NoError(t, err)
	assert.Nil(t, rolledBack)

	committed, err := reader.FindOne(ctx, specification.ByProjectID{ProjectID: 1}, specification.ByCode{Code: "web"})
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.NotZero(t, committed.Id)
}
