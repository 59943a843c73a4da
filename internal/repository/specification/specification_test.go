package specification_test

import (
	"testing"

	"ara-be/internal/repository/specification"
	"ara-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApply_ChainsAndSkipsNil(t *testing.T) {
	db, err := database.NewSQLiteMemoryDB()
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		query := specification.Apply(tx.Table("functionality"),
			specification.ByProjectID{ProjectID: 3},
			nil,
			specification.OrderBy{Field: "order", Desc: true},
		)
		return query.Find(&[]map[string]interface{}{})
	})

	assert.Contains(t, sql, "project_id = 3")
	assert.Contains(t, sql, "ORDER BY `order` DESC")
}
