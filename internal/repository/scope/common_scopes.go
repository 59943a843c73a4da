package scope

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderByTreePosition lists siblings together, in display order.
func OrderByTreePosition(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "project_id"}},
		{Column: clause.Column{Name: "parent_id"}},
		{Column: clause.Column{Name: "order"}},
		{Column: clause.Column{Name: "name"}},
	}})
}

// OrderBySourceKey follows the (project_id, code) source key.
func OrderBySourceKey(db *gorm.DB) *gorm.DB {
	return db.Order("project_id ASC").Order("code ASC")
}

func OrderByCreationDesc(db *gorm.DB) *gorm.DB {
	return db.Order("creation_date_time DESC")
}
