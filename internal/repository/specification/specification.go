package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories accept any number of them and apply them in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Apply chains specs onto db. Nil entries are skipped so callers can build lists conditionally.
func Apply(db *gorm.DB, specs ...Specification) *gorm.DB {
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		db = spec.Apply(db)
	}
	return db
}
