package specification

import "gorm.io/gorm"

// ByParentID matches root nodes when ParentID is nil.
type ByParentID struct {
	ParentID *int64
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", *s.ParentID)
}

type ByFunctionalityType struct {
	Type string
}

func (s ByFunctionalityType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// WithScenarios loads the coverage association.
type WithScenarios struct{}

func (s WithScenarios) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Scenarios")
}
