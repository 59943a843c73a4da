// FILE: internal/model/functionality_model.go
package model

import "time"

type Functionality struct {
	Id                      int64   `gorm:"primaryKey;autoIncrement"`
	ProjectId               int64   `gorm:"not null;index:idx_functionality_key,priority:1"`
	ParentId                *int64  `gorm:"index:idx_functionality_key,priority:2"`
	Order                   float64 `gorm:"column:order;not null;default:0"`
	Type                    string  `gorm:"type:varchar(13);not null"`
	Name                    string  `gorm:"type:varchar(512);not null;index:idx_functionality_key,priority:3"`
	CountryCodes            string  `gorm:"type:varchar(128)"`
	TeamId                  *int64  `gorm:"index"`
	Severity                string  `gorm:"type:varchar(32)"`
	Created                 string  `gorm:"type:varchar(10)"`
	Started                 *bool
	NotAutomatable          *bool
	CoveredScenarios        int         `gorm:"default:0"`
	CoveredCountryScenarios string      `gorm:"type:varchar(512)"`
	IgnoredScenarios        int         `gorm:"default:0"`
	IgnoredCountryScenarios string      `gorm:"type:varchar(512)"`
	Comment                 string      `gorm:"type:text"`
	CreationDateTime        time.Time   `gorm:"column:creation_date_time;autoCreateTime"`
	UpdateDateTime          time.Time   `gorm:"column:update_date_time;autoUpdateTime"`
	Scenarios               []*Scenario `gorm:"many2many:functionality_coverage"`
}

func (Functionality) TableName() string {
	return "functionality"
}
