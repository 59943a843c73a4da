// FILE: internal/model/scenario_model.go
package model

type Scenario struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	ProjectId    int64  `gorm:"not null;index"`
	SourceId     int64  `gorm:"not null;index"`
	FeatureFile  string `gorm:"type:varchar(256)"`
	Name         string `gorm:"type:varchar(512);not null"`
	Line         int
	CountryCodes string `gorm:"type:varchar(128)"`
	Ignored      bool   `gorm:"default:false"`
}

func (Scenario) TableName() string {
	return "scenario"
}
