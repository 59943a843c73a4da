// FILE: internal/model/project_setting_model.go
package model

type ProjectSetting struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	ProjectId int64  `gorm:"not null;uniqueIndex:idx_setting_project_code,priority:1"`
	Code      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_setting_project_code,priority:2"`
	Value     string `gorm:"type:varchar(512)"`
}

func (ProjectSetting) TableName() string {
	return "project_setting"
}
