// FILE: internal/model/source_model.go
package model

type Source struct {
	Id                        int64  `gorm:"primaryKey;autoIncrement"`
	ProjectId                 int64  `gorm:"not null;uniqueIndex:idx_source_project_code,priority:1"`
	Code                      string `gorm:"type:varchar(16);not null;uniqueIndex:idx_source_project_code,priority:2"`
	Name                      string `gorm:"type:varchar(32);not null"`
	Letter                    string `gorm:"type:char(1)"`
	Technology                string `gorm:"type:varchar(16);not null"`
	VcsUrl                    string `gorm:"type:varchar(256)"`
	DefaultBranch             string `gorm:"type:varchar(16)"`
	PostmanCountryRootFolders bool   `gorm:"default:false"`
}

func (Source) TableName() string {
	return "source"
}
