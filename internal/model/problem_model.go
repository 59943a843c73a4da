// FILE: internal/model/problem_model.go
package model

import "time"

type Problem struct {
	Id               int64  `gorm:"primaryKey;autoIncrement"`
	ProjectId        int64  `gorm:"not null;index"`
	Name             string `gorm:"type:varchar(256);not null"`
	Comment          string `gorm:"type:text"`
	Status           string `gorm:"type:varchar(16);not null;default:OPEN"`
	BlamedTeamId     *int64 `gorm:"index"`
	DefectId         string `gorm:"type:varchar(32)"`
	DefectExistence  string `gorm:"type:varchar(16)"`
	ClosingDateTime  *time.Time
	CreationDateTime time.Time `gorm:"autoCreateTime"`
}

func (Problem) TableName() string {
	return "problem"
}
