// FILE: internal/model/team_model.go
package model

type Team struct {
	Id                          int64  `gorm:"primaryKey;autoIncrement"`
	ProjectId                   int64  `gorm:"not null;index"`
	Name                        string `gorm:"type:varchar(128);not null"`
	AssignableToProblems        bool
	AssignableToFunctionalities bool
}

func (Team) TableName() string {
	return "team"
}
