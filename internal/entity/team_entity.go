// FILE: internal/entity/team_entity.go
package entity

type Team struct {
	Id                          int64
	ProjectId                   int64
	Name                        string
	AssignableToProblems        bool
	AssignableToFunctionalities bool
}
