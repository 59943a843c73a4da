// FILE: internal/entity/problem_entity.go
package entity

import "time"

type ProblemStatus string

const (
	ProblemStatusOpen   ProblemStatus = "OPEN"
	ProblemStatusClosed ProblemStatus = "CLOSED"
)

func (s ProblemStatus) IsValid() bool {
	return s == ProblemStatusOpen || s == ProblemStatusClosed
}

// Problem groups failing scenario errors under one known cause, optionally linked to a defect.
type Problem struct {
	Id               int64
	ProjectId        int64
	Name             string
	Comment          string
	Status           ProblemStatus
	BlamedTeamId     *int64
	DefectId         string
	DefectExistence  string
	ClosingDateTime  *time.Time
	CreationDateTime time.Time
}

// ProblemFilter narrows a problem listing; zero values match everything.
type ProblemFilter struct {
	Name         string
	DefectId     string
	Status       ProblemStatus
	BlamedTeamId *int64
}
