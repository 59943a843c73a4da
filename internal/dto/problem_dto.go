// FILE: internal/dto/problem_dto.go
package dto

import "time"

type ProblemFilterRequest struct {
	Name         string `query:"name"`
	DefectId     string `query:"defect_id"`
	Status       string `query:"status" validate:"omitempty,oneof=OPEN CLOSED"`
	BlamedTeamId *int64 `query:"blamed_team_id"`
}

type CreateProblemRequest struct {
	Name         string `json:"name" validate:"required,max=256"`
	Comment      string `json:"comment"`
	BlamedTeamId *int64 `json:"blamed_team_id"`
	DefectId     string `json:"defect_id" validate:"max=32"`
}

type CreateProblemResponse struct {
	Id int64 `json:"id"`
}

type ProblemResponse struct {
	Id               int64      `json:"id"`
	Name             string     `json:"name"`
	Comment          string     `json:"comment,omitempty"`
	Status           string     `json:"status"`
	BlamedTeamId     *int64     `json:"blamed_team_id"`
	DefectId         string     `json:"defect_id,omitempty"`
	DefectUrl        string     `json:"defect_url,omitempty"`
	ClosingDateTime  *time.Time `json:"closing_date_time"`
	CreationDateTime time.Time  `json:"creation_date_time"`
}
