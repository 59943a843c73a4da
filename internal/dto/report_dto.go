// FILE: internal/dto/report_dto.go
package dto

type SendCoverageReportRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
}
