// FILE: internal/service/report_service.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/pkg/mailer"
	"ara-be/internal/pkg/serverutils"
)

var coverageReportTemplate = template.Must(template.New("coverage").Parse(`<html>
<body>
<h2>Functionality coverage of project {{.ProjectId}}</h2>
<table border="1" cellspacing="0" cellpadding="4">
<tr><th>Coverage</th><th>Functionalities</th><th>Share</th></tr>
{{range .Levels}}<tr><td>{{.Label}}</td><td>{{.Count}}</td><td>{{.Percent}}%</td></tr>
{{end}}<tr><th>Total</th><th>{{.Total}}</th><th></th></tr>
</table>
</body>
</html>`))

type coverageReportRow struct {
	Label   string
	Count   int
	Percent int
}

type coverageReportData struct {
	ProjectId int64
	Total     int
	Levels    []coverageReportRow
}

type IReportService interface {
	SendCoverageReport(ctx context.Context, projectId int64, req *dto.SendCoverageReportRequest) error
}

type reportService struct {
	coverageService ICoverageService
	settingService  ISettingService
	emailService    mailer.IEmailService
	logger          logger.ILogger
}

func NewReportService(
	coverageService ICoverageService,
	settingService ISettingService,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IReportService {
	return &reportService{
		coverageService: coverageService,
		settingService:  settingService,
		emailService:    emailService,
		logger:          log,
	}
}

func (s *reportService) SendCoverageReport(ctx context.Context, projectId int64, req *dto.SendCoverageReportRequest) error {
	from, err := s.settingService.GetValue(ctx, projectId, entity.SettingEmailFrom)
	if err != nil {
		return err
	}
	if from == "" {
		return serverutils.NewBadRequestError("the %q setting must be configured to send reports", entity.SettingEmailFrom)
	}

	summary, err := s.coverageService.Summary(ctx, projectId)
	if err != nil {
		return err
	}

	body, err := RenderCoverageReport(summary)
	if err != nil {
		return serverutils.NewInternalError("failed to render the coverage report", err)
	}

	subject := fmt.Sprintf("[ARA] Functionality coverage of project %d", projectId)
	if err := s.emailService.SendHTML(from, req.Recipients, subject, body); err != nil {
		return serverutils.NewInternalError("failed to send the coverage report", err)
	}
	return nil
}

// RenderCoverageReport formats a coverage summary as an HTML email body.
func RenderCoverageReport(summary *dto.CoverageSummaryResponse) (string, error) {
	data := coverageReportData{ProjectId: summary.ProjectId, Total: summary.Total}
	for _, level := range summary.Levels {
		row := coverageReportRow{Label: level.Label, Count: level.Count}
		if summary.Total > 0 {
			row.Percent = level.Count * 100 / summary.Total
		}
		data.Levels = append(data.Levels, row)
	}

	var buf bytes.Buffer
	if err := coverageReportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
