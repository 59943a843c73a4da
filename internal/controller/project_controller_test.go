package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ara-be/internal/dto"
	"ara-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSourceController(t *testing.T) {
	svc := &mockSourceService{}
	app := newTestApp(t, NewSourceController(svc))

	svc.On("GetAll", mock.Anything, int64(2)).Return([]*dto.SourceResponse{{Code: "api"}, {Code: "web"}}, nil)
	status, body := call(t, app, http.MethodGet, "/api/projects/2/sources", nil)
	require.Equal(t, fiber.StatusOK, status)
	var sources []*dto.SourceResponse
	require.NoError(t, json.Unmarshal(body.Data, &sources))
	assert.Len(t, sources, 2)

	status, _ = call(t, app, http.MethodPost, "/api/projects/2/sources", map[string]interface{}{
		"code":           "api",
		"name":           "API",
		"letter":         "AB",
		"technology":     "POSTMAN",
		"vcs_url":        "https://git/{{branch}}/",
		"default_branch": "master",
	})
	assert.Equal(t, fiber.StatusBadRequest, status, "letter is a single character")

	svc.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(req *dto.UpdateSourceRequest) bool {
		return req.Code == "api" && req.Name == "API v2"
	})).Return(&dto.SourceResponse{Code: "api", Name: "API v2"}, nil)
	status, _ = call(t, app, http.MethodPut, "/api/projects/2/sources/api", map[string]interface{}{
		"code":           "ignored",
		"name":           "API v2",
		"letter":         "A",
		"technology":     "POSTMAN",
		"vcs_url":        "https://git/{{branch}}/",
		"default_branch": "master",
	})
	assert.Equal(t, fiber.StatusOK, status)

	svc.On("Delete", mock.Anything, int64(2), "web").Return(serverutils.NewConflictError("source web is still used by 3 scenarios"))
	status, body = call(t, app, http.MethodDelete, "/api/projects/2/sources/web", nil)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "source web is still used by 3 scenarios", body.Message)

	svc.AssertExpectations(t)
}

func TestScenarioController(t *testing.T) {
	svc := &mockScenarioService{}
	app := newTestApp(t, NewScenarioController(svc))

	svc.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(req *dto.CreateScenarioRequest) bool {
		return req.SourceId == 3 && req.Name == "Pay by card"
	})).Return(&dto.ScenarioResponse{Id: 10, SourceId: 3, Name: "Pay by card"}, nil)
	status, body := call(t, app, http.MethodPost, "/api/projects/1/scenarios", map[string]interface{}{
		"source_id": 3,
		"name":      "Pay by card",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, string(body.Data), `"id":10`)

	status, _ = call(t, app, http.MethodPost, "/api/projects/1/scenarios", map[string]interface{}{"name": "orphan"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	svc.AssertExpectations(t)
}

func TestCoverageController(t *testing.T) {
	coverage := &mockCoverageService{}
	report := &mockReportService{}
	app := newTestApp(t, NewCoverageController(coverage, report))

	coverage.On("Axis").Return(&dto.CoverageAxisResponse{Code: "coverage", Points: []*dto.AxisPointResponse{{Id: "COVERED"}}})
	status, body := call(t, app, http.MethodGet, "/api/projects/1/coverage/axis", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body.Data), `"code":"coverage"`)

	coverage.On("Summary", mock.Anything, int64(1)).Return(&dto.CoverageSummaryResponse{ProjectId: 1, Total: 5}, nil)
	status, body = call(t, app, http.MethodGet, "/api/projects/1/coverage/summary", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body.Data), `"total":5`)

	status, _ = call(t, app, http.MethodPost, "/api/projects/1/coverage/report", map[string]interface{}{
		"recipients": []string{"not-an-email"},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	report.AssertNotCalled(t, "SendCoverageReport", mock.Anything, mock.Anything, mock.Anything)

	report.On("SendCoverageReport", mock.Anything, int64(1), &dto.SendCoverageReportRequest{Recipients: []string{"qa@company.com"}}).
		Return(nil).Once()
	status, _ = call(t, app, http.MethodPost, "/api/projects/1/coverage/report", map[string]interface{}{
		"recipients": []string{"qa@company.com"},
	})
	assert.Equal(t, fiber.StatusOK, status)

	report.On("SendCoverageReport", mock.Anything, int64(1), mock.Anything).
		Return(serverutils.NewInternalError("failed to send the coverage report", errors.New("smtp down"))).Once()
	status, body = call(t, app, http.MethodPost, "/api/projects/1/coverage/report", map[string]interface{}{
		"recipients": []string{"qa@company.com"},
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "failed to send the coverage report", body.Message)

	coverage.AssertExpectations(t)
	report.AssertExpectations(t)
}

func TestSettingController(t *testing.T) {
	svc := &mockSettingService{}
	app := newTestApp(t, NewSettingController(svc))

	svc.On("Definitions", mock.Anything, int64(1)).Return([]*dto.SettingGroupResponse{{Name: "Defects"}}, nil)
	status, body := call(t, app, http.MethodGet, "/api/projects/1/settings", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body.Data), `"name":"Defects"`)

	svc.On("Update", mock.Anything, int64(1), &dto.UpdateSettingRequest{Code: "defect.url", Value: "https://bugs/{{id}}"}).Return(nil)
	status, _ = call(t, app, http.MethodPut, "/api/projects/1/settings/defect.url", map[string]interface{}{
		"value": "https://bugs/{{id}}",
	})
	assert.Equal(t, fiber.StatusOK, status)

	svc.On("Update", mock.Anything, int64(1), &dto.UpdateSettingRequest{Code: "unknown", Value: "x"}).
		Return(serverutils.NewNotFoundError("setting %s not found", "unknown"))
	status, _ = call(t, app, http.MethodPut, "/api/projects/1/settings/unknown", map[string]interface{}{"value": "x"})
	assert.Equal(t, fiber.StatusNotFound, status)

	svc.AssertExpectations(t)
}

func TestProblemController(t *testing.T) {
	svc := &mockProblemService{}
	app := newTestApp(t, NewProblemController(svc))

	svc.On("List", mock.Anything, int64(1), &dto.ProblemFilterRequest{Name: "timeout", Status: "OPEN"}).
		Return([]*dto.ProblemResponse{{Id: 3, Name: "Login timeout", Status: "OPEN"}}, nil)
	status, body := call(t, app, http.MethodGet, "/api/projects/1/problems?name=timeout&status=OPEN", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body.Data), `"name":"Login timeout"`)

	status, _ = call(t, app, http.MethodGet, "/api/projects/1/problems?status=PENDING", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	svc.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(req *dto.CreateProblemRequest) bool {
		return req.Name == "Flaky login" && req.DefectId == "BUG-1"
	})).Return(&dto.CreateProblemResponse{Id: 4}, nil)
	status, body = call(t, app, http.MethodPost, "/api/projects/1/problems", map[string]interface{}{
		"name":      "Flaky login",
		"defect_id": "BUG-1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"id":4}`, string(body.Data))

	status, _ = call(t, app, http.MethodPost, "/api/projects/1/problems", map[string]interface{}{"comment": "no name"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	svc.AssertExpectations(t)
}
