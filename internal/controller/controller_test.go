package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/pkg/serverutils"
	pktNats "ara-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type routes interface {
	RegisterRoutes(r fiber.Router)
}

func newTestApp(t *testing.T, controllers ...routes) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	for _, c := range controllers {
		c.RegisterRoutes(api)
	}
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "tester",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

type apiResponse struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), string(raw))
	}
	return resp.StatusCode, parsed
}

func anonymousCall(t *testing.T, app *fiber.App, method, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	return resp.StatusCode
}

type mockFunctionalityService struct {
	mock.Mock
}

func (m *mockFunctionalityService) GetAll(ctx context.Context, projectId int64) ([]*dto.FunctionalityResponse, error) {
	args := m.Called(ctx, projectId)
	res, _ := args.Get(0).([]*dto.FunctionalityResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) Show(ctx context.Context, projectId int64, id int64) (*dto.FunctionalityResponse, error) {
	args := m.Called(ctx, projectId, id)
	res, _ := args.Get(0).(*dto.FunctionalityResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) Create(ctx context.Context, projectId int64, req *dto.CreateFunctionalityRequest) (*dto.CreateFunctionalityResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.CreateFunctionalityResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) Update(ctx context.Context, projectId int64, req *dto.UpdateFunctionalityRequest) (*dto.UpdateFunctionalityResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.UpdateFunctionalityResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) Delete(ctx context.Context, projectId int64, id int64) error {
	return m.Called(ctx, projectId, id).Error(0)
}

func (m *mockFunctionalityService) Move(ctx context.Context, projectId int64, req *dto.MoveFunctionalitiesRequest) (*dto.MoveFunctionalitiesResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.MoveFunctionalitiesResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) LinkScenario(ctx context.Context, projectId int64, req *dto.LinkScenarioRequest) (*dto.FunctionalityResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.FunctionalityResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) UnlinkScenario(ctx context.Context, projectId int64, functionalityId int64, scenarioId int64) (*dto.FunctionalityResponse, error) {
	args := m.Called(ctx, projectId, functionalityId, scenarioId)
	res, _ := args.Get(0).(*dto.FunctionalityResponse)
	return res, args.Error(1)
}

func (m *mockFunctionalityService) SetFlags(ctx context.Context, projectId int64, req *dto.SetCoverageFlagsRequest) (*dto.FunctionalityResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.FunctionalityResponse)
	return res, args.Error(1)
}

type mockSourceService struct {
	mock.Mock
}

func (m *mockSourceService) GetAll(ctx context.Context, projectId int64) ([]*dto.SourceResponse, error) {
	args := m.Called(ctx, projectId)
	res, _ := args.Get(0).([]*dto.SourceResponse)
	return res, args.Error(1)
}

func (m *mockSourceService) Create(ctx context.Context, projectId int64, req *dto.CreateSourceRequest) (*dto.SourceResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.SourceResponse)
	return res, args.Error(1)
}

func (m *mockSourceService) Update(ctx context.Context, projectId int64, req *dto.UpdateSourceRequest) (*dto.SourceResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.SourceResponse)
	return res, args.Error(1)
}

func (m *mockSourceService) Delete(ctx context.Context, projectId int64, code string) error {
	return m.Called(ctx, projectId, code).Error(0)
}

type mockScenarioService struct {
	mock.Mock
}

func (m *mockScenarioService) GetAll(ctx context.Context, projectId int64) ([]*dto.ScenarioResponse, error) {
	args := m.Called(ctx, projectId)
	res, _ := args.Get(0).([]*dto.ScenarioResponse)
	return res, args.Error(1)
}

func (m *mockScenarioService) Create(ctx context.Context, projectId int64, req *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.ScenarioResponse)
	return res, args.Error(1)
}

type mockCoverageService struct {
	mock.Mock
}

func (m *mockCoverageService) Axis() *dto.CoverageAxisResponse {
	res, _ := m.Called().Get(0).(*dto.CoverageAxisResponse)
	return res
}

func (m *mockCoverageService) AxisPoints() []*dto.AxisPointResponse {
	res, _ := m.Called().Get(0).([]*dto.AxisPointResponse)
	return res
}

func (m *mockCoverageService) ValuePoints(functionality *entity.Functionality) []string {
	res, _ := m.Called(functionality).Get(0).([]string)
	return res
}

func (m *mockCoverageService) Summary(ctx context.Context, projectId int64) (*dto.CoverageSummaryResponse, error) {
	args := m.Called(ctx, projectId)
	res, _ := args.Get(0).(*dto.CoverageSummaryResponse)
	return res, args.Error(1)
}

func (m *mockCoverageService) InvalidateSummary(ctx context.Context, projectId int64) {
	m.Called(ctx, projectId)
}

func (m *mockCoverageService) ListenForInvalidation(subscriber *pktNats.Subscriber) error {
	return m.Called(subscriber).Error(0)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) SendCoverageReport(ctx context.Context, projectId int64, req *dto.SendCoverageReportRequest) error {
	return m.Called(ctx, projectId, req).Error(0)
}

type mockSettingService struct {
	mock.Mock
}

func (m *mockSettingService) Definitions(ctx context.Context, projectId int64) ([]*dto.SettingGroupResponse, error) {
	args := m.Called(ctx, projectId)
	res, _ := args.Get(0).([]*dto.SettingGroupResponse)
	return res, args.Error(1)
}

func (m *mockSettingService) GetValue(ctx context.Context, projectId int64, code string) (string, error) {
	args := m.Called(ctx, projectId, code)
	return args.String(0), args.Error(1)
}

func (m *mockSettingService) Update(ctx context.Context, projectId int64, req *dto.UpdateSettingRequest) error {
	return m.Called(ctx, projectId, req).Error(0)
}

type mockProblemService struct {
	mock.Mock
}

func (m *mockProblemService) List(ctx context.Context, projectId int64, filter *dto.ProblemFilterRequest) ([]*dto.ProblemResponse, error) {
	args := m.Called(ctx, projectId, filter)
	res, _ := args.Get(0).([]*dto.ProblemResponse)
	return res, args.Error(1)
}

func (m *mockProblemService) Create(ctx context.Context, projectId int64, req *dto.CreateProblemRequest) (*dto.CreateProblemResponse, error) {
	args := m.Called(ctx, projectId, req)
	res, _ := args.Get(0).(*dto.CreateProblemResponse)
	return res, args.Error(1)
}
