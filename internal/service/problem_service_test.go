package service

import (
	"context"
	"testing"
	"time"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProblemService_CreateAndFilter(t *testing.T) {
	factory := newTestFactory(t)
	events := &mockEventPublisherService{}
	events.On("PublishDefectRefreshRequested", mock.Anything, mock.Anything, mock.Anything).Maybe()
	settings := NewSettingService(factory, memory.NewProjectSettingCache(time.Minute), NewDefectService(events, testLogger()), "/data/", testLogger())
	svc := NewProblemService(factory, settings, testLogger())
	ctx := context.Background()

	backend := seedTeam(t, factory, &entity.Team{ProjectId: projectId, Name: "Backend", AssignableToProblems: true})
	infra := seedTeam(t, factory, &entity.Team{ProjectId: projectId, Name: "Infra", AssignableToProblems: false})

	_, err := svc.Create(ctx, projectId, &dto.CreateProblemRequest{Name: "Timeout on payment", BlamedTeamId: int64Ptr(backend.Id), DefectId: "PAY-42"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, projectId, &dto.CreateProblemRequest{Name: "Flaky login"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, &dto.CreateProblemRequest{Name: "Payment in other project"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, projectId, &dto.CreateProblemRequest{Name: "x", BlamedTeamId: int64Ptr(infra.Id)})
	assert.Equal(t, fiber.StatusBadRequest, statusOf(err))
	_, err = svc.Create(ctx, projectId, &dto.CreateProblemRequest{Name: "x", BlamedTeamId: int64Ptr(999)})
	assert.Equal(t, fiber.StatusBadRequest, statusOf(err))

	all, err := svc.List(ctx, projectId, &dto.ProblemFilterRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Flaky login", all[0].Name, "newest first")
	assert.Equal(t, string(entity.ProblemStatusOpen), all[0].Status)
	assert.Empty(t, all[1].DefectUrl, "no URL format configured")

	byName, err := svc.List(ctx, projectId, &dto.ProblemFilterRequest{Name: " PAYMENT "})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "PAY-42", byName[0].DefectId)

	byTeam, err := svc.List(ctx, projectId, &dto.ProblemFilterRequest{BlamedTeamId: int64Ptr(backend.Id)})
	require.NoError(t, err)
	assert.Len(t, byTeam, 1)

	closed, err := svc.List(ctx, projectId, &dto.ProblemFilterRequest{Status: "CLOSED"})
	require.NoError(t, err)
	assert.Empty(t, closed)

	require.NoError(t, settings.Update(ctx, projectId, &dto.UpdateSettingRequest{Code: entity.SettingDefectIndexer, Value: DefectAdapterGithub}))
	require.NoError(t, settings.Update(ctx, projectId, &dto.UpdateSettingRequest{Code: entity.SettingDefectUrl, Value: "https://bugs.company.com/browse/{{id}}"}))

	byDefect, err := svc.List(ctx, projectId, &dto.ProblemFilterRequest{DefectId: "PAY-42"})
	require.NoError(t, err)
	require.Len(t, byDefect, 1)
	assert.Equal(t, "https://bugs.company.com/browse/PAY-42", byDefect[0].DefectUrl)
}

func TestDefectURL(t *testing.T) {
	assert.Equal(t, "http://x/42", DefectURL("http://x/{{id}}", "42"))
	assert.Empty(t, DefectURL("http://x/", "42"))
	assert.Empty(t, DefectURL("http://x/{{id}}", ""))
}

func TestDefectService(t *testing.T) {
	events := &mockEventPublisherService{}
	events.On("PublishDefectRefreshRequested", mock.Anything, projectId, DefectAdapterGithub).Once()
	svc := NewDefectService(events, testLogger())

	require.Len(t, svc.Adapters(), 2)
	assert.Equal(t, "RTC", svc.Adapter(DefectAdapterRtc).Name)
	assert.Nil(t, svc.Adapter("jira"))
	for _, adapter := range svc.Adapters() {
		for _, setting := range adapter.Settings {
			assert.NotEmpty(t, setting.Help, setting.Code)
		}
	}

	require.NoError(t, svc.RefreshDefectExistences(context.Background(), projectId, DefectAdapterGithub))
	assert.Equal(t, fiber.StatusBadRequest, statusOf(svc.RefreshDefectExistences(context.Background(), projectId, "jira")))
	events.AssertExpectations(t)
}
