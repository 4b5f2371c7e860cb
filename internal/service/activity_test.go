package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store/memory"
)

func activitySeed() memory.Seed {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return memory.Seed{
		Users: []models.User{
			{ID: 1, Username: "admin", Name: "Administrator"},
			{ID: 2, Username: "johndoe", Name: "John Doe"},
		},
		Activities: []models.Activity{
			{ID: 1, UserID: 1, Action: models.ActionCreatedTask, CreatedAt: base},
			{ID: 2, UserID: 2, Action: models.ActionAddedComment, CreatedAt: base.Add(time.Hour)},
			{ID: 3, UserID: 1, Action: models.ActionUpdatedStatus, CreatedAt: base.Add(2 * time.Hour)},
		},
		ActivityLogs: []models.ActivityLog{
			{ID: 1, Type: models.ActivityTaskCreated, UserID: 1, CreatedAt: base},
			{ID: 2, Type: models.ActivityCommentAdded, UserID: 2, CreatedAt: base.AddDate(0, 0, 1)},
			{ID: 3, Type: models.ActivityStatusChanged, UserID: 1, CreatedAt: base.AddDate(0, 0, 2)},
		},
	}
}

func TestActivityList_NewestFirstWithAuthors(t *testing.T) {
	svc, _ := newTestServices(t, activitySeed())

	resp, err := svc.Activities.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.True(t, resp.Success)

	page := resp.Data.(models.Page[models.Activity])
	require.Len(t, page.Content, 3)
	require.Equal(t, int64(3), page.Content[0].ID)
	require.Equal(t, int64(1), page.Content[2].ID)
	require.NotNil(t, page.Content[0].User)
	require.Equal(t, "admin", page.Content[0].User.Username)
}

func TestActivityMy_FiltersByActor(t *testing.T) {
	svc, _ := newTestServices(t, activitySeed())

	resp, err := svc.Activities.My(context.Background(), 2, 0, 10)
	require.NoError(t, err)

	page := resp.Data.(models.Page[models.Activity])
	require.Len(t, page.Content, 1)
	require.Equal(t, models.ActionAddedComment, page.Content[0].Action)
}

func TestActivityLogs_FilterByType(t *testing.T) {
	svc, _ := newTestServices(t, activitySeed())

	resp, err := svc.Activities.Logs(context.Background(), 0, 10, models.ActivityLogFilter{
		Type: models.ActivityCommentAdded,
	})
	require.NoError(t, err)

	page := resp.Data.(models.Page[models.ActivityLog])
	require.Len(t, page.Content, 1)
	require.Equal(t, int64(2), page.Content[0].ID)
}

func TestActivityLogs_DateRange(t *testing.T) {
	svc, _ := newTestServices(t, activitySeed())

	resp, err := svc.Activities.Logs(context.Background(), 0, 10, models.ActivityLogFilter{
		StartDate: "2026-03-11",
		EndDate:   "2026-03-11",
	})
	require.NoError(t, err)

	page := resp.Data.(models.Page[models.ActivityLog])
	require.Len(t, page.Content, 1)
	require.Equal(t, models.ActivityCommentAdded, page.Content[0].Type)
}

func TestActivityLogs_Pagination(t *testing.T) {
	svc, _ := newTestServices(t, activitySeed())

	resp, err := svc.Activities.Logs(context.Background(), 1, 2, models.ActivityLogFilter{})
	require.NoError(t, err)

	page := resp.Data.(models.Page[models.ActivityLog])
	require.Len(t, page.Content, 1)
	require.Equal(t, int64(3), page.TotalElements)
	require.Equal(t, 2, page.TotalPages)
}
