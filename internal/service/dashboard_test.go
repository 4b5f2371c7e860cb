package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store/memory"
)

// fiveTaskSeed mirrors the development fixture shape: two TODO, two
// IN_PROGRESS, one DONE, with one overdue task assigned to user 1.
func fiveTaskSeed(base time.Time) memory.Seed {
	return memory.Seed{
		Users: []models.User{
			{ID: 1, Username: "admin", Name: "Administrator"},
			{ID: 2, Username: "johndoe", Name: "John Doe"},
		},
		Tasks: []models.Task{
			{ID: 1, Title: "Auth", Status: models.StatusDone, AssigneeID: ptr(int64(1)), DueDate: base.AddDate(0, 0, -2)},
			{ID: 2, Title: "Dashboard UI", Status: models.StatusInProgress, AssigneeID: ptr(int64(2)), DueDate: base.AddDate(0, 0, 2)},
			{ID: 3, Title: "Task board", Status: models.StatusTodo, AssigneeID: ptr(int64(2)), DueDate: base.AddDate(0, 0, 5)},
			{ID: 4, Title: "Docs", Status: models.StatusTodo, AssigneeID: ptr(int64(1)), DueDate: base.AddDate(0, 0, -1)},
			{ID: 5, Title: "Login bug", Status: models.StatusInProgress, AssigneeID: ptr(int64(2)), DueDate: base.AddDate(0, 0, 1)},
		},
	}
}

func TestDashboardStats(t *testing.T) {
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	freezeNow(t, base)
	svc, _ := newTestServices(t, fiveTaskSeed(base))

	resp, err := svc.Dashboard.Stats(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, resp.Success)

	stats := resp.Data.(models.DashboardStats)
	require.Equal(t, 5, stats.TotalTasks)
	require.Equal(t, 2, stats.TodoTasks)
	require.Equal(t, 2, stats.InProgressTasks)
	require.Equal(t, 1, stats.CompletedTasks)
	require.Equal(t, 20, stats.CompletionRate)
	// Task 4 is past due and not DONE; task 1 is past due but DONE.
	require.Equal(t, 1, stats.OverdueTasks)
	require.Equal(t, 2, stats.MyTasksToday)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{})

	resp, err := svc.Dashboard.Stats(context.Background(), 1)
	require.NoError(t, err)

	stats := resp.Data.(models.DashboardStats)
	require.Equal(t, 0, stats.TotalTasks)
	require.Equal(t, 0, stats.CompletionRate)
}

func TestRatePercent(t *testing.T) {
	require.Equal(t, 0, ratePercent(0, 0))
	require.Equal(t, 0, ratePercent(5, 0))
	require.Equal(t, 20, ratePercent(1, 5))
	require.Equal(t, 33, ratePercent(1, 3))
	require.Equal(t, 67, ratePercent(2, 3))
	require.Equal(t, 100, ratePercent(3, 3))
}

func TestDashboardMyTasks_Buckets(t *testing.T) {
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	freezeNow(t, base)
	svc, _ := newTestServices(t, memory.Seed{
		Users: []models.User{{ID: 1, Username: "admin"}},
		Tasks: []models.Task{
			{ID: 1, Title: "due today", Status: models.StatusTodo, AssigneeID: ptr(int64(1)), DueDate: base.Add(4 * time.Hour)},
			{ID: 2, Title: "upcoming", Status: models.StatusTodo, AssigneeID: ptr(int64(1)), DueDate: base.AddDate(0, 0, 3)},
			{ID: 3, Title: "overdue", Status: models.StatusInProgress, AssigneeID: ptr(int64(1)), DueDate: base.AddDate(0, 0, -3)},
			{ID: 4, Title: "done late", Status: models.StatusDone, AssigneeID: ptr(int64(1)), DueDate: base.AddDate(0, 0, -3)},
			{ID: 5, Title: "not mine", Status: models.StatusTodo, AssigneeID: ptr(int64(2)), DueDate: base},
		},
	})

	resp, err := svc.Dashboard.MyTasks(context.Background(), 1)
	require.NoError(t, err)

	summary := resp.Data.(models.MyTaskSummary)
	require.Len(t, summary.TodayTasks, 1)
	require.Equal(t, "due today", summary.TodayTasks[0].Title)
	require.Len(t, summary.UpcomingTasks, 1)
	require.Equal(t, "upcoming", summary.UpcomingTasks[0].Title)
	// Completed tasks never count as overdue.
	require.Len(t, summary.OverdueTasks, 1)
	require.Equal(t, "overdue", summary.OverdueTasks[0].Title)
}

func TestDashboardTeamProgress(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "admin"},
		{ID: 2, Username: "johndoe"},
		{ID: 3, Username: "janedoe"},
	}
	svc, _ := newTestServices(t, memory.Seed{
		Users: users,
		Teams: []models.Team{
			{ID: 1, Name: "Engineering", Members: []models.User{users[0], users[1]}},
			{ID: 2, Name: "Design", Members: []models.User{users[2]}},
		},
		Tasks: []models.Task{
			{ID: 1, Status: models.StatusDone, AssigneeID: ptr(int64(1))},
			{ID: 2, Status: models.StatusTodo, AssigneeID: ptr(int64(2))},
			{ID: 3, Status: models.StatusTodo, AssigneeID: nil},
		},
	})

	resp, err := svc.Dashboard.TeamProgress(context.Background())
	require.NoError(t, err)

	progress := resp.Data.(map[string]int)
	require.Equal(t, 50, progress["Engineering"])
	// A team whose members hold no tasks reports zero, not an error.
	require.Equal(t, 0, progress["Design"])
}

func TestDashboardWeeklyTrend(t *testing.T) {
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	freezeNow(t, base)
	svc, _ := newTestServices(t, memory.Seed{
		Tasks: []models.Task{
			{ID: 1, Status: models.StatusTodo, CreatedAt: base.AddDate(0, 0, -2), UpdatedAt: base.AddDate(0, 0, -2)},
			{ID: 2, Status: models.StatusDone, CreatedAt: base.AddDate(0, 0, -6), UpdatedAt: base.AddDate(0, 0, -1)},
			{ID: 3, Status: models.StatusTodo, CreatedAt: base.AddDate(0, 0, -10), UpdatedAt: base.AddDate(0, 0, -10)},
		},
	})

	resp, err := svc.Dashboard.WeeklyTrend(context.Background())
	require.NoError(t, err)

	points := resp.Data.([]models.TrendPoint)
	require.Len(t, points, 7)
	// Oldest day first, today last.
	require.Equal(t, "2026-03-09", points[0].Date)
	require.Equal(t, "2026-03-15", points[6].Date)

	byDate := map[string]models.TrendPoint{}
	for _, p := range points {
		byDate[p.Date] = p
	}
	require.Equal(t, 1, byDate["2026-03-13"].Created)
	require.Equal(t, 1, byDate["2026-03-09"].Created)
	require.Equal(t, 1, byDate["2026-03-14"].Completed)
	// Task created outside the window contributes nothing.
	require.Equal(t, 0, byDate["2026-03-15"].Created)
}

func TestDashboardSearch_ThreeCollections(t *testing.T) {
	svc, _ := newTestServices(t, memory.Seed{
		Users: []models.User{{ID: 1, Username: "designlead", Name: "Dana"}},
		Teams: []models.Team{{ID: 1, Name: "Design", Description: "UI/UX"}},
		Tasks: []models.Task{{ID: 1, Title: "Design dashboard"}},
	})

	resp, err := svc.Dashboard.Search(context.Background(), "design")
	require.NoError(t, err)

	result := resp.Data.(models.SearchResult)
	require.Len(t, result.Tasks, 1)
	require.Len(t, result.Users, 1)
	require.Len(t, result.Teams, 1)

	resp, err = svc.Dashboard.Search(context.Background(), "nomatch")
	require.NoError(t, err)
	result = resp.Data.(models.SearchResult)
	require.Empty(t, result.Tasks)
	require.Empty(t, result.Users)
	require.Empty(t, result.Teams)
}

func TestDashboardStats_CacheInvalidatedByMutation(t *testing.T) {
	st := memory.New(memory.Seed{})
	svc := New(st, nil, nil, Options{StatsTTL: time.Minute})
	ctx := context.Background()

	resp, err := svc.Dashboard.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0, resp.Data.(models.DashboardStats).TotalTasks)

	_, err = svc.Tasks.Create(ctx, 1, models.CreateTaskRequest{Title: "invalidates cache"})
	require.NoError(t, err)

	resp, err = svc.Dashboard.Stats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Data.(models.DashboardStats).TotalTasks)
}
