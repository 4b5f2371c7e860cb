package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker-api/internal/models"
)

func TestPaginate_Invariants(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(items, 0, 3)
	require.Equal(t, []int{1, 2, 3}, page.Content)
	require.Equal(t, int64(7), page.TotalElements)
	require.Equal(t, 3, page.TotalPages)

	page = Paginate(items, 2, 3)
	require.Equal(t, []int{7}, page.Content)
	require.LessOrEqual(t, len(page.Content), page.Size)
}

func TestPaginate_BeyondEnd(t *testing.T) {
	page := Paginate([]int{1, 2}, 5, 10)
	require.Empty(t, page.Content)
	require.NotNil(t, page.Content)
	require.Equal(t, int64(2), page.TotalElements)
	require.Equal(t, 1, page.TotalPages)
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate([]int{}, 0, 10)
	require.Empty(t, page.Content)
	require.Equal(t, int64(0), page.TotalElements)
	require.Equal(t, 0, page.TotalPages)
}

func TestPaginate_CopiesContent(t *testing.T) {
	items := []int{1, 2, 3}
	page := Paginate(items, 0, 3)
	page.Content[0] = 99
	require.Equal(t, 1, items[0])
}

func TestMatchTask_SearchIsCaseInsensitive(t *testing.T) {
	task := models.Task{Title: "Fix login bug", Description: "Resolve the login issue on mobile"}

	require.True(t, MatchTask(task, models.TaskFilter{Search: "LOGIN"}))
	require.True(t, MatchTask(task, models.TaskFilter{Search: "mobile"}))
	require.False(t, MatchTask(task, models.TaskFilter{Search: "payment"}))
}

func TestMatchTask_FiltersCombineWithAnd(t *testing.T) {
	assignee := int64(2)
	task := models.Task{Title: "Fix login bug", Status: models.StatusInProgress, AssigneeID: &assignee}

	require.True(t, MatchTask(task, models.TaskFilter{Status: models.StatusInProgress, Search: "login", AssigneeID: &assignee}))
	require.False(t, MatchTask(task, models.TaskFilter{Status: models.StatusDone, Search: "login"}))

	other := int64(7)
	require.False(t, MatchTask(task, models.TaskFilter{AssigneeID: &other}))
}

func TestMatchTask_EmptyFilterMatchesAll(t *testing.T) {
	require.True(t, MatchTask(models.Task{Title: "anything"}, models.TaskFilter{}))
}

func TestMatchActivityLog_DateRangeInclusive(t *testing.T) {
	log := models.ActivityLog{
		Type:      models.ActivityTaskCreated,
		UserID:    1,
		CreatedAt: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
	}

	// Same-day bounds include the full end day.
	require.True(t, MatchActivityLog(log, models.ActivityLogFilter{StartDate: "2026-03-15", EndDate: "2026-03-15"}))
	require.True(t, MatchActivityLog(log, models.ActivityLogFilter{StartDate: "2026-03-01", EndDate: "2026-03-31"}))
	require.False(t, MatchActivityLog(log, models.ActivityLogFilter{StartDate: "2026-03-16"}))
	require.False(t, MatchActivityLog(log, models.ActivityLogFilter{EndDate: "2026-03-14"}))
}

func TestMatchActivityLog_TypedFilters(t *testing.T) {
	taskID := int64(3)
	log := models.ActivityLog{Type: models.ActivityStatusChanged, UserID: 2, TaskID: &taskID}

	require.True(t, MatchActivityLog(log, models.ActivityLogFilter{Type: models.ActivityStatusChanged}))
	require.False(t, MatchActivityLog(log, models.ActivityLogFilter{Type: models.ActivityTaskCreated}))

	uid := int64(2)
	require.True(t, MatchActivityLog(log, models.ActivityLogFilter{UserID: &uid}))

	otherTask := int64(9)
	require.False(t, MatchActivityLog(log, models.ActivityLogFilter{TaskID: &otherTask}))
}

func TestParseDateFlexible(t *testing.T) {
	d, ok := ParseDateFlexible("2026-03-15")
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDateFlexible("2026-03-15T10:00:00Z")
	require.True(t, ok)

	_, ok = ParseDateFlexible("15/03/2026")
	require.False(t, ok)
}

func TestSortNewestFirst_StableOnTies(t *testing.T) {
	base := time.Now()
	comments := []models.Comment{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(time.Hour)},
		{ID: 3, CreatedAt: base},
	}

	sorted := SortNewestFirst(comments, func(c models.Comment) time.Time { return c.CreatedAt })
	require.Equal(t, int64(2), sorted[0].ID)
	require.Equal(t, int64(1), sorted[1].ID)
	require.Equal(t, int64(3), sorted[2].ID)

	// Input is left untouched.
	require.Equal(t, int64(1), comments[0].ID)
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}
