package service

import (
	"context"
	"time"

	"task-tracker-api/internal/auth"
	"task-tracker-api/internal/cache"
	"task-tracker-api/internal/models"
	"task-tracker-api/internal/realtime"
	"task-tracker-api/internal/store"
)

// Shared envelope messages.
const (
	msgSuccess         = "Success"
	msgTaskNotFound    = "Task not found"
	msgCommentNotFound = "Comment not found"
	msgTeamNotFound    = "Team not found"
	msgUserNotFound    = "User not found"
	msgInvalidStatus   = "Invalid task status"
)

// now is a small indirection to allow test stubbing if needed.
var now = time.Now

// Options tunes service behavior.
type Options struct {
	// StatsTTL bounds how long dashboard aggregations may be served from
	// cache. Zero disables caching.
	StatsTTL time.Duration
}

// Services bundles the local, store-backed implementations of every
// capability contract, wired together at construction time.
type Services struct {
	Tasks      TaskAPI
	Comments   CommentAPI
	Teams      TeamAPI
	Users      UserAPI
	Dashboard  DashboardAPI
	Activities ActivityAPI
}

// New builds the local service set over st. The hub may be nil, in which case
// no realtime events are emitted.
func New(st store.Store, hub *realtime.Hub, tokens *auth.TokenManager, opts Options) *Services {
	dash := &dashboardService{
		store:    st,
		statsTTL: opts.StatsTTL,
		cache:    cache.NewSimpleCache[string, models.Response](cache.Options{ConcurrencySafe: true}),
	}
	audit := &auditor{store: st, invalidate: dash.invalidate}

	return &Services{
		Tasks:      &taskService{store: st, hub: hub, audit: audit},
		Comments:   &commentService{store: st, audit: audit},
		Teams:      &teamService{store: st},
		Users:      &userService{store: st, tokens: tokens},
		Dashboard:  dash,
		Activities: &activityService{store: st},
	}
}

// auditor appends to both audit streams and invalidates dashboard caches.
// Activity and ActivityLog stay separate streams on purpose: the reporting
// path filters on the typed enum while the feed shows free-form actions.
type auditor struct {
	store      store.Store
	invalidate func()
}

func (a *auditor) record(ctx context.Context, actorID int64, action, targetType string, targetID int64, description string, logType models.ActivityType, taskID *int64) error {
	_, err := a.store.AppendActivity(ctx, models.Activity{
		UserID:      actorID,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		Description: description,
	})
	if err != nil {
		return err
	}
	_, err = a.store.AppendActivityLog(ctx, models.ActivityLog{
		Type:    logType,
		UserID:  actorID,
		TaskID:  taskID,
		Message: description,
	})
	if err != nil {
		return err
	}
	if a.invalidate != nil {
		a.invalidate()
	}
	return nil
}

// userIndex loads every user keyed by id, for denormalizing weak references.
func userIndex(ctx context.Context, st store.UserStore) (map[int64]models.User, error) {
	users, err := st.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// enrichTask resolves the assignee weak reference against the index.
func enrichTask(t models.Task, byID map[int64]models.User) models.Task {
	if t.AssigneeID != nil {
		if u, ok := byID[*t.AssigneeID]; ok {
			t.Assignee = &u
		}
	}
	return t
}

func enrichTasks(tasks []models.Task, byID map[int64]models.User) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = enrichTask(t, byID)
	}
	return out
}

// normalizePaging clamps page/size to sane values; pages are 0-based.
func normalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
