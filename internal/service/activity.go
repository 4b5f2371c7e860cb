package service

import (
	"context"
	"time"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/query"
	"task-tracker-api/internal/store"
)

type activityService struct {
	store store.Store
}

func (s *activityService) List(ctx context.Context, page, size int) (models.Response, error) {
	return s.list(ctx, page, size, nil)
}

func (s *activityService) My(ctx context.Context, actorID int64, page, size int) (models.Response, error) {
	return s.list(ctx, page, size, func(a models.Activity) bool {
		return a.UserID == actorID
	})
}

func (s *activityService) list(ctx context.Context, page, size int, pred func(models.Activity) bool) (models.Response, error) {
	page, size = normalizePaging(page, size)

	activities, err := s.store.ListActivities(ctx)
	if err != nil {
		return models.Response{}, err
	}
	if pred != nil {
		activities = query.Filter(activities, pred)
	}

	// Most recent first, then page.
	activities = query.SortNewestFirst(activities, func(a models.Activity) time.Time {
		return a.CreatedAt
	})
	result := query.Paginate(activities, page, size)

	byID, err := userIndex(ctx, s.store)
	if err != nil {
		return models.Response{}, err
	}
	for i := range result.Content {
		if u, ok := byID[result.Content[i].UserID]; ok {
			result.Content[i].User = &u
		}
	}

	return models.OK(msgSuccess, result), nil
}

func (s *activityService) Logs(ctx context.Context, page, size int, filter models.ActivityLogFilter) (models.Response, error) {
	page, size = normalizePaging(page, size)

	logs, err := s.store.ListActivityLogs(ctx)
	if err != nil {
		return models.Response{}, err
	}

	logs = query.Filter(logs, func(l models.ActivityLog) bool {
		return query.MatchActivityLog(l, filter)
	})
	logs = query.SortNewestFirst(logs, func(l models.ActivityLog) time.Time {
		return l.CreatedAt
	})

	return models.OK(msgSuccess, query.Paginate(logs, page, size)), nil
}
