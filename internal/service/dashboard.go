package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"task-tracker-api/internal/cache"
	"task-tracker-api/internal/models"
	"task-tracker-api/internal/query"
	"task-tracker-api/internal/store"
)

// dashboardService computes aggregations on demand from the live collections.
// Results are cached briefly; any task mutation clears the cache.
type dashboardService struct {
	store    store.Store
	statsTTL time.Duration
	cache    *cache.SimpleCache[string, models.Response]
}

func (s *dashboardService) invalidate() {
	s.cache.Clear()
}

func (s *dashboardService) cached(key string, compute func() (models.Response, error)) (models.Response, error) {
	if s.statsTTL <= 0 {
		return compute()
	}
	if resp, ok := s.cache.Get(key); ok {
		return resp, nil
	}
	resp, err := compute()
	if err != nil {
		return models.Response{}, err
	}
	s.cache.Set(key, resp, s.statsTTL)
	return resp, nil
}

func (s *dashboardService) Stats(ctx context.Context, actorID int64) (models.Response, error) {
	return s.cached(fmt.Sprintf("stats:%d", actorID), func() (models.Response, error) {
		tasks, err := s.store.ListTasks(ctx)
		if err != nil {
			return models.Response{}, err
		}

		stats := models.DashboardStats{TotalTasks: len(tasks)}
		today := query.StartOfDay(now())
		for _, t := range tasks {
			switch t.Status {
			case models.StatusTodo:
				stats.TodoTasks++
			case models.StatusInProgress:
				stats.InProgressTasks++
			case models.StatusDone:
				stats.CompletedTasks++
			}
			if query.StartOfDay(t.DueDate).Before(today) && t.Status != models.StatusDone {
				stats.OverdueTasks++
			}
			if t.AssigneeID != nil && *t.AssigneeID == actorID {
				stats.MyTasksToday++
			}
		}
		stats.CompletionRate = ratePercent(stats.CompletedTasks, stats.TotalTasks)

		return models.OK(msgSuccess, stats), nil
	})
}

func (s *dashboardService) MyTasks(ctx context.Context, actorID int64) (models.Response, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return models.Response{}, err
	}
	byID, err := userIndex(ctx, s.store)
	if err != nil {
		return models.Response{}, err
	}

	summary := models.MyTaskSummary{
		TodayTasks:    []models.Task{},
		UpcomingTasks: []models.Task{},
		OverdueTasks:  []models.Task{},
	}
	today := query.StartOfDay(now())
	for _, t := range tasks {
		if t.AssigneeID == nil || *t.AssigneeID != actorID {
			continue
		}
		t = enrichTask(t, byID)
		due := query.StartOfDay(t.DueDate)
		switch {
		case due.Equal(today):
			summary.TodayTasks = append(summary.TodayTasks, t)
		case due.After(today) && t.Status != models.StatusDone:
			summary.UpcomingTasks = append(summary.UpcomingTasks, t)
		case due.Before(today) && t.Status != models.StatusDone:
			summary.OverdueTasks = append(summary.OverdueTasks, t)
		}
	}

	return models.OK(msgSuccess, summary), nil
}

func (s *dashboardService) TeamProgress(ctx context.Context) (models.Response, error) {
	return s.cached("team-progress", func() (models.Response, error) {
		teams, err := s.store.ListTeams(ctx)
		if err != nil {
			return models.Response{}, err
		}
		tasks, err := s.store.ListTasks(ctx)
		if err != nil {
			return models.Response{}, err
		}

		progress := make(map[string]int, len(teams))
		for _, team := range teams {
			memberIDs := make(map[int64]struct{}, len(team.Members))
			for _, m := range team.Members {
				memberIDs[m.ID] = struct{}{}
			}

			total, done := 0, 0
			for _, t := range tasks {
				if t.AssigneeID == nil {
					continue
				}
				if _, ok := memberIDs[*t.AssigneeID]; !ok {
					continue
				}
				total++
				if t.Status == models.StatusDone {
					done++
				}
			}
			progress[team.Name] = ratePercent(done, total)
		}

		return models.OK(msgSuccess, progress), nil
	})
}

func (s *dashboardService) WeeklyTrend(ctx context.Context) (models.Response, error) {
	return s.cached("weekly-trend", func() (models.Response, error) {
		tasks, err := s.store.ListTasks(ctx)
		if err != nil {
			return models.Response{}, err
		}

		today := query.StartOfDay(now())
		points := make([]models.TrendPoint, 0, 7)
		for d := 6; d >= 0; d-- {
			day := today.AddDate(0, 0, -d)
			point := models.TrendPoint{Date: day.Format("2006-01-02")}
			for _, t := range tasks {
				if query.StartOfDay(t.CreatedAt).Equal(day) {
					point.Created++
				}
				if t.Status == models.StatusDone && query.StartOfDay(t.UpdatedAt).Equal(day) {
					point.Completed++
				}
			}
			points = append(points, point)
		}

		return models.OK(msgSuccess, points), nil
	})
}

func (s *dashboardService) Search(ctx context.Context, q string) (models.Response, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return models.Response{}, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return models.Response{}, err
	}
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return models.Response{}, err
	}

	result := models.SearchResult{
		Tasks: query.Filter(tasks, func(t models.Task) bool {
			return query.MatchText(q, t.Title, t.Description)
		}),
		Users: query.Filter(users, func(u models.User) bool {
			return query.MatchText(q, u.Name, u.Username, u.Email)
		}),
		Teams: query.Filter(teams, func(t models.Team) bool {
			return query.MatchText(q, t.Name, t.Description)
		}),
	}

	return models.OK(msgSuccess, result), nil
}

// ratePercent is the guarded completion-rate math: 0 when the denominator
// collection is empty.
func ratePercent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
