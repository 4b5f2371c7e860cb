package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/query"
	"task-tracker-api/internal/realtime"
	"task-tracker-api/internal/store"
)

type taskService struct {
	store store.Store
	hub   *realtime.Hub
	audit *auditor
}

func (s *taskService) List(ctx context.Context, page, size int, filter models.TaskFilter) (models.Response, error) {
	page, size = normalizePaging(page, size)

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return models.Response{}, err
	}

	filtered := query.Filter(tasks, func(t models.Task) bool {
		return query.MatchTask(t, filter)
	})
	result := query.Paginate(filtered, page, size)

	byID, err := userIndex(ctx, s.store)
	if err != nil {
		return models.Response{}, err
	}
	result.Content = enrichTasks(result.Content, byID)

	return models.OK(msgSuccess, result), nil
}

func (s *taskService) Get(ctx context.Context, id int64) (models.Response, error) {
	task, err := s.store.GetTask(ctx, id)
	if errors.Is(err, store.ErrTaskNotFound) {
		return models.Fail(msgTaskNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	if err := s.resolveAssignee(ctx, &task); err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, task), nil
}

func (s *taskService) Create(ctx context.Context, actorID int64, req models.CreateTaskRequest) (models.Response, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		// New tasks always start as TODO regardless of caller input.
		Status:     models.StatusTodo,
		Priority:   priority,
		AssigneeID: req.AssigneeID,
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	} else {
		task.DueDate = now().AddDate(0, 0, 7)
	}

	created, err := s.store.CreateTask(ctx, task)
	if err != nil {
		return models.Response{}, err
	}
	if err := s.resolveAssignee(ctx, &created); err != nil {
		return models.Response{}, err
	}

	desc := fmt.Sprintf("Created task %q", created.Title)
	if err := s.audit.record(ctx, actorID, models.ActionCreatedTask, "task", created.ID, desc, models.ActivityTaskCreated, &created.ID); err != nil {
		return models.Response{}, err
	}
	s.broadcast(actorID, "task_created", created.ID)

	return models.OK(msgSuccess, created), nil
}

func (s *taskService) Update(ctx context.Context, actorID, id int64, req models.UpdateTaskRequest) (models.Response, error) {
	existing, err := s.store.GetTask(ctx, id)
	if errors.Is(err, store.ErrTaskNotFound) {
		return models.Fail(msgTaskNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return models.Fail(msgInvalidStatus), nil
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.Priority != nil {
		existing.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		existing.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		existing.DueDate = *req.DueDate
	}

	updated, err := s.store.UpdateTask(ctx, existing)
	if err != nil {
		return models.Response{}, err
	}
	if err := s.resolveAssignee(ctx, &updated); err != nil {
		return models.Response{}, err
	}

	desc := fmt.Sprintf("Updated task %q", updated.Title)
	if err := s.audit.record(ctx, actorID, models.ActionUpdatedTask, "task", updated.ID, desc, models.ActivityTaskUpdated, &updated.ID); err != nil {
		return models.Response{}, err
	}
	s.broadcast(actorID, "task_updated", updated.ID)

	return models.OK(msgSuccess, updated), nil
}

func (s *taskService) UpdateStatus(ctx context.Context, actorID, id int64, status models.TaskStatus) (models.Response, error) {
	if !models.ValidStatus(status) {
		return models.Fail(msgInvalidStatus), nil
	}

	existing, err := s.store.GetTask(ctx, id)
	if errors.Is(err, store.ErrTaskNotFound) {
		return models.Fail(msgTaskNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	existing.Status = status
	updated, err := s.store.UpdateTask(ctx, existing)
	if err != nil {
		return models.Response{}, err
	}
	if err := s.resolveAssignee(ctx, &updated); err != nil {
		return models.Response{}, err
	}

	desc := fmt.Sprintf("Moved %q to %s", updated.Title, status)
	if err := s.audit.record(ctx, actorID, models.ActionUpdatedStatus, "task", updated.ID, desc, models.ActivityStatusChanged, &updated.ID); err != nil {
		return models.Response{}, err
	}
	s.broadcast(actorID, "task_status_changed", updated.ID)

	return models.OK(msgSuccess, updated), nil
}

func (s *taskService) Delete(ctx context.Context, actorID, id int64) (models.Response, error) {
	task, err := s.store.GetTask(ctx, id)
	if errors.Is(err, store.ErrTaskNotFound) {
		return models.Fail(msgTaskNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	if err := s.store.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Fail(msgTaskNotFound), nil
		}
		return models.Response{}, err
	}

	desc := fmt.Sprintf("Deleted task %q", task.Title)
	if err := s.audit.record(ctx, actorID, models.ActionDeletedTask, "task", id, desc, models.ActivityTaskDeleted, &id); err != nil {
		return models.Response{}, err
	}
	s.broadcast(actorID, "task_deleted", id)

	return models.OK(msgSuccess, nil), nil
}

func (s *taskService) Search(ctx context.Context, q string, page, size int) (models.Response, error) {
	return s.List(ctx, page, size, models.TaskFilter{Search: q})
}

func (s *taskService) resolveAssignee(ctx context.Context, task *models.Task) error {
	if task.AssigneeID == nil {
		return nil
	}
	user, err := s.store.GetUser(ctx, *task.AssigneeID)
	if errors.Is(err, store.ErrUserNotFound) {
		// Dangling weak reference; leave the assignee unresolved.
		return nil
	}
	if err != nil {
		return err
	}
	task.Assignee = &user
	return nil
}

func (s *taskService) broadcast(actorID int64, eventType string, taskID int64) {
	if s.hub == nil {
		return
	}
	evt := map[string]any{
		"type":    eventType,
		"taskId":  taskID,
		"userId":  actorID,
		"version": 1,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		s.hub.Broadcast(actorID, bytes)
	}
}
