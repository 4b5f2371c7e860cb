package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/query"
	"task-tracker-api/internal/store"
)

type commentService struct {
	store store.Store
	audit *auditor
}

func (s *commentService) ListByTask(ctx context.Context, taskID int64, page, size int, sort string) (models.Response, error) {
	page, size = normalizePaging(page, size)

	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Fail(msgTaskNotFound), nil
		}
		return models.Response{}, err
	}

	comments, err := s.store.ListComments(ctx, taskID)
	if err != nil {
		return models.Response{}, err
	}

	at := func(c models.Comment) time.Time { return c.CreatedAt }
	switch sort {
	case models.SortOldest:
		comments = query.SortOldestFirst(comments, at)
	default:
		comments = query.SortNewestFirst(comments, at)
	}

	result := query.Paginate(comments, page, size)

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

func (s *commentService) Create(ctx context.Context, actorID, taskID int64, req models.CreateCommentRequest) (models.Response, error) {
	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Fail(msgTaskNotFound), nil
		}
		return models.Response{}, err
	}

	created, err := s.store.CreateComment(ctx, models.Comment{
		TaskID:  taskID,
		UserID:  actorID,
		Content: req.Content,
	})
	if err != nil {
		return models.Response{}, err
	}

	if user, err := s.store.GetUser(ctx, actorID); err == nil {
		created.User = &user
	}

	desc := fmt.Sprintf("Commented on task #%d", taskID)
	if err := s.audit.record(ctx, actorID, models.ActionAddedComment, "comment", created.ID, desc, models.ActivityCommentAdded, &taskID); err != nil {
		return models.Response{}, err
	}

	return models.OK(msgSuccess, created), nil
}

func (s *commentService) Update(ctx context.Context, taskID, commentID int64, content string) (models.Response, error) {
	existing, err := s.store.GetComment(ctx, commentID)
	if errors.Is(err, store.ErrCommentNotFound) {
		return models.Fail(msgCommentNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	// Scoped by task id so a comment cannot be edited through another task.
	if existing.TaskID != taskID {
		return models.Fail(msgCommentNotFound), nil
	}

	existing.Content = content
	updated, err := s.store.UpdateComment(ctx, existing)
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, updated), nil
}

func (s *commentService) Delete(ctx context.Context, taskID, commentID int64) (models.Response, error) {
	err := s.store.DeleteComment(ctx, taskID, commentID)
	if errors.Is(err, store.ErrCommentNotFound) {
		return models.Fail(msgCommentNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, nil), nil
}
