// Package service implements the domain operations behind the REST API.
// Every operation returns the uniform response envelope; the error return is
// reserved for unexpected/infrastructure failures, which handlers degrade to
// a generic failure envelope. Expected failures (not found, validation) are
// already resolved into failure envelopes here.
package service

import (
	"context"

	"task-tracker-api/internal/models"
)

// TaskAPI is the task capability contract. The local implementation runs
// against a store.Store; internal/client provides a remote implementation
// over HTTP with the same semantics. The implementation is selected once at
// composition time.
type TaskAPI interface {
	List(ctx context.Context, page, size int, filter models.TaskFilter) (models.Response, error)
	Get(ctx context.Context, id int64) (models.Response, error)
	Create(ctx context.Context, actorID int64, req models.CreateTaskRequest) (models.Response, error)
	Update(ctx context.Context, actorID, id int64, req models.UpdateTaskRequest) (models.Response, error)
	UpdateStatus(ctx context.Context, actorID, id int64, status models.TaskStatus) (models.Response, error)
	Delete(ctx context.Context, actorID, id int64) (models.Response, error)
	Search(ctx context.Context, query string, page, size int) (models.Response, error)
}

// CommentAPI is the comment capability contract.
type CommentAPI interface {
	ListByTask(ctx context.Context, taskID int64, page, size int, sort string) (models.Response, error)
	Create(ctx context.Context, actorID, taskID int64, req models.CreateCommentRequest) (models.Response, error)
	Update(ctx context.Context, taskID, commentID int64, content string) (models.Response, error)
	Delete(ctx context.Context, taskID, commentID int64) (models.Response, error)
}

// TeamAPI is the team capability contract.
type TeamAPI interface {
	List(ctx context.Context) (models.Response, error)
	Get(ctx context.Context, id int64) (models.Response, error)
	Members(ctx context.Context, teamID int64) (models.Response, error)
	Create(ctx context.Context, req models.CreateTeamRequest) (models.Response, error)
	Update(ctx context.Context, id int64, req models.UpdateTeamRequest) (models.Response, error)
	Delete(ctx context.Context, id int64) (models.Response, error)
	AddMember(ctx context.Context, teamID, userID int64) (models.Response, error)
	RemoveMember(ctx context.Context, teamID, userID int64) (models.Response, error)
}

// UserAPI covers authentication and user management.
type UserAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Response, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.Response, error)
	Me(ctx context.Context, actorID int64) (models.Response, error)
	List(ctx context.Context) (models.Response, error)
	Available(ctx context.Context) (models.Response, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.Response, error)
	Withdraw(ctx context.Context, actorID int64, password string) (models.Response, error)
}

// DashboardAPI computes aggregations on demand from the live collections.
type DashboardAPI interface {
	Stats(ctx context.Context, actorID int64) (models.Response, error)
	MyTasks(ctx context.Context, actorID int64) (models.Response, error)
	TeamProgress(ctx context.Context) (models.Response, error)
	WeeklyTrend(ctx context.Context) (models.Response, error)
	Search(ctx context.Context, query string) (models.Response, error)
}

// ActivityAPI serves both audit streams.
type ActivityAPI interface {
	List(ctx context.Context, page, size int) (models.Response, error)
	My(ctx context.Context, actorID int64, page, size int) (models.Response, error)
	Logs(ctx context.Context, page, size int, filter models.ActivityLogFilter) (models.Response, error)
}
