// Package store defines the storage capability interfaces the domain
// services depend on. Implementations are selected once at composition time:
// a seeded in-memory store for dev/tests and a GORM-backed store for
// persistence.
package store

import (
	"context"

	"task-tracker-api/internal/models"
)

// TaskStore exposes task persistence. ListTasks preserves insertion order.
// DeleteTask cascades: every comment referencing the task is removed too.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// CommentStore exposes comment persistence. Deletion is scoped by both task
// and comment id so a comment cannot be deleted through another task.
type CommentStore interface {
	ListComments(ctx context.Context, taskID int64) ([]models.Comment, error)
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, taskID, commentID int64) error
}

// TeamStore exposes team persistence. Membership is set-like: AddMember with
// a present member and RemoveMember with an absent one are no-ops.
type TeamStore interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id int64) (models.Team, error)
	CreateTeam(ctx context.Context, team models.Team) (models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) (models.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	AddMember(ctx context.Context, teamID, userID int64) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
}

// UserStore exposes user persistence.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ActivityStore is the append-only primary audit trail.
type ActivityStore interface {
	ListActivities(ctx context.Context) ([]models.Activity, error)
	AppendActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
}

// ActivityLogStore is the append-only reporting audit trail.
type ActivityLogStore interface {
	ListActivityLogs(ctx context.Context) ([]models.ActivityLog, error)
	AppendActivityLog(ctx context.Context, log models.ActivityLog) (models.ActivityLog, error)
}

// Store composes every storage capability.
type Store interface {
	TaskStore
	CommentStore
	TeamStore
	UserStore
	ActivityStore
	ActivityLogStore
}
