package models

import (
	"time"
)

// Activity action tags. The column is free-form; these are the values the
// services write.
const (
	ActionCreatedTask   = "created_task"
	ActionUpdatedTask   = "updated_task"
	ActionUpdatedStatus = "updated_status"
	ActionDeletedTask   = "deleted_task"
	ActionAddedComment  = "added_comment"
)

// Activity is an append-only audit record describing a user action on an
// entity. Normal operations never mutate or delete one.
type Activity struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64     `json:"userId" gorm:"column:user_id;index"`
	User        *User     `json:"user,omitempty" gorm:"-"`
	Action      string    `json:"action"`
	TargetType  string    `json:"targetType" gorm:"column:target_type"`
	TargetID    int64     `json:"targetId" gorm:"column:target_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for Activity Model
func (Activity) TableName() string {
	return "activities"
}

// ActivityType is the typed action enum of the reporting audit stream.
type ActivityType string

const (
	ActivityTaskCreated   ActivityType = "TASK_CREATED"
	ActivityTaskUpdated   ActivityType = "TASK_UPDATED"
	ActivityStatusChanged ActivityType = "STATUS_CHANGED"
	ActivityCommentAdded  ActivityType = "COMMENT_ADDED"
	ActivityTaskDeleted   ActivityType = "TASK_DELETED"
)

// ActivityLog is the reporting-path audit record. It overlaps semantically
// with Activity but the two streams are kept separate; see DESIGN.md.
type ActivityLog struct {
	ID        int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Type      ActivityType `json:"type" gorm:"index"`
	UserID    int64        `json:"userId" gorm:"column:user_id;index"`
	TaskID    *int64       `json:"taskId,omitempty" gorm:"column:task_id;index"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TableName specifies the table name for ActivityLog Model
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityLogFilter narrows the reporting listing; zero values match
// everything. Date bounds are inclusive.
type ActivityLogFilter struct {
	Type      ActivityType
	UserID    *int64
	TaskID    *int64
	StartDate string
	EndDate   string
}
