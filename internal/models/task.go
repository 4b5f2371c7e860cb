package models

import (
	"time"
)

// TaskStatus represents the workflow status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// ValidStatus reports whether s is one of the known workflow statuses.
// Any status may follow any other; there is no transition graph.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Task represents a task in the system. AssigneeID is a weak reference to a
// User; Assignee is denormalized at read time and never persisted.
type Task struct {
	ID          int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'TODO'"`
	Priority    TaskPriority `json:"priority" gorm:"default:'MEDIUM'"`
	AssigneeID  *int64       `json:"assigneeId,omitempty" gorm:"column:assignee_id;index"`
	Assignee    *User        `json:"assignee,omitempty" gorm:"-"`
	DueDate     time.Time    `json:"dueDate" gorm:"column:due_date"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// CreateTaskRequest represents the request payload for creating a task.
// Status is intentionally absent: new tasks always start as TODO.
type CreateTaskRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  *int64       `json:"assigneeId"`
	DueDate     *time.Time   `json:"dueDate"`
}

// UpdateTaskRequest represents a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	AssigneeID  *int64        `json:"assigneeId"`
	DueDate     *time.Time    `json:"dueDate"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status" binding:"required"`
}

// TaskFilter holds the optional list filters; zero values match everything.
// Filters combine with logical AND.
type TaskFilter struct {
	Status     TaskStatus
	Search     string
	AssigneeID *int64
}
