package models

import (
	"time"
)

// Comment represents a comment on a task. Its lifecycle is bound to the
// parent task: deleting the task removes every comment referencing it.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TaskID    int64     `json:"taskId" gorm:"column:task_id;index;not null"`
	UserID    int64     `json:"userId" gorm:"column:user_id;not null"`
	User      *User     `json:"user,omitempty" gorm:"-"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Comment Model
func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest represents the payload for creating a comment
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Comment list sort orders.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)
