package models

import (
	"time"
)

// Team represents a team and its member users. Membership is set-like:
// adding a present member or removing an absent one is a no-op.
type Team struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Members     []User    `json:"members" gorm:"many2many:team_members"`
}

// TableName specifies the table name for Team Model
func (Team) TableName() string {
	return "teams"
}

// CreateTeamRequest represents the payload for creating a team
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateTeamRequest represents a partial team update
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
