package models

import (
	"time"
)

// UserRole gates authorization in calling code; it is not enforced here.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User represents a user in the system
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"unique;not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role" gorm:"default:'USER'"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// UpdateUserRequest represents a partial profile update; identity fields
// (id, username) are immutable and intentionally absent.
type UpdateUserRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

// WithdrawRequest re-checks the password before removing the account.
type WithdrawRequest struct {
	Password string `json:"password" binding:"required"`
}
