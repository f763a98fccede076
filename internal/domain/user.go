package domain

import "time"

// User represents a chat user. Accounts are provisioned on first login by
// username only; there are no credentials.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;size:50;uniqueIndex" json:"username"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// LoginRequest is the create-or-get login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}
