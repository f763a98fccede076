package domain

import "time"

// Channel represents a public chat channel
type Channel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:50;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;size:500" json:"description"`
	CreatedBy   string    `gorm:"column:created_by;size:50" json:"createdBy"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Channel) TableName() string {
	return "channels"
}

// CreateChannelRequest is the channel creation payload
type CreateChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
}
