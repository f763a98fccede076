package domain

import "time"

// DefaultChannelID is the seeded "general" channel every message falls
// back to when no channel is given.
const DefaultChannelID int64 = 1

// ChatMessage represents a broadcast message in a channel
type ChatMessage struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;size:50;index" json:"username"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Timestamp time.Time `gorm:"column:timestamp;index" json:"timestamp"`
	ChannelID int64     `gorm:"column:channel_id;index" json:"channelId"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// SendChatMessageRequest is the channel message payload
type SendChatMessageRequest struct {
	Username  string `json:"username"`
	Content   string `json:"content"`
	ChannelID int64  `json:"channelId"`
}
