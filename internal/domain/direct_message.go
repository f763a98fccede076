package domain

import "time"

// DirectMessage represents a point-to-point message between two users.
// Read only ever transitions false -> true; rows are never deleted.
type DirectMessage struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderID    int64     `gorm:"column:sender_id;index" json:"senderId"`
	RecipientID int64     `gorm:"column:recipient_id;index" json:"recipientId"`
	Content     string    `gorm:"column:content;type:text" json:"content"`
	Timestamp   time.Time `gorm:"column:timestamp;index" json:"timestamp"`
	// READ is a reserved word in MySQL, hence the is_read column
	Read bool `gorm:"column:is_read;default:false" json:"read"`
}

func (DirectMessage) TableName() string {
	return "direct_messages"
}

// SendDirectMessageRequest is the DM send payload
type SendDirectMessageRequest struct {
	SenderUsername    string `json:"senderUsername"`
	RecipientUsername string `json:"recipientUsername"`
	Content           string `json:"content"`
}

// MarkConversationReadRequest is the conversation mark-as-read payload
type MarkConversationReadRequest struct {
	RecipientUsername string `json:"recipientUsername"`
	SenderUsername    string `json:"senderUsername"`
}
