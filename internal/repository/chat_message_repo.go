package repository

import (
	"github.com/accordchat/accord-backend/internal/domain"
	"gorm.io/gorm"
)

// ChatMessageRepository channel message data access interface
type ChatMessageRepository interface {
	Create(msg *domain.ChatMessage) error
	FindRecent(limit int) ([]*domain.ChatMessage, error)
	FindRecentByChannel(channelID int64, limit int) ([]*domain.ChatMessage, error)
}

type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new ChatMessageRepository
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// Create persists a chat message
func (r *chatMessageRepository) Create(msg *domain.ChatMessage) error {
	return r.db.Create(msg).Error
}

// FindRecent returns the newest messages across all channels,
// newest first
func (r *chatMessageRepository) FindRecent(limit int) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	err := r.db.Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// FindRecentByChannel returns the newest messages in one channel,
// newest first
func (r *chatMessageRepository) FindRecentByChannel(channelID int64, limit int) ([]*domain.ChatMessage, error) {
	var messages []*domain.ChatMessage
	err := r.db.Where("channel_id = ?", channelID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
