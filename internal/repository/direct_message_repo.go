package repository

import (
	"github.com/accordchat/accord-backend/internal/domain"
	"gorm.io/gorm"
)

// DirectMessageRepository direct message data access interface
type DirectMessageRepository interface {
	Create(msg *domain.DirectMessage) error
	FindByID(id int64) (*domain.DirectMessage, error)
	FindConversation(userA, userB int64, limit int) ([]*domain.DirectMessage, error)
	MarkAsRead(id int64) error
	MarkConversationAsRead(recipientID, senderID int64) (int64, error)
	CountUnread(recipientID int64) (int64, error)
	CountUnreadFromSender(recipientID, senderID int64) (int64, error)
	FindPartnerIDs(userID int64) ([]int64, error)
}

type directMessageRepository struct {
	db *gorm.DB
}

// NewDirectMessageRepository creates a new DirectMessageRepository
func NewDirectMessageRepository(db *gorm.DB) DirectMessageRepository {
	return &directMessageRepository{db: db}
}

// Create persists a direct message; the ID is assigned by the database
func (r *directMessageRepository) Create(msg *domain.DirectMessage) error {
	return r.db.Create(msg).Error
}

// FindByID finds a message by ID; returns (nil, nil) when absent
func (r *directMessageRepository) FindByID(id int64) (*domain.DirectMessage, error) {
	var msg domain.DirectMessage
	err := r.db.Where("id = ?", id).First(&msg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// FindConversation returns the newest messages exchanged between two users
// in either direction, newest first. Ties on timestamp break by id so
// pagination is deterministic.
func (r *directMessageRepository) FindConversation(userA, userB int64, limit int) ([]*domain.DirectMessage, error) {
	var messages []*domain.DirectMessage
	err := r.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// MarkAsRead flips the read flag on a single message. Idempotent: a
// second call matches zero rows.
func (r *directMessageRepository) MarkAsRead(id int64) error {
	return r.db.Model(&domain.DirectMessage{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true).Error
}

// MarkConversationAsRead flips every unread message from one sender to one
// recipient in a single update and returns the number of rows affected.
func (r *directMessageRepository) MarkConversationAsRead(recipientID, senderID int64) (int64, error) {
	result := r.db.Model(&domain.DirectMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = ?", recipientID, senderID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// CountUnread counts unread messages addressed to a user across all senders
func (r *directMessageRepository) CountUnread(recipientID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.DirectMessage{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// CountUnreadFromSender counts unread messages from one specific sender
func (r *directMessageRepository) CountUnreadFromSender(recipientID, senderID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.DirectMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = ?", recipientID, senderID, false).
		Count(&count).Error
	return count, err
}

// FindPartnerIDs returns the distinct user IDs this user has exchanged
// messages with, in either direction
func (r *directMessageRepository) FindPartnerIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&domain.DirectMessage{}).
		Raw(`SELECT DISTINCT CASE WHEN sender_id = ? THEN recipient_id ELSE sender_id END AS partner_id
		     FROM direct_messages
		     WHERE sender_id = ? OR recipient_id = ?`, userID, userID, userID).
		Scan(&ids).Error
	return ids, err
}
