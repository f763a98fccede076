package service

import (
	"strings"
	"time"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/repository"
)

const (
	defaultConversationLimit = 50
	maxConversationLimit     = 500
)

// DirectMessageNotifier pushes a freshly persisted message to the
// recipient's live sessions. Implementations must be fire-and-forget:
// delivery failure never surfaces to the sender.
type DirectMessageNotifier interface {
	NotifyDirectMessage(recipientID int64, msg *domain.DirectMessage)
}

// DirectMessageService business logic for direct messages
type DirectMessageService interface {
	SendMessage(senderUsername, recipientUsername, content string) (*domain.DirectMessage, error)
	GetConversation(username1, username2 string, limit int) ([]*domain.DirectMessage, error)
	MarkAsRead(messageID int64, username string) error
	MarkConversationAsRead(recipientUsername, senderUsername string) (int64, error)
	GetUnreadCount(username string) (int64, error)
	GetUnreadCountFromSender(username, senderUsername string) (int64, error)
	GetConversationPartnerIDs(username string) ([]int64, error)
}

type directMessageService struct {
	repo             repository.DirectMessageRepository
	userRepo         repository.UserRepository
	notifier         DirectMessageNotifier
	maxContentLength int
}

// NewDirectMessageService creates a new DirectMessageService. notifier may
// be nil, in which case messages are persisted without a live push.
func NewDirectMessageService(
	repo repository.DirectMessageRepository,
	userRepo repository.UserRepository,
	notifier DirectMessageNotifier,
	maxContentLength int,
) DirectMessageService {
	return &directMessageService{
		repo:             repo,
		userRepo:         userRepo,
		notifier:         notifier,
		maxContentLength: maxContentLength,
	}
}

// SendMessage validates, persists and pushes a direct message. Checks run
// in a fixed order and short-circuit on the first failure.
func (s *directMessageService) SendMessage(senderUsername, recipientUsername, content string) (*domain.DirectMessage, error) {
	senderUsername = strings.TrimSpace(senderUsername)
	if senderUsername == "" {
		return nil, common.ErrSenderRequired
	}
	recipientUsername = strings.TrimSpace(recipientUsername)
	if recipientUsername == "" {
		return nil, common.ErrRecipientRequired
	}
	if !common.IsValidContent(content, s.maxContentLength) {
		return nil, common.ErrInvalidContent
	}
	if senderUsername == recipientUsername {
		return nil, common.ErrSelfMessage
	}

	sender, err := s.userRepo.FindByUsername(senderUsername)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, common.ErrSenderNotFound
	}
	recipient, err := s.userRepo.FindByUsername(recipientUsername)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, common.ErrRecipientNotFound
	}

	msg := &domain.DirectMessage{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Content:     strings.TrimSpace(content),
		Timestamp:   time.Now(),
		Read:        false,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	// Live delivery is best-effort and independent of durability
	if s.notifier != nil {
		s.notifier.NotifyDirectMessage(recipient.ID, msg)
	}

	return msg, nil
}

// GetConversation returns up to limit of the newest messages between two
// users, reordered oldest-first for chronological display
func (s *directMessageService) GetConversation(username1, username2 string, limit int) ([]*domain.DirectMessage, error) {
	username1 = strings.TrimSpace(username1)
	username2 = strings.TrimSpace(username2)
	if username1 == "" || username2 == "" {
		return nil, common.ErrBothUsernamesRequired
	}

	userOne, err := s.resolveUser(username1)
	if err != nil {
		return nil, err
	}
	userTwo, err := s.resolveUser(username2)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.FindConversation(userOne.ID, userTwo.ID, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	// Take newest N, then reverse for oldest-first ordering
	reverseMessages(messages)
	return messages, nil
}

// MarkAsRead flips the read flag if the caller is the recipient. Missing
// messages and foreign messages are silently ignored so callers cannot
// probe for message existence.
func (s *directMessageService) MarkAsRead(messageID int64, username string) error {
	user, err := s.resolveUser(username)
	if err != nil {
		return err
	}

	msg, err := s.repo.FindByID(messageID)
	if err != nil {
		return err
	}
	if msg == nil || msg.RecipientID != user.ID {
		return nil
	}
	return s.repo.MarkAsRead(messageID)
}

// MarkConversationAsRead marks every unread message from one sender as
// read and returns the number of messages affected
func (s *directMessageService) MarkConversationAsRead(recipientUsername, senderUsername string) (int64, error) {
	recipient, err := s.resolveUser(recipientUsername)
	if err != nil {
		return 0, err
	}
	sender, err := s.resolveUser(senderUsername)
	if err != nil {
		return 0, err
	}
	return s.repo.MarkConversationAsRead(recipient.ID, sender.ID)
}

// GetUnreadCount counts unread messages for a user across all senders
func (s *directMessageService) GetUnreadCount(username string) (int64, error) {
	user, err := s.resolveUser(username)
	if err != nil {
		return 0, err
	}
	return s.repo.CountUnread(user.ID)
}

// GetUnreadCountFromSender counts unread messages from one sender
func (s *directMessageService) GetUnreadCountFromSender(username, senderUsername string) (int64, error) {
	user, err := s.resolveUser(username)
	if err != nil {
		return 0, err
	}
	sender, err := s.resolveUser(senderUsername)
	if err != nil {
		return 0, err
	}
	return s.repo.CountUnreadFromSender(user.ID, sender.ID)
}

// GetConversationPartnerIDs returns the IDs of every user this user has
// exchanged messages with
func (s *directMessageService) GetConversationPartnerIDs(username string) ([]int64, error) {
	user, err := s.resolveUser(username)
	if err != nil {
		return nil, err
	}
	return s.repo.FindPartnerIDs(user.ID)
}

// resolveUser maps a username to a user or ErrUserNotFound
func (s *directMessageService) resolveUser(username string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user, nil
}

// clampLimit bounds a page size to [1, 500]; zero means the caller did
// not specify one
func clampLimit(limit int) int {
	if limit == 0 {
		return defaultConversationLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxConversationLimit {
		return maxConversationLimit
	}
	return limit
}

func reverseMessages[T any](messages []T) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
