package service

import (
	"strings"
	"time"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/repository"
)

// ChatBroadcaster fans a persisted channel message out to every live
// session. Best-effort, like DM delivery.
type ChatBroadcaster interface {
	BroadcastChatMessage(msg *domain.ChatMessage)
}

// ChatService business logic for broadcast channel messages
type ChatService interface {
	SaveMessage(username, content string, channelID int64) (*domain.ChatMessage, error)
	JoinChat(username string) (*domain.ChatMessage, error)
	GetRecentMessages(limit int) ([]*domain.ChatMessage, error)
	GetRecentMessagesByChannel(channelID int64, limit int) ([]*domain.ChatMessage, error)
}

type chatService struct {
	repo        repository.ChatMessageRepository
	broadcaster ChatBroadcaster
}

// NewChatService creates a new ChatService. broadcaster may be nil.
func NewChatService(repo repository.ChatMessageRepository, broadcaster ChatBroadcaster) ChatService {
	return &chatService{repo: repo, broadcaster: broadcaster}
}

// SaveMessage persists a channel message and broadcasts it. A zero
// channelID falls back to the default "general" channel.
func (s *chatService) SaveMessage(username, content string, channelID int64) (*domain.ChatMessage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrUsernameRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, common.NewValidationError("Message content is required")
	}
	if channelID <= 0 {
		channelID = domain.DefaultChannelID
	}

	msg := &domain.ChatMessage{
		Username:  username,
		Content:   content,
		Timestamp: time.Now(),
		ChannelID: channelID,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastChatMessage(msg)
	}
	return msg, nil
}

// JoinChat announces a user joining as a System message
func (s *chatService) JoinChat(username string) (*domain.ChatMessage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrUsernameRequired
	}
	return s.SaveMessage("System", username+" has joined the chat", domain.DefaultChannelID)
}

// GetRecentMessages returns the newest messages across channels,
// reordered oldest-first
func (s *chatService) GetRecentMessages(limit int) ([]*domain.ChatMessage, error) {
	messages, err := s.repo.FindRecent(clampLimit(limit))
	if err != nil {
		return nil, err
	}
	reverseMessages(messages)
	return messages, nil
}

// GetRecentMessagesByChannel returns the newest messages in one channel,
// reordered oldest-first
func (s *chatService) GetRecentMessagesByChannel(channelID int64, limit int) ([]*domain.ChatMessage, error) {
	messages, err := s.repo.FindRecentByChannel(channelID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	reverseMessages(messages)
	return messages, nil
}
