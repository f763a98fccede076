package service

import (
	"testing"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChatRepo struct {
	mock.Mock
}

func (m *mockChatRepo) Create(msg *domain.ChatMessage) error {
	return m.Called(msg).Error(0)
}

func (m *mockChatRepo) FindRecent(limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

func (m *mockChatRepo) FindRecentByChannel(channelID int64, limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(channelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) BroadcastChatMessage(msg *domain.ChatMessage) {
	m.Called(msg)
}

func TestChatSaveMessage_Success(t *testing.T) {
	repo := new(mockChatRepo)
	broadcaster := new(mockBroadcaster)
	svc := NewChatService(repo, broadcaster)

	repo.On("Create", mock.AnythingOfType("*domain.ChatMessage")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.ChatMessage).ID = 1
	}).Return(nil)
	broadcaster.On("BroadcastChatMessage", mock.AnythingOfType("*domain.ChatMessage")).Return()

	msg, err := svc.SaveMessage("alice", "hello everyone", 2)

	assert.NoError(t, err)
	assert.Equal(t, "alice", msg.Username)
	assert.Equal(t, int64(2), msg.ChannelID)
	broadcaster.AssertNumberOfCalls(t, "BroadcastChatMessage", 1)
	broadcaster.AssertCalled(t, "BroadcastChatMessage", msg)
}

func TestChatSaveMessage_DefaultsChannel(t *testing.T) {
	repo := new(mockChatRepo)
	svc := NewChatService(repo, nil)

	repo.On("Create", mock.Anything).Return(nil)

	msg, err := svc.SaveMessage("alice", "hi", 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultChannelID), msg.ChannelID)
}

func TestChatSaveMessage_Validation(t *testing.T) {
	repo := new(mockChatRepo)
	broadcaster := new(mockBroadcaster)
	svc := NewChatService(repo, broadcaster)

	_, err := svc.SaveMessage("", "hi", 1)
	assert.ErrorIs(t, err, common.ErrUsernameRequired)

	_, err = svc.SaveMessage("alice", "   ", 1)
	assert.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	repo.AssertNotCalled(t, "Create", mock.Anything)
	broadcaster.AssertNotCalled(t, "BroadcastChatMessage", mock.Anything)
}

func TestJoinChat(t *testing.T) {
	repo := new(mockChatRepo)
	svc := NewChatService(repo, nil)

	repo.On("Create", mock.Anything).Return(nil)

	msg, err := svc.JoinChat("alice")

	assert.NoError(t, err)
	assert.Equal(t, "System", msg.Username)
	assert.Equal(t, "alice has joined the chat", msg.Content)
	assert.Equal(t, int64(domain.DefaultChannelID), msg.ChannelID)

	_, err = svc.JoinChat("  ")
	assert.ErrorIs(t, err, common.ErrUsernameRequired)
}

func TestGetRecentMessages_ReversesToOldestFirst(t *testing.T) {
	repo := new(mockChatRepo)
	svc := NewChatService(repo, nil)

	repo.On("FindRecent", 50).Return([]*domain.ChatMessage{
		{ID: 2, Content: "second"},
		{ID: 1, Content: "first"},
	}, nil)

	msgs, err := svc.GetRecentMessages(0)

	assert.NoError(t, err)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
}

func TestGetRecentMessagesByChannel(t *testing.T) {
	repo := new(mockChatRepo)
	svc := NewChatService(repo, nil)

	repo.On("FindRecentByChannel", int64(3), 500).Return([]*domain.ChatMessage{}, nil)

	msgs, err := svc.GetRecentMessagesByChannel(3, 9999)

	assert.NoError(t, err)
	assert.Empty(t, msgs)
	repo.AssertExpectations(t)
}
