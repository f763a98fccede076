package service

import (
	"strings"
	"testing"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChannelRepo struct {
	mock.Mock
}

func (m *mockChannelRepo) FindAll() ([]*domain.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) FindByID(id int64) (*domain.Channel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) FindByName(name string) (*domain.Channel, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) Create(channel *domain.Channel) error {
	return m.Called(channel).Error(0)
}

func newChannelService(repo *mockChannelRepo) ChannelService {
	return NewChannelService(repo, 3, 50)
}

func TestCreateChannel_Success(t *testing.T) {
	repo := new(mockChannelRepo)
	svc := newChannelService(repo)

	repo.On("FindByName", "random").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*domain.Channel")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Channel).ID = 2
	}).Return(nil)

	channel, err := svc.CreateChannel("random", "Off-topic chatter", "alice")

	assert.NoError(t, err)
	assert.Equal(t, "random", channel.Name)
	assert.Equal(t, "alice", channel.CreatedBy)
}

func TestCreateChannel_Validation(t *testing.T) {
	tests := []struct {
		name        string
		channelName string
		description string
		createdBy   string
		wantMsg     string
	}{
		{"empty name", "", "", "alice", "Channel name is required"},
		{"name too short", "ab", "", "alice", "Channel name must be between 3 and 50 characters"},
		{"name too long", strings.Repeat("a", 51), "", "alice", "Channel name must be between 3 and 50 characters"},
		{"invalid characters", "my channel!", "", "alice", "Channel name can only contain letters, numbers, hyphens, and underscores"},
		{"description too long", "random", strings.Repeat("d", 501), "alice", "Channel description cannot exceed 500 characters"},
		{"empty creator", "random", "", "", "Creator username is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockChannelRepo)
			svc := newChannelService(repo)

			channel, err := svc.CreateChannel(tt.channelName, tt.description, tt.createdBy)

			assert.Nil(t, channel)
			assert.True(t, common.IsValidationError(err))
			assert.Equal(t, tt.wantMsg, err.Error())
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateChannel_DuplicateName(t *testing.T) {
	repo := new(mockChannelRepo)
	svc := newChannelService(repo)

	repo.On("FindByName", "general").Return(&domain.Channel{ID: 1, Name: "general"}, nil)

	channel, err := svc.CreateChannel("general", "", "alice")

	assert.Nil(t, channel)
	assert.True(t, common.IsValidationError(err))
	assert.Equal(t, "Channel with name 'general' already exists", err.Error())
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetOrCreateDefaultChannel(t *testing.T) {
	t.Run("already exists", func(t *testing.T) {
		repo := new(mockChannelRepo)
		svc := newChannelService(repo)

		repo.On("FindByName", "general").Return(&domain.Channel{ID: 1, Name: "general"}, nil)

		channel, err := svc.GetOrCreateDefaultChannel()

		assert.NoError(t, err)
		assert.Equal(t, int64(1), channel.ID)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("created on first call", func(t *testing.T) {
		repo := new(mockChannelRepo)
		svc := newChannelService(repo)

		repo.On("FindByName", "general").Return(nil, nil)
		repo.On("Create", mock.AnythingOfType("*domain.Channel")).Return(nil)

		channel, err := svc.GetOrCreateDefaultChannel()

		assert.NoError(t, err)
		assert.Equal(t, "general", channel.Name)
		assert.Equal(t, "System", channel.CreatedBy)
		repo.AssertExpectations(t)
	})
}
