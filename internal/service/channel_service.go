package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/repository"
)

const maxChannelDescriptionLength = 500

var channelNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ChannelService business logic for public channels
type ChannelService interface {
	CreateChannel(name, description, createdBy string) (*domain.Channel, error)
	GetAllChannels() ([]*domain.Channel, error)
	GetChannelByID(id int64) (*domain.Channel, error)
	GetOrCreateDefaultChannel() (*domain.Channel, error)
}

type channelService struct {
	repo          repository.ChannelRepository
	nameMinLength int
	nameMaxLength int
}

// NewChannelService creates a new ChannelService
func NewChannelService(repo repository.ChannelRepository, nameMinLength, nameMaxLength int) ChannelService {
	return &channelService{
		repo:          repo,
		nameMinLength: nameMinLength,
		nameMaxLength: nameMaxLength,
	}
}

// CreateChannel validates and creates a channel
func (s *channelService) CreateChannel(name, description, createdBy string) (*domain.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("Channel name is required")
	}
	if len(name) < s.nameMinLength || len(name) > s.nameMaxLength {
		return nil, common.NewValidationError(fmt.Sprintf(
			"Channel name must be between %d and %d characters", s.nameMinLength, s.nameMaxLength))
	}
	if !channelNamePattern.MatchString(name) {
		return nil, common.NewValidationError(
			"Channel name can only contain letters, numbers, hyphens, and underscores")
	}
	if len(description) > maxChannelDescriptionLength {
		return nil, common.NewValidationError(fmt.Sprintf(
			"Channel description cannot exceed %d characters", maxChannelDescriptionLength))
	}
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return nil, common.NewValidationError("Creator username is required")
	}

	existing, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.NewValidationError(fmt.Sprintf("Channel with name '%s' already exists", name))
	}

	channel := &domain.Channel{
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// GetAllChannels returns every channel
func (s *channelService) GetAllChannels() ([]*domain.Channel, error) {
	return s.repo.FindAll()
}

// GetChannelByID returns a channel; (nil, nil) when absent
func (s *channelService) GetChannelByID(id int64) (*domain.Channel, error) {
	return s.repo.FindByID(id)
}

// GetOrCreateDefaultChannel ensures the default "general" channel exists
func (s *channelService) GetOrCreateDefaultChannel() (*domain.Channel, error) {
	channel, err := s.repo.FindByName("general")
	if err != nil {
		return nil, err
	}
	if channel != nil {
		return channel, nil
	}

	channel = &domain.Channel{
		Name:        "general",
		Description: "General discussion",
		CreatedBy:   "System",
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(channel); err != nil {
		return nil, err
	}
	return channel, nil
}
