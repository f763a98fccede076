package repository

import (
	"time"

	"github.com/accordchat/accord-backend/internal/domain"
	"gorm.io/gorm"
)

// ChannelRepository channel data access interface
type ChannelRepository interface {
	FindAll() ([]*domain.Channel, error)
	FindByID(id int64) (*domain.Channel, error)
	FindByName(name string) (*domain.Channel, error)
	Create(channel *domain.Channel) error
}

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new ChannelRepository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

// FindAll returns all channels ordered by creation
func (r *channelRepository) FindAll() ([]*domain.Channel, error) {
	var channels []*domain.Channel
	err := r.db.Order("id ASC").Find(&channels).Error
	return channels, err
}

// FindByID finds a channel by ID; returns (nil, nil) when absent
func (r *channelRepository) FindByID(id int64) (*domain.Channel, error) {
	var channel domain.Channel
	err := r.db.Where("id = ?", id).First(&channel).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &channel, nil
}

// FindByName finds a channel by name; returns (nil, nil) when absent
func (r *channelRepository) FindByName(name string) (*domain.Channel, error) {
	var channel domain.Channel
	err := r.db.Where("name = ?", name).First(&channel).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &channel, nil
}

// Create creates a new channel
func (r *channelRepository) Create(channel *domain.Channel) error {
	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = time.Now()
	}
	return r.db.Create(channel).Error
}
