package migration

import (
	"time"

	"github.com/accordchat/accord-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all chat tables and seeds default data.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Channel{},
		&domain.ChatMessage{},
		&domain.DirectMessage{},
	); err != nil {
		return err
	}

	return seedDefaultChannel(db)
}

// seedDefaultChannel ensures the "general" channel exists so messages
// without a channel always have a home
func seedDefaultChannel(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Channel{}).Where("name = ?", "general").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&domain.Channel{
		Name:        "general",
		Description: "General discussion",
		CreatedBy:   "System",
		CreatedAt:   time.Now(),
	}).Error
}
