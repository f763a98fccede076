package migration

import (
	"testing"

	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRun_SeedsDefaultChannel(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, Run(db))

	var channel domain.Channel
	assert.NoError(t, db.Where("name = ?", "general").First(&channel).Error)
	assert.Equal(t, "System", channel.CreatedBy)

	// Re-running is idempotent
	assert.NoError(t, Run(db))

	var count int64
	assert.NoError(t, db.Model(&domain.Channel{}).Where("name = ?", "general").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
