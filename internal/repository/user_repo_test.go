package repository

import (
	"testing"

	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))

	user := &domain.User{Username: "alice"}
	assert.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byName, err := repo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byID, err := repo.FindByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepo_AbsentReturnsNil(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))

	user, err := repo.FindByUsername("ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(42)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepo_ExistsByUsername(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))

	assert.NoError(t, repo.Create(&domain.User{Username: "alice"}))

	exists, err := repo.ExistsByUsername("alice")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername("ghost")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepo_UsernameUnique(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))

	assert.NoError(t, repo.Create(&domain.User{Username: "alice"}))
	assert.Error(t, repo.Create(&domain.User{Username: "alice"}))
}
