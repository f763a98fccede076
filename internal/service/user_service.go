package service

import (
	"strings"
	"time"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/repository"
)

// UserService is the user directory: username-only provisioning and lookup
type UserService interface {
	CreateOrGetUser(username string) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	UserExists(username string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateOrGetUser returns the existing user for a username, creating one
// on first login
func (s *userService) CreateOrGetUser(username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrUsernameRequired
	}

	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{Username: username, CreatedAt: time.Now()}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByUsername resolves a username; returns (nil, nil) when absent
func (s *userService) FindByUsername(username string) (*domain.User, error) {
	return s.repo.FindByUsername(strings.TrimSpace(username))
}

// UserExists checks whether a username is registered
func (s *userService) UserExists(username string) (bool, error) {
	return s.repo.ExistsByUsername(strings.TrimSpace(username))
}
