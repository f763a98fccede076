package handler

import (
	"net/http"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user directory HTTP requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /api/users/login — create-or-get by username
// @Summary Username-only login
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "username"
// @Success 200 {object} domain.User
// @Router /api/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, common.ErrUsernameRequired.Error())
		return
	}

	user, err := h.service.CreateOrGetUser(req.Username)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CheckUsername handles GET /api/users/check/:username
// @Summary Check whether a username is registered
// @Tags users
// @Produce json
// @Param username path string true "username"
// @Router /api/users/check/{username} [get]
func (h *UserHandler) CheckUsername(c *gin.Context) {
	exists, err := h.service.UserExists(c.Param("username"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, exists)
}
