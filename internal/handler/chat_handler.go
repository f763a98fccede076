package handler

import (
	"net/http"
	"strconv"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ChatHandler handles broadcast channel message HTTP requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// SendMessage handles POST /api/messages — persist and broadcast
// @Summary Send a channel message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body domain.SendChatMessageRequest true "message"
// @Success 200 {object} domain.ChatMessage
// @Router /api/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req domain.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.service.SaveMessage(req.Username, req.Content, req.ChannelID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// Join handles POST /api/messages/join — System join announcement
// @Summary Announce a user joining the chat
// @Tags chat
// @Accept json
// @Produce json
// @Router /api/messages/join [post]
func (h *ChatHandler) Join(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, common.ErrUsernameRequired.Error())
		return
	}

	msg, err := h.service.JoinChat(req.Username)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// ListRecent handles GET /api/messages
// @Summary Recent messages across channels, oldest first
// @Tags chat
// @Produce json
// @Param limit query int false "page size (default 50, max 500)"
// @Success 200 {array} domain.ChatMessage
// @Router /api/messages [get]
func (h *ChatHandler) ListRecent(c *gin.Context) {
	limit := 0
	if l, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = l
	}

	messages, err := h.service.GetRecentMessages(limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListByChannel handles GET /api/channels/:id/messages
// @Summary Recent messages in one channel, oldest first
// @Tags chat
// @Produce json
// @Param id path int true "channel ID"
// @Param limit query int false "page size (default 50, max 500)"
// @Success 200 {array} domain.ChatMessage
// @Router /api/channels/{id}/messages [get]
func (h *ChatHandler) ListByChannel(c *gin.Context) {
	channelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	limit := 0
	if l, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = l
	}

	messages, err := h.service.GetRecentMessagesByChannel(channelID, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
