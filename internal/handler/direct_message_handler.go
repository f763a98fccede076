package handler

import (
	"net/http"
	"strconv"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DirectMessageHandler handles direct message HTTP requests
type DirectMessageHandler struct {
	service service.DirectMessageService
}

// NewDirectMessageHandler creates a new DirectMessageHandler
func NewDirectMessageHandler(service service.DirectMessageService) *DirectMessageHandler {
	return &DirectMessageHandler{service: service}
}

// SendMessage handles POST /api/dm/send
// @Summary Send a direct message
// @Tags dm
// @Accept json
// @Produce json
// @Param request body domain.SendDirectMessageRequest true "message"
// @Success 200 {object} domain.DirectMessage
// @Router /api/dm/send [post]
func (h *DirectMessageHandler) SendMessage(c *gin.Context) {
	var req domain.SendDirectMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.service.SendMessage(req.SenderUsername, req.RecipientUsername, req.Content)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// GetConversation handles GET /api/dm/conversation
// @Summary Conversation history between two users, oldest first
// @Tags dm
// @Produce json
// @Param user1 query string true "first username"
// @Param user2 query string true "second username"
// @Param limit query int false "page size (default 50, max 500)"
// @Success 200 {array} domain.DirectMessage
// @Router /api/dm/conversation [get]
func (h *DirectMessageHandler) GetConversation(c *gin.Context) {
	limit := 0
	if l, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = l
	}

	messages, err := h.service.GetConversation(c.Query("user1"), c.Query("user2"), limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkAsRead handles POST /api/dm/read/:messageId
// @Summary Mark a single message as read
// @Tags dm
// @Produce json
// @Param messageId path int true "message ID"
// @Param username query string true "recipient username"
// @Router /api/dm/read/{messageId} [post]
func (h *DirectMessageHandler) MarkAsRead(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := h.service.MarkAsRead(messageID, c.Query("username")); err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "marked as read"})
}

// MarkConversationAsRead handles POST /api/dm/read/conversation
// @Summary Mark every unread message from one sender as read
// @Tags dm
// @Accept json
// @Produce json
// @Param request body domain.MarkConversationReadRequest true "conversation"
// @Router /api/dm/read/conversation [post]
func (h *DirectMessageHandler) MarkConversationAsRead(c *gin.Context) {
	var req domain.MarkConversationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RecipientUsername == "" || req.SenderUsername == "" {
		common.ErrorJSON(c, http.StatusBadRequest, common.ErrBothUsernamesRequired.Error())
		return
	}

	if _, err := h.service.MarkConversationAsRead(req.RecipientUsername, req.SenderUsername); err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "conversation marked as read"})
}

// GetUnreadCount handles GET /api/dm/unread
// @Summary Unread message count across all senders
// @Tags dm
// @Produce json
// @Param username query string true "recipient username"
// @Router /api/dm/unread [get]
func (h *DirectMessageHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.service.GetUnreadCount(c.Query("username"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// GetUnreadCountFromSender handles GET /api/dm/unread/from
// @Summary Unread message count from one sender
// @Tags dm
// @Produce json
// @Param username query string true "recipient username"
// @Param senderUsername query string true "sender username"
// @Router /api/dm/unread/from [get]
func (h *DirectMessageHandler) GetUnreadCountFromSender(c *gin.Context) {
	count, err := h.service.GetUnreadCountFromSender(c.Query("username"), c.Query("senderUsername"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// GetConversationPartners handles GET /api/dm/partners
// @Summary IDs of every user this user has exchanged messages with
// @Tags dm
// @Produce json
// @Param username query string true "username"
// @Router /api/dm/partners [get]
func (h *DirectMessageHandler) GetConversationPartners(c *gin.Context) {
	ids, err := h.service.GetConversationPartnerIDs(c.Query("username"))
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}

	c.JSON(http.StatusOK, ids)
}
