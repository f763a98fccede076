package handler

import (
	"net/http"
	"strconv"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/accordchat/accord-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ChannelHandler handles channel HTTP requests
type ChannelHandler struct {
	service service.ChannelService
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(service service.ChannelService) *ChannelHandler {
	return &ChannelHandler{service: service}
}

// ListChannels handles GET /api/channels
// @Summary List all channels
// @Tags channels
// @Produce json
// @Success 200 {array} domain.Channel
// @Router /api/channels [get]
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	channels, err := h.service.GetAllChannels()
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, channels)
}

// GetChannel handles GET /api/channels/:id
// @Summary Channel details
// @Tags channels
// @Produce json
// @Param id path int true "channel ID"
// @Success 200 {object} domain.Channel
// @Router /api/channels/{id} [get]
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	channel, err := h.service.GetChannelByID(id)
	if err != nil {
		common.FailFromError(c, err)
		return
	}
	if channel == nil {
		common.ErrorJSON(c, http.StatusNotFound, common.ErrChannelNotFound.Error())
		return
	}

	c.JSON(http.StatusOK, channel)
}

// CreateChannel handles POST /api/channels
// @Summary Create a channel
// @Tags channels
// @Accept json
// @Produce json
// @Param request body domain.CreateChannelRequest true "channel"
// @Success 201 {object} domain.Channel
// @Router /api/channels [post]
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req domain.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	channel, err := h.service.CreateChannel(req.Name, req.Description, req.CreatedBy)
	if err != nil {
		if common.IsValidationError(err) {
			common.ErrorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		common.ErrorJSON(c, http.StatusInternalServerError, "Failed to create channel")
		return
	}

	c.JSON(http.StatusCreated, channel)
}
